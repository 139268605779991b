package machine

// sourceData is the shared backing store for a Source value: the buffer, its
// name, and an optional release hook for the underlying OS resource (e.g. an
// open file descriptor or mapping), called when the last reference is
// dropped.
type sourceData struct {
	refcount
	buf     string
	name    string
	release func()
	closed  bool
}

// Source is an opaque file-content value: a readable buffer plus a name.
// The host-level mapping of a file path to a buffer is provided externally
// (see internal/loader); Source only carries the result.
type Source struct {
	data *sourceData
}

var _ Value = Source{}

// NewSource wraps buf (named name) as a Source. release, if non-nil, is
// invoked exactly once, when the last reference to this Source is released.
func NewSource(name, buf string, release func()) Source {
	return Source{data: &sourceData{refcount: newRefcount(), buf: buf, name: name, release: release}}
}

func (s Source) Word() string { return s.data.name }
func (s Source) Type() string { return TagSource }
func (s Source) Buf() string  { return s.data.buf }
func (s Source) Len() int     { return len(s.data.buf) }

// Retain increments the shared backing store's reference count.
func (s Source) Retain() { s.data.refcount.Retain() }

// Release decrements the reference count, invoking the release hook once it
// reaches zero.
func (s Source) Release() {
	if s.data.refcount.Release() > 0 {
		return
	}
	if !s.data.closed && s.data.release != nil {
		s.data.closed = true
		s.data.release()
	}
}
