package machine

// refcount is a plain (non-atomic) reference counter shared by every handle
// pointing at the same heap object. The evaluator is single-threaded and
// non-preemptive (§5), so a bare int32 behind a pointer is sufficient; there
// is no concurrent mutation to guard against.
//
// Held at >= 1 for a live handle; Release returns the count after
// decrementing so callers can tell when they dropped the last reference.
type refcount struct {
	n *int32
}

func newRefcount() refcount {
	n := int32(1)
	return refcount{n: &n}
}

// Retain records a new holder of the same underlying object.
func (r refcount) Retain() {
	*r.n++
}

// Release drops one holder and returns the count remaining.
func (r refcount) Release() int32 {
	*r.n--
	return *r.n
}

// Count returns the current reference count, for diagnostics and tests.
func (r refcount) Count() int32 {
	return *r.n
}
