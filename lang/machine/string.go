package machine

// String is a byte sequence value. It aliases either a source buffer or an
// argv entry; Go's string slicing is zero-copy, so String never takes
// ownership of the bytes it names.
type String string

var _ Value = String("")

func (s String) Word() string { return string(s) }
func (s String) Type() string { return TagString }
