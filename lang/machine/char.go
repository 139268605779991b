package machine

// Char is a single byte value, produced by the "#X" sigil and by string
// indexing.
type Char byte

var _ Value = Char(0)

func (c Char) Word() string { return "#" + string(rune(c)) }
func (c Char) Type() string { return TagChar }
