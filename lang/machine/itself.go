package machine

// Itself is a "symbol literal": a word that evaluates to itself, either
// because it was explicitly quoted with a leading "'", or because it
// resolved to nothing in the environment and wasn't a number or sigil.
type Itself string

var _ Value = Itself("")

func (s Itself) Word() string { return string(s) }
func (s Itself) Type() string { return TagItself }
