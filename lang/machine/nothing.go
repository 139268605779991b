package machine

// Nothing is the sentinel "no value". The source token "nothing" evaluates
// to it directly, without going through environment resolution, and it
// compares equal to Nothing and unequal to every other value (see Equal in
// compare.go).
type NothingValue struct{}

var _ Value = NothingValue{}

// Nothing is the single Nothing value; it carries no state so one instance
// suffices everywhere it's needed.
var Nothing = NothingValue{}

func (NothingValue) Word() string { return "nothing" }
func (NothingValue) Type() string { return TagNothing }
