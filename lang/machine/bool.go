package machine

// Boolean is the type of true/false values. The word is always literally
// "true" or "false".
type Boolean bool

var _ Value = Boolean(false)

func (b Boolean) Word() string {
	if b {
		return "true"
	}
	return "false"
}

func (b Boolean) Type() string { return TagBoolean }
