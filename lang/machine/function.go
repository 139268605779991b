package machine

// Function is a user-defined function: a LIST body bound into globals by
// fn. Evaluating a Function (Machine.Call) runs its Body in a fresh, empty
// scope frame (§4.5).
type Function struct {
	word string
	Body List
}

var _ Value = Function{}

func NewFunction(word string, body List) Function { return Function{word: word, Body: body} }

func (f Function) Word() string { return f.word }
func (f Function) Type() string { return TagFunction }
