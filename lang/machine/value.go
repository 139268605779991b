// Package machine implements the evaluator: the value model, the
// environment, the dispatch loop, quotation and the kernel of built-ins.
package machine

// Value is the interface implemented by every tagged variant that can live
// on the stack, inside a LIST, or bound in the environment.
type Value interface {
	// Word returns the value's originating token, used both as display text
	// and, when the value is bound, as the environment key.
	Word() string

	// Type returns a short tag name, used for diagnostics and for matching
	// argument types in expect/coerce and Equal.
	Type() string
}

// Tags, for diagnostics and for the coercion table.
const (
	TagNothing  = "nothing"
	TagBoolean  = "boolean"
	TagInt      = "int"
	TagChar     = "char"
	TagString   = "string"
	TagItself   = "itself"
	TagArray    = "array"
	TagSource   = "source"
	TagList     = "list"
	TagBuiltin  = "builtin"
	TagFunction = "function"
	TagScope    = "scope"
)
