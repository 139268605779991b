package machine

import (
	"fmt"
	"io"
)

// writeContent writes v in the format observable through "." (§4.6, §6):
// STRING/ITSELF/INT/BOOLEAN/CHAR print as plain text, SOURCE prints its
// whole buffer, ARRAY and LIST print as a parenthesized, space-separated
// sequence of their elements (recursively, for LIST).
func writeContent(m *Machine, w io.Writer, v Value) {
	switch v := v.(type) {
	case String:
		fmt.Fprint(w, string(v))
	case Itself:
		fmt.Fprint(w, string(v))
	case Int:
		fmt.Fprint(w, v.Word())
	case Boolean:
		fmt.Fprint(w, v.Word())
	case Char:
		fmt.Fprintf(w, "%c", byte(v))
	case NothingValue:
		fmt.Fprint(w, v.Word())
	case Source:
		fmt.Fprint(w, v.Buf())
	case Array:
		fmt.Fprint(w, "( ")
		for i, e := range v.Elems() {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprint(w, string(e))
		}
		fmt.Fprint(w, " )")
	case List:
		fmt.Fprint(w, "( ")
		first := true
		for c := v.head; c != nil; c = c.next {
			if !first {
				fmt.Fprint(w, " ")
			}
			first = false
			writeContent(m, w, c.val)
		}
		fmt.Fprint(w, " )")
	default:
		fmt.Fprint(w, v.Word())
	}
}

func builtinContent(m *Machine) error {
	v, ok := m.Pop()
	if !ok {
		m.Stderr.Write([]byte(".: syntax error, empty stack\n"))
		return &ExitError{Code: 1}
	}
	writeContent(m, m.Stdout, v)
	releaseValue(v)
	return nil
}
