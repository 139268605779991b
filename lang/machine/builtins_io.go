package machine

import "fmt"

// elementName extracts a loadable path from an ITSELF or STRING element.
func elementName(v Value) (string, bool) {
	switch vv := v.(type) {
	case Itself:
		return string(vv), true
	case String:
		return string(vv), true
	}
	return "", false
}

func (m *Machine) loadOne(name string) error {
	src, err := m.Load(name)
	if err != nil {
		fmt.Fprintf(m.Stderr, "load: cannot open %q: %v\n", name, err)
		return &ExitError{Code: 1}
	}
	m.Push(src)
	return nil
}

// builtinLoad implements "load" (§4.6, §6): ITSELF/STRING load a single
// named SOURCE; ARRAY and LIST both map load over each element, collecting
// the resulting SOURCEs into a new LIST. An empty stack is the fatal
// "load with no argument" case (§7).
func builtinLoad(m *Machine) error {
	v, ok := m.Pop()
	if !ok {
		m.Stderr.Write([]byte("load: syntax error, empty stack\n"))
		return &ExitError{Code: 1}
	}
	switch vv := v.(type) {
	case Itself:
		return m.loadOne(string(vv))
	case String:
		return m.loadOne(string(vv))
	case Array:
		var results []Value
		for _, e := range vv.Elems() {
			src, err := m.Load(string(e))
			if err != nil {
				releaseValue(vv)
				fmt.Fprintf(m.Stderr, "load: cannot open %q: %v\n", string(e), err)
				return &ExitError{Code: 1}
			}
			results = append(results, src)
		}
		releaseValue(vv)
		m.Push(NewList("", results))
		return nil
	case List:
		var results []Value
		for c := vv.head; c != nil; c = c.next {
			name, ok := elementName(c.val)
			if !ok {
				m.ReportWrongArgs("load")
				releaseValue(vv)
				return nil
			}
			src, err := m.Load(name)
			if err != nil {
				releaseValue(vv)
				fmt.Fprintf(m.Stderr, "load: cannot open %q: %v\n", name, err)
				return &ExitError{Code: 1}
			}
			results = append(results, src)
		}
		releaseValue(vv)
		m.Push(NewList("", results))
		return nil
	default:
		releaseValue(v)
		m.ReportWrongArgs("load")
		return nil
	}
}
