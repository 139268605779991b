package machine

// builtinDropAll implements ";" (§4.6): discards the entire stack.
func builtinDropAll(m *Machine) error {
	for _, v := range m.stack {
		releaseValue(v)
	}
	m.ClearStack()
	return nil
}

// builtinDropTop implements ";1" (§4.6): discards the top of stack only.
func builtinDropTop(m *Machine) error {
	v, ok := m.Pop()
	if !ok {
		m.ReportWrongArgs(";1")
		return nil
	}
	releaseValue(v)
	return nil
}

// builtinClone implements "clone" (§4.6): duplicates the top of stack.
func builtinClone(m *Machine) error {
	v, ok := m.Peek(0)
	if !ok {
		m.ReportWrongArgs("clone")
		return nil
	}
	retainValue(v)
	m.Push(v)
	return nil
}

// builtinRotate implements ">>|" (§4.6): pops an INT depth n, then rotates
// the value currently sitting n deep to the top of stack.
func builtinRotate(m *Machine) error {
	args, ok := m.expect(TagInt)
	if !ok {
		m.ReportWrongArgs(">>|")
		return nil
	}
	n := int(args[0].(Int))
	idx := len(m.stack) - 1 - n
	if n < 0 || idx < 0 || idx >= len(m.stack) {
		m.ReportWrongArgs(">>|")
		return nil
	}
	v := m.stack[idx]
	m.stack = append(m.stack[:idx], m.stack[idx+1:]...)
	m.Push(v)
	return nil
}

// builtinStash implements "stash" (§4.6): pops an INT depth n and a value v,
// then inserts v itself at depth n in the stack: n == 0 behaves like a plain
// push; n > 0 splices v in n deep. No LIST is created or extended at that
// depth; v always occupies a stack slot of its own.
func builtinStash(m *Machine) error {
	args, ok := m.expect(TagInt, TagAny)
	if !ok {
		m.ReportWrongArgs("stash")
		return nil
	}
	n := int(args[0].(Int))
	v := args[1]
	if n < 0 || n > len(m.stack) {
		m.ReportWrongArgs("stash")
		retainValue(v)
		m.Push(v)
		return nil
	}
	idx := len(m.stack) - n
	m.stack = append(m.stack, nil)
	copy(m.stack[idx+1:], m.stack[idx:])
	m.stack[idx] = v
	return nil
}
