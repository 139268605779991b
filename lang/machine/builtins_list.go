package machine

// builtinLst implements "lst n" (§4.6): pops the INT n off the top, then
// collects the n values below it (order preserving, deepest first) into a
// new LIST pushed on top.
func builtinLst(m *Machine) error {
	args, ok := m.expect(TagInt)
	if !ok {
		m.ReportWrongArgs("lst")
		return nil
	}
	n := int(args[0].(Int))
	if n < 0 || n > len(m.stack) {
		m.ReportWrongArgs("lst")
		return nil
	}
	elems := make([]Value, n)
	for i := n - 1; i >= 0; i-- {
		v, _ := m.Pop()
		elems[i] = v
	}
	m.Push(NewList("", elems))
	return nil
}

// builtinPop implements "pop" / "next" (§4.6): detaches the head of the
// LIST on top, pushing it underneath the (now shorter) remaining list; an
// empty list pushes NOTHING instead.
func builtinPop(m *Machine) error {
	args, ok := m.expect(TagList)
	if !ok {
		m.ReportWrongArgs("pop")
		return nil
	}
	lst := args[0].(List)
	head, rest, ok := lst.Pop()
	if !ok {
		m.Push(Nothing)
		return nil
	}
	m.Push(head)
	m.Push(rest)
	return nil
}

// builtinEmptyQ implements "empty?" (§4.6): LIST -> BOOLEAN.
func builtinEmptyQ(m *Machine) error {
	args, ok := m.expect(TagList)
	if !ok {
		m.ReportWrongArgs("empty?")
		return nil
	}
	lst := args[0].(List)
	m.Push(Boolean(lst.Empty()))
	releaseValue(lst)
	return nil
}

// builtinReverse implements "reverse" (supplemented from lerl.c's
// builtin_reverse, §4.6's lists neighborhood): LIST -> LIST, elements in
// reverse order.
func builtinReverse(m *Machine) error {
	args, ok := m.expect(TagList)
	if !ok {
		m.ReportWrongArgs("reverse")
		return nil
	}
	lst := args[0].(List)
	m.Push(lst.Reverse())
	releaseValue(lst)
	return nil
}
