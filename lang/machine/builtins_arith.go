package machine

// builtinAdd, builtinSub, and builtinMul implement "+", "-", "*" (§4.6): all
// pop two INT-coercible values, top first. "-" subtracts the top from the
// element below it, so "5 2 -" pushes 3.
func builtinAdd(m *Machine) error {
	args, ok := m.expect(TagInt, TagInt)
	if !ok {
		m.ReportWrongArgs("+")
		return nil
	}
	m.Push(args[1].(Int) + args[0].(Int))
	return nil
}

func builtinSub(m *Machine) error {
	args, ok := m.expect(TagInt, TagInt)
	if !ok {
		m.ReportWrongArgs("-")
		return nil
	}
	m.Push(args[1].(Int) - args[0].(Int))
	return nil
}

func builtinMul(m *Machine) error {
	args, ok := m.expect(TagInt, TagInt)
	if !ok {
		m.ReportWrongArgs("*")
		return nil
	}
	m.Push(args[1].(Int) * args[0].(Int))
	return nil
}
