package machine

// Equal implements per-variant equality (§4.6 "="): INT, CHAR, BOOLEAN by
// payload; STRING by content; ITSELF by word; NOTHING always equal to
// NOTHING. Values with mismatched tags are simply unequal (ok is true).
// Any other same-tag combination (LIST, ARRAY, SOURCE, ...) is unsupported
// and reports via the ok return.
func Equal(a, b Value) (eq bool, ok bool) {
	if a.Type() != b.Type() {
		return false, true
	}
	switch av := a.(type) {
	case Int:
		return av == b.(Int), true
	case Char:
		return av == b.(Char), true
	case Boolean:
		return av == b.(Boolean), true
	case String:
		return av == b.(String), true
	case Itself:
		return av == b.(Itself), true
	case NothingValue:
		return true, true
	default:
		return false, false
	}
}

func builtinEq(m *Machine) error {
	args, ok := m.expect(TagAny, TagAny)
	if !ok {
		m.ReportWrongArgs("=")
		return nil
	}
	eq, supported := Equal(args[0], args[1])
	if !supported {
		m.ReportWrongArgs("=")
		m.Push(Boolean(false))
		return nil
	}
	m.Push(Boolean(eq))
	return nil
}

func builtinNeq(m *Machine) error {
	args, ok := m.expect(TagAny, TagAny)
	if !ok {
		m.ReportWrongArgs("!=")
		return nil
	}
	eq, supported := Equal(args[0], args[1])
	if !supported {
		m.ReportWrongArgs("!=")
		m.Push(Boolean(false))
		return nil
	}
	m.Push(Boolean(!eq))
	return nil
}

// orderedCompare pops two INT-coercible values (top "shallower", bottom
// "deeper") and reports deeper `cmp` shallower, per §4.6's stack-order
// semantics: "3 5 <" is true because the deeper value (3) is less than the
// shallower one (5).
func orderedCompare(m *Machine, op string, cmp func(deeper, shallower int64) bool) error {
	args, ok := m.expect(TagInt, TagInt)
	if !ok {
		m.ReportWrongArgs(op)
		return nil
	}
	shallower := int64(args[0].(Int))
	deeper := int64(args[1].(Int))
	m.Push(Boolean(cmp(deeper, shallower)))
	return nil
}

func builtinLt(m *Machine) error {
	return orderedCompare(m, "<", func(d, s int64) bool { return d < s })
}

func builtinGt(m *Machine) error {
	return orderedCompare(m, ">", func(d, s int64) bool { return d > s })
}

func builtinLe(m *Machine) error {
	return orderedCompare(m, "<=", func(d, s int64) bool { return d <= s })
}

func builtinGe(m *Machine) error {
	return orderedCompare(m, ">=", func(d, s int64) bool { return d >= s })
}
