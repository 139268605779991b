package machine

// boolCombine implements the dual-mode "&" / "or" (§4.6): against two
// BOOLEAN values it is a plain, non-short-circuiting and/or; against a
// single LIST of deferred-test bodies it evaluates each body in turn and
// short-circuits as soon as the outcome is determined (§9's resolved Open
// Question (b): only the LIST form short-circuits).
//
// A quotation captures flat (§4.7: nested "("/")" become literal ITSELF
// markers, not real List-of-List nesting — see quote.go), so
// "( ( true ) ( true ) )" arrives as one flat LIST of ITSELF tokens. This
// regroups balanced paren runs into real sub-lists first, the same way
// builtinMatch's parseMatchGroups does for its rules argument.
func boolCombine(m *Machine, op string, isAnd bool) error {
	if top, ok := m.Peek(0); ok {
		if lst, isList := top.(List); isList {
			m.Pop()
			i := 0
			groups := parseMatchGroups(lst.ToSlice(), &i)
			releaseValue(lst)
			result := isAnd
			for _, g := range groups {
				body, isBody := g.(List)
				if !isBody {
					m.ReportWrongArgs(op)
					return nil
				}
				body.Retain()
				if err := m.runBody(body); err != nil {
					return err
				}
				b, ok := popBool(m, op)
				if !ok {
					return nil
				}
				if isAnd && !bool(b) {
					result = false
					break
				}
				if !isAnd && bool(b) {
					result = true
					break
				}
			}
			m.Push(Boolean(result))
			return nil
		}
	}
	args, ok := m.expect(TagBoolean, TagBoolean)
	if !ok {
		m.ReportWrongArgs(op)
		return nil
	}
	a, b := bool(args[0].(Boolean)), bool(args[1].(Boolean))
	var r bool
	if isAnd {
		r = a && b
	} else {
		r = a || b
	}
	m.Push(Boolean(r))
	return nil
}

func builtinAnd(m *Machine) error { return boolCombine(m, "&", true) }
func builtinOr(m *Machine) error  { return boolCombine(m, "or", false) }

// builtinNot implements "not" (§4.6): pops a BOOLEAN and pushes its negation.
func builtinNot(m *Machine) error {
	args, ok := m.expect(TagBoolean)
	if !ok {
		m.ReportWrongArgs("not")
		return nil
	}
	m.Push(!args[0].(Boolean))
	return nil
}
