package machine

// runBody evaluates an anonymous LIST body (always word == "", per how
// quotation builds it) under the current, inherited environment (§4.5: an
// anonymous body shares the active scope frame by reference; at top level,
// where no frame is active, it gets a fresh empty one whose bindings are
// discarded when it returns — see env.pushInherited) and releases the caller's
// reference to it afterward, whether it ran to completion or not — the
// combinators in this file are the ones responsible for freeing any LIST
// bodies they consume (§4.6).
func (m *Machine) runBody(body List) error {
	defer releaseValue(body)
	return m.EvalInherited(body)
}

func popBool(m *Machine, op string) (Boolean, bool) {
	v, ok := m.Pop()
	if !ok {
		m.ReportWrongCondition(op, Nothing)
		return false, false
	}
	b, isBool := v.(Boolean)
	if !isBool {
		m.ReportWrongCondition(op, v)
		return false, false
	}
	return b, true
}

// builtinIf implements "?" (§4.6): 3-arg form pops (body-true, body-false,
// which) top-to-bottom and runs one of the two bodies; 2-arg form pops
// (body-true, which) and runs body-true only when which is true.
func builtinIf(m *Machine) error {
	if args, ok := m.expect(TagList, TagList, TagBoolean); ok {
		ifBody := args[0].(List)
		elseBody := args[1].(List)
		which := bool(args[2].(Boolean))
		if which {
			releaseValue(elseBody)
			return m.runBody(ifBody)
		}
		releaseValue(ifBody)
		return m.runBody(elseBody)
	}
	if args, ok := m.expect(TagList, TagBoolean); ok {
		ifBody := args[0].(List)
		which := bool(args[1].(Boolean))
		if which {
			return m.runBody(ifBody)
		}
		releaseValue(ifBody)
		return nil
	}
	m.ReportWrongArgs("?")
	return nil
}

// parseMatchGroups collapses balanced "(" / ")" ITSELF runs in elems into
// nested LIST values, leaving every other element untouched, matching
// match's "rules is a flat LIST parsed in-place" rule (§4.6). i is advanced
// past whatever is consumed; a lone trailing ")" ends the current level.
func parseMatchGroups(elems []Value, i *int) []Value {
	var out []Value
	for *i < len(elems) {
		e := elems[*i]
		if it, ok := e.(Itself); ok {
			if it == "(" {
				*i++
				inner := parseMatchGroups(elems, i)
				out = append(out, NewList("", inner))
				continue
			}
			if it == ")" {
				*i++
				return out
			}
		}
		out = append(out, e)
		*i++
	}
	return out
}

// matchClause is one "condition = action" rule extracted from a parsed
// rules group.
type matchClause struct {
	cond, action Value
}

// parseMatchClauses walks a rules group's elements expecting the DSL
// "cond = action" triples (the literal word "=" separates the two halves of
// a clause); a final unpaired element, if any, is the default action run
// when no clause's condition matched.
func parseMatchClauses(elems []Value) (clauses []matchClause, def Value, hasDef bool) {
	i := 0
	for i+2 < len(elems) {
		sep, isSep := elems[i+1].(Itself)
		if !isSep || sep != "=" {
			break
		}
		clauses = append(clauses, matchClause{cond: elems[i], action: elems[i+2]})
		i += 3
	}
	if i < len(elems) {
		def = elems[i]
		hasDef = true
	}
	return clauses, def, hasDef
}

func matchConditionTrue(m *Machine, cond, subject Value) (bool, error) {
	if lst, ok := cond.(List); ok {
		lst.Retain()
		if err := m.runBody(lst); err != nil {
			return false, err
		}
		b, ok := popBool(m, "match")
		return ok && bool(b), nil
	}
	eq, _ := Equal(cond, subject)
	return eq, nil
}

func runMatchAction(m *Machine, action Value) error {
	if lst, ok := action.(List); ok {
		lst.Retain()
		return m.runBody(lst)
	}
	retainValue(action)
	m.Push(action)
	return nil
}

// builtinMatch implements "match" (§4.6, §9's resolved Open Question: the
// rule list is re-parsed from a clone so the caller's original list is
// untouched). It pops one flat LIST, groups balanced parens into nested
// sub-lists, and reads the result as (rules-group..., subject): the last
// top-level group is the subject being matched, and whatever precedes it
// (usually one parenthesized group) holds the "cond = action" clauses.
func builtinMatch(m *Machine) error {
	args, ok := m.expect(TagList)
	if !ok {
		m.ReportWrongArgs("match")
		return nil
	}
	raw := args[0].(List)
	clone := raw.Clone()
	releaseValue(raw)

	i := 0
	groups := parseMatchGroups(clone.ToSlice(), &i)
	releaseValue(clone)
	if len(groups) == 0 {
		m.ReportWrongArgs("match")
		return nil
	}
	subject := groups[len(groups)-1]
	var ruleElems []Value
	if len(groups) == 1 {
		ruleElems = nil
	} else if len(groups) == 2 {
		if rl, ok := groups[0].(List); ok {
			ruleElems = rl.ToSlice()
		} else {
			ruleElems = groups[:1]
		}
	} else {
		ruleElems = groups[:len(groups)-1]
	}

	clauses, def, hasDef := parseMatchClauses(ruleElems)
	for _, c := range clauses {
		hit, err := matchConditionTrue(m, c.cond, subject)
		if err != nil {
			return err
		}
		if hit {
			return runMatchAction(m, c.action)
		}
	}
	if hasDef {
		return runMatchAction(m, def)
	}
	m.Push(Nothing)
	return nil
}

// builtinIn implements "in" (§4.6): pops (options-list, value) top-to-bottom
// and reports whether some element of the list — resolved through the
// environment first, when it is an unresolved ITSELF word — equals value.
func builtinIn(m *Machine) error {
	args, ok := m.expect(TagList, TagAny)
	if !ok {
		m.ReportWrongArgs("in")
		return nil
	}
	opts := args[0].(List)
	value := args[1]
	found := false
	for c := opts.head; c != nil; c = c.next {
		candidate := c.val
		if it, isItself := candidate.(Itself); isItself {
			if v, ok := m.Find(string(it)); ok {
				candidate = v
			}
		}
		if eq, supported := Equal(candidate, value); supported && eq {
			found = true
			break
		}
	}
	releaseValue(opts)
	m.Push(Boolean(found))
	return nil
}

// builtinDoWhile implements "doWhile" (§4.6): pops (body, cond) top-to-bottom
// and runs body, then cond, repeating while cond evaluates to true.
func builtinDoWhile(m *Machine) error {
	args, ok := m.expect(TagList, TagList)
	if !ok {
		m.ReportWrongArgs("doWhile")
		return nil
	}
	body, cond := args[0].(List), args[1].(List)
	for {
		if err := m.checkCtx(); err != nil {
			releaseValue(body)
			releaseValue(cond)
			return err
		}
		body.Retain()
		if err := m.runBody(body); err != nil {
			releaseValue(cond)
			return err
		}
		cond.Retain()
		if err := m.runBody(cond); err != nil {
			releaseValue(body)
			return err
		}
		again, ok := popBool(m, "doWhile")
		if !ok || !bool(again) {
			break
		}
	}
	releaseValue(body)
	releaseValue(cond)
	return nil
}

// builtinWhileDo implements "whileDo" (§4.6): pops (body, cond) top-to-bottom,
// evaluates cond first, and only runs body (then re-checks cond) while it
// holds.
func builtinWhileDo(m *Machine) error {
	args, ok := m.expect(TagList, TagList)
	if !ok {
		m.ReportWrongArgs("whileDo")
		return nil
	}
	body, cond := args[0].(List), args[1].(List)
	for {
		if err := m.checkCtx(); err != nil {
			releaseValue(body)
			releaseValue(cond)
			return err
		}
		cond.Retain()
		if err := m.runBody(cond); err != nil {
			releaseValue(body)
			return err
		}
		again, ok := popBool(m, "whileDo")
		if !ok || !bool(again) {
			break
		}
		body.Retain()
		if err := m.runBody(body); err != nil {
			releaseValue(cond)
			return err
		}
	}
	releaseValue(body)
	releaseValue(cond)
	return nil
}

// builtinDoCounting implements "doCounting" (§4.6): pops (body, from, to)
// top-to-bottom and, for each integer i from "from" to "to" inclusive,
// pushes i and runs body.
func builtinDoCounting(m *Machine) error {
	args, ok := m.expect(TagList, TagInt, TagInt)
	if !ok {
		m.ReportWrongArgs("doCounting")
		return nil
	}
	body := args[0].(List)
	from, to := int64(args[1].(Int)), int64(args[2].(Int))
	for i := from; i <= to; i++ {
		if err := m.checkCtx(); err != nil {
			releaseValue(body)
			return err
		}
		m.Push(Int(i))
		body.Retain()
		if err := m.runBody(body); err != nil {
			releaseValue(body)
			return err
		}
	}
	releaseValue(body)
	return nil
}

// builtinEvalInherited implements "!@" (§4.5, §4.6): pops one LIST and
// evaluates it under the currently active environment, sharing the caller's
// scope frame by reference rather than starting a fresh one.
func builtinEvalInherited(m *Machine) error {
	args, ok := m.expect(TagList)
	if !ok {
		m.ReportWrongArgs("!@")
		return nil
	}
	return m.runBody(args[0].(List))
}
