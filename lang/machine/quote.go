package machine

// Quotation (§4.7): seeing "(" at depth 0 suspends the live stack, installs
// a depth counter, and starts collecting every subsequent token as a raw
// ITSELF value until the matching ")", at which point the collected tokens
// become a LIST pushed back onto the restored stack.
//
// The spec describes this as a temporary environment override binding "("
// and ")" to nested-open/close builtins; this implementation reaches the
// same observable behavior more directly by having the dispatch loop check
// a depth counter before consulting the environment at all (§9 notes this
// is purely an implementation choice — "a single save-slot suffices" either
// way). Globals and the scope chain are untouched by quoting in both
// designs, so there is nothing to save or restore for them; only the stack
// needs a save-slot.

func builtinOpenQuote(m *Machine) error {
	m.savedStack = m.stack
	m.stack = nil
	m.quoteDepth = 1
	return nil
}

// quoteToken handles one token while a quotation is being collected
// (m.quoteDepth > 0).
func (m *Machine) quoteToken(word string) error {
	switch word {
	case "(":
		m.quoteDepth++
		m.Push(Itself("("))
	case ")":
		m.quoteDepth--
		if m.quoteDepth == 0 {
			elems := m.stack
			m.stack = m.savedStack
			m.savedStack = nil
			if m.fnDefName != "" {
				// This quotation is "fn name ( body )"'s body, not an
				// ordinary value-producing quotation: bind the FUNCTION
				// directly instead of pushing a LIST (see dispatch.go).
				name := m.fnDefName
				m.fnDefName = ""
				m.BindGlobal(name, NewFunction(name, NewList("", elems)))
			} else {
				m.Push(NewList("", elems))
			}
		} else {
			m.Push(Itself(")"))
		}
	default:
		m.Push(Itself(word))
	}
	return nil
}
