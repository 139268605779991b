package machine

// builtinFn implements "fn" (§4.2, §4.6). Unlike lerl.c's builtin_defun
// (a plain two-argument stack op popping ITSELF then LIST), the pinned
// scenario "fn dbl ( 2 * ) 21 dbl ." writes the name and body in source
// order right after the word — by the time an ordinary stack op would run
// neither has been pushed yet. builtinFn therefore only arms the read-ahead
// state machine in dispatch.go: the next token is captured as the raw
// function name, and the quotation that follows becomes its body directly
// (quote.go binds the FUNCTION instead of pushing a LIST when a name is
// pending), with no stack traffic at all.
func builtinFn(m *Machine) error {
	m.fnAwaitName = true
	return nil
}

// builtinAssign implements "assign" (§4.2, §4.6, §9's resolved Open
// Question (c)). Testable property 4 writes it the same way as fn —
// "assign x 3" — so it uses the same read-ahead treatment: the next token
// is the raw binding name, and the token(s) after that (a single literal,
// or a full quotation) produce the value that dispatch.go's finishAssign
// pops and binds into the innermost active scope, or globals if none is
// active.
func builtinAssign(m *Machine) error {
	m.assignAwaitName = true
	return nil
}
