package machine

// installUniverse populates m's global environment with the constants,
// arrays, and built-ins §4.4 and §4.6 require to be present from the start.
func installUniverse(m *Machine) {
	m.BindGlobal("#nl", Char('\n'))
	m.BindGlobal("#space", Char(' '))
	m.BindGlobal("#tab", Char('\t'))
	m.BindGlobal("#paropn", Int(40))
	m.BindGlobal("#parcls", Int(41))

	m.BindGlobal("whitespace", NewArray("whitespace", []String{" ", "\n", "\t"}))
	m.BindGlobal("args", NewArray("args", nil))

	bind := func(word string, fn BuiltinFunc) {
		m.BindGlobal(word, NewBuiltin(word, fn))
	}

	// Quotation entry point (§4.7); "(" is the only builtin the dispatch
	// loop can reach while quoteDepth == 0 that starts a quotation. ")" has
	// no standalone binding: it is only ever meaningful while a quotation is
	// already being collected, handled directly by quoteToken.
	bind("(", builtinOpenQuote)

	// Stack & flow.
	bind(";", builtinDropAll)
	bind(";1", builtinDropTop)
	bind("clone", builtinClone)
	bind(">>|", builtinRotate)
	bind("stash", builtinStash)

	// Arithmetic & comparison.
	bind("+", builtinAdd)
	bind("-", builtinSub)
	bind("*", builtinMul)
	bind("<", builtinLt)
	bind(">", builtinGt)
	bind("<=", builtinLe)
	bind(">=", builtinGe)
	bind("=", builtinEq)
	bind("!=", builtinNeq)

	// Booleans.
	bind("&", builtinAnd)
	bind("or", builtinOr)
	bind("not", builtinNot)

	// Control.
	bind("?", builtinIf)
	bind("match", builtinMatch)
	bind("in", builtinIn)
	bind("doWhile", builtinDoWhile)
	bind("whileDo", builtinWhileDo)
	bind("doCounting", builtinDoCounting)
	bind("!@", builtinEvalInherited)

	// I/O & content.
	bind("load", builtinLoad)
	bind(".", builtinContent)

	// Strings & arrays.
	bind("len", builtinLen)
	bind("@", builtinAt)
	bind("substr", builtinSubstr)
	bind("cut", builtinCut)

	// Conversions.
	bind(">int", builtinToInt)
	bind(">sym", builtinToSym)
	bind(">str", builtinToStr)
	bind("string?", builtinIsString)

	// Lists.
	bind("lst", builtinLst)
	bind("pop", builtinPop)
	bind("next", builtinPop)
	bind("empty?", builtinEmptyQ)
	bind("reverse", builtinReverse)

	// Definitions.
	bind("fn", builtinFn)
	bind("assign", builtinAssign)

	// Debugging.
	bind("+dbg", builtinDbgOn)
	bind("-dbg", builtinDbgOff)
	bind("exit", builtinExit)
}

// SetArgs rebinds the "args" global to the program's argv tail, called by
// the CLI driver after the embedded prelude has run and before the user
// source starts (§6: the prelude runs "before touching argv").
func (m *Machine) SetArgs(argv []string) {
	elems := make([]String, len(argv))
	for i, a := range argv {
		elems[i] = String(a)
	}
	m.BindGlobal("args", NewArray("args", elems))
}
