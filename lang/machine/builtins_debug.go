package machine

// builtinDbgOn / builtinDbgOff implement "+dbg" / "-dbg" (§4.6, §5): toggle
// the process-wide dispatch trace written to the error stream.
func builtinDbgOn(m *Machine) error {
	m.Debug = true
	return nil
}

func builtinDbgOff(m *Machine) error {
	m.Debug = false
	return nil
}

// builtinExit implements "exit" (§4.6, §5): pops an INT n and unwinds the
// dispatch loop all the way out to the caller with an ExitError carrying n,
// the language's only non-local exit.
func builtinExit(m *Machine) error {
	args, ok := m.expect(TagInt)
	if !ok {
		m.ReportWrongArgs("exit")
		return nil
	}
	return &ExitError{Code: int(args[0].(Int))}
}
