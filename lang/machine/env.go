package machine

import "github.com/dolthub/swiss"

// env holds the two stacked mappings described in §4.2: a global chain,
// backed by a hash map (the built-ins, constants and prelude together bind
// on the order of 60+ words, and every scope-miss lookup falls through to
// this table, so O(1) lookup
// matters more here than for the short-lived scope chains), and a per-call
// scope stack, each frame a genuine singly-linked bindings chain so that
// frame-inheritance-by-reference (§4.5) is just sharing a pointer.
type env struct {
	globals *swiss.Map[string, Value]
	scopes  []*frame
}

func newEnv() *env {
	return &env{globals: swiss.NewMap[string, Value](128)}
}

// find resolves name per §4.2: innermost scope first (top of the stack
// searched top-to-bottom through its chain), falling through to globals on a
// miss or when no scope is active. A total miss yields (Nothing, false) so
// callers can distinguish "resolved to Nothing" only via the bool.
func (e *env) find(name string) (Value, bool) {
	if n := len(e.scopes); n > 0 {
		if v, ok := e.scopes[n-1].find(name); ok {
			return v, true
		}
	}
	if v, ok := e.globals.Get(name); ok {
		return v, true
	}
	return Nothing, false
}

// bind targets the innermost active scope frame, or globals if no scope is
// active (§4.2, and §9's resolved ambiguity (c): top-level assign is
// global).
func (e *env) bind(name string, v Value) {
	if n := len(e.scopes); n > 0 {
		e.scopes[n-1].bind(name, v)
		return
	}
	e.globals.Put(name, v)
}

// bindGlobal always targets globals, regardless of the active scope — this
// is fn's rule (§4.2: "fn always binds into globals regardless of scope").
func (e *env) bindGlobal(name string, v Value) {
	e.globals.Put(name, v)
}

// pushInherited pushes a new scope frame that shares the current frame's
// bindings chain by reference (anonymous quotation bodies, §4.5 step 1). If
// no frame is currently active, it starts empty — there is nothing to
// inherit at the top level.
func (e *env) pushInherited() {
	var f *frame
	if n := len(e.scopes); n > 0 {
		f = e.scopes[n-1]
	} else {
		f = &frame{}
	}
	e.scopes = append(e.scopes, f)
}

// pushEmpty pushes a new, empty scope frame (named function bodies, §4.5).
func (e *env) pushEmpty() {
	e.scopes = append(e.scopes, &frame{})
}

// pop discards the innermost scope frame on function/eval exit (§4.5 step
// 3); any bindings made in it are thereby discarded, unless the frame was an
// inherited one still shared by an outer, still-active frame pointer.
func (e *env) pop() {
	e.scopes = e.scopes[:len(e.scopes)-1]
}
