package machine

import (
	"fmt"

	"github.com/nublang/nub/lang/token"
)

// classify implements §4.3 step 5: how an unresolved token becomes a
// literal value.
func classify(word string) Value {
	if len(word) == 2 && word[0] == '#' {
		return Char(word[1])
	}
	if len(word) >= 1 && word[0] == '\'' {
		return Itself(word[1:])
	}
	if word == "true" {
		return Boolean(true)
	}
	if word == "false" {
		return Boolean(false)
	}
	if n, ok := ParseInt(word); ok {
		return n
	}
	return Itself(word)
}

// process runs one dispatch-loop step (§4.3) for the token/element text
// word. It is shared by RunSource (driven by the tokenizer over raw source
// text) and evalList (driven by a LIST body's elements), matching §4.5's
// "walk the body token-by-token as if each element were a dispatch-loop
// input".
//
// "fn" and "assign" are documented and tested as "<word> name <value>",
// the reverse of every other built-in's postfix stack convention (compare
// the pinned scenario "fn dbl ( 2 * ) 21 dbl ." with "@"'s postfix
// "2 ( 1 2 3 ) @"): by the time "fn"/"assign" would dispatch as an
// ordinary stack op, the name and value/body tokens haven't been seen yet.
// So, like quotation's own "(" (§4.7), they are handled here as read-ahead
// special forms: builtinFn/builtinAssign only flip a flag, and process
// intercepts the one or two tokens that follow directly, before they ever
// reach normal resolution.
func (m *Machine) process(word string) error {
	if m.quoteDepth > 0 {
		err := m.quoteToken(word)
		if err == nil && m.assignAwaitValue && m.quoteDepth == 0 {
			m.finishAssign()
		}
		return err
	}
	if m.fnAwaitName {
		m.fnAwaitName = false
		m.fnDefName = stripQuote(word)
		return nil
	}
	if m.assignAwaitName {
		m.assignAwaitName = false
		m.assignDefName = stripQuote(word)
		m.assignAwaitValue = true
		return nil
	}
	if m.assignAwaitValue {
		if err := m.dispatchNormal(word); err != nil {
			return err
		}
		if m.quoteDepth == 0 {
			m.finishAssign()
		}
		return nil
	}
	return m.dispatchNormal(word)
}

// stripQuote removes a single leading "'" so "fn 'dbl (...)" and
// "fn dbl (...)" name the same function (§4.3 step 5's 'Word rule, applied
// here since the captured name never goes through classify).
func stripQuote(word string) string {
	if len(word) > 0 && word[0] == '\'' {
		return word[1:]
	}
	return word
}

// finishAssign completes a pending "assign name value": pops the value the
// just-processed token(s) left on top of stack and binds it (§4.2, §4.6).
func (m *Machine) finishAssign() {
	name := m.assignDefName
	m.assignAwaitValue = false
	m.assignDefName = ""
	v, ok := m.Pop()
	if !ok {
		m.ReportWrongArgs("assign")
		return
	}
	m.Bind(name, v)
}

// dispatchNormal is the ordinary (non-read-ahead) dispatch-loop step: push
// NOTHING for the literal token "nothing"; otherwise resolve through the
// environment and invoke/push accordingly.
func (m *Machine) dispatchNormal(word string) error {
	if word == "nothing" {
		m.Push(Nothing)
		return nil
	}
	v, _ := m.env.find(word)
	switch vv := v.(type) {
	case Builtin:
		m.trace(word)
		return vv.Call(m)
	case Function:
		return m.Call(vv)
	case NothingValue:
		m.Push(classify(word))
		return nil
	default:
		retainValue(v)
		m.Push(v)
		return nil
	}
}

// evalElement runs one step of §4.5's body walk for a single already-typed
// body element. Only Itself elements (unresolved words captured by a
// quotation, or produced by "'word") go through the dispatch-style
// resolve/classify/invoke path; every other variant already "carries its
// final variant" and is simply pushed (retaining shared heap state), since
// e.g. a Boolean or Int value sitting in a runtime-built LIST evaluated via
// "!@" must not be reinterpreted by resolving its Word() text.
func (m *Machine) evalElement(elem Value) error {
	it, isItself := elem.(Itself)
	if !isItself {
		retainValue(elem)
		m.Push(elem)
		return nil
	}
	return m.process(string(it))
}

// Call evaluates fn's body in a fresh, empty scope frame (§4.5: named
// function bodies start empty).
func (m *Machine) Call(fn Function) error {
	return m.evalList(fn.Body, false)
}

// EvalInherited evaluates body in a scope frame that shares the current
// frame's bindings by reference (§4.5: anonymous quotation bodies, used by
// the "!@" builtin).
func (m *Machine) EvalInherited(body List) error {
	return m.evalList(body, true)
}

func (m *Machine) evalList(body List, inherited bool) error {
	if inherited {
		m.env.pushInherited()
	} else {
		m.env.pushEmpty()
	}
	defer m.env.pop()

	for c := body.head; c != nil; c = c.next {
		if err := m.evalElement(c.val); err != nil {
			return err
		}
	}
	return nil
}

// RunSource tokenizes src and dispatches every token in order (§4.3). When
// the source is exhausted, a non-empty stack is printed as a parenthesized
// list on its own line (§6 "Stdout format").
func (m *Machine) RunSource(src string) error {
	for _, t := range token.Tokenize(src) {
		if err := m.checkCtx(); err != nil {
			return err
		}
		if err := m.process(t.Text); err != nil {
			return err
		}
	}
	if len(m.stack) > 0 {
		// Printed top-of-stack first: the reference representation conses
		// each dispatched value onto the front of its stack, so the leftover
		// stack's printed order is the reverse of push order.
		fmt.Fprintln(m.Stdout)
		fmt.Fprint(m.Stdout, "( ")
		for i := len(m.stack) - 1; i >= 0; i-- {
			writeContent(m, m.Stdout, m.stack[i])
			if i > 0 {
				fmt.Fprint(m.Stdout, " ")
			}
		}
		fmt.Fprintln(m.Stdout, " )")
	}
	return nil
}
