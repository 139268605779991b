package machine

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestMachine() (*Machine, *bytes.Buffer, *bytes.Buffer) {
	var out, errw bytes.Buffer
	m := NewMachine(func(name string) (Source, error) {
		return NewSource(name, "loaded:"+name, nil), nil
	})
	m.Stdout = &out
	m.Stderr = &errw
	return m, &out, &errw
}

func run(t *testing.T, src string) (string, string) {
	t.Helper()
	m, out, errw := newTestMachine()
	require.NoError(t, m.RunSource(src))
	return out.String(), errw.String()
}

// Concrete scenarios pinned by spec §8.
func TestConcreteScenarios(t *testing.T) {
	cases := []struct {
		name, src, want string
	}{
		{"add-print", `7 3 + .`, `10`},
		{"quote-itself", `( a b c ) .`, `( a b c )`},
		{"index-at", `2 ( 1 2 3 ) @ .`, `3`},
		{"eval-inherited", `( 1 1 + ) !@ .`, `2`},
		{"fn-call", `fn dbl ( 2 * ) 21 dbl .`, `42`},
		{"match", `( ( a = ( 1 ) b = ( 2 ) ) a ) match .`, `1`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, errw := run(t, c.src)
			require.Empty(t, errw)
			require.Equal(t, c.want, out)
		})
	}
}

// §8 property 2: integer round-trip through >str/>int.
func TestIntegerRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 42, -42, 1 << 20, -(1 << 20)} {
		src := Int(n).Word() + " >str >int ."
		out, errw := run(t, src)
		require.Empty(t, errw)
		require.Equal(t, Int(n).Word(), out)
	}
}

// §8 property 3: quotation balance leaves a LIST of ITSELF values, and the
// depth of the saved stack is unchanged. The two values left on the stack
// are printed, top first, when RunSource finishes.
func TestQuotationBalance(t *testing.T) {
	m, out, errw := newTestMachine()
	m.Push(Int(99))
	require.NoError(t, m.RunSource(`( x y z )`))
	require.Empty(t, errw.String())
	require.Equal(t, "\n( ( x y z ) 99 )\n", out.String())
	require.Equal(t, 2, m.Depth())
	top, ok := m.Peek(0)
	require.True(t, ok)
	lst, ok := top.(List)
	require.True(t, ok)
	require.Equal(t, []string{"x", "y", "z"}, wordsOf(lst))
	base, ok := m.Peek(1)
	require.True(t, ok)
	require.Equal(t, Int(99), base)
}

func wordsOf(l List) []string {
	var out []string
	for _, v := range l.ToSlice() {
		out = append(out, v.Word())
	}
	return out
}

// §8 property 4: scope locality of assign.
func TestScopeLocality(t *testing.T) {
	out, errw := run(t, `assign x 3 fn f ( assign x 9 ) f x .`)
	require.Empty(t, errw)
	require.Equal(t, "3", out)
}

// §8 property 5: stack-order semantics of comparisons.
func TestComparisonStackOrder(t *testing.T) {
	out, _ := run(t, `3 5 < .`)
	require.Equal(t, "true", out)
	out, _ = run(t, `5 3 < .`)
	require.Equal(t, "false", out)
}

// §8 property 6: equality. "=" is postfix like every other built-in here
// (operands first, operator last); the language has no string-literal
// syntax (§4.1), so a STRING operand is built with ">str" (ITSELF -> STRING).
func TestEquality(t *testing.T) {
	cases := []struct {
		src, want string
	}{
		{`'ab >str 'ab >str = .`, "true"},
		{`1 1 = .`, "true"},
		{`1 '1 >str = .`, "false"},
		{`nothing nothing = .`, "true"},
	}
	for _, c := range cases {
		out, errw := run(t, c.src)
		require.Empty(t, errw)
		require.Equal(t, c.want, out, c.src)
	}
}

// "=" on two same-type but unsupported values (e.g. LIST) reports and
// pushes Boolean(false), not NOTHING.
func TestEqualityUnsupportedPushesFalse(t *testing.T) {
	out, errw := run(t, `( 1 ) ( 1 ) = .`)
	require.Contains(t, errw, "=: wrong argument list")
	require.Equal(t, "false", out)
}

// builtinIf reads its three arguments as "which elseBody ifBody ?": the
// LAST-written quotation is the one run when the condition is true.
func TestIfThreeArg(t *testing.T) {
	out, _ := run(t, `true ( 2 ) ( 1 ) ? .`)
	require.Equal(t, "1", out)
	out, _ = run(t, `false ( 2 ) ( 1 ) ? .`)
	require.Equal(t, "2", out)
}

// doCounting pops (body, from, to) top-to-bottom, so the deepest of the two
// ints is "to" and the one just under body is "from": "3 1 (...) doCounting"
// counts 1, 2, 3.
func TestDoCounting(t *testing.T) {
	out, errw := run(t, `3 1 ( . ) doCounting`)
	require.Empty(t, errw)
	require.Equal(t, "123", out)
}

// whileDo and doWhile pop (body, cond) top-to-bottom, so cond is written
// first in source and body second. The loop body can't "assign n ( n 1 + )
// !@" since assign binds to the literal unevaluated quotation, not its
// result; it must compute the sum first, then capture it via
// "assign n clone ;1". The loops run inside a function: there the loop
// bodies share the function's scope frame, whereas at top level each body
// run gets a fresh frame and its assignment is discarded on exit.
func TestWhileDoAndDoWhile(t *testing.T) {
	out, errw := run(t, `fn count ( assign n 0 ( n 5 < ) ( n . n 1 + assign n clone ;1 ) whileDo ) count`)
	require.Empty(t, errw)
	require.Equal(t, "01234", out)

	out, errw = run(t, `fn count ( assign n 0 ( n 5 < ) ( n . n 1 + assign n clone ;1 ) doWhile ) count`)
	require.Empty(t, errw)
	require.Equal(t, "01234", out)
}

// cut's second argument must be an ARRAY; the language has no literal ARRAY
// syntax, so these use the "whitespace" global. Its first argument must be a
// STRING, and the language has no string-literal syntax either (§4.1) nor any
// source token that can carry an embedded space, so the subject string comes
// from "load" (a SOURCE auto-coerces to STRING per §4.6's coercion table) via
// a stub loader. Prefix ends up on top (suffix pushed first, then prefix),
// matching lerl.c's cons-prepend order.
func TestCutFound(t *testing.T) {
	m, _, errw := newTestMachine()
	m.Load = func(name string) (Source, error) { return NewSource(name, "ab cd", nil), nil }
	require.NoError(t, m.RunSource(`text load whitespace cut`))
	require.Empty(t, errw.String())
	require.Equal(t, 2, m.Depth())
	top, ok := m.Peek(0)
	require.True(t, ok)
	require.Equal(t, String("ab"), top)
	below, ok := m.Peek(1)
	require.True(t, ok)
	require.Equal(t, String("cd"), below)
}

func TestCutNotFound(t *testing.T) {
	m, out, errw := newTestMachine()
	m.Load = func(name string) (Source, error) { return NewSource(name, "abcd", nil), nil }
	require.NoError(t, m.RunSource(`text load whitespace cut`))
	require.Empty(t, errw.String())
	require.Equal(t, "\n( abcd nothing )\n", out.String())
	require.Equal(t, 2, m.Depth())
	top, ok := m.Peek(0)
	require.True(t, ok)
	require.Equal(t, String("abcd"), top)
	below, ok := m.Peek(1)
	require.True(t, ok)
	require.Equal(t, Nothing, below)
}

// substr pops (start, end, s) top-to-bottom, so s is pushed first. "hello"
// has no embedded space, so it can be built with ">str" directly from the
// ITSELF 'hello rather than needing a stub loader.
func TestLenSubstr(t *testing.T) {
	out, errw := run(t, `'hello >str len .`)
	require.Empty(t, errw)
	require.Equal(t, "5", out)

	out, errw = run(t, `'hello >str 4 1 substr .`)
	require.Empty(t, errw)
	require.Equal(t, "ell", out)
}

// "pop" pushes head then the shortened rest, so rest ends up on top; ";1"
// drops it to get at head underneath. When "empty?" consumes the rest
// instead, the head is still on the stack and is printed at the end.
func TestListPopAndEmpty(t *testing.T) {
	out, errw := run(t, `( 1 2 3 ) pop ;1 .`)
	require.Empty(t, errw)
	require.Equal(t, "1", out)

	out, errw = run(t, `( 1 2 3 ) pop empty? .`)
	require.Empty(t, errw)
	require.Equal(t, "false\n( 1 )\n", out)

	out, errw = run(t, `( ) empty? .`)
	require.Empty(t, errw)
	require.Equal(t, "true", out)
}

// stash pops (n, v) top-to-bottom and splices v in n deep: n == 0 is a
// plain push, n > 0 inserts below the n topmost existing elements.
func TestStash(t *testing.T) {
	m, _, errw := newTestMachine()
	require.NoError(t, m.RunSource(`1 2 77 0 stash`))
	require.Empty(t, errw.String())
	require.Equal(t, []Value{Int(1), Int(2), Int(77)}, m.Stack())

	m2, _, errw2 := newTestMachine()
	require.NoError(t, m2.RunSource(`1 2 99 1 stash`))
	require.Empty(t, errw2.String())
	require.Equal(t, []Value{Int(1), Int(99), Int(2)}, m2.Stack())
}

func TestLoadItself(t *testing.T) {
	out, errw := run(t, `foo.nub load .`)
	require.Empty(t, errw)
	require.Equal(t, "loaded:foo.nub", out)
}

func TestWrongArgsReportsAndContinues(t *testing.T) {
	_, errw := run(t, `+`)
	require.Contains(t, errw, "+: wrong argument list")
}

func TestExitPropagatesCode(t *testing.T) {
	m, _, _ := newTestMachine()
	err := m.RunSource(`7 exit`)
	var ee *ExitError
	require.ErrorAs(t, err, &ee)
	require.Equal(t, 7, ee.Code)
}

func TestLeftoverStackPrintsReversed(t *testing.T) {
	out, errw := run(t, `1 2 3`)
	require.Empty(t, errw)
	require.Equal(t, "\n( 3 2 1 )\n", out)
}

func TestCharSigil(t *testing.T) {
	out, errw := run(t, `#A .`)
	require.Empty(t, errw)
	require.Equal(t, "A", out)
}

func TestItselfQuoteSigil(t *testing.T) {
	out, errw := run(t, `'hello .`)
	require.Empty(t, errw)
	require.Equal(t, "hello", out)
}

func TestAndOrListMode(t *testing.T) {
	out, _ := run(t, `( ( true ) ( true ) ) & .`)
	require.Equal(t, "true", out)
	out, _ = run(t, `( ( false ) ( true ) ) or .`)
	require.Equal(t, "true", out)
	out, _ = run(t, `( ( false ) ( false ) ) or .`)
	require.Equal(t, "false", out)
}

// "in" pops (list, value) top-to-bottom, so the value is written first.
func TestInBuiltin(t *testing.T) {
	out, errw := run(t, `b ( a b c ) in .`)
	require.Empty(t, errw)
	require.Equal(t, "true", out)
	out, errw = run(t, `z ( a b c ) in .`)
	require.Empty(t, errw)
	require.Equal(t, "false", out)
}
