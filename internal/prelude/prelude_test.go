package prelude

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nublang/nub/lang/machine"
)

// newTestMachine loads the embedded prelude into a fresh machine.
func newTestMachine(t *testing.T) (*machine.Machine, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	m := machine.NewMachine(nil)
	m.Stdout = &out
	require.NoError(t, m.RunSource(Source().Buf()))
	return m, &out
}

func run(t *testing.T, src string) string {
	t.Helper()
	m, out := newTestMachine(t)
	require.NoError(t, m.RunSource(src))
	return out.String()
}

// words returns the stack's Word() text, bottom to top.
func words(m *machine.Machine) []string {
	var ws []string
	for _, v := range m.Stack() {
		ws = append(ws, v.Word())
	}
	return ws
}

func TestDup(t *testing.T) {
	m, _ := newTestMachine(t)
	require.NoError(t, m.RunSource(`3 dup`))
	require.Equal(t, []string{"3", "3"}, words(m))
}

// swap: stack [a,b] (b on top) becomes [b,a] (a on top).
func TestSwap(t *testing.T) {
	m, _ := newTestMachine(t)
	require.NoError(t, m.RunSource(`2 1 swap`))
	require.Equal(t, []string{"1", "2"}, words(m))
}

// over: stack [a,b] (b on top) becomes [a,b,a].
func TestOver(t *testing.T) {
	m, _ := newTestMachine(t)
	require.NoError(t, m.RunSource(`2 1 over`))
	require.Equal(t, []string{"2", "1", "2"}, words(m))
}

// dup2 = over over: stack [a,b] becomes [a,b,a,b].
func TestDup2(t *testing.T) {
	m, _ := newTestMachine(t)
	require.NoError(t, m.RunSource(`2 1 dup2`))
	require.Equal(t, []string{"2", "1", "2", "1"}, words(m))
}

// nip = swap ;1: stack [a,b] (b on top) drops a, leaving just [b].
func TestNip(t *testing.T) {
	m, _ := newTestMachine(t)
	require.NoError(t, m.RunSource(`1 2 nip`))
	require.Equal(t, []string{"2"}, words(m))
}

func TestSuccPred(t *testing.T) {
	require.Equal(t, "6", run(t, `5 succ .`))
	require.Equal(t, "4", run(t, `5 pred .`))
}

func TestMaxMinAbs(t *testing.T) {
	require.Equal(t, "5", run(t, `3 5 max .`))
	require.Equal(t, "5", run(t, `5 3 max .`))
	require.Equal(t, "3", run(t, `3 5 min .`))
	require.Equal(t, "3", run(t, `5 3 min .`))
	require.Equal(t, "5", run(t, `5 abs .`))
	require.Equal(t, "5", run(t, `0 5 - abs .`))
}

// The language has no string-literal syntax (§4.1); ">str" converts an
// ITSELF's word into a STRING, which is how a plain STRING value for
// println is built from source.
func TestPrintln(t *testing.T) {
	require.Equal(t, "hi\n", run(t, `'hi >str println`))
}

func TestEach(t *testing.T) {
	require.Equal(t, "123", run(t, `( 1 2 3 ) ( . ) each`))
}

// map accumulates each result on top of the growing stack in processing
// order, then "n lst" collects the n values back off deepest-first, so the
// resulting LIST preserves the original element order. The input list is
// built with "lst" so its elements are INTs; a quotation such as "( 1 2 3 )"
// holds ITSELF words, which the arithmetic built-ins reject.
func TestMap(t *testing.T) {
	out := run(t, `1 2 3 3 lst ( 1 + ) map .`)
	require.Equal(t, "( 2 3 4 )", out)
}

func TestFilter(t *testing.T) {
	out := run(t, `1 2 3 4 5 5 lst ( 3 > ) filter .`)
	require.Equal(t, "( 4 5 )", out)
}

func TestRange(t *testing.T) {
	out := run(t, `1 3 range .`)
	require.Equal(t, "( 1 2 3 )", out)
}
