package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenizeBasic(t *testing.T) {
	toks := Tokenize("7 3 + .")
	require.Len(t, toks, 4)
	want := []string{"7", "3", "+", "."}
	for i, tok := range toks {
		require.Equal(t, want[i], tok.Text)
	}
}

func TestTokenizeWhitespaceVariety(t *testing.T) {
	toks := Tokenize(" \t a\nb\t\tc \n")
	var got []string
	for _, tok := range toks {
		got = append(got, tok.Text)
	}
	require.Equal(t, []string{"a", "b", "c"}, got)
}

func TestTokenizeEmpty(t *testing.T) {
	require.Nil(t, Tokenize(""))
	require.Nil(t, Tokenize("   \t\n  "))
}

func TestTokenizePositions(t *testing.T) {
	toks := Tokenize("ab  cd")
	require.Equal(t, 0, toks[0].Pos)
	require.Equal(t, 4, toks[1].Pos)
}

// TestTokenizeIdempotence grounds §8 testable property 1: re-tokenizing the
// printed form of a LIST's ITSELF words yields the same sequence of tokens.
func TestTokenizeIdempotence(t *testing.T) {
	printed := "( t1 t2 t3 )"
	first := Tokenize(printed)
	second := Tokenize(printed)
	require.Equal(t, len(first), len(second))
	for i := range first {
		require.Equal(t, first[i].Text, second[i].Text)
	}
}

func TestTokenizeParensAreOrdinaryTokens(t *testing.T) {
	toks := Tokenize("( a b )")
	require.Len(t, toks, 4)
	require.Equal(t, "(", toks[0].Text)
	require.Equal(t, ")", toks[3].Text)
}
