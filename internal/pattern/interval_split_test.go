package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitIndexTwoOccurrences(t *testing.T) {
	tokens, err := Lex("MMM d – d, y")
	require.NoError(t, err)

	idx, ok := SplitIndex(tokens, 'd')
	require.True(t, ok)

	left := tokensToRunes(tokens[:idx])
	right := tokensToRunes(tokens[idx:])
	assert.Equal(t, "MMM d", left)
	assert.Equal(t, " – d, y", right)
}

func TestSplitIndexNoRecurrence(t *testing.T) {
	tokens, err := Lex("MMM d, y")
	require.NoError(t, err)

	_, ok := SplitIndex(tokens, 'y')
	assert.False(t, ok)
}

func TestSplitIndexUnknownField(t *testing.T) {
	tokens, err := Lex("MMM d, y")
	require.NoError(t, err)

	_, ok := SplitIndex(tokens, 'Q')
	assert.False(t, ok)
}

func tokensToRunes(tokens []Token) string {
	var out []rune
	for _, tok := range tokens {
		if tok.Kind == TokenField {
			for i := 0; i < tok.Length; i++ {
				out = append(out, tok.Symbol)
			}
			continue
		}
		out = append(out, []rune(tok.Literal)...)
	}
	return string(out)
}
