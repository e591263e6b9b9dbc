package pattern

import (
	"testing"

	"github.com/go-cldr/dtfmt/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexFieldRuns(t *testing.T) {
	tokens, err := Lex("yyyy-MM-dd")
	require.NoError(t, err)
	require.Len(t, tokens, 5)

	assert.Equal(t, Token{Kind: TokenField, Symbol: 'y', Length: 4}, tokens[0])
	assert.Equal(t, Token{Kind: TokenLiteral, Literal: "-"}, tokens[1])
	assert.Equal(t, Token{Kind: TokenField, Symbol: 'M', Length: 2}, tokens[2])
	assert.Equal(t, Token{Kind: TokenLiteral, Literal: "-"}, tokens[3])
	assert.Equal(t, Token{Kind: TokenField, Symbol: 'd', Length: 2}, tokens[4])
}

func TestLexQuotedLiteral(t *testing.T) {
	tokens, err := Lex("H 'o''clock'")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, Token{Kind: TokenField, Symbol: 'H', Length: 1}, tokens[0])
	assert.Equal(t, Token{Kind: TokenLiteral, Literal: " o'clock"}, tokens[1])
}

func TestLexUnterminatedQuote(t *testing.T) {
	_, err := Lex("yyyy 'MMM")
	require.Error(t, err)
	assert.True(t, model.AsKind(err, model.BadQuote))
}

func TestLexEmptyPattern(t *testing.T) {
	tokens, err := Lex("")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestLexMixedLiteralAndFields(t *testing.T) {
	tokens, err := Lex("EEEE, MMMM d, y G")
	require.NoError(t, err)
	var symbols []rune
	for _, tok := range tokens {
		if tok.Kind == TokenField {
			symbols = append(symbols, tok.Symbol)
		}
	}
	assert.Equal(t, []rune{'E', 'M', 'd', 'y', 'G'}, symbols)
}
