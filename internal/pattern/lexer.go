// Package pattern implements the TR35 pattern lexer and compiler:
// turning a pattern string such as "EEEE, MMMM d, y G" into an ordered,
// cacheable sequence of field directives and literal runs, keyed on
// maximal runs of a repeated TR35 letter.
package pattern

import "github.com/go-cldr/dtfmt/internal/model"

// TokenKind distinguishes a literal run from a field directive.
type TokenKind int

const (
	TokenLiteral TokenKind = iota
	TokenField
)

// Token is one lexed element: either Literal or (Symbol, Length).
type Token struct {
	Kind    TokenKind
	Literal string
	Symbol  rune
	Length  int
}

// Lex tokenizes a TR35 pattern string. Letters a-zA-Z form field runs (a
// maximal run of the same letter); a single quote opens a literal run
// terminated by the next single quote, and a doubled quote `''` emits a
// literal quote character, inside or outside a quoted run. Everything
// else (whitespace, punctuation, digits) is literal text.
func Lex(p string) ([]Token, error) {
	runes := []rune(p)
	var tokens []Token
	var lit []rune

	flushLiteral := func() {
		if len(lit) > 0 {
			tokens = append(tokens, Token{Kind: TokenLiteral, Literal: string(lit)})
			lit = nil
		}
	}

	i := 0
	for i < len(runes) {
		c := runes[i]

		switch {
		case c == '\'':
			// Doubled quote: literal apostrophe, regardless of context.
			if i+1 < len(runes) && runes[i+1] == '\'' {
				lit = append(lit, '\'')
				i += 2
				continue
			}
			// Opens a quoted literal run terminated by the next quote.
			j := i + 1
			for j < len(runes) {
				if runes[j] == '\'' {
					if j+1 < len(runes) && runes[j+1] == '\'' {
						lit = append(lit, '\'')
						j += 2
						continue
					}
					break
				}
				lit = append(lit, runes[j])
				j++
			}
			if j >= len(runes) {
				return nil, model.NewError(model.BadQuote, "unterminated quote in pattern %q", p)
			}
			i = j + 1

		case isTR35Letter(c):
			flushLiteral()
			j := i + 1
			for j < len(runes) && runes[j] == c {
				j++
			}
			tokens = append(tokens, Token{Kind: TokenField, Symbol: c, Length: j - i})
			i = j

		default:
			lit = append(lit, c)
			i++
		}
	}
	flushLiteral()

	return tokens, nil
}

func isTR35Letter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
