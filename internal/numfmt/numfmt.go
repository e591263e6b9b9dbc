// Package numfmt bridges locale-aware integer grouping and
// transliteration of the rendered output into a non-Latin number
// system's digits, kept as a separate, pure post-processing pass rather
// than folded into field rendering.
package numfmt

import (
	"strconv"
	"strings"

	"github.com/go-cldr/dtfmt/locale"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Pad zero-pads a non-negative integer to at least width digits, the
// padding rule every numeric field renderer (year, day, hour, ...)
// applies before any grouping or transliteration happens.
func Pad(v int, width int) string {
	s := strconv.Itoa(v)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// Group renders n with the locale's digit-grouping separators, for the
// plural-keyed relative-time substitutions (e.g. "dans 1 234 ans"). It
// delegates the grouping decision itself to golang.org/x/text/number/
// message, and leaves digit transliteration to Transliterate - format
// the grouped decimal, then transliterate the digits as separate steps.
func Group(localeTag string, n int64) string {
	tag, err := language.Parse(localeTag)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(n))
}

// Transliterate maps every Latin digit codepoint ('0'-'9') in s to the
// target number system's digit codepoints, leaving all other
// characters - including the grouping/minus-sign punctuation Group
// already produced - untouched.
func Transliterate(s string, digits [10]rune) string {
	if digits == ([10]rune{}) {
		return s
	}
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, digits[r-'0'])
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

// Render groups n per the locale and transliterates the result into the
// named number system, resolving InvalidNumberSystem via ok=false when
// the locale has no digit map for that system.
func Render(data *locale.Data, numberSystem string, n int64) (string, bool) {
	if numberSystem == "" {
		numberSystem = data.NumberSystemDefault
	}
	digits, ok := data.DigitMaps[numberSystem]
	if !ok {
		return "", false
	}
	grouped := Group(data.Tag, n)
	return Transliterate(grouped, digits), true
}
