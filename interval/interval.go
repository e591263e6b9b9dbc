// Package interval formats a pair of instants by computing the coarsest
// calendar field in which they differ and selecting a compact split
// pattern (or the locale's join template) around that field.
package interval

import (
	"strings"

	"github.com/go-cldr/dtfmt"
	"github.com/go-cldr/dtfmt/internal/model"
	"github.com/go-cldr/dtfmt/internal/pattern"
)

// Format renders the interval [from, to]. Either endpoint may be nil for
// an open interval, in which case the other is rendered standalone and
// substituted into the locale's fallback template with the absent side
// empty, trimmed of the whitespace that leaves behind.
func Format(from, to *dtfmt.Instant, opts dtfmt.Options) (string, error) {
	ref := from
	if ref == nil {
		ref = to
	}
	if ref == nil {
		return "", model.NewError(model.InsufficientFields, "format_interval requires at least one endpoint")
	}

	data, err := dtfmt.LookupLocale(opts.Locale)
	if err != nil {
		return "", err
	}
	cal := ref.CalendarTag()
	cd, err := dtfmt.LookupCalendar(data, cal)
	if err != nil {
		return "", err
	}

	isDate := ref.HasDate()

	if from == nil || to == nil {
		side, err := renderWhole(*ref, opts)
		if err != nil {
			return "", err
		}
		if from == nil {
			return trimJoin(cd.IntervalFallback, "", side), nil
		}
		return trimJoin(cd.IntervalFallback, side, ""), nil
	}

	if err := checkCompatible(*from, *to); err != nil {
		return "", err
	}
	if err := checkOrder(*from, *to, isDate); err != nil {
		return "", err
	}

	gd, equal := greatestDifference(*from, *to, isDate)
	if equal {
		return renderWhole(*from, opts)
	}

	key := intervalSkeletonKey(opts, isDate)
	if ivFormat, ok := cd.IntervalFormats[key]; ok {
		if split, ok := selectSplitPattern(ivFormat, gd, isDate); ok {
			tokens, err := pattern.Lex(split)
			if err != nil {
				return "", err
			}
			if idx, ok := pattern.SplitIndex(tokens, rune(gd)); ok {
				left, err := dtfmt.RenderPattern(data, cd, cal, *from, opts, tokensToPattern(tokens[:idx]))
				if err != nil {
					return "", err
				}
				right, err := dtfmt.RenderPattern(data, cd, cal, *to, opts, tokensToPattern(tokens[idx:]))
				if err != nil {
					return "", err
				}
				return left + right, nil
			}
		}
	}

	// No split pattern available for this skeleton/GD: fall back to
	// rendering each side in full and joining with the locale's
	// fallback template.
	leftFull, err := renderWhole(*from, opts)
	if err != nil {
		return "", err
	}
	rightFull, err := renderWhole(*to, opts)
	if err != nil {
		return "", err
	}
	return trimJoin(cd.IntervalFallback, leftFull, rightFull), nil
}

// renderWhole renders a single instant as a standalone date, time, or
// datetime - used both for an open interval's present side and for the
// NoPracticalDifference case where both endpoints reduce to one render.
func renderWhole(i dtfmt.Instant, opts dtfmt.Options) (string, error) {
	switch {
	case i.HasDate() && i.HasTime():
		return dtfmt.FormatDateTime(i, opts)
	case i.HasDate():
		return dtfmt.FormatDate(i, opts)
	default:
		return dtfmt.FormatTime(i, opts)
	}
}

// tokensToPattern reconstitutes a pattern string from a token slice,
// re-escaping any literal apostrophes so the result can be re-lexed by
// the same rules it came from.
func tokensToPattern(tokens []pattern.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.Kind == pattern.TokenField {
			b.WriteString(strings.Repeat(string(t.Symbol), t.Length))
			continue
		}
		needsQuoting := strings.ContainsAny(t.Literal, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
		if needsQuoting {
			b.WriteByte('\'')
		}
		for _, r := range t.Literal {
			if r == '\'' {
				b.WriteString("''")
				continue
			}
			b.WriteRune(r)
		}
		if needsQuoting {
			b.WriteByte('\'')
		}
	}
	return b.String()
}

func trimJoin(fallback, left, right string) string {
	out := strings.ReplaceAll(fallback, "{0}", left)
	out = strings.ReplaceAll(out, "{1}", right)
	return strings.TrimSpace(out)
}
