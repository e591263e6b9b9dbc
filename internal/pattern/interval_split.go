package pattern

// fieldGroup buckets TR35 symbols into the five coarse field groups the
// interval engine's greatest-difference walk tracks (year, month, day,
// hour, minute), so a split pattern's repeated field can be located
// regardless of which specific symbol variant (M vs L, H vs h) it uses.
func fieldGroup(sym rune) (rune, bool) {
	switch sym {
	case 'y', 'Y', 'u', 'U', 'r':
		return 'y', true
	case 'M', 'L':
		return 'M', true
	case 'd', 'D', 'F':
		return 'd', true
	case 'H', 'h', 'K', 'k':
		return 'H', true
	case 'm':
		return 'm', true
	default:
		return 0, false
	}
}

// SplitIndex locates the boundary, as a token index, between the "left"
// and "right" halves of an interval split pattern for the given
// greatest-difference field. CLDR split patterns repeat the
// differing field once per side. The right half starts at the first
// field whose group has already appeared; the boundary is placed right
// after the last field before it, so the separator literal belongs to
// the right half (e.g. "MMM d – d, y" splits into "MMM d" and
// " – d, y", and "HH:mm – HH:mm" into "HH:mm" and " – HH:mm").
//
// ok is false when the field doesn't recur at all, meaning the pattern
// carries no split point and the interval must fall back to the join
// template instead.
func SplitIndex(tokens []Token, diffField rune) (idx int, ok bool) {
	group, known := fieldGroup(diffField)
	if !known {
		return 0, false
	}

	var occurrences []int
	for i, t := range tokens {
		if t.Kind != TokenField {
			continue
		}
		if g, ok := fieldGroup(t.Symbol); ok && g == group {
			occurrences = append(occurrences, i)
		}
	}
	if len(occurrences) < 2 {
		return 0, false
	}

	seen, last := map[rune]bool{}, -1
	for i, t := range tokens {
		key, grouped := fieldGroup(t.Symbol)
		if !grouped {
			key = t.Symbol
		}
		if t.Kind == TokenField && seen[key] {
			break
		}
		if t.Kind == TokenField {
			seen[key], last = true, i
		}
	}
	return last + 1, true
}
