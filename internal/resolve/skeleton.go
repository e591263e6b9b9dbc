// Package resolve implements the format resolver and skeleton matcher:
// turning a caller's `format` option (and, for partial inputs, the
// instant's present fields) into a concrete pattern string.
package resolve

import (
	"sort"
	"strings"

	"github.com/go-cldr/dtfmt/internal/model"
	"github.com/go-cldr/dtfmt/locale"
)

// DeriveSkeleton builds the candidate skeleton from an instant's present
// fields: each present field contributes its canonical letter.
func DeriveSkeleton(i model.Instant) string {
	var b strings.Builder
	if i.Year != nil {
		b.WriteByte('y')
	}
	if i.Month != nil {
		b.WriteByte('M')
	}
	if i.Day != nil {
		b.WriteByte('d')
	}
	if i.Hour != nil {
		b.WriteByte('H')
	}
	if i.Minute != nil {
		b.WriteByte('m')
	}
	if i.Second != nil {
		b.WriteByte('s')
	}
	return b.String()
}

func letterSet(skeleton string) map[rune]int {
	set := make(map[rune]int)
	for _, r := range skeleton {
		set[r]++
	}
	return set
}

// MatchSkeleton scores every key in available against the requested
// skeleton and returns the best match's key and resolved pattern.
// Letters are counted with multiplicity ("yMMM" is one y and three M).
// Scoring: fewest letters of the requested skeleton missing from the
// candidate, then fewest extra letters the candidate adds, then
// shortest key, then lexicographic key.
func MatchSkeleton(skeleton string, available map[string]locale.AvailableFormat, v locale.Variant) (key, pattern string, ok bool) {
	requested := letterSet(skeleton)
	if len(requested) == 0 {
		return "", "", false
	}

	type candidate struct {
		key            string
		missing, extra int
	}
	var candidates []candidate

	for k := range available {
		have := letterSet(k)
		missing, extra := 0, 0
		for r, n := range requested {
			if have[r] < n {
				missing += n - have[r]
			}
		}
		for r, n := range have {
			if requested[r] < n {
				extra += n - requested[r]
			}
		}
		if missing == len(skeleton) {
			continue // shares nothing with the request
		}
		candidates = append(candidates, candidate{key: k, missing: missing, extra: extra})
	}
	if len(candidates) == 0 {
		return "", "", false
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.missing != b.missing {
			return a.missing < b.missing
		}
		if a.extra != b.extra {
			return a.extra < b.extra
		}
		if len(a.key) != len(b.key) {
			return len(a.key) < len(b.key)
		}
		return a.key < b.key
	})

	best := candidates[0]
	return best.key, available[best.key].Resolve(v), true
}
