package locale

import (
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

// Loader provides locale Data by BCP-47 tag. The engine treats it as an
// external collaborator: it never mutates the returned Data and caches
// compiled patterns keyed partly on the loader's revision.
type Loader interface {
	// Lookup returns the Data for the best match of tag against the
	// loader's available locales, following BCP-47 fallback (e.g.
	// "fr-CA" falling back to "fr"). ok is false if no match exists.
	Lookup(tag string) (*Data, bool)
	// Revision identifies the data generation; it must change if and
	// only if the loader's returned Data values change, so that the
	// pattern compiler's cache keys stay correct.
	Revision() uint64
}

// Registry is a simple immutable Loader backed by an in-memory map,
// matching a request tag against the loader's locales using
// golang.org/x/text/language's tag matcher.
type Registry struct {
	tags    []language.Tag
	byIndex []*Data
	rev     uint64
}

// NewRegistry builds a Registry from the supplied locale Data set. The
// registry is immutable once built, and is safe for concurrent lookups.
func NewRegistry(data ...*Data) (*Registry, error) {
	r := &Registry{rev: 1}
	for _, d := range data {
		t, err := language.Parse(d.Tag)
		if err != nil {
			return nil, fmt.Errorf("locale: invalid tag %q: %w", d.Tag, err)
		}
		r.tags = append(r.tags, t)
		r.byIndex = append(r.byIndex, d)
	}
	return r, nil
}

func (r *Registry) Lookup(tag string) (*Data, bool) {
	if len(r.tags) == 0 {
		return nil, false
	}

	want, err := language.Parse(tag)
	if err != nil {
		return nil, false
	}

	matcher := language.NewMatcher(r.tags)
	_, index, confidence := matcher.Match(want)
	if confidence == language.No {
		return nil, false
	}
	return r.byIndex[index], true
}

func (r *Registry) Revision() uint64 {
	return r.rev
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the package-provided Loader seeded with the locales in
// this package's seed_*.go files (en, fr, de, ja, ar). It is built once
// and reused as a shared immutable value across all callers.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := NewRegistry(seedEnglish(), seedFrench(), seedGerman(), seedJapanese(), seedArabic())
		if err != nil {
			panic(err)
		}
		defaultRegistry = r
	})
	return defaultRegistry
}
