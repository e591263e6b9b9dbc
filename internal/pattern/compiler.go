package pattern

import (
	"sync"

	"github.com/go-cldr/dtfmt/calendar"
	"github.com/go-cldr/dtfmt/internal/model"
)

// CompiledPattern is the lexer's token sequence plus the original source,
// interned so repeated formatting calls never re-lex.
type CompiledPattern struct {
	Source string
	Tokens []Token
}

type cacheKey struct {
	pattern  string
	calendar calendar.Tag
	locale   string
	rev      uint64
}

// Cache interns CompiledPatterns by (pattern, calendar, locale-data-rev):
// once compiled, a pattern stays cached for the process lifetime. The
// zero Cache is ready to use.
type Cache struct {
	mu sync.RWMutex
	m  map[cacheKey]*CompiledPattern
}

// NewCache builds an empty pattern cache.
func NewCache() *Cache {
	return &Cache{m: make(map[cacheKey]*CompiledPattern)}
}

// Compile returns the cached CompiledPattern for (p, cal, localeTag, rev),
// lexing and storing it on first use. An empty pattern is always an
// error (EmptyPattern), never cached.
func (c *Cache) Compile(p string, cal calendar.Tag, localeTag string, rev uint64) (*CompiledPattern, error) {
	if p == "" {
		return nil, model.NewError(model.EmptyPattern, "pattern is empty")
	}

	key := cacheKey{pattern: p, calendar: cal, locale: localeTag, rev: rev}

	c.mu.RLock()
	cp, ok := c.m[key]
	c.mu.RUnlock()
	if ok {
		return cp, nil
	}

	tokens, err := Lex(p)
	if err != nil {
		return nil, err
	}
	cp = &CompiledPattern{Source: p, Tokens: tokens}

	c.mu.Lock()
	if existing, ok := c.m[key]; ok {
		c.mu.Unlock()
		return existing, nil
	}
	if c.m == nil {
		c.m = make(map[cacheKey]*CompiledPattern)
	}
	c.m[key] = cp
	c.mu.Unlock()

	return cp, nil
}

// Warm eagerly compiles every pattern in patterns against (cal, localeTag,
// rev), so a fixed universe of patterns can be compiled once up front
// instead of lazily on first use. Errors are collected but do not stop
// the remaining compilations, since a single malformed locale-supplied
// pattern shouldn't prevent the rest of the universe from warming.
func (c *Cache) Warm(patterns []string, cal calendar.Tag, localeTag string, rev uint64) []error {
	var errs []error
	for _, p := range patterns {
		if p == "" {
			continue
		}
		if _, err := c.Compile(p, cal, localeTag, rev); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
