package pattern

import (
	"testing"

	"github.com/go-cldr/dtfmt/calendar"
	"github.com/go-cldr/dtfmt/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheCompileCachesIdenticalKey(t *testing.T) {
	c := NewCache()
	first, err := c.Compile("yyyy-MM-dd", calendar.Gregorian, "en", 1)
	require.NoError(t, err)
	second, err := c.Compile("yyyy-MM-dd", calendar.Gregorian, "en", 1)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestCacheCompileDistinguishesRevision(t *testing.T) {
	c := NewCache()
	v1, err := c.Compile("yyyy", calendar.Gregorian, "en", 1)
	require.NoError(t, err)
	v2, err := c.Compile("yyyy", calendar.Gregorian, "en", 2)
	require.NoError(t, err)
	assert.NotSame(t, v1, v2)
}

func TestCacheCompileEmptyPatternErrors(t *testing.T) {
	c := NewCache()
	_, err := c.Compile("", calendar.Gregorian, "en", 1)
	require.Error(t, err)
	assert.True(t, model.AsKind(err, model.EmptyPattern))
}

func TestCacheWarmCollectsErrorsWithoutStopping(t *testing.T) {
	c := NewCache()
	errs := c.Warm([]string{"yyyy-MM-dd", "h 'o''clock", "HH:mm"}, calendar.Gregorian, "en", 1)
	require.Len(t, errs, 1)

	_, err := c.Compile("HH:mm", calendar.Gregorian, "en", 1)
	assert.NoError(t, err)
}
