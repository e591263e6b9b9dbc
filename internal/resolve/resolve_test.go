package resolve

import (
	"testing"

	"github.com/go-cldr/dtfmt/calendar"
	"github.com/go-cldr/dtfmt/internal/model"
	"github.com/go-cldr/dtfmt/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func enGregorian(t *testing.T) *locale.CalendarData {
	t.Helper()
	data, ok := locale.Default().Lookup("en")
	require.True(t, ok)
	cd, ok := data.Calendar(calendar.Gregorian)
	require.True(t, ok)
	return cd
}

func TestResolveDefaultsToMediumStyle(t *testing.T) {
	cd := enGregorian(t)
	resolved, err := Resolve(KindDate, model.Options{}, model.Instant{}, cd)
	require.NoError(t, err)
	assert.Equal(t, "MMM d, y", resolved.Pattern)
}

func TestResolveExplicitStyle(t *testing.T) {
	cd := enGregorian(t)
	resolved, err := Resolve(KindDate, model.Options{Format: "full"}, model.Instant{}, cd)
	require.NoError(t, err)
	assert.Equal(t, "EEEE, MMMM d, y", resolved.Pattern)
}

func TestResolveNamedAvailableFormat(t *testing.T) {
	cd := enGregorian(t)
	resolved, err := Resolve(KindDate, model.Options{Format: ":yMMMd"}, model.Instant{}, cd)
	require.NoError(t, err)
	assert.NotEmpty(t, resolved.Pattern)
}

func TestResolveUnknownNamedFormat(t *testing.T) {
	cd := enGregorian(t)
	_, err := Resolve(KindDate, model.Options{Format: ":nope"}, model.Instant{}, cd)
	require.Error(t, err)
	assert.True(t, model.AsKind(err, model.UnknownFormat))
}

func TestResolveLiteralPattern(t *testing.T) {
	cd := enGregorian(t)
	resolved, err := Resolve(KindDate, model.Options{Format: "yyyy/MM/dd"}, model.Instant{}, cd)
	require.NoError(t, err)
	assert.Equal(t, "yyyy/MM/dd", resolved.Pattern)
}

func TestResolveDateTimeUsesStandardTemplate(t *testing.T) {
	cd := enGregorian(t)
	resolved, err := Resolve(KindDateTime, model.Options{Format: "long"}, model.Instant{}, cd)
	require.NoError(t, err)
	assert.Equal(t, "{1} 'at' {0}", resolved.Template)
	assert.Equal(t, "MMMM d, y", resolved.DatePattern)
	assert.Equal(t, "h:mm:ss a z", resolved.TimePattern)
}

func TestResolveSkeletonMatchFromPartialInstant(t *testing.T) {
	cd := enGregorian(t)
	instant := model.Instant{Year: intp(2024), Month: intp(3)}
	resolved, err := Resolve(KindDate, model.Options{}, instant, cd)
	require.NoError(t, err)
	assert.NotEmpty(t, resolved.Pattern)
}

func TestMatchSkeletonPrefersFewestMissingThenFewestExtra(t *testing.T) {
	available := map[string]locale.AvailableFormat{
		"yMMM":  {Pattern: "MMM y"},
		"yMMMd": {Pattern: "MMM d, y"},
		"yM":    {Pattern: "M/y"},
	}
	key, pattern, ok := MatchSkeleton("yMMM", available, locale.DefaultVariant)
	require.True(t, ok)
	assert.Equal(t, "yMMM", key)
	assert.Equal(t, "MMM y", pattern)
}

func TestMatchSkeletonNoOverlapFails(t *testing.T) {
	available := map[string]locale.AvailableFormat{
		"Hm": {Pattern: "HH:mm"},
	}
	_, _, ok := MatchSkeleton("yMMMd", available, locale.DefaultVariant)
	assert.False(t, ok)
}

func TestDeriveSkeletonOnlyIncludesPresentFields(t *testing.T) {
	instant := model.Instant{Year: intp(2024), Hour: intp(9)}
	assert.Equal(t, "yH", DeriveSkeleton(instant))
}
