package field_test

import (
	"testing"

	"github.com/go-cldr/dtfmt/calendar"
	"github.com/go-cldr/dtfmt/internal/field"
	"github.com/go-cldr/dtfmt/internal/model"
	"github.com/go-cldr/dtfmt/internal/pattern"
	"github.com/go-cldr/dtfmt/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func newContext(t *testing.T, instant model.Instant, opts model.Options) *field.Context {
	t.Helper()
	data, ok := locale.Default().Lookup("en")
	require.True(t, ok)
	cd, ok := data.Calendar(calendar.Gregorian)
	require.True(t, ok)
	return &field.Context{
		Instant:  instant,
		Data:     data,
		Calendar: cd,
		Cal:      calendar.Std,
		Options:  opts,
	}
}

func render(t *testing.T, p string, ctx *field.Context) string {
	t.Helper()
	tokens, err := pattern.Lex(p)
	require.NoError(t, err)
	out, err := field.Render(tokens, ctx)
	require.NoError(t, err)
	return out
}

// 2000-01-01 is a Saturday.
func saturday() model.Instant {
	return model.Instant{
		Year: intp(2000), Month: intp(1), Day: intp(1),
		Hour: intp(23), Minute: intp(59), Second: intp(59),
	}
}

func TestRenderFullDatePattern(t *testing.T) {
	ctx := newContext(t, saturday(), model.Options{})
	assert.Equal(t, "Saturday, January 1, 2000", render(t, "EEEE, MMMM d, y", ctx))
}

func TestRenderYearTwoDigitTruncates(t *testing.T) {
	ctx := newContext(t, saturday(), model.Options{})
	assert.Equal(t, "00", render(t, "yy", ctx))
}

func TestRenderHourConventions(t *testing.T) {
	midnight := model.Instant{Year: intp(2000), Month: intp(1), Day: intp(1), Hour: intp(0), Minute: intp(0)}
	ctx := newContext(t, midnight, model.Options{})
	assert.Equal(t, "12", render(t, "h", ctx)) // 1-12, midnight = 12
	assert.Equal(t, "0", render(t, "H", ctx))  // 0-23
	assert.Equal(t, "0", render(t, "K", ctx))  // 0-11
	assert.Equal(t, "24", render(t, "k", ctx)) // 1-24
}

func TestRenderPeriodAMPM(t *testing.T) {
	ctx := newContext(t, saturday(), model.Options{})
	assert.Equal(t, "PM", render(t, "a", ctx))
}

func TestRenderMissingFieldIsInsufficientFields(t *testing.T) {
	ctx := newContext(t, model.Instant{}, model.Options{})
	tokens, err := pattern.Lex("y")
	require.NoError(t, err)
	_, err = field.Render(tokens, ctx)
	require.Error(t, err)
	assert.True(t, model.AsKind(err, model.InsufficientFields))
}

func TestRenderFractionalSecondTruncatesNotRounds(t *testing.T) {
	instant := saturday()
	instant.Nanosecond = intp(999_000_000) // .999, should not round up to 1.000
	ctx := newContext(t, instant, model.Options{})
	assert.Equal(t, "999", render(t, "SSS", ctx))
}

func TestRenderZoneFallsBackToGMTTemplate(t *testing.T) {
	offset := -5 * 3600
	instant := saturday()
	instant.UTCOffset = &offset
	ctx := newContext(t, instant, model.Options{})
	assert.Equal(t, "GMT-05:00", render(t, "ZZZZ", ctx))
}

func TestRenderZoneRequiresOffset(t *testing.T) {
	ctx := newContext(t, saturday(), model.Options{})
	tokens, err := pattern.Lex("Z")
	require.NoError(t, err)
	_, err = field.Render(tokens, ctx)
	require.Error(t, err)
	assert.True(t, model.AsKind(err, model.InsufficientFields))
}
