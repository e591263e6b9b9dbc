package relative_test

import (
	"testing"

	"github.com/go-cldr/dtfmt"
	"github.com/go-cldr/dtfmt/locale"
	"github.com/go-cldr/dtfmt/relative"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func TestFormatDeltaZeroUsesExactTemplate(t *testing.T) {
	out, err := relative.FormatDelta(0, locale.UnitDay, relative.Options{Options: dtfmt.Options{Locale: "en"}})
	require.NoError(t, err)
	assert.Equal(t, "today", out)
}

func TestFormatDeltaPastSingular(t *testing.T) {
	out, err := relative.FormatDelta(-1, locale.UnitDay, relative.Options{Options: dtfmt.Options{Locale: "en"}})
	require.NoError(t, err)
	assert.Equal(t, "yesterday", out)
}

func TestFormatDeltaFuturePlural(t *testing.T) {
	out, err := relative.FormatDelta(3, locale.UnitDay, relative.Options{Options: dtfmt.Options{Locale: "en"}})
	require.NoError(t, err)
	assert.Contains(t, out, "3")
	assert.Contains(t, out, "days")
}

func TestFormatDeltaUnknownUnitErrors(t *testing.T) {
	_, err := relative.FormatDelta(1, locale.RelativeUnit("fortnight"), relative.Options{Options: dtfmt.Options{Locale: "en"}})
	require.Error(t, err)
	assert.Equal(t, dtfmt.UnknownTimeUnit, err.(*dtfmt.Error).Kind)
}

func TestFormatInstantDerivesUnitAndSign(t *testing.T) {
	relTo := dtfmt.Instant{Year: intp(2024), Month: intp(3), Day: intp(15)}
	future := dtfmt.Instant{Year: intp(2024), Month: intp(3), Day: intp(18)}

	out, err := relative.FormatInstant(future, relative.Options{
		Options:    dtfmt.Options{Locale: "en"},
		RelativeTo: &relTo,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestFormatInstantWithoutRelativeToIsInsufficientFields(t *testing.T) {
	_, err := relative.FormatInstant(dtfmt.Instant{Year: intp(2024)}, relative.Options{Options: dtfmt.Options{Locale: "en"}})
	require.Error(t, err)
	assert.Equal(t, dtfmt.InsufficientFields, err.(*dtfmt.Error).Kind)
}

func TestFormatWeekdayInvalidIsoDay(t *testing.T) {
	_, err := relative.FormatWeekday(8, 1, relative.Options{Options: dtfmt.Options{Locale: "en"}})
	require.Error(t, err)
	assert.Equal(t, dtfmt.UnknownTimeUnit, err.(*dtfmt.Error).Kind)
}
