package dtfmt_test

import (
	"testing"

	"github.com/go-cldr/dtfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

// The New Year's Day scenario from the formatter's own worked examples:
// 2000-01-01T23:59:59Z in en, full style.
func newYear() dtfmt.Instant {
	offset := 0
	return dtfmt.Instant{
		Year: intp(2000), Month: intp(1), Day: intp(1),
		Hour: intp(23), Minute: intp(59), Second: intp(59),
		UTCOffset: &offset, ZoneAbbr: "GMT",
	}
}

func TestFormatDateTimeFullStyle(t *testing.T) {
	out, err := dtfmt.FormatDateTime(newYear(), dtfmt.Options{Locale: "en", Format: "full"})
	require.NoError(t, err)
	assert.Equal(t, "Saturday, January 1, 2000, 11:59:59 PM GMT", out)
}

func TestFormatDateMediumStyleIsDefault(t *testing.T) {
	out, err := dtfmt.FormatDate(newYear(), dtfmt.Options{Locale: "en"})
	require.NoError(t, err)
	assert.Equal(t, "Jan 1, 2000", out)
}

func TestFormatDateUnknownLocaleErrors(t *testing.T) {
	_, err := dtfmt.FormatDate(newYear(), dtfmt.Options{Locale: "xx-Zzzz-9999"})
	require.Error(t, err)
	assert.True(t, dtfmt.Kind(dtfmt.UnknownLocale) == err.(*dtfmt.Error).Kind)
}

func TestFormatDateInsufficientFields(t *testing.T) {
	_, err := dtfmt.FormatDate(dtfmt.Instant{}, dtfmt.Options{Locale: "en"})
	require.Error(t, err)
	assert.Equal(t, dtfmt.InsufficientFields, err.(*dtfmt.Error).Kind)
}

func TestFormatDateInvalidNumberSystem(t *testing.T) {
	_, err := dtfmt.FormatDate(newYear(), dtfmt.Options{Locale: "en", NumberSystem: "made-up"})
	require.Error(t, err)
	assert.Equal(t, dtfmt.InvalidNumberSystem, err.(*dtfmt.Error).Kind)
}

func TestFormatDateLocaleFallbackMatching(t *testing.T) {
	// "fr-CA" has no seeded entry; the registry falls back to "fr" via
	// BCP-47 matching.
	out, err := dtfmt.FormatDate(newYear(), dtfmt.Options{Locale: "fr-CA"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestFormatArabicNumberSystemTransliterates(t *testing.T) {
	out, err := dtfmt.FormatDate(newYear(), dtfmt.Options{Locale: "ar", Format: "yyyy", NumberSystem: "arab"})
	require.NoError(t, err)
	assert.NotContains(t, out, "2")
	assert.Contains(t, out, "٢")
}

func TestMustFormatDatePanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		dtfmt.MustFormatDate(dtfmt.Instant{}, dtfmt.Options{Locale: "en"})
	})
}
