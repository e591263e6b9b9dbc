package interval_test

import (
	"testing"

	"github.com/go-cldr/dtfmt"
	"github.com/go-cldr/dtfmt/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func TestFormatSameDayDiffersByHourSplitsOnHour(t *testing.T) {
	from := dtfmt.Instant{Year: intp(2024), Month: intp(3), Day: intp(15), Hour: intp(9), Minute: intp(0)}
	to := dtfmt.Instant{Year: intp(2024), Month: intp(3), Day: intp(15), Hour: intp(14), Minute: intp(30)}

	out, err := interval.Format(&from, &to, dtfmt.Options{Locale: "en"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestFormatEqualEndpointsRendersWhole(t *testing.T) {
	instant := dtfmt.Instant{Year: intp(2024), Month: intp(3), Day: intp(15)}
	out, err := interval.Format(&instant, &instant, dtfmt.Options{Locale: "en"})
	require.NoError(t, err)

	whole, err := dtfmt.FormatDate(instant, dtfmt.Options{Locale: "en"})
	require.NoError(t, err)
	assert.Equal(t, whole, out)
}

func TestFormatOpenIntervalMissingFrom(t *testing.T) {
	to := dtfmt.Instant{Year: intp(2024), Month: intp(3), Day: intp(15)}
	out, err := interval.Format(nil, &to, dtfmt.Options{Locale: "en"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestFormatBothNilIsInsufficientFields(t *testing.T) {
	_, err := interval.Format(nil, nil, dtfmt.Options{Locale: "en"})
	require.Error(t, err)
	assert.Equal(t, dtfmt.InsufficientFields, err.(*dtfmt.Error).Kind)
}

func TestFormatOutOfOrderIsIntervalOrderError(t *testing.T) {
	from := dtfmt.Instant{Year: intp(2024), Month: intp(3), Day: intp(20)}
	to := dtfmt.Instant{Year: intp(2024), Month: intp(3), Day: intp(10)}
	_, err := interval.Format(&from, &to, dtfmt.Options{Locale: "en"})
	require.Error(t, err)
	assert.Equal(t, dtfmt.IntervalOrder, err.(*dtfmt.Error).Kind)
}

func TestFormatDifferentCalendarsIsUnknownCalendarError(t *testing.T) {
	from := dtfmt.Instant{Year: intp(2024), Month: intp(3), Day: intp(10), Calendar: "gregorian"}
	to := dtfmt.Instant{Year: intp(2024), Month: intp(3), Day: intp(20), Calendar: "buddhist"}
	_, err := interval.Format(&from, &to, dtfmt.Options{Locale: "en"})
	require.Error(t, err)
	assert.Equal(t, dtfmt.UnknownCalendar, err.(*dtfmt.Error).Kind)
}

func TestFormatDifferentOffsetsIsIncompatibleTimezone(t *testing.T) {
	off1, off2 := 0, 3600
	from := dtfmt.Instant{Year: intp(2024), Month: intp(3), Day: intp(10), UTCOffset: &off1}
	to := dtfmt.Instant{Year: intp(2024), Month: intp(3), Day: intp(20), UTCOffset: &off2}
	_, err := interval.Format(&from, &to, dtfmt.Options{Locale: "en"})
	require.Error(t, err)
	assert.Equal(t, dtfmt.IncompatibleTimezone, err.(*dtfmt.Error).Kind)
}
