package relative

import (
	"github.com/go-cldr/dtfmt"
	"github.com/go-cldr/dtfmt/internal/model"
	"github.com/go-cldr/dtfmt/locale"
)

const (
	secsMinute = 60
	secsHour   = 60 * secsMinute
	secsDay    = 24 * secsHour
	secsWeek   = 7 * secsDay
	secsMonth  = 30 * secsDay
	secsYear   = 365 * secsDay
)

// DefaultDeriveUnit implements the default step table: the unit is
// chosen by the magnitude of the delta in seconds, not by its sign.
func DefaultDeriveUnit(seconds int64) locale.RelativeUnit {
	abs := seconds
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs < secsMinute:
		return locale.UnitSecond
	case abs < secsHour:
		return locale.UnitMinute
	case abs < secsDay:
		return locale.UnitHour
	case abs < secsWeek:
		return locale.UnitDay
	case abs < secsMonth:
		return locale.UnitWeek
	case abs < secsYear:
		return locale.UnitMonth
	default:
		return locale.UnitYear
	}
}

func unitSeconds(unit locale.RelativeUnit) int64 {
	switch unit {
	case locale.UnitSecond:
		return 1
	case locale.UnitMinute:
		return secsMinute
	case locale.UnitHour:
		return secsHour
	case locale.UnitDay:
		return secsDay
	case locale.UnitWeek:
		return secsWeek
	case locale.UnitMonth:
		return secsMonth
	case locale.UnitYear:
		return secsYear
	default:
		return secsDay
	}
}

// FormatInstant renders the relative phrase from `instant` to
// opts.RelativeTo, deriving both the unit (via opts.DeriveUnit or
// DefaultDeriveUnit) and the signed count in that unit from the
// second-level difference between the two instants.
func FormatInstant(instant dtfmt.Instant, opts Options) (string, error) {
	if opts.RelativeTo == nil {
		return "", model.NewError(model.InsufficientFields, "format_relative requires relative_to for an instant input")
	}

	deltaSeconds, err := secondsBetween(*opts.RelativeTo, instant)
	if err != nil {
		return "", err
	}

	derive := opts.DeriveUnit
	if derive == nil {
		derive = DefaultDeriveUnit
	}
	unit := derive(deltaSeconds)

	count := deltaSeconds / unitSeconds(unit)
	return FormatDelta(count, unit, opts)
}

// secondsBetween computes an approximate signed seconds difference
// between two field-capability instants, requiring year/month/day on
// both sides (InsufficientFields otherwise) and treating a missing time
// field as zero - good
// enough for unit derivation and exact-offset matching, which only ever
// examine small integer day/week/month/year counts in practice.
func secondsBetween(from, to dtfmt.Instant) (int64, error) {
	if !from.HasDate() || !to.HasDate() {
		return 0, model.NewError(model.InsufficientFields, "format_relative needs year/month/day on both sides to derive a delta")
	}

	fromDays := daysFromCivil(*from.Year, *from.Month, *from.Day)
	toDays := daysFromCivil(*to.Year, *to.Month, *to.Day)
	delta := (toDays - fromDays) * secsDay

	delta += int64(valOr(to.Hour, 0)-valOr(from.Hour, 0)) * secsHour
	delta += int64(valOr(to.Minute, 0)-valOr(from.Minute, 0)) * secsMinute
	delta += int64(valOr(to.Second, 0) - valOr(from.Second, 0))
	return delta, nil
}

func valOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// daysFromCivil is Howard Hinnant's days-from-civil algorithm, used here
// purely as a delta-computation helper distinct from the calendar
// package's JDN arithmetic (which serves field rendering, not relative
// deltas).
func daysFromCivil(y, m, d int) int64 {
	y -= boolToInt(m <= 2)
	era := y
	if era < 0 {
		era -= 399
	}
	era /= 400
	yoe := y - era*400
	var mp int
	if m > 2 {
		mp = m - 3
	} else {
		mp = m + 9
	}
	doy := (153*mp+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return int64(era)*146097 + int64(doe) - 719468
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
