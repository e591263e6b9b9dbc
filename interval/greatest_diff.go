package interval

import (
	"strings"

	"github.com/go-cldr/dtfmt"
	"github.com/go-cldr/dtfmt/internal/model"
	"github.com/go-cldr/dtfmt/locale"
)

// greatestDifference walks (year, month, day, hour, minute) in order -
// or just (hour, minute) for a time-only interval - and returns the
// first field in which from and to differ. Seconds and sub-second
// components are never compared, since no interval pattern spans them.
// equal is true iff every tracked field matches, which callers report
// as NoPracticalDifference.
func greatestDifference(from, to dtfmt.Instant, isDate bool) (locale.GreatestDiffField, bool) {
	if isDate {
		if differs(from.Year, to.Year) {
			return locale.DiffYear, false
		}
		if differs(from.Month, to.Month) {
			return locale.DiffMonth, false
		}
		if differs(from.Day, to.Day) {
			return locale.DiffDay, false
		}
	}
	if differs(from.Hour, to.Hour) {
		return locale.DiffHour, false
	}
	if differs(from.Minute, to.Minute) {
		return locale.DiffMinute, false
	}
	return 0, true
}

func differs(a, b *int) bool {
	switch {
	case a == nil && b == nil:
		return false
	case a == nil || b == nil:
		return true
	default:
		return *a != *b
	}
}

// checkCompatible enforces that both endpoints share a calendar and
// (when both carry an offset) the same timezone offset.
func checkCompatible(from, to dtfmt.Instant) error {
	if from.CalendarTag() != to.CalendarTag() {
		return model.NewError(model.UnknownCalendar, "interval endpoints use different calendars")
	}
	if from.UTCOffset != nil && to.UTCOffset != nil && *from.UTCOffset != *to.UTCOffset {
		return model.NewError(model.IncompatibleTimezone, "interval endpoints have different utc offsets")
	}
	if from.TimeZone != "" && to.TimeZone != "" && from.TimeZone != to.TimeZone {
		return model.NewError(model.IncompatibleTimezone, "interval endpoints have different time zones")
	}
	return nil
}

// checkOrder enforces from <= to over the tracked fields, reporting
// IntervalOrder when it doesn't hold.
func checkOrder(from, to dtfmt.Instant, isDate bool) error {
	seq := func(i dtfmt.Instant) []int {
		var out []int
		if isDate {
			out = append(out, val(i.Year), val(i.Month), val(i.Day))
		}
		out = append(out, val(i.Hour), val(i.Minute))
		return out
	}
	a, b := seq(from), seq(to)
	for i := range a {
		if a[i] < b[i] {
			return nil
		}
		if a[i] > b[i] {
			return model.NewError(model.IntervalOrder, "interval 'from' is after 'to'")
		}
	}
	return nil
}

func val(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// intervalSkeletonKey resolves the caller's format option to an
// interval-formats map key.
func intervalSkeletonKey(opts dtfmt.Options, isDate bool) string {
	format := strings.TrimPrefix(strings.TrimSpace(opts.Format), ":")

	if format != "" {
		if _, ok := locale.ParseStyle(format); !ok {
			return format // an explicit skeleton id
		}
	}

	if isDate {
		if style, ok := locale.ParseStyle(format); ok && (style == locale.Long || style == locale.Full) {
			return "yMMMd"
		}
		return "yMd"
	}

	if opts.Style == "flex" {
		return "hmflex"
	}
	return "hm"
}

// selectSplitPattern picks the split pattern for gd, falling back in
// order: for date skeletons, requested GD -> month -> year; for time
// skeletons, minute -> hour.
func selectSplitPattern(iv locale.IntervalFormat, gd locale.GreatestDiffField, isDate bool) (string, bool) {
	if p, ok := iv[gd]; ok {
		return p, true
	}

	var chain []locale.GreatestDiffField
	if isDate {
		chain = []locale.GreatestDiffField{locale.DiffMonth, locale.DiffYear}
	} else {
		chain = []locale.GreatestDiffField{locale.DiffMinute, locale.DiffHour}
	}
	for _, f := range chain {
		if p, ok := iv[f]; ok {
			return p, true
		}
	}
	return "", false
}
