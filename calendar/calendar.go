package calendar

// Tag identifies a CLDR calendar system. Only Gregorian is implemented;
// other tags are accepted by the data model (locale.Data.Calendars) but
// have no Calendar implementation in this package.
type Tag string

const (
	Gregorian Tag = "gregorian"
	Buddhist  Tag = "buddhist"
	Japanese  Tag = "japanese"
)

// Calendar is the narrow interface the formatter consumes to derive
// fields that aren't directly present on an Instant: day of week, week
// of year/month, day of year, quarter, and era. It is deliberately small
// so that alternative calendar systems can be plugged in without the
// formatter depending on their internals.
type Calendar interface {
	// DayOfWeek returns 1 (Monday) through 7 (Sunday).
	DayOfWeek(year, month, day int) int
	// WeekOfYear returns the ISO 8601 week number, and the ISO week-year
	// (which may differ from year near year boundaries).
	WeekOfYear(year, month, day int) (week, isoYear int)
	// WeekOfMonth returns the 1-based week-of-month.
	WeekOfMonth(year, month, day int) int
	// DayOfYear returns the 1-based ordinal day within the year.
	DayOfYear(year, month, day int) int
	// QuarterOfYear returns 1 through 4.
	QuarterOfYear(year, month, day int) int
	// EraFor returns the index into the locale's era name table: 0 for
	// years before the calendar epoch, 1 from the epoch onward. Calendars
	// with more than two eras (e.g. Japanese) override this.
	EraFor(year, month, day int) int
}

// GregorianCalendar is the proleptic Gregorian Calendar, built on the
// Julian Day Number arithmetic in date.go.
type GregorianCalendar struct{}

// Std is the shared GregorianCalendar instance; it carries no state.
var Std = GregorianCalendar{}

func (GregorianCalendar) DayOfWeek(year, month, day int) int {
	jdn, err := makeDate(year, month, day)
	if err != nil {
		return 0
	}
	return getWeekday(int32(jdn))
}

func (GregorianCalendar) WeekOfYear(year, month, day int) (week, isoYear int) {
	jdn, err := makeDate(year, month, day)
	if err != nil {
		return 0, 0
	}
	isoYear, week, err = getISOWeek(jdn)
	if err != nil {
		return 0, 0
	}
	return week, isoYear
}

// WeekOfMonth follows the common CLDR convention: the week containing the
// 1st of the month is week 1, and week boundaries fall on the locale's
// first day of the week. Since the Instant carries no explicit
// week-start preference, Monday is assumed (ISO 8601 default); callers
// that need a different week start should implement their own Calendar.
func (c GregorianCalendar) WeekOfMonth(year, month, day int) int {
	firstOfMonth := c.DayOfWeek(year, month, 1)
	return ((day + firstOfMonth - 2) / 7) + 1
}

func (GregorianCalendar) DayOfYear(year, month, day int) int {
	d, err := getYearDay(mustJDN(year, month, day))
	if err != nil {
		return 0
	}
	return d
}

func (GregorianCalendar) QuarterOfYear(_, month, _ int) int {
	return ((month - 1) / 3) + 1
}

// EraFor returns 0 for years <= 0 (BCE, using the ISO 8601 year-0
// convention) and 1 otherwise (CE).
func (GregorianCalendar) EraFor(year, _, _ int) int {
	if year <= 0 {
		return 0
	}
	return 1
}

func mustJDN(year, month, day int) int64 {
	jdn, err := makeDate(year, month, day)
	if err != nil {
		return 0
	}
	return jdn
}
