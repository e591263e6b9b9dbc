// Package model holds the data types shared between the dtfmt root
// package, its internal subsystems (pattern, field, resolve), and the
// interval and relative packages.
// It exists only to break the import cycle that would otherwise form
// between those internal packages and the root package that re-exports
// these same types as its public API.
package model

import (
	"github.com/go-cldr/dtfmt/calendar"
	"github.com/go-cldr/dtfmt/locale"
)

// Instant is the field-capability input to every formatting call: a
// structure carrying whichever subset of calendar fields the caller has
// available. Renderers check the fields a directive requires and raise
// InsufficientFields for what's missing, rather than requiring callers
// to construct one of several narrower struct types.
type Instant struct {
	Year  *int
	Month *int // 1-12
	Day   *int // 1-31

	Hour       *int // 0-23
	Minute     *int // 0-59
	Second     *int // 0-60, to allow leap seconds
	Nanosecond *int // 0-999,999,999

	Calendar calendar.Tag // zero value resolves to calendar.Gregorian

	TimeZone  string // opaque zone identifier, e.g. "Europe/Paris"
	ZoneAbbr  string // e.g. "CET"
	UTCOffset *int   // seconds east of UTC
	StdOffset *int   // seconds, standard (non-DST) offset
}

// HasDate reports whether year, month, and day are all present.
func (i Instant) HasDate() bool {
	return i.Year != nil && i.Month != nil && i.Day != nil
}

// HasTime reports whether any of hour, minute, or second is present.
func (i Instant) HasTime() bool {
	return i.Hour != nil || i.Minute != nil || i.Second != nil
}

func (i Instant) calendarTag() calendar.Tag {
	if i.Calendar == "" {
		return calendar.Gregorian
	}
	return i.Calendar
}

// CalendarTag returns the instant's declared calendar, defaulting to
// Gregorian.
func (i Instant) CalendarTag() calendar.Tag { return i.calendarTag() }

// Options configures a single format_date/time/datetime/interval/relative
// call.
type Options struct {
	Locale       string // BCP-47 tag; "" uses the process default
	Format       string // style name, ":skeleton", or a literal pattern
	DateFormat   string // overrides the date part of a style datetime
	TimeFormat   string // overrides the time part of a style datetime
	Style         string // "at", "flex" (interval time patterns), or "" (default)
	PreferASCII   bool
	PreferVariant bool // true selects a format's {variant} sub-form over {default}
	NumberSystem  string // "" uses the locale default
	EraVariant    bool
	PeriodVariant bool
}

// Variant resolves the caller's :prefer option into a locale.Variant
// value; the zero Options value resolves to {Default: true, ASCII:
// false}.
func (o Options) Variant() locale.Variant {
	return locale.Variant{Default: !o.PreferVariant, ASCII: o.PreferASCII}
}
