// Package dtfmt is a locale-aware date, time, and datetime formatter
// conforming to the Unicode CLDR specification (TR35). Given an instant
// decomposed into calendar fields, a locale, and a format specifier, it
// produces a localized, human-readable string.
//
// The formatting calls are reentrant: locale data and compiled patterns
// are immutable once built and shared across goroutines. The one piece
// of process-wide mutable state is the compiled-pattern cache, whose map
// is guarded by a read-write lock; SetLoader replaces the loader and the
// cache and is meant for one-shot initialization.
package dtfmt

import (
	"github.com/go-cldr/dtfmt/calendar"
	"github.com/go-cldr/dtfmt/internal/field"
	"github.com/go-cldr/dtfmt/internal/model"
	"github.com/go-cldr/dtfmt/internal/numfmt"
	"github.com/go-cldr/dtfmt/internal/pattern"
	"github.com/go-cldr/dtfmt/internal/resolve"
	"github.com/go-cldr/dtfmt/locale"
)

// Instant is the field-capability input to every formatting call: it
// carries whichever subset of year/month/day/hour/minute/second/
// timezone fields the caller has available. Missing fields required by
// a requested format surface as InsufficientFields rather than a panic.
type Instant = model.Instant

// Options configures a single formatting call.
type Options = model.Options

// Kind tags the category of a formatting error.
type Kind = model.Kind

// Error is the error value returned by every total-return call.
type Error = model.Error

const (
	UnknownLocale         = model.UnknownLocale
	UnknownCalendar       = model.UnknownCalendar
	UnknownFormat         = model.UnknownFormat
	UnresolvedFormat      = model.UnresolvedFormat
	InvalidStyle          = model.InvalidStyle
	InvalidFormat         = model.InvalidFormat
	BadQuote              = model.BadQuote
	EmptyPattern          = model.EmptyPattern
	InvalidNumberSystem   = model.InvalidNumberSystem
	IntervalOrder         = model.IntervalOrder
	IncompatibleTimezone  = model.IncompatibleTimezone
	NoPracticalDifference = model.NoPracticalDifference
	UnknownTimeUnit       = model.UnknownTimeUnit
	InsufficientFields    = model.InsufficientFields
)

// patterns is the process-wide compiled-pattern cache every formatting
// call shares; compiled patterns live for the lifetime of the process.
var patterns = pattern.NewCache()

// activeLoader resolves a BCP-47 locale tag to locale.Data. The package-level
// default is locale.Default(); callers embedding their own CLDR data
// loader can call SetLoader once during initialization.
var activeLoader locale.Loader = locale.Default()

// SetLoader replaces the package-wide locale loader. It is intended for
// one-shot initialization before any formatting call, since the loader
// is treated as an external collaborator the package only reads from; it
// is not safe to call concurrently with formatting calls.
func SetLoader(l locale.Loader) {
	activeLoader = l
	patterns = pattern.NewCache()
}

func lookupLocale(tag string) (*locale.Data, error) {
	if tag == "" {
		tag = "en"
	}
	data, ok := activeLoader.Lookup(tag)
	if !ok {
		return nil, model.NewError(model.UnknownLocale, "locale %q not loaded", tag)
	}
	return data, nil
}

func lookupCalendar(data *locale.Data, cal calendar.Tag) (*locale.CalendarData, error) {
	if cal == "" {
		cal = calendar.Gregorian
	}
	cd, ok := data.Calendar(cal)
	if !ok {
		return nil, model.NewError(model.UnknownCalendar, "locale %q has no %q calendar", data.Tag, cal)
	}
	return cd, nil
}

func calendarInterface(cal calendar.Tag) calendar.Calendar {
	switch cal {
	default:
		return calendar.Std
	}
}

func render(data *locale.Data, cd *locale.CalendarData, cal calendar.Tag, instant model.Instant, opts model.Options, pat string) (string, error) {
	cp, err := patterns.Compile(pat, cal, data.Tag, activeLoader.Revision())
	if err != nil {
		return "", err
	}
	ctx := &field.Context{
		Instant:  instant,
		Data:     data,
		Calendar: cd,
		Cal:      calendarInterface(cal),
		Options:  opts,
	}
	out, err := field.Render(cp.Tokens, ctx)
	if err != nil {
		return "", err
	}
	return transliterate(data, opts, out), nil
}

// transliterate is the final rendering step: once the full pattern
// output is assembled, remap Latin digits into the requested number
// system's digits.
func transliterate(data *locale.Data, opts model.Options, s string) string {
	system := opts.NumberSystem
	if system == "" {
		system = data.NumberSystemDefault
	}
	digits, ok := data.DigitMaps[system]
	if !ok || system == "latn" {
		return s
	}
	return numfmt.Transliterate(s, digits)
}

func resolveAndRender(kind resolve.Kind, instant model.Instant, opts model.Options) (string, error) {
	data, err := lookupLocale(opts.Locale)
	if err != nil {
		return "", err
	}
	if opts.NumberSystem != "" {
		if _, ok := data.DigitMaps[opts.NumberSystem]; !ok {
			return "", model.NewError(model.InvalidNumberSystem, "locale %q has no digit map for number system %q", data.Tag, opts.NumberSystem)
		}
	}

	cal := instant.CalendarTag()
	cd, err := lookupCalendar(data, cal)
	if err != nil {
		return "", err
	}

	resolved, err := resolve.Resolve(kind, opts, instant, cd)
	if err != nil {
		return "", err
	}

	if resolved.Template != "" {
		datePart, err := render(data, cd, cal, instant, opts, resolved.DatePattern)
		if err != nil {
			return "", err
		}
		timePart, err := render(data, cd, cal, instant, opts, resolved.TimePattern)
		if err != nil {
			return "", err
		}
		return substituteDateTime(resolved.Template, datePart, timePart), nil
	}

	return render(data, cd, cal, instant, opts, resolved.Pattern)
}

// substituteDateTime fills a "{1} ... {0}" composition template: {1} is
// the date part, {0} the time part.
func substituteDateTime(template, date, time string) string {
	out := make([]byte, 0, len(template)+len(date)+len(time))
	for i := 0; i < len(template); i++ {
		if template[i] == '{' && i+2 < len(template) && template[i+2] == '}' {
			switch template[i+1] {
			case '0':
				out = append(out, time...)
				i += 2
				continue
			case '1':
				out = append(out, date...)
				i += 2
				continue
			}
		}
		out = append(out, template[i])
	}
	return string(out)
}

// FormatDate renders instant's date fields. Requires at minimum
// year|month|day present, per the requested format's needs.
func FormatDate(instant Instant, opts Options) (string, error) {
	return resolveAndRender(resolve.KindDate, instant, opts)
}

// FormatTime renders instant's time fields.
func FormatTime(instant Instant, opts Options) (string, error) {
	return resolveAndRender(resolve.KindTime, instant, opts)
}

// FormatDateTime renders both instant's date and time fields, combined
// via the locale's date-time composition template.
func FormatDateTime(instant Instant, opts Options) (string, error) {
	return resolveAndRender(resolve.KindDateTime, instant, opts)
}

// MustFormatDate is FormatDate, panicking on error.
func MustFormatDate(instant Instant, opts Options) string {
	s, err := FormatDate(instant, opts)
	if err != nil {
		panic(err)
	}
	return s
}

// MustFormatTime is FormatTime, panicking on error.
func MustFormatTime(instant Instant, opts Options) string {
	s, err := FormatTime(instant, opts)
	if err != nil {
		panic(err)
	}
	return s
}

// LookupLocale resolves a BCP-47 tag against the active loader. It is
// exported for the sibling interval and relative packages, which need
// the same locale/calendar resolution this package's own formatting
// calls perform.
func LookupLocale(tag string) (*locale.Data, error) { return lookupLocale(tag) }

// LookupCalendar resolves a locale's calendar data by tag, defaulting
// to calendar.Gregorian.
func LookupCalendar(data *locale.Data, cal calendar.Tag) (*locale.CalendarData, error) {
	return lookupCalendar(data, cal)
}

// RenderPattern compiles (via the shared process-wide cache) and
// renders a single TR35 pattern string against instant, then
// transliterates the result. It is the same rendering step FormatDate/
// Time/DateTime use, exported for the interval package's split halves.
func RenderPattern(data *locale.Data, cd *locale.CalendarData, cal calendar.Tag, instant Instant, opts Options, pat string) (string, error) {
	return render(data, cd, cal, instant, opts, pat)
}

// MustFormatDateTime is FormatDateTime, panicking on error.
func MustFormatDateTime(instant Instant, opts Options) string {
	s, err := FormatDateTime(instant, opts)
	if err != nil {
		panic(err)
	}
	return s
}
