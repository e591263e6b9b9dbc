// Package locale defines the data contract the formatter consumes from a
// locale loader and provides a default in-process Loader seeded with a
// handful of locales. Locale data is
// immutable after construction and safe for concurrent use without
// synchronization, matching the "globally shared immutable data" model
// the formatter's concurrency design assumes.
package locale

import "github.com/go-cldr/dtfmt/calendar"

// Style selects one of the four CLDR standard pattern widths.
type Style int

const (
	Short Style = iota
	Medium
	Long
	Full
)

func (s Style) String() string {
	switch s {
	case Short:
		return "short"
	case Medium:
		return "medium"
	case Long:
		return "long"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

// ParseStyle resolves a style name; ok is false for anything else.
func ParseStyle(s string) (Style, bool) {
	switch s {
	case "short":
		return Short, true
	case "medium":
		return Medium, true
	case "long":
		return Long, true
	case "full":
		return Full, true
	default:
		return 0, false
	}
}

// Width is the rendered width of a name-table lookup (month, weekday,
// quarter, era, and day period names all use this set).
type Width int

const (
	Abbreviated Width = iota
	Wide
	Narrow
	// ShortWidth is only meaningful for weekday names: the CLDR "short"
	// form ("Mo", "Tu"), distinct from abbreviated ("Mon") and narrow
	// ("M"). Tables without short names fall back to abbreviated.
	ShortWidth
)

// Variant selects between a format's default rendering and an alternate
// one CLDR sometimes defines (era "AD"/"CE", lowercase "am"/"AM", ASCII
// vs Unicode spacing in a handful of available-formats).
type Variant struct {
	Default bool
	ASCII   bool
}

// DefaultVariant is the zero-value variant selection: default + unicode.
var DefaultVariant = Variant{Default: true, ASCII: false}

// PluralCategory is a CLDR plural form.
type PluralCategory string

const (
	PluralZero  PluralCategory = "zero"
	PluralOne   PluralCategory = "one"
	PluralTwo   PluralCategory = "two"
	PluralFew   PluralCategory = "few"
	PluralMany  PluralCategory = "many"
	PluralOther PluralCategory = "other"
)

// NameTable holds the month/weekday/quarter name lookups for one context
// (formatting or stand-alone), indexed [Width][0-based index].
type NameTable struct {
	Abbreviated []string
	Wide        []string
	Narrow      []string
	Short       []string // only used by weekday tables
}

// At returns the name at the given width and 0-based index, or "" if
// idx is out of range or that width has no table.
func (t NameTable) At(w Width, idx int) string {
	return t.at(w, idx)
}

func (t NameTable) at(w Width, idx int) string {
	var table []string
	switch w {
	case Abbreviated:
		table = t.Abbreviated
	case Wide:
		table = t.Wide
	case Narrow:
		table = t.Narrow
	case ShortWidth:
		table = t.Short
		if table == nil {
			table = t.Abbreviated
		}
	}
	if idx < 0 || idx >= len(table) {
		return ""
	}
	return table[idx]
}

// Names bundles the formatting-context and stand-alone-context tables for
// a field (months use both; CLDR only distinguishes the two for a
// minority of languages, so most locales populate both with the same
// slices).
type Names struct {
	Format     NameTable
	StandAlone NameTable
}

// DayPeriodRule is one entry in a locale's flexible day-period rule list.
// Exactly one of (Exact) or (From, Before) is set.
type DayPeriodRule struct {
	Key    string
	Exact  *int // minutes since midnight
	From   *int // minutes since midnight, inclusive
	Before *int // minutes since midnight, exclusive; may be < From to wrap past midnight
}

// AvailableFormat is one entry of a locale's available-formats map: a
// single pattern, or a {default,variant} and/or {unicode,ascii} set of
// sub-forms the resolver's `prefer` option selects between.
type AvailableFormat struct {
	Pattern        string
	VariantPattern string // "" if no variant exists
	ASCIIPattern   string // "" if no ascii sub-form exists
}

// Resolve picks the concrete pattern string for the requested variant
// preference, falling back to the default/unicode form when the
// requested sub-form doesn't exist.
func (f AvailableFormat) Resolve(v Variant) string {
	if !v.Default && f.VariantPattern != "" {
		return f.VariantPattern
	}
	if v.ASCII && f.ASCIIPattern != "" {
		return f.ASCIIPattern
	}
	return f.Pattern
}

// GreatestDiffField identifies the coarsest calendar field in which two
// interval endpoints differ.
type GreatestDiffField rune

const (
	DiffYear   GreatestDiffField = 'y'
	DiffMonth  GreatestDiffField = 'M'
	DiffDay    GreatestDiffField = 'd'
	DiffHour   GreatestDiffField = 'H'
	DiffMinute GreatestDiffField = 'm'
)

// IntervalFormat maps a greatest-difference field to the split pattern
// to use for that field, for one interval skeleton.
type IntervalFormat map[GreatestDiffField]string

// CalendarData is the set of patterns and name tables a locale defines
// for one CLDR calendar system.
type CalendarData struct {
	DateFormats       map[Style]string
	TimeFormats       map[Style]string
	DateTimeFormats   map[Style]string // composition templates, e.g. "{1} 'at' {0}"
	DateTimeAtFormats map[Style]string // optional; used when Options.Style == "at"

	AvailableFormats map[string]AvailableFormat
	IntervalFormats  map[string]IntervalFormat
	IntervalFallback string // e.g. "{0} - {1}"

	Months      Names
	Days        Names
	Quarters    Names
	Eras        NameTable // index 0 = BCE-equivalent, 1 = CE-equivalent
	ErasVariant NameTable // optional alternate era names ("CE"/"BCE"); may be empty

	DayPeriods     NameTable   // keyed by am=0, pm=1 for width-based a/b lookups
	DayPeriodRules []DayPeriodRule
	DayPeriodNames map[string]string // rule key -> localized name (for %B flexible periods)
}

// TimeZoneNames is the subset of a locale's time zone name data the
// engine needs to compose GMT-offset fallbacks.
type TimeZoneNames struct {
	GMTFormat     string // e.g. "GMT{0}"
	GMTZeroFormat string // e.g. "GMT"
	HourFormatPos string // e.g. "+HH:mm"
	HourFormatNeg string // e.g. "-HH:mm"
}

// RelativeStyleData is the past/future/exact template set for one unit
// at one style width (standard/short/narrow).
type RelativeStyleData struct {
	Past   map[PluralCategory]string // "{0}" placeholder for the formatted count
	Future map[PluralCategory]string
	Exact  map[int]string // offset -> literal template, no placeholder
}

// RelativeUnitData holds the three style widths for one relative-time
// unit (day, week, month, year, or a weekday/quarter unit).
type RelativeUnitData struct {
	Standard RelativeStyleData
	Short    RelativeStyleData
	Narrow   RelativeStyleData
}

// ForStyle returns the template set for the given relative-time style
// width, defaulting to Standard.
func (u RelativeUnitData) ForStyle(style RelativeStyle) RelativeStyleData {
	return u.forStyle(style)
}

func (u RelativeUnitData) forStyle(style RelativeStyle) RelativeStyleData {
	switch style {
	case RelativeShort:
		return u.Short
	case RelativeNarrow:
		return u.Narrow
	default:
		return u.Standard
	}
}

// RelativeStyle selects the CLDR width for relative-time templates.
type RelativeStyle int

const (
	RelativeStandard RelativeStyle = iota
	RelativeShort
	RelativeNarrow
)

// RelativeUnit names the unit a relative expression is phrased in.
type RelativeUnit string

const (
	UnitSecond  RelativeUnit = "second"
	UnitMinute  RelativeUnit = "minute"
	UnitHour    RelativeUnit = "hour"
	UnitDay     RelativeUnit = "day"
	UnitWeek    RelativeUnit = "week"
	UnitMonth   RelativeUnit = "month"
	UnitYear    RelativeUnit = "year"
	UnitQuarter RelativeUnit = "quarter"
	UnitMonday    RelativeUnit = "mon"
	UnitTuesday   RelativeUnit = "tue"
	UnitWednesday RelativeUnit = "wed"
	UnitThursday  RelativeUnit = "thu"
	UnitFriday    RelativeUnit = "fri"
	UnitSaturday  RelativeUnit = "sat"
	UnitSunday    RelativeUnit = "sun"
)

// Data is everything the formatter needs for one locale, covering every
// calendar the locale declares support for.
type Data struct {
	Tag    string
	Calendars map[calendar.Tag]*CalendarData

	TimeZoneNames TimeZoneNames
	DateFields    map[RelativeUnit]RelativeUnitData

	NumberSystemDefault string
	DigitMaps           map[string][10]rune

	// PluralCardinal resolves the CLDR cardinal plural category for the
	// absolute value n, in the style of go-playground/locales'
	// generated CardinalPluralRule methods.
	PluralCardinal func(n int64) PluralCategory
}

// Calendar returns the named calendar's data, or ok=false if the locale
// doesn't declare support for it.
func (d *Data) Calendar(tag calendar.Tag) (*CalendarData, bool) {
	cd, ok := d.Calendars[tag]
	return cd, ok
}
