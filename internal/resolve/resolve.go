package resolve

import (
	"strings"

	"github.com/go-cldr/dtfmt/internal/model"
	"github.com/go-cldr/dtfmt/locale"
)

// Kind identifies which of date/time/datetime a resolve call is for.
type Kind int

const (
	KindDate Kind = iota
	KindTime
	KindDateTime
)

// Resolved is what the format resolver produces. For Date/Time requests,
// and for DateTime requests resolved to a single available-
// format/literal pattern, Pattern alone is rendered. For a DateTime
// request resolved via the standard style precedence, the date and time
// parts are rendered independently as DatePattern/TimePattern and then
// substituted into Template's {1}/{0} placeholders.
type Resolved struct {
	Pattern     string
	Template    string
	DatePattern string
	TimePattern string
}

// Resolve implements the format resolver's precedence order: style,
// then named format, then literal pattern, then (for a date request
// whose instant carries some but not all of year/month/day, with no
// explicit format) skeleton matching. Any other request without a
// format uses the medium style.
func Resolve(kind Kind, opts model.Options, instant model.Instant, cal *locale.CalendarData) (Resolved, error) {
	format := strings.TrimSpace(opts.Format)
	partialDate := kind == KindDate && !instant.HasDate() &&
		(instant.Year != nil || instant.Month != nil || instant.Day != nil)

	if style, ok := locale.ParseStyle(format); ok || (format == "" && !partialDate) {
		if format == "" {
			style = locale.Medium
		}
		return resolveStyle(kind, style, opts, cal)
	}

	if strings.HasPrefix(format, ":") {
		name := strings.TrimPrefix(format, ":")
		af, ok := cal.AvailableFormats[name]
		if !ok {
			return Resolved{}, model.NewError(model.UnknownFormat, "no available format named %q", name)
		}
		return Resolved{Pattern: af.Resolve(opts.Variant())}, nil
	}

	// A bare name matching an available-format key is also accepted
	// without the ":" sigil, for callers that pass skeleton ids directly
	// (as scenario 3/4's format.md examples do via skeleton-derived
	// lookups rather than named lookups).
	if af, ok := cal.AvailableFormats[format]; ok && looksLikeSkeleton(format) {
		return Resolved{Pattern: af.Resolve(opts.Variant())}, nil
	}

	if format != "" {
		return Resolved{Pattern: format}, nil
	}

	skeleton := DeriveSkeleton(instant)
	_, pattern, ok := MatchSkeleton(skeleton, cal.AvailableFormats, opts.Variant())
	if !ok {
		return Resolved{}, model.NewError(model.UnresolvedFormat, "no available format matches skeleton %q", skeleton)
	}
	return Resolved{Pattern: pattern}, nil
}

// looksLikeSkeleton reports whether s is composed only of TR35 field
// letters, distinguishing a bare skeleton id ("yMMMd") from a literal
// pattern that happens to share no punctuation ("yMMMd" would in fact be
// ambiguous with a literal all-letter pattern; CLDR skeleton ids are
// conventionally looked up by exact key first, which is what this
// guards).
func looksLikeSkeleton(s string) bool {
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return false
		}
	}
	return len(s) > 0
}

func resolveStyle(kind Kind, style locale.Style, opts model.Options, cal *locale.CalendarData) (Resolved, error) {
	switch kind {
	case KindDate:
		p, ok := cal.DateFormats[style]
		if !ok {
			return Resolved{}, model.NewError(model.InvalidStyle, "no date format for style %q", style)
		}
		return Resolved{Pattern: p}, nil

	case KindTime:
		p, ok := cal.TimeFormats[style]
		if !ok {
			return Resolved{}, model.NewError(model.InvalidStyle, "no time format for style %q", style)
		}
		return Resolved{Pattern: p}, nil

	case KindDateTime:
		templates := cal.DateTimeFormats
		if opts.Style == "at" && len(cal.DateTimeAtFormats) > 0 {
			templates = cal.DateTimeAtFormats
		}
		tmpl, ok := templates[style]
		if !ok {
			return Resolved{}, model.NewError(model.InvalidStyle, "no date-time format for style %q", style)
		}

		dateStyle, timeStyle := style, style
		if opts.DateFormat != "" {
			if s, ok := locale.ParseStyle(opts.DateFormat); ok {
				dateStyle = s
			}
		}
		if opts.TimeFormat != "" {
			if s, ok := locale.ParseStyle(opts.TimeFormat); ok {
				timeStyle = s
			}
		}

		datePattern, ok := cal.DateFormats[dateStyle]
		if !ok {
			return Resolved{}, model.NewError(model.InvalidStyle, "no date format for style %q", dateStyle)
		}
		timePattern, ok := cal.TimeFormats[timeStyle]
		if !ok {
			return Resolved{}, model.NewError(model.InvalidStyle, "no time format for style %q", timeStyle)
		}

		return Resolved{Template: tmpl, DatePattern: datePattern, TimePattern: timePattern}, nil
	}

	return Resolved{}, model.NewError(model.InvalidFormat, "unknown resolve kind")
}
