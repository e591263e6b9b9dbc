// Package relative scales a duration or date-to-date delta into a unit
// and selects the locale's past/future/exact-offset template for it.
package relative

import (
	"github.com/go-cldr/dtfmt"
	"github.com/go-cldr/dtfmt/internal/model"
	"github.com/go-cldr/dtfmt/internal/numfmt"
	"github.com/go-cldr/dtfmt/locale"
)

// Options configures a format_relative call, layering the relative-only
// options on top of the shared Options (locale, number_system, ...).
type Options struct {
	dtfmt.Options

	Style      locale.RelativeStyle
	RelativeTo *dtfmt.Instant               // baseline instant for instant-based deltas
	DeriveUnit func(seconds int64) locale.RelativeUnit // overrides the default step table
}

var weekdayUnits = map[int]locale.RelativeUnit{
	1: locale.UnitMonday, 2: locale.UnitTuesday, 3: locale.UnitWednesday,
	4: locale.UnitThursday, 5: locale.UnitFriday, 6: locale.UnitSaturday, 7: locale.UnitSunday,
}

// FormatDelta renders an explicit signed count of unit; n==0 resolves to
// the unit's "this X" exact template.
func FormatDelta(n int64, unit locale.RelativeUnit, opts Options) (string, error) {
	data, err := dtfmt.LookupLocale(opts.Locale)
	if err != nil {
		return "", err
	}

	unitData, ok := data.DateFields[unit]
	if !ok {
		return "", model.NewError(model.UnknownTimeUnit, "locale %q defines no relative templates for unit %q", data.Tag, unit)
	}
	styleData := unitData.ForStyle(opts.Style)

	if tmpl, ok := styleData.Exact[int(n)]; ok {
		return tmpl, nil
	}

	if n == 0 {
		return "", model.NewError(model.InvalidFormat, "unit %q has no zero-offset template", unit)
	}

	templates := styleData.Past
	abs := n
	if n > 0 {
		templates = styleData.Future
	} else {
		abs = -n
	}
	if templates == nil {
		return "", model.NewError(model.InvalidFormat, "unit %q has no template for offset %d", unit, n)
	}

	category := data.PluralCardinal(abs)
	tmpl, ok := templates[category]
	if !ok {
		tmpl, ok = templates[locale.PluralOther]
		if !ok {
			return "", model.NewError(model.InvalidFormat, "unit %q has no plural template for %q", unit, category)
		}
	}

	count, ok := numfmt.Render(data, opts.NumberSystem, abs)
	if !ok {
		return "", model.NewError(model.InvalidNumberSystem, "locale %q has no digit map for number system %q", data.Tag, opts.NumberSystem)
	}
	return substituteCount(tmpl, count), nil
}

func substituteCount(tmpl, count string) string {
	out := make([]byte, 0, len(tmpl)+len(count))
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] == '{' && i+2 < len(tmpl) && tmpl[i+1] == '0' && tmpl[i+2] == '}' {
			out = append(out, count...)
			i += 2
			continue
		}
		out = append(out, tmpl[i])
	}
	return string(out)
}

// FormatWeekday renders a day-of-week relative expression ("next Wednesday",
// "mercredi dernier") for a small signed offset against the given ISO
// weekday (1=Monday..7=Sunday).
func FormatWeekday(isoWeekday int, offset int, opts Options) (string, error) {
	unit, ok := weekdayUnits[isoWeekday]
	if !ok {
		return "", model.NewError(model.UnknownTimeUnit, "invalid iso weekday %d", isoWeekday)
	}
	return FormatDelta(int64(offset), unit, opts)
}
