package locale

// The functions in this file build the small, hand-seeded locale data set
// this package ships as its default Loader (locale.Default()). They are
// not a substitute for a real CLDR data loader - just enough to exercise
// every component of the formatter end to end and to back this
// repository's tests.

func intp(v int) *int { return &v }

func english() func(n int64) PluralCategory {
	return func(n int64) PluralCategory {
		if n == 1 {
			return PluralOne
		}
		return PluralOther
	}
}

func french() func(n int64) PluralCategory {
	return func(n int64) PluralCategory {
		if n == 0 || n == 1 {
			return PluralOne
		}
		return PluralOther
	}
}

func german() func(n int64) PluralCategory {
	return func(n int64) PluralCategory {
		if n == 1 {
			return PluralOne
		}
		return PluralOther
	}
}

func japanese() func(n int64) PluralCategory {
	return func(n int64) PluralCategory {
		return PluralOther
	}
}

// arabic implements CLDR's six-way cardinal rule for the "ar" locale
// family, in the style of go-playground/locales' generated
// CardinalPluralRule methods.
func arabic() func(n int64) PluralCategory {
	return func(n int64) PluralCategory {
		if n < 0 {
			n = -n
		}
		mod100 := n % 100
		switch {
		case n == 0:
			return PluralZero
		case n == 1:
			return PluralOne
		case n == 2:
			return PluralTwo
		case mod100 >= 3 && mod100 <= 10:
			return PluralFew
		case mod100 >= 11 && mod100 <= 99:
			return PluralMany
		default:
			return PluralOther
		}
	}
}

var latinDigits = [10]rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'}

var arabicIndicDigits = [10]rune{
	'٠', '١', '٢', '٣', '٤', '٥', '٦', '٧', '٨', '٩',
}

// standardDayPeriods builds the common am/pm-only NameTable used by the
// `a` field when a locale defines no flexible day periods beyond am/pm.
func standardDayPeriods(am, pm string) NameTable {
	return NameTable{
		Abbreviated: []string{am, pm},
		Wide:        []string{am, pm},
		Narrow:      []string{am, pm},
	}
}

// flexibleDayPeriodRules is the CLDR-typical six-bucket rule set used by
// every seed locale in this package: midnight and noon are exact points,
// the rest are half-open ranges. Exact rules are listed first so the
// day-period renderer's "exact before ranged" matching order naturally
// follows rule-table order.
func flexibleDayPeriodRules() []DayPeriodRule {
	return []DayPeriodRule{
		{Key: "midnight", Exact: intp(0)},
		{Key: "noon", Exact: intp(12 * 60)},
		{Key: "morning1", From: intp(6 * 60), Before: intp(12 * 60)},
		{Key: "afternoon1", From: intp(12 * 60), Before: intp(18 * 60)},
		{Key: "evening1", From: intp(18 * 60), Before: intp(21 * 60)},
		{Key: "night1", From: intp(21 * 60), Before: intp(6 * 60)},
	}
}
