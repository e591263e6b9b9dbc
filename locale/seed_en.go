package locale

import "github.com/go-cldr/dtfmt/calendar"

func seedEnglish() *Data {
	months := Names{
		Format: NameTable{
			Abbreviated: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
			Wide:        []string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
			Narrow:      []string{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
		},
	}
	months.StandAlone = months.Format

	days := Names{
		Format: NameTable{
			Abbreviated: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
			Wide:        []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
			Narrow:      []string{"M", "T", "W", "T", "F", "S", "S"},
			Short:       []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"},
		},
	}
	days.StandAlone = days.Format

	quarters := Names{
		Format: NameTable{
			Abbreviated: []string{"Q1", "Q2", "Q3", "Q4"},
			Wide:        []string{"1st quarter", "2nd quarter", "3rd quarter", "4th quarter"},
			Narrow:      []string{"1", "2", "3", "4"},
		},
	}
	quarters.StandAlone = quarters.Format

	gregorian := &CalendarData{
		DateFormats: map[Style]string{
			Short:  "M/d/yy",
			Medium: "MMM d, y",
			Long:   "MMMM d, y",
			Full:   "EEEE, MMMM d, y",
		},
		TimeFormats: map[Style]string{
			Short:  "h:mm a",
			Medium: "h:mm:ss a",
			Long:   "h:mm:ss a z",
			Full:   "h:mm:ss a z",
		},
		DateTimeFormats: map[Style]string{
			Short:  "{1}, {0}",
			Medium: "{1}, {0}",
			Long:   "{1} 'at' {0}",
			Full:   "{1}, {0}",
		},
		DateTimeAtFormats: map[Style]string{
			Short:  "{1} 'at' {0}",
			Medium: "{1} 'at' {0}",
			Long:   "{1} 'at' {0}",
			Full:   "{1} 'at' {0}",
		},
		AvailableFormats: map[string]AvailableFormat{
			"yM":     {Pattern: "M/y"},
			"yMMM":   {Pattern: "MMM y"},
			"yMd":    {Pattern: "M/d/y"},
			"yMMMd":  {Pattern: "MMM d, y"},
			"yMEd":   {Pattern: "EEE, M/d/y"},
			"yMMMEd": {Pattern: "EEE, MMM d, y"},
			"MMMd":   {Pattern: "MMM d"},
			"Md":     {Pattern: "M/d"},
			"Hm":     {Pattern: "HH:mm"},
			"hm":     {Pattern: "h:mm a"},
			"hms":    {Pattern: "h:mm:ss a"},
			"Ehm":    {Pattern: "EEE h:mm a"},
		},
		IntervalFormats: map[string]IntervalFormat{
			"yMd": {
				DiffYear:  "M/d/y – M/d/y",
				DiffMonth: "M/d – M/d/y",
				DiffDay:   "M/d – d, y",
			},
			"yMMMd": {
				DiffYear:  "MMM d, y – MMM d, y",
				DiffMonth: "MMM d – d, y",
				DiffDay:   "MMM d – d, y",
			},
			"Hm": {
				DiffHour:   "HH:mm – HH:mm",
				DiffMinute: "HH:mm – HH:mm",
			},
			"hm": {
				DiffHour:   "h:mm a – h:mm a",
				DiffMinute: "h:mm – h:mm a",
			},
			"hmflex": {
				DiffHour:   "h:mm B – h:mm B",
				DiffMinute: "h:mm – h:mm B",
			},
		},
		IntervalFallback: "{0} - {1}",
		Months:           months,
		Days:             days,
		Quarters:         quarters,
		Eras: NameTable{
			Abbreviated: []string{"BC", "AD"},
			Wide:        []string{"Before Christ", "Anno Domini"},
			Narrow:      []string{"B", "A"},
		},
		ErasVariant: NameTable{
			Abbreviated: []string{"BCE", "CE"},
			Wide:        []string{"Before Common Era", "Common Era"},
			Narrow:      []string{"B", "C"},
		},
		DayPeriods:     standardDayPeriods("AM", "PM"),
		DayPeriodRules: flexibleDayPeriodRules(),
		DayPeriodNames: map[string]string{
			"midnight":   "midnight",
			"noon":       "noon",
			"morning1":   "in the morning",
			"afternoon1": "in the afternoon",
			"evening1":   "in the evening",
			"night1":     "at night",
		},
	}

	return &Data{
		Tag: "en",
		Calendars: map[calendar.Tag]*CalendarData{
			calendar.Gregorian: gregorian,
		},
		TimeZoneNames: TimeZoneNames{
			GMTFormat:     "GMT{0}",
			GMTZeroFormat: "GMT",
			HourFormatPos: "+HH:mm",
			HourFormatNeg: "-HH:mm",
		},
		DateFields:          englishDateFields(),
		NumberSystemDefault: "latn",
		DigitMaps:           map[string][10]rune{"latn": latinDigits},
		PluralCardinal:      english(),
	}
}

func englishDateFields() map[RelativeUnit]RelativeUnitData {
	simplePlural := func(singular, plural string) map[PluralCategory]string {
		return map[PluralCategory]string{PluralOne: "{0} " + singular, PluralOther: "{0} " + plural}
	}

	return map[RelativeUnit]RelativeUnitData{
		UnitDay: {
			Standard: RelativeStyleData{
				Past:   simplePlural("day ago", "days ago"),
				Future: simplePlural("day from now", "days from now"),
				Exact:  map[int]string{-2: "2 days ago", -1: "yesterday", 0: "today", 1: "tomorrow", 2: "in 2 days"},
			},
			Short: RelativeStyleData{
				Past:   simplePlural("day ago", "days ago"),
				Future: simplePlural("day from now", "days from now"),
				Exact:  map[int]string{-1: "yesterday", 0: "today", 1: "tomorrow"},
			},
			Narrow: RelativeStyleData{
				Past:   simplePlural("day ago", "days ago"),
				Future: simplePlural("day from now", "days from now"),
				Exact:  map[int]string{-1: "yesterday", 0: "today", 1: "tomorrow"},
			},
		},
		UnitWeek: {
			Standard: RelativeStyleData{
				Past:   simplePlural("week ago", "weeks ago"),
				Future: simplePlural("week from now", "weeks from now"),
				Exact:  map[int]string{-1: "last week", 0: "this week", 1: "next week"},
			},
		},
		UnitMonth: {
			Standard: RelativeStyleData{
				Past:   simplePlural("month ago", "months ago"),
				Future: simplePlural("month from now", "months from now"),
				Exact:  map[int]string{-1: "last month", 0: "this month", 1: "next month"},
			},
		},
		UnitYear: {
			Standard: RelativeStyleData{
				Past:   simplePlural("year ago", "years ago"),
				Future: simplePlural("year from now", "years from now"),
				Exact:  map[int]string{-1: "last year", 0: "this year", 1: "next year"},
			},
		},
		UnitQuarter: {
			Standard: RelativeStyleData{
				Past:   simplePlural("quarter ago", "quarters ago"),
				Future: simplePlural("quarter from now", "quarters from now"),
				Exact:  map[int]string{-1: "last quarter", 0: "this quarter", 1: "next quarter"},
			},
		},
		UnitMonday:    weekdayExact("Monday"),
		UnitTuesday:   weekdayExact("Tuesday"),
		UnitWednesday: weekdayExact("Wednesday"),
		UnitThursday:  weekdayExact("Thursday"),
		UnitFriday:    weekdayExact("Friday"),
		UnitSaturday:  weekdayExact("Saturday"),
		UnitSunday:    weekdayExact("Sunday"),
	}
}

func weekdayExact(name string) RelativeUnitData {
	return RelativeUnitData{
		Standard: RelativeStyleData{
			Exact: map[int]string{-1: "last " + name, 0: "this " + name, 1: "next " + name},
		},
	}
}
