package locale

import "github.com/go-cldr/dtfmt/calendar"

func seedGerman() *Data {
	months := Names{
		Format: NameTable{
			Abbreviated: []string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
			Wide:        []string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
			Narrow:      []string{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
		},
	}
	months.StandAlone = months.Format

	days := Names{
		Format: NameTable{
			Abbreviated: []string{"Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa.", "So."},
			Wide:        []string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag"},
			Narrow:      []string{"M", "D", "M", "D", "F", "S", "S"},
			Short:       []string{"Mo", "Di", "Mi", "Do", "Fr", "Sa", "So"},
		},
	}
	days.StandAlone = days.Format

	quarters := Names{
		Format: NameTable{
			Abbreviated: []string{"Q1", "Q2", "Q3", "Q4"},
			Wide:        []string{"1. Quartal", "2. Quartal", "3. Quartal", "4. Quartal"},
			Narrow:      []string{"1", "2", "3", "4"},
		},
	}
	quarters.StandAlone = quarters.Format

	gregorian := &CalendarData{
		DateFormats: map[Style]string{
			Short:  "dd.MM.yy",
			Medium: "dd.MM.y",
			Long:   "d. MMMM y",
			Full:   "EEEE, d. MMMM y",
		},
		TimeFormats: map[Style]string{
			Short:  "HH:mm",
			Medium: "HH:mm:ss",
			Long:   "HH:mm:ss z",
			Full:   "HH:mm:ss z",
		},
		DateTimeFormats: map[Style]string{
			Short:  "{1}, {0}",
			Medium: "{1}, {0}",
			Long:   "{1} 'um' {0}",
			Full:   "{1}, {0}",
		},
		AvailableFormats: map[string]AvailableFormat{
			"yM":    {Pattern: "MM.y"},
			"yMMM":  {Pattern: "MMM y"},
			"yMd":   {Pattern: "dd.MM.y"},
			"yMMMd": {Pattern: "d. MMM y"},
			"Hm":    {Pattern: "HH:mm"},
		},
		IntervalFormats: map[string]IntervalFormat{
			"yMd": {
				DiffYear:  "dd.MM.y – dd.MM.y",
				DiffMonth: "dd.MM. – dd.MM.y",
				DiffDay:   "dd. – dd.MM.y",
			},
			"Hm": {
				DiffHour:   "HH:mm – HH:mm",
				DiffMinute: "HH:mm – HH:mm",
			},
		},
		IntervalFallback: "{0} - {1}",
		Months:           months,
		Days:             days,
		Quarters:         quarters,
		Eras: NameTable{
			Abbreviated: []string{"v. Chr.", "n. Chr."},
			Wide:        []string{"vor Christus", "nach Christus"},
			Narrow:      []string{"v. Chr.", "n. Chr."},
		},
		DayPeriods:     standardDayPeriods("AM", "PM"),
		DayPeriodRules: flexibleDayPeriodRules(),
		DayPeriodNames: map[string]string{
			"midnight":   "Mitternacht",
			"noon":       "Mittag",
			"morning1":   "morgens",
			"afternoon1": "nachmittags",
			"evening1":   "abends",
			"night1":     "nachts",
		},
	}

	return &Data{
		Tag: "de",
		Calendars: map[calendar.Tag]*CalendarData{
			calendar.Gregorian: gregorian,
		},
		TimeZoneNames: TimeZoneNames{
			GMTFormat:     "GMT{0}",
			GMTZeroFormat: "GMT",
			HourFormatPos: "+HH:mm",
			HourFormatNeg: "-HH:mm",
		},
		DateFields: map[RelativeUnit]RelativeUnitData{
			UnitDay: {
				Standard: RelativeStyleData{
					Past:   map[PluralCategory]string{PluralOne: "vor {0} Tag", PluralOther: "vor {0} Tagen"},
					Future: map[PluralCategory]string{PluralOne: "in {0} Tag", PluralOther: "in {0} Tagen"},
					Exact:  map[int]string{-1: "gestern", 0: "heute", 1: "morgen"},
				},
			},
			UnitYear: {
				Standard: RelativeStyleData{
					Past:   map[PluralCategory]string{PluralOne: "vor {0} Jahr", PluralOther: "vor {0} Jahren"},
					Future: map[PluralCategory]string{PluralOne: "in {0} Jahr", PluralOther: "in {0} Jahren"},
					Exact:  map[int]string{-1: "letztes Jahr", 0: "dieses Jahr", 1: "nächstes Jahr"},
				},
			},
		},
		NumberSystemDefault: "latn",
		DigitMaps:           map[string][10]rune{"latn": latinDigits},
		PluralCardinal:      german(),
	}
}
