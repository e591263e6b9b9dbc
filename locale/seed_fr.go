package locale

import "github.com/go-cldr/dtfmt/calendar"

func seedFrench() *Data {
	months := Names{
		Format: NameTable{
			Abbreviated: []string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
			Wide:        []string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
			Narrow:      []string{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
		},
	}
	months.StandAlone = months.Format

	days := Names{
		Format: NameTable{
			Abbreviated: []string{"lun.", "mar.", "mer.", "jeu.", "ven.", "sam.", "dim."},
			Wide:        []string{"lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi", "dimanche"},
			Narrow:      []string{"L", "M", "M", "J", "V", "S", "D"},
			Short:       []string{"lu", "ma", "me", "je", "ve", "sa", "di"},
		},
	}
	days.StandAlone = days.Format

	quarters := Names{
		Format: NameTable{
			Abbreviated: []string{"T1", "T2", "T3", "T4"},
			Wide:        []string{"1er trimestre", "2e trimestre", "3e trimestre", "4e trimestre"},
			Narrow:      []string{"1", "2", "3", "4"},
		},
	}
	quarters.StandAlone = quarters.Format

	gregorian := &CalendarData{
		DateFormats: map[Style]string{
			Short:  "dd/MM/y",
			Medium: "d MMM y",
			Long:   "d MMMM y",
			Full:   "EEEE d MMMM y",
		},
		TimeFormats: map[Style]string{
			Short:  "HH:mm",
			Medium: "HH:mm:ss",
			Long:   "HH:mm:ss z",
			Full:   "HH:mm:ss z",
		},
		DateTimeFormats: map[Style]string{
			Short:  "{1} {0}",
			Medium: "{1} {0}",
			Long:   "{1} {0}",
			Full:   "{1}, {0}",
		},
		DateTimeAtFormats: map[Style]string{
			Short:  "{1} à {0}",
			Medium: "{1} à {0}",
			Long:   "{1} à {0}",
			Full:   "{1} à {0}",
		},
		AvailableFormats: map[string]AvailableFormat{
			"yM":     {Pattern: "MM/y"},
			"yMMM":   {Pattern: "MMM y"},
			"yMd":    {Pattern: "dd/MM/y"},
			"yMMMd":  {Pattern: "d MMM y"},
			"yMEd":   {Pattern: "EEE d/MM/y"},
			"yMMMEd": {Pattern: "EEE d MMM y"},
			"MMMd":   {Pattern: "d MMM"},
			"Md":     {Pattern: "dd/MM"},
			"Hm":     {Pattern: "HH:mm"},
			"hm":     {Pattern: "HH:mm"},
			"hms":    {Pattern: "HH:mm:ss"},
		},
		IntervalFormats: map[string]IntervalFormat{
			"yMd": {
				DiffYear:  "dd/MM/y – dd/MM/y",
				DiffMonth: "dd/MM – dd/MM/y",
				DiffDay:   "dd – dd/MM/y",
			},
			"yMMMd": {
				DiffYear:  "d MMM y – d MMM y",
				DiffMonth: "d – d MMM y",
				DiffDay:   "d – d MMM y",
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
			Abbreviated: []string{"av. J.-C.", "ap. J.-C."},
			Wide:        []string{"avant Jésus-Christ", "après Jésus-Christ"},
			Narrow:      []string{"av. J.-C.", "ap. J.-C."},
		},
		DayPeriods:     standardDayPeriods("AM", "PM"),
		DayPeriodRules: flexibleDayPeriodRules(),
		DayPeriodNames: map[string]string{
			"midnight":   "minuit",
			"noon":       "midi",
			"morning1":   "du matin",
			"afternoon1": "de l’après-midi",
			"evening1":   "du soir",
			"night1":     "du matin",
		},
	}

	return &Data{
		Tag: "fr",
		Calendars: map[calendar.Tag]*CalendarData{
			calendar.Gregorian: gregorian,
		},
		TimeZoneNames: TimeZoneNames{
			GMTFormat:     "UTC{0}",
			GMTZeroFormat: "UTC",
			HourFormatPos: "+HH:mm",
			HourFormatNeg: "-HH:mm",
		},
		DateFields:          frenchDateFields(),
		NumberSystemDefault: "latn",
		DigitMaps:           map[string][10]rune{"latn": latinDigits},
		PluralCardinal:      french(),
	}
}

func frenchDateFields() map[RelativeUnit]RelativeUnitData {
	plural := func(singular, plural string) map[PluralCategory]string {
		return map[PluralCategory]string{PluralOne: "il y a {0} " + singular, PluralOther: "il y a {0} " + plural}
	}
	future := func(singular, plural string) map[PluralCategory]string {
		return map[PluralCategory]string{PluralOne: "dans {0} " + singular, PluralOther: "dans {0} " + plural}
	}

	return map[RelativeUnit]RelativeUnitData{
		UnitDay: {
			Standard: RelativeStyleData{
				Past:   plural("jour", "jours"),
				Future: future("jour", "jours"),
				Exact:  map[int]string{-2: "avant-hier", -1: "hier", 0: "aujourd’hui", 1: "demain", 2: "après-demain"},
			},
		},
		UnitWeek: {
			Standard: RelativeStyleData{
				Past:   plural("semaine", "semaines"),
				Future: future("semaine", "semaines"),
				Exact:  map[int]string{-1: "la semaine dernière", 0: "cette semaine", 1: "la semaine prochaine"},
			},
		},
		UnitMonth: {
			Standard: RelativeStyleData{
				Past:   plural("mois", "mois"),
				Future: future("mois", "mois"),
				Exact:  map[int]string{-1: "le mois dernier", 0: "ce mois-ci", 1: "le mois prochain"},
			},
		},
		UnitYear: {
			Standard: RelativeStyleData{
				Past:   plural("an", "ans"),
				Future: future("an", "ans"),
				Exact:  map[int]string{-1: "l’année dernière", 0: "cette année", 1: "l’année prochaine"},
			},
		},
		UnitMonday:    frenchWeekdayExact("lundi"),
		UnitTuesday:   frenchWeekdayExact("mardi"),
		UnitWednesday: frenchWeekdayExact("mercredi"),
		UnitThursday:  frenchWeekdayExact("jeudi"),
		UnitFriday:    frenchWeekdayExact("vendredi"),
		UnitSaturday:  frenchWeekdayExact("samedi"),
		UnitSunday:    frenchWeekdayExact("dimanche"),
	}
}

// frenchWeekdayExact builds the "dernier"/"ce"/"prochain" exact-offset
// templates CLDR fr uses for day-of-week relative expressions.
func frenchWeekdayExact(name string) RelativeUnitData {
	return RelativeUnitData{
		Standard: RelativeStyleData{
			Exact: map[int]string{-1: name + " dernier", 0: "ce " + name, 1: name + " prochain"},
		},
	}
}
