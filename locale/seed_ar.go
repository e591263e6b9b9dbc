package locale

import "github.com/go-cldr/dtfmt/calendar"

// seedArabic demonstrates a right-to-left, non-Latin-digit locale: its
// default number system is "arab" (arabic-indic digits), exercising the
// numfmt transliteration path, and its plural rule is CLDR's full
// six-category cardinal rule, exercising every PluralCategory bucket.
func seedArabic() *Data {
	months := Names{
		Format: NameTable{
			Wide: []string{
				"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
				"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
			},
		},
	}
	months.Format.Abbreviated = months.Format.Wide
	months.Format.Narrow = []string{"ي", "ف", "م", "أ", "م", "و", "ي", "غ", "س", "أ", "ن", "د"}
	months.StandAlone = months.Format

	days := Names{
		Format: NameTable{
			Wide: []string{"الإثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت", "الأحد"},
		},
	}
	days.Format.Abbreviated = []string{"إثنين", "ثلاثاء", "أربعاء", "خميس", "جمعة", "سبت", "أحد"}
	days.Format.Narrow = []string{"ن", "ث", "ر", "خ", "ج", "س", "ح"}
	days.StandAlone = days.Format

	quarters := Names{
		Format: NameTable{
			Abbreviated: []string{"ر1", "ر2", "ر3", "ر4"},
			Wide:        []string{"الربع الأول", "الربع الثاني", "الربع الثالث", "الربع الرابع"},
			Narrow:      []string{"1", "2", "3", "4"},
		},
	}
	quarters.StandAlone = quarters.Format

	gregorian := &CalendarData{
		DateFormats: map[Style]string{
			Short:  "d/M/yy",
			Medium: "dd‏/MM‏/y",
			Long:   "d MMMM y",
			Full:   "EEEE، d MMMM y",
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
			Long:   "{1} في {0}",
			Full:   "{1}, {0}",
		},
		AvailableFormats: map[string]AvailableFormat{
			"yM":    {Pattern: "M/y"},
			"yMMM":  {Pattern: "MMM y"},
			"yMd":   {Pattern: "d/M/y"},
			"yMMMd": {Pattern: "d MMMM y"},
			"Hm":    {Pattern: "HH:mm"},
		},
		IntervalFormats: map[string]IntervalFormat{
			"yMd": {
				DiffYear:  "d/M/y – d/M/y",
				DiffMonth: "d/M – d/M/y",
				DiffDay:   "d – d/M/y",
			},
		},
		IntervalFallback: "{0}–{1}",
		Months:           months,
		Days:             days,
		Quarters:         quarters,
		Eras: NameTable{
			Abbreviated: []string{"ق.م", "م"},
			Wide:        []string{"قبل الميلاد", "ميلادي"},
			Narrow:      []string{"ق.م", "م"},
		},
		DayPeriods:     standardDayPeriods("ص", "م"),
		DayPeriodRules: flexibleDayPeriodRules(),
		DayPeriodNames: map[string]string{
			"midnight":   "منتصف الليل",
			"noon":       "ظهرًا",
			"morning1":   "صباحًا",
			"afternoon1": "ظهرًا",
			"evening1":   "مساءً",
			"night1":     "ليلاً",
		},
	}

	return &Data{
		Tag: "ar",
		Calendars: map[calendar.Tag]*CalendarData{
			calendar.Gregorian: gregorian,
		},
		TimeZoneNames: TimeZoneNames{
			GMTFormat:     "غرينتش{0}",
			GMTZeroFormat: "غرينتش",
			HourFormatPos: "+HH:mm",
			HourFormatNeg: "-HH:mm",
		},
		DateFields: map[RelativeUnit]RelativeUnitData{
			UnitDay: {
				Standard: RelativeStyleData{
					Past: map[PluralCategory]string{
						PluralZero:  "قبل {0} يوم",
						PluralOne:   "قبل يوم واحد",
						PluralTwo:   "قبل يومين",
						PluralFew:   "قبل {0} أيام",
						PluralMany:  "قبل {0} يومًا",
						PluralOther: "قبل {0} يوم",
					},
					Future: map[PluralCategory]string{
						PluralZero:  "خلال {0} يوم",
						PluralOne:   "خلال يوم واحد",
						PluralTwo:   "خلال يومين",
						PluralFew:   "خلال {0} أيام",
						PluralMany:  "خلال {0} يومًا",
						PluralOther: "خلال {0} يوم",
					},
					Exact: map[int]string{-1: "أمس", 0: "اليوم", 1: "غدًا"},
				},
			},
		},
		NumberSystemDefault: "arab",
		DigitMaps: map[string][10]rune{
			"latn": latinDigits,
			"arab": arabicIndicDigits,
		},
		PluralCardinal: arabic(),
	}
}
