package locale

import "github.com/go-cldr/dtfmt/calendar"

func seedJapanese() *Data {
	months := Names{
		Format: NameTable{
			Abbreviated: []string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
		},
	}
	months.Format.Wide = months.Format.Abbreviated
	months.Format.Narrow = months.Format.Abbreviated
	months.StandAlone = months.Format

	days := Names{
		Format: NameTable{
			Abbreviated: []string{"月", "火", "水", "木", "金", "土", "日"},
			Short:       []string{"月", "火", "水", "木", "金", "土", "日"},
		},
	}
	days.Format.Wide = []string{"月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日", "日曜日"}
	days.Format.Narrow = days.Format.Abbreviated
	days.StandAlone = days.Format

	quarters := Names{
		Format: NameTable{
			Abbreviated: []string{"Q1", "Q2", "Q3", "Q4"},
			Wide:        []string{"第1四半期", "第2四半期", "第3四半期", "第4四半期"},
			Narrow:      []string{"1", "2", "3", "4"},
		},
	}
	quarters.StandAlone = quarters.Format

	gregorian := &CalendarData{
		DateFormats: map[Style]string{
			Short:  "y/MM/dd",
			Medium: "y/MM/dd",
			Long:   "y年M月d日",
			Full:   "y年M月d日EEEE",
		},
		TimeFormats: map[Style]string{
			Short:  "H:mm",
			Medium: "H:mm:ss",
			Long:   "H:mm:ss z",
			Full:   "H時mm分ss秒 z",
		},
		DateTimeFormats: map[Style]string{
			Short:  "{1} {0}",
			Medium: "{1} {0}",
			Long:   "{1} {0}",
			Full:   "{1} {0}",
		},
		AvailableFormats: map[string]AvailableFormat{
			"yM":    {Pattern: "y/M"},
			"yMMM":  {Pattern: "y年M月"},
			"yMd":   {Pattern: "y/MM/dd"},
			"yMMMd": {Pattern: "y年M月d日"},
			"Hm":    {Pattern: "H:mm"},
		},
		IntervalFormats: map[string]IntervalFormat{
			"yMd": {
				DiffYear:  "y/MM/dd～y/MM/dd",
				DiffMonth: "y/MM/dd～MM/dd",
				DiffDay:   "y/MM/dd～dd",
			},
		},
		IntervalFallback: "{0}～{1}",
		Months:           months,
		Days:             days,
		Quarters:         quarters,
		Eras: NameTable{
			Abbreviated: []string{"紀元前", "西暦"},
			Wide:        []string{"紀元前", "西暦"},
			Narrow:      []string{"BC", "AD"},
		},
		DayPeriods: NameTable{
			Abbreviated: []string{"午前", "午後"},
			Wide:        []string{"午前", "午後"},
			Narrow:      []string{"AM", "PM"},
		},
		DayPeriodRules: flexibleDayPeriodRules(),
		DayPeriodNames: map[string]string{
			"midnight":   "真夜中",
			"noon":       "正午",
			"morning1":   "朝",
			"afternoon1": "昼",
			"evening1":   "夕方",
			"night1":     "夜",
		},
	}

	return &Data{
		Tag: "ja",
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
					Past:   map[PluralCategory]string{PluralOther: "{0}日前"},
					Future: map[PluralCategory]string{PluralOther: "{0}日後"},
					Exact:  map[int]string{-1: "昨日", 0: "今日", 1: "明日"},
				},
			},
		},
		NumberSystemDefault: "latn",
		DigitMaps:           map[string][10]rune{"latn": latinDigits},
		PluralCardinal:      japanese(),
	}
}
