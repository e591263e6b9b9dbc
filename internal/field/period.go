package field

// renderPeriod implements `a` (am/pm), `b` (am/pm plus exact noon/
// midnight where the locale defines them), and `B` (flexible day
// period).
func renderPeriod(ctx *Context, symbol rune, length int) (string, error) {
	h, err := ctx.hour()
	if err != nil {
		return "", err
	}
	m, _ := ctx.minute()

	width := widthForRun(length)

	switch symbol {
	case 'a':
		return ctx.Calendar.DayPeriods.At(width, amPMIndex(h)), nil
	case 'b':
		if h == 12 && m == 0 {
			if name, ok := ctx.Calendar.DayPeriodNames["noon"]; ok {
				return name, nil
			}
		}
		if h == 0 && m == 0 {
			if name, ok := ctx.Calendar.DayPeriodNames["midnight"]; ok {
				return name, nil
			}
		}
		return ctx.Calendar.DayPeriods.At(width, amPMIndex(h)), nil
	case 'B':
		key := matchFlexibleDayPeriod(ctx, h, m)
		if key == "" {
			return ctx.Calendar.DayPeriods.At(width, amPMIndex(h)), nil
		}
		return ctx.Calendar.DayPeriodNames[key], nil
	}
	return "", nil
}

func amPMIndex(hour int) int {
	if hour < 12 {
		return 0
	}
	return 1
}

// matchFlexibleDayPeriod applies the locale's day-period rule table:
// exact ("at") rules are matched before ranged ("from"/"before") rules,
// since otherwise noon/midnight would be swallowed by the containing
// morning/afternoon/night range. Ranged rules wrap past midnight when
// Before < From.
func matchFlexibleDayPeriod(ctx *Context, hour, minute int) string {
	minutes := hour*60 + minute

	for _, rule := range ctx.Calendar.DayPeriodRules {
		if rule.Exact != nil && *rule.Exact == minutes {
			return rule.Key
		}
	}
	for _, rule := range ctx.Calendar.DayPeriodRules {
		if rule.Exact != nil {
			continue
		}
		from, before := *rule.From, *rule.Before
		if from <= before {
			if minutes >= from && minutes < before {
				return rule.Key
			}
		} else { // wraps past midnight
			if minutes >= from || minutes < before {
				return rule.Key
			}
		}
	}
	return ""
}
