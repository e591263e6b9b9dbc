package field

// renderDay implements `d`: 1 or 2 run length, numeric, padded at 2.
func renderDay(ctx *Context, length int) (string, error) {
	day, err := ctx.day()
	if err != nil {
		return "", err
	}
	return pad(day, length), nil
}

// renderDayOfYear implements `D`, delegated to the calendar interface.
func renderDayOfYear(ctx *Context, length int) (string, error) {
	year, month, day, err := ctx.dateFields()
	if err != nil {
		return "", err
	}
	return pad(ctx.Cal.DayOfYear(year, month, day), length), nil
}

// renderDayOfWeekInMonth implements `F`: the 1-based ordinal of this
// weekday within its month (e.g. the 2nd Tuesday = 2).
func renderDayOfWeekInMonth(ctx *Context, length int) (string, error) {
	_, _, day, err := ctx.dateFields()
	if err != nil {
		return "", err
	}
	return pad(((day-1)/7)+1, length), nil
}

// renderWeekOfYear implements `w`, delegated to the calendar interface.
func renderWeekOfYear(ctx *Context, length int) (string, error) {
	year, month, day, err := ctx.dateFields()
	if err != nil {
		return "", err
	}
	week, _ := ctx.Cal.WeekOfYear(year, month, day)
	return pad(week, length), nil
}

// renderWeekOfMonth implements `W`, delegated to the calendar interface;
// this always calls through to the calendar rather than hardcoding 1.
func renderWeekOfMonth(ctx *Context, length int) (string, error) {
	year, month, day, err := ctx.dateFields()
	if err != nil {
		return "", err
	}
	return pad(ctx.Cal.WeekOfMonth(year, month, day), length), nil
}
