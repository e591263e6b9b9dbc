package field

import "strconv"

// renderWeekday implements `E` (format context, numeric forms not
// defined), `e` (format context, numeric for run 1-2), and `c`
// (stand-alone context, numeric for run 1-2). day_of_week from the
// calendar interface returns 1..7 (Monday=1..Sunday=7); weekday name
// tables are indexed 0-based Monday=0.
func renderWeekday(ctx *Context, symbol rune, length int) (string, error) {
	year, month, day, err := ctx.dateFields()
	if err != nil {
		return "", err
	}
	dow := ctx.Cal.DayOfWeek(year, month, day) // 1..7, Monday=1

	if symbol != 'E' && length <= 2 {
		return strconv.Itoa(dow), nil
	}

	names := ctx.Calendar.Days.Format
	if symbol == 'c' {
		names = ctx.Calendar.Days.StandAlone
	}
	return names.At(widthForRun(length), dow-1), nil
}
