package field

// renderQuarter implements `Q` (format context) and `q` (stand-alone
// context), mirroring the month renderer's M/L convention. Runs 1-2
// numeric, 3 abbreviated, 4 wide, 5 narrow.
func renderQuarter(ctx *Context, symbol rune, length int) (string, error) {
	year, month, day, err := ctx.dateFields()
	if err != nil {
		return "", err
	}
	q := ctx.Cal.QuarterOfYear(year, month, day)

	if length <= 2 {
		return pad(q, length), nil
	}

	names := ctx.Calendar.Quarters.StandAlone
	if symbol == 'Q' {
		names = ctx.Calendar.Quarters.Format
	}
	return names.At(widthForRun(length), q-1), nil
}
