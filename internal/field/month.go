package field

import "github.com/go-cldr/dtfmt/locale"

// renderMonth implements `M` (format context) and `L` (stand-alone
// context): runs 1-2 numeric, 3 abbreviated, 4 wide, 5 narrow.
func renderMonth(ctx *Context, symbol rune, length int) (string, error) {
	month, err := ctx.month()
	if err != nil {
		return "", err
	}

	if length <= 2 {
		return pad(month, length), nil
	}

	names := ctx.Calendar.Months.Format
	if symbol == 'L' {
		names = ctx.Calendar.Months.StandAlone
	}
	return names.At(widthForRun(length), month-1), nil
}

// widthForRun maps a field's run length to the name-table width it
// selects; shared by month, weekday, quarter, and era renderers since
// TR35 assigns the same 3/4/5(/6) meaning across all of them.
func widthForRun(length int) locale.Width {
	switch length {
	case 4:
		return locale.Wide
	case 5:
		return locale.Narrow
	case 6:
		return locale.ShortWidth
	default:
		return locale.Abbreviated
	}
}
