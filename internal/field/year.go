package field

// renderYear implements `y`/`Y`/`u`/`U`/`r`: `yy` truncates to the last
// two digits; any other run length, and every run of the other four
// symbols, zero-pads to at least that many digits. All five render the
// plain calendar year: `Y` is not the ISO week-year, so for a date whose
// ISO week belongs to the adjacent year it shows the calendar year, and
// extended (u), cyclic (U) and related-Gregorian (r) years are not
// distinguished from `y`.
func renderYear(ctx *Context, symbol rune, length int) (string, error) {
	year, err := ctx.year()
	if err != nil {
		return "", err
	}

	if symbol == 'y' && length == 2 {
		v := year % 100
		if v < 0 {
			v += 100
		}
		return pad(v, 2), nil
	}
	return pad(year, length), nil
}
