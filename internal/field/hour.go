package field

// renderHour implements `h` (1-12), `H` (0-23), `K` (0-11), `k` (1-24);
// padding by run length (≥2 pads to width 2).
func renderHour(ctx *Context, symbol rune, length int) (string, error) {
	h24, err := ctx.hour()
	if err != nil {
		return "", err
	}

	var v int
	switch symbol {
	case 'H':
		v = h24
	case 'k':
		v = h24
		if v == 0 {
			v = 24
		}
	case 'K':
		v = h24 % 12
	case 'h':
		v = h24 % 12
		if v == 0 {
			v = 12
		}
	}

	width := 1
	if length >= 2 {
		width = 2
	}
	return pad(v, width), nil
}

func renderMinute(ctx *Context, length int) (string, error) {
	m, err := ctx.minute()
	if err != nil {
		return "", err
	}
	width := 1
	if length >= 2 {
		width = 2
	}
	return pad(m, width), nil
}

func renderSecond(ctx *Context, length int) (string, error) {
	s, err := ctx.second()
	if err != nil {
		return "", err
	}
	width := 1
	if length >= 2 {
		width = 2
	}
	return pad(s, width), nil
}

// renderFractionalSecond implements `S`: truncates (never rounds) the
// nanosecond component to `length` digits, right-padding with zeros when
// the input carries fewer digits of precision than requested, per
// TR35's truncation rule.
func renderFractionalSecond(ctx *Context, length int) (string, error) {
	nanos := ctx.nanosecond()
	digits := pad(nanos, 9)[:9]
	if length <= 9 {
		return digits[:length], nil
	}
	out := make([]byte, length)
	copy(out, digits)
	for i := 9; i < length; i++ {
		out[i] = '0'
	}
	return string(out), nil
}

// renderMillisOfDay implements `A`: milliseconds since midnight.
func renderMillisOfDay(ctx *Context, length int) (string, error) {
	h, err := ctx.hour()
	if err != nil {
		return "", err
	}
	m, err := ctx.minute()
	if err != nil {
		return "", err
	}
	s, _ := ctx.second()
	millis := ((h*3600+m*60+s)*1000 + ctx.nanosecond()/1_000_000)
	return pad(millis, length), nil
}
