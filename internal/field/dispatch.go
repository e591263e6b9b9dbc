package field

import "github.com/go-cldr/dtfmt/internal/model"

func renderField(ctx *Context, symbol rune, length int) (string, error) {
	switch symbol {
	case 'G':
		return renderEra(ctx, length)
	case 'y', 'Y', 'u', 'U', 'r':
		return renderYear(ctx, symbol, length)
	case 'q', 'Q':
		return renderQuarter(ctx, symbol, length)
	case 'M', 'L':
		return renderMonth(ctx, symbol, length)
	case 'w':
		return renderWeekOfYear(ctx, length)
	case 'W':
		return renderWeekOfMonth(ctx, length)
	case 'd':
		return renderDay(ctx, length)
	case 'D':
		return renderDayOfYear(ctx, length)
	case 'F':
		return renderDayOfWeekInMonth(ctx, length)
	case 'E', 'e', 'c':
		return renderWeekday(ctx, symbol, length)
	case 'a', 'b', 'B':
		return renderPeriod(ctx, symbol, length)
	case 'h', 'H', 'K', 'k':
		return renderHour(ctx, symbol, length)
	case 'm':
		return renderMinute(ctx, length)
	case 's':
		return renderSecond(ctx, length)
	case 'S':
		return renderFractionalSecond(ctx, length)
	case 'A':
		return renderMillisOfDay(ctx, length)
	case 'z', 'Z', 'O', 'v', 'V', 'X', 'x':
		return renderZone(ctx, symbol, length)
	default:
		return "", model.NewError(model.InvalidFormat, "unsupported field symbol %q", string(symbol))
	}
}
