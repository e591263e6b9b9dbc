package field

import (
	"github.com/go-cldr/dtfmt/internal/model"
	"github.com/go-cldr/dtfmt/internal/numfmt"
)

// renderZone implements the `z`/`Z`/`O`/`v`/`V`/`X`/`x` zone symbol
// family. This repository only ever has an offset (and optionally a
// zone abbreviation) attached to the instant - it never resolves a zone
// ID to an offset - so every
// symbol that CLDR would otherwise back with real zone-name data (long
// specific `zzzz`, generic `vvvv`, location `VVVV`, ...) falls back
// to composing the locale's GMT template from the attached offset.
// `z` and `v`/`V` runs 1-3 return the attached abbreviation when present
// (the GMT template otherwise); `Z` runs 1-3 are always the basic ISO
// offset.
func renderZone(ctx *Context, symbol rune, length int) (string, error) {
	if ctx.Instant.UTCOffset == nil {
		return "", model.NewError(model.InsufficientFields, "field %q requires a utc offset", string(symbol))
	}
	offset := *ctx.Instant.UTCOffset

	switch symbol {
	case 'z':
		if length <= 3 && ctx.Instant.ZoneAbbr != "" {
			return ctx.Instant.ZoneAbbr, nil
		}
		return gmtTemplate(ctx, offset)
	case 'Z':
		switch {
		case length <= 3:
			return isoBasicOffset(offset), nil
		case length == 4:
			return gmtTemplate(ctx, offset)
		default: // 5: extended ISO
			return isoExtendedOffset(offset, true), nil
		}
	case 'O':
		return gmtTemplate(ctx, offset)
	case 'v', 'V':
		if ctx.Instant.ZoneAbbr != "" && length < 4 {
			return ctx.Instant.ZoneAbbr, nil
		}
		return gmtTemplate(ctx, offset)
	case 'X':
		if offset == 0 {
			return "Z", nil
		}
		return isoVariant(offset, length), nil
	case 'x':
		return isoVariant(offset, length), nil
	}
	return "", nil
}

// gmtTemplate composes the locale's gmt_format/gmt_zero_format +
// hour_format around an offset in seconds.
func gmtTemplate(ctx *Context, offsetSeconds int) (string, error) {
	if offsetSeconds == 0 {
		return ctx.Data.TimeZoneNames.GMTZeroFormat, nil
	}

	hourPattern := ctx.Data.TimeZoneNames.HourFormatPos
	abs := offsetSeconds
	if abs < 0 {
		hourPattern = ctx.Data.TimeZoneNames.HourFormatNeg
		abs = -abs
	}
	hh := abs / 3600
	mm := (abs % 3600) / 60

	sub := renderHourFormatPattern(hourPattern, hh, mm)
	return substitute(ctx.Data.TimeZoneNames.GMTFormat, sub), nil
}

// renderHourFormatPattern interprets the small TR35 sub-pattern CLDR
// uses for hour_format (over H, HH, mm only; the sign is baked into
// which of the positive/negative sub-patterns was chosen).
func renderHourFormatPattern(p string, hh, mm int) string {
	out := make([]byte, 0, len(p))
	i := 0
	for i < len(p) {
		c := p[i]
		switch {
		case c == 'H':
			j := i
			for j < len(p) && p[j] == 'H' {
				j++
			}
			out = append(out, numfmt.Pad(hh, j-i)...)
			i = j
		case c == 'm':
			j := i
			for j < len(p) && p[j] == 'm' {
				j++
			}
			out = append(out, numfmt.Pad(mm, j-i)...)
			i = j
		default:
			out = append(out, c)
			i++
		}
	}
	return string(out)
}

func substitute(template, value string) string {
	out := make([]byte, 0, len(template)+len(value))
	for i := 0; i < len(template); i++ {
		if template[i] == '{' && i+2 < len(template) && template[i+1] == '0' && template[i+2] == '}' {
			out = append(out, value...)
			i += 2
			continue
		}
		out = append(out, template[i])
	}
	return string(out)
}

func isoBasicOffset(offsetSeconds int) string {
	sign := "+"
	abs := offsetSeconds
	if abs < 0 {
		sign = "-"
		abs = -abs
	}
	hh := abs / 3600
	mm := (abs % 3600) / 60
	return sign + numfmt.Pad(hh, 2) + numfmt.Pad(mm, 2)
}

func isoExtendedOffset(offsetSeconds int, withColon bool) string {
	sign := "+"
	abs := offsetSeconds
	if abs < 0 {
		sign = "-"
		abs = -abs
	}
	hh := abs / 3600
	mm := (abs % 3600) / 60
	sep := ""
	if withColon {
		sep = ":"
	}
	return sign + numfmt.Pad(hh, 2) + sep + numfmt.Pad(mm, 2)
}

// isoVariant implements X/x run lengths 1 (±HH or ±HHmm if non-zero
// minutes), 2 and 4 (±HHmm), 3 and 5 (±HH:mm). Seconds of the offset
// are never rendered.
func isoVariant(offsetSeconds, length int) string {
	switch length {
	case 1:
		if offsetSeconds%3600 == 0 {
			sign := "+"
			abs := offsetSeconds
			if abs < 0 {
				sign = "-"
				abs = -abs
			}
			return sign + numfmt.Pad(abs/3600, 2)
		}
		return isoBasicOffset(offsetSeconds)
	case 3, 5:
		return isoExtendedOffset(offsetSeconds, true)
	default: // 2, 4
		return isoExtendedOffset(offsetSeconds, false)
	}
}
