// Package field implements the TR35 field renderers: one function per
// symbol family, each consuming the decomposed instant, the directive's
// run length, the resolved locale data, and the call options, and
// producing a rendered fragment or an error.
package field

import (
	"github.com/go-cldr/dtfmt/calendar"
	"github.com/go-cldr/dtfmt/internal/model"
	"github.com/go-cldr/dtfmt/internal/numfmt"
	"github.com/go-cldr/dtfmt/internal/pattern"
	"github.com/go-cldr/dtfmt/locale"
)

// Context bundles everything a renderer needs: the instant being
// formatted, the resolved locale/calendar data, and the call options.
type Context struct {
	Instant  model.Instant
	Data     *locale.Data
	Calendar *locale.CalendarData
	Cal      calendar.Calendar
	Options  model.Options
}

func (c *Context) year() (int, error) {
	if c.Instant.Year == nil {
		return 0, model.NewError(model.InsufficientFields, "field 'y' requires year")
	}
	return *c.Instant.Year, nil
}

func (c *Context) month() (int, error) {
	if c.Instant.Month == nil {
		return 0, model.NewError(model.InsufficientFields, "field 'M' requires month")
	}
	return *c.Instant.Month, nil
}

func (c *Context) day() (int, error) {
	if c.Instant.Day == nil {
		return 0, model.NewError(model.InsufficientFields, "field 'd' requires day")
	}
	return *c.Instant.Day, nil
}

func (c *Context) hour() (int, error) {
	if c.Instant.Hour == nil {
		return 0, model.NewError(model.InsufficientFields, "field 'H' requires hour")
	}
	return *c.Instant.Hour, nil
}

func (c *Context) minute() (int, error) {
	if c.Instant.Minute == nil {
		return 0, model.NewError(model.InsufficientFields, "field 'm' requires minute")
	}
	return *c.Instant.Minute, nil
}

func (c *Context) second() (int, error) {
	if c.Instant.Second == nil {
		return 0, model.NewError(model.InsufficientFields, "field 's' requires second")
	}
	return *c.Instant.Second, nil
}

func (c *Context) nanosecond() int {
	if c.Instant.Nanosecond == nil {
		return 0
	}
	return *c.Instant.Nanosecond
}

func (c *Context) dateFields() (year, month, day int, err error) {
	year, err = c.year()
	if err != nil {
		return
	}
	month, err = c.month()
	if err != nil {
		return
	}
	day, err = c.day()
	return
}

// pad zero-pads the magnitude of v to width digits, prefixing "-" for a
// negative v; widths < 2 are left unpadded.
func pad(v, width int) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := numfmt.Pad(v, width)
	if neg {
		return "-" + s
	}
	return s
}

// Render executes a compiled token sequence against ctx, concatenating
// literal runs and rendered field fragments in pattern order.
func Render(tokens []pattern.Token, ctx *Context) (string, error) {
	var out []byte
	for _, t := range tokens {
		if t.Kind == pattern.TokenLiteral {
			out = append(out, t.Literal...)
			continue
		}
		frag, err := renderField(ctx, t.Symbol, t.Length)
		if err != nil {
			return "", err
		}
		out = append(out, frag...)
	}
	return string(out), nil
}
