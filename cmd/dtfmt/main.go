// Command dtfmt formats a single instant from the command line, for
// quick manual inspection of the library's output. It deliberately
// supports only the date/time/datetime verbs - interval and relative
// formatting are exercised through the library's own tests, not this
// demo binary.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-cldr/dtfmt"
)

func main() {
	var (
		locale = flag.String("locale", "en", "BCP-47 locale tag")
		format = flag.String("format", "medium", "style (short|medium|long|full), :skeleton, or a literal TR35 pattern")
		kind   = flag.String("kind", "datetime", "date|time|datetime")
		at     = flag.String("at", "", "RFC3339 instant to format; defaults to now")
	)
	flag.Parse()

	t := time.Now().UTC()
	if *at != "" {
		parsed, err := time.Parse(time.RFC3339, *at)
		if err != nil {
			log.Fatalf("dtfmt: invalid -at value %q: %v", *at, err)
		}
		t = parsed.UTC()
	}

	instant := instantFromTime(t)
	opts := dtfmt.Options{Locale: *locale, Format: *format}

	var (
		out string
		err error
	)
	switch *kind {
	case "date":
		out, err = dtfmt.FormatDate(instant, opts)
	case "time":
		out, err = dtfmt.FormatTime(instant, opts)
	case "datetime":
		out, err = dtfmt.FormatDateTime(instant, opts)
	default:
		log.Fatalf("dtfmt: unknown -kind %q", *kind)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(out)
}

func instantFromTime(t time.Time) dtfmt.Instant {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	m := int(month)
	offset := 0
	return dtfmt.Instant{
		Year: &year, Month: &m, Day: &day,
		Hour: &hour, Minute: &min, Second: &sec,
		UTCOffset: &offset,
		ZoneAbbr:  "UTC",
	}
}
