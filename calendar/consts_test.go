package calendar_test

import (
	"testing"

	"github.com/go-cldr/dtfmt/calendar"
)

func TestMonth_String(t *testing.T) {
	for _, tt := range []struct {
		day      calendar.Month
		expected string
	}{
		{
			day:      calendar.Month(0),
			expected: "%!Month(0)",
		},
		{
			day:      calendar.Month(1),
			expected: "January",
		},
		{
			day:      calendar.Month(12),
			expected: "December",
		},
		{
			day:      calendar.Month(13),
			expected: "%!Month(13)",
		},
	} {
		t.Run(tt.expected, func(t *testing.T) {
			if out := tt.day.String(); out != tt.expected {
				t.Fatalf("stringified month = %s, want %s", out, tt.expected)
			}
		})
	}
}
