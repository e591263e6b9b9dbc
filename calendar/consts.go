package calendar

import "fmt"

// Month specifies the month of the year (January = 1, ...).
type Month int

// The months of the year.
const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

func (m Month) String() string {
	return longMonthName(int(m))
}

func longMonthName(m int) string {
	if m < int(January) || m > int(December) {
		return fmt.Sprintf("%%!Month(%d)", m)
	}
	return longMonthNames[m-1]
}

var longMonthNames = [12]string{
	January - 1:   "January",
	February - 1:  "February",
	March - 1:     "March",
	April - 1:     "April",
	May - 1:       "May",
	June - 1:      "June",
	July - 1:      "July",
	August - 1:    "August",
	September - 1: "September",
	October - 1:   "October",
	November - 1:  "November",
	December - 1:  "December",
}
