package service

import (
	"strings"
	"time"
)

// isoDateLayout is the HTML date-input format. It is the wire contract for
// every date field: ParseISODate and FormatDateForInput must round-trip
// exactly.
const isoDateLayout = "2006-01-02"

func ParseISODate(v string) (time.Time, error) {
	return time.Parse(isoDateLayout, strings.TrimSpace(v))
}

func FormatDateForInput(t time.Time) string {
	return t.Format(isoDateLayout)
}

// Today is midnight of the current local calendar day, in UTC like parsed
// input dates, so date-only comparisons line up.
func Today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
