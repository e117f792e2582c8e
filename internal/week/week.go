// Package week computes ISO-8601 week identifiers.
package week

import (
	"fmt"
	"time"
)

// ID returns the ISO-8601 week label (e.g. "2024-W01") for the week
// containing t. Weeks are Monday-started and Thursday-anchored: the ISO year
// of a date is the calendar year of the Thursday in its week. The input is
// reduced to its calendar date in a fixed UTC calendar so the label never
// shifts with the local timezone.
func ID(t time.Time) string {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	// Shift to the Thursday of this ISO week (Monday=1 .. Sunday=7).
	wd := int(d.Weekday())
	if wd == 0 {
		wd = 7
	}
	d = d.AddDate(0, 0, 4-wd)

	yearStart := time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	days := int(d.Sub(yearStart) / (24 * time.Hour))
	weekNo := (days + 7) / 7 // ceil((days+1)/7)

	return fmt.Sprintf("%d-W%02d", d.Year(), weekNo)
}
