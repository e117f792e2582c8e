// Package parser turns natural language date expressions into timestamps.
package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/shepherd-cli/shepherd/internal/errors"
)

// ParseTimestamp parses a natural language timestamp expression such as
// "tomorrow 19:00", "next sunday", or "2024-03-17 10:30". The reference
// time anchors relative expressions.
func ParseTimestamp(input string, reference time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "now") {
		return reference, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: reference,
	}

	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return time.Time{}, errors.NewUserErrorWithField("date", input,
			"Could not understand that date",
			"Try formats like '2024-03-17', 'tomorrow 19:00', or 'next sunday'")
	}

	return result.Time, nil
}

// ParseDate parses a date expression and truncates it to local midnight.
// Birth dates and join dates carry no time of day.
func ParseDate(input string, reference time.Time) (time.Time, error) {
	t, err := ParseTimestamp(input, reference)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location()), nil
}
