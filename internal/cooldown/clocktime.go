package cooldown

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var clockTimePattern = regexp.MustCompile(`(?i)^\s*(\d{1,2})(?::(\d{2}))?\s*(AM|PM)\s*$`)

// NextOccurrence resolves a 12-hour clock time ("5 PM", "10:30 am")
// to the next instant it names, relative to now and in now's location.
// A time that is not strictly in the future means the service meant
// tomorrow, so exactly one calendar day is added. Seconds are zeroed.
func NextOccurrence(raw string, now time.Time) (time.Time, error) {
	hour, minute, err := parseClockTime(raw)
	if err != nil {
		return time.Time{}, err
	}

	candidate := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !candidate.After(now) {
		candidate = candidate.AddDate(0, 0, 1)
	}

	return candidate, nil
}

func parseClockTime(raw string) (hour, minute int, err error) {
	m := clockTimePattern.FindStringSubmatch(raw)
	if m == nil {
		return 0, 0, fmt.Errorf("malformed clock time %q", raw)
	}

	hour, err = strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, fmt.Errorf("parse hour in %q: %w", raw, err)
	}
	if m[2] != "" {
		minute, err = strconv.Atoi(m[2])
		if err != nil {
			return 0, 0, fmt.Errorf("parse minute in %q: %w", raw, err)
		}
	}

	switch strings.ToUpper(m[3]) {
	case "PM":
		if hour < 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	return hour, minute, nil
}
