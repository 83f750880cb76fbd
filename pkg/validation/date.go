package validation

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const InvalidDateMessage = "Invalid date of birth. Use YYYY-MM-DD (e.g. 2003-04-16) or DD-MM-YYYY (e.g. 16-04-2003)."

var ErrInvalidDate = errors.New(InvalidDateMessage)

const (
	minDayMonthYear = 1900
	maxDayMonthYear = 2100
)

// ParseDate accepts YYYY-MM-DD, then DD-MM-YYYY (with - or / separators).
// Day is only checked against 1-31; a day the month does not have is still
// rejected since no calendar date exists for it.
func ParseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}

	parts := strings.Split(strings.ReplaceAll(s, "/", "-"), "-")
	if len(parts) != 3 {
		return time.Time{}, ErrInvalidDate
	}

	day, errD := strconv.Atoi(strings.TrimSpace(parts[0]))
	month, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
	year, errY := strconv.Atoi(strings.TrimSpace(parts[2]))
	if errD != nil || errM != nil || errY != nil {
		return time.Time{}, ErrInvalidDate
	}
	if month < 1 || month > 12 || day < 1 || day > 31 || year < minDayMonthYear || year > maxDayMonthYear {
		return time.Time{}, ErrInvalidDate
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day {
		// time.Date normalises 31-04 into 01-05
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
