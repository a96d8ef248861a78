// Package timeutil provides helpers for weekly wall-clock schedules.
package timeutil

import (
	"strconv"
	"strings"
)

const (
	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour
)

// ParseClock converts an "HH:MM" string to minutes since midnight.
// It reports false for anything that is not a valid 24h wall-clock time.
func ParseClock(s string) (int, bool) {
	hh, mm, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found || len(mm) != 2 || len(hh) == 0 || len(hh) > 2 || !digits(hh) || !digits(mm) {
		return 0, false
	}

	hours, err := strconv.Atoi(hh)
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}

	return hours*MinutesPerHour + minutes, true
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsClock reports whether s is a valid "HH:MM" time.
func IsClock(s string) bool {
	_, ok := ParseClock(s)
	return ok
}

// Interval returns the start and end minute offsets of a same-day range.
// It reports false when either bound is malformed or end is not after start.
func Interval(start, end string) (int, int, bool) {
	from, ok := ParseClock(start)
	if !ok {
		return 0, 0, false
	}
	to, ok := ParseClock(end)
	if !ok || to <= from {
		return 0, 0, false
	}
	return from, to, true
}

// Overlap returns the number of minutes shared by [s1,e1) and [s2,e2).
func Overlap(s1, e1, s2, e2 int) int {
	start := max(s1, s2)
	end := min(e1, e2)
	if end <= start {
		return 0
	}
	return end - start
}
