package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate parses a calendar date in the wire format YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseTimeOfDay parses a wall-clock time in HH:MM or HH:MM:SS.
func ParseTimeOfDay(s string) (time.Time, error) {
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("15:04", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid time of day: %q", s)
}

// NormalizeTimeOfDay returns the canonical HH:MM:SS form.
func NormalizeTimeOfDay(s string) (string, error) {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		return "", err
	}
	return t.Format("15:04:05"), nil
}

// HourOf extracts the whole hour from a time-of-day string, the coarse
// bucketing the heatmap uses. Returns -1 for malformed input.
func HourOf(s string) int {
	head, _, ok := strings.Cut(s, ":")
	if !ok {
		return -1
	}
	h, err := strconv.Atoi(head)
	if err != nil || h < 0 || h > 23 {
		return -1
	}
	return h
}
