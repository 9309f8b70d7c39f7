// Package parser turns human input into durations and timestamps.
package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// durationPattern matches one "<number><unit>" term, e.g. "2h", "1.5 days", "30 min".
var durationPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(days|day|d|hours|hour|hrs|hr|h|minutes|minute|mins|min|ms|m|seconds|second|secs|sec|s)`)

// plainNumber matches a bare non-negative integer, read as milliseconds.
var plainNumber = regexp.MustCompile(`^\d+$`)

// ParseDuration parses a human duration into milliseconds.
// Supports formats like:
//   - "3600000" (plain milliseconds)
//   - "1h30m", "90s" (Go durations)
//   - "7d", "2 days", "1.5h", "30 minutes"
//   - "1 day 12 hours" (several terms)
func ParseDuration(input string) (int64, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, newDurationError(input, "empty duration")
	}
	if strings.HasPrefix(s, "-") {
		return 0, newDurationError(input, "duration must not be negative")
	}

	if plainNumber.MatchString(s) {
		ms, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, newDurationError(input, "duration is too large")
		}
		return ms, nil
	}

	if d, err := time.ParseDuration(s); err == nil {
		return d.Milliseconds(), nil
	}

	matches := durationPattern.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return 0, newDurationError(input, "unrecognized format")
	}

	var total float64
	covered := 0
	for _, m := range matches {
		// Only whitespace may separate terms.
		if strings.TrimSpace(s[covered:m[0]]) != "" {
			return 0, newDurationError(input, "unrecognized format")
		}
		value, err := strconv.ParseFloat(s[m[2]:m[3]], 64)
		if err != nil {
			return 0, newDurationError(input, "invalid number")
		}
		total += value * unitMillis(strings.ToLower(s[m[4]:m[5]]))
		covered = m[1]
	}
	if strings.TrimSpace(s[covered:]) != "" {
		return 0, newDurationError(input, "unrecognized format")
	}
	if total > math.MaxInt64 {
		return 0, newDurationError(input, "duration is too large")
	}

	return int64(math.Round(total)), nil
}

// unitMillis returns the number of milliseconds in one unit.
func unitMillis(unit string) float64 {
	switch unit {
	case "d", "day", "days":
		return float64(24 * time.Hour / time.Millisecond)
	case "h", "hr", "hrs", "hour", "hours":
		return float64(time.Hour / time.Millisecond)
	case "m", "min", "mins", "minute", "minutes":
		return float64(time.Minute / time.Millisecond)
	case "s", "sec", "secs", "second", "seconds":
		return float64(time.Second / time.Millisecond)
	default:
		return 1
	}
}

// IsDurationLike checks if a string looks like a duration expression.
func IsDurationLike(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || s[0] < '0' || s[0] > '9' {
		return false
	}
	_, err := ParseDuration(s)
	return err == nil
}
