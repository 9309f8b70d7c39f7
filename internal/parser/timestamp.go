package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// periodRegex matches period expressions like "this week", "last month".
var periodRegex = regexp.MustCompile(`(?i)^(this|current|last|previous)\s+(hour|day|week|month|year)$`)

// ParseTimestamp parses a natural language timestamp relative to now.
func ParseTimestamp(input string) (time.Time, error) {
	return ParseTimestampAt(input, time.Now())
}

// ParseTimestampAt parses a natural language timestamp relative to now.
func ParseTimestampAt(input string, now time.Time) (time.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, newTimestampError(input, "empty timestamp")
	}
	if strings.EqualFold(s, "now") {
		return now, nil
	}

	if match := periodRegex.FindStringSubmatch(s); match != nil {
		return periodStart(now, strings.ToLower(match[1]), strings.ToLower(match[2])), nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}
	result, err := dateparser.Parse(cfg, s)
	if err != nil || result.Time.IsZero() {
		return time.Time{}, newTimestampError(input, "unrecognized timestamp")
	}
	return result.Time, nil
}

// periodStart returns the start of the named period.
func periodStart(now time.Time, modifier, period string) time.Time {
	previous := modifier == "last" || modifier == "previous"
	var t time.Time

	switch period {
	case "hour":
		t = now.Truncate(time.Hour)
		if previous {
			t = t.Add(-time.Hour)
		}
	case "day":
		t = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if previous {
			t = t.AddDate(0, 0, -1)
		}
	case "week":
		// Weeks start on Monday.
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		t = time.Date(now.Year(), now.Month(), now.Day()-weekday+1, 0, 0, 0, 0, now.Location())
		if previous {
			t = t.AddDate(0, 0, -7)
		}
	case "month":
		t = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		if previous {
			t = t.AddDate(0, -1, 0)
		}
	case "year":
		t = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		if previous {
			t = t.AddDate(-1, 0, 0)
		}
	default:
		t = now
	}
	return t
}
