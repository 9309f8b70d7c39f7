// Package timespan converts durations between milliseconds and the display
// units used to edit them (days, hours, minutes).
package timespan

import (
	"math"
	"strconv"
	"strings"

	"github.com/manav03panchal/spanset/internal/errors"
)

// Unit is the unit a duration is presented and edited in.
type Unit string

const (
	Days    Unit = "days"
	Hours   Unit = "hours"
	Minutes Unit = "minutes"
)

// Millisecond factors for each unit.
const (
	MsPerMinute int64 = 60 * 1000
	MsPerHour         = 60 * MsPerMinute
	MsPerDay          = 24 * MsPerHour
)

// Units returns all units in display order.
func Units() []Unit {
	return []Unit{Days, Hours, Minutes}
}

// String returns the unit identifier.
func (u Unit) String() string {
	return string(u)
}

// Valid reports whether u is a known unit.
func (u Unit) Valid() bool {
	_, err := factor(u)
	return err == nil
}

// ParseUnit parses a unit identifier or one of its short aliases.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "days", "day", "d":
		return Days, nil
	case "hours", "hour", "hrs", "hr", "h":
		return Hours, nil
	case "minutes", "minute", "mins", "min", "m":
		return Minutes, nil
	}
	return "", errors.Wrapf(errors.ErrInvalidUnit, "%q", s)
}

func factor(u Unit) (int64, error) {
	switch u {
	case Days:
		return MsPerDay, nil
	case Hours:
		return MsPerHour, nil
	case Minutes:
		return MsPerMinute, nil
	}
	return 0, errors.Wrapf(errors.ErrInvalidUnit, "%q", string(u))
}

// ToDisplayValue expresses durationMs in unit. The result is not rounded.
func ToDisplayValue(unit Unit, durationMs int64) (float64, error) {
	f, err := factor(unit)
	if err != nil {
		return 0, err
	}
	return float64(durationMs) / float64(f), nil
}

// ToDuration converts a display value in unit back to milliseconds. Values
// whose millisecond count does not fit in an int64 fail with
// ErrInvalidDuration.
func ToDuration(unit Unit, value int64) (int64, error) {
	f, err := factor(unit)
	if err != nil {
		return 0, err
	}
	if value > maxValue(f) || value < -maxValue(f) {
		return 0, errors.Wrapf(errors.ErrInvalidDuration, "%d %s is out of range", value, unit)
	}
	return value * f, nil
}

// maxValue returns the largest display value in a unit of f milliseconds
// that still converts to an int64 duration.
func maxValue(f int64) int64 {
	return math.MaxInt64 / f
}

// ChooseUnit returns the coarsest unit that represents durationMs exactly.
// Durations that are not a whole number of minutes also resolve to minutes.
func ChooseUnit(durationMs int64) Unit {
	if durationMs%MsPerHour != 0 {
		return Minutes
	}
	if durationMs%MsPerDay != 0 {
		return Hours
	}
	return Days
}

// Sanitize turns a raw numeric input into a non-negative integer. Missing and
// negative values (including -Inf) become 0; halves round up. Values at or
// beyond the int64 range, +Inf included, clamp to math.MaxInt64.
func Sanitize(raw float64) int64 {
	if math.IsNaN(raw) || raw <= 0 {
		return 0
	}
	if raw >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(math.Round(raw))
}

// ParseRaw reads keyboard input the way a number field does: blank is 0,
// anything unparseable is NaN.
func ParseRaw(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// SanitizeInput is ParseRaw followed by Sanitize.
func SanitizeInput(s string) int64 {
	return Sanitize(ParseRaw(s))
}
