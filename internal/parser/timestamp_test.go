package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/spanset/internal/errors"
)

// Wednesday.
var fixedNow = time.Date(2024, time.March, 13, 15, 42, 10, 0, time.UTC)

func TestParseTimestampAt(t *testing.T) {
	t.Run("now", func(t *testing.T) {
		got, err := ParseTimestampAt("NOW", fixedNow)
		require.NoError(t, err)
		assert.Equal(t, fixedNow, got)
	})

	t.Run("empty_is_invalid", func(t *testing.T) {
		_, err := ParseTimestampAt("  ", fixedNow)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidTimestamp))
	})

	t.Run("iso_date", func(t *testing.T) {
		got, err := ParseTimestampAt("2024-01-15", fixedNow)
		require.NoError(t, err)
		assert.Equal(t, 2024, got.Year())
		assert.Equal(t, time.January, got.Month())
		assert.Equal(t, 15, got.Day())
	})

	t.Run("relative_ago", func(t *testing.T) {
		got, err := ParseTimestampAt("2 hours ago", fixedNow)
		require.NoError(t, err)
		assert.WithinDuration(t, fixedNow.Add(-2*time.Hour), got, time.Minute)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseTimestampAt("not a date at all xyz", fixedNow)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidTimestamp))
	})
}

func TestParseTimestampPeriods(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
	}{
		{"this hour", time.Date(2024, 3, 13, 15, 0, 0, 0, time.UTC)},
		{"last hour", time.Date(2024, 3, 13, 14, 0, 0, 0, time.UTC)},
		{"this day", time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC)},
		{"previous day", time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)},
		{"this week", time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)},
		{"last week", time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)},
		{"current month", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"last month", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{"This Year", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"last year", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimestampAt(tt.input, fixedNow)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPeriodStartSunday(t *testing.T) {
	sunday := time.Date(2024, 3, 17, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), periodStart(sunday, "this", "week"))
}
