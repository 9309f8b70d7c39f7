package timespan

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/spanset/internal/errors"
)

// recorder collects change notifications.
type recorder struct {
	changes []int64
	resets  int
}

func (r *recorder) opts() []SessionOption {
	return []SessionOption{
		WithOnChange(func(ms int64) { r.changes = append(r.changes, ms) }),
		WithOnReset(func() { r.resets++ }),
	}
}

func TestNewSession(t *testing.T) {
	t.Run("hours", func(t *testing.T) {
		rec := &recorder{}
		s := NewSession(7200000, rec.opts()...)
		assert.Equal(t, StateInitialized, s.State())
		assert.Equal(t, Hours, s.Unit())
		assert.Equal(t, int64(2), s.Value())
		assert.Equal(t, int64(7200000), s.Duration())
		assert.Empty(t, rec.changes)
	})

	t.Run("fractional_minutes_display_rounded_duration_kept", func(t *testing.T) {
		rec := &recorder{}
		s := NewSession(90000, rec.opts()...)
		assert.Equal(t, Minutes, s.Unit())
		assert.Equal(t, int64(2), s.Value())
		assert.Equal(t, int64(90000), s.Duration())
		assert.Empty(t, rec.changes)
	})

	t.Run("zero_is_days", func(t *testing.T) {
		s := NewSession(0)
		assert.Equal(t, Days, s.Unit())
		assert.Equal(t, int64(0), s.Value())
	})
}

func TestSessionInput(t *testing.T) {
	rec := &recorder{}
	s := NewSession(7200000, rec.opts()...)

	require.NoError(t, s.Input("1"))
	assert.Equal(t, StateEditing, s.State())
	assert.Equal(t, int64(1), s.Value())
	assert.Equal(t, int64(3600000), s.Duration())

	require.NoError(t, s.Input("abc"))
	assert.Equal(t, int64(0), s.Value())
	assert.Equal(t, int64(0), s.Duration())

	require.NoError(t, s.InputValue(-4))
	assert.Equal(t, int64(0), s.Value())

	require.NoError(t, s.Input("2.5"))
	assert.Equal(t, int64(3), s.Value())
	assert.Equal(t, int64(3*MsPerHour), s.Duration())

	assert.Equal(t, []int64{3600000, 0, 0, 3 * MsPerHour}, rec.changes)
}

func TestSessionInputOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		start int64
		raw   string
	}{
		{"days", 2 * MsPerDay, "106751991168"},
		{"days_wraps_positive", 2 * MsPerDay, "213503982336"},
		{"hours", 2 * MsPerHour, "2562047788016"},
		{"minutes", 90 * MsPerMinute, "153722867280913"},
		{"exponent", 2 * MsPerDay, "1e30"},
		{"infinity", 2 * MsPerDay, "Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			s := NewSession(tt.start, rec.opts()...)
			unit, value := s.Unit(), s.Value()

			err := s.Input(tt.raw)
			assert.ErrorIs(t, err, errors.ErrInvalidDuration)
			assert.Equal(t, StateInitialized, s.State())
			assert.Equal(t, unit, s.Unit())
			assert.Equal(t, value, s.Value())
			assert.Equal(t, tt.start, s.Duration())
			assert.Empty(t, rec.changes)
			assert.Len(t, s.History(), 1)
		})
	}
}

func TestSessionInputLargestValue(t *testing.T) {
	rec := &recorder{}
	s := NewSession(MsPerDay, rec.opts()...)

	require.NoError(t, s.Input("106751991167"))
	assert.Equal(t, int64(106751991167)*MsPerDay, s.Duration())
	assert.Positive(t, s.Duration())
	assert.Equal(t, []int64{int64(106751991167) * MsPerDay}, rec.changes)
}

func TestSessionSelectUnitOutOfRange(t *testing.T) {
	rec := &recorder{}
	// Displayed as 153722867280913 minutes after rounding, one past the range.
	s := NewSession(math.MaxInt64, rec.opts()...)
	require.Equal(t, Minutes, s.Unit())

	err := s.SelectUnit(Hours)
	assert.ErrorIs(t, err, errors.ErrInvalidDuration)
	assert.Equal(t, Minutes, s.Unit())
	assert.Equal(t, int64(math.MaxInt64), s.Duration())
	assert.Empty(t, rec.changes)
}

func TestSessionSelectUnit(t *testing.T) {
	t.Run("compounding_rounding", func(t *testing.T) {
		rec := &recorder{}
		s := NewSession(90*MsPerMinute, rec.opts()...)
		require.Equal(t, Minutes, s.Unit())
		require.Equal(t, int64(90), s.Value())

		require.NoError(t, s.SelectUnit(Hours))
		assert.Equal(t, StateUnitChanged, s.State())
		assert.Equal(t, Hours, s.Unit())
		assert.Equal(t, int64(2), s.Value())
		assert.Equal(t, int64(7200000), s.Duration())
		assert.Equal(t, []int64{7200000}, rec.changes)
	})

	t.Run("uses_displayed_value_not_duration", func(t *testing.T) {
		rec := &recorder{}
		// 1.5 minutes is displayed as 2.
		s := NewSession(90000, rec.opts()...)
		require.NoError(t, s.SelectUnit(Minutes))
		assert.Equal(t, int64(2), s.Value())
		assert.Equal(t, int64(120000), s.Duration())
	})

	t.Run("repeated_switches", func(t *testing.T) {
		rec := &recorder{}
		s := NewSession(30*MsPerMinute, rec.opts()...)
		require.NoError(t, s.SelectUnit(Hours)) // 0.5h -> 1
		require.NoError(t, s.SelectUnit(Days))  // 1/24 d -> 0
		require.NoError(t, s.SelectUnit(Minutes))
		assert.Equal(t, int64(0), s.Value())
		assert.Equal(t, []int64{MsPerHour, 0, 0}, rec.changes)
	})

	t.Run("invalid_unit_keeps_state", func(t *testing.T) {
		rec := &recorder{}
		s := NewSession(7200000, rec.opts()...)
		err := s.SelectUnit(Unit("weeks"))
		assert.ErrorIs(t, err, errors.ErrInvalidUnit)
		assert.Equal(t, StateInitialized, s.State())
		assert.Equal(t, Hours, s.Unit())
		assert.Equal(t, int64(2), s.Value())
		assert.Empty(t, rec.changes)
		assert.Len(t, s.History(), 1)
	})
}

func TestSessionReset(t *testing.T) {
	t.Run("zero_package_value", func(t *testing.T) {
		rec := &recorder{}
		s := NewSession(7200000, rec.opts()...)
		require.NoError(t, s.Input("5"))

		s.Reset(0)
		assert.Equal(t, StateReset, s.State())
		assert.Equal(t, Days, s.Unit())
		assert.Equal(t, int64(0), s.Value())
		assert.Equal(t, int64(0), s.Duration())
		assert.Equal(t, 1, rec.resets)
		assert.Len(t, rec.changes, 1)
	})

	t.Run("package_value_in_minutes", func(t *testing.T) {
		s := NewSession(MsPerDay)
		s.Reset(45 * MsPerMinute)
		assert.Equal(t, Minutes, s.Unit())
		assert.Equal(t, int64(45), s.Value())
	})
}

func TestSessionHistory(t *testing.T) {
	s := NewSession(MsPerDay)
	require.NoError(t, s.SelectUnit(Hours))
	require.NoError(t, s.Input("36"))
	s.Reset(MsPerDay)

	h := s.History()
	require.Len(t, h, 4)
	assert.Equal(t, StateInitialized, h[0].State)
	assert.Equal(t, Transition{State: StateUnitChanged, Unit: Hours, Value: 24, Duration: MsPerDay}, h[1])
	assert.Equal(t, Transition{State: StateEditing, Unit: Hours, Value: 36, Duration: 36 * MsPerHour}, h[2])
	assert.Equal(t, StateReset, h[3].State)

	// History is a copy.
	h[0].Value = 99
	assert.Equal(t, int64(1), s.History()[0].Value)
}

func TestIndependentSessions(t *testing.T) {
	a := NewSession(MsPerHour)
	b := NewSession(MsPerHour)
	require.NoError(t, a.Input("7"))
	assert.Equal(t, int64(1), b.Value())
	assert.Equal(t, int64(7), a.Value())
}

func TestSessionRevert(t *testing.T) {
	rec := &recorder{}
	s := NewSession(MsPerDay, rec.opts()...)
	require.NoError(t, s.SelectUnit(Hours))
	require.NoError(t, s.Input("36"))

	s.Revert()
	assert.Equal(t, StateUnitChanged, s.State())
	assert.Equal(t, Hours, s.Unit())
	assert.Equal(t, int64(24), s.Value())
	assert.Equal(t, MsPerDay, s.Duration())
	assert.Len(t, s.History(), 2)
	assert.Len(t, rec.changes, 2)

	s.Revert()
	s.Revert()
	assert.Equal(t, StateInitialized, s.State())
	assert.Equal(t, Days, s.Unit())
	assert.Equal(t, int64(1), s.Value())
	assert.Len(t, s.History(), 1)
}
