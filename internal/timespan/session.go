package timespan

import (
	"github.com/manav03panchal/spanset/internal/errors"
	"github.com/manav03panchal/spanset/internal/logging"
)

// State is the phase of an editing session.
type State string

const (
	StateInitialized State = "initialized"
	StateEditing     State = "editing"
	StateUnitChanged State = "unit_changed"
	StateReset       State = "reset"
)

// Transition records one accepted state change.
type Transition struct {
	State    State
	Unit     Unit
	Value    int64
	Duration int64
}

// Session tracks the selected unit and displayed value while a duration is
// edited. The duration in milliseconds is authoritative; the displayed value
// is always derived from it or from the last sanitized input.
//
// A Session is not safe for concurrent use.
type Session struct {
	state    State
	unit     Unit
	value    int64
	duration int64

	onChange func(durationMs int64)
	onReset  func()
	history  []Transition
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithOnChange registers the callback fired with the new duration after
// every input or unit change.
func WithOnChange(fn func(durationMs int64)) SessionOption {
	return func(s *Session) {
		s.onChange = fn
	}
}

// WithOnReset registers the callback fired before a reset is applied.
func WithOnReset(fn func()) SessionOption {
	return func(s *Session) {
		s.onReset = fn
	}
}

// NewSession starts a session for durationMs, presented in its coarsest
// exact unit.
func NewSession(durationMs int64, opts ...SessionOption) *Session {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	s.load(StateInitialized, durationMs)
	return s
}

// load derives unit and value from a duration without notifying.
func (s *Session) load(state State, durationMs int64) {
	unit := ChooseUnit(durationMs)
	// ChooseUnit only returns known units.
	raw, _ := ToDisplayValue(unit, durationMs)

	s.state = state
	s.unit = unit
	s.value = Sanitize(raw)
	s.duration = durationMs
	s.record()
}

func (s *Session) record() {
	s.history = append(s.history, Transition{
		State:    s.state,
		Unit:     s.unit,
		Value:    s.value,
		Duration: s.duration,
	})
	logging.DebugLog("timespan transition",
		logging.KeyState, string(s.state),
		logging.KeyUnit, string(s.unit),
		logging.KeyValue, s.value,
		logging.KeyDuration, s.duration,
	)
}

func (s *Session) notify() {
	if s.onChange != nil {
		s.onChange(s.duration)
	}
}

// Input applies raw keyboard input in the current unit.
func (s *Session) Input(raw string) error {
	return s.InputValue(ParseRaw(raw))
}

// InputValue applies a numeric input in the current unit.
func (s *Session) InputValue(v float64) error {
	value := Sanitize(v)
	duration, err := ToDuration(s.unit, value)
	if err != nil {
		return err
	}

	s.state = StateEditing
	s.value = value
	s.duration = duration
	s.record()
	s.notify()
	return nil
}

// SelectUnit switches the display unit. The currently displayed value, not
// the stored duration, is converted and re-sanitized, so repeated switches
// can compound rounding.
func (s *Session) SelectUnit(next Unit) error {
	if !next.Valid() {
		return errors.Wrapf(errors.ErrInvalidUnit, "%q", string(next))
	}

	ms, err := ToDuration(s.unit, s.value)
	if err != nil {
		return err
	}
	raw, err := ToDisplayValue(next, ms)
	if err != nil {
		return err
	}
	value := Sanitize(raw)
	duration, err := ToDuration(next, value)
	if err != nil {
		return err
	}

	s.state = StateUnitChanged
	s.unit = next
	s.value = value
	s.duration = duration
	s.record()
	s.notify()
	return nil
}

// Reset restores packageValue and re-derives the unit from it.
func (s *Session) Reset(packageValue int64) {
	if s.onReset != nil {
		s.onReset()
	}
	s.load(StateReset, packageValue)
}

// Revert undoes the last transition without notifying, e.g. after the new
// duration could not be stored. The initial state is never reverted.
func (s *Session) Revert() {
	if len(s.history) < 2 {
		return
	}
	s.history = s.history[:len(s.history)-1]
	prev := s.history[len(s.history)-1]
	s.state = prev.State
	s.unit = prev.Unit
	s.value = prev.Value
	s.duration = prev.Duration
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// Unit returns the selected display unit.
func (s *Session) Unit() Unit {
	return s.unit
}

// Value returns the displayed integer value.
func (s *Session) Value() int64 {
	return s.value
}

// Duration returns the authoritative duration in milliseconds.
func (s *Session) Duration() int64 {
	return s.duration
}

// History returns the transitions applied so far, oldest first.
func (s *Session) History() []Transition {
	out := make([]Transition, len(s.history))
	copy(out, s.history)
	return out
}
