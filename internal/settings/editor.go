package settings

import (
	"github.com/manav03panchal/spanset/internal/model"
	"github.com/manav03panchal/spanset/internal/timespan"
)

// Editor is an editing session over one stored setting. Every accepted
// input or unit change is written through the Service; reset restores the
// package value.
//
// An Editor is not safe for concurrent use.
type Editor struct {
	svc     *Service
	setting *model.Setting
	session *timespan.Session

	reason model.ChangeReason
	err    error
}

// Open starts an editing session for id.
func (s *Service) Open(id string) (*Editor, error) {
	setting, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	e := &Editor{svc: s, setting: setting}
	e.session = timespan.NewSession(setting.Value,
		timespan.WithOnChange(e.onChange),
		timespan.WithOnReset(e.onReset),
	)
	return e, nil
}

func (e *Editor) onChange(durationMs int64) {
	e.err = e.svc.apply(e.setting, durationMs, e.reason, e.session.Unit())
}

func (e *Editor) onReset() {
	pkg := e.setting.PackageValue
	e.err = e.svc.apply(e.setting, pkg, model.ReasonReset, timespan.ChooseUnit(pkg))
}

// takeErr returns and clears the error left by the last callback. A failed
// write reverts the session so it keeps showing the stored value.
func (e *Editor) takeErr() error {
	err := e.err
	e.err = nil
	if err != nil {
		e.session.Revert()
	}
	return err
}

// Input applies raw keyboard input in the selected unit.
func (e *Editor) Input(raw string) error {
	e.reason = model.ReasonInput
	if err := e.session.Input(raw); err != nil {
		return err
	}
	return e.takeErr()
}

// InputValue applies a numeric value in the selected unit.
func (e *Editor) InputValue(v float64) error {
	e.reason = model.ReasonInput
	if err := e.session.InputValue(v); err != nil {
		return err
	}
	return e.takeErr()
}

// SelectUnit switches the display unit, converting the displayed value.
func (e *Editor) SelectUnit(u timespan.Unit) error {
	e.reason = model.ReasonUnit
	if err := e.session.SelectUnit(u); err != nil {
		return err
	}
	return e.takeErr()
}

// Reset restores the package value.
func (e *Editor) Reset() error {
	e.session.Reset(e.setting.PackageValue)
	return e.takeErr()
}

// Setting returns the stored setting as of the last write.
func (e *Editor) Setting() *model.Setting {
	return e.setting
}

// Unit returns the selected display unit.
func (e *Editor) Unit() timespan.Unit {
	return e.session.Unit()
}

// Value returns the displayed value.
func (e *Editor) Value() int64 {
	return e.session.Value()
}

// Duration returns the current duration in milliseconds.
func (e *Editor) Duration() int64 {
	return e.session.Duration()
}

// State returns the session state.
func (e *Editor) State() timespan.State {
	return e.session.State()
}

// Modified reports whether the value differs from the package value.
func (e *Editor) Modified() bool {
	return e.session.Duration() != e.setting.PackageValue
}

// History returns the session transitions.
func (e *Editor) History() []timespan.Transition {
	return e.session.History()
}
