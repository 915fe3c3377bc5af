package chord

import (
	"sync/atomic"

	"inputtoggle/internal/config"
)

// Phase is the matcher's position within a chord.
type Phase int

const (
	// PhaseIdle waits for Left Shift to go down with the companion held.
	PhaseIdle Phase = iota
	// PhaseShiftDown means Left Shift went down with the companion held
	// and nothing has interrupted the chord yet.
	PhaseShiftDown
)

func (p Phase) String() string {
	if p == PhaseShiftDown {
		return "shift-down"
	}
	return "idle"
}

// State is the full matcher state. ShiftHeld remembers the last observed
// Left Shift level so only a released-to-held edge can start a chord.
type State struct {
	Phase     Phase
	ShiftHeld bool
}

// Companion returns the modifiers accepted alongside Left Shift.
func Companion(t config.Trigger) Modifiers {
	switch t {
	case config.TriggerCtrlShift:
		return ModControl
	case config.TriggerCmdShift:
		return ModCommand
	default:
		return ModControl | ModCommand
	}
}

// Step is the pure transition function. It reports fired=true exactly
// when Left Shift is released while the companion modifier has been held
// since Shift went down and no other key was pressed in between.
func Step(s State, ev Event, t config.Trigger) (State, bool) {
	if ev.Kind == EventKeyDown {
		s.Phase = PhaseIdle
		return s, false
	}

	shift := ev.Modifiers.Has(ModLeftShift)
	companion := ev.Modifiers.Has(Companion(t))
	pressed := shift && !s.ShiftHeld
	released := !shift && s.ShiftHeld
	s.ShiftHeld = shift

	switch s.Phase {
	case PhaseIdle:
		if pressed && companion {
			s.Phase = PhaseShiftDown
		}
	case PhaseShiftDown:
		if !companion {
			s.Phase = PhaseIdle
			return s, false
		}
		if released {
			s.Phase = PhaseIdle
			return s, true
		}
	}
	return s, false
}

// Matcher owns the chord state for one event-delivery context. Handle must
// only be called from that context; SetTrigger and SetEnabled may be called
// from anywhere and take effect on the next event.
type Matcher struct {
	trigger atomic.Value // config.Trigger
	enabled atomic.Bool
	state   State
}

// NewMatcher creates an enabled matcher for the given trigger.
func NewMatcher(t config.Trigger) *Matcher {
	m := &Matcher{}
	m.SetTrigger(t)
	m.enabled.Store(true)
	return m
}

// SetTrigger swaps the configured chord. Invalid values become the default.
func (m *Matcher) SetTrigger(t config.Trigger) {
	if !t.Valid() {
		t = config.DefaultTrigger
	}
	m.trigger.Store(t)
}

// Trigger returns the configured chord.
func (m *Matcher) Trigger() config.Trigger {
	return m.trigger.Load().(config.Trigger)
}

// SetEnabled turns chord detection on or off.
func (m *Matcher) SetEnabled(enabled bool) {
	m.enabled.Store(enabled)
}

// Enabled reports whether chord detection is on.
func (m *Matcher) Enabled() bool {
	return m.enabled.Load()
}

// State returns the current chord state.
func (m *Matcher) State() State {
	return m.state
}

// Handle feeds one event through Step and reports whether the chord fired.
// While disabled the matcher stays idle but keeps tracking Left Shift.
func (m *Matcher) Handle(ev Event) bool {
	if !m.enabled.Load() {
		if ev.Kind == EventFlagsChanged {
			m.state.ShiftHeld = ev.Modifiers.Has(ModLeftShift)
		}
		m.state.Phase = PhaseIdle
		return false
	}

	var fired bool
	m.state, fired = Step(m.state, ev, m.Trigger())
	return fired
}
