// Package chord recognises modifier-only chords such as Ctrl + Left Shift
// in a stream of global keyboard notifications.
package chord

import (
	"strings"
	"time"
)

// Modifiers is the set of modifier keys held at the moment of an event.
type Modifiers uint8

const (
	ModLeftShift Modifiers = 1 << iota
	ModRightShift
	ModControl
	ModCommand
	ModOption
)

// Has reports whether any of the given modifiers is held.
func (m Modifiers) Has(mods Modifiers) bool {
	return m&mods != 0
}

func (m Modifiers) String() string {
	names := []struct {
		mod  Modifiers
		name string
	}{
		{ModControl, "ctrl"},
		{ModOption, "alt"},
		{ModCommand, "cmd"},
		{ModLeftShift, "lshift"},
		{ModRightShift, "rshift"},
	}
	parts := make([]string, 0, len(names))
	for _, n := range names {
		if m.Has(n.mod) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// EventKind distinguishes modifier changes from ordinary key presses.
type EventKind int

const (
	// EventFlagsChanged is a modifier key going up or down.
	EventFlagsChanged EventKind = iota
	// EventKeyDown is any non-modifier key press.
	EventKeyDown
)

// Event is one keyboard notification delivered by a Monitor.
type Event struct {
	Kind      EventKind
	Modifiers Modifiers
	KeyCode   uint16
	Time      time.Time
}
