package chord

import "errors"

var (
	// ErrPermissionDenied is returned when the OS refuses a global keyboard
	// tap, usually because Accessibility access has not been granted.
	ErrPermissionDenied = errors.New("chord: keyboard monitoring denied (Accessibility permission required)")
	// ErrUnsupported is returned on platforms without a monitor implementation.
	ErrUnsupported = errors.New("chord: keyboard monitoring is not supported on this platform")
)

// Monitor delivers global keyboard notifications to a handler.
// The handler runs on the monitor's own thread and must not block.
type Monitor interface {
	Start(handler func(Event)) error
	Stop()
}

// NewMonitor returns the platform monitor.
func NewMonitor() Monitor {
	return newMonitor()
}

// AccessibilityTrusted reports whether the process may install a keyboard tap.
func AccessibilityTrusted() bool {
	return accessibilityTrusted(false)
}

// RequestAccessibility asks the OS to show its Accessibility prompt and
// reports the current trust state.
func RequestAccessibility() bool {
	return accessibilityTrusted(true)
}
