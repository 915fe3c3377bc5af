//go:build !darwin

package chord

type nullMonitor struct{}

func newMonitor() Monitor {
	return nullMonitor{}
}

func (nullMonitor) Start(func(Event)) error { return ErrUnsupported }
func (nullMonitor) Stop()                   {}

func accessibilityTrusted(bool) bool { return false }
