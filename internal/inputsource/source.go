// Package inputsource enumerates the enabled keyboard input sources and
// cycles the active one.
package inputsource

import "errors"

var (
	// ErrNoSourcesAvailable means fewer than two sources are enabled, so
	// there is nothing to toggle between.
	ErrNoSourcesAvailable = errors.New("inputsource: fewer than two enabled input sources")
	// ErrActivationRejected means the OS refused to select the source.
	ErrActivationRejected = errors.New("inputsource: activation rejected")
)

// Source is one keyboard input source as reported by the OS.
type Source struct {
	ID   string
	Name string
}

func (s Source) String() string {
	if s.Name != "" {
		return s.Name
	}
	return s.ID
}

// Provider is the OS input-source API. Enabled returns sources in the
// order the OS lists them; that order is the cycle order.
type Provider interface {
	Enabled() ([]Source, error)
	Current() (string, error)
	Select(id string) error
}

// NewProvider returns the platform provider.
func NewProvider() Provider {
	return newProvider()
}
