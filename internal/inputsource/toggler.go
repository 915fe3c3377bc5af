package inputsource

import (
	"fmt"
	"log"
	"sync"
)

// Pulser gives brief visual feedback after a successful switch.
// Implementations must return quickly; their failures are not reported.
type Pulser interface {
	Pulse(Source)
}

// PulseFunc adapts a function to Pulser.
type PulseFunc func(Source)

// Pulse calls f(s).
func (f PulseFunc) Pulse(s Source) { f(s) }

// Toggler switches to the next enabled input source. State is fetched
// fresh from the Provider on every call, never cached.
type Toggler struct {
	provider Provider

	mu      sync.Mutex
	pulsers []Pulser
}

// NewToggler creates a Toggler over the given provider.
func NewToggler(p Provider, pulsers ...Pulser) *Toggler {
	return &Toggler{provider: p, pulsers: pulsers}
}

// AddPulser registers another feedback sink.
func (t *Toggler) AddPulser(p Pulser) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pulsers = append(t.pulsers, p)
}

// NextIndex returns the index to select after currentID. A current source
// missing from the list counts as index 0.
func NextIndex(list []Source, currentID string) int {
	if len(list) == 0 {
		return 0
	}
	pos := 0
	for i, s := range list {
		if s.ID == currentID {
			pos = i
			break
		}
	}
	return (pos + 1) % len(list)
}

// Toggle selects the source after the active one and returns it.
func (t *Toggler) Toggle() (Source, error) {
	sources, err := t.provider.Enabled()
	if err != nil {
		return Source{}, fmt.Errorf("list input sources: %w", err)
	}
	if len(sources) < 2 {
		return Source{}, fmt.Errorf("%w: %d enabled", ErrNoSourcesAvailable, len(sources))
	}

	currentID, err := t.provider.Current()
	if err != nil {
		return Source{}, fmt.Errorf("current input source: %w", err)
	}

	next := sources[NextIndex(sources, currentID)]
	if err := t.provider.Select(next.ID); err != nil {
		return Source{}, fmt.Errorf("%w: %s: %v", ErrActivationRejected, next.ID, err)
	}

	t.pulse(next)
	return next, nil
}

// Current returns the active source, resolved against the enabled list so
// it carries a display name.
func (t *Toggler) Current() (Source, error) {
	id, err := t.provider.Current()
	if err != nil {
		return Source{}, err
	}
	sources, err := t.provider.Enabled()
	if err != nil {
		return Source{ID: id}, nil
	}
	for _, s := range sources {
		if s.ID == id {
			return s, nil
		}
	}
	return Source{ID: id}, nil
}

func (t *Toggler) pulse(s Source) {
	t.mu.Lock()
	pulsers := append([]Pulser(nil), t.pulsers...)
	t.mu.Unlock()

	for _, p := range pulsers {
		safePulse(p, s)
	}
}

func safePulse(p Pulser, s Source) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("pulse for %s panicked: %v", s, r)
		}
	}()
	p.Pulse(s)
}
