package switcher

import (
	"sync"
	"testing"
	"time"

	"inputtoggle/internal/chord"
	"inputtoggle/internal/config"
	"inputtoggle/internal/inputsource"
)

type fakeProvider struct {
	mu      sync.Mutex
	list    []inputsource.Source
	current string
	selects int
}

func (f *fakeProvider) Enabled() ([]inputsource.Source, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]inputsource.Source(nil), f.list...), nil
}

func (f *fakeProvider) Current() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current, nil
}

func (f *fakeProvider) Select(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = id
	f.selects++
	return nil
}

func (f *fakeProvider) snapshot() (string, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current, f.selects
}

func newTestSwitcher(trigger config.Trigger) (*Switcher, *fakeProvider) {
	p := &fakeProvider{
		list: []inputsource.Source{
			{ID: "com.apple.keylayout.US", Name: "U.S."},
			{ID: "com.apple.keylayout.Hebrew", Name: "Hebrew"},
		},
		current: "com.apple.keylayout.US",
	}
	return New(chord.NewMatcher(trigger), inputsource.NewToggler(p)), p
}

func flags(m chord.Modifiers) chord.Event {
	return chord.Event{Kind: chord.EventFlagsChanged, Modifiers: m}
}

func waitSelects(t *testing.T, p *fakeProvider, want int) string {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if id, n := p.snapshot(); n >= want {
			return id
		}
		time.Sleep(5 * time.Millisecond)
	}
	_, n := p.snapshot()
	t.Fatalf("selects = %d, want %d", n, want)
	return ""
}

func TestSwitcherTogglesOnChord(t *testing.T) {
	s, p := newTestSwitcher(config.TriggerCtrlShift)
	go s.Run()
	defer s.Stop()

	s.HandleEvent(flags(chord.ModControl))
	s.HandleEvent(flags(chord.ModControl | chord.ModLeftShift))
	s.HandleEvent(flags(chord.ModControl))

	if id := waitSelects(t, p, 1); id != "com.apple.keylayout.Hebrew" {
		t.Errorf("current = %q, want Hebrew", id)
	}
}

func TestSwitcherIgnoresChordInterruptedByKey(t *testing.T) {
	s, p := newTestSwitcher(config.TriggerBoth)
	go s.Run()
	defer s.Stop()

	s.HandleEvent(flags(chord.ModCommand))
	s.HandleEvent(flags(chord.ModCommand | chord.ModLeftShift))
	s.HandleEvent(chord.Event{Kind: chord.EventKeyDown, Modifiers: chord.ModCommand | chord.ModLeftShift, KeyCode: 17})
	s.HandleEvent(flags(chord.ModCommand))

	// Запасной запрос показывает, что предыдущий аккорд ничего не поставил в очередь
	s.Request()
	if id := waitSelects(t, p, 1); id != "com.apple.keylayout.Hebrew" {
		t.Errorf("current = %q, want Hebrew", id)
	}
	time.Sleep(50 * time.Millisecond)
	if _, n := p.snapshot(); n != 1 {
		t.Errorf("selects = %d, want 1", n)
	}
}

func TestRequestDoesNotBlock(t *testing.T) {
	s, _ := newTestSwitcher(config.TriggerBoth)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			s.Request()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Request blocked without a running loop")
	}
	if len(s.requests) != 1 {
		t.Errorf("pending requests = %d, want 1", len(s.requests))
	}
}

func TestStopIsIdempotent(t *testing.T) {
	s, _ := newTestSwitcher(config.TriggerBoth)
	finished := make(chan struct{})
	go func() {
		s.Run()
		close(finished)
	}()

	s.Stop()
	s.Stop()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}
}
