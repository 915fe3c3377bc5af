package notify

import (
	"sync"
	"testing"
	"time"

	"inputtoggle/internal/inputsource"
)

type recorder struct {
	mu   sync.Mutex
	msgs []string
	ch   chan struct{}
}

func newTestNotifier(enabled bool) (*Notifier, *recorder) {
	r := &recorder{ch: make(chan struct{}, 8)}
	n := New(enabled)
	n.send = func(title, message string) error {
		r.mu.Lock()
		r.msgs = append(r.msgs, message)
		r.mu.Unlock()
		r.ch <- struct{}{}
		return nil
	}
	return n, r
}

func TestPulseRespectsEnabled(t *testing.T) {
	n, r := newTestNotifier(false)
	n.Pulse(inputsource.Source{ID: "he", Name: "Hebrew"})

	select {
	case <-r.ch:
		t.Fatal("notification sent while disabled")
	case <-time.After(100 * time.Millisecond):
	}

	n.SetEnabled(true)
	n.Pulse(inputsource.Source{ID: "he", Name: "Hebrew"})
	select {
	case <-r.ch:
	case <-time.After(time.Second):
		t.Fatal("notification not sent while enabled")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.msgs) != 1 || r.msgs[0] != "Hebrew" {
		t.Errorf("messages = %v", r.msgs)
	}
}

func TestErrorsIgnoreSetting(t *testing.T) {
	n, r := newTestNotifier(false)
	n.PermissionDenied()
	n.Error("boom")

	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.msgs) != 2 {
		t.Errorf("messages = %v, want 2", r.msgs)
	}
}
