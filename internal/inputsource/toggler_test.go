package inputsource

import (
	"errors"
	"testing"
)

// fakeProvider is an in-memory OS input-source state.
type fakeProvider struct {
	sources   []Source
	current   string
	rejectAll bool
	listErr   error
	selects   int
}

func (f *fakeProvider) Enabled() ([]Source, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]Source(nil), f.sources...), nil
}

func (f *fakeProvider) Current() (string, error) {
	return f.current, nil
}

func (f *fakeProvider) Select(id string) error {
	f.selects++
	if f.rejectAll {
		return errors.New("denied")
	}
	f.current = id
	return nil
}

type recordingPulser struct {
	got []Source
}

func (r *recordingPulser) Pulse(s Source) {
	r.got = append(r.got, s)
}

func sources(ids ...string) []Source {
	list := make([]Source, len(ids))
	for i, id := range ids {
		list[i] = Source{ID: id, Name: "name-" + id}
	}
	return list
}

func TestToggleEnglishHebrew(t *testing.T) {
	p := &fakeProvider{sources: sources("en", "he"), current: "en"}
	pulser := &recordingPulser{}
	tg := NewToggler(p, pulser)

	got, err := tg.Toggle()
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if got.ID != "he" || p.current != "he" {
		t.Errorf("Toggle() = %v, active %q; want he", got, p.current)
	}
	if len(pulser.got) != 1 || pulser.got[0].ID != "he" {
		t.Errorf("pulses = %v, want one for he", pulser.got)
	}
}

func TestToggleCyclesBackToStart(t *testing.T) {
	for n := 2; n <= 5; n++ {
		ids := []string{"a", "b", "c", "d", "e"}[:n]
		for start := 0; start < n; start++ {
			p := &fakeProvider{sources: sources(ids...), current: ids[start]}
			tg := NewToggler(p)

			for i := 1; i <= n; i++ {
				got, err := tg.Toggle()
				if err != nil {
					t.Fatalf("n=%d start=%d: Toggle() error = %v", n, start, err)
				}
				if want := ids[(start+i)%n]; got.ID != want {
					t.Fatalf("n=%d start=%d step=%d: got %q, want %q", n, start, i, got.ID, want)
				}
			}
			if p.current != ids[start] {
				t.Errorf("n=%d start=%d: after %d toggles active = %q", n, start, n, p.current)
			}
		}
	}
}

func TestToggleTooFewSources(t *testing.T) {
	tests := []struct {
		name    string
		sources []Source
		current string
	}{
		{"empty", nil, ""},
		{"single", sources("en"), "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakeProvider{sources: tt.sources, current: tt.current}
			pulser := &recordingPulser{}
			tg := NewToggler(p, pulser)

			_, err := tg.Toggle()
			if !errors.Is(err, ErrNoSourcesAvailable) {
				t.Fatalf("Toggle() error = %v, want ErrNoSourcesAvailable", err)
			}
			if p.selects != 0 || p.current != tt.current {
				t.Errorf("OS state touched: selects=%d current=%q", p.selects, p.current)
			}
			if len(pulser.got) != 0 {
				t.Error("pulsed on failure")
			}
		})
	}
}

func TestToggleActivationRejected(t *testing.T) {
	p := &fakeProvider{sources: sources("en", "he"), current: "en", rejectAll: true}
	pulser := &recordingPulser{}
	tg := NewToggler(p, pulser)

	_, err := tg.Toggle()
	if !errors.Is(err, ErrActivationRejected) {
		t.Fatalf("Toggle() error = %v, want ErrActivationRejected", err)
	}
	if p.selects != 1 {
		t.Errorf("selects = %d, want exactly one attempt", p.selects)
	}
	if len(pulser.got) != 0 {
		t.Error("pulsed on failure")
	}
}

func TestToggleUnknownCurrentFallsBackToFirst(t *testing.T) {
	p := &fakeProvider{sources: sources("en", "he", "ru"), current: "fr"}
	tg := NewToggler(p)

	got, err := tg.Toggle()
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if got.ID != "he" {
		t.Errorf("Toggle() = %q, want he (index 0 + 1)", got.ID)
	}
}

func TestToggleListError(t *testing.T) {
	listErr := errors.New("boom")
	p := &fakeProvider{listErr: listErr}
	tg := NewToggler(p)

	if _, err := tg.Toggle(); !errors.Is(err, listErr) {
		t.Errorf("Toggle() error = %v, want wrapped %v", err, listErr)
	}
}

func TestPulserPanicIsContained(t *testing.T) {
	p := &fakeProvider{sources: sources("en", "he"), current: "en"}
	after := &recordingPulser{}
	tg := NewToggler(p, PulseFunc(func(Source) { panic("render failed") }))
	tg.AddPulser(after)

	if _, err := tg.Toggle(); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if len(after.got) != 1 {
		t.Error("later pulsers not called after a panicking one")
	}
}

func TestNextIndex(t *testing.T) {
	list := sources("a", "b", "c")
	tests := []struct {
		current string
		want    int
	}{
		{"a", 1},
		{"b", 2},
		{"c", 0},
		{"missing", 1},
	}
	for _, tt := range tests {
		if got := NextIndex(list, tt.current); got != tt.want {
			t.Errorf("NextIndex(%q) = %d, want %d", tt.current, got, tt.want)
		}
	}
	if got := NextIndex(nil, "a"); got != 0 {
		t.Errorf("NextIndex(nil) = %d, want 0", got)
	}
}

func TestCurrentResolvesName(t *testing.T) {
	p := &fakeProvider{sources: sources("en", "he"), current: "he"}
	tg := NewToggler(p)

	got, err := tg.Current()
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if got.Name != "name-he" {
		t.Errorf("Current() = %+v", got)
	}
}
