//go:build darwin

package hud

import (
	"image"
	"testing"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"inputtoggle/internal/inputsource"
)

func TestDrawReusesTheme(t *testing.T) {
	w := New(true)
	w.mu.Lock()
	w.text = "Hebrew"
	w.mu.Unlock()

	th := material.NewTheme()
	th.Palette.Fg = colorText
	want := image.Pt(220, 80)

	for i := 0; i < 3; i++ {
		gtx := layout.Context{
			Ops:         new(op.Ops),
			Constraints: layout.Exact(want),
			Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		}
		if dims := w.draw(gtx, th); dims.Size != want {
			t.Fatalf("frame %d: size = %v, want %v", i, dims.Size, want)
		}
	}
	if th.Palette.Fg != colorText {
		t.Errorf("theme foreground changed to %v", th.Palette.Fg)
	}
}

func TestPulseDisabledDoesNotOpen(t *testing.T) {
	w := New(false)
	w.Pulse(inputsource.Source{ID: "com.apple.keylayout.US", Name: "U.S."})

	w.mu.Lock()
	running := w.running
	w.mu.Unlock()
	if running {
		t.Error("disabled HUD opened a window")
	}
}
