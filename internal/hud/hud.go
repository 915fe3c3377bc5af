// Package hud shows a short-lived on-screen label naming the input source
// that was just selected.
package hud

import (
	"image"
	"image/color"
	"sync"
	"sync/atomic"
	"time"

	"gioui.org/app"
	"gioui.org/font"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"inputtoggle/internal/inputsource"
)

// displayDuration is how long the label stays after the last Flash.
const displayDuration = 700 * time.Millisecond

var (
	colorBG   = color.NRGBA{R: 30, G: 30, B: 34, A: 230}
	colorText = color.NRGBA{R: 240, G: 240, B: 245, A: 255}
)

// Window is the HUD. Only one is on screen at a time; flashing while it is
// visible replaces the text and extends the deadline.
type Window struct {
	enabled atomic.Bool

	mu       sync.Mutex
	running  bool
	text     string
	deadline time.Time
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// New creates a HUD.
func New(enabled bool) *Window {
	w := &Window{}
	w.enabled.Store(enabled)
	return w
}

// SetEnabled turns the HUD on or off.
func (w *Window) SetEnabled(enabled bool) {
	w.enabled.Store(enabled)
	if !enabled {
		w.Close()
	}
}

// Pulse implements inputsource.Pulser.
func (w *Window) Pulse(src inputsource.Source) {
	if !w.enabled.Load() {
		return
	}
	w.Flash(src.String())
}

// Flash shows text for displayDuration.
func (w *Window) Flash(s string) {
	w.mu.Lock()
	w.text = s
	w.deadline = time.Now().Add(displayDuration)
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	stopCh, doneCh := w.stopCh, w.doneCh
	w.mu.Unlock()

	go w.runEventLoop(stopCh, doneCh)
}

// Close hides the HUD if it is visible.
func (w *Window) Close() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	stopCh, doneCh := w.stopCh, w.doneCh
	w.stopCh = nil
	w.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
	}
	select {
	case <-doneCh:
	case <-time.After(time.Second):
	}
}

func (w *Window) snapshot() (string, time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.text, w.deadline
}

func (w *Window) runEventLoop(stopCh, doneCh chan struct{}) {
	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		close(doneCh)
	}()

	win := new(app.Window)
	win.Option(
		app.Title("Input Source"),
		app.Size(unit.Dp(220), unit.Dp(80)),
		app.MinSize(unit.Dp(220), unit.Dp(80)),
		app.MaxSize(unit.Dp(220), unit.Dp(80)),
		app.Decorated(false),
	)

	closing := make(chan struct{})
	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-closing:
				return
			case <-stopCh:
				win.Perform(system.ActionClose)
				return
			case <-ticker.C:
				if _, deadline := w.snapshot(); time.Now().After(deadline) {
					win.Perform(system.ActionClose)
					return
				}
				win.Invalidate()
			}
		}
	}()
	defer close(closing)

	th := material.NewTheme()
	th.Palette.Fg = colorText

	var ops op.Ops
	for {
		switch e := win.Event().(type) {
		case app.DestroyEvent:
			return
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			w.draw(gtx, th)
			e.Frame(gtx.Ops)
		}
	}
}

func (w *Window) draw(gtx layout.Context, th *material.Theme) layout.Dimensions {
	label, _ := w.snapshot()

	bounds := image.Rectangle{Max: gtx.Constraints.Max}
	paint.FillShape(gtx.Ops, colorBG, clip.UniformRRect(bounds, gtx.Dp(unit.Dp(12))).Op(gtx.Ops))

	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		lbl := material.Label(th, unit.Sp(22), label)
		lbl.Font.Weight = font.Medium
		lbl.Alignment = text.Middle
		return lbl.Layout(gtx)
	})
}
