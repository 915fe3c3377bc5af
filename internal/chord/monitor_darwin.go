//go:build darwin

package chord

/*
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation
#include "eventtap_darwin.h"
*/
import "C"

import (
	"runtime"
	"runtime/cgo"
	"sync"
	"time"
)

// darwinMonitor listens to a Quartz event tap on a dedicated OS thread
// running its own CFRunLoop.
type darwinMonitor struct {
	mu      sync.Mutex
	tap     *C.EventTap
	handle  cgo.Handle
	handler func(Event)
	done    chan struct{}
}

func newMonitor() Monitor {
	return &darwinMonitor{}
}

func (m *darwinMonitor) Start(handler func(Event)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.tap != nil {
		return nil
	}

	m.handler = handler
	handle := cgo.NewHandle(m)
	ready := make(chan *C.EventTap, 1)
	done := make(chan struct{})

	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		defer close(done)

		tap := C.tapCreate(C.uintptr_t(handle))
		if tap == nil {
			ready <- nil
			return
		}
		C.tapAttach(tap)
		ready <- tap

		C.tapLoop(tap)
		C.tapRelease(tap)
	}()

	tap := <-ready
	if tap == nil {
		<-done
		handle.Delete()
		return ErrPermissionDenied
	}

	m.tap = tap
	m.handle = handle
	m.done = done
	return nil
}

func (m *darwinMonitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.tap == nil {
		return
	}

	C.tapStop(m.tap)
	<-m.done
	m.handle.Delete()
	m.tap = nil
	m.done = nil
}

func (m *darwinMonitor) dispatch(ev Event) {
	if m.handler != nil {
		m.handler(ev)
	}
}

//export goTapEvent
func goTapEvent(handle C.uintptr_t, kind C.int, flags C.uint64_t, keycode C.uint16_t) {
	ev, ok := eventFromTap(int(kind), uint64(flags), uint16(keycode))
	if !ok {
		return
	}
	ev.Time = time.Now()

	m := cgo.Handle(handle).Value().(*darwinMonitor)
	m.dispatch(ev)
}

func accessibilityTrusted(prompt bool) bool {
	return bool(C.axTrusted(C.bool(prompt)))
}
