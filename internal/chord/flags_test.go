package chord

import "testing"

func TestDecodeFlags(t *testing.T) {
	tests := []struct {
		name    string
		flags   uint64
		keyCode uint16
		want    Modifiers
	}{
		{"none", 0, 0, 0},
		{"control", cgFlagMaskControl, 59, ModControl},
		{"command", cgFlagMaskCommand, 55, ModCommand},
		{"option", cgFlagMaskAlternate, 58, ModOption},
		{"left shift device bit", cgFlagMaskShift | nxDeviceLShiftKeyMask, keyCodeLeftShift, ModLeftShift},
		{"right shift device bit", cgFlagMaskShift | nxDeviceRShiftKeyMask, keyCodeRightShift, ModRightShift},
		{"both shifts", cgFlagMaskShift | nxDeviceLShiftKeyMask | nxDeviceRShiftKeyMask, keyCodeLeftShift, ModLeftShift | ModRightShift},
		{"synthetic right shift", cgFlagMaskShift, keyCodeRightShift, ModRightShift},
		{"synthetic left shift", cgFlagMaskShift, keyCodeLeftShift, ModLeftShift},
		{"device bit without mask", nxDeviceLShiftKeyMask, keyCodeLeftShift, 0},
		{"ctrl and left shift", cgFlagMaskControl | cgFlagMaskShift | nxDeviceLShiftKeyMask, keyCodeLeftShift, ModControl | ModLeftShift},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeFlags(tt.flags, tt.keyCode); got != tt.want {
				t.Errorf("decodeFlags(%#x, %d) = %v, want %v", tt.flags, tt.keyCode, got, tt.want)
			}
		})
	}
}

func TestEventFromTap(t *testing.T) {
	ev, ok := eventFromTap(cgEventFlagsChanged, cgFlagMaskControl, 59)
	if !ok || ev.Kind != EventFlagsChanged || ev.Modifiers != ModControl {
		t.Errorf("flagsChanged = %+v, %v", ev, ok)
	}

	ev, ok = eventFromTap(cgEventKeyDown, 0, 7)
	if !ok || ev.Kind != EventKeyDown || ev.KeyCode != 7 {
		t.Errorf("keyDown = %+v, %v", ev, ok)
	}

	if _, ok := eventFromTap(11, 0, 7); ok {
		t.Error("keyUp should be ignored")
	}
}

func TestModifiersString(t *testing.T) {
	if got := (ModControl | ModLeftShift).String(); got != "ctrl+lshift" {
		t.Errorf("String() = %q", got)
	}
	if got := Modifiers(0).String(); got != "none" {
		t.Errorf("String() = %q", got)
	}
}
