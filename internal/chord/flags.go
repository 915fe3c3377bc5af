package chord

// Quartz event flag bits (CGEventFlags) and the device-dependent
// NX_DEVICE* bits that tell the left and right Shift keys apart.
const (
	cgFlagMaskShift     = 0x00020000
	cgFlagMaskControl   = 0x00040000
	cgFlagMaskAlternate = 0x00080000
	cgFlagMaskCommand   = 0x00100000

	nxDeviceLShiftKeyMask = 0x00000002
	nxDeviceRShiftKeyMask = 0x00000004
)

// Virtual key codes from HIToolbox Events.h.
const (
	keyCodeLeftShift  = 56
	keyCodeRightShift = 60
)

// Quartz event types delivered by the tap.
const (
	cgEventKeyDown      = 10
	cgEventFlagsChanged = 12
)

// decodeFlags converts raw CGEventFlags into Modifiers. Synthetic events
// sometimes carry the Shift mask without device bits; the key code of the
// flagsChanged event then decides which side it was.
func decodeFlags(flags uint64, keyCode uint16) Modifiers {
	var m Modifiers

	if flags&cgFlagMaskControl != 0 {
		m |= ModControl
	}
	if flags&cgFlagMaskCommand != 0 {
		m |= ModCommand
	}
	if flags&cgFlagMaskAlternate != 0 {
		m |= ModOption
	}

	if flags&cgFlagMaskShift != 0 {
		switch {
		case flags&(nxDeviceLShiftKeyMask|nxDeviceRShiftKeyMask) != 0:
			if flags&nxDeviceLShiftKeyMask != 0 {
				m |= ModLeftShift
			}
			if flags&nxDeviceRShiftKeyMask != 0 {
				m |= ModRightShift
			}
		case keyCode == keyCodeRightShift:
			m |= ModRightShift
		default:
			m |= ModLeftShift
		}
	}

	return m
}

// eventFromTap builds an Event from the raw values a Quartz event tap reports.
// ok is false for event types the matcher does not consume.
func eventFromTap(eventType int, flags uint64, keyCode uint16) (Event, bool) {
	switch eventType {
	case cgEventFlagsChanged:
		return Event{Kind: EventFlagsChanged, Modifiers: decodeFlags(flags, keyCode), KeyCode: keyCode}, true
	case cgEventKeyDown:
		return Event{Kind: EventKeyDown, Modifiers: decodeFlags(flags, keyCode), KeyCode: keyCode}, true
	}
	return Event{}, false
}
