//go:build linux

package hotkey

import (
	"golang.design/x/hotkey"
	"inputtoggle/internal/config"
)

// convertModifiers для X11: Alt = Mod1, Super = Mod4.
func convertModifiers(mods []config.Modifier) []hotkey.Modifier {
	out := make([]hotkey.Modifier, 0, len(mods))
	for _, m := range mods {
		switch m {
		case config.ModCtrl:
			out = append(out, hotkey.ModCtrl)
		case config.ModShift:
			out = append(out, hotkey.ModShift)
		case config.ModAlt:
			out = append(out, hotkey.Mod1)
		case config.ModSuper:
			out = append(out, hotkey.Mod4)
		}
	}
	return out
}
