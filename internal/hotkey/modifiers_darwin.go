//go:build darwin

package hotkey

import (
	"golang.design/x/hotkey"
	"inputtoggle/internal/config"
)

// convertModifiers переводит модификаторы конфига в модификаторы macOS:
// Alt это Option, Super это Cmd.
func convertModifiers(mods []config.Modifier) []hotkey.Modifier {
	out := make([]hotkey.Modifier, 0, len(mods))
	for _, m := range mods {
		switch m {
		case config.ModCtrl:
			out = append(out, hotkey.ModCtrl)
		case config.ModShift:
			out = append(out, hotkey.ModShift)
		case config.ModAlt:
			out = append(out, hotkey.ModOption)
		case config.ModSuper:
			out = append(out, hotkey.ModCmd)
		}
	}
	return out
}
