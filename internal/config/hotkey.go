package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidHotkey возвращается для модификатора или клавиши вне списка доступных.
var ErrInvalidHotkey = errors.New("config: недопустимая горячая клавиша")

// Modifier представляет модификатор клавиши.
type Modifier string

const (
	ModCtrl  Modifier = "ctrl"
	ModShift Modifier = "shift"
	ModAlt   Modifier = "alt"
	ModSuper Modifier = "super" // Cmd
)

// Key представляет клавишу.
type Key string

const (
	KeySpace  Key = "space"
	KeyReturn Key = "return"
	KeyTab    Key = "tab"
	KeyA      Key = "a"
	KeyB      Key = "b"
	KeyC      Key = "c"
	KeyD      Key = "d"
	KeyE      Key = "e"
	KeyF      Key = "f"
	KeyG      Key = "g"
	KeyH      Key = "h"
	KeyI      Key = "i"
	KeyJ      Key = "j"
	KeyK      Key = "k"
	KeyL      Key = "l"
	KeyM      Key = "m"
	KeyN      Key = "n"
	KeyO      Key = "o"
	KeyP      Key = "p"
	KeyQ      Key = "q"
	KeyR      Key = "r"
	KeyS      Key = "s"
	KeyT      Key = "t"
	KeyU      Key = "u"
	KeyV      Key = "v"
	KeyW      Key = "w"
	KeyX      Key = "x"
	KeyY      Key = "y"
	KeyZ      Key = "z"
	KeyF1     Key = "f1"
	KeyF2     Key = "f2"
	KeyF3     Key = "f3"
	KeyF4     Key = "f4"
	KeyF5     Key = "f5"
	KeyF6     Key = "f6"
	KeyF7     Key = "f7"
	KeyF8     Key = "f8"
	KeyF9     Key = "f9"
	KeyF10    Key = "f10"
	KeyF11    Key = "f11"
	KeyF12    Key = "f12"
)

// HotkeyConfig хранит запасную горячую клавишу, которая регистрируется
// без Accessibility-доступа.
type HotkeyConfig struct {
	Modifiers []Modifier `json:"modifiers"`
	Key       Key        `json:"key"`
}

// IsZero возвращает true если горячая клавиша не задана.
func (h HotkeyConfig) IsZero() bool {
	return h.Key == ""
}

// Equal сравнивает две конфигурации с учётом порядка модификаторов.
func (h HotkeyConfig) Equal(o HotkeyConfig) bool {
	if h.Key != o.Key || len(h.Modifiers) != len(o.Modifiers) {
		return false
	}
	for i := range h.Modifiers {
		if h.Modifiers[i] != o.Modifiers[i] {
			return false
		}
	}
	return true
}

// String возвращает строковое представление горячей клавиши.
func (h HotkeyConfig) String() string {
	parts := make([]string, 0, len(h.Modifiers)+1)
	for _, m := range h.Modifiers {
		parts = append(parts, string(m))
	}
	if h.Key != "" {
		parts = append(parts, string(h.Key))
	}
	return strings.Join(parts, "+")
}

// Validate проверяет, что модификаторы и клавиша есть среди доступных.
// Пустая конфигурация корректна.
func (h HotkeyConfig) Validate() error {
	if h.IsZero() {
		return nil
	}
	if !slices.Contains(AvailableKeys(), h.Key) {
		return fmt.Errorf("%w: клавиша %q", ErrInvalidHotkey, h.Key)
	}
	if len(h.Modifiers) == 0 {
		return fmt.Errorf("%w: нет модификаторов", ErrInvalidHotkey)
	}
	for _, m := range h.Modifiers {
		if !slices.Contains(AvailableModifiers(), m) {
			return fmt.Errorf("%w: модификатор %q", ErrInvalidHotkey, m)
		}
	}
	return nil
}

// AvailableModifiers возвращает список доступных модификаторов.
func AvailableModifiers() []Modifier {
	return []Modifier{ModCtrl, ModShift, ModAlt, ModSuper}
}

// AvailableKeys возвращает список доступных клавиш.
func AvailableKeys() []Key {
	return []Key{
		KeySpace, KeyReturn, KeyTab,
		KeyA, KeyB, KeyC, KeyD, KeyE, KeyF, KeyG, KeyH, KeyI, KeyJ, KeyK, KeyL, KeyM,
		KeyN, KeyO, KeyP, KeyQ, KeyR, KeyS, KeyT, KeyU, KeyV, KeyW, KeyX, KeyY, KeyZ,
		KeyF1, KeyF2, KeyF3, KeyF4, KeyF5, KeyF6, KeyF7, KeyF8, KeyF9, KeyF10, KeyF11, KeyF12,
	}
}
