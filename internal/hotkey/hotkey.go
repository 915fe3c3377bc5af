// Package hotkey регистрирует запасную горячую клавишу переключения раскладки.
//
// В отличие от аккордов из пакета chord, зарегистрированная горячая клавиша
// не требует Accessibility-доступа, поэтому переключение остаётся доступным,
// даже если системный перехват клавиатуры запрещён.
package hotkey

import (
	"errors"
	"log"
	"sync"
	"time"

	"golang.design/x/hotkey"
	"golang.design/x/hotkey/mainthread"
	"inputtoggle/internal/config"
)

// debounceInterval защищает от key repeat при удержании.
const debounceInterval = 300 * time.Millisecond

// ErrUnknownKey возвращается для клавиши, которой нет в keyMap.
var ErrUnknownKey = errors.New("hotkey: неизвестная клавиша")

// Handler обрабатывает события запасной горячей клавиши.
type Handler struct {
	mu      sync.Mutex
	hk      *hotkey.Hotkey
	onPress func()
	current config.HotkeyConfig
	stopCh  chan struct{}
}

// New создаёт обработчик горячей клавиши.
func New(onPress func()) *Handler {
	return &Handler{onPress: onPress}
}

// Register регистрирует горячую клавишу, заменяя предыдущую.
// Пустая конфигурация только снимает регистрацию.
func (h *Handler) Register(cfg config.HotkeyConfig) error {
	h.mu.Lock()
	if h.hk != nil && h.current.Equal(cfg) {
		h.mu.Unlock()
		return nil
	}
	h.mu.Unlock()

	h.Unregister()

	if cfg.IsZero() {
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	key, ok := keyMap[cfg.Key]
	if !ok {
		return ErrUnknownKey
	}

	log.Printf("Регистрация запасной горячей клавиши: %s", cfg.String())

	h.mu.Lock()
	defer h.mu.Unlock()

	hk := hotkey.New(convertModifiers(cfg.Modifiers), key)
	if err := hk.Register(); err != nil {
		log.Printf("Ошибка регистрации: %v", err)
		return err
	}

	h.hk = hk
	h.current = cfg
	h.stopCh = make(chan struct{})
	go h.listen(hk, h.stopCh)

	log.Printf("Запасная горячая клавиша зарегистрирована: %s", cfg.String())
	return nil
}

func (h *Handler) listen(hk *hotkey.Hotkey, stopCh chan struct{}) {
	var lastKeydown time.Time

	for {
		select {
		case <-stopCh:
			return
		case _, ok := <-hk.Keydown():
			if !ok {
				return
			}
			now := time.Now()
			if now.Sub(lastKeydown) < debounceInterval {
				continue
			}
			lastKeydown = now
			if h.onPress != nil {
				h.onPress()
			}
		case _, ok := <-hk.Keyup():
			if !ok {
				return
			}
		}
	}
}

// Unregister отменяет регистрацию горячей клавиши.
// Снятие регистрации ограничено по времени: на macOS оно может зависнуть,
// если главный поток занят.
func (h *Handler) Unregister() {
	h.mu.Lock()
	if h.stopCh != nil {
		close(h.stopCh)
		h.stopCh = nil
	}
	oldHk := h.hk
	h.hk = nil
	h.current = config.HotkeyConfig{}
	h.mu.Unlock()

	if oldHk == nil {
		return
	}

	done := make(chan struct{})
	go func() {
		if err := oldHk.Unregister(); err != nil {
			log.Printf("Ошибка снятия горячей клавиши: %v", err)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		log.Printf("Hotkey unregister timeout")
	}
}

// RunOnMainThread запускает функцию в главном потоке (требование для macOS).
func RunOnMainThread(fn func()) {
	mainthread.Init(fn)
}

// keyMap маппинг config.Key -> hotkey.Key
var keyMap = map[config.Key]hotkey.Key{
	config.KeySpace:  hotkey.KeySpace,
	config.KeyReturn: hotkey.KeyReturn,
	config.KeyTab:    hotkey.KeyTab,
	config.KeyA:      hotkey.KeyA,
	config.KeyB:      hotkey.KeyB,
	config.KeyC:      hotkey.KeyC,
	config.KeyD:      hotkey.KeyD,
	config.KeyE:      hotkey.KeyE,
	config.KeyF:      hotkey.KeyF,
	config.KeyG:      hotkey.KeyG,
	config.KeyH:      hotkey.KeyH,
	config.KeyI:      hotkey.KeyI,
	config.KeyJ:      hotkey.KeyJ,
	config.KeyK:      hotkey.KeyK,
	config.KeyL:      hotkey.KeyL,
	config.KeyM:      hotkey.KeyM,
	config.KeyN:      hotkey.KeyN,
	config.KeyO:      hotkey.KeyO,
	config.KeyP:      hotkey.KeyP,
	config.KeyQ:      hotkey.KeyQ,
	config.KeyR:      hotkey.KeyR,
	config.KeyS:      hotkey.KeyS,
	config.KeyT:      hotkey.KeyT,
	config.KeyU:      hotkey.KeyU,
	config.KeyV:      hotkey.KeyV,
	config.KeyW:      hotkey.KeyW,
	config.KeyX:      hotkey.KeyX,
	config.KeyY:      hotkey.KeyY,
	config.KeyZ:      hotkey.KeyZ,
	config.KeyF1:     hotkey.KeyF1,
	config.KeyF2:     hotkey.KeyF2,
	config.KeyF3:     hotkey.KeyF3,
	config.KeyF4:     hotkey.KeyF4,
	config.KeyF5:     hotkey.KeyF5,
	config.KeyF6:     hotkey.KeyF6,
	config.KeyF7:     hotkey.KeyF7,
	config.KeyF8:     hotkey.KeyF8,
	config.KeyF9:     hotkey.KeyF9,
	config.KeyF10:    hotkey.KeyF10,
	config.KeyF11:    hotkey.KeyF11,
	config.KeyF12:    hotkey.KeyF12,
}
