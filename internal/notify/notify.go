// Package notify предоставляет системные уведомления.
package notify

import (
	"sync/atomic"

	"github.com/gen2brain/beeep"
	"inputtoggle/internal/i18n"
	"inputtoggle/internal/inputsource"
)

// Notifier отправляет системные уведомления.
type Notifier struct {
	enabled atomic.Bool
	send    func(title, message string) error
}

// New создаёт новый Notifier.
func New(enabled bool) *Notifier {
	n := &Notifier{send: func(title, message string) error {
		return beeep.Notify(title, message, "")
	}}
	n.enabled.Store(enabled)
	return n
}

// SetEnabled включает/выключает уведомления о смене раскладки.
func (n *Notifier) SetEnabled(enabled bool) {
	n.enabled.Store(enabled)
}

// Pulse показывает уведомление о новой раскладке. Реализует inputsource.Pulser.
func (n *Notifier) Pulse(src inputsource.Source) {
	if !n.enabled.Load() {
		return
	}
	// Уведомления не должны задерживать переключение
	go n.notify(i18n.T("notify_switched"), src.String())
}

// PermissionDenied сообщает, что перехват клавиатуры запрещён.
// Показывается всегда, независимо от настройки.
func (n *Notifier) PermissionDenied() {
	n.notify(i18n.T("notify_permission"), i18n.T("notify_permission_msg"))
}

// Error показывает уведомление об ошибке. Показывается всегда.
func (n *Notifier) Error(msg string) {
	n.notify(i18n.T("notify_error"), msg)
}

func (n *Notifier) notify(title, message string) {
	// Игнорируем ошибки уведомлений - они не критичны
	_ = n.send(i18n.T("app_name")+": "+title, message)
}
