// Package tray предоставляет иконку в строке меню с меню настроек.
package tray

import (
	"fmt"
	"sync"
	"time"

	"github.com/getlantern/systray"
	"inputtoggle/embedded"
	"inputtoggle/internal/config"
	"inputtoggle/internal/i18n"
	"inputtoggle/internal/inputsource"
)

// pulseDuration - сколько держится "заполненная" иконка после переключения.
const pulseDuration = 300 * time.Millisecond

// Callbacks содержит обработчики событий меню.
type Callbacks struct {
	OnEnabledToggle       func() bool
	OnTriggerSelect       func(config.Trigger)
	OnNotificationsToggle func() bool
	OnHUDToggle           func() bool
	OnLoginToggle         func()
	OnLanguageSelect      func(i18n.Language)
	OnAccessibility       func()
	OnAbout               func()
	OnQuit                func()
}

// Options - начальное состояние пунктов меню.
type Options struct {
	Enabled       bool
	Trigger       config.Trigger
	Notifications bool
	HUD           bool
	Login         bool
}

// Tray управляет иконкой в строке меню.
type Tray struct {
	callbacks Callbacks

	mu         sync.Mutex
	ready      bool
	enabled    bool
	trigger    config.Trigger
	current    string
	pulseTimer *time.Timer
	permission bool

	enabledItem   *systray.MenuItem
	shortcutMenu  *systray.MenuItem
	triggerItems  map[config.Trigger]*systray.MenuItem
	info          *systray.MenuItem
	status        *systray.MenuItem
	notifyItem    *systray.MenuItem
	hudItem       *systray.MenuItem
	loginItem     *systray.MenuItem
	languageMenu  *systray.MenuItem
	languageItems map[i18n.Language]*systray.MenuItem
	accessItem    *systray.MenuItem
	aboutItem     *systray.MenuItem
	quitItem      *systray.MenuItem
	initial       Options
}

// New создаёт новый Tray.
func New(callbacks Callbacks, opts Options) *Tray {
	return &Tray{
		callbacks: callbacks,
		enabled:   opts.Enabled,
		trigger:   opts.Trigger,
		initial:   opts,
	}
}

// Run запускает цикл строки меню. Блокирующая функция.
func (t *Tray) Run(onReady, onExit func()) {
	systray.Run(func() {
		t.onReady()
		if onReady != nil {
			onReady()
		}
	}, onExit)
}

func (t *Tray) onReady() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.applyIcon()
	systray.SetTooltip(i18n.T("app_tooltip"))

	t.enabledItem = systray.AddMenuItemCheckbox(i18n.T("tray_enabled"), i18n.T("tray_enabled_hint"), t.enabled)

	systray.AddSeparator()

	t.shortcutMenu = systray.AddMenuItem(i18n.T("tray_shortcut"), "")
	t.triggerItems = make(map[config.Trigger]*systray.MenuItem)
	for _, tr := range config.Triggers() {
		item := t.shortcutMenu.AddSubMenuItemCheckbox(triggerTitle(tr), "", tr == t.trigger)
		t.triggerItems[tr] = item
		tr := tr
		go onClick(item, func() {
			if t.callbacks.OnTriggerSelect != nil {
				t.callbacks.OnTriggerSelect(tr)
			}
		})
	}

	systray.AddSeparator()

	t.info = systray.AddMenuItem(triggerInfo(t.trigger), "")
	t.info.Disable()
	t.status = systray.AddMenuItem(t.statusTitle(), "")
	t.status.Disable()
	if t.current == "" {
		t.status.Hide()
	}

	systray.AddSeparator()

	t.notifyItem = systray.AddMenuItemCheckbox(i18n.T("tray_notifications"), i18n.T("tray_notifications_hint"), t.initial.Notifications)
	t.hudItem = systray.AddMenuItemCheckbox(i18n.T("tray_hud"), i18n.T("tray_hud_hint"), t.initial.HUD)
	t.loginItem = systray.AddMenuItemCheckbox(i18n.T("tray_login"), i18n.T("tray_login_hint"), t.initial.Login)

	t.languageMenu = systray.AddMenuItem(i18n.T("tray_language"), "")
	t.languageItems = make(map[i18n.Language]*systray.MenuItem)
	for _, lang := range i18n.AvailableLanguages() {
		item := t.languageMenu.AddSubMenuItemCheckbox(i18n.LanguageName(lang), "", lang == i18n.GetLanguage())
		t.languageItems[lang] = item
		lang := lang
		go onClick(item, func() {
			if t.callbacks.OnLanguageSelect != nil {
				t.callbacks.OnLanguageSelect(lang)
			}
		})
	}

	t.accessItem = systray.AddMenuItem(i18n.T("tray_accessibility"), i18n.T("tray_accessibility_hint"))
	if !t.permission {
		t.accessItem.Hide()
	}

	systray.AddSeparator()

	t.aboutItem = systray.AddMenuItem(i18n.T("tray_about"), "")
	t.quitItem = systray.AddMenuItem(i18n.T("tray_quit"), i18n.T("tray_quit_hint"))

	t.ready = true
	go t.handleMenuEvents()
}

func (t *Tray) handleMenuEvents() {
	for {
		select {
		case <-t.enabledItem.ClickedCh:
			if t.callbacks.OnEnabledToggle != nil {
				t.SetEnabled(t.callbacks.OnEnabledToggle())
			}

		case <-t.notifyItem.ClickedCh:
			if t.callbacks.OnNotificationsToggle != nil {
				setChecked(t.notifyItem, t.callbacks.OnNotificationsToggle())
			}

		case <-t.hudItem.ClickedCh:
			if t.callbacks.OnHUDToggle != nil {
				setChecked(t.hudItem, t.callbacks.OnHUDToggle())
			}

		case <-t.loginItem.ClickedCh:
			if t.callbacks.OnLoginToggle != nil {
				t.callbacks.OnLoginToggle()
			}

		case <-t.accessItem.ClickedCh:
			if t.callbacks.OnAccessibility != nil {
				t.callbacks.OnAccessibility()
			}

		case <-t.aboutItem.ClickedCh:
			if t.callbacks.OnAbout != nil {
				t.callbacks.OnAbout()
			}

		case <-t.quitItem.ClickedCh:
			if t.callbacks.OnQuit != nil {
				t.callbacks.OnQuit()
			}
			systray.Quit()
			return
		}
	}
}

func onClick(item *systray.MenuItem, fn func()) {
	for range item.ClickedCh {
		fn()
	}
}

func setChecked(item *systray.MenuItem, checked bool) {
	if checked {
		item.Check()
	} else {
		item.Uncheck()
	}
}

// SetEnabled обновляет галочку "Включено" и иконку.
func (t *Tray) SetEnabled(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.enabled = enabled
	if !t.ready {
		return
	}
	setChecked(t.enabledItem, enabled)
	if t.pulseTimer == nil {
		t.applyIcon()
	}
}

// SetTrigger отмечает выбранное сочетание и обновляет подсказку.
func (t *Tray) SetTrigger(tr config.Trigger) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.trigger = tr
	if !t.ready {
		return
	}
	for variant, item := range t.triggerItems {
		setChecked(item, variant == tr)
	}
	t.info.SetTitle(triggerInfo(tr))
}

// SetCurrent показывает активную раскладку в меню.
func (t *Tray) SetCurrent(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current = name
	if !t.ready {
		return
	}
	t.status.SetTitle(t.statusTitle())
	if name == "" {
		t.status.Hide()
	} else {
		t.status.Show()
	}
}

// SetPermissionMissing показывает или прячет пункт про универсальный доступ.
func (t *Tray) SetPermissionMissing(missing bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.permission = missing
	if !t.ready {
		return
	}
	if missing {
		t.accessItem.Show()
	} else {
		t.accessItem.Hide()
	}
}

// SetLogin обновляет галочку автозапуска.
func (t *Tray) SetLogin(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.ready {
		setChecked(t.loginItem, enabled)
	}
}

// Pulse кратко подсвечивает иконку после переключения.
// Реализует inputsource.Pulser.
func (t *Tray) Pulse(src inputsource.Source) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current = src.String()
	if !t.ready {
		return
	}
	t.status.SetTitle(t.statusTitle())
	t.status.Show()

	if t.pulseTimer != nil {
		t.pulseTimer.Stop()
	}
	systray.SetTemplateIcon(embedded.IconActive, embedded.IconActive)
	t.pulseTimer = time.AfterFunc(pulseDuration, t.endPulse)
}

func (t *Tray) endPulse() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pulseTimer = nil
	t.applyIcon()
}

// applyIcon ставит иконку по состоянию. Вызывающий держит t.mu.
func (t *Tray) applyIcon() {
	if t.enabled {
		systray.SetTemplateIcon(embedded.IconIdle, embedded.IconIdle)
	} else {
		systray.SetTemplateIcon(embedded.IconDisabled, embedded.IconDisabled)
	}
}

func (t *Tray) statusTitle() string {
	return fmt.Sprintf(i18n.T("tray_current"), t.current)
}

// RefreshUI обновляет все тексты меню на текущем языке.
func (t *Tray) RefreshUI() {
	t.mu.Lock()
	defer t.mu.Unlock()

	systray.SetTooltip(i18n.T("app_tooltip"))
	if !t.ready {
		return
	}

	t.enabledItem.SetTitle(i18n.T("tray_enabled"))
	t.enabledItem.SetTooltip(i18n.T("tray_enabled_hint"))
	t.shortcutMenu.SetTitle(i18n.T("tray_shortcut"))
	for variant, item := range t.triggerItems {
		item.SetTitle(triggerTitle(variant))
	}
	t.info.SetTitle(triggerInfo(t.trigger))
	t.status.SetTitle(t.statusTitle())
	t.notifyItem.SetTitle(i18n.T("tray_notifications"))
	t.notifyItem.SetTooltip(i18n.T("tray_notifications_hint"))
	t.hudItem.SetTitle(i18n.T("tray_hud"))
	t.hudItem.SetTooltip(i18n.T("tray_hud_hint"))
	t.loginItem.SetTitle(i18n.T("tray_login"))
	t.loginItem.SetTooltip(i18n.T("tray_login_hint"))
	t.languageMenu.SetTitle(i18n.T("tray_language"))
	for lang, item := range t.languageItems {
		setChecked(item, lang == i18n.GetLanguage())
	}
	t.accessItem.SetTitle(i18n.T("tray_accessibility"))
	t.accessItem.SetTooltip(i18n.T("tray_accessibility_hint"))
	t.aboutItem.SetTitle(i18n.T("tray_about"))
	t.quitItem.SetTitle(i18n.T("tray_quit"))
	t.quitItem.SetTooltip(i18n.T("tray_quit_hint"))
}

// Quit закрывает строку меню.
func (t *Tray) Quit() {
	systray.Quit()
}

func triggerTitle(tr config.Trigger) string {
	switch tr {
	case config.TriggerCtrlShift:
		return i18n.T("tray_shortcut_ctrl")
	case config.TriggerCmdShift:
		return i18n.T("tray_shortcut_cmd")
	default:
		return i18n.T("tray_shortcut_both")
	}
}

func triggerInfo(tr config.Trigger) string {
	switch tr {
	case config.TriggerCtrlShift:
		return i18n.T("tray_info_ctrl")
	case config.TriggerCmdShift:
		return i18n.T("tray_info_cmd")
	default:
		return i18n.T("tray_info_both")
	}
}
