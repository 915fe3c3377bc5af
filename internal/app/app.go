// Package app содержит основную логику приложения.
package app

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"inputtoggle/internal/autostart"
	"inputtoggle/internal/chord"
	"inputtoggle/internal/config"
	"inputtoggle/internal/dialog"
	"inputtoggle/internal/hotkey"
	"inputtoggle/internal/hud"
	"inputtoggle/internal/i18n"
	"inputtoggle/internal/inputsource"
	"inputtoggle/internal/instance"
	"inputtoggle/internal/notify"
	"inputtoggle/internal/switcher"
	"inputtoggle/internal/tray"
)

// App представляет главное приложение.
type App struct {
	mu        sync.Mutex
	version   string
	config    *config.Config
	watcher   *config.Watcher
	matcher   *chord.Matcher
	monitor   chord.Monitor
	toggler   *inputsource.Toggler
	switcher  *switcher.Switcher
	fallback  *hotkey.Handler
	notifier  *notify.Notifier
	hud       *hud.Window
	tray      *tray.Tray
	agent     *autostart.Agent
	lock      *instance.Lock
	closeOnce sync.Once
}

// New создаёт новое приложение. Возвращает instance.ErrAlreadyRunning,
// если уже запущена другая копия.
func New(version string) (*App, error) {
	cfg := config.New()

	lock, err := instance.Acquire(lockPath(cfg))
	if err != nil {
		return nil, err
	}

	// Инициализируем язык интерфейса из конфига
	i18n.SetLanguage(i18n.Language(cfg.UILanguage()))

	matcher := chord.NewMatcher(cfg.Trigger())
	matcher.SetEnabled(cfg.Enabled())

	toggler := inputsource.NewToggler(inputsource.NewProvider())

	app := &App{
		version:  version,
		config:   cfg,
		matcher:  matcher,
		monitor:  chord.NewMonitor(),
		toggler:  toggler,
		switcher: switcher.New(matcher, toggler),
		notifier: notify.New(cfg.NotificationsEnabled()),
		hud:      hud.New(cfg.ShowHUD()),
		lock:     lock,
	}

	agent, err := autostart.New(autostart.DefaultLabel)
	if err != nil {
		log.Printf("Автозапуск недоступен: %v", err)
	} else {
		app.agent = agent
	}

	// Запасная горячая клавиша идёт в обход matcher
	app.fallback = hotkey.New(app.switcher.Request)

	app.tray = tray.New(tray.Callbacks{
		OnEnabledToggle:       app.toggleEnabled,
		OnTriggerSelect:       app.selectTrigger,
		OnNotificationsToggle: app.toggleNotifications,
		OnHUDToggle:           app.toggleHUD,
		OnLoginToggle:         app.toggleLogin,
		OnLanguageSelect:      app.selectLanguage,
		OnAccessibility:       app.requestAccessibility,
		OnAbout: func() {
			go dialog.ShowAbout(app.version, "")
		},
		OnQuit: app.Close,
	}, tray.Options{
		Enabled:       cfg.Enabled(),
		Trigger:       cfg.Trigger(),
		Notifications: cfg.NotificationsEnabled(),
		HUD:           cfg.ShowHUD(),
		Login:         app.agent != nil && app.agent.Installed(),
	})

	toggler.AddPulser(app.tray)
	toggler.AddPulser(app.notifier)
	toggler.AddPulser(app.hud)

	cfg.OnChange(app.applyConfig)

	return app, nil
}

func lockPath(cfg *config.Config) string {
	if p := cfg.Path(); p != "" {
		return filepath.Join(filepath.Dir(p), "instance.lock")
	}
	return filepath.Join(os.TempDir(), config.AppDirName+".lock")
}

// Run запускает приложение. Блокирует до выхода.
func (a *App) Run() {
	go a.switcher.Run()
	go a.handleSignals()

	a.tray.Run(a.onReady, a.Close)
}

func (a *App) onReady() {
	a.startMonitor()

	if err := a.fallback.Register(a.config.FallbackHotkey()); err != nil {
		log.Printf("Ошибка регистрации запасной горячей клавиши: %v", err)
		a.notifier.Error(i18n.T("error_hotkey_register"))
	}

	if w, err := a.config.Watch(); err != nil {
		log.Printf("Наблюдение за конфигурацией недоступно: %v", err)
	} else {
		a.mu.Lock()
		a.watcher = w
		a.mu.Unlock()
	}

	if src, err := a.toggler.Current(); err == nil && src.ID != "" {
		a.tray.SetCurrent(src.String())
	}

	log.Printf("InputSourceToggle запущен. Сочетание: %s", a.config.Trigger())
}

// startMonitor включает перехват клавиатуры. Без универсального доступа
// приложение продолжает работать: меню и запасная горячая клавиша доступны.
func (a *App) startMonitor() bool {
	err := a.monitor.Start(a.switcher.HandleEvent)
	switch {
	case err == nil:
		a.tray.SetPermissionMissing(false)
		log.Println("Keyboard monitoring started")
		return true
	case errors.Is(err, chord.ErrPermissionDenied):
		log.Printf("ERROR: %v", err)
		log.Println("Откройте Системные настройки > Конфиденциальность и безопасность > Универсальный доступ")
		a.tray.SetPermissionMissing(true)
		a.notifier.PermissionDenied()
		go a.askAccessibility()
	default:
		log.Printf("Мониторинг клавиатуры недоступен: %v", err)
	}
	return false
}

func (a *App) askAccessibility() {
	if !dialog.AskAccessibility() {
		return
	}
	if err := dialog.OpenAccessibilitySettings(); err != nil {
		log.Printf("Не удалось открыть настройки: %v", err)
	}
}

// requestAccessibility - пункт меню. Если доступ уже выдан, перехват
// запускается без перезапуска приложения.
func (a *App) requestAccessibility() {
	if chord.AccessibilityTrusted() && a.startMonitor() {
		return
	}
	chord.RequestAccessibility()
	if err := dialog.OpenAccessibilitySettings(); err != nil {
		log.Printf("Не удалось открыть настройки: %v", err)
	}
}

func (a *App) toggleEnabled() bool {
	enabled := a.config.ToggleEnabled()
	a.matcher.SetEnabled(enabled)
	log.Printf("InputSourceToggle %s", map[bool]string{true: "enabled", false: "disabled"}[enabled])
	return enabled
}

func (a *App) selectTrigger(t config.Trigger) {
	a.config.SetTrigger(t)
	a.matcher.SetTrigger(t)
	a.tray.SetTrigger(t)
	log.Printf("Shortcut set to %s", t)
}

func (a *App) toggleNotifications() bool {
	enabled := a.config.ToggleNotifications()
	a.notifier.SetEnabled(enabled)
	return enabled
}

func (a *App) toggleHUD() bool {
	enabled := a.config.ToggleHUD()
	a.hud.SetEnabled(enabled)
	return enabled
}

func (a *App) toggleLogin() {
	if a.agent == nil {
		a.tray.SetLogin(false)
		return
	}
	installed, err := a.agent.Toggle()
	if err != nil {
		log.Printf("Ошибка автозапуска: %v", err)
		go dialog.ShowError(i18n.T("app_name"), fmt.Sprintf("%s: %v", i18n.T("error_login_item"), err))
		installed = a.agent.Installed()
	} else {
		log.Printf("Автозапуск: %v (%s)", installed, a.agent.Path())
	}
	a.tray.SetLogin(installed)
}

func (a *App) selectLanguage(lang i18n.Language) {
	a.config.SetUILanguage(string(lang))
	i18n.SetLanguage(lang)
	a.tray.RefreshUI()
}

// applyConfig применяет конфигурацию, изменённую вне приложения.
func (a *App) applyConfig() {
	trigger := a.config.Trigger()
	enabled := a.config.Enabled()

	a.matcher.SetTrigger(trigger)
	a.matcher.SetEnabled(enabled)
	a.notifier.SetEnabled(a.config.NotificationsEnabled())
	a.hud.SetEnabled(a.config.ShowHUD())

	a.tray.SetTrigger(trigger)
	a.tray.SetEnabled(enabled)

	i18n.SetLanguage(i18n.Language(a.config.UILanguage()))
	a.tray.RefreshUI()

	if err := a.fallback.Register(a.config.FallbackHotkey()); err != nil {
		log.Printf("Ошибка регистрации запасной горячей клавиши: %v", err)
		a.notifier.Error(i18n.T("error_hotkey_register"))
	}
}

func (a *App) handleSignals() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Printf("Получен сигнал %v, выходим...", sig)
	a.Close()
	a.tray.Quit()
}

// Close освобождает ресурсы приложения. Повторные вызовы ничего не делают.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		log.Println("InputSourceToggle quitting...")

		a.monitor.Stop()
		a.switcher.Stop()
		a.fallback.Unregister()
		a.hud.Close()

		a.mu.Lock()
		if a.watcher != nil {
			a.watcher.Close()
			a.watcher = nil
		}
		a.mu.Unlock()

		if err := a.lock.Release(); err != nil {
			log.Printf("Ошибка снятия блокировки: %v", err)
		}
	})
}
