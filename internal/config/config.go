// Package config предоставляет конфигурацию приложения с сохранением в файл.
package config

import (
	"bytes"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// AppDirName - имя каталога приложения внутри os.UserConfigDir().
const AppDirName = "InputSourceToggle"

// Trigger задаёт аккорд переключения раскладки.
type Trigger string

const (
	TriggerCtrlShift Trigger = "ctrl_shift" // Ctrl + левый Shift
	TriggerCmdShift  Trigger = "cmd_shift"  // Cmd + левый Shift
	TriggerBoth      Trigger = "both"       // Ctrl или Cmd + левый Shift
)

// DefaultTrigger используется, если в файле нет корректного значения.
const DefaultTrigger = TriggerBoth

// Triggers возвращает все варианты в порядке пунктов меню.
func Triggers() []Trigger {
	return []Trigger{TriggerCtrlShift, TriggerCmdShift, TriggerBoth}
}

// Valid возвращает true для одного из трёх известных вариантов.
func (t Trigger) Valid() bool {
	switch t {
	case TriggerCtrlShift, TriggerCmdShift, TriggerBoth:
		return true
	}
	return false
}

// ParseTrigger разбирает строку из файла настроек.
// Неизвестные значения дают DefaultTrigger и false.
func ParseTrigger(s string) (Trigger, bool) {
	t := Trigger(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return DefaultTrigger, false
	}
	return t, true
}

// configData структура для сериализации.
type configData struct {
	ShortcutMode   string        `json:"shortcut_mode"`
	Enabled        *bool         `json:"enabled,omitempty"`
	Notifications  bool          `json:"notifications"`
	ShowHUD        bool          `json:"show_hud"`
	UILanguage     string        `json:"ui_language,omitempty"`
	FallbackHotkey *HotkeyConfig `json:"fallback_hotkey,omitempty"`
}

// Config хранит настройки приложения.
type Config struct {
	mu            sync.RWMutex
	trigger       Trigger
	enabled       bool
	notifications bool
	showHUD       bool
	uiLanguage    string
	fallback      HotkeyConfig
	configPath    string
	lastSaved     []byte
	onChange      []func()
}

// New создаёт конфигурацию, загружая её из каталога пользователя.
func New() *Config {
	path := ""
	if dir, err := os.UserConfigDir(); err == nil {
		path = filepath.Join(dir, AppDirName, "config.json")
	}
	return NewAt(path)
}

// NewAt создаёт конфигурацию с явным путём к файлу.
// Пустой путь означает конфигурацию только в памяти.
func NewAt(path string) *Config {
	c := &Config{
		trigger:    DefaultTrigger,
		enabled:    true,
		uiLanguage: "en",
	}
	if path != "" {
		c.configPath = filepath.Clean(path)
	}

	// Ошибки чтения не критичны: остаются значения по умолчанию
	if data, err := c.read(); err == nil {
		c.apply(data)
	}

	return c
}

// Path возвращает путь к файлу конфигурации.
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) read() ([]byte, error) {
	if c.configPath == "" {
		return nil, os.ErrNotExist
	}
	return os.ReadFile(c.configPath)
}

// apply разбирает содержимое файла. Вызывающий держит блокировку
// или ещё не опубликовал Config.
func (c *Config) apply(data []byte) bool {
	var cfg configData
	if err := json.Unmarshal(data, &cfg); err != nil {
		return false
	}

	c.trigger, _ = ParseTrigger(cfg.ShortcutMode)
	c.enabled = true
	if cfg.Enabled != nil {
		c.enabled = *cfg.Enabled
	}
	c.notifications = cfg.Notifications
	c.showHUD = cfg.ShowHUD
	if cfg.UILanguage != "" {
		c.uiLanguage = cfg.UILanguage
	}
	c.fallback = HotkeyConfig{}
	if cfg.FallbackHotkey != nil {
		c.fallback = *cfg.FallbackHotkey
	}
	c.lastSaved = data
	return true
}

// save сохраняет конфигурацию в файл. Вызывающий держит c.mu.
func (c *Config) save() {
	if c.configPath == "" {
		return
	}

	enabled := c.enabled
	cfg := configData{
		ShortcutMode:  string(c.trigger),
		Enabled:       &enabled,
		Notifications: c.notifications,
		ShowHUD:       c.showHUD,
		UILanguage:    c.uiLanguage,
	}
	if !c.fallback.IsZero() {
		fb := c.fallback
		cfg.FallbackHotkey = &fb
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		log.Printf("Ошибка сохранения конфигурации: %v", err)
		return
	}
	if bytes.Equal(data, c.lastSaved) {
		return
	}

	if err := os.MkdirAll(filepath.Dir(c.configPath), 0755); err != nil {
		log.Printf("Ошибка сохранения конфигурации: %v", err)
		return
	}
	if err := os.WriteFile(c.configPath, data, 0644); err != nil {
		log.Printf("Ошибка сохранения конфигурации: %v", err)
		return
	}
	c.lastSaved = data
}

// OnChange добавляет callback, вызываемый после перечитывания файла
// при внешнем изменении.
func (c *Config) OnChange(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = append(c.onChange, fn)
}

// Trigger возвращает текущий аккорд.
func (c *Config) Trigger() Trigger {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.trigger
}

// SetTrigger устанавливает аккорд. Некорректные значения игнорируются.
func (c *Config) SetTrigger(t Trigger) {
	if !t.Valid() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.trigger = t
	c.save()
}

// Enabled возвращает true если переключение включено.
func (c *Config) Enabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.enabled
}

// ToggleEnabled переключает состояние и возвращает новое значение.
func (c *Config) ToggleEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = !c.enabled
	c.save()
	return c.enabled
}

// NotificationsEnabled возвращает true если уведомления включены.
func (c *Config) NotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.notifications
}

// ToggleNotifications переключает состояние уведомлений.
func (c *Config) ToggleNotifications() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = !c.notifications
	c.save()
	return c.notifications
}

// ShowHUD возвращает true если нужно показывать окно с новой раскладкой.
func (c *Config) ShowHUD() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.showHUD
}

// ToggleHUD переключает показ окна с новой раскладкой.
func (c *Config) ToggleHUD() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.showHUD = !c.showHUD
	c.save()
	return c.showHUD
}

// UILanguage возвращает язык интерфейса.
func (c *Config) UILanguage() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.uiLanguage
}

// SetUILanguage устанавливает язык интерфейса.
func (c *Config) SetUILanguage(lang string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.uiLanguage = lang
	c.save()
}

// FallbackHotkey возвращает запасную горячую клавишу (может быть пустой).
func (c *Config) FallbackHotkey() HotkeyConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fallback
}

// SetFallbackHotkey устанавливает запасную горячую клавишу.
func (c *Config) SetFallbackHotkey(hk HotkeyConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fallback = hk
	c.save()
}
