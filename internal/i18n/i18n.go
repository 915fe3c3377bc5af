// Package i18n provides internationalization support.
package i18n

import "sync"

// Language represents a UI language.
type Language string

const (
	EN Language = "en"
	HE Language = "he"
	RU Language = "ru"
)

var (
	mu      sync.RWMutex
	current = EN // Default language
)

// Translations for all supported languages.
var translations = map[Language]map[string]string{
	EN: {
		// App
		"app_name":        "Input Source Toggle",
		"app_tooltip":     "Input Source Toggle",
		"app_description": "Quickly switch between keyboard layouts\nusing a modifier shortcut.",

		// Tray menu
		"tray_enabled":            "Enabled",
		"tray_enabled_hint":       "Toggle input source on shortcut",
		"tray_shortcut":           "Shortcut",
		"tray_shortcut_ctrl":      "Ctrl + Left Shift",
		"tray_shortcut_cmd":       "Cmd + Left Shift",
		"tray_shortcut_both":      "Both",
		"tray_info_ctrl":          "⌃ Ctrl + Left Shift to toggle",
		"tray_info_cmd":           "⌘ Cmd + Left Shift to toggle",
		"tray_info_both":          "⌃/⌘ + Left Shift to toggle",
		"tray_current":            "Current: %s",
		"tray_notifications":      "Notifications",
		"tray_notifications_hint": "Notify when the input source changes",
		"tray_hud":                "Show layout on switch",
		"tray_hud_hint":           "Briefly show the new layout on screen",
		"tray_login":              "Launch at Login",
		"tray_login_hint":         "Start automatically after login",
		"tray_language":           "Language",
		"tray_accessibility":      "Grant Accessibility Access...",
		"tray_accessibility_hint": "Required to detect the shortcut",
		"tray_about":              "About",
		"tray_quit":               "Quit",
		"tray_quit_hint":          "Close application",

		// Notifications
		"notify_switched":       "Input source",
		"notify_error":          "Error",
		"notify_permission":     "Accessibility permission required",
		"notify_permission_msg": "Shortcut detection is off until access is granted.",

		// Dialogs
		"about_version":         "Version %s",
		"permission_title":      "Accessibility Permission Required",
		"permission_text":       "Please grant Accessibility permission in System Settings > Privacy & Security > Accessibility, then restart the app.",
		"permission_open":       "Open Settings",
		"permission_later":      "Later",
		"dialog_ok":             "OK",
		"error_hotkey_register": "Could not register fallback hotkey",
		"error_login_item":      "Could not update login item",
	},

	HE: {
		"app_name":        "Input Source Toggle",
		"app_tooltip":     "Input Source Toggle",
		"app_description": "מעבר מהיר בין פריסות מקלדת\nבעזרת קיצור מקשים.",

		"tray_enabled":            "פעיל",
		"tray_enabled_hint":       "החלפת שפת הקלדה בקיצור",
		"tray_shortcut":           "קיצור",
		"tray_shortcut_ctrl":      "Ctrl + Shift שמאלי",
		"tray_shortcut_cmd":       "Cmd + Shift שמאלי",
		"tray_shortcut_both":      "שניהם",
		"tray_info_ctrl":          "⌃ Ctrl + Shift שמאלי להחלפה",
		"tray_info_cmd":           "⌘ Cmd + Shift שמאלי להחלפה",
		"tray_info_both":          "⌃/⌘ + Shift שמאלי להחלפה",
		"tray_current":            "נוכחי: %s",
		"tray_notifications":      "התראות",
		"tray_notifications_hint": "התראה בעת החלפת שפה",
		"tray_hud":                "הצגת השפה בעת החלפה",
		"tray_hud_hint":           "הצגה קצרה של השפה החדשה על המסך",
		"tray_login":              "הפעלה בכניסה",
		"tray_login_hint":         "הפעלה אוטומטית לאחר כניסה למערכת",
		"tray_language":           "שפה",
		"tray_accessibility":      "מתן הרשאת נגישות...",
		"tray_accessibility_hint": "נדרש לזיהוי הקיצור",
		"tray_about":              "אודות",
		"tray_quit":               "יציאה",
		"tray_quit_hint":          "סגירת היישום",

		"notify_switched":       "שפת הקלדה",
		"notify_error":          "שגיאה",
		"notify_permission":     "נדרשת הרשאת נגישות",
		"notify_permission_msg": "זיהוי הקיצור כבוי עד למתן ההרשאה.",

		"about_version":         "גרסה %s",
		"permission_title":      "נדרשת הרשאת נגישות",
		"permission_text":       "יש לאשר הרשאת נגישות בהגדרות המערכת > פרטיות ואבטחה > נגישות, ולהפעיל מחדש את היישום.",
		"permission_open":       "פתיחת ההגדרות",
		"permission_later":      "אחר כך",
		"dialog_ok":             "אישור",
		"error_hotkey_register": "לא ניתן לרשום את מקש הגיבוי",
		"error_login_item":      "לא ניתן לעדכן את ההפעלה בכניסה",
	},

	RU: {
		"app_name":        "Input Source Toggle",
		"app_tooltip":     "Input Source Toggle",
		"app_description": "Быстрое переключение раскладки\nсочетанием модификаторов.",

		"tray_enabled":            "Включено",
		"tray_enabled_hint":       "Переключать раскладку по сочетанию",
		"tray_shortcut":           "Сочетание",
		"tray_shortcut_ctrl":      "Ctrl + левый Shift",
		"tray_shortcut_cmd":       "Cmd + левый Shift",
		"tray_shortcut_both":      "Оба",
		"tray_info_ctrl":          "⌃ Ctrl + левый Shift для переключения",
		"tray_info_cmd":           "⌘ Cmd + левый Shift для переключения",
		"tray_info_both":          "⌃/⌘ + левый Shift для переключения",
		"tray_current":            "Сейчас: %s",
		"tray_notifications":      "Уведомления",
		"tray_notifications_hint": "Уведомлять о смене раскладки",
		"tray_hud":                "Показывать раскладку",
		"tray_hud_hint":           "Кратко показывать новую раскладку на экране",
		"tray_login":              "Запускать при входе",
		"tray_login_hint":         "Автозапуск после входа в систему",
		"tray_language":           "Язык",
		"tray_accessibility":      "Разрешить универсальный доступ...",
		"tray_accessibility_hint": "Нужно для перехвата сочетания",
		"tray_about":              "О программе",
		"tray_quit":               "Выход",
		"tray_quit_hint":          "Закрыть приложение",

		"notify_switched":       "Раскладка",
		"notify_error":          "Ошибка",
		"notify_permission":     "Нужен универсальный доступ",
		"notify_permission_msg": "Сочетание не работает, пока доступ не выдан.",

		"about_version":         "Версия %s",
		"permission_title":      "Нужен универсальный доступ",
		"permission_text":       "Разрешите доступ в Системных настройках > Конфиденциальность и безопасность > Универсальный доступ и перезапустите приложение.",
		"permission_open":       "Открыть настройки",
		"permission_later":      "Позже",
		"dialog_ok":             "OK",
		"error_hotkey_register": "Не удалось зарегистрировать запасную горячую клавишу",
		"error_login_item":      "Не удалось изменить автозапуск",
	},
}

// T returns the translation for the given key, falling back to English
// and then to the key itself.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if s, ok := translations[current][key]; ok {
		return s
	}
	if s, ok := translations[EN][key]; ok {
		return s
	}
	return key
}

// SetLanguage sets the current UI language. Unknown languages are ignored.
func SetLanguage(lang Language) {
	if _, ok := translations[lang]; !ok {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	current = lang
}

// GetLanguage returns the current UI language.
func GetLanguage() Language {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// AvailableLanguages returns list of supported languages.
func AvailableLanguages() []Language {
	return []Language{EN, HE, RU}
}

// LanguageName returns display name for a language.
func LanguageName(lang Language) string {
	switch lang {
	case EN:
		return "English"
	case HE:
		return "עברית"
	case RU:
		return "Русский"
	default:
		return string(lang)
	}
}
