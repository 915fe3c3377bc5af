// Package dialog предоставляет GUI диалоги приложения.
package dialog

import (
	"fmt"
	"os/exec"

	"github.com/ncruces/zenity"
	"inputtoggle/internal/i18n"
)

// accessibilityURL открывает раздел Универсальный доступ в системных настройках.
const accessibilityURL = "x-apple.systempreferences:com.apple.preference.security?Privacy_Accessibility"

// ShowAbout показывает окно "О программе".
func ShowAbout(version, author string) {
	text := i18n.T("app_name") + "\n\n" + fmt.Sprintf(i18n.T("about_version"), version)
	if author != "" {
		text += "\n\n" + author
	}
	text += "\n\n" + i18n.T("app_description")

	zenity.Info(text,
		zenity.Title(i18n.T("tray_about")),
		zenity.InfoIcon,
		zenity.OKLabel(i18n.T("dialog_ok")),
	)
}

// AskAccessibility объясняет, зачем нужен универсальный доступ.
// Возвращает true если пользователь выбрал открыть настройки.
func AskAccessibility() bool {
	err := zenity.Question(i18n.T("permission_text"),
		zenity.Title(i18n.T("permission_title")),
		zenity.WarningIcon,
		zenity.OKLabel(i18n.T("permission_open")),
		zenity.CancelLabel(i18n.T("permission_later")),
	)
	return err == nil
}

// OpenAccessibilitySettings открывает системные настройки универсального доступа.
func OpenAccessibilitySettings() error {
	return exec.Command("open", accessibilityURL).Run()
}

// ShowError показывает сообщение об ошибке.
func ShowError(title, message string) {
	zenity.Error(message, zenity.Title(title))
}
