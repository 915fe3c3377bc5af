// Package embedded содержит встроенные ресурсы приложения.
//
// Иконки - шаблонные (чёрные с альфа-каналом): macOS сама
// перекрашивает их под светлую и тёмную строку меню.
// Перегенерировать: go run scripts/generate_icons.go
package embedded

import (
	_ "embed"
)

// IconIdle - глобус, переключение включено.
//
//go:embed icon_idle.png
var IconIdle []byte

// IconActive - заполненный глобус, короткая вспышка после переключения.
//
//go:embed icon_active.png
var IconActive []byte

// IconDisabled - перечёркнутый глобус, переключение выключено.
//
//go:embed icon_disabled.png
var IconDisabled []byte
