// InputSourceToggle - утилита строки меню macOS для переключения раскладки.
//
// Переключает на следующий источник ввода, когда отпускается левый Shift,
// нажатый вместе с Control, Command или любым из них.
package main

import (
	"errors"
	"log"
	"os"

	"inputtoggle/internal/app"
	"inputtoggle/internal/hotkey"
	"inputtoggle/internal/instance"
)

// Version устанавливается при сборке через -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Printf("InputSourceToggle %s запускается...", Version)

	// Запускаем в главном потоке (требование для macOS)
	hotkey.RunOnMainThread(run)
}

func run() {
	application, err := app.New(Version)
	if errors.Is(err, instance.ErrAlreadyRunning) {
		log.Println("InputSourceToggle уже запущен")
		os.Exit(0)
	}
	if err != nil {
		log.Printf("Ошибка инициализации: %v", err)
		os.Exit(1)
	}

	application.Run()
}
