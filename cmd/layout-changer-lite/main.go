// Layout Changer Lite - исправление раскладки без настроек.
//
// Тот же цикл исправления, что и в полной версии, но без смены
// сочетания клавиш, файла конфигурации и уведомлений: только трей
// с пунктом выхода и Ctrl+Shift+Q.
package main

import (
	"errors"
	"log"
	"os"

	"github.com/Pepper-96/keyboard-layout-changer/internal/app"
	"github.com/Pepper-96/keyboard-layout-changer/internal/hotkeys"
	"github.com/Pepper-96/keyboard-layout-changer/internal/i18n"
	"github.com/Pepper-96/keyboard-layout-changer/internal/single"
)

// Version устанавливается при сборке через -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Printf("Layout Changer Lite %s запускается...", Version)

	guard, err := single.Acquire()
	if errors.Is(err, single.ErrAlreadyRunning) {
		log.Println(i18n.T("already_running"))
		return
	}
	if err != nil {
		log.Printf("Ошибка проверки единственного экземпляра: %v", err)
		os.Exit(1)
	}
	defer guard.Release()

	// Запускаем в главном потоке (требование для macOS и некоторых GUI)
	hotkeys.RunOnMainThread(run)
}

func run() {
	application, err := app.New(app.Options{Rebind: false, Notifications: false})
	if err != nil {
		log.Printf("Ошибка инициализации: %v", err)
		os.Exit(1)
	}

	log.Println("Приложение запущено. Выделите текст и нажмите Ctrl+Shift+Q.")
	application.Run()
}
