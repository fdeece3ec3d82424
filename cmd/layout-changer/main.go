// Layout Changer - кроссплатформенное исправление текста, набранного
// не в той раскладке.
//
// Работает в системном трее, слушает Ctrl+Shift+Q. Выделенный текст
// копируется через буфер обмена, перекладывается между латиницей и
// кириллицей и вставляется обратно.
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
	log.Printf("Layout Changer %s запускается...", Version)

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
	application, err := app.New(app.Options{Rebind: true, Notifications: true})
	if err != nil {
		log.Printf("Ошибка инициализации: %v", err)
		os.Exit(1)
	}

	log.Println("Приложение запущено. Выделите текст и нажмите сочетание клавиш.")
	application.Run()
}
