// Package app содержит основную логику приложения.
package app

import (
	"log"
	"os"
	"strings"
	"sync"

	"github.com/Pepper-96/keyboard-layout-changer/internal/clipboard"
	"github.com/Pepper-96/keyboard-layout-changer/internal/config"
	"github.com/Pepper-96/keyboard-layout-changer/internal/corrector"
	"github.com/Pepper-96/keyboard-layout-changer/internal/dialog"
	"github.com/Pepper-96/keyboard-layout-changer/internal/hotkeys"
	"github.com/Pepper-96/keyboard-layout-changer/internal/i18n"
	"github.com/Pepper-96/keyboard-layout-changer/internal/keysim"
	"github.com/Pepper-96/keyboard-layout-changer/internal/notify"
	"github.com/Pepper-96/keyboard-layout-changer/internal/tray"
)

// Options задают вариант сборки приложения.
type Options struct {
	// Rebind включает пункт меню смены сочетания и наблюдение за
	// файлом конфигурации. Без него приложение работает с сочетанием
	// по умолчанию и не трогает диск.
	Rebind bool
	// Notifications включает системные уведомления.
	Notifications bool
}

// App представляет главное приложение.
type App struct {
	mu        sync.Mutex
	opts      Options
	config    *config.Config // nil в минимальном варианте
	engine    *corrector.Engine
	notifier  *notify.Notifier
	tray      *tray.Tray
	hotkey    *hotkeys.Manager
	rebinding bool // защита от двух открытых диалогов
}

// New создаёт новое приложение.
func New(opts Options) (*App, error) {
	detectLanguage()

	app := &App{opts: opts}

	if opts.Rebind {
		app.config = config.New()
	}

	keys, err := keysim.New()
	if err != nil {
		return nil, err
	}
	app.engine = corrector.New(clipboard.New(), keys)
	app.notifier = notify.New(opts.Notifications)

	app.hotkey = hotkeys.New(func(c hotkeys.Combo) {
		// Неудавшийся цикл не снимает регистрацию: слушатель
		// продолжает работать
		if err := app.engine.Run(c); err != nil {
			log.Printf("Цикл исправления не удался: %v", err)
		}
	})

	if app.config != nil {
		app.config.OnHotkeyChange(app.applyExternalHotkey)
	}

	// Создаём системный трей с обработчиками
	app.tray = tray.New(tray.Options{Rebind: opts.Rebind}, tray.Callbacks{
		OnRebindClick: func() {
			go app.rebindFlow()
		},
		OnQuit: func() {
			app.Close()
		},
	})

	return app, nil
}

// Run запускает приложение. Блокирует до выхода из трея.
func (a *App) Run() {
	a.tray.Run(func() {
		// Регистрируем горячую клавишу после инициализации трея
		combo := a.initialCombo()
		if err := a.hotkey.Register(combo); err != nil {
			log.Printf("Ошибка регистрации горячей клавиши %s: %v", combo, err)
			a.notifier.RebindFailed(i18n.T("error_hotkey_register"))
		} else {
			a.tray.SetHotkeyHint(combo.String())
			a.notifier.Ready(combo.String())
		}

		if a.config != nil {
			if err := a.config.Watch(); err != nil {
				log.Printf("Наблюдение за конфигурацией не запустилось: %v", err)
			}
		}
	})
}

// initialCombo возвращает сочетание для регистрации на старте:
// сохранённое, а если оно не разбирается - сочетание по умолчанию.
func (a *App) initialCombo() hotkeys.Combo {
	saved := config.DefaultHotkey
	if a.config != nil {
		saved = a.config.Hotkey()
	}

	combo, err := hotkeys.Parse(saved)
	if err != nil {
		log.Printf("Сохранённое сочетание %q не разобрать, берём %s: %v", saved, config.DefaultHotkey, err)
		combo, _ = hotkeys.Parse(config.DefaultHotkey)
	}
	return combo
}

// rebindFlow спрашивает у пользователя новое сочетание и применяет его.
// Запускается в отдельной горутине: диалог блокирует до закрытия.
func (a *App) rebindFlow() {
	a.mu.Lock()
	if a.rebinding {
		a.mu.Unlock()
		return
	}
	a.rebinding = true
	a.mu.Unlock()
	defer func() {
		a.mu.Lock()
		a.rebinding = false
		a.mu.Unlock()
	}()

	current := a.hotkey.Current().String()
	text, ok := dialog.AskHotkey(current)
	if !ok {
		return // пользователь передумал
	}

	combo, err := hotkeys.Parse(text)
	if err != nil {
		log.Printf("Введённое сочетание %q не разобрать: %v", text, err)
		a.notifier.RebindFailed(i18n.T("error_hotkey_parse"))
		return
	}
	if combo.String() == current {
		return
	}

	prev := a.hotkey.Current()
	if err := a.hotkey.Register(combo); err != nil {
		log.Printf("Ошибка регистрации горячей клавиши %s: %v", combo, err)
		a.notifier.RebindFailed(i18n.T("error_hotkey_register"))
		a.reregister(prev)
		return
	}

	a.config.SetHotkey(combo.String())
	a.tray.SetHotkeyHint(combo.String())
	a.notifier.RebindDone(combo.String())
}

// applyExternalHotkey применяет сочетание, изменённое правкой файла
// конфигурации. Неприменимое значение откатывается и в файле.
func (a *App) applyExternalHotkey(hk string) {
	prev := a.hotkey.Current()

	combo, err := hotkeys.Parse(hk)
	if err != nil {
		log.Printf("Сочетание %q из конфигурации не разобрать: %v", hk, err)
		a.notifier.RebindFailed(i18n.T("error_hotkey_parse"))
		a.config.SetHotkey(prev.String())
		return
	}
	if combo.String() == prev.String() {
		// Правка без смысловой разницы, перерегистрация не нужна
		return
	}

	if err := a.hotkey.Register(combo); err != nil {
		log.Printf("Ошибка регистрации горячей клавиши %s: %v", combo, err)
		a.notifier.RebindFailed(i18n.T("error_hotkey_register"))
		a.reregister(prev)
		a.config.SetHotkey(prev.String())
		return
	}

	// Приводим запись в файле к каноническому виду
	a.config.SetHotkey(combo.String())
	a.tray.SetHotkeyHint(combo.String())
	a.notifier.RebindDone(combo.String())
}

// reregister возвращает прежнее сочетание после неудачной регистрации
// нового.
func (a *App) reregister(prev hotkeys.Combo) {
	if prev.Key == "" {
		return
	}
	if err := a.hotkey.Register(prev); err != nil {
		log.Printf("Не удалось вернуть прежнее сочетание %s: %v", prev, err)
	}
}

// Close завершает работу приложения.
func (a *App) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.hotkey != nil {
		a.hotkey.Unregister()
	}
	if a.config != nil {
		a.config.Close()
	}
}

// detectLanguage выбирает язык интерфейса по локали окружения.
// Русский - язык по умолчанию.
func detectLanguage() {
	for _, v := range []string{os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG")} {
		if v == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(v), "ru") {
			i18n.SetLanguage(i18n.RU)
		} else {
			i18n.SetLanguage(i18n.EN)
		}
		return
	}
	i18n.SetLanguage(i18n.RU)
}
