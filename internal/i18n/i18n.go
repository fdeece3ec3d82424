// Package i18n provides internationalization support.
package i18n

import "sync"

// Language represents a UI language.
type Language string

const (
	RU Language = "ru"
	EN Language = "en"
)

var (
	mu      sync.RWMutex
	current = RU // Default language
)

// Translations for all supported languages.
var translations = map[Language]map[string]string{
	RU: {
		// App
		"app_name":    "Сменщик раскладки",
		"app_tooltip": "Сменщик раскладки - исправление текста, набранного не в той раскладке",

		// Tray menu
		"tray_rebind":      "Изменить сочетание клавиш...",
		"tray_rebind_hint": "Задать новое сочетание для исправления раскладки",
		"tray_quit":        "Завершить",
		"tray_quit_hint":   "Закрыть приложение",

		// Rebind dialog
		"dialog_rebind_title":  "Изменение сочетания клавиш",
		"dialog_rebind_prompt": "Введите новое сочетание клавиш (например, ctrl+shift+q):",

		// Notifications
		"notify_ready":       "Готов к работе",
		"notify_ready_hint":  "Выделите текст и нажмите %s",
		"notify_rebind_ok":   "Сочетание обновлено",
		"notify_rebind_fail": "Сочетание не изменено",

		// Errors
		"error_hotkey_parse":    "Не удалось разобрать сочетание",
		"error_hotkey_register": "Не удалось зарегистрировать горячую клавишу",
		"already_running":       "Приложение уже запущено",
	},

	EN: {
		// App
		"app_name":    "Layout Changer",
		"app_tooltip": "Layout Changer - fixes text typed in the wrong layout",

		// Tray menu
		"tray_rebind":      "Change hotkey...",
		"tray_rebind_hint": "Set a new layout-fixing hotkey",
		"tray_quit":        "Quit",
		"tray_quit_hint":   "Close application",

		// Rebind dialog
		"dialog_rebind_title":  "Change hotkey",
		"dialog_rebind_prompt": "Enter the new hotkey (for example, ctrl+shift+q):",

		// Notifications
		"notify_ready":       "Ready",
		"notify_ready_hint":  "Select text and press %s",
		"notify_rebind_ok":   "Hotkey updated",
		"notify_rebind_fail": "Hotkey unchanged",

		// Errors
		"error_hotkey_parse":    "Could not parse the hotkey",
		"error_hotkey_register": "Could not register the hotkey",
		"already_running":       "Application is already running",
	},
}

// T returns the translation for the given key in the current language.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if strings, ok := translations[current]; ok {
		if s, ok := strings[key]; ok {
			return s
		}
	}
	// Fallback to key itself
	return key
}

// SetLanguage sets the current UI language.
func SetLanguage(lang Language) {
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
