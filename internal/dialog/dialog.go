// Package dialog предоставляет GUI диалоги для настройки приложения.
package dialog

import (
	"strings"

	"github.com/ncruces/zenity"

	"github.com/Pepper-96/keyboard-layout-changer/internal/i18n"
)

// AskHotkey открывает диалог ввода нового сочетания клавиш, подставив
// текущее как начальное значение. Возвращает введённую строку;
// ok=false если пользователь отменил ввод или оставил поле пустым.
func AskHotkey(current string) (string, bool) {
	text, err := zenity.Entry(
		i18n.T("dialog_rebind_prompt"),
		zenity.Title(i18n.T("dialog_rebind_title")),
		zenity.EntryText(current),
	)
	if err != nil {
		return "", false // Пользователь отменил
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	return text, true
}
