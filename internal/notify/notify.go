// Package notify предоставляет системные уведомления.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/Pepper-96/keyboard-layout-changer/internal/i18n"
)

// Notifier отправляет системные уведомления.
type Notifier struct {
	enabled bool
}

// New создаёт новый Notifier.
func New(enabled bool) *Notifier {
	return &Notifier{enabled: enabled}
}

// Ready сообщает о готовности приложения и действующем сочетании.
func (n *Notifier) Ready(combo string) {
	n.notify(i18n.T("notify_ready"), fmt.Sprintf(i18n.T("notify_ready_hint"), combo))
}

// RebindDone сообщает об успешной смене сочетания.
func (n *Notifier) RebindDone(combo string) {
	n.notify(i18n.T("notify_rebind_ok"), combo)
}

// RebindFailed сообщает, что сочетание осталось прежним.
func (n *Notifier) RebindFailed(reason string) {
	n.notify(i18n.T("notify_rebind_fail"), reason)
}

func (n *Notifier) notify(title, message string) {
	if !n.enabled {
		return
	}
	// Игнорируем ошибки уведомлений - они не критичны
	_ = beeep.Notify(i18n.T("app_name")+": "+title, message, "")
}
