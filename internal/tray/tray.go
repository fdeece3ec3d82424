// Package tray предоставляет системный трей с меню.
package tray

import (
	"github.com/getlantern/systray"

	"github.com/Pepper-96/keyboard-layout-changer/embedded"
	"github.com/Pepper-96/keyboard-layout-changer/internal/i18n"
)

// Callbacks содержит обработчики событий меню.
type Callbacks struct {
	OnRebindClick func()
	OnQuit        func()
}

// Options управляют составом меню.
type Options struct {
	// Rebind добавляет пункт смены сочетания клавиш.
	Rebind bool
}

// Tray управляет иконкой в системном трее.
type Tray struct {
	callbacks Callbacks
	opts      Options
	rebindBtn *systray.MenuItem
	quitBtn   *systray.MenuItem
}

// New создаёт новый Tray.
func New(opts Options, callbacks Callbacks) *Tray {
	return &Tray{opts: opts, callbacks: callbacks}
}

// Run запускает системный трей. Блокирующая функция.
func (t *Tray) Run(onReady func()) {
	systray.Run(func() {
		t.onReady()
		if onReady != nil {
			onReady()
		}
	}, t.onExit)
}

func (t *Tray) onReady() {
	systray.SetIcon(embedded.Icon)
	systray.SetTitle(i18n.T("app_name"))
	systray.SetTooltip(i18n.T("app_tooltip"))

	if t.opts.Rebind {
		t.rebindBtn = systray.AddMenuItem(i18n.T("tray_rebind"), i18n.T("tray_rebind_hint"))
	}
	t.quitBtn = systray.AddMenuItem(i18n.T("tray_quit"), i18n.T("tray_quit_hint"))

	// Обработка событий меню
	go t.handleMenuEvents()
}

func (t *Tray) handleMenuEvents() {
	// Без пункта смены сочетания nil-канал в select никогда не сработает
	var rebindCh <-chan struct{}
	if t.rebindBtn != nil {
		rebindCh = t.rebindBtn.ClickedCh
	}

	for {
		select {
		case <-rebindCh:
			if t.callbacks.OnRebindClick != nil {
				t.callbacks.OnRebindClick()
			}

		case <-t.quitBtn.ClickedCh:
			if t.callbacks.OnQuit != nil {
				t.callbacks.OnQuit()
			}
			t.Quit()
		}
	}
}

// SetHotkeyHint показывает действующее сочетание в подсказке иконки.
func (t *Tray) SetHotkeyHint(combo string) {
	systray.SetTooltip(i18n.T("app_name") + " - " + combo)
}

func (t *Tray) onExit() {
	// Cleanup при выходе
}

// Quit закрывает системный трей.
func (t *Tray) Quit() {
	systray.Quit()
}
