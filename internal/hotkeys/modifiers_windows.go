//go:build windows

package hotkeys

import "golang.design/x/hotkey"

// modifierMap маппинг Modifier -> hotkey.Modifier для Windows
var modifierMap = map[Modifier]hotkey.Modifier{
	ModCtrl:  hotkey.ModCtrl,
	ModShift: hotkey.ModShift,
	ModAlt:   hotkey.ModAlt,
	ModSuper: hotkey.ModWin,
}
