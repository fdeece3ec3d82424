//go:build linux

package hotkeys

import "golang.design/x/hotkey"

// modifierMap маппинг Modifier -> hotkey.Modifier для Linux
var modifierMap = map[Modifier]hotkey.Modifier{
	ModCtrl:  hotkey.ModCtrl,
	ModShift: hotkey.ModShift,
	ModAlt:   hotkey.Mod1, // Alt = Mod1 на X11
	ModSuper: hotkey.Mod4, // Super/Win = Mod4 на X11
}
