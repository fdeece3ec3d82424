//go:build linux

package keysim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Pepper-96/keyboard-layout-changer/internal/hotkeys"
)

func TestX11Modifier(t *testing.T) {
	assert.Equal(t, "ctrl", x11Modifier(hotkeys.ModCtrl))
	assert.Equal(t, "Control_L", x11Modifier(hotkeys.ModLCtrl))
	assert.Equal(t, "Control_R", x11Modifier(hotkeys.ModRCtrl))
	assert.Equal(t, "Shift_L", x11Modifier(hotkeys.ModLShift))
	assert.Equal(t, "Alt_R", x11Modifier(hotkeys.ModRAlt))
	assert.Equal(t, "super", x11Modifier(hotkeys.ModSuper))
}

func TestX11Key(t *testing.T) {
	assert.Equal(t, "space", x11Key(hotkeys.KeySpace))
	assert.Equal(t, "BackSpace", x11Key(hotkeys.KeyBackspace))
	assert.Equal(t, "Return", x11Key(hotkeys.KeyEnter))
	assert.Equal(t, "End", x11Key(hotkeys.KeyEnd))
	assert.Equal(t, "F5", x11Key("f5"))
	assert.Equal(t, "F12", x11Key("f12"))
	assert.Equal(t, "q", x11Key("q"))
	assert.Equal(t, "7", x11Key("7"))
}

func TestWtypeModifier(t *testing.T) {
	assert.Equal(t, "ctrl", wtypeModifier(hotkeys.ModCtrl))
	assert.Equal(t, "logo", wtypeModifier(hotkeys.ModSuper))
}
