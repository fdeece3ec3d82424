//go:build linux

package keysim

import (
	"os"
	"os/exec"
	"strings"

	"github.com/Pepper-96/keyboard-layout-changer/internal/hotkeys"
)

type linuxSynth struct {
	useWayland bool
}

func newSynthesizer() (Synthesizer, error) {
	return &linuxSynth{
		useWayland: os.Getenv("WAYLAND_DISPLAY") != "",
	}, nil
}

func (s *linuxSynth) Copy() error {
	if s.useWayland {
		return exec.Command("wtype", "-M", "ctrl", "-k", "c", "-m", "ctrl").Run()
	}
	return exec.Command("xdotool", "key", "--clearmodifiers", "ctrl+c").Run()
}

func (s *linuxSynth) Paste() error {
	if s.useWayland {
		return exec.Command("wtype", "-M", "ctrl", "-k", "v", "-m", "ctrl").Run()
	}
	return exec.Command("xdotool", "key", "--clearmodifiers", "ctrl+v").Run()
}

func (s *linuxSynth) ReleaseCombo(c hotkeys.Combo) error {
	if s.useWayland {
		// Виртуальная клавиатура Wayland не умеет отпускать физически
		// зажатые клавиши, отпускаем хотя бы модификаторы.
		var args []string
		for _, m := range c.Modifiers {
			args = append(args, "-m", wtypeModifier(m.Base()))
		}
		if len(args) == 0 {
			return nil
		}
		return exec.Command("wtype", args...).Run()
	}

	args := []string{"keyup"}
	for _, m := range c.Modifiers {
		args = append(args, x11Modifier(m))
	}
	if name := x11Key(c.Key); name != "" {
		args = append(args, name)
	}
	if len(args) == 1 {
		return nil
	}
	return exec.Command("xdotool", args...).Run()
}

func x11Modifier(m hotkeys.Modifier) string {
	switch m {
	case hotkeys.ModLCtrl:
		return "Control_L"
	case hotkeys.ModRCtrl:
		return "Control_R"
	case hotkeys.ModLShift:
		return "Shift_L"
	case hotkeys.ModRShift:
		return "Shift_R"
	case hotkeys.ModLAlt:
		return "Alt_L"
	case hotkeys.ModRAlt:
		return "Alt_R"
	}
	// ctrl, shift, alt, super - алиасы xdotool
	return string(m)
}

func x11Key(k hotkeys.Key) string {
	switch k {
	case hotkeys.KeySpace:
		return "space"
	case hotkeys.KeyBackspace:
		return "BackSpace"
	case hotkeys.KeyEnter:
		return "Return"
	case hotkeys.KeyEnd:
		return "End"
	case hotkeys.KeyTab:
		return "Tab"
	case hotkeys.KeyEsc:
		return "Escape"
	}
	if len(k) >= 2 && k[0] == 'f' {
		return strings.ToUpper(string(k)) // f5 -> F5
	}
	return string(k)
}

func wtypeModifier(m hotkeys.Modifier) string {
	if m == hotkeys.ModSuper {
		return "logo"
	}
	return string(m)
}
