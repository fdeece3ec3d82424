//go:build darwin

package keysim

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/Pepper-96/keyboard-layout-changer/internal/hotkeys"
)

type darwinSynth struct{}

func newSynthesizer() (Synthesizer, error) {
	return &darwinSynth{}, nil
}

func (s *darwinSynth) Copy() error {
	return keystroke("c")
}

func (s *darwinSynth) Paste() error {
	return keystroke("v")
}

func keystroke(key string) error {
	script := fmt.Sprintf(`tell application "System Events" to keystroke %q using {command down}`, key)
	return exec.Command("osascript", "-e", script).Run()
}

func (s *darwinSynth) ReleaseCombo(c hotkeys.Combo) error {
	// System Events отпускает только модификаторы; для основной клавиши
	// события key up по имени нет.
	var names []string
	seen := map[string]bool{}
	for _, m := range c.Modifiers {
		n := appleModifier(m.Base())
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		names = append(names, n)
	}
	if len(names) == 0 {
		return nil
	}
	script := fmt.Sprintf(`tell application "System Events" to key up {%s}`, strings.Join(names, ", "))
	return exec.Command("osascript", "-e", script).Run()
}

func appleModifier(m hotkeys.Modifier) string {
	switch m {
	case hotkeys.ModCtrl:
		return "control"
	case hotkeys.ModShift:
		return "shift"
	case hotkeys.ModAlt:
		return "option"
	case hotkeys.ModSuper:
		return "command"
	}
	return ""
}
