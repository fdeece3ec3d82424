//go:build windows

package keysim

import (
	"syscall"
	"unsafe"

	"github.com/micmonay/keybd_event"

	"github.com/Pepper-96/keyboard-layout-changer/internal/hotkeys"
)

var (
	user32        = syscall.NewLazyDLL("user32.dll")
	procSendInput = user32.NewProc("SendInput")
)

const (
	inputKeyboard  = 1
	keyEventFKeyUp = 0x0002
)

type keyboardInput struct {
	wVk         uint16
	wScan       uint16
	dwFlags     uint32
	time        uint32
	dwExtraInfo uintptr
}

type input struct {
	inputType uint32
	ki        keyboardInput
	padding   uint64
}

// Виртуальные коды клавиш Windows.
const (
	vkBack     = 0x08
	vkTab      = 0x09
	vkReturn   = 0x0D
	vkShift    = 0x10
	vkControl  = 0x11
	vkMenu     = 0x12 // Alt
	vkEscape   = 0x1B
	vkSpace    = 0x20
	vkEnd      = 0x23
	vkLWin     = 0x5B
	vkF1       = 0x70
	vkLShift   = 0xA0
	vkRShift   = 0xA1
	vkLControl = 0xA2
	vkRControl = 0xA3
	vkLMenu    = 0xA4
	vkRMenu    = 0xA5
)

var modifierVK = map[hotkeys.Modifier]uint16{
	hotkeys.ModCtrl:   vkControl,
	hotkeys.ModLCtrl:  vkLControl,
	hotkeys.ModRCtrl:  vkRControl,
	hotkeys.ModShift:  vkShift,
	hotkeys.ModLShift: vkLShift,
	hotkeys.ModRShift: vkRShift,
	hotkeys.ModAlt:    vkMenu,
	hotkeys.ModLAlt:   vkLMenu,
	hotkeys.ModRAlt:   vkRMenu,
	hotkeys.ModSuper:  vkLWin,
}

func keyVK(k hotkeys.Key) (uint16, bool) {
	switch k {
	case hotkeys.KeySpace:
		return vkSpace, true
	case hotkeys.KeyBackspace:
		return vkBack, true
	case hotkeys.KeyEnter:
		return vkReturn, true
	case hotkeys.KeyEnd:
		return vkEnd, true
	case hotkeys.KeyTab:
		return vkTab, true
	case hotkeys.KeyEsc:
		return vkEscape, true
	}
	if len(k) == 1 {
		c := k[0]
		if c >= 'a' && c <= 'z' {
			return uint16(c - 'a' + 'A'), true
		}
		if c >= '0' && c <= '9' {
			return uint16(c), true
		}
	}
	if len(k) >= 2 && len(k) <= 3 && k[0] == 'f' {
		n := 0
		for _, d := range k[1:] {
			if d < '0' || d > '9' {
				return 0, false
			}
			n = n*10 + int(d-'0')
		}
		if n >= 1 && n <= 12 {
			return uint16(vkF1 + n - 1), true
		}
	}
	return 0, false
}

type windowsSynth struct {
	copyBond  keybd_event.KeyBonding
	pasteBond keybd_event.KeyBonding
}

func newSynthesizer() (Synthesizer, error) {
	copyKb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return nil, err
	}
	copyKb.HasCTRL(true)
	copyKb.SetKeys(keybd_event.VK_C)

	pasteKb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return nil, err
	}
	pasteKb.HasCTRL(true)
	pasteKb.SetKeys(keybd_event.VK_V)

	return &windowsSynth{copyBond: copyKb, pasteBond: pasteKb}, nil
}

func (s *windowsSynth) Copy() error {
	return s.copyBond.Launching()
}

func (s *windowsSynth) Paste() error {
	return s.pasteBond.Launching()
}

func (s *windowsSynth) ReleaseCombo(c hotkeys.Combo) error {
	inputs := make([]input, 0, len(c.Modifiers)+1)
	keyUp := func(vk uint16) {
		inputs = append(inputs, input{
			inputType: inputKeyboard,
			ki: keyboardInput{
				wVk:     vk,
				dwFlags: keyEventFKeyUp,
			},
		})
	}

	for _, m := range c.Modifiers {
		if vk, ok := modifierVK[m]; ok {
			keyUp(vk)
		}
	}
	if vk, ok := keyVK(c.Key); ok {
		keyUp(vk)
	}
	if len(inputs) == 0 {
		return nil
	}

	procSendInput.Call(
		uintptr(len(inputs)),
		uintptr(unsafe.Pointer(&inputs[0])),
		uintptr(unsafe.Sizeof(inputs[0])),
	)
	return nil
}
