// Package keysim посылает синтетические клавиатурные события активному окну.
package keysim

import "github.com/Pepper-96/keyboard-layout-changer/internal/hotkeys"

// Synthesizer имитирует нажатия клавиш.
type Synthesizer interface {
	// Copy посылает аккорд копирования выделенного текста.
	Copy() error
	// Paste посылает аккорд вставки.
	Paste() error
	// ReleaseCombo отпускает клавиши сочетания. Физически зажатые
	// пользователем модификаторы иначе примешиваются к синтетическим
	// аккордам и искажают их.
	ReleaseCombo(c hotkeys.Combo) error
}

// New создаёт платформо-специфичный Synthesizer.
func New() (Synthesizer, error) {
	return newSynthesizer()
}
