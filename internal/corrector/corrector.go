// Package corrector исправляет текст, набранный не в той раскладке.
//
// Цикл исправления работает через буфер обмена: выделенный текст
// копируется синтетическим аккордом, перекодируется и вставляется
// обратно. Содержимое буфера, бывшее там до цикла, возвращается на
// место при любом исходе.
package corrector

import (
	"fmt"
	"log"
	"time"
	"unicode/utf8"

	"github.com/Pepper-96/keyboard-layout-changer/internal/hotkeys"
	"github.com/Pepper-96/keyboard-layout-changer/internal/layout"
)

// Clipboard - операции с буфером обмена, нужные циклу исправления.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
	Clear() error
}

// Keys - синтетические клавиатурные события, нужные циклу.
type Keys interface {
	Copy() error
	Paste() error
	ReleaseCombo(c hotkeys.Combo) error
}

// settleDelay - пауза после синтетического аккорда: системе нужно время
// доставить событие активному окну и обновить буфер.
const settleDelay = 50 * time.Millisecond

// Engine выполняет цикл исправления.
type Engine struct {
	clip   Clipboard
	keys   Keys
	settle time.Duration
}

// New создаёт движок исправления.
func New(clip Clipboard, keys Keys) *Engine {
	return &Engine{clip: clip, keys: keys, settle: settleDelay}
}

// Run исправляет текущее выделение. c - сочетание, которым цикл был
// запущен: его клавиши отпускаются перед аккордом копирования.
//
// Пустой буфер после копирования означает отсутствие выделения; это не
// ошибка, цикл просто завершается. Ошибка на любом шаге после очистки
// буфера не отменяет возврат исходного содержимого.
func (e *Engine) Run(c hotkeys.Combo) error {
	old, err := e.clip.ReadText()
	if err != nil {
		return fmt.Errorf("чтение буфера перед циклом: %w", err)
	}

	// Очищаем буфер, чтобы отличить скопированное выделение от
	// устаревшего содержимого.
	if err := e.clip.Clear(); err != nil {
		return fmt.Errorf("очистка буфера: %w", err)
	}
	defer e.restore(old)

	if err := e.keys.ReleaseCombo(c); err != nil {
		// Зажатые клавиши могут исказить аккорд, но шанс есть
		log.Printf("Не удалось отпустить клавиши сочетания: %v", err)
	}

	if err := e.keys.Copy(); err != nil {
		return fmt.Errorf("аккорд копирования: %w", err)
	}
	time.Sleep(e.settle)

	selected, err := e.clip.ReadText()
	if err != nil {
		return fmt.Errorf("чтение скопированного: %w", err)
	}
	if selected == "" {
		log.Printf("Выделение пустое, исправлять нечего")
		return nil
	}

	dir := layout.Detect(selected)
	fixed := layout.Translate(selected, dir)

	if err := e.clip.WriteText(fixed); err != nil {
		return fmt.Errorf("запись исправленного текста: %w", err)
	}

	if err := e.keys.Paste(); err != nil {
		return fmt.Errorf("аккорд вставки: %w", err)
	}
	time.Sleep(e.settle)

	log.Printf("Текст заменён (%s, %d симв.)", dir, utf8.RuneCountInString(selected))
	return nil
}

// restore возвращает в буфер содержимое, бывшее там до цикла.
func (e *Engine) restore(old string) {
	if err := e.clip.WriteText(old); err != nil {
		log.Printf("Не удалось вернуть исходное содержимое буфера: %v", err)
	}
}
