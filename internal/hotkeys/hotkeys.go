// Package hotkeys предоставляет глобальные горячие клавиши и разбор их
// строковой записи.
package hotkeys

import (
	"fmt"
	"log"
	"sync"
	"time"

	"golang.design/x/hotkey"
	"golang.design/x/hotkey/mainthread"
)

// handle - активная регистрация в golang.design/x/hotkey.
type handle interface {
	Register() error
	Unregister() error
	Keydown() <-chan hotkey.Event
	Keyup() <-chan hotkey.Event
}

// newHandle подменяется в тестах.
var newHandle = func(mods []hotkey.Modifier, key hotkey.Key) handle {
	return hotkey.New(mods, key)
}

// Manager владеет регистрацией глобального сочетания. Активна не более
// одной регистрации: Register с новым сочетанием снимает предыдущее.
type Manager struct {
	mu      sync.Mutex
	hk      handle
	onPress func(Combo)
	current Combo
	stopCh  chan struct{}
}

// New создаёт менеджер. onPress вызывается из горутины-слушателя при
// каждом срабатывании; срабатывания одного сочетания обрабатываются
// последовательно.
func New(onPress func(Combo)) *Manager {
	return &Manager{onPress: onPress}
}

// Register регистрирует сочетание, снимая предыдущее. Клавиша, для
// которой глобальная регистрация невозможна, отклоняется до снятия
// старого сочетания - оно остаётся активным. Если отказала сама
// регистрация в системе, активного сочетания не остаётся.
func (m *Manager) Register(c Combo) error {
	log.Printf("Регистрация горячей клавиши: %s", c)

	key, ok := keyMap[c.Key]
	if !ok {
		return fmt.Errorf("клавиша %q не подходит для глобального сочетания", c.Key)
	}

	m.mu.Lock()

	// Останавливаем предыдущий listener
	if m.stopCh != nil {
		close(m.stopCh)
		m.stopCh = nil
	}

	oldHk := m.hk
	m.hk = nil
	m.mu.Unlock()

	// Небольшая задержка чтобы listener завершился
	time.Sleep(50 * time.Millisecond)

	// Отменяем предыдущую регистрацию в горутине с таймаутом
	if oldHk != nil {
		done := make(chan struct{})
		go func() {
			oldHk.Unregister()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(500 * time.Millisecond):
			log.Printf("Не дождались снятия старой регистрации")
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	mods := make([]hotkey.Modifier, 0, len(c.Modifiers))
	for _, mod := range c.Modifiers {
		if hm, ok := modifierMap[mod.Base()]; ok {
			mods = append(mods, hm)
		}
	}

	m.hk = newHandle(mods, key)
	m.stopCh = make(chan struct{})

	if err := m.hk.Register(); err != nil {
		log.Printf("Ошибка регистрации %s: %v", c, err)
		m.hk = nil
		m.stopCh = nil
		return err
	}

	m.current = c
	log.Printf("Горячая клавиша зарегистрирована: %s", c)
	go m.listen(m.hk, m.current, m.stopCh)
	return nil
}

func (m *Manager) listen(hk handle, combo Combo, stopCh chan struct{}) {
	var lastKeydown time.Time
	const debounceInterval = 300 * time.Millisecond // Защита от key repeat

	for {
		select {
		case <-stopCh:
			return
		case _, ok := <-hk.Keydown():
			if !ok {
				return
			}
			// Debounce: игнорируем повторные keydown от key repeat
			now := time.Now()
			if now.Sub(lastKeydown) < debounceInterval {
				continue
			}
			lastKeydown = now
			if m.onPress != nil {
				m.onPress(combo)
			}
		case _, ok := <-hk.Keyup():
			if !ok {
				return
			}
			// Отпускание сочетания нас не интересует
		}
	}
}

// Unregister снимает текущую регистрацию. Без активной регистрации
// ничего не делает.
func (m *Manager) Unregister() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stopCh != nil {
		close(m.stopCh)
		m.stopCh = nil
	}

	if m.hk != nil {
		err := m.hk.Unregister()
		m.hk = nil
		return err
	}
	return nil
}

// Current возвращает последнее успешно зарегистрированное сочетание.
func (m *Manager) Current() Combo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// RunOnMainThread запускает функцию в главном потоке (требование для macOS).
func RunOnMainThread(fn func()) {
	mainthread.Init(fn)
}

// modifierMap определён в platform-specific файлах:
// - modifiers_linux.go
// - modifiers_darwin.go
// - modifiers_windows.go

// keyMap - клавиши, известные golang.design/x/hotkey. Буквы и цифры
// заданы литералами, как их возвращает Parse. backspace и end
// разбираются, но константами библиотеки не покрыты, поэтому глобальная
// регистрация на них невозможна.
var keyMap = map[Key]hotkey.Key{
	KeySpace: hotkey.KeySpace,
	KeyEnter: hotkey.KeyReturn,
	KeyTab:   hotkey.KeyTab,
	KeyEsc:   hotkey.KeyEscape,
	"a":      hotkey.KeyA,
	"b":      hotkey.KeyB,
	"c":      hotkey.KeyC,
	"d":      hotkey.KeyD,
	"e":      hotkey.KeyE,
	"f":      hotkey.KeyF,
	"g":      hotkey.KeyG,
	"h":      hotkey.KeyH,
	"i":      hotkey.KeyI,
	"j":      hotkey.KeyJ,
	"k":      hotkey.KeyK,
	"l":      hotkey.KeyL,
	"m":      hotkey.KeyM,
	"n":      hotkey.KeyN,
	"o":      hotkey.KeyO,
	"p":      hotkey.KeyP,
	"q":      hotkey.KeyQ,
	"r":      hotkey.KeyR,
	"s":      hotkey.KeyS,
	"t":      hotkey.KeyT,
	"u":      hotkey.KeyU,
	"v":      hotkey.KeyV,
	"w":      hotkey.KeyW,
	"x":      hotkey.KeyX,
	"y":      hotkey.KeyY,
	"z":      hotkey.KeyZ,
	"0":      hotkey.Key0,
	"1":      hotkey.Key1,
	"2":      hotkey.Key2,
	"3":      hotkey.Key3,
	"4":      hotkey.Key4,
	"5":      hotkey.Key5,
	"6":      hotkey.Key6,
	"7":      hotkey.Key7,
	"8":      hotkey.Key8,
	"9":      hotkey.Key9,
	"f1":     hotkey.KeyF1,
	"f2":     hotkey.KeyF2,
	"f3":     hotkey.KeyF3,
	"f4":     hotkey.KeyF4,
	"f5":     hotkey.KeyF5,
	"f6":     hotkey.KeyF6,
	"f7":     hotkey.KeyF7,
	"f8":     hotkey.KeyF8,
	"f9":     hotkey.KeyF9,
	"f10":    hotkey.KeyF10,
	"f11":    hotkey.KeyF11,
	"f12":    hotkey.KeyF12,
}
