package hotkeys

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Modifier представляет модификатор сочетания. Парные варианты (lctrl,
// rshift и т.д.) различают левую и правую клавишу: при отпускании это
// важно, при регистрации они сворачиваются к общему модификатору.
type Modifier string

const (
	ModCtrl   Modifier = "ctrl"
	ModLCtrl  Modifier = "lctrl"
	ModRCtrl  Modifier = "rctrl"
	ModShift  Modifier = "shift"
	ModLShift Modifier = "lshift"
	ModRShift Modifier = "rshift"
	ModAlt    Modifier = "alt"
	ModLAlt   Modifier = "lalt"
	ModRAlt   Modifier = "ralt"
	ModSuper  Modifier = "super" // Win/Cmd
)

// Key представляет основную клавишу сочетания: именованную специальную
// клавишу или одиночный литеральный символ ("q", "/", "ё").
type Key string

const (
	KeySpace     Key = "space"
	KeyBackspace Key = "backspace"
	KeyEnter     Key = "enter"
	KeyEnd       Key = "end"
	KeyTab       Key = "tab"
	KeyEsc       Key = "esc"
)

// Base сворачивает парный модификатор к общему.
func (m Modifier) Base() Modifier {
	switch m {
	case ModLCtrl, ModRCtrl:
		return ModCtrl
	case ModLShift, ModRShift:
		return ModShift
	case ModLAlt, ModRAlt:
		return ModAlt
	}
	return m
}

// Combo - разобранное сочетание клавиш. Сырые строки не ходят по
// программе: сочетание строится через Parse и печатается через String.
type Combo struct {
	Modifiers []Modifier
	Key       Key
}

// Ошибки разбора сочетания.
var (
	ErrEmptyCombo = errors.New("пустое сочетание клавиш")
	ErrNoKey      = errors.New("в сочетании нет основной клавиши")
)

var namedModifiers = map[string]Modifier{
	"ctrl":   ModCtrl,
	"lctrl":  ModLCtrl,
	"rctrl":  ModRCtrl,
	"shift":  ModShift,
	"lshift": ModLShift,
	"rshift": ModRShift,
	"alt":    ModAlt,
	"lalt":   ModLAlt,
	"ralt":   ModRAlt,
	"super":  ModSuper,
	"win":    ModSuper,
}

var namedKeys = map[string]Key{
	"space":     KeySpace,
	"backspace": KeyBackspace,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"end":       KeyEnd,
	"tab":       KeyTab,
	"esc":       KeyEsc,
	"f1":        "f1",
	"f2":        "f2",
	"f3":        "f3",
	"f4":        "f4",
	"f5":        "f5",
	"f6":        "f6",
	"f7":        "f7",
	"f8":        "f8",
	"f9":        "f9",
	"f10":       "f10",
	"f11":       "f11",
	"f12":       "f12",
}

// Parse разбирает строку вида "ctrl+shift+q". Токены разделяются «+»,
// регистр и пробелы вокруг токенов не значимы. Токен - это модификатор,
// именованная клавиша или одиночный символ; основная клавиша в
// сочетании ровно одна.
func Parse(s string) (Combo, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Combo{}, ErrEmptyCombo
	}

	var c Combo
	for _, raw := range strings.Split(s, "+") {
		tok := strings.TrimSpace(raw)
		if tok == "" {
			return Combo{}, fmt.Errorf("пустой токен в сочетании %q", s)
		}
		if m, ok := namedModifiers[tok]; ok {
			c.Modifiers = append(c.Modifiers, m)
			continue
		}
		if c.Key != "" {
			return Combo{}, fmt.Errorf("в сочетании %q больше одной основной клавиши", s)
		}
		if k, ok := namedKeys[tok]; ok {
			c.Key = k
			continue
		}
		if utf8.RuneCountInString(tok) != 1 {
			return Combo{}, fmt.Errorf("неизвестная клавиша %q", tok)
		}
		c.Key = Key(tok)
	}
	if c.Key == "" {
		return Combo{}, ErrNoKey
	}
	return c, nil
}

// String возвращает каноническую строковую запись сочетания.
func (c Combo) String() string {
	result := ""
	for _, m := range c.Modifiers {
		if result != "" {
			result += "+"
		}
		result += string(m)
	}
	if result != "" {
		result += "+"
	}
	result += string(c.Key)
	return result
}
