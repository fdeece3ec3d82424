// Package layout определяет направление раскладки и выполняет замену символов.
//
// Таблицы построены по физическому соответствию клавиш ЙЦУКЕН и QWERTY:
// каждой букве одной раскладки отвечает символ на той же клавише другой.
package layout

import "unicode"

// Direction - требуемое направление исправления текста.
type Direction int

const (
	// None - текст не нуждается в исправлении.
	None Direction = iota
	// ToRU - текст набран латиницей, должен быть кириллицей.
	ToRU
	// ToEN - текст набран кириллицей, должен быть латиницей.
	ToEN
)

// String возвращает строковое представление направления.
func (d Direction) String() string {
	switch d {
	case ToRU:
		return "ru"
	case ToEN:
		return "en"
	default:
		return "none"
	}
}

// Наборы букв для подсчёта. Используются только в Detect:
// ё в подсчёте не участвует, как и знаки препинания.
const (
	alphabetRU = "йцукенгшщзхъфывапролджэячсмитьбюЙЦУКЕНГШЩЗХЪФЫВАПРОЛДЖЭЯЧСМИТЬБЮ"
	alphabetEN = "qwertyuiopasdfghjklzxcvbnmQWERTYUIOPASDFGHJKLZXCVBNM"
)

// Ряды таблицы замен: буквы в порядке клавиш плюс знаки препинания,
// присутствующие на обеих раскладках.
const (
	rowRU      = "йцукенгшщзхъфывапролджэячсмитьбюё,.\"№;:?"
	rowEN      = "qwertyuiop[]asdfghjkl;'zxcvbnm,.`?/@#$^&"
	rowENUpper = "QWERTYUIOP{}ASDFGHJKL:\"ZXCVBNM<>~?/@#$^&"
)

var (
	ruSet  = runeSet(alphabetRU)
	enSet  = runeSet(alphabetEN)
	ruToEN = map[rune]rune{}
	enToRU = map[rune]rune{}
)

func init() {
	ru := []rune(rowRU)
	en := []rune(rowEN)
	enUpper := []rune(rowENUpper)
	if len(ru) != len(en) || len(ru) != len(enUpper) {
		panic("layout: ряды таблицы замен разной длины")
	}
	for i, lo := range ru {
		pair(lo, en[i])
		pair(unicode.ToUpper(lo), enUpper[i])
	}
}

func pair(ru, en rune) {
	ruToEN[ru] = en
	enToRU[en] = ru
}

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}

// Detect определяет направление исправления по соотношению букв двух алфавитов.
//
// Если латинских букв больше - текст предназначался для кириллицы, и наоборот.
// При равенстве (в том числе когда букв нет вовсе) текст остаётся как есть:
// лучше ничего не менять, чем угадать неверно.
func Detect(text string) Direction {
	var ruCount, enCount int
	for _, r := range text {
		if _, ok := ruSet[r]; ok {
			ruCount++
		} else if _, ok := enSet[r]; ok {
			enCount++
		}
	}
	switch {
	case enCount > ruCount:
		return ToRU
	case ruCount > enCount:
		return ToEN
	default:
		return None
	}
}

// Translate заменяет каждый символ на его пару в другой раскладке.
// Символы вне таблицы (пробелы, цифры, прочая пунктуация) не меняются.
func Translate(text string, d Direction) string {
	var table map[rune]rune
	switch d {
	case ToRU:
		table = enToRU
	case ToEN:
		table = ruToEN
	default:
		return text
	}
	out := []rune(text)
	for i, r := range out {
		if repl, ok := table[r]; ok {
			out[i] = repl
		}
	}
	return string(out)
}

// Fix определяет направление и применяет соответствующую таблицу замен.
func Fix(text string) string {
	return Translate(text, Detect(text))
}
