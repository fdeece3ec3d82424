package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Direction
	}{
		{"пустая строка", "", None},
		{"только кириллица", "привет мир", ToEN},
		{"только латиница", "hello world", ToRU},
		{"кириллица с цифрами", "тест 123", ToEN},
		{"латиница с пунктуацией", "ghbdtn!", ToRU},
		{"равное количество", "абba", None},
		{"только цифры", "12345", None},
		{"только пунктуация", ",.!?-", None},
		{"кириллица преобладает", "приветqq", ToEN},
		{"латиница преобладает", "ппhello", ToRU},
		{"ё не участвует в подсчёте", "ё", None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.text))
		})
	}
}

func TestFix(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"латиница в кириллицу", "ghbdtn", "привет"},
		{"регистр сохраняется", "Ghbdtn", "Привет"},
		{"кириллица в латиницу", "руддщ", "hello"},
		{"смешанный регистр", "GhBdTn", "ПрИвЕт"},
		{"пробелы не меняются", "ghbdtn vbh", "привет мир"},
		{"цифры не меняются", "ghbdtn123", "привет123"},
		{"равенство оставляет как есть", "абba", "абba"},
		{"пустая строка", "", ""},
		{"скобки на месте букв", "[tkm", "хель"},
		{"ё через обратный апостроф", "`lu", "ёдг"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fix(tt.text))
		})
	}
}

func TestTranslateExplicitDirection(t *testing.T) {
	assert.Equal(t, "привет", Translate("ghbdtn", ToRU))
	assert.Equal(t, "ghbdtn", Translate("привет", ToEN))
	assert.Equal(t, "как есть", Translate("как есть", None))

	// Знаки, существующие на обеих раскладках.
	assert.Equal(t, "?", Translate(",", ToEN))
	assert.Equal(t, ",", Translate("?", ToRU))
	assert.Equal(t, "б", Translate(",", ToRU))
	assert.Equal(t, "#", Translate("№", ToEN))
}

// Таблицы обязаны быть точными обратными друг другу: каждая пара одной
// присутствует в другой в зеркальном виде, и наоборот.
func TestTablesAreExactInverses(t *testing.T) {
	require.Equal(t, len(ruToEN), len(enToRU))
	for ru, en := range ruToEN {
		back, ok := enToRU[en]
		require.True(t, ok, "нет обратной пары для %q -> %q", ru, en)
		assert.Equal(t, ru, back)
	}
	for en, ru := range enToRU {
		back, ok := ruToEN[ru]
		require.True(t, ok, "нет прямой пары для %q -> %q", en, ru)
		assert.Equal(t, en, back)
	}
}

// Двойное применение пары таблиц - тождество для любого текста из
// покрываемого набора символов.
func TestRoundTrip(t *testing.T) {
	texts := []string{
		"съешь же ещё этих мягких французских булок",
		"ПРИВЕТ, МИР.",
		"яЁж:?\"№;",
		rowRU,
	}
	for _, text := range texts {
		assert.Equal(t, text, Translate(Translate(text, ToEN), ToRU))
	}

	latin := []string{"the quick brown fox", "HELLO{}[];'<>~`", rowEN}
	for _, text := range latin {
		assert.Equal(t, text, Translate(Translate(text, ToRU), ToEN))
	}
}

func TestAlphabetsDisjoint(t *testing.T) {
	for r := range ruSet {
		_, ok := enSet[r]
		assert.False(t, ok, "символ %q в обоих алфавитах", r)
	}
}

// Регистр должен сохраняться посимвольно, а не по слову.
func TestCasePreservedPerRune(t *testing.T) {
	in := []rune("GhBdTn")
	out := []rune(Fix(string(in)))
	require.Equal(t, len(in), len(out))
	for i := range in {
		wantUpper := in[i] >= 'A' && in[i] <= 'Z'
		gotUpper := out[i] >= 'А' && out[i] <= 'Я'
		assert.Equal(t, wantUpper, gotUpper, "позиция %d: %q -> %q", i, in[i], out[i])
	}
}
