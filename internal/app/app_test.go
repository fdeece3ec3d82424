package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Pepper-96/keyboard-layout-changer/internal/config"
	"github.com/Pepper-96/keyboard-layout-changer/internal/i18n"
)

func TestInitialComboWithoutConfig(t *testing.T) {
	a := &App{}

	combo := a.initialCombo()

	assert.Equal(t, config.DefaultHotkey, combo.String())
}

func TestDetectLanguage(t *testing.T) {
	prev := i18n.GetLanguage()
	t.Cleanup(func() { i18n.SetLanguage(prev) })

	tests := []struct {
		name string
		env  map[string]string
		want i18n.Language
	}{
		{"русская локаль", map[string]string{"LANG": "ru_RU.UTF-8"}, i18n.RU},
		{"английская локаль", map[string]string{"LANG": "en_US.UTF-8"}, i18n.EN},
		{"пустое окружение", map[string]string{}, i18n.RU},
		{"LC_ALL важнее LANG", map[string]string{"LC_ALL": "ru_RU.UTF-8", "LANG": "en_US.UTF-8"}, i18n.RU},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LC_ALL", "")
			t.Setenv("LC_MESSAGES", "")
			t.Setenv("LANG", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			detectLanguage()

			assert.Equal(t, tt.want, i18n.GetLanguage())
		})
	}
}
