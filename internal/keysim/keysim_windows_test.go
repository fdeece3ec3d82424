//go:build windows

package keysim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Pepper-96/keyboard-layout-changer/internal/hotkeys"
)

func TestKeyVK(t *testing.T) {
	tests := []struct {
		key  hotkeys.Key
		want uint16
	}{
		{hotkeys.KeySpace, vkSpace},
		{hotkeys.KeyBackspace, vkBack},
		{hotkeys.KeyEnter, vkReturn},
		{hotkeys.KeyEnd, vkEnd},
		{"q", 'Q'},
		{"z", 'Z'},
		{"7", '7'},
		{"f1", vkF1},
		{"f12", vkF1 + 11},
	}
	for _, tt := range tests {
		vk, ok := keyVK(tt.key)
		assert.True(t, ok, "клавиша %q должна иметь VK-код", tt.key)
		assert.Equal(t, tt.want, vk)
	}
}

func TestKeyVKUnknown(t *testing.T) {
	for _, k := range []hotkeys.Key{"ё", "f13", "fx", ""} {
		_, ok := keyVK(k)
		assert.False(t, ok, "для %q VK-код не определён", k)
	}
}
