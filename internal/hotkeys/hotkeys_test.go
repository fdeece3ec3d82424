package hotkeys

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.design/x/hotkey"
)

type fakeHandle struct {
	mu           sync.Mutex
	registered   bool
	unregistered bool
	registerErr  error
	keydown      chan hotkey.Event
	keyup        chan hotkey.Event
}

func newFakeHandle() *fakeHandle {
	return &fakeHandle{
		keydown: make(chan hotkey.Event, 8),
		keyup:   make(chan hotkey.Event, 8),
	}
}

func (f *fakeHandle) Register() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.registerErr != nil {
		return f.registerErr
	}
	f.registered = true
	return nil
}

func (f *fakeHandle) Unregister() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registered = false
	f.unregistered = true
	return nil
}

func (f *fakeHandle) Keydown() <-chan hotkey.Event { return f.keydown }
func (f *fakeHandle) Keyup() <-chan hotkey.Event   { return f.keyup }

func (f *fakeHandle) isRegistered() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.registered
}

func (f *fakeHandle) wasUnregistered() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.unregistered
}

// withFakeHandles подменяет создание регистраций и возвращает список
// созданных подделок в порядке создания.
func withFakeHandles(t *testing.T) *[]*fakeHandle {
	t.Helper()
	orig := newHandle
	created := &[]*fakeHandle{}
	newHandle = func(mods []hotkey.Modifier, key hotkey.Key) handle {
		f := newFakeHandle()
		*created = append(*created, f)
		return f
	}
	t.Cleanup(func() { newHandle = orig })
	return created
}

func mustParse(t *testing.T, s string) Combo {
	t.Helper()
	c, err := Parse(s)
	require.NoError(t, err)
	return c
}

func TestRegisterTwiceKeepsOneActive(t *testing.T) {
	created := withFakeHandles(t)
	m := New(nil)

	require.NoError(t, m.Register(mustParse(t, "ctrl+shift+q")))
	require.NoError(t, m.Register(mustParse(t, "alt+space")))

	require.Len(t, *created, 2)
	assert.True(t, (*created)[0].wasUnregistered(), "первая регистрация должна быть снята")
	assert.True(t, (*created)[1].isRegistered())
	assert.Equal(t, "alt+space", m.Current().String())

	require.NoError(t, m.Unregister())
	assert.False(t, (*created)[1].isRegistered())
}

func TestRegisterUnsupportedKeyKeepsPrevious(t *testing.T) {
	created := withFakeHandles(t)
	m := New(nil)

	require.NoError(t, m.Register(mustParse(t, "ctrl+shift+q")))

	err := m.Register(mustParse(t, "ctrl+backspace"))
	require.Error(t, err)

	require.Len(t, *created, 1, "невалидное сочетание не доходит до регистрации")
	assert.True(t, (*created)[0].isRegistered(), "старая регистрация остаётся активной")
	assert.Equal(t, "ctrl+shift+q", m.Current().String())

	require.NoError(t, m.Unregister())
}

func TestKeydownFiresOnPressWithDebounce(t *testing.T) {
	created := withFakeHandles(t)

	pressed := make(chan Combo, 4)
	m := New(func(c Combo) { pressed <- c })

	require.NoError(t, m.Register(mustParse(t, "ctrl+shift+q")))
	f := (*created)[0]

	f.keydown <- hotkey.Event{}
	select {
	case c := <-pressed:
		assert.Equal(t, "ctrl+shift+q", c.String())
	case <-time.After(time.Second):
		t.Fatal("onPress не вызван")
	}

	// Повторный keydown в окне debounce глотается
	f.keydown <- hotkey.Event{}
	select {
	case <-pressed:
		t.Fatal("debounce не отфильтровал повтор")
	case <-time.After(150 * time.Millisecond):
	}

	require.NoError(t, m.Unregister())
}

func TestUnregisterWithoutActiveIsNoop(t *testing.T) {
	m := New(nil)
	require.NoError(t, m.Unregister())
	assert.Empty(t, m.Current().String())
}
