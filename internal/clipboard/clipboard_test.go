package clipboard

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend имитирует буфер, занятый другим процессом первые busyLeft
// обращений. failWith, если задана, возвращается после освобождения.
type fakeBackend struct {
	busyLeft int
	failWith error

	text   string
	reads  int
	writes int
	clears int
}

func (f *fakeBackend) acquire() error {
	if f.busyLeft > 0 {
		f.busyLeft--
		return errBusy
	}
	return f.failWith
}

func (f *fakeBackend) readText() (string, error) {
	f.reads++
	if err := f.acquire(); err != nil {
		return "", err
	}
	return f.text, nil
}

func (f *fakeBackend) writeText(text string) error {
	f.writes++
	if err := f.acquire(); err != nil {
		return err
	}
	f.text = text
	return nil
}

func (f *fakeBackend) clear() error {
	f.clears++
	if err := f.acquire(); err != nil {
		return err
	}
	f.text = ""
	return nil
}

func newTestArbiter(f *fakeBackend) *Arbiter {
	return &Arbiter{be: f, attempts: 5, delay: time.Millisecond}
}

func TestReadTextFirstAttempt(t *testing.T) {
	f := &fakeBackend{text: "привет"}
	a := newTestArbiter(f)

	text, err := a.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "привет", text)
	assert.Equal(t, 1, f.reads)
}

func TestReadTextRetriesWhileBusy(t *testing.T) {
	f := &fakeBackend{busyLeft: 3, text: "ghbdtn"}
	a := newTestArbiter(f)

	text, err := a.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "ghbdtn", text)
	assert.Equal(t, 4, f.reads, "три занятых попытки и одна успешная")
}

func TestReadTextExhaustionReturnsEmpty(t *testing.T) {
	f := &fakeBackend{busyLeft: 100, text: "недостижимо"}
	a := newTestArbiter(f)

	text, err := a.ReadText()
	require.NoError(t, err, "исчерпание попыток чтения не считается ошибкой")
	assert.Empty(t, text)
	assert.Equal(t, 5, f.reads)
}

func TestReadTextHardErrorStopsRetries(t *testing.T) {
	hard := errors.New("формат не читается")
	f := &fakeBackend{failWith: hard}
	a := newTestArbiter(f)

	_, err := a.ReadText()
	require.ErrorIs(t, err, hard)
	assert.Equal(t, 1, f.reads, "невременная ошибка не повторяется")
}

func TestWriteTextRetriesWhileBusy(t *testing.T) {
	f := &fakeBackend{busyLeft: 2}
	a := newTestArbiter(f)

	require.NoError(t, a.WriteText("Привет"))
	assert.Equal(t, "Привет", f.text)
	assert.Equal(t, 3, f.writes)
}

func TestWriteTextExhaustionReturnsUnavailable(t *testing.T) {
	f := &fakeBackend{busyLeft: 100}
	a := newTestArbiter(f)

	err := a.WriteText("потеряно")
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 5, f.writes)
}

func TestWriteTextHardErrorStopsRetries(t *testing.T) {
	hard := errors.New("нет доступа к дисплею")
	f := &fakeBackend{failWith: hard}
	a := newTestArbiter(f)

	err := a.WriteText("x")
	require.ErrorIs(t, err, hard)
	assert.NotErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 1, f.writes)
}

func TestClearRetriesAndReportsExhaustion(t *testing.T) {
	f := &fakeBackend{busyLeft: 1, text: "старое"}
	a := newTestArbiter(f)

	require.NoError(t, a.Clear())
	assert.Empty(t, f.text)
	assert.Equal(t, 2, f.clears)

	f = &fakeBackend{busyLeft: 100}
	a = newTestArbiter(f)
	require.ErrorIs(t, a.Clear(), ErrUnavailable)
}
