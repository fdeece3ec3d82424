// Package clipboard предоставляет доступ к системному буферу обмена.
//
// Буфер - общесистемный ресурс: в момент обращения он может быть захвачен
// другим процессом. Такие отказы считаются временными и гасятся повтором
// с фиксированной паузой; все остальные ошибки отдаются сразу.
package clipboard

import (
	"errors"
	"time"

	"github.com/Pepper-96/keyboard-layout-changer/internal/retry"
)

// Пять попыток с паузой 50 мс покрывают типичную краткую блокировку
// буфера другим приложением.
const (
	maxAttempts = 5
	retryDelay  = 50 * time.Millisecond
)

// ErrUnavailable - буфер обмена остался занят другим процессом после
// всех попыток записи.
var ErrUnavailable = errors.New("буфер обмена недоступен")

// errBusy помечает временную занятость буфера; повторяется только она.
var errBusy = errors.New("буфер обмена занят другим процессом")

// backend - платформенный доступ к буферу. Каждый вызов захватывает
// буфер, выполняет операцию и освобождает его до возврата: владение
// никогда не удерживается между операциями.
type backend interface {
	readText() (string, error)
	writeText(text string) error
	clear() error
}

// Arbiter выполняет операции с буфером с ограниченным числом повторов.
type Arbiter struct {
	be       backend
	attempts int
	delay    time.Duration
}

// New создаёт Arbiter поверх платформенного бэкенда.
func New() *Arbiter {
	return &Arbiter{be: newBackend(), attempts: maxAttempts, delay: retryDelay}
}

func isBusy(err error) bool { return errors.Is(err, errBusy) }

// ReadText читает текст из буфера. Пустая строка означает «текста нет»:
// так же завершается и чтение, не дождавшееся освобождения буфера, -
// для вызывающего это равносильно отсутствию выделения.
func (a *Arbiter) ReadText() (string, error) {
	var text string
	err := retry.Do(a.attempts, a.delay, isBusy, func() error {
		var err error
		text, err = a.be.readText()
		return err
	})
	if isBusy(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return text, nil
}

// WriteText записывает текст в буфер. Исчерпание попыток - жёсткая
// ошибка ErrUnavailable: потерянная запись, в отличие от чтения, не
// может деградировать незаметно.
func (a *Arbiter) WriteText(text string) error {
	err := retry.Do(a.attempts, a.delay, isBusy, func() error {
		return a.be.writeText(text)
	})
	if isBusy(err) {
		return ErrUnavailable
	}
	return err
}

// Clear очищает буфер, чтобы последующее копирование было отличимо от
// устаревшего содержимого.
func (a *Arbiter) Clear() error {
	err := retry.Do(a.attempts, a.delay, isBusy, func() error {
		return a.be.clear()
	})
	if isBusy(err) {
		return ErrUnavailable
	}
	return err
}
