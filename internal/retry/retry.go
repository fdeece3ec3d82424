// Package retry реализует повтор операции с фиксированной задержкой.
package retry

import "time"

// Do выполняет fn до attempts раз с паузой delay между попытками.
// Повторяется только ошибка, которую retryable признаёт временной; любая
// другая возвращается немедленно. После исчерпания попыток возвращается
// последняя ошибка.
func Do(attempts int, delay time.Duration, retryable func(error) bool, fn func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			time.Sleep(delay)
		}
		if err = fn(); err == nil {
			return nil
		}
		if !retryable(err) {
			return err
		}
	}
	return err
}
