// Package single гарантирует единственный работающий экземпляр приложения.
//
// Два экземпляра разрегистрировали бы горячие клавиши друг у друга и
// одновременно полезли бы в буфер обмена, поэтому второй запуск
// отклоняется на старте.
package single

import "errors"

// ErrAlreadyRunning - другой экземпляр приложения уже работает.
var ErrAlreadyRunning = errors.New("приложение уже запущено")

// Guard удерживает общесистемный признак работающего экземпляра.
type Guard struct {
	release func()
}

// Acquire занимает признак экземпляра. Если он занят другим процессом,
// возвращается ErrAlreadyRunning.
func Acquire() (*Guard, error) {
	return acquire()
}

// Release отпускает признак. Повторный вызов безопасен.
func (g *Guard) Release() {
	if g.release != nil {
		g.release()
		g.release = nil
	}
}
