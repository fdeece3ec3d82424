//go:build windows

package single

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// Имя общесистемного мьютекса единственного экземпляра.
const mutexName = "keyboard_layout_changer_single_instance_mutex"

func acquire() (*Guard, error) {
	name, err := windows.UTF16PtrFromString(mutexName)
	if err != nil {
		return nil, err
	}

	// При существующем мьютексе CreateMutex возвращает валидный handle
	// и ERROR_ALREADY_EXISTS
	h, err := windows.CreateMutex(nil, false, name)
	if err == windows.ERROR_ALREADY_EXISTS {
		if h != 0 {
			windows.CloseHandle(h)
		}
		return nil, ErrAlreadyRunning
	}
	if err != nil {
		return nil, fmt.Errorf("создание мьютекса: %w", err)
	}

	return &Guard{release: func() { windows.CloseHandle(h) }}, nil
}
