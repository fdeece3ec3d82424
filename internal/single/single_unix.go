//go:build linux || darwin

package single

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// Имя lock-файла во временном каталоге.
const lockName = "keyboard-layout-changer.lock"

func acquire() (*Guard, error) {
	path := filepath.Join(os.TempDir(), lockName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("открытие lock-файла: %w", err)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		f.Close()
		if err == unix.EWOULDBLOCK {
			return nil, ErrAlreadyRunning
		}
		return nil, fmt.Errorf("блокировка lock-файла: %w", err)
	}

	// Номер процесса в файле помогает найти работающий экземпляр
	f.Truncate(0)
	fmt.Fprintf(f, "%d\n", os.Getpid())

	return &Guard{release: func() {
		unix.Flock(int(f.Fd()), unix.LOCK_UN)
		f.Close()
	}}, nil
}
