//go:build linux || darwin

package clipboard

import "github.com/atotto/clipboard"

// unixBackend ходит в буфер через github.com/atotto/clipboard (xclip или
// xsel под X11, pbcopy/pbpaste под macOS). Эти утилиты не различают
// «буфер занят» и «буфера нет», поэтому занятость здесь не возникает:
// любая ошибка записи окончательна.
type unixBackend struct{}

func newBackend() backend { return unixBackend{} }

func (unixBackend) readText() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		// Пустое или никем не захваченное выделение внешняя утилита
		// отражает ненулевым кодом выхода; для нас это «текста нет».
		return "", nil
	}
	return text, nil
}

func (unixBackend) writeText(text string) error {
	return clipboard.WriteAll(text)
}

func (unixBackend) clear() error {
	return clipboard.WriteAll("")
}
