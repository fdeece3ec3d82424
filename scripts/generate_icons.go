//go:build ignore

// Скрипт для генерации иконки трея.
// Запуск: go run scripts/generate_icons.go
package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

func main() {
	dir := "embedded"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Не удалось создать директорию %s: %v", dir, err)
	}

	path := filepath.Join(dir, "icon.png")
	if err := generateIcon(path); err != nil {
		log.Fatalf("Ошибка генерации %s: %v", path, err)
	}
	log.Printf("Создан: %s", path)
}

func generateIcon(path string) error {
	const size = 64
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	// Синий корпус, белые клавиши
	body := color.RGBA{70, 130, 220, 255}
	key := color.RGBA{255, 255, 255, 255}

	// Корпус клавиатуры
	for y := 18; y <= 45; y++ {
		for x := 6; x <= 57; x++ {
			img.Set(x, y, body)
		}
	}

	// Два ряда клавиш
	for row := 0; row < 2; row++ {
		yTop := 22 + row*9
		for col := 0; col < 5; col++ {
			xLeft := 10 + col*9
			for y := yTop; y < yTop+6; y++ {
				for x := xLeft; x < xLeft+6; x++ {
					img.Set(x, y, key)
				}
			}
		}
	}

	// Пробел
	for y := 40; y <= 43; y++ {
		for x := 16; x <= 47; x++ {
			img.Set(x, y, key)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
