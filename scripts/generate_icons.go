//go:build ignore

// Скрипт для генерации шаблонных иконок строки меню.
// Запуск: go run scripts/generate_icons.go
package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
)

const (
	size   = 64
	radius = 26.0
	stroke = 3.0
)

type style int

const (
	styleIdle style = iota
	styleActive
	styleDisabled
)

func main() {
	dir := "embedded"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Не удалось создать директорию %s: %v", dir, err)
	}

	icons := []struct {
		name  string
		style style
	}{
		{"icon_idle.png", styleIdle},
		{"icon_active.png", styleActive},
		{"icon_disabled.png", styleDisabled},
	}

	for _, icon := range icons {
		path := filepath.Join(dir, icon.name)
		if err := generateIcon(path, icon.style); err != nil {
			log.Fatalf("Ошибка генерации %s: %v", icon.name, err)
		}
		log.Printf("Создан: %s", path)
	}
}

// inside reports whether pixel (x, y) belongs to the globe drawn in style s.
func inside(x, y int, s style) bool {
	c := float64(size)/2 - 0.5
	dx, dy := float64(x)-c, float64(y)-c
	d := math.Hypot(dx, dy)

	// Обод
	if math.Abs(d-radius) <= stroke/2 {
		return true
	}
	if s == styleActive {
		return d <= radius
	}

	if d < radius {
		// Экватор и центральный меридиан
		if math.Abs(dy) <= stroke/2 || math.Abs(dx) <= stroke/2 {
			return true
		}
		// Боковые меридианы - эллипс
		a := radius * 0.45
		e := math.Hypot(dx/a, dy/radius)
		if math.Abs(e-1)*a <= stroke/2 {
			return true
		}
	}

	if s == styleDisabled && math.Abs(dx+dy)/math.Sqrt2 <= stroke*0.75 && d <= radius+2 {
		return true
	}
	return false
}

func generateIcon(path string, s style) error {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	ink := color.NRGBA{A: 255}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if inside(x, y, s) {
				img.Set(x, y, ink)
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
