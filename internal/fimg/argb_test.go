package fimg

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestARGBLayout(t *testing.T) {
	img := NewARGB(image.Rect(0, 0, 2, 2))
	img.Set(1, 0, color.RGBA{0x10, 0x20, 0x30, 0x40})

	i := img.PixOffset(1, 0)
	if got := img.Pix[i : i+4]; string(got) != "\x30\x20\x10\x40" {
		t.Errorf("Wrong byte order: %x", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{0x10, 0x20, 0x30, 0x40}) {
		t.Errorf("Wrong color read back: %v", got)
	}
}

func TestARGBOutOfBounds(t *testing.T) {
	img := NewARGB(image.Rect(0, 0, 1, 1))
	img.Set(5, 5, color.White)
	if got := img.At(5, 5); got != (color.RGBA{}) {
		t.Errorf("Out of bounds read returned %v", got)
	}
}

func TestARGBDraw(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 3))
	src.SetRGBA(2, 1, color.RGBA{0xFF, 0, 0, 0xFF})

	img := NewARGB(src.Bounds())
	draw.Draw(img, img.Bounds(), src, image.Point{}, draw.Over)
	if got := img.RGBAAt(2, 1); got != (color.RGBA{0xFF, 0, 0, 0xFF}) {
		t.Errorf("Wrong pixel after draw: %v", got)
	}

	img.Clear()
	if got := img.RGBAAt(2, 1); got.A != 0 {
		t.Errorf("Clear left %v", got)
	}
}
