// Package fimg provides image types in pixel formats that the
// standard library doesn't.
package fimg

import (
	"image"
	"image/color"
)

// ARGB is an image in cairo's ARGB32 format: premultiplied 32-bit
// pixels in native byte order. Only little-endian hosts are supported,
// so each pixel is laid out in memory as B, G, R, A.
type ARGB struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

func NewARGB(r image.Rectangle) *ARGB {
	return &ARGB{
		Pix:    make([]byte, 4*r.Dx()*r.Dy()),
		Stride: 4 * r.Dx(),
		Rect:   r,
	}
}

func (p *ARGB) PixOffset(x, y int) int {
	return ((y - p.Rect.Min.Y) * p.Stride) + (x-p.Rect.Min.X)*4
}

func (p *ARGB) Bounds() image.Rectangle {
	return p.Rect
}

func (p *ARGB) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *ARGB) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

func (p *ARGB) RGBAAt(x, y int) color.RGBA {
	if !image.Pt(x, y).In(p.Rect) {
		return color.RGBA{}
	}

	i := p.PixOffset(x, y)
	return color.RGBA{p.Pix[i+2], p.Pix[i+1], p.Pix[i], p.Pix[i+3]}
}

func (p *ARGB) Set(x, y int, c color.Color) {
	p.SetRGBA(x, y, color.RGBAModel.Convert(c).(color.RGBA))
}

func (p *ARGB) SetRGBA(x, y int, c color.RGBA) {
	if !image.Pt(x, y).In(p.Rect) {
		return
	}

	i := p.PixOffset(x, y)
	p.Pix[i] = c.B
	p.Pix[i+1] = c.G
	p.Pix[i+2] = c.R
	p.Pix[i+3] = c.A
}

// Clear makes every pixel transparent.
func (p *ARGB) Clear() {
	clear(p.Pix)
}
