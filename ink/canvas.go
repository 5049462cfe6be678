// Package ink provides the raster that freehand strokes are painted
// onto.
package ink

import (
	"image"
	"image/color"

	"deedles.dev/ximage/geom"
	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// PenOffset is added to both ends of every stroke so that the line is
// centered under the cursor.
var PenOffset = geom.Pt[float64](2, 2)

// DefaultWidth is the width of strokes painted by notes.
const DefaultWidth = 3

// Canvas is a resizable ARGB raster. The zero value has no buffer and
// is ready to use.
type Canvas struct {
	img *image.RGBA
	dc  *gg.Context
}

// EnsureSize guarantees a buffer of exactly w by h pixels. Existing
// pixels are copied into the top-left corner of the new buffer without
// blending and without scaling, so growing reveals transparency and
// shrinking crops.
func (c *Canvas) EnsureSize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	r := image.Rect(0, 0, w, h)
	if (c.img != nil) && (c.img.Bounds() == r) {
		return
	}

	img := image.NewRGBA(r)
	if c.img != nil {
		draw.Copy(img, image.Point{}, c.img, c.img.Bounds(), draw.Src, nil)
	}
	c.img = img
	c.dc = nil
}

// Bounds returns the bounds of the current buffer, which are empty if
// there isn't one.
func (c *Canvas) Bounds() image.Rectangle {
	if c.img == nil {
		return image.Rectangle{}
	}
	return c.img.Bounds()
}

// Image returns the current buffer. It may be nil.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear makes every pixel transparent.
func (c *Canvas) Clear() {
	if c.img == nil {
		return
	}
	draw.Draw(c.img, c.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (c *Canvas) context() *gg.Context {
	if c.dc == nil {
		c.dc = gg.NewContextForRGBA(c.img)
		c.dc.SetLineCap(gg.LineCapRound)
	}
	return c.dc
}

// StrokeSegment paints a straight, round-capped line from prev to cur.
// A segment of zero length paints a dot as wide as the line.
func (c *Canvas) StrokeSegment(prev, cur geom.Point[float64], col color.Color, width float64) {
	if (c.img == nil) || c.img.Bounds().Empty() {
		return
	}

	prev, cur = prev.Add(PenOffset), cur.Add(PenOffset)

	dc := c.context()
	dc.SetColor(col)
	if prev == cur {
		dc.DrawCircle(cur.X, cur.Y, width/2)
		dc.Fill()
		return
	}

	dc.SetLineWidth(width)
	dc.DrawLine(prev.X, prev.Y, cur.X, cur.Y)
	dc.Stroke()
}

// Blit composites the buffer over dst with its origin at dst's
// origin.
func (c *Canvas) Blit(dst draw.Image) {
	if c.img == nil {
		return
	}
	b := dst.Bounds()
	draw.Draw(dst, c.img.Bounds().Add(b.Min), c.img, image.Point{}, draw.Over)
}

// Release drops the buffer.
func (c *Canvas) Release() {
	c.img = nil
	c.dc = nil
}
