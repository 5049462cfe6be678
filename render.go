package main

/*
#cgo pkg-config: cairo
#include <cairo.h>

static void imposter_paint_argb(cairo_t *cr, unsigned char *pix, int w, int h, int stride) {
	cairo_surface_t *surface = cairo_image_surface_create_for_data(pix, CAIRO_FORMAT_ARGB32, w, h, stride);
	cairo_set_source_surface(cr, surface, 0, 0);
	cairo_paint(cr);
	cairo_surface_destroy(surface);
}
*/
import "C"

import (
	"unsafe"

	"deedles.dev/imposter/internal/fimg"
	"github.com/diamondburned/gotk4/pkg/cairo"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// paintARGB paints img onto cr at the origin. cr must not hold on to
// img after it returns.
func paintARGB(cr *cairo.Context, img *fimg.ARGB) {
	b := img.Bounds()
	if b.Empty() {
		return
	}

	C.imposter_paint_argb(
		(*C.cairo_t)(unsafe.Pointer(cr.Native())),
		(*C.uchar)(unsafe.Pointer(&img.Pix[0])),
		C.int(b.Dx()),
		C.int(b.Dy()),
		C.int(img.Stride),
	)
}

func (view *View) draw(_ *gtk.DrawingArea, cr *cairo.Context, w, h int) {
	ink := view.note.Ink()
	b := ink.Bounds()
	if b.Empty() {
		return
	}

	if (view.buf == nil) || (view.buf.Bounds() != b) {
		view.buf = fimg.NewARGB(b)
	} else {
		view.buf.Clear()
	}
	ink.Blit(view.buf)
	paintARGB(cr, view.buf)
}
