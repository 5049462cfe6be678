package main

/*
#cgo pkg-config: gtk4
#include <gtk/gtk.h>

static GdkMonitor *imposter_window_monitor(GtkWindow *win) {
	GdkSurface *surface = gtk_native_get_surface(GTK_NATIVE(win));
	if (surface == NULL)
		return NULL;
	return gdk_display_get_monitor_at_surface(gtk_widget_get_display(GTK_WIDGET(win)), surface);
}

static void imposter_set_input_region(GtkWindow *win, cairo_rectangle_int_t *rects, int n) {
	GdkSurface *surface = gtk_native_get_surface(GTK_NATIVE(win));
	if (surface == NULL)
		return;
	cairo_region_t *region = cairo_region_create_rectangles(rects, n);
	gdk_surface_set_input_region(surface, region);
	cairo_region_destroy(region);
}
*/
import "C"

import (
	"unsafe"

	"deedles.dev/imposter/layout"
	"deedles.dev/imposter/notes"
	"deedles.dev/ximage/geom"
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/sirupsen/logrus"
)

// Surface is the layer-shell window that every note is placed on.
type Surface struct {
	window  *gtk.ApplicationWindow
	fixed   *gtk.Fixed
	display *gdk.Display

	output    Output
	hasOutput bool
}

func newSurface(app *gtk.Application, output string) *Surface {
	window := gtk.NewApplicationWindow(app)
	window.SetDecorated(false)
	window.SetTitle(Name)

	s := Surface{
		window:  window,
		fixed:   gtk.NewFixed(),
		display: gdk.DisplayGetDefault(),
	}

	win := s.win()
	layerInit(win)
	s.output, s.hasOutput = selectOutput(s.display, output)
	if s.hasOutput {
		layerSetMonitor(win, s.output.Monitor)
	}
	layerSetNamespace(win, Name)

	win.SetChild(s.fixed)
	return &s
}

func (s *Surface) win() *gtk.Window {
	return &s.window.Window
}

func windowMonitor(win *gtk.Window) *gdk.Monitor {
	p := C.imposter_window_monitor(cWindow(win))
	if p == nil {
		return nil
	}
	return &gdk.Monitor{Object: coreglib.Take(unsafe.Pointer(p))}
}

func (s *Surface) Present() {
	s.win().Present()
}

func (s *Surface) Geometry() geom.Rect[int] {
	if s.hasOutput {
		return s.output.Geometry()
	}

	out, ok := outputAt(s.display, s.win())
	if !ok {
		logrus.Warn("no monitors")
		return geom.Rect[int]{}
	}
	return out.Geometry()
}

func (s *Surface) SetVisible(visible bool) {
	s.win().SetVisible(visible)
}

func (s *Surface) SetDefaultSize(w, h int) {
	s.win().SetDefaultSize(w, h)
}

func (s *Surface) Layer() notes.Layer {
	return layerLayer(s.win())
}

func (s *Surface) SetLayer(layer notes.Layer) {
	layerSetLayer(s.win(), layer)
}

func (s *Surface) SetAnchor(edges layout.Edges) {
	layerSetAnchor(s.win(), edges)
}

func (s *Surface) SetExclusiveZone(zone int) {
	layerSetExclusiveZone(s.win(), zone)
}

func (s *Surface) SetKeyboardMode(mode notes.KeyboardMode) {
	layerSetKeyboardMode(s.win(), mode)
}

func (s *Surface) ClearFocus() {
	s.win().SetFocus(nil)
}

func (s *Surface) SetInputRegion(rects []geom.Rect[int]) {
	crects := make([]C.cairo_rectangle_int_t, 0, len(rects))
	for _, r := range rects {
		crects = append(crects, C.cairo_rectangle_int_t{
			x:      C.int(r.Min.X),
			y:      C.int(r.Min.Y),
			width:  C.int(r.Dx()),
			height: C.int(r.Dy()),
		})
	}

	var p *C.cairo_rectangle_int_t
	if len(crects) > 0 {
		p = &crects[0]
	}
	C.imposter_set_input_region(cWindow(s.win()), p, C.int(len(crects)))
}

func (s *Surface) NewView(n *notes.Note) notes.View {
	return newView(s, n)
}

func (s *Surface) Destroy() {
	s.win().Destroy()
}
