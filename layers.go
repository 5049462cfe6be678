package main

/*
#cgo pkg-config: gtk4 gtk4-layer-shell-0
#include <gtk4-layer-shell.h>
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"deedles.dev/imposter/layout"
	"deedles.dev/imposter/notes"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

var layerEdges = []struct {
	edge  layout.Edges
	shell C.GtkLayerShellEdge
}{
	{layout.EdgeLeft, C.GTK_LAYER_SHELL_EDGE_LEFT},
	{layout.EdgeRight, C.GTK_LAYER_SHELL_EDGE_RIGHT},
	{layout.EdgeTop, C.GTK_LAYER_SHELL_EDGE_TOP},
	{layout.EdgeBottom, C.GTK_LAYER_SHELL_EDGE_BOTTOM},
}

func cWindow(win *gtk.Window) *C.GtkWindow {
	return (*C.GtkWindow)(unsafe.Pointer(win.Object.Native()))
}

func cbool(v bool) C.gboolean {
	if v {
		return 1
	}
	return 0
}

func layerShellSupported() bool {
	return C.gtk_layer_is_supported() != 0
}

func layerInit(win *gtk.Window) {
	C.gtk_layer_init_for_window(cWindow(win))
}

func layerSetNamespace(win *gtk.Window, namespace string) {
	cns := C.CString(namespace)
	defer C.free(unsafe.Pointer(cns))
	C.gtk_layer_set_namespace(cWindow(win), cns)
}

func layerSetMonitor(win *gtk.Window, mon *gdk.Monitor) {
	C.gtk_layer_set_monitor(cWindow(win), (*C.GdkMonitor)(unsafe.Pointer(mon.Object.Native())))
}

func layerLayer(win *gtk.Window) notes.Layer {
	return notes.Layer(C.gtk_layer_get_layer(cWindow(win)))
}

func layerSetLayer(win *gtk.Window, layer notes.Layer) {
	C.gtk_layer_set_layer(cWindow(win), C.GtkLayerShellLayer(layer))
}

// layerSetAnchor anchors the window to exactly the given edges.
func layerSetAnchor(win *gtk.Window, edges layout.Edges) {
	for _, e := range layerEdges {
		C.gtk_layer_set_anchor(cWindow(win), e.shell, cbool(edges&e.edge != 0))
	}
}

func layerSetExclusiveZone(win *gtk.Window, zone int) {
	C.gtk_layer_set_exclusive_zone(cWindow(win), C.int(zone))
}

func layerSetKeyboardMode(win *gtk.Window, mode notes.KeyboardMode) {
	C.gtk_layer_set_keyboard_mode(cWindow(win), C.GtkLayerShellKeyboardMode(mode))
}
