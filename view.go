package main

import (
	"deedles.dev/imposter/internal/fimg"
	"deedles.dev/imposter/notes"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// View is the widget tree for a single note: a frame holding the text
// editor with a drawing area on top of it.
type View struct {
	surface *Surface
	note    *notes.Note

	frame   *gtk.Frame
	text    *gtk.TextView
	drawing *gtk.DrawingArea

	buf *fimg.ARGB
}

func newView(s *Surface, n *notes.Note) *View {
	view := View{
		surface: s,
		note:    n,
		frame:   gtk.NewFrame(""),
		text:    gtk.NewTextView(),
		drawing: gtk.NewDrawingArea(),
	}
	view.frame.SetLabelWidget(nil)

	style := n.Style()
	loadNoteStyle(style, &view.frame.Widget, &view.text.Widget)

	view.text.SetWrapMode(gtk.WrapWordChar)
	view.text.SetCanTarget(false)
	view.text.SetAcceptsTab(false)
	if text := n.Text(); text != "" {
		view.text.Buffer().SetText(text)
	}

	overlay := gtk.NewOverlay()
	overlay.SetChild(view.text)
	overlay.AddOverlay(view.drawing)
	view.frame.SetChild(overlay)

	view.drawing.SetDrawFunc(view.draw)
	view.drawing.ConnectResize(n.Resize)
	view.text.ConnectRealize(view.GrabFocus)
	view.connectInput()

	s.fixed.Put(view.frame, 0, 0)
	return &view
}

func (view *View) Move(x, y int) {
	view.surface.fixed.Move(view.frame, float64(x), float64(y))
}

func (view *View) SetSize(w, h int) {
	view.frame.SetSizeRequest(w, h)
}

func (view *View) GrabFocus() {
	view.text.GrabFocus()
}

func (view *View) QueueDraw() {
	view.drawing.QueueDraw()
}

func (view *View) Remove() {
	view.surface.fixed.Remove(view.frame)
	view.buf = nil
}
