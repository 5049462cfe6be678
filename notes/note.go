package notes

import (
	"image/color"

	"deedles.dev/imposter/ink"
	"deedles.dev/imposter/internal/util"
	"deedles.dev/ximage/geom"
	"github.com/sirupsen/logrus"
)

// Key is a key that notes react to.
type Key int

const (
	KeyOther Key = iota
	KeyEscape
	KeyQ
)

// Modifiers is the set of modifier keys held during a key press.
type Modifiers uint

const (
	ModControl Modifiers = 1 << iota
	ModShift
	ModAlt
	ModSuper
)

// Note is a single sticky note. Its event handlers are meant to be
// connected to its View's widgets and must only be called from the UI
// thread.
type Note struct {
	overlay *Overlay
	view    View
	ink     ink.Canvas
	style   Style
	text    string
	pen     color.Color

	x, y, w, h int

	startX, startY float64
	prevX, prevY   float64
	drawX, drawY   float64

	deleted bool
}

// Style returns the look that the note was created with.
func (n *Note) Style() Style {
	return n.style
}

// Text returns the text that the note's editor should start with.
func (n *Note) Text() string {
	return n.text
}

// Ink returns the canvas that the note's strokes are painted onto.
func (n *Note) Ink() *ink.Canvas {
	return &n.ink
}

// Bounds returns the area of the monitor that the note occupies.
func (n *Note) Bounds() geom.Rect[int] {
	return geom.Rt(n.x, n.y, n.x+n.w, n.y+n.h)
}

// Deleted reports whether the note has been closed.
func (n *Note) Deleted() bool {
	return n.deleted
}

// SetPosition moves the note, keeping it entirely on the monitor.
func (n *Note) SetPosition(x, y int) {
	mon := n.overlay.monitor
	size := n.overlay.size()
	n.x = util.Clamp(x, 0, mon.X-size.X)
	n.y = util.Clamp(y, 0, mon.Y-size.Y)
	n.view.Move(n.x, n.y)
}

func (n *Note) SetSize(w, h int) {
	n.w, n.h = w, h
	n.view.SetSize(w, h)
}

func (n *Note) brush(x, y float64) {
	n.ink.StrokeSegment(geom.Pt(n.prevX, n.prevY), geom.Pt(x, y), n.pen, ink.DefaultWidth)
	n.view.QueueDraw()
	n.prevX, n.prevY = x, y
}

// DrawBegin starts a stroke at (x, y) in canvas coordinates.
func (n *Note) DrawBegin(x, y float64) {
	n.drawX, n.drawY = x, y
	n.prevX, n.prevY = x, y
	n.brush(x, y)
}

// DrawUpdate continues the stroke to an offset from where it began.
func (n *Note) DrawUpdate(dx, dy float64) {
	n.brush(n.drawX+dx, n.drawY+dy)
}

func (n *Note) DrawEnd(dx, dy float64) {
	n.brush(n.drawX+dx, n.drawY+dy)
}

// ClearInk erases every stroke.
func (n *Note) ClearInk() {
	n.ink.Clear()
	n.view.QueueDraw()
}

// DragBegin starts moving the note. (x, y) is the grab point relative
// to the note.
func (n *Note) DragBegin(x, y float64) {
	n.startX, n.startY = x, y
}

// DragUpdate moves the note so that it follows the pointer, which has
// moved by (dx, dy) since the drag began.
func (n *Note) DragUpdate(dx, dy float64) {
	size := n.overlay.size()
	em := float64(n.overlay.config.ExtraMargin)
	n.SetPosition(
		int(float64(n.x)+n.startX+dx-float64(size.X/2)+em),
		int(float64(n.y)+n.startY+dy-float64(size.Y/2)+em),
	)
}

// DragEnd finishes a move. The next organized note will be placed
// relative to the starting point again.
func (n *Note) DragEnd(dx, dy float64) {
	n.overlay.index = 0
}

// Enter gives the note exclusive keyboard focus.
func (n *Note) Enter() {
	n.overlay.surface.SetKeyboardMode(KeyboardModeExclusive)
	n.view.GrabFocus()
}

// Leave gives keyboard focus back to the compositor.
func (n *Note) Leave() {
	n.overlay.surface.SetKeyboardMode(KeyboardModeOnDemand)
	n.overlay.surface.ClearFocus()
}

// KeyPressed handles the note's shortcuts. It returns true if the key
// was consumed.
func (n *Note) KeyPressed(key Key, mods Modifiers) bool {
	logrus.WithFields(logrus.Fields{
		"key":  key,
		"mods": mods,
	}).Debug("key pressed")

	switch {
	case key == KeyEscape:
		n.Leave()
		return true
	case (key == KeyQ) && (mods == ModControl):
		n.Leave()
		n.Close()
		return true
	default:
		return false
	}
}

// Resize is called when the note's canvas widget changes size.
func (n *Note) Resize(w, h int) {
	if n.deleted {
		return
	}

	n.ink.EnsureSize(w, h)
	n.view.GrabFocus()
}

// Close removes the note. The overlay forgets about it on its next
// tick.
func (n *Note) Close() {
	if n.deleted {
		return
	}

	n.ink.Release()
	n.view.Remove()
	n.deleted = true
	n.overlay.index = 0

	logrus.WithField("bounds", n.Bounds()).Debug("closed note")
}
