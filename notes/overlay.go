// Package notes manages the notes on a layer-shell surface.
package notes

import (
	"image/color"
	"slices"

	"deedles.dev/imposter/ink"
	"deedles.dev/imposter/internal/config"
	"deedles.dev/imposter/layout"
	"deedles.dev/ximage/geom"
	"github.com/sirupsen/logrus"
)

// TickInterval is how often, in milliseconds, Tick should be called.
const TickInterval = 50

// Overlay owns the layer-shell surface and every note on it. Except
// for construction, its methods must only be called from the UI
// thread.
type Overlay struct {
	config  config.Config
	surface Surface
	pen     color.Color

	notes     []*Note
	monitor   geom.Point[int]
	index     int
	pending   int
	text      string
	destroyed bool
}

// New returns an overlay that manages notes on surface. The surface
// isn't touched until Start is called. If pen is nil, c.Pen is parsed
// with ink.ParseColor instead.
func New(c config.Config, surface Surface, pen color.Color) *Overlay {
	if pen == nil {
		pen = parsePen(c.Pen)
	}

	return &Overlay{
		config:  c,
		surface: surface,
		pen:     pen,
		text:    c.Text,
	}
}

// Start configures the surface and queues the initial notes.
func (o *Overlay) Start() {
	o.surface.SetLayer(LayerOverlay)
	o.surface.SetAnchor(layout.Anchor(o.config.Exclusive))
	o.surface.SetKeyboardMode(KeyboardModeExclusive)

	o.pending = o.config.Num
	if o.pending == 0 {
		o.surface.SetVisible(false)
	}
}

func parsePen(s string) color.Color {
	pen, err := ink.ParseColor(s)
	if err != nil {
		logrus.WithError(err).Warn("invalid pen color, using default")
		return ink.DefaultPen
	}
	return pen
}

func (o *Overlay) size() geom.Point[int] {
	return geom.Pt(o.config.Width, o.config.Height)
}

// Notes returns the notes on the surface in the order they were
// created. Closed notes stay in the list until the next tick.
func (o *Overlay) Notes() []*Note {
	return o.notes
}

// Index returns the number of notes spawned since the layout was last
// reset by a move or a close.
func (o *Overlay) Index() int {
	return o.index
}

// Pending returns the number of notes waiting to be created.
func (o *Overlay) Pending() int {
	return o.pending
}

// Request queues n notes to be created on the next tick.
func (o *Overlay) Request(n int) {
	o.pending += n
}

// Tick creates requested notes, forgets closed ones and brings the
// surface's visibility and input region up to date.
func (o *Overlay) Tick() {
	if o.destroyed {
		return
	}

	for o.pending > 0 {
		o.Spawn()
		o.pending--
	}
	o.reconcile()
}

func (o *Overlay) reconcile() {
	o.notes = slices.DeleteFunc(o.notes, (*Note).Deleted)

	if len(o.notes) == 0 {
		o.surface.SetVisible(false)
		o.surface.SetDefaultSize(-1, -1)
		return
	}

	o.surface.SetVisible(true)
	o.surface.SetInputRegion(o.InputRegion())
}

func (o *Overlay) newStyle() Style {
	s := Style{
		Margin:     o.config.ExtraMargin,
		Angle:      o.config.Angle,
		Color:      o.config.Color,
		Font:       o.config.Font,
		Background: o.config.Background,
	}
	if o.config.RandomAngle {
		s.Angle = randomAngle()
	}
	if s.Background == "" {
		s.Background = randomBackground()
	}
	return s
}

// Spawn creates a new note and places it according to the
// configuration.
func (o *Overlay) Spawn() *Note {
	if o.destroyed {
		return nil
	}

	o.surface.SetVisible(true)
	o.surface.SetLayer(LayerOverlay)

	mon := o.surface.Geometry()
	o.monitor = mon.Size()

	pl := layout.Place(o.config.Placement(), o.monitor, o.index)
	if o.config.Exclusive != layout.EdgeNone {
		o.surface.SetExclusiveZone(pl.ExclusiveZone)
	}

	n := &Note{
		overlay: o,
		style:   o.newStyle(),
		text:    o.text,
		pen:     o.pen,
	}
	o.text = ""

	n.view = o.surface.NewView(n)
	o.surface.SetDefaultSize(o.monitor.X, o.monitor.Y)
	n.SetPosition(pl.Pos.X, pl.Pos.Y)
	n.SetSize(o.config.Width, o.config.Height)

	o.notes = append(o.notes, n)
	o.index++

	logrus.WithFields(logrus.Fields{
		"bounds": n.Bounds(),
		"index":  o.index,
		"notes":  len(o.notes),
	}).Debug("spawned note")

	o.reconcile()
	return n
}

// ToggleLayer moves the surface between the overlay and bottom layers.
func (o *Overlay) ToggleLayer() {
	if o.destroyed {
		return
	}

	layer := LayerOverlay
	if o.surface.Layer() == LayerOverlay {
		layer = LayerBottom
	}
	o.surface.SetLayer(layer)

	logrus.WithField("layer", layer).Debug("toggled layer")
}

// Destroy releases every note and the surface.
func (o *Overlay) Destroy() {
	if o.destroyed {
		return
	}
	o.destroyed = true

	for _, n := range o.notes {
		n.ink.Release()
	}
	o.notes = nil
	o.surface.Destroy()
}

// Destroyed reports whether Destroy has been called.
func (o *Overlay) Destroyed() bool {
	return o.destroyed
}
