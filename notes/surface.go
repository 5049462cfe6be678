package notes

import (
	"deedles.dev/imposter/layout"
	"deedles.dev/ximage/geom"
)

// Layer is a layer-shell depth. The values match the protocol's.
type Layer int

const (
	LayerBackground Layer = iota
	LayerBottom
	LayerTop
	LayerOverlay
)

func (l Layer) String() string {
	switch l {
	case LayerBackground:
		return "background"
	case LayerBottom:
		return "bottom"
	case LayerTop:
		return "top"
	case LayerOverlay:
		return "overlay"
	default:
		return "unknown"
	}
}

// KeyboardMode is a layer-shell keyboard interactivity mode. The
// values match the protocol's.
type KeyboardMode int

const (
	KeyboardModeNone KeyboardMode = iota
	KeyboardModeExclusive
	KeyboardModeOnDemand
)

// Surface is the single layer-shell surface that hosts every note,
// along with the container that positions them.
type Surface interface {
	// Geometry returns the bounds of the monitor that the surface is
	// on.
	Geometry() geom.Rect[int]

	SetVisible(visible bool)

	// SetDefaultSize sets the size that the surface asks for. Negative
	// values unset it.
	SetDefaultSize(w, h int)

	Layer() Layer
	SetLayer(layer Layer)
	SetAnchor(edges layout.Edges)
	SetExclusiveZone(zone int)
	SetKeyboardMode(mode KeyboardMode)

	// ClearFocus removes keyboard focus from every widget.
	ClearFocus()

	// SetInputRegion limits pointer input to the given rectangles.
	SetInputRegion(rects []geom.Rect[int])

	// NewView builds the widgets for n, connects their events to n's
	// handlers and adds them to the surface at the origin.
	NewView(n *Note) View

	Destroy()
}

// View is the set of widgets that displays a single note.
type View interface {
	Move(x, y int)
	SetSize(w, h int)
	GrabFocus()
	QueueDraw()

	// Remove takes the widgets off of the surface.
	Remove()
}
