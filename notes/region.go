package notes

import (
	"slices"

	"deedles.dev/ximage/geom"
	"deedles.dev/xiter"
)

func live(n *Note) bool {
	return !n.Deleted()
}

// InputRegion returns the rectangles of every note that hasn't been
// closed.
func (o *Overlay) InputRegion() []geom.Rect[int] {
	notes := xiter.Filter(slices.Values(o.notes), live)
	return slices.Collect(xiter.Map(notes, (*Note).Bounds))
}
