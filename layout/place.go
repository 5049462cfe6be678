package layout

import "deedles.dev/ximage/geom"

// Params are the inputs to Place that stay fixed for the life of the
// process.
type Params struct {
	Size        geom.Point[int]
	ExtraMargin int
	EdgeMargin  int
	Exclusive   Edges
	Gravity     Edges
	Organize    Direction
}

// Placement is where a new note should go.
type Placement struct {
	Pos geom.Point[int]

	// ExclusiveZone is the zone that the surface should reserve, or
	// zero if no exclusive edge is configured.
	ExclusiveZone int
}

// Place computes the top-left corner of the index'th note spawned
// since the last reset on a monitor of size mon. The result is not
// clamped to the monitor.
func Place(p Params, mon geom.Point[int], index int) (pl Placement) {
	w, h, m := p.Size.X, p.Size.Y, p.EdgeMargin

	tw, th := mon.X, mon.Y
	switch {
	case p.Exclusive.Vertical():
		th = h
		pl.ExclusiveZone = h + m
	case p.Exclusive.Horizontal():
		tw = w
		pl.ExclusiveZone = w + m
	}
	switch {
	case p.Gravity.Vertical():
		th = h
	case p.Gravity.Horizontal():
		tw = w
	}

	tx, ty := tw/2-w/2, th/2-h/2

	switch {
	case p.Exclusive&EdgeBottom != 0:
		ty = mon.Y - h - m
	case p.Exclusive&EdgeRight != 0:
		tx = mon.X - w - m
	}

	switch {
	case p.Gravity&EdgeLeft != 0:
		tx = m
	case p.Gravity&EdgeRight != 0:
		tx = mon.X - w - m
	}
	switch {
	case p.Gravity&EdgeTop != 0:
		ty = m
	case p.Gravity&EdgeBottom != 0:
		ty = mon.Y - h - m
	}

	if index > 0 {
		step := geom.Pt(w+p.ExtraMargin/2, h+p.ExtraMargin/2)
		off := p.Organize.Offset(index)
		tx += off.X * step.X
		ty += off.Y * step.Y
	}

	pl.Pos = geom.Pt(tx, ty)
	return pl
}
