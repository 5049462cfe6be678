// Package layout decides where notes go on a monitor.
package layout

import "strings"

// Edges is a set of screen edges.
type Edges uint8

const (
	EdgeTop Edges = 1 << iota
	EdgeBottom
	EdgeLeft
	EdgeRight

	EdgeNone Edges = 0
	EdgeAll        = EdgeTop | EdgeBottom | EdgeLeft | EdgeRight
)

var edgeLetters = []struct {
	edge   Edges
	letter byte
}{
	{EdgeLeft, 'l'},
	{EdgeRight, 'r'},
	{EdgeTop, 't'},
	{EdgeBottom, 'b'},
}

// ParseEdge returns the first of l, r, t or b found in s, in that
// order of preference. Anything else is ignored.
func ParseEdge(s string) Edges {
	s = strings.ToLower(s)
	for _, e := range edgeLetters {
		if strings.IndexByte(s, e.letter) >= 0 {
			return e.edge
		}
	}
	return EdgeNone
}

// ParseGravity returns at most one horizontal and one vertical edge
// found in s. Left beats right and top beats bottom.
func ParseGravity(s string) (edges Edges) {
	s = strings.ToLower(s)
	switch {
	case strings.Contains(s, "l"):
		edges |= EdgeLeft
	case strings.Contains(s, "r"):
		edges |= EdgeRight
	}
	switch {
	case strings.Contains(s, "t"):
		edges |= EdgeTop
	case strings.Contains(s, "b"):
		edges |= EdgeBottom
	}
	return edges
}

func (e Edges) Horizontal() bool {
	return e&(EdgeLeft|EdgeRight) != 0
}

func (e Edges) Vertical() bool {
	return e&(EdgeTop|EdgeBottom) != 0
}

func (e Edges) String() string {
	var buf strings.Builder
	for _, l := range edgeLetters {
		if e&l.edge != 0 {
			buf.WriteByte(l.letter)
		}
	}
	return buf.String()
}

// Anchor returns the edges that a surface should be anchored to given
// the exclusive edge. Without one, the surface covers the whole
// monitor. If more than one edge is set, the first of left, right,
// top and bottom wins, as in ParseEdge.
func Anchor(exclusive Edges) Edges {
	if exclusive == EdgeNone {
		return EdgeAll
	}
	for _, e := range edgeLetters {
		if exclusive&e.edge != 0 {
			return e.edge
		}
	}
	return EdgeAll
}
