package layout

import (
	"strings"

	"deedles.dev/ximage/geom"
)

// Direction is the pattern in which successive notes are fanned out
// from the first.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
	DirectionUp
	DirectionDown
	DirectionLeftRight
	DirectionRightLeft
	DirectionTopBottom
	DirectionBottomTop
)

var directionNames = map[string]Direction{
	"l":  DirectionLeft,
	"r":  DirectionRight,
	"t":  DirectionUp,
	"b":  DirectionDown,
	"lr": DirectionLeftRight,
	"rl": DirectionRightLeft,
	"tb": DirectionTopBottom,
	"bt": DirectionBottomTop,
}

// ParseDirection matches s exactly, ignoring case. Unknown values
// yield DirectionNone.
func ParseDirection(s string) Direction {
	return directionNames[strings.ToLower(s)]
}

func (d Direction) String() string {
	for name, v := range directionNames {
		if v == d {
			return name
		}
	}
	return ""
}

// zigzag produces 0, -1, 1, -2, 2, ... for k = 0, 1, 2, 3, 4, ...
func zigzag(k int) int {
	sign := -1
	if k%2 == 0 {
		sign = 1
	}
	return sign * ((k + 1) / 2)
}

// Offset returns the offset, in whole note steps, of the kth note
// fanned out in direction d.
func (d Direction) Offset(k int) geom.Point[int] {
	switch d {
	case DirectionLeft:
		return geom.Pt(-k, 0)
	case DirectionRight:
		return geom.Pt(k, 0)
	case DirectionUp:
		return geom.Pt(0, -k)
	case DirectionDown:
		return geom.Pt(0, k)
	case DirectionLeftRight:
		return geom.Pt(zigzag(k), 0)
	case DirectionRightLeft:
		return geom.Pt(-zigzag(k), 0)
	case DirectionTopBottom:
		return geom.Pt(0, zigzag(k))
	case DirectionBottomTop:
		return geom.Pt(0, -zigzag(k))
	default:
		return geom.Point[int]{}
	}
}
