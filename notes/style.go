package notes

import (
	"fmt"
	"math/rand/v2"
)

// Palette is the set of backgrounds that notes pick from when none is
// configured.
var Palette = []string{
	"#7dab60", "#fecf37", "#ffbdce", "#fe8898", "#1f99f6", "#a1e9e3", "#36d1d1",
	"#fed523", "#fddae3", "#ffab8f", "#f9969e", "#ff9a5a", "#4ad3d3", "#fe74a5",
	"#d3f251", "#fe9e57", "#00caee", "#9dd26c", "#fed93f", "#ef91b3", "#ff5251",
	"#fccc00", "#55c377", "#00c5e4", "#cf99d7", "#fe965c", "#00d7dc", "#d8f35b",
	"#fe99a0", "#ff99d0", "#d99fd0",
}

// MaxRandomAngle bounds the rotation of notes without a configured
// angle.
const MaxRandomAngle = 3

// Style is the look of a single note. It is fixed when the note is
// created.
type Style struct {
	Margin     int
	Angle      float64
	Color      string
	Font       string
	Background string
}

func randomAngle() float64 {
	return -MaxRandomAngle + 2*MaxRandomAngle*rand.Float64()
}

func randomBackground() string {
	return Palette[rand.IntN(len(Palette))]
}

// CSS returns the stylesheet for the note's frame and text view.
func (s Style) CSS() string {
	return fmt.Sprintf(`
frame { margin: %dpx; border: none; transform: rotate(%.2fdeg); }
textview { color: %s; font: %s; padding: 8px; background: linear-gradient(to bottom, rgba(0,0,0,0), rgba(0,0,0,0.33)), %s; }
`,
		s.Margin,
		s.Angle,
		s.Color,
		s.Font,
		s.Background,
	)
}
