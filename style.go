package main

import (
	"image/color"
	"math"

	"deedles.dev/imposter/notes"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/sirupsen/logrus"
)

const windowCSS = `window { background: alpha(black, 0); }`

func loadWindowStyle() {
	p := gtk.NewCSSProvider()
	p.LoadFromData(windowCSS)
	gtk.StyleContextAddProviderForDisplay(gdk.DisplayGetDefault(), p, gtk.STYLE_PROVIDER_PRIORITY_USER)
}

func loadNoteStyle(style notes.Style, widgets ...*gtk.Widget) {
	p := gtk.NewCSSProvider()
	p.LoadFromData(style.CSS())
	for _, w := range widgets {
		w.StyleContext().AddProvider(p, gtk.STYLE_PROVIDER_PRIORITY_USER)
	}
}

func unit(v float32) uint8 {
	return uint8(math.Round(float64(min(max(v, 0), 1)) * 255))
}

// parsePen parses the pen color with GDK so that it accepts the same
// colors as the CSS that styles the notes. It returns nil if GDK
// can't parse it.
func parsePen(s string) color.Color {
	rgba := gdk.NewRGBA(0, 0, 0, 0)
	if !rgba.Parse(s) {
		logrus.WithField("pen", s).Debug("GDK could not parse pen color")
		return nil
	}

	return color.NRGBA{
		R: unit(rgba.Red()),
		G: unit(rgba.Green()),
		B: unit(rgba.Blue()),
		A: unit(rgba.Alpha()),
	}
}
