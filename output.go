package main

import (
	"deedles.dev/imposter/notes"
	"deedles.dev/ximage/geom"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/sirupsen/logrus"
)

// Output adapts a GDK monitor for notes.SelectMonitor.
type Output struct {
	Monitor *gdk.Monitor
}

func (out Output) Connector() string {
	return out.Monitor.Connector()
}

func (out Output) Geometry() geom.Rect[int] {
	r := out.Monitor.Geometry()
	return geom.Rt(r.X(), r.Y(), r.X()+r.Width(), r.Y()+r.Height())
}

func listOutputs(display *gdk.Display) []Output {
	list := display.Monitors()
	outputs := make([]Output, 0, list.NItems())
	for i := range list.NItems() {
		obj := list.Item(i)
		if obj == nil {
			continue
		}
		outputs = append(outputs, Output{
			Monitor: &gdk.Monitor{Object: obj},
		})
	}
	return outputs
}

// selectOutput picks the monitor for the surface. If ok is false, the
// compositor picks.
func selectOutput(display *gdk.Display, name string) (out Output, ok bool) {
	outputs := listOutputs(display)
	out, ok = notes.SelectMonitor(outputs, name)
	if !ok && (name != "") {
		logrus.WithField("output", name).Warn("output not found, letting the compositor choose")
	}
	return out, ok
}

// outputAt returns the monitor that win is on. If that can't be
// determined, the first monitor is returned instead.
func outputAt(display *gdk.Display, win *gtk.Window) (Output, bool) {
	if mon := windowMonitor(win); mon != nil {
		return Output{Monitor: mon}, true
	}

	outputs := listOutputs(display)
	if len(outputs) == 0 {
		return Output{}, false
	}
	return outputs[0], true
}
