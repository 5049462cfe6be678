package main

import (
	"deedles.dev/imposter/notes"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

var modifiers = []struct {
	gdk  gdk.ModifierType
	note notes.Modifiers
}{
	{gdk.ControlMask, notes.ModControl},
	{gdk.ShiftMask, notes.ModShift},
	{gdk.AltMask, notes.ModAlt},
	{gdk.SuperMask, notes.ModSuper},
}

func translateKey(keyval uint) notes.Key {
	switch keyval {
	case gdk.KEY_Escape:
		return notes.KeyEscape
	case gdk.KEY_q:
		return notes.KeyQ
	default:
		return notes.KeyOther
	}
}

func translateModifiers(state gdk.ModifierType) (mods notes.Modifiers) {
	for _, m := range modifiers {
		if state&m.gdk != 0 {
			mods |= m.note
		}
	}
	return mods
}

// connectInput wires the view's gestures to its note. The primary
// button draws and the middle button clears on the drawing area. The
// secondary button moves the whole frame.
func (view *View) connectInput() {
	n := view.note

	draw := gtk.NewGestureDrag()
	draw.SetButton(gdk.BUTTON_PRIMARY)
	draw.ConnectDragBegin(n.DrawBegin)
	draw.ConnectDragUpdate(n.DrawUpdate)
	draw.ConnectDragEnd(n.DrawEnd)
	view.drawing.AddController(draw)

	wipe := gtk.NewGestureClick()
	wipe.SetButton(gdk.BUTTON_MIDDLE)
	wipe.ConnectPressed(func(int, float64, float64) {
		n.ClearInk()
	})
	view.drawing.AddController(wipe)

	enter := func(float64, float64) { n.Enter() }
	motion := gtk.NewEventControllerMotion()
	motion.ConnectEnter(enter)
	motion.ConnectMotion(enter)
	motion.ConnectLeave(n.Leave)
	view.frame.AddController(motion)

	keys := gtk.NewEventControllerKey()
	keys.ConnectKeyPressed(func(keyval, _ uint, state gdk.ModifierType) bool {
		return n.KeyPressed(translateKey(keyval), translateModifiers(state))
	})
	view.frame.AddController(keys)

	move := gtk.NewGestureDrag()
	move.SetButton(gdk.BUTTON_SECONDARY)
	move.ConnectDragBegin(n.DragBegin)
	move.ConnectDragUpdate(n.DragUpdate)
	move.ConnectDragEnd(n.DragEnd)
	view.frame.AddController(move)
}
