package notes

import (
	"deedles.dev/imposter/internal/config"
	"deedles.dev/imposter/layout"
	"deedles.dev/ximage/geom"
)

type fakeSurface struct {
	geometry    geom.Rect[int]
	visible     bool
	defaultSize geom.Point[int]
	layer       Layer
	anchor      layout.Edges
	zone        int
	keyboard    KeyboardMode
	unfocused   int
	region      []geom.Rect[int]
	views       []*fakeView
	destroyed   bool
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{
		geometry: geom.Rt(0, 0, w, h),
		visible:  true,
	}
}

func (s *fakeSurface) Geometry() geom.Rect[int]              { return s.geometry }
func (s *fakeSurface) SetVisible(visible bool)               { s.visible = visible }
func (s *fakeSurface) SetDefaultSize(w, h int)               { s.defaultSize = geom.Pt(w, h) }
func (s *fakeSurface) Layer() Layer                          { return s.layer }
func (s *fakeSurface) SetLayer(layer Layer)                  { s.layer = layer }
func (s *fakeSurface) SetAnchor(edges layout.Edges)          { s.anchor = edges }
func (s *fakeSurface) SetExclusiveZone(zone int)             { s.zone = zone }
func (s *fakeSurface) SetKeyboardMode(mode KeyboardMode)     { s.keyboard = mode }
func (s *fakeSurface) ClearFocus()                           { s.unfocused++ }
func (s *fakeSurface) SetInputRegion(rects []geom.Rect[int]) { s.region = rects }
func (s *fakeSurface) Destroy()                              { s.destroyed = true }

func (s *fakeSurface) NewView(n *Note) View {
	v := &fakeView{note: n, text: n.Text()}
	s.views = append(s.views, v)
	return v
}

type fakeView struct {
	note    *Note
	text    string
	pos     geom.Point[int]
	size    geom.Point[int]
	focused int
	draws   int
	removed bool
}

func (v *fakeView) Move(x, y int)    { v.pos = geom.Pt(x, y) }
func (v *fakeView) SetSize(w, h int) { v.size = geom.Pt(w, h) }
func (v *fakeView) GrabFocus()       { v.focused++ }
func (v *fakeView) QueueDraw()       { v.draws++ }
func (v *fakeView) Remove()          { v.removed = true }

func testConfig() config.Config {
	c := config.Default()
	c.RandomAngle = false
	return c
}
