// Package config turns the command line into the settings shared by
// every note.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"deedles.dev/imposter/internal/util"
	"deedles.dev/imposter/layout"
	"deedles.dev/ximage/geom"
)

const (
	Summary = "Little colorful gtk4-layer-shell notes you can write and draw on."

	Description = `Signals:
  pkill -SIGUSR1 imposter          Toggle between overlay and bottom layer
  pkill -SIGUSR2 imposter          Create a new note

Controls:
  Mouse Left                       Draw on a note
  Mouse Right                      Move a note around
  Mouse Middle                     Clear drawing
  Escape                           Restore exclusive focus from new note
  Ctrl+Q                           Destroy focused note
`
)

// Config is the immutable set of options that every note is created
// from.
type Config struct {
	Num         int
	Width       int
	Height      int
	ExtraMargin int
	Margin      int

	// Angle is the rotation of every note in degrees. It is only used
	// if RandomAngle is false.
	Angle       float64
	RandomAngle bool

	Background string
	Color      string
	Pen        string
	Font       string
	Text       string
	Output     string

	Exclusive layout.Edges
	Gravity   layout.Edges
	Organize  layout.Direction
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		Width:       220,
		Height:      220,
		ExtraMargin: 10,
		RandomAngle: true,
		Color:       "#222",
		Pen:         "#222",
		Font:        "bold 1.5em 'Comic Neue'",
	}
}

// Placement returns the parameters for layout.Place.
func (c Config) Placement() layout.Params {
	return layout.Params{
		Size:        geom.Pt(c.Width, c.Height),
		ExtraMargin: c.ExtraMargin,
		EdgeMargin:  c.Margin,
		Exclusive:   c.Exclusive,
		Gravity:     c.Gravity,
		Organize:    c.Organize,
	}
}

// DecodeText replaces literal \n sequences with newlines.
func DecodeText(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

type edgeFlag struct{ e *layout.Edges }

func (f edgeFlag) String() string {
	if f.e == nil {
		return ""
	}
	return f.e.String()
}

func (f edgeFlag) Set(v string) error {
	*f.e = layout.ParseEdge(v)
	return nil
}

type gravityFlag struct{ e *layout.Edges }

func (f gravityFlag) String() string {
	if f.e == nil {
		return ""
	}
	return f.e.String()
}

func (f gravityFlag) Set(v string) error {
	*f.e = layout.ParseGravity(v)
	return nil
}

type directionFlag struct{ d *layout.Direction }

func (f directionFlag) String() string {
	if f.d == nil {
		return ""
	}
	return f.d.String()
}

func (f directionFlag) Set(v string) error {
	*f.d = layout.ParseDirection(v)
	return nil
}

// Parse parses args, not including the program name. Usage and errors
// are written to output. If help was requested, the returned error is
// flag.ErrHelp.
func Parse(name string, args []string, output io.Writer) (Config, error) {
	c := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: %v [flags]\n\n%v\n\n", name, Summary)
		fs.PrintDefaults()
		fmt.Fprintf(output, "\n%v", Description)
	}

	ints := []struct {
		v     *int
		usage string
		names []string
	}{
		{&c.Num, "Open n notes on launch", []string{"num", "n"}},
		{&c.Width, "Width of the notes", []string{"width", "w"}},
		{&c.Height, "Height of the notes", []string{"height", "h"}},
		{&c.Margin, "Margin between notes and screen edge", []string{"margin", "m"}},
	}
	for _, f := range ints {
		for _, n := range f.names {
			fs.IntVar(f.v, n, *f.v, f.usage)
		}
	}

	strs := []struct {
		v     *string
		usage string
		names []string
	}{
		{&c.Background, "Color of the notes (random)", []string{"bg", "b"}},
		{&c.Color, "Color of the text", []string{"color", "c"}},
		{&c.Pen, "Color of the pen", []string{"pen", "p"}},
		{&c.Font, "Font of the text", []string{"font", "f"}},
		{&c.Text, "Text on the first note", []string{"text", "t"}},
		{&c.Output, "Monitor output name", []string{"output", "o"}},
	}
	for _, f := range strs {
		for _, n := range f.names {
			fs.StringVar(f.v, n, *f.v, f.usage)
		}
	}

	var angle util.OptionalFloat
	util.Flag(fs, &angle, "Angle of the notes (random)", "angle", "a")
	util.Flag(fs, edgeFlag{&c.Exclusive}, "Reserve exclusive zone on screen edge (l|r|t|b)", "exclusive", "e")
	util.Flag(fs, gravityFlag{&c.Gravity}, "Stick notes on specific screen edge (l|r|t|b|tl...)", "gravity", "g")
	util.Flag(fs, directionFlag{&c.Organize}, "Add new note next to previous one in direction (l|r|t|b|lr|rl|tb|bt)", "organize", "z")

	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if fs.NArg() > 0 {
		return c, fmt.Errorf("unexpected arguments: %q", fs.Args())
	}

	switch {
	case c.Num < 0:
		return c, errors.New("num must not be negative")
	case c.Width < 0, c.Height < 0:
		return c, errors.New("width and height must not be negative")
	}

	c.Angle, c.RandomAngle = angle.V, !angle.Ok
	c.Text = DecodeText(c.Text)

	return c, nil
}
