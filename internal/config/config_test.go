package config

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"

	"deedles.dev/imposter/layout"
	"deedles.dev/ximage/geom"
)

func TestDefault(t *testing.T) {
	c, err := Parse("imposter", nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}

	if c != Default() {
		t.Errorf("Parsing nothing does not give the defaults: %+v", c)
	}
	if (c.Width != 220) || (c.Height != 220) {
		t.Errorf("Wrong default size: %vx%v", c.Width, c.Height)
	}
	if c.ExtraMargin != 10 {
		t.Errorf("Wrong default extra margin: %v", c.ExtraMargin)
	}
	if !c.RandomAngle {
		t.Error("Angle should be random by default")
	}
	if (c.Color != "#222") || (c.Pen != "#222") {
		t.Errorf("Wrong default colors: %q %q", c.Color, c.Pen)
	}
	if c.Font != "bold 1.5em 'Comic Neue'" {
		t.Errorf("Wrong default font: %q", c.Font)
	}
	if (c.Exclusive != layout.EdgeNone) || (c.Gravity != layout.EdgeNone) || (c.Organize != layout.DirectionNone) {
		t.Errorf("Wrong default layout: %+v", c)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(Config) bool
	}{
		{
			name:  "Num",
			args:  []string{"--num", "3"},
			check: func(c Config) bool { return c.Num == 3 },
		},
		{
			name:  "ShortNames",
			args:  []string{"-n", "2", "-w", "100", "-h", "80", "-m", "5"},
			check: func(c Config) bool { return c.Num == 2 && c.Width == 100 && c.Height == 80 && c.Margin == 5 },
		},
		{
			name:  "Angle",
			args:  []string{"--angle", "0"},
			check: func(c Config) bool { return !c.RandomAngle && c.Angle == 0 },
		},
		{
			name:  "NegativeAngle",
			args:  []string{"-a", "-2.5"},
			check: func(c Config) bool { return !c.RandomAngle && c.Angle == -2.5 },
		},
		{
			name:  "Colors",
			args:  []string{"--bg", "#fff", "--color", "red", "--pen", "#00f"},
			check: func(c Config) bool { return c.Background == "#fff" && c.Color == "red" && c.Pen == "#00f" },
		},
		{
			name:  "Text",
			args:  []string{"--text", `a\nb`},
			check: func(c Config) bool { return c.Text == "a\nb" },
		},
		{
			name:  "Exclusive",
			args:  []string{"--exclusive", "b"},
			check: func(c Config) bool { return c.Exclusive == layout.EdgeBottom },
		},
		{
			name:  "ExclusiveUpper",
			args:  []string{"-e", "T"},
			check: func(c Config) bool { return c.Exclusive == layout.EdgeTop },
		},
		{
			name:  "Gravity",
			args:  []string{"--gravity", "tl"},
			check: func(c Config) bool { return c.Gravity == layout.EdgeTop|layout.EdgeLeft },
		},
		{
			name:  "Organize",
			args:  []string{"-z", "lr"},
			check: func(c Config) bool { return c.Organize == layout.DirectionLeftRight },
		},
		{
			name:  "UnknownOrganize",
			args:  []string{"--organize", "q"},
			check: func(c Config) bool { return c.Organize == layout.DirectionNone },
		},
		{
			name:  "Output",
			args:  []string{"--output", "DP-2"},
			check: func(c Config) bool { return c.Output == "DP-2" },
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, err := Parse("imposter", test.args, io.Discard)
			if err != nil {
				t.Fatal(err)
			}
			if !test.check(c) {
				t.Errorf("Wrong config for %q: %+v", test.args, c)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := [][]string{
		{"--num", "-1"},
		{"--width", "-5"},
		{"--angle", "steep"},
		{"--nope"},
		{"extra"},
	}
	for _, args := range tests {
		if _, err := Parse("imposter", args, io.Discard); err == nil {
			t.Errorf("Expected error for %q", args)
		}
	}
}

func TestHelp(t *testing.T) {
	var buf bytes.Buffer
	_, err := Parse("imposter", []string{"--help"}, &buf)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("Expected flag.ErrHelp, got %v", err)
	}

	out := buf.String()
	for _, want := range []string{Summary, "SIGUSR2", "Ctrl+Q", "-organize"} {
		if !strings.Contains(out, want) {
			t.Errorf("Usage is missing %q", want)
		}
	}
}

func TestPlacement(t *testing.T) {
	c, err := Parse("imposter", []string{"-w", "100", "-h", "40", "-m", "5", "-e", "b", "-g", "r", "-z", "bt"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}

	want := layout.Params{
		Size:        geom.Pt(100, 40),
		ExtraMargin: 10,
		EdgeMargin:  5,
		Exclusive:   layout.EdgeBottom,
		Gravity:     layout.EdgeRight,
		Organize:    layout.DirectionBottomTop,
	}
	if got := c.Placement(); got != want {
		t.Errorf("Wrong placement params: %+v", got)
	}
}

func TestDecodeText(t *testing.T) {
	if got := DecodeText(`one\ntwo\n`); got != "one\ntwo\n" {
		t.Errorf("Wrong decoded text: %q", got)
	}
}
