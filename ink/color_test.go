package ink

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
		err  bool
	}{
		{in: "#222", want: color.NRGBA{0x22, 0x22, 0x22, 0xFF}},
		{in: "#fff", want: color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}},
		{in: "#7dab60", want: color.NRGBA{0x7D, 0xAB, 0x60, 0xFF}},
		{in: "#11223344", want: color.NRGBA{0x11, 0x22, 0x33, 0x44}},
		{in: "#1234", want: color.NRGBA{0x11, 0x22, 0x33, 0x44}},
		{in: "Red", want: color.NRGBA{0xFF, 0, 0, 0xFF}},
		{in: "transparent", want: color.NRGBA{}},
		{in: "#ffff00000000", want: color.NRGBA{0xFF, 0, 0, 0xFF}},
		{in: "#ff00000000ff", want: color.NRGBA{0xFE, 0, 0x01, 0xFF}},
		{in: "#fff000000", want: color.NRGBA{0xFF, 0, 0, 0xFF}},
		{in: "rgb(255,0,0)", want: color.NRGBA{0xFF, 0, 0, 0xFF}},
		{in: "rgb(100%, 50%, 0%)", want: color.NRGBA{0xFF, 0x80, 0, 0xFF}},
		{in: "rgba(0,0,255,0.5)", want: color.NRGBA{0, 0, 0xFF, 0x80}},
		{in: "RGBA(0, 0, 255, 50%)", want: color.NRGBA{0, 0, 0xFF, 0x80}},
		{in: "hsl(120,100%,50%)", want: color.NRGBA{0, 0xFF, 0, 0xFF}},
		{in: "hsla(0, 100%, 50%, 0.25)", want: color.NRGBA{0xFF, 0, 0, 0x40}},
		{in: "hsl(240deg, 100%, 25%)", want: color.NRGBA{0, 0, 0x80, 0xFF}},
		{in: "#12", err: true},
		{in: "rgb(1,2)", err: true},
		{in: "rgb(a,b,c)", err: true},
		{in: "cmyk(0,0,0,0)", err: true},
		{in: "rgb(1,2,3", err: true},
		{in: "#ggg", err: true},
		{in: "notacolor", err: true},
	}

	for _, test := range tests {
		got, err := ParseColor(test.in)
		if test.err {
			if err == nil {
				t.Errorf("ParseColor(%q): expected error, got %v", test.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseColor(%q): %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseColor(%q) = %v, want %v", test.in, got, test.want)
		}
	}
}
