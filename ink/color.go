package ink

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// DefaultPen is the pen colour used when none is configured or the
// configured one can't be parsed.
var DefaultPen = color.NRGBA{0x22, 0x22, 0x22, 0xFF}

var errBadColor = errors.New("unrecognized color")

// ParseColor parses a CSS colour: a name, "transparent", hex with one
// to four digits per channel (#rgb, #rgba, #rrggbb, #rrggbbaa,
// #rrrgggbbb, #rrrrggggbbbb), rgb(), rgba(), hsl() or hsla().
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{c.R, c.G, c.B, c.A}, nil
	}
	if s == "transparent" {
		return color.NRGBA{}, nil
	}

	if hex, ok := strings.CutPrefix(s, "#"); ok {
		c, err := parseHex(hex)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		return c, nil
	}

	name, args, ok := strings.Cut(s, "(")
	if !ok || !strings.HasSuffix(args, ")") {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, errBadColor)
	}
	fields := strings.FieldsFunc(strings.TrimSuffix(args, ")"), func(r rune) bool {
		return (r == ',') || (r == '/') || (r == ' ')
	})

	var c color.NRGBA
	var err error
	switch strings.TrimSpace(name) {
	case "rgb", "rgba":
		c, err = parseRGB(fields)
	case "hsl", "hsla":
		c, err = parseHSL(fields)
	default:
		err = errBadColor
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return c, nil
}

func parseHex(hex string) (color.NRGBA, error) {
	var n int
	alpha := false
	switch len(hex) {
	case 3, 6, 9, 12:
		n = len(hex) / 3
	case 4, 8:
		n = len(hex) / 4
		alpha = true
	default:
		return color.NRGBA{}, errBadColor
	}

	top := float64(uint64(1)<<(4*n) - 1)
	channel := func(i int) (uint8, error) {
		v, err := strconv.ParseUint(hex[i*n:(i+1)*n], 16, 16)
		if err != nil {
			return 0, err
		}
		return uint8(math.Round(float64(v) * 255 / top)), nil
	}

	c := color.NRGBA{A: 0xFF}
	dst := []*uint8{&c.R, &c.G, &c.B, &c.A}
	if !alpha {
		dst = dst[:3]
	}
	for i, p := range dst {
		v, err := channel(i)
		if err != nil {
			return color.NRGBA{}, err
		}
		*p = v
	}
	return c, nil
}

// parseNumber parses a number or percentage. Percentages are scaled so
// that 100% is scale.
func parseNumber(s string, scale float64) (float64, error) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(p, 64)
		return v / 100 * scale, err
	}
	return strconv.ParseFloat(s, 64)
}

func clampByte(v float64) uint8 {
	return uint8(math.Round(min(max(v, 0), 255)))
}

func parseAlpha(fields []string) (uint8, error) {
	if len(fields) < 4 {
		return 0xFF, nil
	}
	a, err := parseNumber(fields[3], 1)
	if err != nil {
		return 0, err
	}
	return clampByte(a * 255), nil
}

func parseRGB(fields []string) (color.NRGBA, error) {
	if (len(fields) != 3) && (len(fields) != 4) {
		return color.NRGBA{}, errBadColor
	}

	var rgb [3]uint8
	for i := range rgb {
		v, err := parseNumber(fields[i], 255)
		if err != nil {
			return color.NRGBA{}, err
		}
		rgb[i] = clampByte(v)
	}
	a, err := parseAlpha(fields)
	if err != nil {
		return color.NRGBA{}, err
	}

	return color.NRGBA{rgb[0], rgb[1], rgb[2], a}, nil
}

func parseHSL(fields []string) (color.NRGBA, error) {
	if (len(fields) != 3) && (len(fields) != 4) {
		return color.NRGBA{}, errBadColor
	}

	h, err := strconv.ParseFloat(strings.TrimSuffix(fields[0], "deg"), 64)
	if err != nil {
		return color.NRGBA{}, err
	}
	s, err := parseNumber(fields[1], 1)
	if err != nil {
		return color.NRGBA{}, err
	}
	l, err := parseNumber(fields[2], 1)
	if err != nil {
		return color.NRGBA{}, err
	}
	a, err := parseAlpha(fields)
	if err != nil {
		return color.NRGBA{}, err
	}

	h = math.Mod(math.Mod(h, 360)+360, 360) / 360
	s = min(max(s, 0), 1)
	l = min(max(l, 0), 1)

	q := l + s - l*s
	if l < 0.5 {
		q = l * (1 + s)
	}
	p := 2*l - q

	return color.NRGBA{
		R: clampByte(hue(p, q, h+1.0/3) * 255),
		G: clampByte(hue(p, q, h) * 255),
		B: clampByte(hue(p, q, h-1.0/3) * 255),
		A: a,
	}, nil
}

func hue(p, q, t float64) float64 {
	switch {
	case t < 0:
		t++
	case t > 1:
		t--
	}

	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}
