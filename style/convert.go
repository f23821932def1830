package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// A small set of named colors, sufficient for the stylesheets of this
// module. Everything else has to be written as #rrggbb, rgb(…) or rgba(…).
var namedColors = map[string]color.RGBA{
	"white":       {0xff, 0xff, 0xff, 0xff},
	"black":       {0, 0, 0, 0xff},
	"red":         {0xff, 0, 0, 0xff},
	"green":       {0, 0xff, 0, 0xff},
	"blue":        {0, 0, 0xff, 0xff},
	"gray":        {0x80, 0x80, 0x80, 0xff},
	"grey":        {0x80, 0x80, 0x80, 0xff},
	"transparent": {0, 0, 0, 0},
}

// ParseColor parses a stylesheet color literal: a named color, a
// hex literal "#rgb" or "#rrggbb", or a functional literal "rgb(r, g, b)" /
// "rgba(r, g, b, a)". Channel values are integers in 0…255; the alpha
// channel of rgba(…) may alternatively be given as a fraction in 0…1.
func ParseColor(lit string) (color.RGBA, error) {
	lit = strings.TrimSpace(lit)
	if c, ok := namedColors[strings.ToLower(lit)]; ok {
		return c, nil
	}
	switch {
	case strings.HasPrefix(lit, "#"):
		return parseHexColor(lit)
	case strings.HasPrefix(lit, "rgba(") || strings.HasPrefix(lit, "rgb("):
		return parseFuncColor(lit)
	}
	return color.RGBA{}, fmt.Errorf("unrecognized color literal %q", lit)
}

func parseHexColor(lit string) (color.RGBA, error) {
	hex := lit[1:]
	var r, g, b uint64
	var err error
	switch len(hex) {
	case 3:
		r, err = strconv.ParseUint(strings.Repeat(hex[0:1], 2), 16, 8)
		if err == nil {
			g, err = strconv.ParseUint(strings.Repeat(hex[1:2], 2), 16, 8)
		}
		if err == nil {
			b, err = strconv.ParseUint(strings.Repeat(hex[2:3], 2), 16, 8)
		}
	case 6:
		r, err = strconv.ParseUint(hex[0:2], 16, 8)
		if err == nil {
			g, err = strconv.ParseUint(hex[2:4], 16, 8)
		}
		if err == nil {
			b, err = strconv.ParseUint(hex[4:6], 16, 8)
		}
	default:
		return color.RGBA{}, fmt.Errorf("hex color %q must have 3 or 6 digits", lit)
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", lit)
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), 0xff}, nil
}

func parseFuncColor(lit string) (color.RGBA, error) {
	open := strings.IndexByte(lit, '(')
	if !strings.HasSuffix(lit, ")") {
		return color.RGBA{}, fmt.Errorf("missing ')' in color literal %q", lit)
	}
	args := strings.Split(lit[open+1:len(lit)-1], ",")
	isRGBA := strings.HasPrefix(lit, "rgba")
	if (isRGBA && len(args) != 4) || (!isRGBA && len(args) != 3) {
		return color.RGBA{}, fmt.Errorf("wrong number of channels in %q", lit)
	}
	var ch [4]uint8
	ch[3] = 0xff
	for i, arg := range args {
		v, err := parseChannel(strings.TrimSpace(arg), i == 3)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("color literal %q: %w", lit, err)
		}
		ch[i] = v
	}
	return color.RGBA{ch[0], ch[1], ch[2], ch[3]}, nil
}

// parseChannel reads a single color channel value. The alpha channel may
// be a fraction in 0…1, as in CSS.
func parseChannel(arg string, alpha bool) (uint8, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 0 || n > 255 {
			return 0, fmt.Errorf("channel value %d out of range 0…255", n)
		}
		return uint8(n), nil
	}
	if alpha {
		if f, err := strconv.ParseFloat(arg, 64); err == nil && f >= 0 && f <= 1 {
			return uint8(f*255 + 0.5), nil
		}
	}
	return 0, fmt.Errorf("invalid channel value %q", arg)
}

// Color converts a property value to a color. Returns an error for
// malformed literals; gradients are not handled here (see package
// gradient).
func (p Property) Color() (color.RGBA, error) {
	return ParseColor(string(p))
}

// Px converts a pixel dimension like "3px" (or plain "3") to an integer
// number of device pixels.
func (p Property) Px() (int, error) {
	s := strings.TrimSuffix(strings.TrimSpace(string(p)), "px")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid pixel dimension %q", p)
	}
	return n, nil
}
