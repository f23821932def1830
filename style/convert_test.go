package style

import (
	"image/color"
	"testing"
)

func TestParseColorLiterals(t *testing.T) {
	cases := []struct {
		lit  string
		want color.RGBA
	}{
		{"white", color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{"transparent", color.RGBA{0, 0, 0, 0}},
		{"#ffffff", color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{"#40a", color.RGBA{0x44, 0x00, 0xaa, 0xff}},
		{"rgb(139, 153, 176)", color.RGBA{139, 153, 176, 0xff}},
		{"rgba(211, 222, 239, 255)", color.RGBA{211, 222, 239, 255}},
		{"rgba(0, 0, 0, 0.5)", color.RGBA{0, 0, 0, 128}},
	}
	for _, c := range cases {
		have, err := ParseColor(c.lit)
		if err != nil {
			t.Errorf("unexpected error for %q: %v", c.lit, err)
			continue
		}
		if have != c.want {
			t.Errorf("expected %q to parse as %v, is %v", c.lit, c.want, have)
		}
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, lit := range []string{
		"",
		"mauve-ish",
		"#12345",
		"rgb(1, 2)",
		"rgba(1, 2, 3)",
		"rgba(300, 0, 0, 255)",
		"rgb(1, 2, 3",
	} {
		if _, err := ParseColor(lit); err == nil {
			t.Errorf("expected %q to be rejected, isn't", lit)
		}
	}
}

func TestPropertyPx(t *testing.T) {
	p := Property("24px")
	n, err := p.Px()
	if err != nil || n != 24 {
		t.Errorf("expected 24px to convert to 24, is %d (err=%v)", n, err)
	}
	if _, err := Property("wide").Px(); err == nil {
		t.Error("expected 'wide' to be rejected as pixel dimension, isn't")
	}
}
