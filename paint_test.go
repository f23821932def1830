package qss_test

import (
	"image/color"
	"testing"

	"github.com/mhofstett/qss"
	"github.com/mhofstett/qss/gradient"
)

func TestBackgroundBasic(t *testing.T) {
	b, err := qss.Background("rgba(255, 255, 255, 255)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var c color.RGBA
	switch m := b.Match(); m {
	case m.Solid(&c):
		t.Logf("solid background %v", c)
	default:
		t.Errorf("expected a solid background, isn't: %#v", b)
	}
	if c != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("expected solid white, is %v", c)
	}

	unset := qss.BackgroundT{}
	switch m := unset.Match(); m {
	case m.IsKind(qss.BackgroundT{}):
		t.Logf("background is unset")
	default:
		t.Errorf("expected zero background to match kind(unset), doesn't")
	}
}

func TestBackgroundGradient(t *testing.T) {
	b, err := qss.Background("qlineargradient(x1: 0, y1: 0, x2: 0, y2: 1, stop: 0 white, stop: 1 black)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.IsGradient() {
		t.Fatalf("expected a gradient background, isn't: %#v", b)
	}
	var l gradient.Linear
	if m := b.Match(); m.Gradient(&l) == nil {
		t.Fatal("expected gradient matcher to succeed, didn't")
	}
	if len(l.Stops) != 2 {
		t.Errorf("expected 2 stops, have %d", len(l.Stops))
	}
}

func TestBackgroundPattern(t *testing.T) {
	b, err := qss.Background("rgb(240, 244, 249)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := qss.BackgroundPattern[int](b)
	out := m.OneOf(qss.BackgroundPatterns[int]{
		Unset:   0,
		Solid:   99,
		Default: -1,
	})
	if out != 99 {
		t.Errorf("expected out to be 99, isn't: %#v", out)
	}
}

func TestBackgroundRejectsInvalidGradient(t *testing.T) {
	_, err := qss.Background("qlineargradient(x1: 0, y1: 0, x2: 0, y2: 1, stop: 0.8 white, stop: 0.2 black)")
	if err == nil {
		t.Error("expected non-monotonic stops to be rejected, aren't")
	}
}
