package qss

import (
	"image/color"
	"strings"

	"github.com/mhofstett/qss/gradient"
	"github.com/mhofstett/qss/style"
)

// PaintDescription is a resolved, concrete set of visual parameters for a
// widget in one interaction state, ready to be applied by the host
// toolkit's rendering surface. All fields are populated; the resolver
// guarantees a value for every property via its fallback chain.
type PaintDescription struct {
	Margins    Box
	Padding    Box
	Border     Border
	Background BackgroundT
	TextColor  color.RGBA
	TextAlign  string
}

// Box holds per-side pixel dimensions, used for margins and padding.
type Box struct {
	Top, Right, Bottom, Left int
}

// Border describes a widget's border line.
type Border struct {
	Width int
	Style string
	Color color.RGBA
}

// --- Background option type ------------------------------------------------

// background is an enum type for the kind of a widget background.
type background uint8

const (
	backgroundUnset    background = iota
	backgroundSolid               // single color fill
	backgroundGradient            // linear gradient fill
)

// BackgroundT is an option type for widget backgrounds.
//
//	type BackgroundT
//		= Unset
//		| Solid color
//		| Gradient linear
type BackgroundT struct {
	kind     background
	solid    color.RGBA
	gradient gradient.Linear
}

// SolidBackground creates a background of a single color.
func SolidBackground(c color.RGBA) BackgroundT {
	return BackgroundT{kind: backgroundSolid, solid: c}
}

// GradientBackground creates a linear-gradient background.
func GradientBackground(l gradient.Linear) BackgroundT {
	return BackgroundT{kind: backgroundGradient, gradient: l}
}

// Background converts a background-color property value into an optional
// background type. Gradient values are parsed and validated; everything
// else must be a color literal.
func Background(p style.Property) (BackgroundT, error) {
	value := strings.TrimSpace(p.String())
	if value == "" || value == "default" {
		return BackgroundT{}, nil
	}
	if gradient.IsGradient(value) {
		l, err := gradient.Parse(value)
		if err != nil {
			return BackgroundT{}, err
		}
		if err := l.Validate(); err != nil {
			return BackgroundT{}, err
		}
		return GradientBackground(l), nil
	}
	c, err := style.ParseColor(value)
	if err != nil {
		return BackgroundT{}, err
	}
	return SolidBackground(c), nil
}

// ---------------------------------------------------------------------------

func (b BackgroundT) Match() *BMatcher {
	return &BMatcher{bg: b}
}

type BMatcher struct {
	bg BackgroundT
}

func (m *BMatcher) IsKind(b BackgroundT) *BMatcher {
	if m.bg.kind == b.kind {
		return m
	}
	return nil
}

func (m *BMatcher) Solid(c *color.RGBA) *BMatcher {
	if m.bg.kind == backgroundSolid {
		if c != nil {
			*c = m.bg.solid
		}
		return m
	}
	return nil
}

func (m *BMatcher) Gradient(l *gradient.Linear) *BMatcher {
	if m.bg.kind == backgroundGradient {
		if l != nil {
			*l = m.bg.gradient
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

type BackgroundPatterns[T any] struct {
	Unset    T
	Solid    T
	Gradient T
	Default  T
}

func BackgroundPattern[T any](b BackgroundT) *BMatchExpr[T] {
	return &BMatchExpr[T]{bg: b}
}

// BMatchExpr is part of pattern matching for BackgroundT types and intended
// to be instantiated using `BackgroundPattern()` only.
type BMatchExpr[T any] struct {
	bg BackgroundT
}

func (m *BMatchExpr[T]) OneOf(patterns BackgroundPatterns[T]) T {
	switch m.bg.kind {
	case backgroundUnset:
		return patterns.Unset
	case backgroundSolid:
		return patterns.Solid
	case backgroundGradient:
		return patterns.Gradient
	}
	return patterns.Default
}

func (m *BMatchExpr[T]) WithSolid(c *color.RGBA) *BMatchExpr[T] {
	if c != nil {
		*c = m.bg.solid
	}
	return m
}

func (m *BMatchExpr[T]) WithGradient(l *gradient.Linear) *BMatchExpr[T] {
	if l != nil {
		*l = m.bg.gradient
	}
	return m
}

func (m *BMatchExpr[T]) Const(x T) T {
	return x
}

// ---------------------------------------------------------------------------

// IsUnset returns true if b is unset.
func (b BackgroundT) IsUnset() bool {
	return b.kind == backgroundUnset
}

// IsSolid returns true if b is a single-color background.
func (b BackgroundT) IsSolid() bool {
	return b.kind == backgroundSolid
}

// IsGradient returns true if b is a linear-gradient background.
func (b BackgroundT) IsGradient() bool {
	return b.kind == backgroundGradient
}
