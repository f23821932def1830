/*
Package gradient implements linear gradient specifications for widget
backgrounds.

A linear gradient is defined by an axis, given as fractional start and end
coordinates within the widget's rectangle, and an ordered sequence of color
stops. Stop offsets are fractions in [0,1] along the axis and must be
non-decreasing; specs violating these invariants are rejected during
stylesheet loading.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package gradient

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// ErrInvalidSpec flags a gradient specification violating the stop
// invariants. Errors returned from Validate wrap it.
var ErrInvalidSpec = errors.New("invalid gradient specification")

// Stop is a gradient color stop: a color transition point along the
// gradient axis.
type Stop struct {
	Offset float64 // fraction in [0,1] along the axis
	Color  color.RGBA
}

// Linear is a linear gradient spec. (X1,Y1) and (X2,Y2) are the start and
// end points of the gradient axis, as fractions of the widget rectangle.
type Linear struct {
	X1, Y1 float64
	X2, Y2 float64
	Stops  []Stop
}

// Validate checks the gradient invariants: at least two stops, all stop
// offsets within [0,1] and non-decreasing, axis coordinates within [0,1].
func (l Linear) Validate() error {
	for _, c := range [4]float64{l.X1, l.Y1, l.X2, l.Y2} {
		if c < 0 || c > 1 {
			return fmt.Errorf("%w: axis coordinate %g outside [0,1]", ErrInvalidSpec, c)
		}
	}
	if len(l.Stops) < 2 {
		return fmt.Errorf("%w: need at least 2 stops, have %d", ErrInvalidSpec, len(l.Stops))
	}
	prev := 0.0
	for i, stop := range l.Stops {
		if stop.Offset < 0 || stop.Offset > 1 {
			return fmt.Errorf("%w: stop offset %g outside [0,1]", ErrInvalidSpec, stop.Offset)
		}
		if i > 0 && stop.Offset < prev {
			return fmt.Errorf("%w: stop offsets decrease at %g after %g",
				ErrInvalidSpec, stop.Offset, prev)
		}
		prev = stop.Offset
	}
	return nil
}

func (l Linear) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "linear (%g,%g)→(%g,%g)", l.X1, l.Y1, l.X2, l.Y2)
	for _, stop := range l.Stops {
		fmt.Fprintf(&sb, " %g:#%02x%02x%02x%02x", stop.Offset,
			stop.Color.R, stop.Color.G, stop.Color.B, stop.Color.A)
	}
	return sb.String()
}

// IsGradient returns wether a property value denotes a linear gradient,
// in either the toolkit form "qlineargradient(…)" or the CSS form
// "linear-gradient(…)".
func IsGradient(value string) bool {
	value = strings.TrimSpace(value)
	return strings.HasPrefix(value, "qlineargradient(") ||
		strings.HasPrefix(value, "linear-gradient(")
}
