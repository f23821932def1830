package gradient

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mhofstett/qss/style"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'qss.gradient'.
func tracer() tracing.Trace {
	return tracing.Select("qss.gradient")
}

// Parse parses a linear gradient property value. Two syntactic forms are
// accepted:
//
//	qlineargradient(x1: 0, y1: 0, x2: 0, y2: 1,
//	    stop: 0 rgba(255, 255, 255, 255), stop: 1 rgba(211, 222, 239, 255))
//
// is the toolkit form, with an explicit axis and fractional stop offsets,
// and
//
//	linear-gradient(to bottom, rgba(255, 255, 255, 255) 0%, white 100%)
//
// is the CSS form, with a direction keyword and percentage offsets.
//
// Parse reports syntax problems; the stop invariants are checked
// separately, see Linear.Validate.
func Parse(value string) (Linear, error) {
	value = strings.TrimSpace(value)
	switch {
	case strings.HasPrefix(value, "qlineargradient("):
		return parseQLinear(innerArgs(value))
	case strings.HasPrefix(value, "linear-gradient("):
		return parseCSSLinear(innerArgs(value))
	}
	return Linear{}, fmt.Errorf("not a linear gradient: %q", value)
}

// innerArgs strips the function name and the outer parentheses.
func innerArgs(value string) string {
	open := strings.IndexByte(value, '(')
	value = value[open+1:]
	value = strings.TrimSuffix(strings.TrimSpace(value), ")")
	return value
}

// splitArgs splits a parameter list at top-level commas, leaving commas
// inside rgb(…)/rgba(…) literals alone.
func splitArgs(args string) []string {
	var parts []string
	depth, mark := 0, 0
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(args[mark:i]))
				mark = i + 1
			}
		}
	}
	if rest := strings.TrimSpace(args[mark:]); rest != "" {
		parts = append(parts, rest)
	}
	return parts
}

func parseQLinear(args string) (Linear, error) {
	var l Linear
	for _, par := range splitArgs(args) {
		key, rest, found := strings.Cut(par, ":")
		if !found {
			return l, fmt.Errorf("malformed gradient parameter %q", par)
		}
		key = strings.TrimSpace(key)
		rest = strings.TrimSpace(rest)
		switch key {
		case "x1", "y1", "x2", "y2":
			f, err := strconv.ParseFloat(rest, 64)
			if err != nil {
				return l, fmt.Errorf("invalid axis coordinate %q", par)
			}
			switch key {
			case "x1":
				l.X1 = f
			case "y1":
				l.Y1 = f
			case "x2":
				l.X2 = f
			case "y2":
				l.Y2 = f
			}
		case "stop":
			stop, err := parseStop(rest)
			if err != nil {
				return l, err
			}
			l.Stops = append(l.Stops, stop)
		case "spread":
			// pad is the only spread this corpus uses
			tracer().Debugf("ignoring gradient spread %q", rest)
		default:
			return l, fmt.Errorf("unknown gradient parameter %q", key)
		}
	}
	return l, nil
}

// parseStop parses the offset+color part of a stop parameter, e.g.
// "0.4 rgba(111, 130, 164, 255)".
func parseStop(arg string) (Stop, error) {
	offs, colorlit, found := strings.Cut(arg, " ")
	if !found {
		return Stop{}, fmt.Errorf("malformed gradient stop %q", arg)
	}
	off, err := readFraction(offs)
	if err != nil {
		return Stop{}, fmt.Errorf("invalid stop offset %q", offs)
	}
	c, err := style.ParseColor(strings.TrimSpace(colorlit))
	if err != nil {
		return Stop{}, err
	}
	return Stop{Offset: off, Color: c}, nil
}

func parseCSSLinear(args string) (Linear, error) {
	l := Linear{Y2: 1} // CSS default direction is top → bottom
	parts := splitArgs(args)
	for i, par := range parts {
		if i == 0 && strings.HasPrefix(par, "to ") {
			if err := setAxisFromSides(&l, strings.Fields(par[3:])); err != nil {
				return l, err
			}
			continue
		}
		stop, err := parseCSSStop(par, len(l.Stops) == 0, i == len(parts)-1)
		if err != nil {
			return l, err
		}
		l.Stops = append(l.Stops, stop)
	}
	return l, nil
}

func setAxisFromSides(l *Linear, sides []string) error {
	l.X1, l.Y1, l.X2, l.Y2 = 0, 0, 0, 0
	for _, side := range sides {
		switch side {
		case "bottom":
			l.Y1, l.Y2 = 0, 1
		case "top":
			l.Y1, l.Y2 = 1, 0
		case "right":
			l.X1, l.X2 = 0, 1
		case "left":
			l.X1, l.X2 = 1, 0
		default:
			return fmt.Errorf("invalid gradient direction %q", side)
		}
	}
	return nil
}

// parseCSSStop parses a CSS color stop, e.g. "rgba(255, 255, 255, 255) 40%".
// The offset may be omitted on the first and last stop only, defaulting to
// 0% and 100%.
func parseCSSStop(par string, first, last bool) (Stop, error) {
	cut := len(par)
	depth := 0
	for i := 0; i < len(par); i++ {
		switch par[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ' ':
			if depth == 0 {
				cut = i
			}
		}
	}
	colorlit, offs := par, ""
	if cut < len(par) {
		colorlit, offs = par[:cut], strings.TrimSpace(par[cut+1:])
	}
	c, err := style.ParseColor(colorlit)
	if err != nil {
		return Stop{}, err
	}
	if offs == "" {
		switch {
		case first:
			return Stop{Offset: 0, Color: c}, nil
		case last:
			return Stop{Offset: 1, Color: c}, nil
		}
		return Stop{}, fmt.Errorf("gradient stop %q needs an explicit offset", par)
	}
	off, err := readFraction(offs)
	if err != nil {
		return Stop{}, fmt.Errorf("invalid stop offset %q", offs)
	}
	return Stop{Offset: off, Color: c}, nil
}

// readFraction reads a decimal value, optionally given as a percentage.
func readFraction(v string) (float64, error) {
	v = strings.TrimSpace(v)
	d := 1.0
	if strings.HasSuffix(v, "%") {
		d = 100
		v = strings.TrimSuffix(v, "%")
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	return f / d, nil
}
