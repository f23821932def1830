package qss

import (
	"fmt"
	"strings"
)

// Selector identifies which widget and state a rule applies to, e.g.
//
//	QPushButton#PaneButton:checked:hover
//
// selects the widget with identifier "PaneButton" of class "QPushButton"
// in state CheckedHover.
type Selector struct {
	Type  string // widget class, e.g. "QPushButton"
	ID    string // widget identifier, e.g. "PaneButton"
	State State
}

func (sel Selector) String() string {
	s := sel.Type + "#" + sel.ID
	if sel.State != Default {
		s += ":" + sel.State.String()
	}
	return s
}

// ParseSelector parses a single selector. The widget class and the
// identifier are both required; pseudo-state suffixes are optional and
// limited to ":hover" and ":checked" (in any order).
func ParseSelector(sel string) (Selector, error) {
	sel = strings.TrimSpace(sel)
	typ, rest, found := strings.Cut(sel, "#")
	if !found {
		return Selector{}, fmt.Errorf("selector %q: missing '#' identifier part", sel)
	}
	if typ == "" || !isIdent(typ) {
		return Selector{}, fmt.Errorf("selector %q: invalid widget class %q", sel, typ)
	}
	parts := strings.Split(rest, ":")
	id := parts[0]
	if id == "" || !isIdent(id) {
		return Selector{}, fmt.Errorf("selector %q: invalid widget identifier %q", sel, id)
	}
	var hover, checked bool
	for _, pseudo := range parts[1:] {
		switch strings.ToLower(pseudo) {
		case "hover":
			hover = true
		case "checked":
			checked = true
		default:
			return Selector{}, fmt.Errorf("selector %q: unsupported state %q", sel, pseudo)
		}
	}
	state := Default
	switch {
	case hover && checked:
		state = CheckedHover
	case hover:
		state = Hover
	case checked:
		state = Checked
	}
	return Selector{Type: typ, ID: id, State: state}, nil
}

func isIdent(s string) bool {
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '_':
		case r >= '0' && r <= '9' || r == '-':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
