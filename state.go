package qss

import (
	"fmt"
	"strings"
)

// State is the interaction state of a widget, as managed by the host GUI
// toolkit. A rule set holds at most one rule per widget and state.
type State uint8

// Enum values for type State.
const (
	Default State = iota
	Hover
	Checked
	CheckedHover
	numStates
)

var stateNames = map[State]string{
	Default:      "default",
	Hover:        "hover",
	Checked:      "checked",
	CheckedHover: "checked:hover",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", s)
}

// ParseState reads a state name as used in selectors and on the command
// line: "default", "hover", "checked" or "checked:hover".
func ParseState(name string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return Default, nil
	case "hover":
		return Hover, nil
	case "checked":
		return Checked, nil
	case "checked:hover", "checkedhover", "hover:checked":
		return CheckedHover, nil
	}
	return Default, fmt.Errorf("unknown widget state %q", name)
}

// The four transitions below mirror the state machine the toolkit drives
// per widget instance. They are provided for hosts which want to track
// states themselves; the resolver never calls them.

// PointerEnter is the state after the pointer entered the widget.
func (s State) PointerEnter() State {
	switch s {
	case Default:
		return Hover
	case Checked:
		return CheckedHover
	}
	return s
}

// PointerLeave is the state after the pointer left the widget.
func (s State) PointerLeave() State {
	switch s {
	case Hover:
		return Default
	case CheckedHover:
		return Checked
	}
	return s
}

// ToggleOn is the state after the widget has been toggled on.
func (s State) ToggleOn() State {
	switch s {
	case Default:
		return Checked
	case Hover:
		return CheckedHover
	}
	return s
}

// ToggleOff is the state after the widget has been toggled off.
func (s State) ToggleOff() State {
	switch s {
	case Checked:
		return Default
	case CheckedHover:
		return Hover
	}
	return s
}

// IsChecked returns wether s includes the checked flag.
func (s State) IsChecked() bool {
	return s == Checked || s == CheckedHover
}

// IsHovered returns wether s includes the hover flag.
func (s State) IsHovered() bool {
	return s == Hover || s == CheckedHover
}
