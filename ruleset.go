package qss

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mhofstett/qss/gradient"
	"github.com/mhofstett/qss/style"
	"github.com/mhofstett/qss/style/qssom"
)

// ErrUnknownWidget flags a resolution request for a widget identifier no
// rule in the set refers to. Handling it is the caller's responsibility;
// hosts typically apply the toolkit default silently.
var ErrUnknownWidget = errors.New("unknown widget identifier")

// RuleSet is an immutable set of style rules, indexed by widget identifier
// and interaction state. A rule set is constructed once from a stylesheet
// and is safe for concurrent use: resolution never mutates it.
type RuleSet struct {
	widgets  map[string]*widgetStyles
	defaults *style.PropertyMap
}

// widgetStyles collects the per-state property maps of one widget,
// together with the paint descriptions computed from them. Computing the
// paints at load time makes Resolve a pure lookup.
type widgetStyles struct {
	id     string
	typ    string
	states [numStates]*style.PropertyMap
	paints [numStates]PaintDescription
}

// NewRuleSet builds an immutable rule set from a parsed stylesheet.
//
// Load-time policy:
//   - a second rule for the same (widget, state) pair is an error,
//   - a rule whose background gradient violates the stop invariants is
//     rejected as a whole (resolution falls back as if it were absent),
//   - other malformed declaration values are dropped individually,
//   - declarations with unknown property keys are kept in the extension
//     group but do not surface in paint descriptions.
func NewRuleSet(sheet qssom.StyleSheet) (*RuleSet, error) {
	rs := &RuleSet{
		widgets:  make(map[string]*widgetStyles),
		defaults: style.ToolkitDefaults(),
	}
	if sheet == nil || sheet.Empty() {
		return rs, nil
	}
	for _, rule := range sheet.Rules() {
		for _, sel := range strings.Split(rule.Selector(), ",") {
			selector, err := ParseSelector(sel)
			if err != nil {
				return nil, err
			}
			if err := rs.ingest(selector, rule); err != nil {
				return nil, err
			}
		}
	}
	for _, w := range rs.widgets {
		for s := Default; s < numStates; s++ {
			w.paints[s] = rs.computePaint(w, s)
		}
	}
	return rs, nil
}

// ingest adds one rule under one selector to the rule set.
func (rs *RuleSet) ingest(sel Selector, rule qssom.Rule) error {
	w := rs.widgets[sel.ID]
	if w == nil {
		w = &widgetStyles{id: sel.ID, typ: sel.Type}
		rs.widgets[sel.ID] = w
	} else if w.typ != sel.Type {
		return fmt.Errorf("widget %q selected as both %q and %q", sel.ID, w.typ, sel.Type)
	}
	if w.states[sel.State] != nil {
		return fmt.Errorf("duplicate rule for %s", sel)
	}
	pmap := style.NewPropertyMap()
	for _, key := range rule.Properties() {
		value := rule.Value(key)
		kvs, err := expandDeclaration(key, value)
		if err != nil {
			if errors.Is(err, gradient.ErrInvalidSpec) {
				// reject the whole rule, fallback applies
				tracer().Errorf("rule %s rejected: %v", sel, err)
				return nil
			}
			tracer().Errorf("rule %s: dropping %s: %v", sel, key, err)
			continue
		}
		for _, kv := range kvs {
			pmap.Add(kv.Key, kv.Value)
		}
	}
	w.states[sel.State] = pmap
	return nil
}

// expandDeclaration splits shorthands and validates a declaration's value.
func expandDeclaration(key string, value style.Property) ([]style.KeyValue, error) {
	switch key {
	case "margin", "padding", "border":
		kvs, err := style.SplitCompoundProperty(key, value)
		if err != nil {
			return nil, err
		}
		for _, kv := range kvs {
			if err := checkDeclaration(kv.Key, kv.Value); err != nil {
				return nil, err
			}
		}
		return kvs, nil
	}
	if err := checkDeclaration(key, value); err != nil {
		return nil, err
	}
	return []style.KeyValue{{Key: key, Value: value}}, nil
}

func checkDeclaration(key string, value style.Property) error {
	switch style.GroupNameFromPropertyKey(key) {
	case style.PGMargins, style.PGPadding:
		_, err := value.Px()
		return err
	case style.PGBorder:
		switch key {
		case "border-width":
			_, err := value.Px()
			return err
		case "border-color":
			_, err := value.Color()
			return err
		case "border-style":
			if !style.IsBorderStyle(value.String()) {
				return fmt.Errorf("invalid border style %q", value)
			}
		}
	case style.PGColor:
		if key == "background-color" {
			_, err := Background(value)
			return err
		}
		_, err := value.Color()
		return err
	case style.PGText:
		switch value {
		case "left", "right", "center":
		default:
			return fmt.Errorf("invalid text alignment %q", value)
		}
	default:
		tracer().Infof("unknown property %q kept in extension group", key)
	}
	return nil
}

// fallbackChain returns the property maps consulted for a state, most
// specific first. The precedence for CheckedHover is an explicit design
// choice: the checked face wins over the plain hover face.
func (w *widgetStyles) fallbackChain(s State) []*style.PropertyMap {
	switch s {
	case CheckedHover:
		return []*style.PropertyMap{w.states[CheckedHover], w.states[Checked], w.states[Default]}
	case Default:
		return []*style.PropertyMap{w.states[Default]}
	}
	return []*style.PropertyMap{w.states[s], w.states[Default]}
}

// lookup walks a widget's fallback chain for a property key, ending at the
// toolkit defaults, which hold every supported key.
func (rs *RuleSet) lookup(w *widgetStyles, s State, key string) style.Property {
	for _, pmap := range w.fallbackChain(s) {
		if pmap == nil {
			continue
		}
		if p, ok := pmap.Property(key); ok {
			return p
		}
	}
	p, _ := rs.defaults.Property(key)
	return p
}

// computePaint assembles the fully populated paint description for one
// widget and state. All values have been validated at ingestion, so the
// conversions cannot fail; should one slip through regardless, the zero
// value is used.
func (rs *RuleSet) computePaint(w *widgetStyles, s State) PaintDescription {
	var paint PaintDescription
	paint.Margins = rs.box(w, s, "margin")
	paint.Padding = rs.box(w, s, "padding")
	paint.Border.Width, _ = rs.lookup(w, s, "border-width").Px()
	paint.Border.Style = rs.lookup(w, s, "border-style").String()
	paint.Border.Color, _ = rs.lookup(w, s, "border-color").Color()
	paint.Background, _ = Background(rs.lookup(w, s, "background-color"))
	paint.TextColor, _ = rs.lookup(w, s, "color").Color()
	paint.TextAlign = rs.lookup(w, s, "text-align").String()
	return paint
}

func (rs *RuleSet) box(w *widgetStyles, s State, prefix string) Box {
	var b Box
	b.Top, _ = rs.lookup(w, s, prefix+"-top").Px()
	b.Right, _ = rs.lookup(w, s, prefix+"-right").Px()
	b.Bottom, _ = rs.lookup(w, s, prefix+"-bottom").Px()
	b.Left, _ = rs.lookup(w, s, prefix+"-left").Px()
	return b
}

// --- Resolution ------------------------------------------------------------

// Resolve looks up the paint description for a widget identifier in a
// given interaction state. Pure: identical inputs yield identical outputs,
// and no state is touched.
//
// An identifier no rule refers to returns ErrUnknownWidget; how to react
// (typically: apply the toolkit default silently) is the host's decision.
func (rs *RuleSet) Resolve(widgetID string, state State) (PaintDescription, error) {
	w, ok := rs.widgets[widgetID]
	if !ok {
		return PaintDescription{}, fmt.Errorf("%w: %q", ErrUnknownWidget, widgetID)
	}
	if state >= numStates {
		state = Default
	}
	return w.paints[state], nil
}

// --- Introspection ---------------------------------------------------------

// Empty returns wether the rule set contains any rules.
func (rs *RuleSet) Empty() bool {
	return len(rs.widgets) == 0
}

// WidgetIDs returns the identifiers of all widgets the rule set styles,
// in lexicographic order.
func (rs *RuleSet) WidgetIDs() []string {
	ids := make([]string, 0, len(rs.widgets))
	for id := range rs.widgets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// WidgetType returns the widget class an identifier was selected with.
func (rs *RuleSet) WidgetType(widgetID string) (string, bool) {
	w, ok := rs.widgets[widgetID]
	if !ok {
		return "", false
	}
	return w.typ, true
}

// StyleMap returns the property map a rule in the set defined for
// (widgetID, state), or nil if no such rule exists. Intended for debugging
// helpers; resolution goes through Resolve.
func (rs *RuleSet) StyleMap(widgetID string, state State) *style.PropertyMap {
	w, ok := rs.widgets[widgetID]
	if !ok || state >= numStates {
		return nil
	}
	return w.states[state]
}
