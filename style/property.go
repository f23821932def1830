package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'qss.style'
func tracer() tracing.Trace {
	return tracing.Select("qss.style")
}

// Property is a raw value for a stylesheet property. For example, with
//
//	color: white
//
// a property value of "white" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Property Groups --------------------------------------------------

// PropertyGroup is a collection of properties sharing a common topic.
// Stylesheets know a whole lot of properties. We split them up into
// organisatorial groups.
//
// The mapping of property into groups is documented with
// GroupNameFromPropertyKey[...].
type PropertyGroup struct {
	name      string
	propsDict map[string]Property
}

// NewPropertyGroup creates a new empty property group, given its name.
func NewPropertyGroup(groupname string) *PropertyGroup {
	pg := &PropertyGroup{}
	pg.name = groupname
	return pg
}

// Name returns the name of the property group. Once named (during
// construction), property groups may not be renamed.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

// Stringer for property groups; used for debugging.
func (pg *PropertyGroup) String() string {
	s := "[" + pg.name + "] =\n"
	for k, v := range pg.propsDict {
		s += fmt.Sprintf("  %s = %s\n", k, v)
	}
	return s
}

// Properties returns all properties of a group.
func (pg *PropertyGroup) Properties() []KeyValue {
	i := 0
	r := make([]KeyValue, len(pg.propsDict))
	for k, v := range pg.propsDict {
		r[i] = KeyValue{k, v}
		i++
	}
	return r
}

// IsSet is a predicate wether a property is set within this group.
func (pg *PropertyGroup) IsSet(key string) bool {
	if pg.propsDict == nil {
		return false
	}
	v, ok := pg.propsDict[key]
	return ok && !v.IsEmpty()
}

// Get a property's value.
func (pg *PropertyGroup) Get(key string) (Property, bool) {
	if pg.propsDict == nil {
		return NullStyle, false
	}
	p, ok := pg.propsDict[key]
	return p, ok
}

// Set a property's value. Overwrites an existing value, if present.
//
// Style property values are always converted to lower case, except
// color literals, which keep their case for readability in dumps.
func (pg *PropertyGroup) Set(key string, p Property) {
	if pg.name != PGColor {
		p = Property(strings.ToLower(string(p)))
	}
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	pg.propsDict[key] = p
}

// Add a property's value. Does not overwrite an existing value, i.e., does
// nothing if a value is already set.
func (pg *PropertyGroup) Add(key string, p Property) {
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	_, exists := pg.propsDict[key]
	if !exists {
		pg.propsDict[key] = p
	}
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//
//	GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}

// Symbolic names for string literals, denoting PropertyGroups.
const (
	PGMargins = "Margins"
	PGPadding = "Padding"
	PGBorder  = "Border"
	PGColor   = "Color"
	PGText    = "Text"
	PGX       = "X"
)

var groupNameFromPropertyKey = map[string]string{
	"margin-top":       PGMargins, // Margins
	"margin-left":      PGMargins,
	"margin-right":     PGMargins,
	"margin-bottom":    PGMargins,
	"padding-top":      PGPadding, // Padding
	"padding-left":     PGPadding,
	"padding-right":    PGPadding,
	"padding-bottom":   PGPadding,
	"border-width":     PGBorder, // Border
	"border-style":     PGBorder,
	"border-color":     PGBorder,
	"color":            PGColor, // Color
	"background-color": PGColor,
	"text-align":       PGText, // Text
}

// IsKnownPropertyKey returns wether a property key is part of the
// supported stylesheet vocabulary. Unknown keys are not an error during
// loading, but callers may want to trace them.
func IsKnownPropertyKey(key string) bool {
	_, ok := groupNameFromPropertyKey[key]
	return ok
}

// SplitCompoundProperty splits up a shorthand property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//
//	SplitCompoundProperty("margin", "3px 0px 0px 3px")
//
// will return
//
//	"margin-top"    => "3px"
//	"margin-right"  => "0px"
//	"margin-bottom" => "0px"
//	"margin-left"   => "3px"
//
// The border shorthand distributes onto border-width, border-style and
// border-color instead:
//
//	SplitCompoundProperty("border", "1px solid rgb(139, 153, 176)")
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	switch key {
	case "margin":
		return feazeCompound4("margin", fourDirs, strings.Fields(value.String()))
	case "padding":
		return feazeCompound4("padding", fourDirs, strings.Fields(value.String()))
	case "border":
		return feazeBorder(value.String())
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// Stylesheet logic to distribute individual values from compound
// shorthands, as for "margin: 10px 20px".
func feazeCompound4(pre string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s", pre)
	}
	r := make([]KeyValue, 4)
	r[0] = KeyValue{pre + "-" + dirs[0], Property(fields[0])}
	switch l {
	case 1:
		r[1] = KeyValue{pre + "-" + dirs[1], Property(fields[0])}
		r[2] = KeyValue{pre + "-" + dirs[2], Property(fields[0])}
		r[3] = KeyValue{pre + "-" + dirs[3], Property(fields[0])}
	case 2:
		r[1] = KeyValue{pre + "-" + dirs[1], Property(fields[1])}
		r[2] = KeyValue{pre + "-" + dirs[2], Property(fields[0])}
		r[3] = KeyValue{pre + "-" + dirs[3], Property(fields[1])}
	case 3:
		r[1] = KeyValue{pre + "-" + dirs[1], Property(fields[1])}
		r[2] = KeyValue{pre + "-" + dirs[2], Property(fields[2])}
		r[3] = KeyValue{pre + "-" + dirs[3], Property(fields[1])}
	case 4:
		r[1] = KeyValue{pre + "-" + dirs[1], Property(fields[1])}
		r[2] = KeyValue{pre + "-" + dirs[2], Property(fields[2])}
		r[3] = KeyValue{pre + "-" + dirs[3], Property(fields[3])}
	}
	return r, nil
}

// feazeBorder splits a "border: <width> <style> <color>" shorthand.
// The color component may contain spaces, as in "rgb(139, 153, 176)",
// so everything from the first color-ish token onwards is treated as
// the color value.
func feazeBorder(value string) ([]KeyValue, error) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return nil, fmt.Errorf("expecting values for border shorthand")
	}
	var r []KeyValue
	for i := 0; i < len(fields); i++ {
		f := fields[i]
		switch {
		case looksLikeColor(f):
			color := strings.Join(fields[i:], " ")
			r = append(r, KeyValue{"border-color", Property(color)})
			i = len(fields)
		case IsBorderStyle(f):
			r = append(r, KeyValue{"border-style", Property(f)})
		default:
			r = append(r, KeyValue{"border-width", Property(f)})
		}
	}
	return r, nil
}

func looksLikeColor(field string) bool {
	if strings.HasPrefix(field, "#") || strings.HasPrefix(field, "rgb(") ||
		strings.HasPrefix(field, "rgba(") {
		return true
	}
	_, ok := namedColors[field]
	return ok
}

// IsBorderStyle returns wether a token is one of the border line styles.
func IsBorderStyle(field string) bool {
	switch field {
	case "none", "solid", "dashed", "dotted", "double", "groove", "ridge",
		"inset", "outset":
		return true
	}
	return false
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}

// --- Property Map -----------------------------------------------------

// PropertyMap holds stylesheet properties. nil is a legal (empty) property
// map. A property map is the entity styling a widget in a given interaction
// state: zero or more property groups.
type PropertyMap struct {
	// We segment properties into logical groups
	m map[string]*PropertyGroup // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{}
}

func (pmap *PropertyMap) String() string {
	s := "Property Map = {\n"
	for _, v := range pmap.m {
		s += v.String()
	}
	s += "}"
	return s
}

// Size returns the number of property groups.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Group returns the property group for a group name or nil.
func (pmap *PropertyMap) Group(groupname string) *PropertyGroup {
	if pmap == nil {
		return nil
	}
	group := pmap.m[groupname]
	return group
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	groupname := GroupNameFromPropertyKey(key)
	group := pmap.Group(groupname)
	if group == nil {
		return NullStyle, false
	}
	return group.Get(key)
}

// Add adds a property to this property map, e.g.,
//
//	pm.Add("padding-left", "24px")
//
// Compound shorthands have to be split up beforehand, see
// SplitCompoundProperty.
func (pmap *PropertyMap) Add(key string, value Property) {
	if pmap == nil {
		return
	}
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	groupname := GroupNameFromPropertyKey(key)
	group, found := pmap.m[groupname]
	if !found {
		group = NewPropertyGroup(groupname)
		pmap.m[groupname] = group
	}
	group.Set(key, value)
}

// Groups returns the names of all property groups present in the map,
// mainly for debugging output.
func (pmap *PropertyMap) Groups() []string {
	if pmap == nil {
		return nil
	}
	names := make([]string, 0, len(pmap.m))
	for name := range pmap.m {
		names = append(names, name)
	}
	return names
}
