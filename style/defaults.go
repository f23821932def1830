package style

// ToolkitDefaults creates a property map holding the built-in default
// values of the host GUI toolkit. It is the fallback of last resort during
// style resolution: every supported property key is guaranteed to be set,
// so a resolver chaining up to it will always produce a fully populated
// paint description.
func ToolkitDefaults() *PropertyMap {
	m := make(map[string]*PropertyGroup, 5)

	margins := NewPropertyGroup(PGMargins)
	margins.Set("margin-top", "0px")
	margins.Set("margin-left", "0px")
	margins.Set("margin-right", "0px")
	margins.Set("margin-bottom", "0px")
	m[PGMargins] = margins

	padding := NewPropertyGroup(PGPadding)
	padding.Set("padding-top", "0px")
	padding.Set("padding-left", "0px")
	padding.Set("padding-right", "0px")
	padding.Set("padding-bottom", "0px")
	m[PGPadding] = padding

	border := NewPropertyGroup(PGBorder)
	border.Set("border-width", "0px")
	border.Set("border-style", "none")
	border.Set("border-color", "black")
	m[PGBorder] = border

	color := NewPropertyGroup(PGColor)
	color.Set("color", "black")
	color.Set("background-color", "transparent")
	m[PGColor] = color

	text := NewPropertyGroup(PGText)
	text.Set("text-align", "left")
	m[PGText] = text

	return &PropertyMap{m}
}
