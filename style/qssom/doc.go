/*
Package qssom provides the object model for widget stylesheets.

Widget stylesheets use CSS-like syntax: selectors of the shape

	WidgetType#Identifier[:state[:state…]]

map to blocks of property declarations. This package does not parse
stylesheet text itself; it only defines the interfaces a parser has to
fulfill. A concrete implementation backed by the douceur CSS parser lives
in sub-package douceuradapter.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package qssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'qss.style'.
func tracer() tracing.Trace {
	return tracing.Select("qss.style")
}
