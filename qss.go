/*
Package qss implements loading and resolution of widget stylesheets.

A stylesheet maps selectors of the shape

	WidgetType#Identifier[:state[:state…]]

to blocks of visual properties (margins, border, background, text color,
padding). Package qss turns a parsed stylesheet into an immutable RuleSet
and answers, for a widget identifier and an interaction state, the question
"what does this widget look like right now": a fully populated
PaintDescription ready to be applied by the host GUI toolkit.

The resolver is a pure function of the rule set. Interaction state
transitions (hover, checked) are driven entirely by the host toolkit; this
package only describes their appearance. Rule data is loaded once and never
mutated, so resolution may be called concurrently from multiple render
passes without coordination.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package qss

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'qss.resolve'.
func tracer() tracing.Trace {
	return tracing.Select("qss.resolve")
}
