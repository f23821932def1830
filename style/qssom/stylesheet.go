package qssom

import "github.com/mhofstett/qss/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of stylesheets from the
// construction of rule sets, we introduce an interface for stylesheets.
// Clients of the style resolver will have to provide a concrete
// implementation of this interface (e.g., see package douceuradapter).
//
// Having this interface imposes a performance hit. However, this
// implementation of widget styling will never trade modularity and
// clarity for performance: stylesheets in this domain hold a handful of
// rules and are loaded exactly once.
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "3px"
	IsImportant(string) bool     // is property key marked as important?
}
