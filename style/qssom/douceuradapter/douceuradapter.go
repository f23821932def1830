/*
Package douceuradapter is a concrete implementation of interface qssom.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package douceuradapter

import (
	"fmt"
	"io"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/gorilla/css/scanner"
	"github.com/mhofstett/qss/style"
	"github.com/mhofstett/qss/style/qssom"
)

// ParseError is returned for malformed stylesheet syntax. Line and Column
// locate the offending token where the tokenizer could tell; a location of
// 0:0 means the parser rejected the input on a grammar level.
type ParseError struct {
	Line   int
	Column int
	msg    string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("stylesheet syntax error at %d:%d: %s", e.Line, e.Column, e.msg)
	}
	return "stylesheet syntax error: " + e.msg
}

// Parse parses stylesheet source text into a QSSStyles sheet.
// Malformed syntax is reported as a *ParseError; the policy of falling
// back to toolkit defaults is owned by the host.
func Parse(source string) (*QSSStyles, error) {
	if err := scanForErrors(source); err != nil {
		return nil, err
	}
	sheet, err := parser.Parse(source)
	if err != nil {
		return nil, &ParseError{msg: err.Error()}
	}
	return Wrap(sheet), nil
}

// ParseReader reads stylesheet source from r and parses it.
func ParseReader(r io.Reader) (*QSSStyles, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(source))
}

// scanForErrors runs the tokenizer over the complete input before handing
// it to the parser. The parser reports errors without positions, the
// tokenizer knows line and column.
func scanForErrors(source string) error {
	s := scanner.New(source)
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			return nil
		case scanner.TokenError:
			return &ParseError{Line: tok.Line, Column: tok.Column, msg: tok.Value}
		}
	}
}

// QSSStyles is an adapter for interface qssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface qssom.StyleSheet.
type QSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur css.Stylesheet into QSSStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *QSSStyles {
	sheet := &QSSStyles{*css}
	return sheet
}

// Empty checks if this stylesheet contains any rules.
//
// Interface qssom.StyleSheet
func (sheet *QSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface qssom.StyleSheet
func (sheet *QSSStyles) AppendRules(other qssom.StyleSheet) {
	othercss := other.(*QSSStyles)
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns all the rules of a stylesheet.
//
// Interface qssom.StyleSheet
func (sheet *QSSStyles) Rules() []qssom.Rule {
	rules := make([]qssom.Rule, len(sheet.css.Rules))
	for i := range sheet.css.Rules {
		r := sheet.css.Rules[i]
		rules[i] = Rule(*r)
	}
	return rules
}

var _ qssom.StyleSheet = &QSSStyles{}

// Rule is an adapter for interface qssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property value for given key with this rule, e.g. "3px"
func (r Rule) Value(key string) style.Property {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return style.Property(d.Value)
		}
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

var _ qssom.Rule = Rule{}
