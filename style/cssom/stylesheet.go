/*
Package cssom matches CSS style sheets against HTML nodes.

CSSOM is the "CSS Object Model", similar to the DOM for HTML. Selectors are
compiled and matched with https://godoc.org/github.com/andybalholm/cascadia.
CSS parsing is de-coupled by introducing interfaces StyleSheet and Rule.
A concrete implementation may be found in sub-package douceuradapter.

The cascade implemented here is a subset of CSS: rules from a style sheet
of origin UserAgent lose against rules of origin Author, which lose
against inline styles. Within an origin, rules are ordered by selector
specificity, then by the order in which they have been added.
Declarations marked '!important' win against normal ones.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import (
	"github.com/npillmayer/flexbox/style"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flexbox.style'.
func tracer() tracing.Trace {
	return tracing.Select("flexbox.style")
}

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// construction of the box tree, we introduce an interface
// for CSS stylesheets. Clients will have to provide a concrete
// implementation of this interface (e.g., see package douceuradapter).
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
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
}
