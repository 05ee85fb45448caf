package cssom

import (
	"errors"
	"fmt"
	"sort"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/flexbox/style"
	"golang.org/x/net/html"
)

// Origin is the source of a style rule.
type Origin uint8

// Origins in ascending order of precedence.
const (
	UserAgent Origin = iota
	Author
	Inline
)

// CSSOM holds the compiled rules of all style sheets known for a document.
// The zero value is an empty CSSOM, ready to use.
type CSSOM struct {
	rules []compiledRule
}

type compiledRule struct {
	selectors cascadia.SelectorGroup
	rule      Rule
	origin    Origin
	seq       int
}

// matchedRule is a rule which applies to a node.
type matchedRule struct {
	rule        Rule
	origin      Origin
	specificity cascadia.Specificity
	seq         int
}

// NewCSSOM creates an empty CSSOM.
func NewCSSOM() *CSSOM {
	return &CSSOM{}
}

// AddStylesForOrigin compiles the selectors of all rules of a style sheet.
// Rules with selectors cascadia cannot handle, e.g. pseudo-elements, are
// skipped and reported by the returned error; all other rules are added
// nevertheless.
func (om *CSSOM) AddStylesForOrigin(sheet StyleSheet, origin Origin) error {
	if sheet == nil || sheet.Empty() {
		return nil
	}
	var errs []error
	for _, r := range sheet.Rules() {
		group, err := cascadia.ParseGroup(r.Selector())
		if err != nil {
			tracer().Errorf("cssom: skipping rule %q: %v", r.Selector(), err)
			errs = append(errs, fmt.Errorf("selector %q: %w", r.Selector(), err))
			continue
		}
		om.rules = append(om.rules, compiledRule{
			selectors: group,
			rule:      r,
			origin:    origin,
			seq:       len(om.rules),
		})
	}
	tracer().Debugf("cssom: %d rules compiled", len(om.rules))
	return errors.Join(errs...)
}

// RuleCount returns the number of compiled rules.
func (om *CSSOM) RuleCount() int {
	return len(om.rules)
}

// Match returns the properties declared for an HTML element node by all
// rules matching it, with the cascade applied. inline holds the
// declarations of the node's style attribute and may be nil.
//
// Only declared values are returned. Inheritance and defaults are the
// job of the caller.
func (om *CSSOM) Match(node *html.Node, inline Rule) *style.PropertyMap {
	pmap := style.NewPropertyMap()
	if node == nil || node.Type != html.ElementNode {
		return pmap
	}
	var matched []matchedRule
	for _, cr := range om.rules {
		if spec, ok := matches(cr.selectors, node); ok {
			matched = append(matched, matchedRule{
				rule:        cr.rule,
				origin:      cr.origin,
				specificity: spec,
				seq:         cr.seq,
			})
		}
	}
	if inline != nil {
		matched = append(matched, matchedRule{rule: inline, origin: Inline, seq: len(om.rules)})
	}
	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.origin != b.origin {
			return a.origin < b.origin
		}
		if a.specificity != b.specificity {
			return a.specificity.Less(b.specificity)
		}
		return a.seq < b.seq
	})
	apply := func(important bool) {
		for _, m := range matched {
			for _, key := range m.rule.Properties() {
				if m.rule.IsImportant(key) == important {
					pmap.Add(key, m.rule.Value(key))
				}
			}
		}
	}
	apply(false)
	apply(true)
	return pmap
}

// matches returns the highest specificity of the selectors in group
// which match node.
func matches(group cascadia.SelectorGroup, node *html.Node) (cascadia.Specificity, bool) {
	var spec cascadia.Specificity
	found := false
	for _, sel := range group {
		if sel.Match(node) {
			if s := sel.Specificity(); !found || spec.Less(s) {
				spec = s
			}
			found = true
		}
	}
	return spec, found
}
