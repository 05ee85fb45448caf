/*
Package css holds value types for CSS properties relevant to flexbox layout.

DimenT is an option type for CSS dimensions. Lengths are given in integer
device units ("px"); relative units of fonts and viewports are not
supported by the layout engine.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/flexbox"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	// Flags for content dependent dimensions
	DimenContentMax uint32 = 0x0010 // max-content, wrap-content
	DimenContentFit uint32 = 0x0030 // match-parent, fill-available
	contentMask     uint32 = 0x00f0

	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d       int
	percent float64 // fraction, 0.5 for 50%
	flags   uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| JustDimen px
	| Percentage fraction
	| WrapContent
	| MatchParent
*/

// Auto is the CSS value 'auto'.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit is the CSS value 'inherit'.
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial is the CSS value 'initial'.
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x device units.
func JustDimen(x int) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value, given as a
// fraction.
func Percentage(fraction float64) DimenT {
	return DimenT{percent: fraction, flags: dimenPercent}
}

// WrapContent sizes a box to its content ('max-content', 'fit-content').
func WrapContent() DimenT {
	return DimenT{flags: DimenContentMax}
}

// MatchParent makes a box as large as its container allows
// ('match-parent', '-webkit-fill-available', 'stretch').
func MatchParent() DimenT {
	return DimenT{flags: DimenContentFit}
}

// IsNone is true for the zero value, which stands for an unset dimension.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

// IsAbsolute is true for fixed dimensions.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

// IsPercent is true for %-relative dimensions.
func (d DimenT) IsPercent() bool {
	return d.flags&dimenPercent == dimenPercent
}

func (d DimenT) String() string {
	switch {
	case d.flags == dimenNone:
		return "none"
	case d.IsAbsolute():
		return fmt.Sprintf("%dpx", d.d)
	case d.IsPercent():
		return strconv.FormatFloat(d.percent*100, 'f', -1, 64) + "%"
	case d.flags&kindMask == dimenAuto:
		return "auto"
	case d.flags&kindMask == dimenInherit:
		return "inherit"
	case d.flags&kindMask == dimenInitial:
		return "initial"
	case d.flags&contentMask == DimenContentFit:
		return "match-parent"
	case d.flags&contentMask == DimenContentMax:
		return "wrap-content"
	}
	return fmt.Sprintf("DimenT(%#x)", d.flags)
}

// ParseDimen parses a CSS dimension value. Lengths have to be given in
// "px" or without a unit.
func ParseDimen(s string) (DimenT, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return DimenT{}, fmt.Errorf("css: empty dimension")
	case "auto":
		return Auto(), nil
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	case "wrap-content", "max-content", "fit-content", "min-content":
		return WrapContent(), nil
	case "match-parent", "stretch", "fill-available", "-webkit-fill-available":
		return MatchParent(), nil
	}
	if strings.HasSuffix(s, "%") {
		p, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return DimenT{}, fmt.Errorf("css: illegal percentage %q: %w", s, err)
		}
		return Percentage(p / 100), nil
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
	if err != nil {
		return DimenT{}, fmt.Errorf("css: illegal dimension %q: %w", s, err)
	} else if n < 0 {
		return DimenT{}, fmt.Errorf("css: negative dimension %q", s)
	}
	return JustDimen(int(n + .5)), nil
}

// Resolve converts a dimension into a flexbox size request. Percentages
// are resolved against reference, which is the size of the container or
// -1 if not known. Non-fixed values turn into flexbox.WrapContent or
// flexbox.MatchParent.
func (d DimenT) Resolve(reference int) int {
	switch {
	case d.IsAbsolute():
		return d.d
	case d.IsPercent():
		if reference < 0 {
			return flexbox.WrapContent
		}
		return int(float64(reference)*d.percent + .5)
	case d.flags&contentMask == DimenContentFit:
		return flexbox.MatchParent
	}
	return flexbox.WrapContent
}

// ---------------------------------------------------------------------------

// Match starts a matching switch over the variants of a dimension.
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher destructures a DimenT.
type Matcher struct {
	dimen DimenT
}

// IsKind matches if the dimension is of the same kind as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		return m
	case (m.dimen.flags&contentMask > 0) && (d.flags&contentMask > 0):
		if m.dimen.flags&contentMask != d.flags&contentMask {
			return nil
		}
		return m
	case m.dimen.flags&(relativeMask|contentMask) > 0 || d.flags&(relativeMask|contentMask) > 0:
		return nil
	case (m.dimen.flags & kindMask) == (d.flags & kindMask):
		return m
	}
	return nil
}

// Just matches a fixed dimension and extracts its value.
func (m *Matcher) Just(px *int) *Matcher {
	if m.dimen.IsAbsolute() {
		if px != nil {
			*px = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches a %-relative dimension and extracts its fraction.
func (m *Matcher) Percentage(p *float64) *Matcher {
	if m.dimen.IsPercent() {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// DimenPatterns holds one result per variant of a dimension.
type DimenPatterns[T any] struct {
	Auto    T
	Inherit T
	Initial T
	Just    T
	Default T
}

// DimenPattern starts an expression match over d.
func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

// MatchExpr selects one of a set of patterns for a dimension.
type MatchExpr[T any] struct {
	dimen DimenT
}

// OneOf returns the pattern matching the dimension.
func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch {
	case m.dimen.flags&relativeMask > 0 || m.dimen.flags&contentMask > 0:
		return patterns.Default
	case m.dimen.flags&kindMask == dimenAuto:
		return patterns.Auto
	case m.dimen.flags&kindMask == dimenAbsolute:
		return patterns.Just
	case m.dimen.flags&kindMask == dimenInitial:
		return patterns.Initial
	case m.dimen.flags&kindMask == dimenInherit:
		return patterns.Inherit
	}
	return patterns.Default
}

// With extracts the fixed value of the dimension.
func (m *MatchExpr[T]) With(px *int) *MatchExpr[T] {
	*px = m.dimen.d
	return m
}

// Const returns x.
func (m *MatchExpr[T]) Const(x T) T {
	return x
}
