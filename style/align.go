package style

import (
	"fmt"

	"github.com/npillmayer/flexbox"
)

// MainAxisAlignment is a toolkit-level alignment of children along the
// main axis of a row or column.
type MainAxisAlignment uint8

// Main axis alignments.
const (
	MainStart MainAxisAlignment = iota
	MainCenter
	MainEnd
	MainSpaceBetween
	MainSpaceAround
	MainSpaceEvenly
)

// CrossAxisAlignment is a toolkit-level alignment of children along the
// cross axis of a row or column.
type CrossAxisAlignment uint8

// Cross axis alignments.
const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
	CrossStretch
)

// JustifyContent maps a main axis alignment to the engine's justification.
// Panics for unknown values.
func (a MainAxisAlignment) JustifyContent() flexbox.JustifyContent {
	switch a {
	case MainStart:
		return flexbox.JustifyFlexStart
	case MainCenter:
		return flexbox.JustifyCenter
	case MainEnd:
		return flexbox.JustifyFlexEnd
	case MainSpaceBetween:
		return flexbox.JustifySpaceBetween
	case MainSpaceAround:
		return flexbox.JustifySpaceAround
	case MainSpaceEvenly:
		return flexbox.JustifySpaceEvenly
	}
	panic(fmt.Sprintf("unknown main axis alignment %d", a))
}

// AlignItems maps a cross axis alignment to the container default.
// Panics for unknown values.
func (a CrossAxisAlignment) AlignItems() flexbox.AlignItems {
	switch a {
	case CrossStart:
		return flexbox.AlignFlexStart
	case CrossCenter:
		return flexbox.AlignCenter
	case CrossEnd:
		return flexbox.AlignFlexEnd
	case CrossStretch:
		return flexbox.AlignStretch
	}
	panic(fmt.Sprintf("unknown cross axis alignment %d", a))
}

// AlignSelf maps a cross axis alignment to a child's override.
func (a CrossAxisAlignment) AlignSelf() flexbox.AlignSelf {
	return flexbox.AlignSelf(a.AlignItems() + 1)
}

// ParseMainAxisAlignment reads the keywords start, center, end,
// space-between, space-around and space-evenly.
func ParseMainAxisAlignment(s string) (MainAxisAlignment, error) {
	switch s {
	case "start":
		return MainStart, nil
	case "center":
		return MainCenter, nil
	case "end":
		return MainEnd, nil
	case "space-between":
		return MainSpaceBetween, nil
	case "space-around":
		return MainSpaceAround, nil
	case "space-evenly":
		return MainSpaceEvenly, nil
	}
	return MainStart, fmt.Errorf("main axis alignment %q: %w", s, flexbox.ErrUnknownKeyword)
}

// ParseCrossAxisAlignment reads the keywords start, center, end and stretch.
func ParseCrossAxisAlignment(s string) (CrossAxisAlignment, error) {
	switch s {
	case "start":
		return CrossStart, nil
	case "center":
		return CrossCenter, nil
	case "end":
		return CrossEnd, nil
	case "stretch":
		return CrossStretch, nil
	}
	return CrossStart, fmt.Errorf("cross axis alignment %q: %w", s, flexbox.ErrUnknownKeyword)
}

// --- Modifiers -------------------------------------------------------------

// Modifier is a layout request a child attaches to itself, independent of
// the kind of container it will be placed in.
type Modifier interface {
	modify(*itemAttrs, flexbox.FlexDirection, float64)
}

type itemAttrs struct {
	grow, shrink float64
	margin       flexbox.Spacing
	alignSelf    flexbox.AlignSelf
}

// Grow sets the flex grow factor.
type Grow float64

// Shrink sets the flex shrink factor.
type Shrink float64

// Margin is given in density-independent units and scaled by the
// container's density.
type Margin flexbox.Spacing

// HorizontalAlignment aligns a child within a column. It has no effect
// on children of a row.
type HorizontalAlignment CrossAxisAlignment

// VerticalAlignment aligns a child within a row. It has no effect on
// children of a column.
type VerticalAlignment CrossAxisAlignment

// Align sets the cross axis alignment of a child in any container.
type Align flexbox.AlignSelf

func (g Grow) modify(a *itemAttrs, _ flexbox.FlexDirection, _ float64) {
	a.grow = float64(g)
}

func (s Shrink) modify(a *itemAttrs, _ flexbox.FlexDirection, _ float64) {
	a.shrink = float64(s)
}

func (m Margin) modify(a *itemAttrs, _ flexbox.FlexDirection, density float64) {
	a.margin = flexbox.Spacing(m).Scale(density)
}

func (s Align) modify(a *itemAttrs, _ flexbox.FlexDirection, _ float64) {
	a.alignSelf = flexbox.AlignSelf(s)
}

func (h HorizontalAlignment) modify(a *itemAttrs, dir flexbox.FlexDirection, _ float64) {
	if dir.IsVertical() {
		a.alignSelf = CrossAxisAlignment(h).AlignSelf()
	}
}

func (v VerticalAlignment) modify(a *itemAttrs, dir flexbox.FlexDirection, _ float64) {
	if dir.IsHorizontal() {
		a.alignSelf = CrossAxisAlignment(v).AlignSelf()
	}
}

// ModifierOptions turns a child's modifiers into item options for a
// container with the given direction and density. Later modifiers
// override earlier ones.
func ModifierOptions(dir flexbox.FlexDirection, density float64, mods ...Modifier) []flexbox.ItemOption {
	attrs := itemAttrs{
		grow:   flexbox.DefaultFlexGrow,
		shrink: flexbox.DefaultFlexShrink,
	}
	for _, m := range mods {
		m.modify(&attrs, dir, density)
	}
	return []flexbox.ItemOption{
		flexbox.WithGrow(attrs.grow),
		flexbox.WithShrink(attrs.shrink),
		flexbox.WithMargin(attrs.margin),
		flexbox.WithAlignSelf(attrs.alignSelf),
	}
}

// ModifiersFrom reads the modifier properties of a property map:
// flex-grow, flex-shrink and the extensions horizontal-alignment and
// vertical-alignment. Margins are not included, as they are handled by
// ItemOptions.
func ModifiersFrom(pmap *PropertyMap) ([]Modifier, error) {
	var errs errorList
	var mods []Modifier
	if p, ok := pmap.Property("flex-grow"); ok {
		if g := check(&errs, "flex-grow", p.Float(), -1); g >= 0 {
			mods = append(mods, Grow(g))
		}
	}
	if p, ok := pmap.Property("flex-shrink"); ok {
		if s := check(&errs, "flex-shrink", p.Float(), -1); s >= 0 {
			mods = append(mods, Shrink(s))
		}
	}
	if p, ok := pmap.Property("horizontal-alignment"); ok {
		a, err := ParseCrossAxisAlignment(p.String())
		if err != nil {
			errs = append(errs, err)
		} else {
			mods = append(mods, HorizontalAlignment(a))
		}
	}
	if p, ok := pmap.Property("vertical-alignment"); ok {
		a, err := ParseCrossAxisAlignment(p.String())
		if err != nil {
			errs = append(errs, err)
		} else {
			mods = append(mods, VerticalAlignment(a))
		}
	}
	return mods, errs.err()
}
