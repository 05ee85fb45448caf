package flexbox

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownKeyword is wrapped by the errors of the keyword parsers.
var ErrUnknownKeyword = errors.New("unknown flexbox keyword")

// ParseFlexDirection converts a CSS flex-direction value.
func ParseFlexDirection(s string) (FlexDirection, error) {
	switch normalize(s) {
	case "row":
		return Row, nil
	case "row-reverse":
		return RowReverse, nil
	case "column":
		return Column, nil
	case "column-reverse":
		return ColumnReverse, nil
	}
	return Row, fmt.Errorf("flex-direction %q: %w", s, ErrUnknownKeyword)
}

// ParseFlexWrap converts a CSS flex-wrap value.
func ParseFlexWrap(s string) (FlexWrap, error) {
	switch normalize(s) {
	case "nowrap", "no-wrap":
		return NoWrap, nil
	case "wrap":
		return Wrap, nil
	case "wrap-reverse":
		return WrapReverse, nil
	}
	return NoWrap, fmt.Errorf("flex-wrap %q: %w", s, ErrUnknownKeyword)
}

// ParseJustifyContent converts a CSS justify-content value. The logical
// keywords "start" and "end" are accepted as synonyms of "flex-start" and
// "flex-end".
func ParseJustifyContent(s string) (JustifyContent, error) {
	switch normalize(s) {
	case "flex-start", "start", "normal":
		return JustifyFlexStart, nil
	case "flex-end", "end":
		return JustifyFlexEnd, nil
	case "center":
		return JustifyCenter, nil
	case "space-between":
		return JustifySpaceBetween, nil
	case "space-around":
		return JustifySpaceAround, nil
	case "space-evenly":
		return JustifySpaceEvenly, nil
	}
	return JustifyFlexStart, fmt.Errorf("justify-content %q: %w", s, ErrUnknownKeyword)
}

// ParseAlignItems converts a CSS align-items value.
func ParseAlignItems(s string) (AlignItems, error) {
	switch normalize(s) {
	case "flex-start", "start", "self-start":
		return AlignFlexStart, nil
	case "flex-end", "end", "self-end":
		return AlignFlexEnd, nil
	case "center":
		return AlignCenter, nil
	case "baseline", "first-baseline":
		return AlignBaseline, nil
	case "stretch", "normal":
		return AlignStretch, nil
	}
	return AlignFlexStart, fmt.Errorf("align-items %q: %w", s, ErrUnknownKeyword)
}

// ParseAlignContent converts a CSS align-content value.
func ParseAlignContent(s string) (AlignContent, error) {
	switch normalize(s) {
	case "flex-start", "start":
		return ContentFlexStart, nil
	case "flex-end", "end":
		return ContentFlexEnd, nil
	case "center":
		return ContentCenter, nil
	case "space-between":
		return ContentSpaceBetween, nil
	case "space-around":
		return ContentSpaceAround, nil
	case "stretch", "normal":
		return ContentStretch, nil
	}
	return ContentFlexStart, fmt.Errorf("align-content %q: %w", s, ErrUnknownKeyword)
}

// ParseAlignSelf converts a CSS align-self value.
func ParseAlignSelf(s string) (AlignSelf, error) {
	if normalize(s) == "auto" {
		return SelfAuto, nil
	}
	a, err := ParseAlignItems(s)
	if err != nil {
		return SelfAuto, fmt.Errorf("align-self %q: %w", s, ErrUnknownKeyword)
	}
	return AlignSelf(a + 1), nil
}

// ParseSpacing converts a CSS padding or margin shorthand of one to four
// integer values, optionally suffixed by "px". Values are given in CSS
// order: top, right, bottom, left.
func ParseSpacing(s string) (Spacing, error) {
	fields := strings.Fields(s)
	v := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSuffix(f, "px"))
		if err != nil {
			return Zero, fmt.Errorf("spacing %q: %w", s, err)
		}
		if n < 0 {
			return Zero, fmt.Errorf("spacing %q: negative value %d", s, n)
		}
		v[i] = n
	}
	switch len(v) {
	case 1:
		return Uniform(v[0]), nil
	case 2:
		return Spacing{Top: v[0], Bottom: v[0], Start: v[1], End: v[1]}, nil
	case 3:
		return Spacing{Top: v[0], Start: v[1], End: v[1], Bottom: v[2]}, nil
	case 4:
		return Spacing{Top: v[0], End: v[1], Bottom: v[2], Start: v[3]}, nil
	}
	return Zero, fmt.Errorf("spacing %q: expecting 1-4 values", s)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
