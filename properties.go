package flexbox

import "fmt"

// FlexDirection selects the main axis and its direction.
type FlexDirection uint8

// Values for FlexDirection.
const (
	Row           FlexDirection = iota // main axis horizontal, start to end
	RowReverse                         // main axis horizontal, end to start
	Column                             // main axis vertical, top to bottom
	ColumnReverse                      // main axis vertical, bottom to top
)

// FlexWrap determines whether children may be distributed onto more than
// one flex line.
type FlexWrap uint8

// Values for FlexWrap.
const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse // wrap, stacking lines in reverse cross-axis order
)

// JustifyContent aligns children along the main axis of a flex line.
type JustifyContent uint8

// Values for JustifyContent.
const (
	JustifyFlexStart JustifyContent = iota
	JustifyFlexEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// AlignItems aligns children along the cross axis of a flex line. It is the
// container's default; children may override it with AlignSelf.
type AlignItems uint8

// Values for AlignItems.
const (
	AlignFlexStart AlignItems = iota
	AlignFlexEnd
	AlignCenter
	AlignBaseline
	AlignStretch
)

// AlignContent distributes flex lines along the cross axis of a container.
// It has an effect only for multi-line containers with an exact cross size.
type AlignContent uint8

// Values for AlignContent.
const (
	ContentFlexStart AlignContent = iota
	ContentFlexEnd
	ContentCenter
	ContentSpaceBetween
	ContentSpaceAround
	ContentStretch
)

// AlignSelf is a child's override of the container's AlignItems.
// The zero value SelfAuto defers to the container.
type AlignSelf uint8

// Values for AlignSelf.
const (
	SelfAuto AlignSelf = iota
	SelfFlexStart
	SelfFlexEnd
	SelfCenter
	SelfBaseline
	SelfStretch
)

// IsHorizontal is true for Row and RowReverse.
func (d FlexDirection) IsHorizontal() bool {
	return d == Row || d == RowReverse
}

// IsVertical is true for Column and ColumnReverse.
func (d FlexDirection) IsVertical() bool {
	return d == Column || d == ColumnReverse
}

// Resolve returns the effective cross-axis alignment of a child, given the
// container's default.
func (a AlignSelf) Resolve(items AlignItems) AlignItems {
	switch a {
	case SelfFlexStart:
		return AlignFlexStart
	case SelfFlexEnd:
		return AlignFlexEnd
	case SelfCenter:
		return AlignCenter
	case SelfBaseline:
		return AlignBaseline
	case SelfStretch:
		return AlignStretch
	}
	return items
}

// --- Names -----------------------------------------------------------------

var directionNames = [...]string{"Row", "RowReverse", "Column", "ColumnReverse"}
var wrapNames = [...]string{"NoWrap", "Wrap", "WrapReverse"}
var justifyNames = [...]string{"FlexStart", "FlexEnd", "Center", "SpaceBetween", "SpaceAround", "SpaceEvenly"}
var alignItemsNames = [...]string{"FlexStart", "FlexEnd", "Center", "Baseline", "Stretch"}
var alignContentNames = [...]string{"FlexStart", "FlexEnd", "Center", "SpaceBetween", "SpaceAround", "Stretch"}
var alignSelfNames = [...]string{"Auto", "FlexStart", "FlexEnd", "Center", "Baseline", "Stretch"}

func enumName(names []string, v uint8, typ string) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", typ, v)
}

func (d FlexDirection) String() string  { return enumName(directionNames[:], uint8(d), "FlexDirection") }
func (w FlexWrap) String() string       { return enumName(wrapNames[:], uint8(w), "FlexWrap") }
func (j JustifyContent) String() string { return enumName(justifyNames[:], uint8(j), "JustifyContent") }
func (a AlignItems) String() string     { return enumName(alignItemsNames[:], uint8(a), "AlignItems") }
func (a AlignContent) String() string   { return enumName(alignContentNames[:], uint8(a), "AlignContent") }
func (a AlignSelf) String() string      { return enumName(alignSelfNames[:], uint8(a), "AlignSelf") }

// Valid reports whether d is one of the known directions.
func (d FlexDirection) Valid() bool { return int(d) < len(directionNames) }

// Valid reports whether w is one of the known wrap modes.
func (w FlexWrap) Valid() bool { return int(w) < len(wrapNames) }

// Valid reports whether j is one of the known justifications.
func (j JustifyContent) Valid() bool { return int(j) < len(justifyNames) }

// Valid reports whether a is one of the known alignments.
func (a AlignItems) Valid() bool { return int(a) < len(alignItemsNames) }

// Valid reports whether a is one of the known alignments.
func (a AlignContent) Valid() bool { return int(a) < len(alignContentNames) }

// Valid reports whether a is one of the known alignments.
func (a AlignSelf) Valid() bool { return int(a) < len(alignSelfNames) }
