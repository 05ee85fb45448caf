package flexbox

import (
	"fmt"
	"math"
)

// FlexLine is one run of children along the main axis, sharing a position on
// the cross axis. Lines are rebuilt from scratch by every call to Measure.
//
// Indices refer to presentation order, i.e. they have already been passed
// through the order attribute of the children.
type FlexLine struct {
	MainSize           int // sum of the children's main extents, plus margins and padding
	CrossSize          int // largest cross extent of the children
	ItemCount          int // number of children, including invisible ones
	InvisibleItemCount int
	TotalFlexGrow      float64
	TotalFlexShrink    float64
	MaxBaseline        int // largest baseline of the children, horizontal lines only
	SumCrossSizeBefore int // cross size taken by the lines before this one
	FirstIndex         int
	LastIndex          int
	AnyItemsHaveGrow   bool
	AnyItemsHaveShrink bool

	// children aligning themselves with SelfStretch
	stretchIndices []int
}

func newFlexLine(mainPadding int) FlexLine {
	return FlexLine{
		MainSize:  mainPadding,
		CrossSize: 0,
	}
}

// spacerLine creates a line without children, used to distribute space
// between lines.
func spacerLine(crossSize int) FlexLine {
	return FlexLine{CrossSize: crossSize}
}

// VisibleItemCount returns the number of visible children in the line.
func (line *FlexLine) VisibleItemCount() int {
	return line.ItemCount - line.InvisibleItemCount
}

// IsSpacer is true for lines which only occupy space on the cross axis.
func (line *FlexLine) IsSpacer() bool {
	return line.ItemCount == 0
}

// StretchIndices returns the presentation indices of children aligning
// themselves with SelfStretch.
func (line *FlexLine) StretchIndices() []int {
	return line.stretchIndices
}

func (line FlexLine) String() string {
	if line.IsSpacer() {
		return fmt.Sprintf("spacer(%d)", line.CrossSize)
	}
	return fmt.Sprintf("line[%d..%d] main=%d cross=%d items=%d/%d",
		line.FirstIndex, line.LastIndex, line.MainSize, line.CrossSize,
		line.VisibleItemCount(), line.ItemCount)
}

// noCrossSize marks a cross size not yet known, as the lowest possible int.
const noCrossSize = math.MinInt
