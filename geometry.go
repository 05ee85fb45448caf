package flexbox

import (
	"fmt"
	"math"

	"fortio.org/safecast"
)

// Size is the result of measuring: a width and a height, both non-negative.
type Size struct {
	Width, Height int
}

// NewSize creates a size. It panics if either dimension is negative.
func NewSize(width, height int) Size {
	assertThat(width >= 0 && height >= 0, "size dimensions must not be negative: %d x %d", width, height)
	return Size{Width: width, Height: height}
}

func (s Size) String() string {
	return fmt.Sprintf("%d x %d", s.Width, s.Height)
}

// Spacing describes the four edges of padding (owned by a container) or
// margin (owned by a child). Start and End are the horizontal edges.
type Spacing struct {
	Start, End, Top, Bottom int
}

// Zero is the default spacing.
var Zero = Spacing{}

// Uniform returns a spacing of n on every edge.
func Uniform(n int) Spacing {
	return Spacing{Start: n, End: n, Top: n, Bottom: n}
}

// Horizontal is the sum of Start and End.
func (sp Spacing) Horizontal() int {
	return sp.Start + sp.End
}

// Vertical is the sum of Top and Bottom.
func (sp Spacing) Vertical() int {
	return sp.Top + sp.Bottom
}

// Scale multiplies every edge by a density factor, rounding to the nearest
// integer unit.
func (sp Spacing) Scale(density float64) Spacing {
	return Spacing{
		Start:  round(density * float64(sp.Start)),
		End:    round(density * float64(sp.End)),
		Top:    round(density * float64(sp.Top)),
		Bottom: round(density * float64(sp.Bottom)),
	}
}

func (sp Spacing) String() string {
	return fmt.Sprintf("[%d %d %d %d]", sp.Start, sp.End, sp.Top, sp.Bottom)
}

// Rect is the outcome of layout for a child, in coordinates local to the
// container.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Width returns Right-Left.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns Bottom-Top.
func (r Rect) Height() int { return r.Bottom - r.Top }

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}

// round rounds x to the nearest integer, ties rounding up.
func round(x float64) int {
	return safecast.MustConvert[int](math.Floor(x + .5))
}
