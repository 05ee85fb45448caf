package flexbox

import "fmt"

// Mode is the sizing mode of a measure constraint.
type Mode uint8

// Constraint modes. Unspecified leaves the child free to choose any size,
// Exactly dictates the size, AtMost sets an upper bound.
const (
	Unspecified Mode = iota
	Exactly
	AtMost
)

var modeNames = [...]string{"Unspecified", "Exactly", "AtMost"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// MaxSize is the largest size a Constraint may carry. Sizes are limited to
// 24 bits, which is plenty for device units.
const MaxSize = 1<<24 - 1

// Constraint is a (mode, size) pair a parent imposes on a child, analogous to
// CSS available space plus a sizing mode.
//
// The zero value is an unspecified constraint of size 0.
type Constraint struct {
	Mode Mode
	Size int
}

// NewConstraint creates a constraint. It panics if size is negative or larger
// than MaxSize, or if mode is not one of the known modes.
func NewConstraint(size int, mode Mode) Constraint {
	assertThat(size >= 0 && size <= MaxSize, "constraint size out of range: %d", size)
	assertThat(mode <= AtMost, "unknown constraint mode: %d", mode)
	return Constraint{Mode: mode, Size: size}
}

// Resolve returns the size a child should take when it would prefer to be
// of size preferred, honoring the constraint.
func (c Constraint) Resolve(preferred int) int {
	switch c.Mode {
	case Exactly:
		return c.Size
	case AtMost:
		return min(preferred, c.Size)
	}
	return preferred
}

func (c Constraint) String() string {
	return fmt.Sprintf("%s(%d)", c.Mode, c.Size)
}

// childConstraint computes the constraint for one dimension of a child,
// given the parent's constraint, the space already taken by padding and
// margins, and the child's requested dimension (a size or one of
// MatchParent and WrapContent).
func childConstraint(parent Constraint, padding int, dim int) Constraint {
	size := max(0, parent.Size-padding)
	switch parent.Mode {
	case Exactly:
		switch {
		case dim >= 0:
			return NewConstraint(dim, Exactly)
		case dim == MatchParent:
			return NewConstraint(size, Exactly)
		case dim == WrapContent:
			return NewConstraint(size, AtMost)
		}
	case AtMost:
		switch {
		case dim >= 0:
			return NewConstraint(dim, Exactly)
		case dim == MatchParent, dim == WrapContent:
			return NewConstraint(size, AtMost)
		}
	case Unspecified:
		if dim >= 0 {
			return NewConstraint(dim, Exactly)
		}
		if dim == MatchParent || dim == WrapContent {
			return NewConstraint(size, Unspecified)
		}
	}
	return NewConstraint(0, Unspecified)
}
