package css

import (
	"fmt"
	"strings"
)

// position is an enum type for the CSS position property.
type position uint16

// Enum values for type Position
const (
	positionUnset    position = iota
	positionStatic            // CSS static (default)
	positionRelative          // CSS relative
	positionAbsolute          // CSS absolute
	positionFixed             // CSS fixed
)

// PositionT is an option type for CSS positions.
type PositionT struct {
	offsets []PositionOffset
	kind    position
}

// PositionOffset is one of the offset properties top, right, bottom or left.
// Dim is auto if the offset is not set.
type PositionOffset struct {
	Dim      DimenT
	Dir      PosDir
	Negative bool
}

// PosDir is either Top, Right, Bottom or Left.
type PosDir uint8

const (
	Top PosDir = iota
	Right
	Bottom
	Left
)

var posDirNames = [4]string{"top", "right", "bottom", "left"}

func (dir PosDir) String() string {
	if dir > Left {
		return fmt.Sprintf("PosDir(%d)", dir)
	}
	return posDirNames[dir]
}

// ParseOffset parses the value of an offset property for direction dir.
// Other than sizes, offsets may be negative.
func ParseOffset(dir PosDir, s string) (PositionOffset, error) {
	s = strings.TrimSpace(s)
	o := PositionOffset{Dir: dir}
	if strings.HasPrefix(s, "-") {
		o.Negative = true
		s = s[1:]
	}
	d, err := ParseDimen(s)
	if err != nil {
		return PositionOffset{Dir: dir, Dim: Auto()}, fmt.Errorf("css: offset %s: %w", dir, err)
	}
	o.Dim = d
	return o, nil
}

// IsSet is false for offsets which are auto or unset.
func (o PositionOffset) IsSet() bool {
	return o.Dim.IsAbsolute() || o.Dim.IsPercent()
}

// Resolve returns the offset in pixels, resolving percentages against
// reference. Offsets which are not set, or percentages without a known
// reference (reference < 0), resolve to 0.
func (o PositionOffset) Resolve(reference int) int {
	if !o.IsSet() || (o.Dim.IsPercent() && reference < 0) {
		return 0
	}
	n := o.Dim.Resolve(reference)
	if o.Negative {
		return -n
	}
	return n
}

func (o PositionOffset) String() string {
	if o.Negative {
		return fmt.Sprintf("%s: -%v", o.Dir, o.Dim)
	}
	return fmt.Sprintf("%s: %v", o.Dir, o.Dim)
}

// NormalizeOffsets normalizes offset properties (Top, Right, Bottom, Left) into
// a 4-way slice, ordered by PosDir. Invalid PosDir-s are silently dropped.
func NormalizeOffsets(offsets []PositionOffset) []PositionOffset {
	norm := ZeroOffsets()
	for i := range norm {
		norm[i].Dim = Auto()
	}
	for _, o := range offsets {
		if o.Dir <= Left {
			norm[int(o.Dir)] = o
		}
	}
	return norm
}

// ZeroOffsets returns (Top, Right, Bottom, Left) = (0, 0, 0, 0)
func ZeroOffsets() []PositionOffset {
	zeros := make([]PositionOffset, 4)
	for i := Top; i <= Left; i++ {
		zeros[i].Dir = i
		zeros[i].Dim = JustDimen(0)
	}
	return zeros
}

// Static creates a CSS position of value `static`.
func Static() PositionT {
	return PositionT{kind: positionStatic}
}

// Relative creates a CSS position of value `relative`, given optional offsets.
// offsets may be provided partially or none at all.
func Relative(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionRelative, offsets: NormalizeOffsets(offsets)}
}

// Absolute creates a CSS position of value `absolute`, given optional offsets.
func Absolute(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionAbsolute, offsets: NormalizeOffsets(offsets)}
}

// Fixed creates a CSS position of value `fixed`, given optional offsets.
func Fixed(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionFixed, offsets: NormalizeOffsets(offsets)}
}

var positionNames = map[position]string{
	positionUnset:    "unset",
	positionStatic:   "static",
	positionRelative: "relative",
	positionAbsolute: "absolute",
	positionFixed:    "fixed",
}

func (p PositionT) String() string {
	return positionNames[p.kind]
}

// ParsePosition returns a position from the value of property "position".
// The empty string yields an unset position.
func ParsePosition(s string) (PositionT, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return PositionT{}, nil
	case "static":
		return Static(), nil
	case "relative":
		return Relative(nil), nil
	case "absolute":
		return Absolute(nil), nil
	case "fixed":
		return Fixed(nil), nil
	}
	return PositionT{}, fmt.Errorf("css: illegal position %q", s)
}

// WithOffsets returns a copy of p with offsets replaced. Unset and static
// positions ignore offsets.
func (p PositionT) WithOffsets(offsets []PositionOffset) PositionT {
	if p.kind == positionUnset || p.kind == positionStatic {
		return p
	}
	return PositionT{kind: p.kind, offsets: NormalizeOffsets(offsets)}
}

// Shift returns the displacement of a relatively positioned box.
// Percentages are resolved against the size of the containing block,
// with -1 for an unknown dimension. Left wins over right and top wins over
// bottom. Positions other than relative do not shift.
func (p PositionT) Shift(refWidth, refHeight int) (dx, dy int) {
	if p.kind != positionRelative {
		return 0, 0
	}
	if o := p.offsets[Left]; o.IsSet() {
		dx = o.Resolve(refWidth)
	} else {
		dx = -p.offsets[Right].Resolve(refWidth)
	}
	if o := p.offsets[Top]; o.IsSet() {
		dy = o.Resolve(refHeight)
	} else {
		dy = -p.offsets[Bottom].Resolve(refHeight)
	}
	return
}

// ---------------------------------------------------------------------------

// Match starts a matching switch over the variants of a position.
func (p PositionT) Match() *PMatcher {
	return &PMatcher{pos: p}
}

// PMatcher matches the variants of a position.
type PMatcher struct {
	pos PositionT
}

// IsKind matches positions of the same kind as p, ignoring offsets.
func (m *PMatcher) IsKind(p PositionT) *PMatcher {
	if p.kind == m.pos.kind {
		return m
	}
	return nil
}

func (m *PMatcher) Absolute(o *[]PositionOffset) *PMatcher {
	return m.withOffsets(positionAbsolute, o)
}

func (m *PMatcher) Relative(o *[]PositionOffset) *PMatcher {
	return m.withOffsets(positionRelative, o)
}

func (m *PMatcher) Fixed(o *[]PositionOffset) *PMatcher {
	return m.withOffsets(positionFixed, o)
}

func (m *PMatcher) withOffsets(kind position, o *[]PositionOffset) *PMatcher {
	if m.pos.kind != kind {
		return nil
	}
	if o != nil {
		*o = m.pos.offsets
	}
	return m
}

// --- Expression matching ---------------------------------------------------

// PositionPatterns holds a result for each variant of a position.
type PositionPatterns[T any] struct {
	Unset    T
	Static   T
	Absolute T
	Relative T
	Fixed    T
	Default  T
}

// PositionPattern starts a matching expression over a position.
func PositionPattern[T any](p PositionT) *PMatchExpr[T] {
	return &PMatchExpr[T]{pos: p}
}

// PMatchExpr is part of pattern matching for PositionT types and intended to be instantiated
// using `PositionPattern()` only.
type PMatchExpr[T any] struct {
	pos PositionT
}

func (m *PMatchExpr[T]) OneOf(patterns PositionPatterns[T]) T {
	switch m.pos.kind {
	case positionUnset:
		return patterns.Unset
	case positionStatic:
		return patterns.Static
	case positionAbsolute:
		return patterns.Absolute
	case positionRelative:
		return patterns.Relative
	case positionFixed:
		return patterns.Fixed
	}
	return patterns.Default
}

func (m *PMatchExpr[T]) With(o *[]PositionOffset) *PMatchExpr[T] {
	if o != nil {
		*o = m.pos.offsets
	}
	return m
}

func (m *PMatchExpr[T]) Const(x T) T {
	return x
}

// ---------------------------------------------------------------------------

// IsUnset returns true if p is unset.
func (p PositionT) IsUnset() bool {
	return p.kind == positionUnset
}

// IsRelative returns true if p represents a valid relative position.
func (p PositionT) IsRelative() bool {
	return p.kind == positionRelative
}

// IsAbsolute returns true if p represents a valid absolute position.
func (p PositionT) IsAbsolute() bool {
	return p.kind == positionAbsolute
}

// IsFixed returns true if p represents a fixed position.
func (p PositionT) IsFixed() bool {
	return p.kind == positionFixed
}
