package css_test

import (
	"testing"

	"github.com/npillmayer/flexbox/css"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionBasic(t *testing.T) {
	a := css.Absolute(nil)
	var o []css.PositionOffset
	switch m := a.Match(); m {
	case m.Absolute(&o):
		t.Logf("offsets = %v", o)
	default:
		t.Errorf("expected Absolute() to be an absolute position, isn't: %#v", a)
	}
	assert.Len(t, o, 4)

	static := css.Static()
	switch m := static.Match(); m {
	case m.Relative(nil):
		t.Errorf("static position matches relative")
	case m.IsKind(css.Static()):
		t.Logf("position is static")
	default:
		t.Errorf("expected position to match kind(static), isn't: %#v", static)
	}
}

func TestPositionPattern(t *testing.T) {
	o := []css.PositionOffset{
		{Dim: css.JustDimen(10), Dir: css.Bottom},
	}
	f := css.Fixed(o)
	m := css.PositionPattern[int](f)
	out := m.OneOf(css.PositionPatterns[int]{
		Unset:   10,
		Fixed:   99,
		Default: -1,
	})
	assert.Equal(t, 99, out)

	e := css.PositionPattern[[]css.PositionOffset](f)
	off := e.OneOf(css.PositionPatterns[[]css.PositionOffset]{
		Fixed:    e.With(&o).Const(o),
		Relative: css.ZeroOffsets(),
		Default:  css.ZeroOffsets(),
	})
	require.Len(t, off, 4)
	assert.Equal(t, css.JustDimen(10), off[css.Bottom].Dim)
	assert.False(t, off[css.Top].IsSet())
}

func TestParsePosition(t *testing.T) {
	pos, err := css.ParsePosition("Absolute")
	require.NoError(t, err)
	x := css.PositionPattern[string](pos).OneOf(css.PositionPatterns[string]{
		Unset:    "NONE",
		Absolute: "ABSOLUTE",
		Default:  "NONE",
	})
	assert.Equal(t, "ABSOLUTE", x)
	//
	pos, err = css.ParsePosition("")
	require.NoError(t, err)
	assert.True(t, pos.IsUnset())
	_, err = css.ParsePosition("sticky")
	assert.Error(t, err)
}

func TestPositionShift(t *testing.T) {
	left, err := css.ParseOffset(css.Left, "-2px")
	require.NoError(t, err)
	assert.Equal(t, "left: -2px", left.String())
	bottom, err := css.ParseOffset(css.Bottom, "50%")
	require.NoError(t, err)
	right, err := css.ParseOffset(css.Right, "7")
	require.NoError(t, err)
	_, err = css.ParseOffset(css.Top, "x")
	assert.Error(t, err)
	//
	rel := css.Relative(nil).WithOffsets([]css.PositionOffset{left, right, bottom})
	dx, dy := rel.Shift(20, 10)
	assert.Equal(t, -2, dx, "left wins over right")
	assert.Equal(t, -5, dy, "bottom moves up")
	dx, dy = rel.Shift(20, -1)
	assert.Equal(t, 0, dy, "percentage without reference")
	//
	dx, dy = css.Static().WithOffsets([]css.PositionOffset{left}).Shift(20, 10)
	assert.Equal(t, 0, dx)
	assert.Equal(t, 0, dy)
	dx, _ = css.Absolute([]css.PositionOffset{left}).Shift(20, 10)
	assert.Equal(t, 0, dx, "only relative positions shift")
}
