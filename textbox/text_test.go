package textbox

import (
	"strings"
	"testing"

	"github.com/npillmayer/flexbox"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

var (
	unspecified = flexbox.Constraint{}
	exactly     = func(n int) flexbox.Constraint { return flexbox.NewConstraint(n, flexbox.Exactly) }
	atMost      = func(n int) flexbox.Constraint { return flexbox.NewConstraint(n, flexbox.AtMost) }
)

func imdbTop4() []*Text {
	return []*Text{
		New("The Shawshank Redemption"),
		New("The Godfather"),
		New("The Dark Knight"),
		New("The Godfather Part II"),
	}
}

func TestTextMeasure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexbox.text")
	defer teardown()
	//
	text := New("The  Shawshank\tRedemption")
	assert.Equal(t, "The Shawshank Redemption", text.Text())
	assert.Equal(t, 12, text.MinWidth())
	assert.Equal(t, 2, text.MinHeight())
	assert.Equal(t, flexbox.NewSize(26, 3), text.Measure(unspecified, unspecified))
	assert.Equal(t, flexbox.NewSize(12, 5), text.Measure(atMost(14), unspecified))
	assert.Equal(t, flexbox.NewSize(20, 4), text.Measure(exactly(20), atMost(4)))
	assert.Equal(t, flexbox.NewSize(26, 7), text.Measure(atMost(100), exactly(7)))
	assert.Equal(t, 26, text.MeasuredWidth())
	assert.Equal(t, 7, text.MeasuredHeight())
	//
	empty := New("")
	assert.Equal(t, 2, empty.MinWidth())
	assert.Equal(t, flexbox.NewSize(2, 2), empty.Measure(atMost(10), atMost(10)))
	//
	grown := New("x", flexbox.WithGrow(1), flexbox.WithMinSize(0, 0))
	assert.Equal(t, 1.0, grown.FlexGrow())
	assert.Equal(t, 0, grown.MinWidth())
}

func TestTextLines(t *testing.T) {
	text := New("The Godfather Part II")
	assert.Equal(t, [][]string{{"The"}, {"Godfather"}, {"Part", "II"}}, text.Lines(9))
	assert.Equal(t, [][]string{{"The", "Godfather", "Part", "II"}}, text.Lines(21))
	assert.Len(t, text.Lines(0), 4, "every line holds at least one word")
	assert.Empty(t, New("  ").Lines(10))
}

func TestCanvas(t *testing.T) {
	c := NewCanvas(5, 3)
	c.Frame(0, 0, 5, 3)
	c.Set(2, 1, 'x')
	c.Set(9, 9, 'y')
	assert.Equal(t, 'x', c.At(2, 1))
	assert.Equal(t, rune(0), c.At(-1, 0))
	assert.Equal(t, "┌───┐\n|·x·│\n└───┘", c.String())
	assert.Equal(t, 5, c.Width())
	assert.Equal(t, 3, c.Height())
	assert.Equal(t, "", NewCanvas(-1, 2).String())
}

func TestDrawClipsText(t *testing.T) {
	c := NewCanvas(8, 3)
	New("The Dark Knight").Draw(c, flexbox.Rect{Left: 0, Top: 0, Right: 8, Bottom: 3})
	assert.Equal(t, "┌──────┐\n|The   │\n└──────┘", c.String())
}

func TestColumn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexbox")
	defer teardown()
	//
	engine := flexbox.NewEngine(flexbox.Config{Direction: flexbox.Column})
	assertCanvas(t, engine, 14, 20, `
┌──────────┐··
|The       │··
|Shawshank │··
|Redemption│··
└──────────┘··
┌─────────┐···
|The      │···
|Godfather│···
└─────────┘···
┌────────┐····
|The Dark│····
|Knight  │····
└────────┘····
┌─────────┐···
|The      │···
|Godfather│···
|Part II  │···
└─────────┘···
··············
··············`)
}

func TestRowSpaceBetween(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexbox")
	defer teardown()
	//
	engine := flexbox.NewEngine(flexbox.Config{Justify: flexbox.JustifySpaceBetween})
	assertCanvas(t, engine, 84, 4, `
┌────────────────────────┐·┌─────────────┐·┌───────────────┐·┌─────────────────────┐
|The Shawshank Redemption│·|The Godfather│·|The Dark Knight│·|The Godfather Part II│
└────────────────────────┘·└─────────────┘·└───────────────┘·└─────────────────────┘
····················································································`)
}

func TestRowWrap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexbox")
	defer teardown()
	//
	engine := flexbox.NewEngine(flexbox.Config{Wrap: flexbox.Wrap})
	for _, text := range imdbTop4() {
		engine.AddNode(text)
	}
	size := engine.Measure(exactly(30), atMost(20))
	assert.Equal(t, flexbox.NewSize(30, 12), size)
	assert.Len(t, engine.FlexLines(), 4)
	engine.Layout(0, 0, size.Width, size.Height)
	assert.Equal(t, strings.TrimPrefix(`
┌────────────────────────┐····
|The Shawshank Redemption│····
└────────────────────────┘····
┌─────────────┐···············
|The Godfather│···············
└─────────────┘···············
┌───────────────┐·············
|The Dark Knight│·············
└───────────────┘·············
┌─────────────────────┐·······
|The Godfather Part II│·······
└─────────────────────┘·······`, "\n"), render(engine, size.Width, size.Height))
}

// assertCanvas lays out the four texts in a container of exactly
// width × height and compares the drawing to want.
func assertCanvas(t *testing.T, engine *flexbox.Engine, width, height int, want string) {
	t.Helper()
	for _, text := range imdbTop4() {
		engine.AddNode(text)
	}
	engine.Measure(exactly(width), exactly(height))
	engine.Layout(0, 0, width, height)
	have := render(engine, width, height)
	t.Logf("\n%s", have)
	assert.Equal(t, strings.TrimPrefix(want, "\n"), have)
}

func render(engine *flexbox.Engine, width, height int) string {
	c := NewCanvas(width, height)
	for _, node := range engine.Nodes() {
		text := node.(*Text)
		text.Draw(c, text.Bounds())
	}
	return c.String()
}
