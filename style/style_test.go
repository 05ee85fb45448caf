package style

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/flexbox"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestPropertyGroupCascade(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexbox.style")
	defer teardown()
	//
	root := NewPropertyGroup(PGText)
	root.Set("direction", " RTL ")
	child := NewPropertyGroup(PGText)
	child.Parent = root
	assert.False(t, child.IsSet("direction"))
	g := child.Cascade("direction")
	require.NotNil(t, g)
	p, ok := g.Get("direction")
	assert.True(t, ok)
	assert.Equal(t, Property("rtl"), p)
	child.Add("direction", "ltr")
	child.Add("direction", "rtl")
	p, _ = child.Cascade("direction").Get("direction")
	assert.Equal(t, Property("ltr"), p, "Add must not overwrite")
	assert.Nil(t, child.Cascade("white-space"))
}

func TestSplitCompoundProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexbox.style")
	defer teardown()
	//
	kv, err := SplitCompoundProperty("padding", "1px 2px")
	require.NoError(t, err)
	assert.Equal(t, []KeyValue{
		{"padding-top", "1px"}, {"padding-right", "2px"},
		{"padding-bottom", "1px"}, {"padding-left", "2px"},
	}, kv)
	kv, err = SplitCompoundProperty("margin", "1 2 3")
	require.NoError(t, err)
	assert.Equal(t, Property("2"), kv[3].Value)
	assert.Equal(t, "margin-left", kv[3].Key)
	_, err = SplitCompoundProperty("margin", "1 2 3 4 5")
	assert.Error(t, err)
	_, err = SplitCompoundProperty("border", "1px")
	assert.Error(t, err)
}

func TestSplitFlexShorthand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexbox.style")
	defer teardown()
	//
	for value, want := range map[string][3]Property{
		"none":        {"0", "0", "auto"},
		"auto":        {"1", "1", "auto"},
		"initial":     {"0", "1", "auto"},
		"2":           {"2", "1", "0%"},
		"30%":         {"1", "1", "30%"},
		"2 3":         {"2", "3", "0%"},
		"2 50px":      {"2", "1", "50px"},
		"1 0 25%":     {"1", "0", "25%"},
		"  3  0 auto": {"3", "0", "auto"},
	} {
		kv, err := SplitCompoundProperty("flex", Property(value))
		require.NoError(t, err, value)
		require.Len(t, kv, 3)
		assert.Equal(t, want, [3]Property{kv[0].Value, kv[1].Value, kv[2].Value}, value)
	}
	_, err := SplitCompoundProperty("flex", "a b c")
	assert.Error(t, err)
	kv, err := SplitCompoundProperty("flex-flow", "wrap column")
	require.NoError(t, err)
	assert.ElementsMatch(t, []KeyValue{{"flex-wrap", "wrap"}, {"flex-direction", "column"}}, kv)
	_, err = SplitCompoundProperty("flex-flow", "diagonal")
	assert.Error(t, err)
}

func TestPropertyMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexbox.style")
	defer teardown()
	//
	var nilmap *PropertyMap
	_, ok := nilmap.Property("width")
	assert.False(t, ok)
	assert.Equal(t, 0, nilmap.Size())
	//
	pmap := NewPropertyMap()
	pmap.Add("flex", "2")
	pmap.Add("padding", "4px")
	pmap.Add("x-custom", "Yes")
	assert.Equal(t, Property("2"), pmap.GetString("flex-grow"))
	assert.Equal(t, Property("0%"), pmap.GetString("flex-basis"))
	assert.Equal(t, Property("4px"), pmap.GetString("padding-left"))
	assert.Equal(t, Property("yes"), pmap.GetString("x-custom"))
	assert.Equal(t, 3, pmap.Size()) // Flex, Padding, X
	assert.NotNil(t, pmap.Group(PGFlex))
	pmap.Add("flex", "a b c") // ignored
	assert.Equal(t, Property("2"), pmap.GetString("flex-grow"))
	assert.True(t, strings.Contains(pmap.String(), "flex-shrink = 1"))
	//
	other := NewPropertyMap()
	other.Add("flex-grow", "5")
	pmap.AddAll(other)
	assert.Equal(t, Property("5"), pmap.GetString("flex-grow"))
}

func TestDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexbox.style")
	defer teardown()
	//
	pmap := InitializeDefaultPropertyValues([]KeyValue{{"x-density", "2"}})
	assert.Equal(t, Property("row"), pmap.GetString("flex-direction"))
	assert.Equal(t, Property("auto"), pmap.GetString("width"))
	assert.Equal(t, Property("0"), pmap.GetString("margin-top"))
	assert.Equal(t, Property("2"), pmap.GetString("x-density"))
	assert.Equal(t, Property("block"), pmap.GetString("display"))
	assert.NotNil(t, pmap.Group(PGMargins).Parent)
	assert.Equal(t, Property("static"), pmap.GetString("position"))
	assert.Equal(t, Property("auto"), pmap.GetString("left"))
	assert.Equal(t, PGPosition, GroupNameFromPropertyKey("bottom"))
	//
	div := &html.Node{Type: html.ElementNode, Data: "div"}
	span := &html.Node{Type: html.ElementNode, Data: "span"}
	head := &html.Node{Type: html.ElementNode, Data: "head"}
	text := &html.Node{Type: html.TextNode, Data: "hello"}
	assert.Equal(t, Property("block"), DisplayPropertyForHTMLNode(div))
	assert.Equal(t, Property("inline"), DisplayPropertyForHTMLNode(span))
	assert.Equal(t, Property("none"), DisplayPropertyForHTMLNode(head))
	assert.Equal(t, Property("none"), DisplayPropertyForHTMLNode(text))
	assert.Equal(t, Property("none"), DisplayPropertyForHTMLNode(nil))
	assert.Equal(t, Property("stretch"), GetUserAgentDefaultProperty(div, "align-items"))
	assert.Equal(t, Property("block"), GetUserAgentDefaultProperty(div, "display"))
	assert.Equal(t, NullStyle, GetUserAgentDefaultProperty(div, "color"))
	assert.Equal(t, Property("auto"), GetUserAgentDefaultProperty(span, "top"))
}

func TestContainerConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexbox.style")
	defer teardown()
	//
	pmap := NewPropertyMap()
	pmap.Add("flex-flow", "column-reverse wrap")
	pmap.Add("justify-content", "space-around")
	pmap.Add("align-items", "baseline")
	pmap.Add("align-content", "center")
	pmap.Add("max-lines", "2")
	pmap.Add("padding", "10% 5px")
	conf, err := ContainerConfig(pmap, 200)
	require.NoError(t, err)
	assert.Equal(t, flexbox.Config{
		Direction:    flexbox.ColumnReverse,
		Wrap:         flexbox.Wrap,
		Justify:      flexbox.JustifySpaceAround,
		AlignItems:   flexbox.AlignBaseline,
		AlignContent: flexbox.ContentCenter,
		Padding:      flexbox.Spacing{Top: 20, Bottom: 20, Start: 5, End: 5},
		MaxLines:     2,
	}, conf)
}

func TestContainerConfigCollectsErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexbox.style")
	defer teardown()
	//
	pmap := NewPropertyMap()
	pmap.Add("flex-direction", "diagonal")
	pmap.Add("justify-content", "center")
	pmap.Add("align-items", "upwards")
	conf, err := ContainerConfig(pmap, -1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, flexbox.ErrUnknownKeyword))
	assert.Contains(t, err.Error(), "flex-direction")
	assert.Contains(t, err.Error(), "align-items")
	assert.Equal(t, flexbox.Row, conf.Direction)
	assert.Equal(t, flexbox.JustifyCenter, conf.Justify)
	assert.Equal(t, flexbox.NoMaxLines, conf.MaxLines)
}

func TestItemOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexbox.style")
	defer teardown()
	//
	pmap := NewPropertyMap()
	pmap.Add("width", "50%")
	pmap.Add("min-height", "12px")
	pmap.Add("max-width", "80px")
	pmap.Add("flex", "2 0 25%")
	pmap.Add("align-self", "center")
	pmap.Add("order", "-1")
	pmap.Add("margin", "1 2")
	pmap.Add("break-before", "always")
	opts, err := ItemOptions(pmap, flexbox.NewSize(200, 100))
	require.NoError(t, err)
	item := flexbox.NewItem(opts...)
	assert.Equal(t, 100, item.Width())
	assert.Equal(t, flexbox.WrapContent, item.Height())
	assert.Equal(t, 12, item.MinHeight())
	assert.Equal(t, 0, item.MinWidth())
	assert.Equal(t, 80, item.MaxWidth())
	assert.Equal(t, flexbox.MaxSize, item.MaxHeight())
	assert.Equal(t, 2.0, item.FlexGrow())
	assert.Equal(t, 0.0, item.FlexShrink())
	assert.Equal(t, .25, item.FlexBasisPercent())
	assert.Equal(t, flexbox.SelfCenter, item.AlignSelf())
	assert.Equal(t, -1, item.Order())
	assert.Equal(t, flexbox.Spacing{Top: 1, Bottom: 1, Start: 2, End: 2}, item.Margin())
	assert.True(t, item.WrapBefore())
	assert.True(t, item.Visible())
}

func TestItemOptionsDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexbox.style")
	defer teardown()
	//
	pmap := NewPropertyMap()
	pmap.Add("display", "none")
	pmap.Add("flex-grow", "-3")
	pmap.Add("flex-basis", "40px")
	opts, err := ItemOptions(pmap, flexbox.NewSize(0, 0))
	require.Error(t, err)
	item := flexbox.NewItem(opts...)
	assert.False(t, item.Visible())
	assert.Equal(t, flexbox.DefaultFlexGrow, item.FlexGrow())
	assert.Equal(t, flexbox.DefaultFlexBasisPercent, item.FlexBasisPercent())
	assert.Equal(t, flexbox.DefaultOrder, item.Order())
	assert.Equal(t, flexbox.WrapContent, item.Width())
}

func TestAlignmentMapping(t *testing.T) {
	assert.Equal(t, flexbox.JustifySpaceEvenly, MainSpaceEvenly.JustifyContent())
	assert.Equal(t, flexbox.JustifyFlexEnd, MainEnd.JustifyContent())
	assert.Equal(t, flexbox.AlignFlexEnd, CrossEnd.AlignItems())
	assert.Equal(t, flexbox.SelfStretch, CrossStretch.AlignSelf())
	assert.Equal(t, flexbox.SelfCenter, CrossCenter.AlignSelf())
	assert.Panics(t, func() { MainAxisAlignment(17).JustifyContent() })
	a, err := ParseMainAxisAlignment("space-between")
	assert.NoError(t, err)
	assert.Equal(t, MainSpaceBetween, a)
	_, err = ParseCrossAxisAlignment("baseline")
	assert.ErrorIs(t, err, flexbox.ErrUnknownKeyword)
}

func TestModifierOptions(t *testing.T) {
	mods := []Modifier{
		Grow(2), Shrink(0),
		Margin(flexbox.Spacing{Start: 1, End: 2, Top: 3, Bottom: 4}),
		HorizontalAlignment(CrossCenter),
	}
	row := flexbox.NewItem(ModifierOptions(flexbox.Row, 1.5, mods...)...)
	assert.Equal(t, 2.0, row.FlexGrow())
	assert.Equal(t, 0.0, row.FlexShrink())
	assert.Equal(t, flexbox.Spacing{Start: 2, End: 3, Top: 5, Bottom: 6}, row.Margin())
	assert.Equal(t, flexbox.SelfAuto, row.AlignSelf(), "horizontal alignment is ignored in a row")
	//
	col := flexbox.NewItem(ModifierOptions(flexbox.Column, 1, mods...)...)
	assert.Equal(t, flexbox.SelfCenter, col.AlignSelf())
	col = flexbox.NewItem(ModifierOptions(flexbox.ColumnReverse, 1, VerticalAlignment(CrossEnd))...)
	assert.Equal(t, flexbox.SelfAuto, col.AlignSelf(), "vertical alignment is ignored in a column")
	row = flexbox.NewItem(ModifierOptions(flexbox.RowReverse, 1, VerticalAlignment(CrossEnd))...)
	assert.Equal(t, flexbox.SelfFlexEnd, row.AlignSelf())
	assert.Equal(t, flexbox.DefaultFlexShrink, row.FlexShrink())
}

func TestModifiersFrom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexbox.style")
	defer teardown()
	//
	pmap := NewPropertyMap()
	pmap.Add("flex-grow", "3")
	pmap.Add("vertical-alignment", "center")
	pmap.Add("horizontal-alignment", "left")
	mods, err := ModifiersFrom(pmap)
	assert.Error(t, err)
	require.Len(t, mods, 2)
	item := flexbox.NewItem(ModifierOptions(flexbox.Row, 1, mods...)...)
	assert.Equal(t, 3.0, item.FlexGrow())
	assert.Equal(t, flexbox.SelfCenter, item.AlignSelf())
}
