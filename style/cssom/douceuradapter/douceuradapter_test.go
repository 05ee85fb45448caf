package douceuradapter

import (
	"strings"
	"testing"

	"github.com/npillmayer/flexbox/style"
	"github.com/npillmayer/flexbox/style/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestParseStyleSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexbox.style")
	defer teardown()
	//
	sheet, err := ParseStyleSheet(`
		.row { display: flex; Flex-Direction: row; flex-grow: 1; flex-grow: 2 !important }
		@media print { .row { display: none } }
		.col { flex-direction: column }`)
	require.NoError(t, err)
	assert.False(t, sheet.Empty())
	rules := sheet.Rules()
	require.Len(t, rules, 2, "at-rules are skipped")
	r := rules[0]
	assert.Equal(t, ".row", r.Selector())
	assert.Equal(t, []string{"display", "flex-direction", "flex-grow"}, r.Properties())
	assert.Equal(t, style.Property("2"), r.Value("flex-grow"))
	assert.True(t, r.IsImportant("flex-grow"))
	assert.False(t, r.IsImportant("display"))
	assert.Equal(t, style.Property("row"), r.Value("flex-direction"))
	assert.Equal(t, style.NullStyle, r.Value("width"))
	assert.True(t, Wrap(nil).Empty())
}

func TestParseInlineStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexbox.style")
	defer teardown()
	//
	r, err := ParseInlineStyle(" flex-grow: 1; width: 20px ")
	require.NoError(t, err)
	assert.Equal(t, "", r.Selector())
	assert.Equal(t, style.Property("1"), r.Value("flex-grow"))
	assert.Equal(t, style.Property("20px"), r.Value("width"))
	r, err = ParseInlineStyle("")
	require.NoError(t, err)
	assert.Empty(t, r.Properties())
}

func TestExtractStyleElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexbox.style")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(`<html><head>
		<style>div { order: 2 }</style><style></style>
		</head><body><style>p { order: 3 }</style><p>x</p></body></html>`))
	require.NoError(t, err)
	sheets := ExtractStyleElements(doc)
	require.Len(t, sheets, 2)
	assert.Equal(t, "div", sheets[0].Rules()[0].Selector())
	assert.Equal(t, "p", sheets[1].Rules()[0].Selector())
	//
	sheets[0].AppendRules(sheets[1])
	assert.Len(t, sheets[0].Rules(), 2)
	assert.Empty(t, ExtractStyleElements(nil))
}

type fakeSheet []cssom.Rule

func (f fakeSheet) AppendRules(cssom.StyleSheet) {}

func (f fakeSheet) Empty() bool         { return len(f) == 0 }
func (f fakeSheet) Rules() []cssom.Rule { return f }

type fakeRule struct{}

func (fakeRule) Selector() string            { return "span" }
func (fakeRule) Properties() []string        { return []string{"order"} }
func (fakeRule) Value(string) style.Property { return "7" }
func (fakeRule) IsImportant(key string) bool { return key == "order" }

func TestAppendForeignRules(t *testing.T) {
	sheet := Wrap(nil)
	sheet.AppendRules(fakeSheet{fakeRule{}})
	rules := sheet.Rules()
	require.Len(t, rules, 1)
	assert.Equal(t, "span", rules[0].Selector())
	assert.Equal(t, style.Property("7"), rules[0].Value("order"))
	assert.True(t, rules[0].IsImportant("order"))
}
