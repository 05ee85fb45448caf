/*
Package box builds a tree of flex boxes from an HTML document and lays it
out.

Every displayed element of the document body becomes a box. Elements with
children are containers, each driving a flexbox.Engine for its children:

  - display: flex and inline-flex containers are configured from their
    flex container properties
  - block containers stack their children in a stretched column
  - inline containers flow their children in a wrapping row

Text runs become textbox.Text leaves. Styles are computed from the
<style> elements of the document and the style attributes of elements,
with user agent defaults for everything not declared.

	doc, _ := html.Parse(r)
	root, err := box.Build(doc, nil)
	...
	box.Layout(root, flexbox.NewSize(80, 0))
	fmt.Println(box.Render(root))

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package box

import (
	"fmt"
	"strings"

	"github.com/npillmayer/flexbox"
	"github.com/npillmayer/flexbox/css"
	"github.com/npillmayer/flexbox/style"
	"github.com/npillmayer/flexbox/textbox"
	"github.com/npillmayer/flexbox/tree"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'flexbox.box'.
func tracer() tracing.Trace {
	return tracing.Select("flexbox.box")
}

// Box is a node of the box tree. It is a flex item of its parent's
// container and, if it has children, a flex container itself.
type Box struct {
	tree.Node[*Box]
	flexbox.Item
	htmlNode *html.Node
	styles   *style.PropertyMap // declared styles
	display  css.DisplayMode
	engine   *flexbox.Engine // for containers
	text     *textbox.Text   // for text leaves
	pos      css.PositionT
	conf     *flexbox.Config // replaces the container styles if set
	styled   bool
	ref      flexbox.Size // reference size of the most recent restyle
	dir      flexbox.FlexDirection
}

func newBox(h *html.Node, styles *style.PropertyMap) *Box {
	b := &Box{htmlNode: h, styles: styles}
	b.Payload = b // Payload will always reference the box itself
	b.Init()
	return b
}

// HTMLNode returns the HTML node a box has been created for.
func (b *Box) HTMLNode() *html.Node {
	return b.htmlNode
}

// Styles returns the styles declared for a box.
func (b *Box) Styles() *style.PropertyMap {
	return b.styles
}

// Display returns the display mode of a box.
func (b *Box) Display() css.DisplayMode {
	return b.display
}

// Engine returns the flex engine of a container, or nil for leaves.
func (b *Box) Engine() *flexbox.Engine {
	return b.engine
}

// Text returns the text of a text leaf, or nil.
func (b *Box) Text() *textbox.Text {
	return b.text
}

// Position returns the CSS position of a box, as of the most recent layout.
func (b *Box) Position() css.PositionT {
	return b.pos
}

// ParentBox returns the box containing b, or nil for the root.
func (b *Box) ParentBox() *Box {
	if p := b.Parent(); p != nil {
		return p.Payload
	}
	return nil
}

// ChildBoxes returns the children of a box.
func (b *Box) ChildBoxes() []*Box {
	children := b.Children()
	boxes := make([]*Box, len(children))
	for i, ch := range children {
		boxes[i] = ch.Payload
	}
	return boxes
}

// Name is a short, CSS-like description of a box, e.g. "div#main.row".
func (b *Box) Name() string {
	if b.text != nil {
		t := []rune(b.text.Text())
		if len(t) > 20 {
			return fmt.Sprintf("%q", string(t[:19])+"…")
		}
		return fmt.Sprintf("%q", string(t))
	}
	if b.htmlNode == nil {
		return "box"
	}
	var sb strings.Builder
	sb.WriteString(b.htmlNode.Data)
	if id := attr(b.htmlNode, "id"); id != "" {
		sb.WriteString("#" + id)
	}
	for _, class := range strings.Fields(attr(b.htmlNode, "class")) {
		sb.WriteString("." + class)
	}
	return sb.String()
}

func (b *Box) String() string {
	return fmt.Sprintf("%s %s", b.display.Symbol(), b.Name())
}

// Property returns the value of a style property for a box. Properties
// not declared for the box are inherited from the parent box, if they are
// inherited by default or declared as 'inherit'. All other properties
// default to the user agent's values.
func (b *Box) Property(key string) style.Property {
	p, ok := b.styles.Property(key)
	if ok && !p.IsInherit() && !p.IsInitial() {
		return p
	}
	if (p.IsInherit() || (!ok && style.IsCascading(key))) && b.ParentBox() != nil {
		return b.ParentBox().Property(key)
	}
	return style.GetUserAgentDefaultProperty(b.htmlNode, key)
}

// computed collects the values of some properties into a property map.
func (b *Box) computed(keys []string) *style.PropertyMap {
	pmap := style.NewPropertyMap()
	for _, key := range keys {
		if p := b.Property(key); !p.IsEmpty() {
			pmap.Add(key, p)
		}
	}
	return pmap
}

// position reads the CSS position of b together with its offsets.
func (b *Box) position() css.PositionT {
	pos, err := css.ParsePosition(b.Property("position").String())
	if err != nil {
		tracer().Errorf("box %s: %v", b.Name(), err)
	}
	offsets := make([]css.PositionOffset, 0, 4)
	for dir := css.Top; dir <= css.Left; dir++ {
		o, err := css.ParseOffset(dir, b.Property(dir.String()).String())
		if err != nil {
			tracer().Errorf("box %s: %v", b.Name(), err)
		}
		offsets = append(offsets, o)
	}
	return pos.WithOffsets(offsets)
}

var containerKeys = []string{
	"flex-direction", "flex-wrap", "justify-content", "align-items", "align-content", "max-lines",
	"padding-top", "padding-right", "padding-bottom", "padding-left",
}

var itemKeys = []string{
	"width", "height", "min-width", "min-height", "max-width", "max-height",
	"flex-grow", "flex-shrink", "flex-basis", "align-self", "order",
	"flex-wrap-before", "break-before", "visibility",
	"margin-top", "margin-right", "margin-bottom", "margin-left",
}

var alignmentKeys = []string{"horizontal-alignment", "vertical-alignment"}

// restyle sets the item attributes of b from its styles, for a containing
// block of size ref and a container of direction dir.
func (b *Box) restyle(ref flexbox.Size, dir flexbox.FlexDirection) {
	if b.styled && b.ref == ref && b.dir == dir {
		return
	}
	b.styled, b.ref, b.dir = true, ref, dir
	if b.text != nil {
		b.Init(flexbox.WithMinSize(b.text.MinWidth(), b.text.MinHeight()))
		return
	}
	opts, err := style.ItemOptions(b.computed(itemKeys), ref)
	if err != nil {
		tracer().Errorf("box %s: %v", b.Name(), err)
	}
	b.Init(opts...)
	b.pos = b.position()
	mods, err := style.ModifiersFrom(b.computed(alignmentKeys))
	if err != nil {
		tracer().Errorf("box %s: %v", b.Name(), err)
	}
	if len(mods) > 0 {
		mods = append([]style.Modifier{
			style.Grow(b.FlexGrow()),
			style.Shrink(b.FlexShrink()),
			style.Margin(b.Margin()),
			style.Align(b.AlignSelf()),
		}, mods...)
		b.Set(style.ModifierOptions(dir, 1, mods...)...)
	}
	if b.engine != nil {
		b.configure(ref.Width)
	}
}

// SetConfig configures the flex engine of a container directly, instead
// of from its styles. It has no effect for boxes without children.
func (b *Box) SetConfig(conf flexbox.Config) {
	if b.engine == nil {
		tracer().Infof("box %s is not a container, ignoring configuration", b.Name())
		return
	}
	b.conf = &conf
	b.styled = false
}

// configure sets up the flex engine of a container.
func (b *Box) configure(refWidth int) {
	if b.conf != nil {
		b.engine.Config = *b.conf
		return
	}
	conf, err := style.ContainerConfig(b.computed(containerKeys), refWidth)
	if err != nil {
		tracer().Errorf("box %s: %v", b.Name(), err)
	}
	switch {
	case b.display.IsFlex():
	case b.display.Contains(css.InnerInlineMode):
		conf = flexbox.Config{
			Direction: flexbox.Row,
			Wrap:      flexbox.Wrap,
			Padding:   conf.Padding,
			MaxLines:  flexbox.NoMaxLines,
		}
	default:
		conf = flexbox.Config{
			Direction:  flexbox.Column,
			AlignItems: flexbox.AlignStretch,
			Padding:    conf.Padding,
			MaxLines:   flexbox.NoMaxLines,
		}
	}
	b.engine.Config = conf
}

// Measure sizes a box within the given constraints. Containers restyle
// their children for the content size first, then delegate to their flex
// engine.
func (b *Box) Measure(width, height flexbox.Constraint) flexbox.Size {
	switch {
	case b.text != nil:
		return b.SetMeasured(b.text.Measure(width, height))
	case b.engine != nil:
		ref := flexbox.Size{ // -1 for unknown dimensions
			Width:  content(width, b.engine.Padding.Horizontal()),
			Height: content(height, b.engine.Padding.Vertical()),
		}
		for _, ch := range b.ChildBoxes() {
			ch.restyle(ref, b.engine.Direction)
		}
		return b.SetMeasured(b.engine.Measure(width, height))
	}
	return b.Item.Measure(width, height)
}

func content(c flexbox.Constraint, padding int) int {
	if c.Mode == flexbox.Unspecified {
		return -1
	}
	return max(0, c.Size-padding)
}

// Layout records the rectangle of a box, relative to its parent, and
// places the children of a container.
func (b *Box) Layout(left, top, right, bottom int) {
	b.Item.Layout(left, top, right, bottom)
	if b.engine != nil {
		b.engine.Layout(0, 0, right-left, bottom-top)
	}
}

// Rect returns the rectangle of a box relative to the root box.
// Relatively positioned boxes are shifted by their offsets, together with
// their children.
func (b *Box) Rect() flexbox.Rect {
	r := b.Bounds()
	x, y := b.shift()
	for p := b.ParentBox(); p != nil; p = p.ParentBox() {
		o := p.Bounds()
		dx, dy := p.shift()
		x, y = x+o.Left+dx, y+o.Top+dy
	}
	r.Left, r.Right = r.Left+x, r.Right+x
	r.Top, r.Bottom = r.Top+y, r.Bottom+y
	return r
}

func (b *Box) shift() (int, int) {
	return b.pos.Shift(b.ref.Width, b.ref.Height)
}

// Layout sizes and places a box tree within a viewport. The root box is as
// wide as the viewport, unless it requests a width. A viewport height ≤ 0
// leaves the height of the root to its content.
func Layout(root *Box, viewport flexbox.Size) flexbox.Size {
	ref := viewport
	if ref.Height <= 0 {
		ref.Height = -1
	}
	root.restyle(ref, flexbox.Column)
	width := flexbox.NewConstraint(viewport.Width, flexbox.Exactly)
	if root.Width() >= 0 {
		width = flexbox.NewConstraint(root.Width(), flexbox.Exactly)
	}
	var height flexbox.Constraint
	switch {
	case root.Height() >= 0:
		height = flexbox.NewConstraint(root.Height(), flexbox.Exactly)
	case viewport.Height > 0:
		height = flexbox.NewConstraint(viewport.Height, flexbox.AtMost)
	}
	size := root.Measure(width, height)
	root.Layout(0, 0, size.Width, size.Height)
	tracer().Infof("box tree laid out to %v", size)
	return size
}

var _ flexbox.Node = (*Box)(nil)
