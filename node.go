package flexbox

// Sentinels for a node's requested width or height.
const (
	MatchParent = -1 // as large as the container allows
	WrapContent = -2 // as large as the node's content
)

// Defaults for node attributes.
const (
	DefaultOrder            = 1
	DefaultFlexGrow         = 0.0
	DefaultFlexShrink       = 1.0
	UndefinedFlexShrink     = 0.0
	DefaultFlexBasisPercent = -1.0 // unset
	NoBaseline              = -1
)

// Node is the contract every child of a flex container has to fulfil.
// Nodes are owned by the client; the engine reads their attributes and calls
// Measure and Layout. Attributes must not change while the engine is
// measuring or laying out.
//
// Implementations should be pointer types, as the engine compares nodes
// for identity.
//
// Most clients will embed Item, which provides all the attribute getters,
// and override Measure.
type Node interface {
	Width() int  // requested width, or MatchParent, or WrapContent
	Height() int // requested height, or MatchParent, or WrapContent
	MinWidth() int
	MinHeight() int
	MaxWidth() int
	MaxHeight() int
	Visible() bool // invisible nodes take no space
	Baseline() int // offset from the top edge, or NoBaseline
	Order() int
	FlexGrow() float64
	FlexShrink() float64
	FlexBasisPercent() float64 // fraction of the container's main size, or -1
	AlignSelf() AlignSelf
	WrapBefore() bool // force the node to start a new flex line
	Margin() Spacing

	// MeasuredWidth and MeasuredHeight report the size returned by the most
	// recent call to Measure.
	MeasuredWidth() int
	MeasuredHeight() int

	// Measure asks the node to size itself within the given constraints.
	Measure(width, height Constraint) Size
	// Layout assigns the node its final rectangle, relative to the container.
	Layout(left, top, right, bottom int)
}

// --- Item ------------------------------------------------------------------

// Item is a general purpose implementation of Node. It measures to its
// requested size and remembers the rectangle it has been assigned by Layout.
//
// Item is meant to be embedded by concrete node types. Embedders have to
// call Init before use, as the zero value does not carry the defaults of a
// flex item.
type Item struct {
	width, height       int
	minWidth, minHeight int
	maxWidth, maxHeight int
	hidden              bool
	baseline            int
	order               int
	grow, shrink, basis float64
	alignSelf           AlignSelf
	wrapBefore          bool
	margin              Spacing
	measured            Size
	bounds              Rect
}

// ItemOption configures an Item.
type ItemOption func(*Item)

// NewItem creates an item with default attributes, modified by options.
func NewItem(opts ...ItemOption) *Item {
	it := &Item{}
	it.Init(opts...)
	return it
}

// Init resets an item to the default attributes and applies options.
func (it *Item) Init(opts ...ItemOption) {
	*it = Item{
		width:     WrapContent,
		height:    WrapContent,
		maxWidth:  MaxSize,
		maxHeight: MaxSize,
		baseline:  NoBaseline,
		order:     DefaultOrder,
		grow:      DefaultFlexGrow,
		shrink:    DefaultFlexShrink,
		basis:     DefaultFlexBasisPercent,
	}
	it.Set(opts...)
}

// Set applies options to an item, leaving other attributes untouched.
func (it *Item) Set(opts ...ItemOption) {
	for _, opt := range opts {
		opt(it)
	}
}

// WithSize sets the requested width and height.
func WithSize(width, height int) ItemOption {
	return func(it *Item) { it.width, it.height = width, height }
}

// WithWidth sets the requested width.
func WithWidth(width int) ItemOption {
	return func(it *Item) { it.width = width }
}

// WithHeight sets the requested height.
func WithHeight(height int) ItemOption {
	return func(it *Item) { it.height = height }
}

// WithMinSize sets the minimum width and height.
func WithMinSize(width, height int) ItemOption {
	return func(it *Item) { it.minWidth, it.minHeight = width, height }
}

// WithMaxSize sets the maximum width and height.
func WithMaxSize(width, height int) ItemOption {
	return func(it *Item) { it.maxWidth, it.maxHeight = width, height }
}

// WithGrow sets the flex grow factor.
func WithGrow(grow float64) ItemOption {
	return func(it *Item) { it.grow = grow }
}

// WithShrink sets the flex shrink factor.
func WithShrink(shrink float64) ItemOption {
	return func(it *Item) { it.shrink = shrink }
}

// WithBasisPercent sets the flex basis as a fraction of the container's
// main size.
func WithBasisPercent(fraction float64) ItemOption {
	return func(it *Item) { it.basis = fraction }
}

// WithAlignSelf overrides the container's item alignment.
func WithAlignSelf(align AlignSelf) ItemOption {
	return func(it *Item) { it.alignSelf = align }
}

// WithOrder sets the order attribute.
func WithOrder(order int) ItemOption {
	return func(it *Item) { it.order = order }
}

// WithWrapBefore forces the item to start a new flex line.
func WithWrapBefore(wrap bool) ItemOption {
	return func(it *Item) { it.wrapBefore = wrap }
}

// WithMargin sets the margin.
func WithMargin(margin Spacing) ItemOption {
	return func(it *Item) { it.margin = margin }
}

// WithVisible sets the visibility.
func WithVisible(visible bool) ItemOption {
	return func(it *Item) { it.hidden = !visible }
}

// WithBaseline sets the baseline.
func WithBaseline(baseline int) ItemOption {
	return func(it *Item) { it.baseline = baseline }
}

func (it *Item) Width() int                { return it.width }
func (it *Item) Height() int               { return it.height }
func (it *Item) MinWidth() int             { return it.minWidth }
func (it *Item) MinHeight() int            { return it.minHeight }
func (it *Item) MaxWidth() int             { return it.maxWidth }
func (it *Item) MaxHeight() int            { return it.maxHeight }
func (it *Item) Visible() bool             { return !it.hidden }
func (it *Item) Baseline() int             { return it.baseline }
func (it *Item) Order() int                { return it.order }
func (it *Item) FlexGrow() float64         { return it.grow }
func (it *Item) FlexShrink() float64       { return it.shrink }
func (it *Item) FlexBasisPercent() float64 { return it.basis }
func (it *Item) AlignSelf() AlignSelf      { return it.alignSelf }
func (it *Item) WrapBefore() bool          { return it.wrapBefore }
func (it *Item) Margin() Spacing           { return it.margin }
func (it *Item) MeasuredWidth() int        { return it.measured.Width }
func (it *Item) MeasuredHeight() int       { return it.measured.Height }

// Measure resolves the requested size against the constraints. Sentinel
// sizes count as a preference of 0.
func (it *Item) Measure(width, height Constraint) Size {
	return it.SetMeasured(NewSize(
		width.Resolve(max(0, it.width)),
		height.Resolve(max(0, it.height)),
	))
}

// SetMeasured records the result of measuring. Embedders overriding Measure
// call it to keep MeasuredWidth and MeasuredHeight current.
func (it *Item) SetMeasured(size Size) Size {
	it.measured = size
	return size
}

// Layout records the rectangle.
func (it *Item) Layout(left, top, right, bottom int) {
	it.bounds = Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Bounds returns the rectangle of the most recent Layout call.
func (it *Item) Bounds() Rect {
	return it.bounds
}

var _ Node = (*Item)(nil)
