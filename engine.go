package flexbox

// Config is the flex configuration of a container. The zero value is a
// single-line row, with children packed at the start of both axes.
type Config struct {
	Direction    FlexDirection
	Wrap         FlexWrap
	Justify      JustifyContent
	AlignItems   AlignItems
	AlignContent AlignContent
	Padding      Spacing
	MaxLines     int // maximum number of flex lines, values ≤ 0 mean unlimited
}

// NoMaxLines leaves the number of flex lines unlimited.
const NoMaxLines = -1

func (c Config) valid() bool {
	return c.Direction.Valid() && c.Wrap.Valid() && c.Justify.Valid() &&
		c.AlignItems.Valid() && c.AlignContent.Valid()
}

func (c Config) hasMaxLines() bool {
	return c.MaxLines > 0
}

// Engine computes flexbox layout for the children of one container.
// Clients configure it through the embedded Config, which may be changed
// between layout passes.
//
// An Engine is not safe for concurrent use, and a child must not call back
// into the engine of its container from Measure or Layout.
type Engine struct {
	Config
	nodes []Node
	order ordering
	lines []FlexLine // lines of the most recent Measure, including spacers
	// per presentation index
	indexToLine []int
	frozen      []bool
	// per declared index
	sizes  []measureCacheEntry
	placed []Rect
	pass   uint32 // current line construction pass
}

// measureCacheEntry remembers the constraints a child has last been
// measured with and the resulting size.
type measureCacheEntry struct {
	width, height Constraint
	size          Size
	pass          uint32
}

// NewEngine creates an engine for a container with configuration conf.
func NewEngine(conf Config) *Engine {
	return &Engine{Config: conf}
}

// --- Child collection ------------------------------------------------------

// AddNode appends a child.
func (e *Engine) AddNode(node Node) {
	e.InsertNode(len(e.nodes), node)
}

// InsertNode inserts a child at declared position index. Index may be equal
// to the number of children, appending the child.
func (e *Engine) InsertNode(index int, node Node) {
	assertThat(node != nil, "cannot add nil node")
	assertThat(index >= 0 && index <= len(e.nodes), "node index out of range: %d", index)
	e.nodes = append(e.nodes, nil)
	copy(e.nodes[index+1:], e.nodes[index:])
	e.nodes[index] = node
	e.order.invalidate()
}

// ReplaceNode replaces the child at declared position index and returns
// the previous child.
func (e *Engine) ReplaceNode(index int, node Node) Node {
	assertThat(node != nil, "cannot add nil node")
	assertThat(index >= 0 && index < len(e.nodes), "node index out of range: %d", index)
	prev := e.nodes[index]
	e.nodes[index] = node
	e.order.invalidate()
	return prev
}

// RemoveNode removes the child at declared position index and returns it.
func (e *Engine) RemoveNode(index int) Node {
	assertThat(index >= 0 && index < len(e.nodes), "node index out of range: %d", index)
	node := e.nodes[index]
	copy(e.nodes[index:], e.nodes[index+1:])
	e.nodes[len(e.nodes)-1] = nil
	e.nodes = e.nodes[:len(e.nodes)-1]
	e.order.invalidate()
	return node
}

// RemoveAllNodes clears the child collection.
func (e *Engine) RemoveAllNodes() {
	for i := range e.nodes {
		e.nodes[i] = nil
	}
	e.nodes = e.nodes[:0]
	e.lines = e.lines[:0]
	e.order.invalidate()
}

// Nodes returns the children in declared order. The returned slice is a
// copy.
func (e *Engine) Nodes() []Node {
	nodes := make([]Node, len(e.nodes))
	copy(nodes, e.nodes)
	return nodes
}

// NodeCount returns the number of children.
func (e *Engine) NodeCount() int {
	return len(e.nodes)
}

// --- Results ---------------------------------------------------------------

// FlexLines returns the flex lines computed by the most recent call to
// Measure, including the spacer lines synthesized for align-content.
func (e *Engine) FlexLines() []FlexLine {
	lines := make([]FlexLine, len(e.lines))
	copy(lines, e.lines)
	return lines
}

// FlexLineOf returns the position within FlexLines of the line holding the
// child at presentation index i.
func (e *Engine) FlexLineOf(i int) (int, bool) {
	if i < 0 || i >= len(e.nodes) || i >= len(e.indexToLine) {
		return -1, false
	}
	l := e.indexToLine[i]
	if l < 0 || l >= len(e.lines) {
		return -1, false
	}
	if line := e.lines[l]; line.IsSpacer() || i < line.FirstIndex || i > line.LastIndex {
		return -1, false
	}
	return l, true
}

// ChildBounds returns the rectangle assigned to the child at declared index
// i by the most recent call to Layout.
func (e *Engine) ChildBounds(i int) (Rect, bool) {
	if i < 0 || i >= len(e.nodes) || i >= len(e.placed) {
		return Rect{}, false
	}
	return e.placed[i], true
}

// --- Measuring -------------------------------------------------------------

// Measure computes the flex lines for the current children and returns the
// size of the container. Children are measured, possibly repeatedly, as a
// side effect.
func (e *Engine) Measure(width, height Constraint) Size {
	assertThat(e.Config.valid(), "invalid flex configuration: %+v", e.Config)
	horizontal := e.Direction.IsHorizontal()
	tracer().Debugf("flexbox measure %s x %s, %d children, %v", width, height, len(e.nodes), e.Direction)
	main, cross := width, height
	if !horizontal {
		main, cross = height, width
	}
	e.lines = e.calculateFlexLines(main, cross, LineRange{To: -1})
	e.determineMainSize(width, height, 0)
	if horizontal && e.AlignItems == AlignBaseline {
		e.alignBaselines()
	}
	e.determineCrossSize(width, height)
	e.stretchChildren()
	size := e.measuredDimension(width, height)
	tracer().Debugf("flexbox measured %s in %d lines", size, len(e.lines))
	return size
}

// measuredDimension computes the size of the container from the resolved
// flex lines.
func (e *Engine) measuredDimension(width, height Constraint) Size {
	var w, h int
	if e.Direction.IsHorizontal() {
		w = e.largestMainSize()
		h = e.sumOfCrossSize() + e.Padding.Vertical()
	} else {
		w = e.sumOfCrossSize() + e.Padding.Horizontal()
		h = e.largestMainSize()
	}
	return NewSize(dimension(w, width), dimension(h, height))
}

func dimension(calculated int, c Constraint) int {
	switch c.Mode {
	case Exactly:
		return c.Size
	case AtMost:
		return max(0, min(c.Size, calculated))
	}
	return max(0, calculated)
}

func (e *Engine) largestMainSize() int {
	if len(e.lines) == 0 {
		if e.Direction.IsHorizontal() {
			return e.Padding.Horizontal()
		}
		return e.Padding.Vertical()
	}
	largest := e.lines[0].MainSize
	for _, line := range e.lines[1:] {
		largest = max(largest, line.MainSize)
	}
	return largest
}

func (e *Engine) sumOfCrossSize() int {
	sum := 0
	for _, line := range e.lines {
		sum += line.CrossSize
	}
	return sum
}

// --- Caches ----------------------------------------------------------------

// measureChild measures the child at presentation index i and caches the
// result. A child already measured with identical constraints during the
// current pass is not measured again.
func (e *Engine) measureChild(i int, node Node, width, height Constraint) Size {
	d, _ := e.order.declared(e.nodes, i)
	e.ensureCaches()
	entry := &e.sizes[d]
	if entry.pass == e.pass && entry.width == width && entry.height == height {
		return entry.size
	}
	size := node.Measure(width, height)
	*entry = measureCacheEntry{width: width, height: height, size: size, pass: e.pass}
	return size
}

// measuredSize returns the size of the child at presentation index i as
// measured during the current pass. Children not measured in this pass
// report their own idea of their size.
func (e *Engine) measuredSize(i int, node Node) Size {
	d, _ := e.order.declared(e.nodes, i)
	if d < len(e.sizes) && e.sizes[d].pass == e.pass {
		return e.sizes[d].size
	}
	return Size{Width: node.MeasuredWidth(), Height: node.MeasuredHeight()}
}

// ensureCaches sizes the per-child caches for the current number of
// children, growing capacity geometrically.
func (e *Engine) ensureCaches() {
	n := len(e.nodes)
	if len(e.sizes) < n {
		e.sizes = grow(e.sizes, n)
	}
	if len(e.indexToLine) < n {
		e.indexToLine = grow(e.indexToLine, n)
	}
}

// ensureFrozen resets the frozen flags for a grow/shrink pass.
func (e *Engine) ensureFrozen() {
	n := len(e.nodes)
	if len(e.frozen) < n {
		e.frozen = make([]bool, max(n, 10, 2*len(e.frozen)))
		return
	}
	for i := range e.frozen {
		e.frozen[i] = false
	}
}

func grow[T any](s []T, n int) []T {
	if cap(s) >= n {
		return s[:n]
	}
	t := make([]T, n, max(n, 10, 2*cap(s)))
	copy(t, s)
	return t
}
