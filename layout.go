package flexbox

// Layout places the children within a container of the given bounds,
// using the flex lines computed by the most recent call to Measure.
// Children receive rectangles relative to the container's top left corner.
//
// Calling Layout without a preceding Measure places nothing.
func (e *Engine) Layout(left, top, right, bottom int) {
	e.placed = grow(e.placed, len(e.nodes))
	for i := range e.placed {
		e.placed[i] = Rect{}
	}
	switch e.Direction {
	case Row:
		e.layoutHorizontal(false, left, top, right, bottom)
	case RowReverse:
		e.layoutHorizontal(true, left, top, right, bottom)
	case Column:
		e.layoutVertical(e.Wrap == WrapReverse, false, left, top, right, bottom)
	case ColumnReverse:
		e.layoutVertical(e.Wrap != WrapReverse, true, left, top, right, bottom)
	default:
		assertThat(false, "invalid flex direction: %v", e.Direction)
	}
}

// mainAxisStart computes the start and end offsets of the first child in a
// line, and the space between children, from justify-content.
func (e *Engine) mainAxisStart(line *FlexLine, extent, padStart, padEnd int) (start, end, space float64) {
	free := float64(extent - line.MainSize)
	visible := float64(line.VisibleItemCount())
	switch e.Justify {
	case JustifyFlexStart:
		start, end = float64(padStart), float64(extent-padEnd)
	case JustifyFlexEnd:
		start, end = float64(extent-line.MainSize+padStart), float64(line.MainSize-padEnd)
	case JustifyCenter:
		start, end = float64(padStart)+free/2, float64(extent-padEnd)-free/2
	case JustifySpaceAround:
		if visible != 0 {
			space = free / visible
		}
		start, end = float64(padStart)+space/2, float64(extent-padEnd)-space/2
	case JustifySpaceBetween:
		denominator := visible - 1
		if visible == 1 {
			denominator = 1
		}
		space = free / denominator
		start, end = float64(padStart), float64(extent-padEnd)
	case JustifySpaceEvenly:
		if visible != 0 {
			space = free / (visible + 1)
		}
		start, end = float64(padStart)+space, float64(extent-padEnd)-space
	default:
		assertThat(false, "invalid justify-content: %v", e.Justify)
	}
	return start, end, max(space, 0)
}

func (e *Engine) layoutHorizontal(rtl bool, left, top, right, bottom int) {
	width, height := right-left, bottom-top
	childTop := e.Padding.Top
	childBottom := height - e.Padding.Bottom
	for l := range e.lines {
		line := &e.lines[l]
		childLeft, childRight, space := e.mainAxisStart(line, width, e.Padding.Start, e.Padding.End)
		for k := 0; k < line.ItemCount; k++ {
			i := line.FirstIndex + k
			child, ok := e.childAt(i)
			if !ok || !child.Visible() {
				continue
			}
			size, margin := e.measuredSize(i, child), child.Margin()
			childLeft += float64(margin.Start)
			childRight -= float64(margin.End)
			t, b := childTop, childTop+size.Height
			if e.Wrap == WrapReverse {
				t, b = childBottom-size.Height, childBottom
			}
			var cl, cr int
			if rtl {
				cr = round(childRight)
				cl = cr - size.Width
			} else {
				cl = round(childLeft)
				cr = cl + size.Width
			}
			e.placeInRow(i, child, size, line, cl, t, cr, b)
			childLeft += float64(size.Width+margin.End) + space
			childRight -= float64(size.Width+margin.Start) + space
		}
		childTop += line.CrossSize
		childBottom -= line.CrossSize
	}
}

func (e *Engine) layoutVertical(rtl, bottomToTop bool, left, top, right, bottom int) {
	width, height := right-left, bottom-top
	childLeft := e.Padding.Start
	childRight := width - e.Padding.End
	for l := range e.lines {
		line := &e.lines[l]
		childTop, childBottom, space := e.mainAxisStart(line, height, e.Padding.Top, e.Padding.Bottom)
		for k := 0; k < line.ItemCount; k++ {
			i := line.FirstIndex + k
			child, ok := e.childAt(i)
			if !ok || !child.Visible() {
				continue
			}
			size, margin := e.measuredSize(i, child), child.Margin()
			childTop += float64(margin.Top)
			childBottom -= float64(margin.Bottom)
			cl, cr := childLeft, childLeft+size.Width
			if rtl {
				cl, cr = childRight-size.Width, childRight
			}
			var t, b int
			if bottomToTop {
				b = round(childBottom)
				t = b - size.Height
			} else {
				t = round(childTop)
				b = t + size.Height
			}
			e.placeInColumn(i, child, size, line, rtl, cl, t, cr, b)
			childTop += float64(size.Height+margin.Bottom) + space
			childBottom -= float64(size.Height+margin.Top) + space
		}
		childLeft += line.CrossSize
		childRight -= line.CrossSize
	}
}

// placeInRow positions a child on the cross axis of a horizontal line.
// The rectangle passed in is the child's position at the leading edge of
// the line.
func (e *Engine) placeInRow(i int, child Node, size Size, line *FlexLine, left, top, right, bottom int) {
	margin := child.Margin()
	cross := line.CrossSize
	reverse := e.Wrap == WrapReverse
	switch child.AlignSelf().Resolve(e.AlignItems) {
	case AlignFlexStart, AlignStretch:
		if !reverse {
			e.place(i, child, left, top+margin.Top, right, bottom+margin.Top)
		} else {
			e.place(i, child, left, top-margin.Bottom, right, bottom-margin.Bottom)
		}
	case AlignBaseline:
		if !reverse {
			offset := max(line.MaxBaseline-baselineOf(child, size), margin.Top)
			e.place(i, child, left, top+offset, right, bottom+offset)
		} else {
			offset := max(line.MaxBaseline-size.Height+baselineOf(child, size), margin.Bottom)
			e.place(i, child, left, top-offset, right, bottom-offset)
		}
	case AlignFlexEnd:
		if !reverse {
			e.place(i, child, left, top+cross-size.Height-margin.Bottom, right, top+cross-margin.Bottom)
		} else {
			e.place(i, child, left, top-cross+size.Height+margin.Top, right, bottom-cross+size.Height+margin.Top)
		}
	case AlignCenter:
		offset := (cross - size.Height + margin.Top - margin.Bottom) / 2
		if !reverse {
			e.place(i, child, left, top+offset, right, top+offset+size.Height)
		} else {
			e.place(i, child, left, top-offset, right, top-offset+size.Height)
		}
	}
}

// placeInColumn positions a child on the cross axis of a vertical line.
func (e *Engine) placeInColumn(i int, child Node, size Size, line *FlexLine, rtl bool, left, top, right, bottom int) {
	margin := child.Margin()
	cross := line.CrossSize
	switch child.AlignSelf().Resolve(e.AlignItems) {
	case AlignFlexStart, AlignStretch, AlignBaseline:
		if !rtl {
			e.place(i, child, left+margin.Start, top, right+margin.Start, bottom)
		} else {
			e.place(i, child, left-margin.End, top, right-margin.End, bottom)
		}
	case AlignFlexEnd:
		if !rtl {
			offset := cross - size.Width - margin.End
			e.place(i, child, left+offset, top, right+offset, bottom)
		} else {
			offset := cross - size.Width - margin.Start
			e.place(i, child, left-offset, top, right-offset, bottom)
		}
	case AlignCenter:
		offset := (cross - size.Width + margin.Start - margin.End) / 2
		if !rtl {
			e.place(i, child, left+offset, top, right+offset, bottom)
		} else {
			e.place(i, child, left-offset, top, right-offset, bottom)
		}
	}
}

// place hands a child its final rectangle.
func (e *Engine) place(i int, child Node, left, top, right, bottom int) {
	if d, ok := e.order.declared(e.nodes, i); ok {
		e.placed[d] = Rect{Left: left, Top: top, Right: right, Bottom: bottom}
	}
	child.Layout(left, top, right, bottom)
}
