package flexbox

import "math"

// alignBaselines recomputes the cross size of horizontal lines for
// baseline alignment, where children are shifted so that their baselines
// line up.
func (e *Engine) alignBaselines() {
	for l := range e.lines {
		line := &e.lines[l]
		largest := math.MinInt
		for k := 0; k < line.ItemCount; k++ {
			i := line.FirstIndex + k
			child, ok := e.childAt(i)
			if !ok || !child.Visible() {
				continue
			}
			size, margin := e.measuredSize(i, child), child.Margin()
			var extent int
			if e.Wrap != WrapReverse {
				top := max(line.MaxBaseline-baselineOf(child, size), margin.Top)
				extent = size.Height + top + margin.Bottom
			} else {
				bottom := max(line.MaxBaseline-size.Height+baselineOf(child, size), margin.Bottom)
				extent = size.Height + margin.Top + bottom
			}
			largest = max(largest, extent)
		}
		if largest != math.MinInt {
			line.CrossSize = largest
		}
	}
}

// determineCrossSize distributes free cross space among the lines, as
// demanded by align-content. This happens only if the container's cross
// size is fixed.
func (e *Engine) determineCrossSize(width, height Constraint) {
	cross, padding := height, e.Padding.Vertical()
	if e.Direction.IsVertical() {
		cross, padding = width, e.Padding.Horizontal()
	}
	if cross.Mode != Exactly || len(e.lines) == 0 {
		return
	}
	if len(e.lines) == 1 {
		e.lines[0].CrossSize = cross.Size - padding
		return
	}
	size := cross.Size
	total := e.sumOfCrossSize() + padding
	n := len(e.lines)
	switch e.AlignContent {
	case ContentFlexStart:
	case ContentStretch:
		if total >= size {
			return
		}
		unit := float64(size-total) / float64(n)
		roundingError := 0.0
		for l := range e.lines {
			raw := float64(e.lines[l].CrossSize) + unit
			if l == n-1 {
				raw += roundingError
				roundingError = 0
			}
			newCross := round(raw)
			roundingError += raw - float64(newCross)
			e.lines[l].CrossSize, roundingError = carry(newCross, roundingError)
		}
	case ContentSpaceAround:
		if total >= size {
			e.centerLines(size, total)
			break
		}
		space := (size - total) / (2 * n)
		lines := make([]FlexLine, 0, 3*n)
		for _, line := range e.lines {
			lines = append(lines, spacerLine(space), line, spacerLine(space))
		}
		e.lines = lines
	case ContentSpaceBetween:
		if total >= size {
			return
		}
		space := float64(size-total) / float64(n-1)
		roundingError := 0.0
		lines := make([]FlexLine, 0, 2*n-1)
		for l, line := range e.lines {
			lines = append(lines, line)
			if l == n-1 {
				break
			}
			var gap int
			if l == n-2 {
				gap = round(space + roundingError)
				roundingError = 0
			} else {
				gap = round(space)
			}
			roundingError += space - float64(gap)
			gap, roundingError = carry(gap, roundingError)
			lines = append(lines, spacerLine(gap))
		}
		e.lines = lines
	case ContentCenter:
		e.centerLines(size, total)
	case ContentFlexEnd:
		e.lines = append([]FlexLine{spacerLine(size - total)}, e.lines...)
	default:
		assertThat(false, "invalid align-content: %v", e.AlignContent)
	}
	e.reindexLines()
}

func (e *Engine) centerLines(size, total int) {
	space := (size - total) / 2
	lines := make([]FlexLine, 0, len(e.lines)+2)
	lines = append(lines, spacerLine(space))
	lines = append(lines, e.lines...)
	e.lines = append(lines, spacerLine(space))
}

// reindexLines updates the index→line lookup after spacer lines have been
// inserted.
func (e *Engine) reindexLines() {
	for l, line := range e.lines {
		if line.IsSpacer() {
			continue
		}
		for i := line.FirstIndex; i <= line.LastIndex && i < len(e.indexToLine); i++ {
			e.indexToLine[i] = l
		}
	}
}

// stretchChildren sets the cross size of children aligned with stretch to
// the cross size of their line.
func (e *Engine) stretchChildren() {
	if e.AlignItems == AlignStretch {
		for l := range e.lines {
			line := &e.lines[l]
			for k := 0; k < line.ItemCount; k++ {
				i := line.FirstIndex + k
				child, ok := e.childAt(i)
				if !ok || !child.Visible() {
					continue
				}
				if a := child.AlignSelf(); a != SelfAuto && a != SelfStretch {
					continue
				}
				e.stretch(i, child, line.CrossSize)
			}
		}
		return
	}
	for l := range e.lines {
		for _, i := range e.lines[l].stretchIndices {
			if child, ok := e.childAt(i); ok {
				e.stretch(i, child, e.lines[l].CrossSize)
			}
		}
	}
}

// stretch re-measures a child with an exact cross size, keeping its main
// size.
func (e *Engine) stretch(i int, child Node, crossSize int) {
	size, margin := e.measuredSize(i, child), child.Margin()
	if e.Direction.IsHorizontal() {
		h := min(max(crossSize-margin.Vertical(), child.MinHeight()), child.MaxHeight())
		e.measureChild(i, child, NewConstraint(size.Width, Exactly), NewConstraint(h, Exactly))
		return
	}
	w := min(max(crossSize-margin.Horizontal(), child.MinWidth()), child.MaxWidth())
	e.measureChild(i, child, NewConstraint(w, Exactly), NewConstraint(size.Height, Exactly))
}
