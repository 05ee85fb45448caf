package flexbox

// determineMainSize distributes free space on the main axis of every line,
// starting with the line of the child at presentation index from.
// Lines shorter than the container grow, lines longer than the container
// shrink, as far as the children's flex factors allow.
func (e *Engine) determineMainSize(width, height Constraint, from int) {
	e.ensureFrozen()
	if from >= len(e.nodes) {
		return
	}
	var mainSize, padding int
	if e.Direction.IsHorizontal() {
		switch width.Mode {
		case Exactly:
			mainSize = width.Size
		case AtMost:
			mainSize = min(e.largestMainSize(), width.Size)
		default:
			mainSize = e.largestMainSize()
		}
		padding = e.Padding.Horizontal()
	} else {
		if height.Mode == Exactly {
			mainSize = height.Size
		} else {
			mainSize = e.largestMainSize()
		}
		padding = e.Padding.Vertical()
	}
	start := 0
	if from < len(e.indexToLine) {
		start = e.indexToLine[from]
	}
	for l := start; l < len(e.lines); l++ {
		line := &e.lines[l]
		if line.MainSize < mainSize && line.AnyItemsHaveGrow {
			e.expand(width, height, line, mainSize, padding)
		} else if line.MainSize > mainSize && line.AnyItemsHaveShrink {
			e.shrink(width, height, line, mainSize, padding)
		}
	}
}

// expand grows the children of a line proportionally to their grow factors,
// until the line fills maxMain. Children reaching their maximum size are
// frozen, and the remaining space is distributed again among the others.
func (e *Engine) expand(width, height Constraint, line *FlexLine, maxMain, padding int) {
	horizontal := e.Direction.IsHorizontal()
	repeated := false
	for {
		if line.TotalFlexGrow <= 0 || maxMain < line.MainSize {
			return
		}
		sizeBefore := line.MainSize
		needsRepeat := false
		unit := float64(maxMain-line.MainSize) / line.TotalFlexGrow
		line.MainSize = padding
		largestCross := 0
		if !repeated {
			line.CrossSize = noCrossSize
		}
		roundingError := 0.0
		last := e.lastFlexible(line, Node.FlexGrow)
		for k := 0; k < line.ItemCount; k++ {
			i := line.FirstIndex + k
			child, ok := e.childAt(i)
			if !ok || !child.Visible() {
				continue
			}
			size := e.measuredSize(i, child)
			if grow := child.FlexGrow(); !e.frozen[i] && grow > 0 {
				raw := float64(mainOf(size, horizontal)) + unit*grow
				if k == last {
					raw += roundingError
					roundingError = 0
				}
				newMain := round(raw)
				if limit := maxMainOf(child, horizontal); newMain > limit {
					needsRepeat = true
					newMain = limit
					e.frozen[i] = true
					line.TotalFlexGrow -= grow
				} else {
					roundingError += raw - float64(newMain)
					newMain, roundingError = carry(newMain, roundingError)
				}
				size = e.measureMain(i, child, width, height, newMain, line.SumCrossSizeBefore)
			}
			margin := child.Margin()
			largestCross = max(largestCross, crossOf(size, horizontal)+marginCross(margin, horizontal))
			line.MainSize += mainOf(size, horizontal) + marginMain(margin, horizontal)
			line.CrossSize = max(line.CrossSize, largestCross)
		}
		tracer().Debugf("flexbox: expanded %v", line)
		if !needsRepeat || sizeBefore == line.MainSize {
			return
		}
		repeated = true
	}
}

// shrink is the counterpart of expand for lines longer than maxMain.
func (e *Engine) shrink(width, height Constraint, line *FlexLine, maxMain, padding int) {
	horizontal := e.Direction.IsHorizontal()
	repeated := false
	for {
		if line.TotalFlexShrink <= 0 || maxMain > line.MainSize {
			return
		}
		sizeBefore := line.MainSize
		needsRepeat := false
		unit := float64(line.MainSize-maxMain) / line.TotalFlexShrink
		line.MainSize = padding
		largestCross := 0
		if !repeated {
			line.CrossSize = noCrossSize
		}
		roundingError := 0.0
		last := e.lastFlexible(line, Node.FlexShrink)
		for k := 0; k < line.ItemCount; k++ {
			i := line.FirstIndex + k
			child, ok := e.childAt(i)
			if !ok || !child.Visible() {
				continue
			}
			size := e.measuredSize(i, child)
			if shrink := child.FlexShrink(); !e.frozen[i] && shrink > 0 {
				raw := float64(mainOf(size, horizontal)) - unit*shrink
				if k == last {
					raw += roundingError
					roundingError = 0
				}
				newMain := round(raw)
				if limit := minMainOf(child, horizontal); newMain < limit {
					needsRepeat = true
					newMain = limit
					e.frozen[i] = true
					line.TotalFlexShrink -= shrink
				} else {
					roundingError += raw - float64(newMain)
					newMain, roundingError = carry(newMain, roundingError)
				}
				size = e.measureMain(i, child, width, height, newMain, line.SumCrossSizeBefore)
			}
			margin := child.Margin()
			largestCross = max(largestCross, crossOf(size, horizontal)+marginCross(margin, horizontal))
			line.MainSize += mainOf(size, horizontal) + marginMain(margin, horizontal)
			line.CrossSize = max(line.CrossSize, largestCross)
		}
		tracer().Debugf("flexbox: shrunk %v", line)
		if !needsRepeat || sizeBefore == line.MainSize {
			return
		}
		repeated = true
	}
}

// lastFlexible returns the offset within line of the last visible child
// which is not frozen and has a positive flex factor, or -1. This child
// takes up the remaining rounding error of a grow or shrink pass.
func (e *Engine) lastFlexible(line *FlexLine, factor func(Node) float64) int {
	for k := line.ItemCount - 1; k >= 0; k-- {
		i := line.FirstIndex + k
		child, ok := e.childAt(i)
		if ok && child.Visible() && !e.frozen[i] && factor(child) > 0 {
			return k
		}
	}
	return -1
}

// carry moves a rounding error of more than one unit into size.
func carry(size int, err float64) (int, float64) {
	if err > 1 {
		return size + 1, err - 1
	} else if err < -1 {
		return size - 1, err + 1
	}
	return size, err
}

// measureMain re-measures a child with an exact main size. The cross
// constraint is derived from the container's, minus the cross space taken
// by previous lines.
func (e *Engine) measureMain(i int, child Node, width, height Constraint, newMain, crossBefore int) Size {
	margin := child.Margin()
	if e.Direction.IsHorizontal() {
		h := boundedConstraint(height, e.Padding.Vertical()+margin.Vertical()+crossBefore,
			child.Height(), child.MinHeight(), child.MaxHeight())
		return e.measureChild(i, child, NewConstraint(newMain, Exactly), h)
	}
	w := boundedConstraint(width, e.Padding.Horizontal()+margin.Horizontal()+crossBefore,
		child.Width(), child.MinWidth(), child.MaxWidth())
	return e.measureChild(i, child, w, NewConstraint(newMain, Exactly))
}

// boundedConstraint is childConstraint, with the size clamped into
// [minSize, maxSize].
func boundedConstraint(parent Constraint, padding, dim, minSize, maxSize int) Constraint {
	c := childConstraint(parent, padding, dim)
	if c.Size > maxSize {
		return NewConstraint(maxSize, c.Mode)
	} else if c.Size < minSize {
		return NewConstraint(minSize, c.Mode)
	}
	return c
}

func maxMainOf(n Node, horizontal bool) int {
	if horizontal {
		return n.MaxWidth()
	}
	return n.MaxHeight()
}

func minMainOf(n Node, horizontal bool) int {
	if horizontal {
		return n.MinWidth()
	}
	return n.MinHeight()
}
