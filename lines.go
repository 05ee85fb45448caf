package flexbox

import (
	"math"
	"slices"
)

// LineRange restricts flex line construction to a part of the children.
// Clients which display only a window of a long list of children (e.g.,
// virtualizing list views) use it to avoid measuring children far outside
// the visible area.
type LineRange struct {
	From   int // first presentation index to place into a line
	To     int // presentation index the lines have to reach, or -1
	Budget int // stop once the lines after To exceed this cross size; ≤ 0 means no limit
}

// CalculateFlexLines measures children and groups them into flex lines,
// without resolving flexible sizes. The engine's own lines, as computed by
// Measure, are left untouched.
func (e *Engine) CalculateFlexLines(width, height Constraint, r LineRange) []FlexLine {
	assertThat(e.Config.valid(), "invalid flex configuration: %+v", e.Config)
	assertThat(r.From >= 0, "line range must not start at negative index %d", r.From)
	defer e.preservePass()()
	if e.Direction.IsHorizontal() {
		return e.calculateFlexLines(width, height, r)
	}
	return e.calculateFlexLines(height, width, r)
}

// calculateFlexLines is the first phase of measuring: it measures every
// visible child in presentation order and breaks lines where required.
func (e *Engine) calculateFlexLines(main, cross Constraint, r LineRange) []FlexLine {
	e.startPass()
	horizontal := e.Direction.IsHorizontal()
	budget := r.Budget
	if budget <= 0 {
		budget = math.MaxInt
	}
	reachedTo := r.To < 0
	crossAtTo := 0
	mainPadding, crossPadding := e.mainPadding(horizontal), e.crossPadding(horizontal)
	var lines []FlexLine
	largestCross := math.MinInt
	sumCross := 0
	line := newFlexLine(mainPadding)
	line.FirstIndex = r.From
	count := len(e.nodes)
	for i := r.From; i < count; i++ {
		child, ok := e.childAt(i)
		if !ok {
			if isLastItem(i, count, &line) {
				lines = addFlexLine(lines, line, i, sumCross)
			}
			continue
		}
		e.indexToLine[i] = len(lines)
		if !child.Visible() {
			line.InvisibleItemCount++
			line.ItemCount++
			if isLastItem(i, count, &line) {
				lines = addFlexLine(lines, line, i, sumCross)
			}
			continue
		}
		margin := child.Margin()
		childMain := requestedMain(child, horizontal)
		if basis := child.FlexBasisPercent(); basis != DefaultFlexBasisPercent && main.Mode == Exactly {
			childMain = round(float64(main.Size) * basis)
		}
		mainConstraint := childConstraint(main, mainPadding+marginMain(margin, horizontal), childMain)
		crossConstraint := childConstraint(cross, crossPadding+marginCross(margin, horizontal)+sumCross,
			requestedCross(child, horizontal))
		size := e.measureAxes(i, child, mainConstraint, crossConstraint, horizontal)
		size = e.checkSizeConstraints(i, child, size)
		childMainExtent := mainOf(size, horizontal) + marginMain(margin, horizontal)
		if e.isWrapRequired(main, line.MainSize, childMainExtent, child, len(lines)) {
			if line.VisibleItemCount() > 0 {
				lines = addFlexLine(lines, line, max(i-1, 0), sumCross)
				sumCross += line.CrossSize
			}
			if requestedCross(child, horizontal) == MatchParent {
				// the cross space available has changed with the new line
				crossConstraint = childConstraint(cross, crossPadding+marginCross(margin, horizontal)+sumCross,
					MatchParent)
				size = e.measureAxes(i, child, mainConstraint, crossConstraint, horizontal)
				size = e.checkSizeConstraints(i, child, size)
			}
			line = newFlexLine(mainPadding)
			line.ItemCount = 1
			line.FirstIndex = i
			largestCross = math.MinInt
		} else {
			line.ItemCount++
		}
		if child.AlignSelf() == SelfStretch {
			line.stretchIndices = append(line.stretchIndices, i)
		}
		line.AnyItemsHaveGrow = line.AnyItemsHaveGrow || child.FlexGrow() != DefaultFlexGrow
		line.AnyItemsHaveShrink = line.AnyItemsHaveShrink || child.FlexShrink() != UndefinedFlexShrink
		e.indexToLine[i] = len(lines)
		line.MainSize += mainOf(size, horizontal) + marginMain(margin, horizontal)
		line.TotalFlexGrow += child.FlexGrow()
		line.TotalFlexShrink += child.FlexShrink()
		largestCross = max(largestCross, crossOf(size, horizontal)+marginCross(margin, horizontal))
		line.CrossSize = max(line.CrossSize, largestCross)
		if horizontal {
			if e.Wrap != WrapReverse {
				line.MaxBaseline = max(line.MaxBaseline, baselineOf(child, size)+margin.Top)
			} else {
				line.MaxBaseline = max(line.MaxBaseline, size.Height-baselineOf(child, size)+margin.Bottom)
			}
		}
		if isLastItem(i, count, &line) {
			lines = addFlexLine(lines, line, i, sumCross)
			sumCross += line.CrossSize
		}
		if r.To >= 0 && len(lines) > 0 && lines[len(lines)-1].LastIndex >= r.To && i >= r.To && !reachedTo {
			// from here on count the cross size of lines following To
			crossAtTo = sumCross + line.CrossSize
			reachedTo = true
		}
		if reachedTo && sumCross-crossAtTo > budget {
			break
		}
	}
	tracer().Debugf("flexbox: %d children in %d lines", count-r.From, len(lines))
	return lines
}

// startPass invalidates the measure cache for a new line construction pass.
func (e *Engine) startPass() {
	e.pass++
	if e.pass == 0 { // wrapped around
		e.pass = 1
		for i := range e.sizes {
			e.sizes[i] = measureCacheEntry{}
		}
	}
	e.ensureCaches()
}

// preservePass saves the measurements and line indices of the current pass
// and returns a function restoring them.
func (e *Engine) preservePass() func() {
	e.ensureCaches()
	pass := e.pass
	sizes := slices.Clone(e.sizes)
	indexToLine := slices.Clone(e.indexToLine)
	return func() {
		e.pass = pass
		copy(e.sizes, sizes)
		copy(e.indexToLine, indexToLine)
	}
}

func isLastItem(i, count int, line *FlexLine) bool {
	return i == count-1 && line.VisibleItemCount() > 0
}

func addFlexLine(lines []FlexLine, line FlexLine, lastIndex, crossBefore int) []FlexLine {
	line.SumCrossSizeBefore = crossBefore
	line.LastIndex = lastIndex
	return append(lines, line)
}

// isWrapRequired decides if child, with a main extent (including margins) of
// childLength, has to start a new line.
//
// Once the line limit is reached, children are appended to the last line
// even if it overflows.
func (e *Engine) isWrapRequired(main Constraint, current, childLength int, child Node, lineCount int) bool {
	if e.Wrap == NoWrap {
		return false
	}
	if child.WrapBefore() {
		return true
	}
	if main.Mode == Unspecified {
		return false
	}
	if e.hasMaxLines() && e.MaxLines <= lineCount+1 {
		return false
	}
	return main.Size < current+childLength
}

// checkSizeConstraints clamps a measured size into the min/max bounds of a
// child, re-measuring the child if the size changed.
func (e *Engine) checkSizeConstraints(i int, child Node, size Size) Size {
	w, h := size.Width, size.Height
	if w < child.MinWidth() {
		w = child.MinWidth()
	} else if w > child.MaxWidth() {
		w = child.MaxWidth()
	}
	if h < child.MinHeight() {
		h = child.MinHeight()
	} else if h > child.MaxHeight() {
		h = child.MaxHeight()
	}
	if w == size.Width && h == size.Height {
		return size
	}
	return e.measureChild(i, child, NewConstraint(w, Exactly), NewConstraint(h, Exactly))
}

// measureAxes measures a child with constraints given per axis.
func (e *Engine) measureAxes(i int, child Node, main, cross Constraint, horizontal bool) Size {
	if horizontal {
		return e.measureChild(i, child, main, cross)
	}
	return e.measureChild(i, child, cross, main)
}

// --- Axis helpers ----------------------------------------------------------

func (e *Engine) mainPadding(horizontal bool) int {
	if horizontal {
		return e.Padding.Horizontal()
	}
	return e.Padding.Vertical()
}

func (e *Engine) crossPadding(horizontal bool) int {
	return e.mainPadding(!horizontal)
}

func mainOf(s Size, horizontal bool) int {
	if horizontal {
		return s.Width
	}
	return s.Height
}

func crossOf(s Size, horizontal bool) int {
	return mainOf(s, !horizontal)
}

func marginMain(m Spacing, horizontal bool) int {
	if horizontal {
		return m.Horizontal()
	}
	return m.Vertical()
}

func marginCross(m Spacing, horizontal bool) int {
	return marginMain(m, !horizontal)
}

func requestedMain(n Node, horizontal bool) int {
	if horizontal {
		return n.Width()
	}
	return n.Height()
}

func requestedCross(n Node, horizontal bool) int {
	return requestedMain(n, !horizontal)
}

// baselineOf returns the baseline of a child. Children without a baseline
// are aligned at their bottom edge.
func baselineOf(n Node, size Size) int {
	if b := n.Baseline(); b >= 0 {
		return b
	}
	return size.Height
}
