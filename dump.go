package flexbox

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump renders the engine's configuration, flex lines and children as a
// tree, for debugging. Children are listed per line in presentation order,
// with their measured size and the rectangle of the most recent Layout.
func (e *Engine) Dump() string {
	header := fmt.Sprintf("\nflexbox(%v %v justify=%v items=%v content=%v padding=%v)\n",
		e.Direction, e.Wrap, e.Justify, e.AlignItems, e.AlignContent, e.Padding)
	printer := tp.New()
	for l, line := range e.lines {
		if line.IsSpacer() {
			printer.AddNode(fmt.Sprintf("line %d: spacer %d", l, line.CrossSize))
			continue
		}
		branch := printer.AddBranch(fmt.Sprintf("line %d: %v", l, line))
		for k := 0; k < line.ItemCount; k++ {
			e.dumpChild(branch, line.FirstIndex+k)
		}
	}
	if len(e.lines) == 0 {
		for i := range e.nodes {
			e.dumpChild(printer, i)
		}
	}
	return header + printer.String()
}

func (e *Engine) dumpChild(printer tp.Tree, i int) {
	child, ok := e.childAt(i)
	if !ok {
		return
	}
	d, _ := e.order.declared(e.nodes, i)
	if !child.Visible() {
		printer.AddNode(fmt.Sprintf("#%d (hidden)", d))
		return
	}
	var bounds Rect
	if d < len(e.placed) {
		bounds = e.placed[d]
	}
	printer.AddNode(fmt.Sprintf("#%d %v @ %v", d, e.measuredSize(i, child), bounds))
}
