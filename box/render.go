package box

import (
	"fmt"

	"github.com/npillmayer/flexbox/textbox"
	tp "github.com/xlab/treeprint"
)

// Dump renders a box tree with the rectangles of the most recent layout,
// for debugging.
func Dump(root *Box) string {
	printer := tp.NewWithRoot(label(root))
	dumpChildren(printer, root)
	return printer.String()
}

func dumpChildren(printer tp.Tree, b *Box) {
	for _, ch := range b.ChildBoxes() {
		if ch.ChildCount() == 0 {
			printer.AddNode(label(ch))
			continue
		}
		dumpChildren(printer.AddBranch(label(ch)), ch)
	}
}

func label(b *Box) string {
	if !b.Visible() {
		return b.String() + " (hidden)"
	}
	return fmt.Sprintf("%v %v", b, b.Rect())
}

// Render draws a laid out box tree onto a canvas as large as the root box.
// Elements are drawn as frames, parents before their children, and texts
// as framed words. Hidden boxes are not drawn.
func Render(root *Box) *textbox.Canvas {
	r := root.Rect()
	c := textbox.NewCanvas(r.Right, r.Bottom)
	draw(c, root)
	return c
}

func draw(c *textbox.Canvas, b *Box) {
	if !b.Visible() {
		return
	}
	r := b.Rect()
	if b.text != nil {
		b.text.Draw(c, r)
		return
	}
	c.Frame(r.Left, r.Top, r.Right, r.Bottom)
	for _, ch := range b.ChildBoxes() {
		draw(c, ch)
	}
}
