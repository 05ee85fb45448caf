package textbox

import "strings"

// Background fills the cells of a canvas nothing has been drawn to.
const Background = '·'

// Canvas is a grid of characters. Drawing outside of the grid is ignored.
type Canvas struct {
	width, height int
	cells         []rune
}

// NewCanvas creates a canvas of width × height cells, filled with Background.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{width: max(0, width), height: max(0, height)}
	c.cells = make([]rune, c.width*c.height)
	for i := range c.cells {
		c.cells[i] = Background
	}
	return c
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.height }

// Set puts a character at column x, row y.
func (c *Canvas) Set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = r
}

// At returns the character at column x, row y, or 0 outside of the canvas.
func (c *Canvas) At(x, y int) rune {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return 0
	}
	return c.cells[y*c.width+x]
}

// String returns the rows of the canvas, separated by newlines.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(c.cells[y*c.width : (y+1)*c.width]))
	}
	return b.String()
}

// Frame draws an empty frame, e.g. for a container.
func (c *Canvas) Frame(left, top, right, bottom int) {
	if top >= bottom {
		return
	}
	c.hline('┌', '┐', top, left, right)
	for y := top + 1; y < bottom-1; y++ {
		c.Set(left, y, '|')
		c.Set(right-1, y, '│')
	}
	if top < bottom-1 {
		c.hline('└', '┘', bottom-1, left, right)
	}
}

func (c *Canvas) hline(leftCorner, rightCorner rune, y, left, right int) {
	if left < right {
		c.Set(left, y, leftCorner)
		c.Set(right-1, y, rightCorner)
	}
	for x := left + 1; x < right-1; x++ {
		c.Set(x, y, '─')
	}
}

// words draws a row of words between vertical frame lines, padding with
// blanks.
func (c *Canvas) words(words []string, y, left, right int) {
	x := left
	if x < right {
		c.Set(x, y, '|')
		x++
	}
	for i, word := range words {
		if x >= right {
			break
		}
		if i > 0 {
			c.Set(x, y, ' ')
			x++
		}
		for _, r := range word {
			if x < right {
				c.Set(x, y, r)
				x++
			}
		}
	}
	for ; x < right-1; x++ {
		c.Set(x, y, ' ')
	}
	if left < right {
		c.Set(right-1, y, '│')
	}
}
