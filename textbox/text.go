/*
Package textbox provides a text leaf for flex containers and a character
canvas to draw laid out boxes on.

A Text wraps on spaces and is drawn with a box-drawing frame. It measures
the way real text widgets do: given a width it breaks into lines, and its
height follows from the number of lines.

	┌─────────┐
	|The      │
	|Godfather│
	└─────────┘

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package textbox

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/flexbox"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flexbox.text'.
func tracer() tracing.Trace {
	return tracing.Select("flexbox.text")
}

// frame is the horizontal and vertical space taken by the frame.
const frame = 2

// Text is a flex item showing a string of words.
type Text struct {
	flexbox.Item
	text  string
	words []string
}

// New creates a text leaf. Its minimum size fits the longest word.
// Options may override any attribute, including the minimum size.
func New(text string, opts ...flexbox.ItemOption) *Text {
	t := &Text{
		text:  strings.Join(strings.Fields(text), " "),
		words: strings.Fields(text),
	}
	longest := 0
	for _, w := range t.words {
		longest = max(longest, utf8.RuneCountInString(w))
	}
	t.Init(append([]flexbox.ItemOption{flexbox.WithMinSize(longest+frame, frame)}, opts...)...)
	return t
}

// Text returns the words of t, separated by single spaces.
func (t *Text) Text() string {
	return t.text
}

func (t *Text) String() string {
	return "\"" + t.text + "\""
}

// Measure breaks the text into lines fitting into the width constraint.
// Without a width constraint, the text is set on a single line.
func (t *Text) Measure(width, height flexbox.Constraint) flexbox.Size {
	var lines [][]string
	if width.Mode == flexbox.Unspecified {
		lines = [][]string{{t.text}}
	} else {
		lines = t.Lines(width.Size - frame)
	}
	var w, h int
	switch width.Mode {
	case flexbox.Exactly:
		w = width.Size
	case flexbox.AtMost:
		w = min(width.Size, widest(lines)+frame)
	default:
		w = utf8.RuneCountInString(t.text) + frame
	}
	switch height.Mode {
	case flexbox.Exactly:
		h = height.Size
	case flexbox.AtMost:
		h = min(height.Size, len(lines)+frame)
	default:
		h = len(lines) + frame
	}
	tracer().Debugf("text %s measured %dx%d for %s x %s", t, w, h, width, height)
	return t.SetMeasured(flexbox.NewSize(w, h))
}

// Lines breaks the words into lines of at most maxWidth characters.
// Every line holds at least one word, even if it does not fit.
func (t *Text) Lines(maxWidth int) [][]string {
	var lines [][]string
	for i := 0; i < len(t.words); {
		line := []string{t.words[i]}
		lineWidth := utf8.RuneCountInString(t.words[i])
		for i++; i < len(t.words); i++ {
			w := utf8.RuneCountInString(t.words[i])
			if lineWidth+1+w > maxWidth {
				break
			}
			line = append(line, t.words[i])
			lineWidth += 1 + w
		}
		lines = append(lines, line)
	}
	return lines
}

func widest(lines [][]string) int {
	widest := 0
	for _, line := range lines {
		w := len(line) - 1
		for _, word := range line {
			w += utf8.RuneCountInString(word)
		}
		widest = max(widest, w)
	}
	return widest
}

// Draw paints the framed text onto a canvas, at the rectangle r given in
// canvas coordinates. Lines not fitting into r are clipped.
func (t *Text) Draw(c *Canvas, r flexbox.Rect) {
	y := r.Top
	if y < r.Bottom {
		c.hline('┌', '┐', y, r.Left, r.Right)
		y++
	}
	for _, line := range t.Lines(r.Width() - frame) {
		if y >= r.Bottom-1 {
			break
		}
		c.words(line, y, r.Left, r.Right)
		y++
	}
	for ; y < r.Bottom-1; y++ {
		c.words(nil, y, r.Left, r.Right)
	}
	if r.Top < r.Bottom-1 {
		c.hline('└', '┘', r.Bottom-1, r.Left, r.Right)
	}
}

var _ flexbox.Node = (*Text)(nil)
