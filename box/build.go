package box

import (
	"errors"
	"strings"

	"github.com/npillmayer/flexbox"
	"github.com/npillmayer/flexbox/css"
	"github.com/npillmayer/flexbox/style"
	"github.com/npillmayer/flexbox/style/cssom"
	"github.com/npillmayer/flexbox/style/cssom/douceuradapter"
	"github.com/npillmayer/flexbox/textbox"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoBody is returned for documents without a displayed body.
var ErrNoBody = errors.New("box: document has no displayed body")

// Build creates the box tree for the body of an HTML document.
//
// Styles are taken from the <style> elements of the document, from the
// author style sheets given, and from style attributes. userAgent may
// be nil. Rules and declarations which cannot be handled are traced and
// skipped.
func Build(doc *html.Node, userAgent cssom.StyleSheet, author ...cssom.StyleSheet) (*Box, error) {
	body := findBody(doc)
	if body == nil {
		return nil, ErrNoBody
	}
	om := cssom.NewCSSOM()
	if err := om.AddStylesForOrigin(userAgent, cssom.UserAgent); err != nil {
		tracer().Errorf("user agent styles: %v", err)
	}
	for _, sheet := range douceuradapter.ExtractStyleElements(doc) {
		if err := om.AddStylesForOrigin(sheet, cssom.Author); err != nil {
			tracer().Errorf("document styles: %v", err)
		}
	}
	for _, sheet := range author {
		if err := om.AddStylesForOrigin(sheet, cssom.Author); err != nil {
			tracer().Errorf("author styles: %v", err)
		}
	}
	root := (&builder{om: om}).element(body, nil)
	if root == nil {
		return nil, ErrNoBody
	}
	return root, nil
}

type builder struct {
	om *cssom.CSSOM
}

// element creates the box for an element and its descendants and appends
// it to parent. Elements with display: none create no box.
func (bld *builder) element(h *html.Node, parent *Box) *Box {
	var inline cssom.Rule
	if s := attr(h, "style"); s != "" {
		if r, err := douceuradapter.ParseInlineStyle(s); err != nil {
			tracer().Errorf("element %s: %v", h.Data, err)
		} else {
			inline = r
		}
	}
	b := newBox(h, bld.om.Match(h, inline))
	if parent != nil {
		parent.AddChild(&b.Node) // needed for inheritance of styles
	}
	display, err := css.ParseDisplay(b.Property("display").String())
	if err != nil {
		tracer().Errorf("element %s: %v", h.Data, err)
	}
	if display.Contains(css.DisplayNone) {
		b.Isolate()
		return nil
	} else if display == css.NoMode {
		display = css.BlockMode | css.InnerBlockMode
	}
	b.display = display
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		switch ch.Type {
		case html.ElementNode:
			bld.element(ch, b)
		case html.TextNode:
			bld.text(ch, b)
		}
	}
	if b.ChildCount() > 0 {
		b.engine = flexbox.NewEngine(flexbox.Config{MaxLines: flexbox.NoMaxLines})
		for _, ch := range b.ChildBoxes() {
			b.engine.AddNode(ch)
		}
	}
	tracer().Debugf("created box %v with %d children", b, b.ChildCount())
	return b
}

// text creates a text leaf for a text node, skipping white space.
func (bld *builder) text(h *html.Node, parent *Box) {
	if strings.TrimSpace(h.Data) == "" {
		return
	}
	b := newBox(h, style.NewPropertyMap())
	b.display = css.InlineMode | css.InnerInlineMode
	b.text = textbox.New(h.Data)
	parent.AddChild(&b.Node)
}

func findBody(h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.Type == html.ElementNode && h.DataAtom == atom.Body {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if body := findBody(ch); body != nil {
			return body
		}
	}
	return nil
}

func attr(h *html.Node, key string) string {
	for _, a := range h.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
