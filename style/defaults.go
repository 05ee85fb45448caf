package style

import (
	"golang.org/x/net/html"
)

var flexDefaults = map[string]string{
	"flex-direction":   "row",
	"flex-wrap":        "nowrap",
	"justify-content":  "flex-start",
	"align-items":      "stretch",
	"align-content":    "stretch",
	"max-lines":        "none",
	"align-self":       "auto",
	"order":            "1",
	"flex-grow":        "0",
	"flex-shrink":      "1",
	"flex-basis":       "auto",
	"flex-wrap-before": "false",
}

var isDimension = map[string]string{
	"width":          "auto",
	"height":         "auto",
	"min-width":      "0",
	"min-height":     "0",
	"max-width":      "none",
	"max-height":     "none",
	"margin-top":     "0",
	"margin-left":    "0",
	"margin-right":   "0",
	"margin-bottom":  "0",
	"padding-top":    "0",
	"padding-left":   "0",
	"padding-right":  "0",
	"padding-bottom": "0",
}

// GetUserAgentDefaultProperty returns the user-agent default property for a given key.
func GetUserAgentDefaultProperty(node *html.Node, key string) Property {
	switch key {
	case "display":
		return DisplayPropertyForHTMLNode(node)
	case "visibility":
		return "visible"
	case "direction":
		return "ltr"
	case "position":
		return "static"
	case "top", "right", "bottom", "left":
		return "auto"
	}
	if dim, ok := isDimension[key]; ok {
		return Property(dim)
	}
	if p, ok := flexDefaults[key]; ok {
		return Property(p)
	}
	return NullStyle
}

// DisplayPropertyForHTMLNode returns the default `display` CSS property for an HTML node.
func DisplayPropertyForHTMLNode(node *html.Node) Property {
	if node == nil {
		return "none"
	}
	if node.Type == html.DocumentNode {
		return "block"
	}
	if node.Type != html.ElementNode {
		tracer().Debugf("cannot get display-property for non-element")
		return "none"
	}
	switch node.Data {
	case "head", "script", "style", "title", "meta", "link":
		return "none"
	case "html", "aside", "body", "div", "h1", "h2", "h3",
		"h4", "h5", "h6", "main", "nav", "header", "footer",
		"ol", "p", "section", "ul", "li":
		return "block"
	case "i", "b", "em", "span", "strong", "a", "code":
		return "inline"
	}
	tracer().Infof("unknown HTML element %s/%d will be set to display: block",
		node.Data, node.Type)
	return "block"
}

// InitializeDefaultPropertyValues creates the property map holding the
// user-agent defaults for all properties relevant to flex layout.
// Extension properties may be given as additionalProps.
func InitializeDefaultPropertyValues(additionalProps []KeyValue) *PropertyMap {
	m := make(map[string]*PropertyGroup, 8)
	root := NewPropertyGroup("Root")

	x := NewPropertyGroup(PGX) // special group for extension properties
	for _, kv := range additionalProps {
		x.Set(kv.Key, kv.Value)
	}
	m[PGX] = x

	group := func(name string) *PropertyGroup {
		g := NewPropertyGroup(name)
		g.Parent = root
		m[name] = g
		return g
	}
	for k, v := range isDimension {
		name := GroupNameFromPropertyKey(k)
		g, ok := m[name]
		if !ok {
			g = group(name)
		}
		g.Set(k, Property(v))
	}
	flex := group(PGFlex)
	for k, v := range flexDefaults {
		flex.Set(k, Property(v))
	}

	display := group(PGDisplay)
	display.Set("display", "block")
	display.Set("visibility", "visible")

	pos := group(PGPosition)
	pos.Set("position", "static")
	for _, dir := range fourDirs {
		pos.Set(dir, "auto")
	}

	text := group(PGText)
	text.Set("direction", "ltr")
	text.Set("white-space", "normal")

	return &PropertyMap{m}
}
