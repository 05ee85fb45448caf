package flexbox

import (
	"fmt"

	"github.com/npillmayer/schuko"
)

// ConfigFrom reads a flex configuration from an application configuration.
// Keys are prefixed by prefix, e.g., with prefix "layout":
//
//	layout.direction      row | row-reverse | column | column-reverse
//	layout.wrap           nowrap | wrap | wrap-reverse
//	layout.justify        flex-start | flex-end | center | space-between | …
//	layout.align-items    flex-start | flex-end | center | baseline | stretch
//	layout.align-content  flex-start | flex-end | center | space-between | …
//	layout.padding        1 to 4 values, as in CSS
//	layout.max-lines      integer
//
// Keys not set keep their default. The first malformed value is reported as
// an error, together with the configuration read so far.
func ConfigFrom(conf schuko.Configuration, prefix string) (Config, error) {
	c := Config{MaxLines: NoMaxLines}
	key := func(k string) string {
		if prefix == "" {
			return k
		}
		return prefix + "." + k
	}
	var err error
	read := func(k string, parse func(string) error) {
		if err != nil || !conf.IsSet(key(k)) {
			return
		}
		if e := parse(conf.GetString(key(k))); e != nil {
			err = fmt.Errorf("configuration key %s: %w", key(k), e)
		}
	}
	read("direction", func(s string) (e error) { c.Direction, e = ParseFlexDirection(s); return })
	read("wrap", func(s string) (e error) { c.Wrap, e = ParseFlexWrap(s); return })
	read("justify", func(s string) (e error) { c.Justify, e = ParseJustifyContent(s); return })
	read("align-items", func(s string) (e error) { c.AlignItems, e = ParseAlignItems(s); return })
	read("align-content", func(s string) (e error) { c.AlignContent, e = ParseAlignContent(s); return })
	read("padding", func(s string) (e error) { c.Padding, e = ParseSpacing(s); return })
	if err == nil && conf.IsSet(key("max-lines")) {
		c.MaxLines = conf.GetInt(key("max-lines"))
	}
	tracer().Debugf("flexbox configuration %q: %+v", prefix, c)
	return c, err
}
