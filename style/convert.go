package style

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/flexbox"
	"github.com/npillmayer/flexbox/css"
	"github.com/npillmayer/flexbox/result"
)

// FlexDirection converts a 'flex-direction' value.
func (p Property) FlexDirection() result.Result[flexbox.FlexDirection] {
	return result.From(flexbox.ParseFlexDirection(string(p)))
}

// FlexWrap converts a 'flex-wrap' value.
func (p Property) FlexWrap() result.Result[flexbox.FlexWrap] {
	return result.From(flexbox.ParseFlexWrap(string(p)))
}

// JustifyContent converts a 'justify-content' value.
func (p Property) JustifyContent() result.Result[flexbox.JustifyContent] {
	return result.From(flexbox.ParseJustifyContent(string(p)))
}

// AlignItems converts an 'align-items' value.
func (p Property) AlignItems() result.Result[flexbox.AlignItems] {
	return result.From(flexbox.ParseAlignItems(string(p)))
}

// AlignContent converts an 'align-content' value.
func (p Property) AlignContent() result.Result[flexbox.AlignContent] {
	return result.From(flexbox.ParseAlignContent(string(p)))
}

// AlignSelf converts an 'align-self' value.
func (p Property) AlignSelf() result.Result[flexbox.AlignSelf] {
	return result.From(flexbox.ParseAlignSelf(string(p)))
}

// Dimen converts a length value.
func (p Property) Dimen() result.Result[css.DimenT] {
	return result.From(css.ParseDimen(string(p)))
}

// Int converts an integer value, e.g. for 'order'.
func (p Property) Int() result.Result[int] {
	return result.From(strconv.Atoi(strings.TrimSpace(string(p))))
}

// Float converts a non-negative number, e.g. for 'flex-grow'.
func (p Property) Float() result.Result[float64] {
	f, err := strconv.ParseFloat(strings.TrimSpace(string(p)), 64)
	if err != nil {
		return result.Err[float64](err)
	}
	if f < 0 {
		return result.Err[float64](fmt.Errorf("negative value %q", p))
	}
	return result.Ok(f)
}

// Bool converts "true"/"false" and the CSS keywords "always"/"auto".
func (p Property) Bool() result.Result[bool] {
	switch strings.TrimSpace(string(p)) {
	case "true", "always", "yes", "1":
		return result.Ok(true)
	case "false", "auto", "avoid", "no", "0", "":
		return result.Ok(false)
	}
	return result.Err[bool](fmt.Errorf("not a boolean value: %q", p))
}

// FlexBasisPercent converts a 'flex-basis' value to a fraction of the
// container's main size. Values other than percentages yield
// flexbox.DefaultFlexBasisPercent.
func (p Property) FlexBasisPercent() result.Result[float64] {
	return result.Map(func(d css.DimenT) float64 {
		var f float64
		switch m := d.Match(); m {
		case m.Percentage(&f):
			return f
		}
		return flexbox.DefaultFlexBasisPercent
	}, p.Dimen())
}

// MaxLines converts the 'max-lines' extension property. "none" yields
// flexbox.NoMaxLines.
func (p Property) MaxLines() result.Result[int] {
	if p == "none" || p.IsEmpty() {
		return result.Ok(flexbox.NoMaxLines)
	}
	return p.Int()
}

// --- Container and items ---------------------------------------------------

// ContainerConfig extracts the configuration of a flex container from a
// property map. reference is the width of the containing block, used for
// percentage padding, or -1.
//
// Malformed values leave the default in place. They are reported by the
// returned error, which collects all conversion errors.
func ContainerConfig(pmap *PropertyMap, reference int) (flexbox.Config, error) {
	conf := flexbox.Config{MaxLines: flexbox.NoMaxLines}
	var errs errorList
	if p, ok := pmap.Property("flex-direction"); ok {
		conf.Direction = check(&errs, "flex-direction", p.FlexDirection(), conf.Direction)
	}
	if p, ok := pmap.Property("flex-wrap"); ok {
		conf.Wrap = check(&errs, "flex-wrap", p.FlexWrap(), conf.Wrap)
	}
	if p, ok := pmap.Property("justify-content"); ok {
		conf.Justify = check(&errs, "justify-content", p.JustifyContent(), conf.Justify)
	}
	if p, ok := pmap.Property("align-items"); ok {
		conf.AlignItems = check(&errs, "align-items", p.AlignItems(), conf.AlignItems)
	}
	if p, ok := pmap.Property("align-content"); ok {
		conf.AlignContent = check(&errs, "align-content", p.AlignContent(), conf.AlignContent)
	}
	if p, ok := pmap.Property("max-lines"); ok {
		conf.MaxLines = check(&errs, "max-lines", p.MaxLines(), conf.MaxLines)
	}
	conf.Padding = spacing(pmap, "padding", reference, &errs)
	return conf, errs.err()
}

// ItemOptions extracts the flex item attributes from a property map.
// reference is the size of the containing block, used for percentages,
// with -1 for unknown dimensions.
func ItemOptions(pmap *PropertyMap, reference flexbox.Size) ([]flexbox.ItemOption, error) {
	var errs errorList
	var opts []flexbox.ItemOption
	dimen := func(key string, ref int, def css.DimenT) int {
		p, ok := pmap.Property(key)
		if !ok {
			return def.Resolve(ref)
		}
		return check(&errs, key, p.Dimen(), def).Resolve(ref)
	}
	opts = append(opts, flexbox.WithSize(
		dimen("width", reference.Width, css.Auto()),
		dimen("height", reference.Height, css.Auto()),
	))
	if minw, minh := dimen("min-width", reference.Width, css.JustDimen(0)),
		dimen("min-height", reference.Height, css.JustDimen(0)); minw > 0 || minh > 0 {
		opts = append(opts, flexbox.WithMinSize(max(minw, 0), max(minh, 0)))
	}
	opts = append(opts, flexbox.WithMaxSize(
		maxDimen(pmap, "max-width", reference.Width, &errs),
		maxDimen(pmap, "max-height", reference.Height, &errs),
	))
	if p, ok := pmap.Property("flex-grow"); ok {
		opts = append(opts, flexbox.WithGrow(check(&errs, "flex-grow", p.Float(), flexbox.DefaultFlexGrow)))
	}
	if p, ok := pmap.Property("flex-shrink"); ok {
		opts = append(opts, flexbox.WithShrink(check(&errs, "flex-shrink", p.Float(), flexbox.DefaultFlexShrink)))
	}
	if p, ok := pmap.Property("flex-basis"); ok {
		opts = append(opts, flexbox.WithBasisPercent(
			check(&errs, "flex-basis", p.FlexBasisPercent(), flexbox.DefaultFlexBasisPercent)))
	}
	if p, ok := pmap.Property("align-self"); ok {
		opts = append(opts, flexbox.WithAlignSelf(check(&errs, "align-self", p.AlignSelf(), flexbox.SelfAuto)))
	}
	if p, ok := pmap.Property("order"); ok {
		opts = append(opts, flexbox.WithOrder(check(&errs, "order", p.Int(), flexbox.DefaultOrder)))
	}
	wrapBefore := false
	if p, ok := pmap.Property("flex-wrap-before"); ok {
		wrapBefore = check(&errs, "flex-wrap-before", p.Bool(), false)
	}
	if p, ok := pmap.Property("break-before"); ok {
		wrapBefore = wrapBefore || p == "always" || p == "page" || p == "column"
	}
	if wrapBefore {
		opts = append(opts, flexbox.WithWrapBefore(true))
	}
	opts = append(opts, flexbox.WithMargin(spacing(pmap, "margin", reference.Width, &errs)))
	if p, ok := pmap.Property("display"); ok && p == "none" {
		opts = append(opts, flexbox.WithVisible(false))
	} else if p, ok := pmap.Property("visibility"); ok && p == "hidden" {
		opts = append(opts, flexbox.WithVisible(false))
	}
	return opts, errs.err()
}

func maxDimen(pmap *PropertyMap, key string, ref int, errs *errorList) int {
	p, ok := pmap.Property(key)
	if !ok || p == "none" {
		return flexbox.MaxSize
	}
	d := check(errs, key, p.Dimen(), css.DimenT{})
	var px int
	switch m := d.Match(); m {
	case m.Just(&px):
		return px
	case m.Percentage(nil):
		if ref >= 0 {
			return d.Resolve(ref)
		}
	}
	return flexbox.MaxSize
}

// spacing collects the four sides of margins or paddings. Percentages
// refer to the width of the containing block, as in CSS.
func spacing(pmap *PropertyMap, prefix string, reference int, errs *errorList) flexbox.Spacing {
	side := func(dir string) int {
		key := prefix + "-" + dir
		p, ok := pmap.Property(key)
		if !ok {
			return 0
		}
		n := check(errs, key, p.Dimen(), css.JustDimen(0)).Resolve(reference)
		if n < 0 { // auto margins and unresolved percentages
			return 0
		}
		return n
	}
	return flexbox.Spacing{
		Top:    side("top"),
		End:    side("right"),
		Bottom: side("bottom"),
		Start:  side("left"),
	}
}

// errorList collects conversion errors.
type errorList []error

// check returns the Ok value of r, or def after remembering the error.
func check[T any](errs *errorList, key string, r result.Result[T], def T) T {
	if err := r.Error(); err != nil {
		tracer().Errorf("style: property %s: %v", key, err)
		*errs = append(*errs, fmt.Errorf("property %s: %w", key, err))
		return def
	}
	return r.WithDefault(def)
}

func (errs *errorList) err() error {
	return errors.Join(*errs...)
}
