package css_test

import (
	"testing"

	"github.com/npillmayer/flexbox"
	"github.com/npillmayer/flexbox/css"
)

func TestDimenBasic(t *testing.T) {
	ten := css.JustDimen(10)
	var px int
	switch m := ten.Match(); m {
	case m.Just(&px):
		t.Logf("px = %d", px)
	default:
		t.Errorf("expected Just(10px) to be a fixed value, isn't: %#v", ten)
	}
	if px != 10 {
		t.Errorf("expected 10px, have %d", px)
	}

	auto := css.Auto()
	switch m := auto.Match(); m {
	case m.IsKind(css.Auto()):
		t.Logf("dimen is auto")
	default:
		t.Errorf("expected dimen auto to match auto, isn't: %#v", auto)
	}

	pcnt := css.Percentage(.8)
	var p float64
	switch m := pcnt.Match(); m {
	case m.IsKind(css.Auto()):
		t.Errorf("expected percentage not to be of kind auto")
	case m.Percentage(&p):
		t.Logf("percent = %v", pcnt)
	default:
		t.Errorf("expected Percentage(80) to be a percentage value, isn't: %#v", pcnt)
	}
	if p != .8 {
		t.Errorf("expected fraction .8, have %v", p)
	}
}

func TestDimenPattern(t *testing.T) {
	ten := css.JustDimen(10)
	var px int
	m := css.DimenPattern[int](ten)
	zehn := m.OneOf(css.DimenPatterns[int]{
		Just:    m.With(&px).Const(10),
		Auto:    0,
		Default: -1,
	})
	if zehn != 10 || px != 10 {
		t.Errorf("expected zehn == 10, isn't: %#v", zehn)
	}
	a := css.DimenPattern[string](css.Auto()).OneOf(css.DimenPatterns[string]{Auto: "auto", Default: "?"})
	if a != "auto" {
		t.Errorf("expected auto pattern to match, have %q", a)
	}
	w := css.DimenPattern[string](css.WrapContent()).OneOf(css.DimenPatterns[string]{Just: "px", Default: "?"})
	if w != "?" {
		t.Errorf("expected wrap-content to fall through to default, have %q", w)
	}
}

func TestParseDimen(t *testing.T) {
	for s, want := range map[string]string{
		"12px":         "12px",
		"12":           "12px",
		"2.6px":        "3px",
		"50%":          "50%",
		"AUTO":         "auto",
		"inherit":      "inherit",
		"max-content":  "wrap-content",
		"match-parent": "match-parent",
		"stretch":      "match-parent",
	} {
		d, err := css.ParseDimen(s)
		if err != nil {
			t.Errorf("unexpected error for %q: %v", s, err)
			continue
		}
		if d.String() != want {
			t.Errorf("expected %q to parse as %s, is %s", s, want, d)
		}
	}
	for _, s := range []string{"", "12em", "-3px", "x%"} {
		if _, err := css.ParseDimen(s); err == nil {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func TestDimenResolve(t *testing.T) {
	if n := css.JustDimen(7).Resolve(-1); n != 7 {
		t.Errorf("expected 7, have %d", n)
	}
	if n := css.Percentage(.25).Resolve(200); n != 50 {
		t.Errorf("expected 25%% of 200 to be 50, have %d", n)
	}
	if n := css.Percentage(.25).Resolve(-1); n != flexbox.WrapContent {
		t.Errorf("expected percentage without reference to wrap content, have %d", n)
	}
	if n := css.MatchParent().Resolve(100); n != flexbox.MatchParent {
		t.Errorf("expected match-parent, have %d", n)
	}
	if n := css.Auto().Resolve(100); n != flexbox.WrapContent {
		t.Errorf("expected auto to wrap content, have %d", n)
	}
}

func TestParseDisplay(t *testing.T) {
	d, err := css.ParseDisplay("flex")
	if err != nil || !d.IsFlex() || d.Outer() != css.BlockMode {
		t.Errorf("expected flex to be a block-level flex container, is %v (%v)", d, err)
	}
	d, _ = css.ParseDisplay("inline-flex")
	if !d.IsFlex() || d.Outer() != css.InlineMode {
		t.Errorf("expected inline-flex to be an inline-level flex container, is %v", d)
	}
	if d.String() != "inline flex" {
		t.Errorf("expected display string 'inline flex', have %q", d.String())
	}
	if d, _ = css.ParseDisplay("none"); d.Symbol() != "□" {
		t.Errorf("unexpected symbol %q for display none", d.Symbol())
	}
	if _, err = css.ParseDisplay("grid"); err == nil {
		t.Errorf("expected display grid to be rejected")
	}
}
