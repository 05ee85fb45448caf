package flexbox

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestConfigFrom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexbox")
	defer teardown()
	//
	conf := testconfig.Conf{
		"layout.direction":   "column",
		"layout.wrap":        "wrap-reverse",
		"layout.justify":     "space-between",
		"layout.align-items": "center",
		"layout.padding":     "1px 2px 3px 4px",
		"layout.max-lines":   3,
	}
	c, err := ConfigFrom(conf, "layout")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Config{
		Direction:  Column,
		Wrap:       WrapReverse,
		Justify:    JustifySpaceBetween,
		AlignItems: AlignCenter,
		Padding:    Spacing{Top: 1, End: 2, Bottom: 3, Start: 4},
		MaxLines:   3,
	}
	if c != want {
		t.Errorf("expected %+v, have %+v", want, c)
	}
}

func TestConfigFromDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexbox")
	defer teardown()
	//
	c, err := ConfigFrom(testconfig.Conf{}, "layout")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != (Config{MaxLines: NoMaxLines}) {
		t.Errorf("expected default configuration, have %+v", c)
	}
}

func TestConfigFromRejectsUnknownKeyword(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexbox")
	defer teardown()
	//
	_, err := ConfigFrom(testconfig.Conf{"wrap": "sideways"}, "")
	if !errors.Is(err, ErrUnknownKeyword) {
		t.Errorf("expected unknown keyword error, have %v", err)
	}
}

func TestParseKeywords(t *testing.T) {
	if d, err := ParseFlexDirection(" Row-Reverse "); err != nil || d != RowReverse {
		t.Errorf("expected row-reverse, have %v (%v)", d, err)
	}
	if j, err := ParseJustifyContent("space-evenly"); err != nil || j != JustifySpaceEvenly {
		t.Errorf("expected space-evenly, have %v (%v)", j, err)
	}
	if a, err := ParseAlignContent("stretch"); err != nil || a != ContentStretch {
		t.Errorf("expected stretch, have %v (%v)", a, err)
	}
	for s, want := range map[string]AlignSelf{
		"auto": SelfAuto, "flex-start": SelfFlexStart, "end": SelfFlexEnd,
		"center": SelfCenter, "baseline": SelfBaseline, "stretch": SelfStretch,
	} {
		if a, err := ParseAlignSelf(s); err != nil || a != want {
			t.Errorf("expected align-self %q to be %v, have %v (%v)", s, want, a, err)
		}
	}
	if _, err := ParseAlignSelf("middle"); err == nil {
		t.Errorf("expected align-self 'middle' to be rejected")
	}
}

func TestParseSpacing(t *testing.T) {
	for s, want := range map[string]Spacing{
		"4":       Uniform(4),
		"1 2":     {Top: 1, Bottom: 1, Start: 2, End: 2},
		"1 2 3":   {Top: 1, Start: 2, End: 2, Bottom: 3},
		"1 2 3 4": {Top: 1, End: 2, Bottom: 3, Start: 4},
	} {
		if sp, err := ParseSpacing(s); err != nil || sp != want {
			t.Errorf("expected %q to be %v, have %v (%v)", s, want, sp, err)
		}
	}
	for _, s := range []string{"", "1 2 3 4 5", "-1", "1em"} {
		if _, err := ParseSpacing(s); err == nil {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}
