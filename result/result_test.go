package result_test

import (
	"errors"
	"strconv"
	"testing"

	. "github.com/npillmayer/flexbox/result"
)

func TestResultMatch(t *testing.T) {
	x := Ok(7)
	y := Err[int](errors.New("not ok"))

	var v int
	var e error
	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	switch m := y.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err: %s", e.Error())
	}
	if e == nil {
		t.Errorf("expected error to be non-nil, but it is nil")
	}
}

func TestResultFrom(t *testing.T) {
	r := From(strconv.Atoi("12"))
	if r.Error() != nil || r.WithDefault(0) != 12 {
		t.Errorf("expected Ok(12), have %v", r.Error())
	}
	r = From(strconv.Atoi("x12"))
	if r.Error() == nil {
		t.Errorf("expected an error for \"x12\"")
	}
	if r.WithDefault(-1) != -1 {
		t.Errorf("expected Err to default to -1")
	}
}

func TestResultMapAndThen(t *testing.T) {
	half := func(n int) Result[int] {
		if n%2 != 0 {
			return Err[int](errors.New("odd"))
		}
		return Ok(n / 2)
	}
	if v := AndThen(half, Ok(8)).WithDefault(0); v != 4 {
		t.Errorf("expected 8/2 = 4, is %d", v)
	}
	if AndThen(half, Ok(7)).Error() == nil {
		t.Errorf("expected 7/2 to fail")
	}
	s := Map(strconv.Itoa, Ok(3))
	if s.WithDefault("") != "3" {
		t.Errorf("expected Map(Itoa, Ok 3) to be \"3\"")
	}
	failed := Map(strconv.Itoa, Err[int](errors.New("no")))
	if failed.Error() == nil || failed.Error().Error() != "no" {
		t.Errorf("expected error to pass through Map, have %v", failed.Error())
	}
}

func TestResultToMaybe(t *testing.T) {
	if ToMaybe(Ok(1)).IsNothing() {
		t.Errorf("expected Ok(1) to convert to Just(1)")
	}
	if !ToMaybe(Err[int](errors.New("no"))).IsNothing() {
		t.Errorf("expected Err to convert to Nothing")
	}
}
