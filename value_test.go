package scib_test

import (
	"testing"

	"github.com/czipperz/scib"
)

func TestIsNil(t *testing.T) {
	t.Parallel()
	var v scib.Value
	if !scib.IsNil(v) {
		t.Error("a nil interface value should be considered Nil")
	}
	if !scib.IsNil(scib.NilValue) {
		t.Error("NilValue should be considered Nil")
	}
	if scib.IsNil(scib.TrueValue) {
		t.Error("TrueValue should not be considered Nil")
	}
}

func TestIsTruthy(t *testing.T) {
	t.Parallel()
	if scib.IsTruthy(scib.NilValue) {
		t.Error("Nil is not truthy")
	}
	if !scib.IsTruthy(scib.TrueValue) {
		t.Error("True is truthy")
	}
	if !scib.IsTruthy(scib.Number(0)) {
		t.Error("Number(0) is truthy: only Nil is false")
	}
	if !scib.IsTruthy(scib.MakeList()) {
		t.Error("the empty List value (not Nil itself) is truthy")
	}
}

func TestNumberEquality(t *testing.T) {
	t.Parallel()
	if !scib.Number(1.5).IsEqual(scib.Number(1.5)) {
		t.Error("equal numbers should compare equal")
	}
	nan := scib.Number(0)
	nan = scib.Number(nanValue())
	if nan.IsEqual(nan) {
		t.Error("NaN must not equal itself, matching host float semantics")
	}
}

func nanValue() float64 {
	var zero float64
	return zero / zero
}

func TestListEquality(t *testing.T) {
	t.Parallel()
	a := scib.MakeList(scib.Number(1), scib.Number(2))
	b := scib.MakeList(scib.Number(1), scib.Number(2))
	c := scib.MakeList(scib.Number(1), scib.Number(3))
	if !a.IsEqual(b) {
		t.Error("lists with equal elements should compare equal")
	}
	if a.IsEqual(c) {
		t.Error("lists with differing elements should not compare equal")
	}
	if a.IsEqual(scib.MakeList(scib.Number(1))) {
		t.Error("lists of differing length should not compare equal")
	}
}

func TestStringPrint(t *testing.T) {
	t.Parallel()
	s := scib.MakeString("a\"b\\c\td\ne")
	if got, want := s.String(), `"a\"b\\c\td\ne"`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestLabelRoundTrip(t *testing.T) {
	t.Parallel()
	l := scib.Label("foo")
	if l.Name() != "foo" {
		t.Errorf("Name() = %q, want %q", l.Name(), "foo")
	}
	if got, ok := scib.GetLabel(l); !ok || got != l {
		t.Error("GetLabel should round-trip a Label")
	}
	if _, ok := scib.GetLabel(scib.Number(1)); ok {
		t.Error("GetLabel should reject a non-Label")
	}
}

func TestQuoteString(t *testing.T) {
	t.Parallel()
	q := scib.Quote{Child: scib.Label("x")}
	if got, want := q.String(), "'x"; got != want {
		t.Errorf("Quote.String() = %q, want %q", got, want)
	}
	bq := scib.Backquote{Child: scib.MakeList(scib.Label("x"), scib.Unquote{Child: scib.Label("y")})}
	if got, want := bq.String(), "`(x ,y)"; got != want {
		t.Errorf("Backquote.String() = %q, want %q", got, want)
	}
	ul := scib.UnquoteList{Child: scib.Label("z")}
	if got, want := ul.String(), ",@z"; got != want {
		t.Errorf("UnquoteList.String() = %q, want %q", got, want)
	}
}
