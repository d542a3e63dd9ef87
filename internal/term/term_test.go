package term

import (
	"testing"

	"github.com/dhallcore/dhallcore/internal/label"
)

func TestShiftFreeVariable(t *testing.T) {
	e := Var{V{Name: "x", Index: 0}}
	got := Shift(1, "x", 0, e)
	want := Var{V{Name: "x", Index: 1}}
	if got != want {
		t.Fatalf("Shift(1,x,0,x@0) = %v, want %v", got, want)
	}
}

func TestShiftDoesNotTouchBoundOccurrence(t *testing.T) {
	// \(x : Bool) -> x  --  shifting "x" from outside must not touch the
	// bound occurrence inside the lambda.
	e := Lam{Label: "x", Type: Builtin{Name: "Bool"}, Body: Var{V{Name: "x", Index: 0}}}
	got := Shift(1, "x", 0, e).(Lam)
	want := Var{V{Name: "x", Index: 0}}
	if got.Body != want {
		t.Fatalf("shift crossed into bound occurrence: got %v", got.Body)
	}
}

func TestShiftComposition(t *testing.T) {
	e := Var{V{Name: "x", Index: 2}}
	lhs := Shift(1, "x", 0, Shift(2, "x", 0, e))
	rhs := Shift(3, "x", 0, e)
	if lhs != rhs {
		t.Fatalf("shift composition failed: %v != %v", lhs, rhs)
	}
}

func TestSubstUnderMatchingBinderIsNoop(t *testing.T) {
	// substituting x@0 under \(x:_) -> ... must not touch the newly bound x.
	body := Var{V{Name: "x", Index: 0}}
	got := Subst("x", 1, BoolLit{Value: true}, body)
	if got != body {
		t.Fatalf("subst touched a shadowed occurrence: %v", got)
	}
}

func TestSubstReplacesExactIndex(t *testing.T) {
	replacement := NaturalLit{Value: 42}
	got := Subst("x", 0, replacement, Var{V{Name: "x", Index: 0}})
	if got != replacement {
		t.Fatalf("Subst did not replace target variable: %v", got)
	}
}

func TestSubstShiftsReplacementAcrossUnrelatedBinderWithCollidingLabel(t *testing.T) {
	// Subst("a", 0, y@0, forall(y : Natural) -> a@0) must rename the
	// argument's "y" to skip the Pi's own freshly crossed "y" binder, giving
	// forall(y : Natural) -> y@1 rather than capturing it as y@0.
	replacement := Var{V{Name: "y", Index: 0}}
	body := Pi{Label: "y", Type: Builtin{Name: "Natural"}, Body: Var{V{Name: "a", Index: 0}}}
	got := Subst("a", 0, replacement, body)
	want := Pi{Label: "y", Type: Builtin{Name: "Natural"}, Body: Var{V{Name: "y", Index: 1}}}
	if got != want {
		t.Fatalf("Subst captured a colliding label: got %v, want %v", got, want)
	}
}

func TestAppArgsSpineRoundTrip(t *testing.T) {
	f := Var{V{Name: "f", Index: 0}}
	a := NaturalLit{Value: 1}
	b := NaturalLit{Value: 2}
	app := AppArgs(f, a, b)
	head, args := Spine(app)
	if head != Term(f) {
		t.Fatalf("Spine head = %v, want %v", head, f)
	}
	if len(args) != 2 || args[0] != Term(a) || args[1] != Term(b) {
		t.Fatalf("Spine args = %v", args)
	}
}

func TestFieldsSortedByLabel(t *testing.T) {
	f := NewFields(map[label.Label]Term{
		"b": BoolLit{Value: true},
		"a": BoolLit{Value: false},
	})
	keys := f.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("Fields not sorted: %v", keys)
	}
}
