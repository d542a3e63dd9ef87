package tyctx

import (
	"testing"

	"github.com/dhallcore/dhallcore/internal/term"
)

func TestLookupInEmptyContextFails(t *testing.T) {
	c := Empty()
	if _, ok := c.Lookup(term.V{Name: "x", Index: 0}); ok {
		t.Fatal("expected lookup in empty context to fail")
	}
}

func TestInsertThenLookupReturnsStoredType(t *testing.T) {
	c := Empty().Insert("x", term.Builtin{Name: "Natural"})
	got, ok := c.Lookup(term.V{Name: "x", Index: 0})
	if !ok {
		t.Fatal("expected x@0 to resolve")
	}
	if got != term.Term(term.Builtin{Name: "Natural"}) {
		t.Fatalf("Lookup(x@0) = %v, want Natural", got)
	}
}

func TestShadowingPicksInnermostBinding(t *testing.T) {
	c := Empty().
		Insert("x", term.Builtin{Name: "Bool"}).
		Insert("x", term.Builtin{Name: "Natural"})

	inner, ok := c.Lookup(term.V{Name: "x", Index: 0})
	if !ok || inner != term.Term(term.Builtin{Name: "Natural"}) {
		t.Fatalf("Lookup(x@0) = %v, want Natural", inner)
	}
	outer, ok := c.Lookup(term.V{Name: "x", Index: 1})
	if !ok || outer != term.Term(term.Builtin{Name: "Bool"}) {
		t.Fatalf("Lookup(x@1) = %v, want Bool", outer)
	}
}

func TestDifferentLabelsDoNotShareIndices(t *testing.T) {
	c := Empty().
		Insert("x", term.Builtin{Name: "Bool"}).
		Insert("y", term.Builtin{Name: "Natural"})

	got, ok := c.Lookup(term.V{Name: "x", Index: 0})
	if !ok || got != term.Term(term.Builtin{Name: "Bool"}) {
		t.Fatalf("Lookup(x@0) = %v, want Bool", got)
	}
}

func TestInsertShiftsStoredTypeOverNewBinderOfSameLabel(t *testing.T) {
	// Insert x : Bool, then insert another x-binder whose type refers to the
	// outer x (x@0 before the insertion). Once the new frame is pushed that
	// reference must skip it, so the inner binding's stored type reads x@1.
	c := Empty().Insert("x", term.Builtin{Name: "Bool"})
	c = c.Insert("x", term.Var{term.V{Name: "x", Index: 0}})

	innerType, ok := c.Lookup(term.V{Name: "x", Index: 0})
	if !ok {
		t.Fatal("expected x@0 to resolve")
	}
	want := term.Var{term.V{Name: "x", Index: 1}}
	if innerType != term.Term(want) {
		t.Fatalf("stored type of inner x = %v, want %v (shifted over the new binder)", innerType, want)
	}
}

func TestEmptyReportsNoBindings(t *testing.T) {
	if !Empty().Empty() {
		t.Fatal("expected fresh context to be empty")
	}
	if Empty().Insert("x", term.Builtin{Name: "Bool"}).Empty() {
		t.Fatal("expected context with a binding to be non-empty")
	}
}
