package equivalence

import (
	"testing"

	"github.com/dhallcore/dhallcore/internal/label"
	"github.com/dhallcore/dhallcore/internal/term"
)

func TestReflexive(t *testing.T) {
	e := term.Pi{Label: "x", Type: term.Builtin{Name: "Natural"}, Body: term.Builtin{Name: "Bool"}}
	if !Equal(e, e) {
		t.Fatal("expected term to be α-equivalent to itself")
	}
}

func TestAlphaRenamingIgnored(t *testing.T) {
	l := term.Pi{Label: "x", Type: term.Builtin{Name: "Natural"}, Body: term.Var{term.V{Name: "x", Index: 0}}}
	r := term.Pi{Label: "y", Type: term.Builtin{Name: "Natural"}, Body: term.Var{term.V{Name: "y", Index: 0}}}
	if !Equal(l, r) {
		t.Fatal("expected forall(x:Natural)->x to be α-equivalent to forall(y:Natural)->y")
	}
}

func TestDifferentFreeVariablesNotEqual(t *testing.T) {
	l := term.Var{term.V{Name: "x", Index: 0}}
	r := term.Var{term.V{Name: "y", Index: 0}}
	if Equal(l, r) {
		t.Fatal("expected distinct free variables to be unequal")
	}
}

func TestSymmetricAndTransitive(t *testing.T) {
	a := term.Pi{Label: "x", Type: term.Builtin{Name: "Bool"}, Body: term.Var{term.V{Name: "x", Index: 0}}}
	b := term.Pi{Label: "y", Type: term.Builtin{Name: "Bool"}, Body: term.Var{term.V{Name: "y", Index: 0}}}
	c := term.Pi{Label: "z", Type: term.Builtin{Name: "Bool"}, Body: term.Var{term.V{Name: "z", Index: 0}}}
	if !Equal(a, b) || !Equal(b, a) {
		t.Fatal("expected symmetry")
	}
	if !Equal(b, c) || !Equal(a, c) {
		t.Fatal("expected transitivity")
	}
}

func TestRecordTypesCompareByFieldSetAndType(t *testing.T) {
	l := term.RecordType{Fields: term.NewFields(map[label.Label]term.Term{
		"a": term.Builtin{Name: "Natural"},
		"b": term.Builtin{Name: "Bool"},
	})}
	r := term.RecordType{Fields: term.NewFields(map[label.Label]term.Term{
		"b": term.Builtin{Name: "Bool"},
		"a": term.Builtin{Name: "Natural"},
	})}
	if !Equal(l, r) {
		t.Fatal("expected record types with the same fields to be equal regardless of literal key order")
	}

	other := term.RecordType{Fields: term.NewFields(map[label.Label]term.Term{
		"a": term.Builtin{Name: "Natural"},
		"b": term.Builtin{Name: "Text"},
	})}
	if Equal(l, other) {
		t.Fatal("expected record types with differing field types to be unequal")
	}
}

func TestAppSpineCompared(t *testing.T) {
	f := term.Var{term.V{Name: "f", Index: 0}}
	l := term.App{Fn: term.App{Fn: f, Arg: term.NaturalLit{Value: 1}}, Arg: term.NaturalLit{Value: 2}}
	r := term.App{Fn: term.App{Fn: f, Arg: term.NaturalLit{Value: 1}}, Arg: term.NaturalLit{Value: 3}}
	if Equal(l, r) {
		t.Fatal("expected applications with differing arguments to be unequal")
	}
}
