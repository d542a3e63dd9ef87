package normalize

import (
	"testing"

	"github.com/dhallcore/dhallcore/internal/equivalence"
	"github.com/dhallcore/dhallcore/internal/label"
	"github.com/dhallcore/dhallcore/internal/term"
)

func TestBetaReduction(t *testing.T) {
	id := term.Lam{Label: "x", Type: term.Builtin{Name: "Natural"}, Body: term.Var{term.V{Name: "x", Index: 0}}}
	applied := term.App{Fn: id, Arg: term.NaturalLit{Value: 7}}
	got := Normalize(applied)
	if !equivalence.Equal(got, term.NaturalLit{Value: 7}) {
		t.Fatalf("Normalize(id 7) = %v, want 7", got)
	}
}

func TestLetEliminatedBySubstitution(t *testing.T) {
	e := term.Let{Label: "x", Value: term.NaturalLit{Value: 3}, Body: term.Var{term.V{Name: "x", Index: 0}}}
	got := Normalize(e)
	if !equivalence.Equal(got, term.NaturalLit{Value: 3}) {
		t.Fatalf("Normalize(let x = 3 in x) = %v, want 3", got)
	}
}

func TestAnnotStripped(t *testing.T) {
	e := term.Annot{Expr: term.NaturalLit{Value: 1}, Type: term.Builtin{Name: "Natural"}}
	got := Normalize(e)
	if !equivalence.Equal(got, term.NaturalLit{Value: 1}) {
		t.Fatalf("Normalize(1 : Natural) = %v, want 1", got)
	}
}

func TestBoolIfReducesOnLiteralCondition(t *testing.T) {
	e := term.BoolIf{Cond: term.BoolLit{Value: true}, Then: term.NaturalLit{Value: 1}, Else: term.NaturalLit{Value: 2}}
	got := Normalize(e)
	if !equivalence.Equal(got, term.NaturalLit{Value: 1}) {
		t.Fatalf("Normalize(if True then 1 else 2) = %v, want 1", got)
	}
}

func TestFieldProjectionReducesOnLiteral(t *testing.T) {
	rec := term.RecordLit{Fields: term.NewFields(map[label.Label]term.Term{
		"a": term.NaturalLit{Value: 9},
	})}
	e := term.Field{Record: rec, Label: "a"}
	got := Normalize(e)
	if !equivalence.Equal(got, term.NaturalLit{Value: 9}) {
		t.Fatalf("Normalize({a=9}.a) = %v, want 9", got)
	}
}

func TestNaturalIsZero(t *testing.T) {
	e := term.App{Fn: term.Builtin{Name: "Natural/isZero"}, Arg: term.NaturalLit{Value: 0}}
	got := Normalize(e)
	if !equivalence.Equal(got, term.BoolLit{Value: true}) {
		t.Fatalf("Normalize(Natural/isZero 0) = %v, want True", got)
	}
}

func TestNaturalFoldUnrolls(t *testing.T) {
	succ := term.Lam{Label: "n", Type: term.Builtin{Name: "Natural"},
		Body: term.BinOp{Op: "+", L: term.Var{term.V{Name: "n", Index: 0}}, R: term.NaturalLit{Value: 1}}}
	e := term.AppArgs(term.Builtin{Name: "Natural/fold"}, term.NaturalLit{Value: 3}, term.Builtin{Name: "Natural"}, succ, term.NaturalLit{Value: 0})
	got := Normalize(e)
	if !equivalence.Equal(got, term.NaturalLit{Value: 3}) {
		t.Fatalf("Normalize(Natural/fold 3 Natural succ 0) = %v, want 3", got)
	}
}

func TestListLength(t *testing.T) {
	lst := term.NEListLit{Elems: []term.Term{term.NaturalLit{Value: 1}, term.NaturalLit{Value: 2}, term.NaturalLit{Value: 3}}}
	e := term.AppArgs(term.Builtin{Name: "List/length"}, term.Builtin{Name: "Natural"}, lst)
	got := Normalize(e)
	if !equivalence.Equal(got, term.NaturalLit{Value: 3}) {
		t.Fatalf("Normalize(List/length Natural [1,2,3]) = %v, want 3", got)
	}
}

func TestListReverse(t *testing.T) {
	lst := term.NEListLit{Elems: []term.Term{term.NaturalLit{Value: 1}, term.NaturalLit{Value: 2}, term.NaturalLit{Value: 3}}}
	e := term.AppArgs(term.Builtin{Name: "List/reverse"}, term.Builtin{Name: "Natural"}, lst)
	got := Normalize(e)
	want := term.NEListLit{Elems: []term.Term{term.NaturalLit{Value: 3}, term.NaturalLit{Value: 2}, term.NaturalLit{Value: 1}}}
	if !equivalence.Equal(got, want) {
		t.Fatalf("Normalize(List/reverse Natural [1,2,3]) = %v, want %v", got, want)
	}
}

func TestIdempotent(t *testing.T) {
	e := term.BinOp{Op: "+", L: term.NaturalLit{Value: 1}, R: term.NaturalLit{Value: 2}}
	once := Normalize(e)
	twice := Normalize(once)
	if !equivalence.Equal(once, twice) {
		t.Fatalf("Normalize not idempotent: %v != %v", once, twice)
	}
}
