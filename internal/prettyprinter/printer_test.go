package prettyprinter

import (
	"strings"
	"testing"

	"github.com/dhallcore/dhallcore/internal/label"
	"github.com/dhallcore/dhallcore/internal/term"
)

func TestPrintScalarLiterals(t *testing.T) {
	cases := map[string]term.Term{
		"True":  term.BoolLit{Value: true},
		"False": term.BoolLit{Value: false},
		"5":     term.NaturalLit{Value: 5},
		"Bool":  term.Builtin{Name: "Bool"},
		"Type":  term.Const{U: term.Type},
	}
	for want, e := range cases {
		if got := Print(e); got != want {
			t.Fatalf("Print(%v) = %q, want %q", e, got, want)
		}
	}
}

func TestPrintNonDependentArrow(t *testing.T) {
	e := term.Pi{Label: "_", Type: term.Builtin{Name: "Natural"}, Body: term.Builtin{Name: "Bool"}}
	got := Print(e)
	if got != "Natural -> Bool" {
		t.Fatalf("Print(Natural -> Bool) = %q", got)
	}
}

func TestPrintDependentPiUsesForall(t *testing.T) {
	e := term.Pi{Label: "a", Type: term.Const{U: term.Type}, Body: term.Var{V: term.V{Name: "a", Index: 0}}}
	got := Print(e)
	if got != "forall(a : Type) -> a" {
		t.Fatalf("Print(forall) = %q", got)
	}
}

func TestPrintLambdaAndApplication(t *testing.T) {
	id := term.Lam{Label: "x", Type: term.Builtin{Name: "Natural"}, Body: term.Var{V: term.V{Name: "x", Index: 0}}}
	got := Print(id)
	if got != "\\(x : Natural) -> x" {
		t.Fatalf("Print(id) = %q", got)
	}
	applied := term.App{Fn: id, Arg: term.NaturalLit{Value: 3}}
	got = Print(applied)
	if !strings.Contains(got, "3") || !strings.HasPrefix(got, "(\\(x") {
		t.Fatalf("Print(id 3) = %q", got)
	}
}

func TestPrintSmallRecordLiteralInline(t *testing.T) {
	e := term.RecordLit{Fields: term.NewFields(map[label.Label]term.Term{
		"a": term.NaturalLit{Value: 1},
		"b": term.BoolLit{Value: true},
	})}
	got := Print(e)
	if got != "{ a = 1, b = True }" {
		t.Fatalf("Print(record) = %q", got)
	}
}

func TestPrintEmptyRecordTypeAndLiteral(t *testing.T) {
	if got := Print(term.RecordType{Fields: term.NewFields(nil)}); got != "{}" {
		t.Fatalf("Print({}) type = %q", got)
	}
	if got := Print(term.RecordLit{Fields: term.NewFields(nil)}); got != "{=}" {
		t.Fatalf("Print({=}) literal = %q", got)
	}
}

func TestPrintLargeRecordBreaksOneFieldPerLine(t *testing.T) {
	e := term.RecordLit{Fields: term.NewFields(map[label.Label]term.Term{
		"a": term.NaturalLit{Value: 1},
		"b": term.NaturalLit{Value: 2},
		"c": term.NaturalLit{Value: 3},
		"d": term.NaturalLit{Value: 4},
	})}
	got := Print(e)
	if !strings.Contains(got, "\n") {
		t.Fatalf("Print(4-field record) did not break lines: %q", got)
	}
	for _, field := range []string{"a = 1", "b = 2", "c = 3", "d = 4"} {
		if !strings.Contains(got, field) {
			t.Fatalf("Print(4-field record) missing %q: %q", field, got)
		}
	}
}

func TestPrintFieldProjection(t *testing.T) {
	e := term.Field{Record: term.Var{V: term.V{Name: "r", Index: 0}}, Label: "x"}
	if got := Print(e); got != "r.x" {
		t.Fatalf("Print(r.x) = %q", got)
	}
}

func TestPrintBinOpRespectsPrecedence(t *testing.T) {
	// (1 + 2) * 3 must keep its parens since * binds tighter than +.
	e := term.BinOp{Op: "*", L: term.BinOp{Op: "+", L: term.NaturalLit{Value: 1}, R: term.NaturalLit{Value: 2}}, R: term.NaturalLit{Value: 3}}
	got := Print(e)
	if got != "(1 + 2) * 3" {
		t.Fatalf("Print((1+2)*3) = %q", got)
	}
}

func TestPrintIfThenElse(t *testing.T) {
	e := term.BoolIf{Cond: term.BoolLit{Value: true}, Then: term.NaturalLit{Value: 1}, Else: term.NaturalLit{Value: 2}}
	got := Print(e)
	if got != "if True then 1 else 2" {
		t.Fatalf("Print(if) = %q", got)
	}
}
