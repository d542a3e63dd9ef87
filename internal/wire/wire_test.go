package wire

import (
	"testing"

	"github.com/dhallcore/dhallcore/internal/equivalence"
	"github.com/dhallcore/dhallcore/internal/label"
	"github.com/dhallcore/dhallcore/internal/term"
)

func roundTrip(t *testing.T, e term.Term) term.Term {
	t.Helper()
	data, err := Marshal(e)
	if err != nil {
		t.Fatalf("Marshal(%v): %v", e, err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal(%q): %v", data, err)
	}
	return got
}

func TestRoundTripScalarLiterals(t *testing.T) {
	for _, e := range []term.Term{
		term.BoolLit{Value: true},
		term.NaturalLit{Value: 42},
		term.IntegerLit{Value: -7},
		term.DoubleLit{Value: 3.5},
		term.TextLit{Value: "hello"},
		term.Const{U: term.Type},
		term.Const{U: term.Kind},
		term.Builtin{Name: "Natural/even"},
	} {
		got := roundTrip(t, e)
		if !equivalence.Equal(got, e) {
			t.Fatalf("round trip of %v produced %v", e, got)
		}
	}
}

func TestRoundTripFunctionType(t *testing.T) {
	e := term.Pi{Label: "x", Type: term.Builtin{Name: "Natural"}, Body: term.Var{V: term.V{Name: "x", Index: 0}}}
	got := roundTrip(t, e)
	if !equivalence.Equal(got, e) {
		t.Fatalf("round trip of %v produced %v", e, got)
	}
}

func TestRoundTripRecordLiteral(t *testing.T) {
	e := term.RecordLit{Fields: term.NewFields(map[label.Label]term.Term{
		"a": term.NaturalLit{Value: 1},
		"b": term.BoolLit{Value: false},
	})}
	got := roundTrip(t, e)
	if !equivalence.Equal(got, e) {
		t.Fatalf("round trip of %v produced %v", e, got)
	}
}

func TestRoundTripApplicationAndList(t *testing.T) {
	e := term.AppArgs(term.Builtin{Name: "List/length"}, term.Builtin{Name: "Natural"},
		term.NEListLit{Elems: []term.Term{term.NaturalLit{Value: 1}, term.NaturalLit{Value: 2}}})
	got := roundTrip(t, e)
	if !equivalence.Equal(got, e) {
		t.Fatalf("round trip of %v produced %v", e, got)
	}
}

func TestUnmarshalRejectsUnknownKind(t *testing.T) {
	if _, err := Unmarshal([]byte("kind: NotAThing\n")); err == nil {
		t.Fatal("expected an error for an unrecognized node kind")
	}
}
