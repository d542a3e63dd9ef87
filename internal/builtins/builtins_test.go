package builtins

import (
	"testing"

	"github.com/dhallcore/dhallcore/internal/equivalence"
	"github.com/dhallcore/dhallcore/internal/term"
)

func TestScalarTypesAreType(t *testing.T) {
	for _, name := range []string{"Bool", "Natural", "Integer", "Double", "Text"} {
		got, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%s) not found", name)
		}
		if !equivalence.Equal(got, term.Const{U: term.Type}) {
			t.Fatalf("Lookup(%s) = %v, want Type", name, got)
		}
	}
}

func TestListAndOptionalAreTypeFormers(t *testing.T) {
	for _, name := range []string{"List", "Optional"} {
		got, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%s) not found", name)
		}
		want := term.Pi{Label: "_", Type: term.Const{U: term.Type}, Body: term.Const{U: term.Type}}
		if !equivalence.Equal(got, want) {
			t.Fatalf("Lookup(%s) = %v, want %v", name, got, want)
		}
	}
}

func TestUnknownBuiltinNotFound(t *testing.T) {
	if _, ok := Lookup("Natural/doesNotExist"); ok {
		t.Fatal("expected unrecognized builtin to be absent")
	}
}

func TestNaturalIsZeroType(t *testing.T) {
	got, ok := Lookup("Natural/isZero")
	if !ok {
		t.Fatal("Lookup(Natural/isZero) not found")
	}
	want := term.Pi{Label: "_", Type: term.Builtin{Name: "Natural"}, Body: term.Builtin{Name: "Bool"}}
	if !equivalence.Equal(got, want) {
		t.Fatalf("Lookup(Natural/isZero) = %v, want %v", got, want)
	}
}

func TestOptionalBuildAndFoldHaveDistinctTypes(t *testing.T) {
	build, ok := Lookup("Optional/build")
	if !ok {
		t.Fatal("Lookup(Optional/build) not found")
	}
	fold, ok := Lookup("Optional/fold")
	if !ok {
		t.Fatal("Lookup(Optional/fold) not found")
	}
	if equivalence.Equal(build, fold) {
		t.Fatal("Optional/build and Optional/fold should not share the same type")
	}
}
