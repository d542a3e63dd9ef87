// Package term implements the Dhall term algebra: the expression AST the
// typing core operates over, together with the shift and substitution
// primitives every other package in this module is built on.
//
// Term is intentionally a closed, fixed set of constructors rather than an
// open Visitor-style node hierarchy: every consumer (type synthesiser,
// normalizer, equivalence check, printer, wire codec) dispatches with a
// plain type-switch, matching
// the pattern used for the typing core's internal AST elsewhere in this
// repository.
package term

import "github.com/dhallcore/dhallcore/internal/label"

// Term is any node of the Dhall expression language.
type Term interface {
	isTerm()
	String() string
}

// Universe is one of Dhall's two sorts.
type Universe int

const (
	// Type classifies the types of ordinary values: Bool, Natural,
	// Bool -> Bool.
	Type Universe = iota
	// Kind classifies Type itself and type formers such as Type -> Type.
	Kind
)

func (u Universe) String() string {
	if u == Kind {
		return "Kind"
	}
	return "Type"
}

// Axiom implements axiom(Type) = Kind. Kind has no type; ok is false in
// that case.
func Axiom(u Universe) (Universe, bool) {
	if u == Type {
		return Kind, true
	}
	return 0, false
}

// Rule implements the Π-formation table from §3.2. ok is false exactly for
// the (Type, Kind) cell: Dhall forbids functions from types to kinds
// (no dependent types in that direction).
func Rule(input, output Universe) (Universe, bool) {
	switch {
	case input == Type && output == Type:
		return Type, true
	case input == Kind && output == Type:
		return Type, true
	case input == Kind && output == Kind:
		return Kind, true
	default: // Type -> Kind
		return 0, false
	}
}

// V is a de Bruijn-indexed named variable. Index counts how many binders of
// the same Name to skip, innermost first: V{"x", 0} is the innermost x in
// scope.
type V struct {
	Name  label.Label
	Index int
}

func (v V) String() string {
	if v.Index == 0 {
		return v.Name.String()
	}
	return v.Name.String() + "@" + itoa(v.Index)
}

// Const is a universe literal.
type Const struct{ U Universe }

func (Const) isTerm()         {}
func (c Const) String() string { return c.U.String() }

// Var references a bound or free variable.
type Var struct{ V V }

func (Var) isTerm()         {}
func (v Var) String() string { return v.V.String() }

// Builtin is one of the fixed built-in identifiers (Bool, Natural/fold, ...).
// Its type is produced by internal/builtins and its reduction rules (where
// it has any) live in internal/normalize.
type Builtin struct{ Name string }

func (Builtin) isTerm()          {}
func (b Builtin) String() string { return b.Name }

// BoolLit, NaturalLit, IntegerLit, DoubleLit, TextLit are closed literals.
type (
	BoolLit    struct{ Value bool }
	NaturalLit struct{ Value uint64 }
	IntegerLit struct{ Value int64 }
	DoubleLit  struct{ Value float64 }
	TextLit    struct{ Value string }
)

func (BoolLit) isTerm()    {}
func (NaturalLit) isTerm() {}
func (IntegerLit) isTerm() {}
func (DoubleLit) isTerm()  {}
func (TextLit) isTerm()    {}

func (l BoolLit) String() string {
	if l.Value {
		return "True"
	}
	return "False"
}
func (l NaturalLit) String() string { return utoa(l.Value) }
func (l IntegerLit) String() string {
	if l.Value >= 0 {
		return "+" + itoa(int(l.Value))
	}
	return itoa(int(l.Value))
}
func (l DoubleLit) String() string { return ftoa(l.Value) }
func (l TextLit) String() string   { return quote(l.Value) }
