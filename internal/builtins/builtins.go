// Package builtins is the builtin type oracle (§4.5): a total function from
// each recognized builtin identifier to its closed Dhall type. The set is
// transcribed directly from the reference typechecker's type_of_builtin,
// which is itself partial — anything not listed there panics with
// "Unimplemented typecheck case". Optional/build is the one addition beyond
// that list, grounded the same way every other Foo/build sits next to a
// Foo/fold: the reference's own comments mark the list as a known-partial
// snapshot, not a semantic boundary worth preserving exactly.
package builtins

import (
	"github.com/dhallcore/dhallcore/internal/config"
	"github.com/dhallcore/dhallcore/internal/label"
	"github.com/dhallcore/dhallcore/internal/term"
)

func pi(l label.Label, t, body term.Term) term.Term {
	return term.Pi{Label: l, Type: t, Body: body}
}

func arrow(from, to term.Term) term.Term {
	return term.Pi{Label: label.Underscore, Type: from, Body: to}
}

var (
	typ     = term.Const{U: term.Type}
	boolT   = term.Builtin{Name: config.BoolName}
	natT    = term.Builtin{Name: config.NaturalName}
	listB   = term.Builtin{Name: config.ListName}
	optB    = term.Builtin{Name: config.OptionalName}
)

func listOf(a term.Term) term.Term     { return term.App{Fn: listB, Arg: a} }
func optionalOf(a term.Term) term.Term { return term.App{Fn: optB, Arg: a} }

// Lookup returns the closed type of a builtin identifier, or false if name
// is not a recognized builtin.
func Lookup(name string) (term.Term, bool) {
	switch name {
	case config.BoolName, config.NaturalName, config.IntegerName, config.DoubleName, config.TextName:
		return typ, true

	case config.ListName, config.OptionalName:
		return arrow(typ, typ), true

	case config.NaturalFoldName:
		// Natural -> forall (natural : Type) -> forall (succ : natural -> natural) -> forall (zero : natural) -> natural
		nv := term.Var{term.V{Name: "natural", Index: 0}}
		return arrow(natT, pi("natural", typ,
			arrow(arrow(nv, nv), arrow(nv, nv)))), true

	case config.NaturalBuildName:
		nv := term.Var{term.V{Name: "natural", Index: 0}}
		eliminator := pi("natural", typ, arrow(arrow(nv, nv), arrow(nv, nv)))
		return arrow(eliminator, natT), true

	case config.NaturalIsZeroName, config.NaturalEvenName, config.NaturalOddName:
		return arrow(natT, boolT), true

	case config.ListBuildName:
		av := term.Var{term.V{Name: "a", Index: 0}}
		lv := term.Var{term.V{Name: "list", Index: 0}}
		eliminator := pi("list", typ, arrow(arrow(av, arrow(lv, lv)), arrow(lv, lv)))
		return pi("a", typ, arrow(eliminator, listOf(av))), true

	case config.ListFoldName:
		av := term.Var{term.V{Name: "a", Index: 0}}
		lv := term.Var{term.V{Name: "list", Index: 0}}
		return pi("a", typ, arrow(listOf(av), pi("list", typ,
			arrow(arrow(av, arrow(lv, lv)), arrow(lv, lv))))), true

	case config.ListLengthName:
		av := term.Var{term.V{Name: "a", Index: 0}}
		return pi("a", typ, arrow(listOf(av), natT)), true

	case config.ListHeadName, config.ListLastName:
		av := term.Var{term.V{Name: "a", Index: 0}}
		return pi("a", typ, arrow(listOf(av), optionalOf(av))), true

	case config.ListReverseName:
		av := term.Var{term.V{Name: "a", Index: 0}}
		return pi("a", typ, arrow(listOf(av), listOf(av))), true

	case config.ListIndexedName:
		av := term.Var{term.V{Name: "a", Index: 0}}
		indexed := term.RecordType{Fields: term.NewFields(map[label.Label]term.Term{
			"index": natT,
			"value": av,
		})}
		return pi("a", typ, arrow(listOf(av), listOf(indexed))), true

	case config.OptionalFoldName:
		av := term.Var{term.V{Name: "a", Index: 0}}
		ov := term.Var{term.V{Name: "optional", Index: 0}}
		return pi("a", typ, arrow(optionalOf(av), pi("optional", typ,
			arrow(arrow(av, ov), arrow(ov, ov))))), true

	case config.OptionalBuildName:
		av := term.Var{term.V{Name: "a", Index: 0}}
		ov := term.Var{term.V{Name: "optional", Index: 0}}
		eliminator := pi("optional", typ, arrow(arrow(av, ov), arrow(ov, ov)))
		return pi("a", typ, arrow(eliminator, optionalOf(av))), true

	default:
		return nil, false
	}
}
