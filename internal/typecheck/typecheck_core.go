// Package typecheck is the type synthesiser (§4.6): one clause per term
// constructor, producing either a principal type or a structured
// TypeError. Entry points are TypeWith (the core), TypeOf (TypeWith from the
// empty context) and NormalizedTypeWith (TypeWith followed by normalization
// of the result).
//
// Following the teacher's convention of splitting a large package by clause
// group rather than by one-file-per-function, the constructors are grouped
// across typecheck_literals.go, typecheck_functions.go, typecheck_control.go,
// typecheck_collections.go, typecheck_records.go and typecheck_binop.go;
// this file only holds the dispatcher and the two derived entry points.
package typecheck

import (
	"github.com/dhallcore/dhallcore/internal/normalize"
	"github.com/dhallcore/dhallcore/internal/term"
	"github.com/dhallcore/dhallcore/internal/tyctx"
)

// TypeWith synthesises the type of e under ctx.
func TypeWith(ctx tyctx.Context, e term.Term) (term.Term, *TypeError) {
	switch t := e.(type) {
	case term.Const:
		return typeConst(ctx, t)
	case term.Var:
		return typeVar(ctx, t)
	case term.Builtin:
		return typeBuiltin(ctx, t)
	case term.BoolLit:
		return term.Builtin{Name: "Bool"}, nil
	case term.NaturalLit:
		return term.Builtin{Name: "Natural"}, nil
	case term.IntegerLit:
		return term.Builtin{Name: "Integer"}, nil
	case term.DoubleLit:
		return term.Builtin{Name: "Double"}, nil
	case term.TextLit:
		return term.Builtin{Name: "Text"}, nil
	case term.Lam:
		return typeLam(ctx, t)
	case term.Pi:
		return typePi(ctx, t)
	case term.App:
		return typeApp(ctx, t)
	case term.Let:
		return typeLet(ctx, t)
	case term.Annot:
		return typeAnnot(ctx, t)
	case term.BoolIf:
		return typeBoolIf(ctx, t)
	case term.EmptyListLit:
		return typeEmptyListLit(ctx, t)
	case term.NEListLit:
		return typeNEListLit(ctx, t)
	case term.EmptyOptionalLit:
		return typeEmptyOptionalLit(ctx, t)
	case term.NEOptionalLit:
		return typeNEOptionalLit(ctx, t)
	case term.RecordType:
		return typeRecordType(ctx, t)
	case term.RecordLit:
		return typeRecordLit(ctx, t)
	case term.UnionType:
		return typeUnionType(ctx, t)
	case term.Field:
		return typeField(ctx, t)
	case term.BinOp:
		return typeBinOp(ctx, t)
	default:
		return nil, typeErr(ctx, e, unhandledCode(e))
	}
}

// TypeOf synthesises the type of a closed term (type_of = type_with(empty)).
func TypeOf(e term.Term) (term.Term, *TypeError) {
	return TypeWith(tyctx.Empty(), e)
}

// NormalizedTypeWith synthesises e's type and returns it in normal form.
func NormalizedTypeWith(ctx tyctx.Context, e term.Term) (term.Term, *TypeError) {
	t, err := TypeWith(ctx, e)
	if err != nil {
		return nil, err
	}
	return normalize.Normalize(t), nil
}
