package typecheck

import (
	"github.com/dhallcore/dhallcore/internal/diagnostics"
	"github.com/dhallcore/dhallcore/internal/equivalence"
	"github.com/dhallcore/dhallcore/internal/normalize"
	"github.com/dhallcore/dhallcore/internal/term"
	"github.com/dhallcore/dhallcore/internal/tyctx"
)

func listOf(a term.Term) term.Term { return term.App{Fn: term.Builtin{Name: "List"}, Arg: a} }
func optionalOf(a term.Term) term.Term {
	return term.App{Fn: term.Builtin{Name: "Optional"}, Arg: a}
}

func typeEmptyListLit(ctx tyctx.Context, e term.EmptyListLit) (term.Term, *TypeError) {
	if u, err := universeOf(ctx, e.ElemType, diagnostics.InvalidListType); err != nil {
		return nil, err
	} else if u != term.Type {
		return nil, typeErr(ctx, e, diagnostics.InvalidListType)
	}
	return listOf(e.ElemType), nil
}

func typeNEListLit(ctx tyctx.Context, e term.NEListLit) (term.Term, *TypeError) {
	t0, err := TypeWith(ctx, e.Elems[0])
	if err != nil {
		return nil, err
	}
	if u, err := universeOf(ctx, t0, diagnostics.InvalidListType); err != nil {
		return nil, err
	} else if u != term.Type {
		return nil, typeErr(ctx, e, diagnostics.InvalidListType)
	}
	nt0 := normalize.Normalize(t0)
	for _, elem := range e.Elems[1:] {
		ti, err := TypeWith(ctx, elem)
		if err != nil {
			return nil, err
		}
		if !equivalence.Equal(nt0, normalize.Normalize(ti)) {
			return nil, typeErr(ctx, e, diagnostics.InvalidListElement, elem.String(), ti.String(), t0.String())
		}
	}
	return listOf(t0), nil
}

func typeEmptyOptionalLit(ctx tyctx.Context, e term.EmptyOptionalLit) (term.Term, *TypeError) {
	if u, err := universeOf(ctx, e.ElemType, diagnostics.InvalidOptionalType); err != nil {
		return nil, err
	} else if u != term.Type {
		return nil, typeErr(ctx, e, diagnostics.InvalidOptionalType)
	}
	return optionalOf(e.ElemType), nil
}

func typeNEOptionalLit(ctx tyctx.Context, e term.NEOptionalLit) (term.Term, *TypeError) {
	t, err := TypeWith(ctx, e.Elem)
	if err != nil {
		return nil, err
	}
	if u, err := universeOf(ctx, t, diagnostics.InvalidOptionalElement); err != nil {
		return nil, err
	} else if u != term.Type {
		return nil, typeErr(ctx, e, diagnostics.InvalidOptionalElement)
	}
	return optionalOf(t), nil
}
