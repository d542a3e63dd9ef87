package typecheck

import (
	"github.com/dhallcore/dhallcore/internal/diagnostics"
	"github.com/dhallcore/dhallcore/internal/equivalence"
	"github.com/dhallcore/dhallcore/internal/normalize"
	"github.com/dhallcore/dhallcore/internal/term"
	"github.com/dhallcore/dhallcore/internal/tyctx"
)

func typeBoolIf(ctx tyctx.Context, e term.BoolIf) (term.Term, *TypeError) {
	condT, err := TypeWith(ctx, e.Cond)
	if err != nil {
		return nil, err
	}
	if b, ok := normalize.Normalize(condT).(term.Builtin); !ok || b.Name != "Bool" {
		return nil, typeErr(ctx, e, diagnostics.InvalidPredicate)
	}
	thenT, err := TypeWith(ctx, e.Then)
	if err != nil {
		return nil, err
	}
	if u, err := universeOf(ctx, thenT, diagnostics.IfBranchMustBeTerm); err != nil {
		return nil, err
	} else if u != term.Type {
		return nil, typeErr(ctx, e, diagnostics.IfBranchMustBeTerm, "then", e.Then.String())
	}
	elseT, err := TypeWith(ctx, e.Else)
	if err != nil {
		return nil, err
	}
	if u, err := universeOf(ctx, elseT, diagnostics.IfBranchMustBeTerm); err != nil {
		return nil, err
	} else if u != term.Type {
		return nil, typeErr(ctx, e, diagnostics.IfBranchMustBeTerm, "else", e.Else.String())
	}
	if !equivalence.Equal(normalize.Normalize(thenT), normalize.Normalize(elseT)) {
		return nil, typeErr(ctx, e, diagnostics.IfBranchMismatch, thenT.String(), elseT.String())
	}
	return thenT, nil
}
