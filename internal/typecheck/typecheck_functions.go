package typecheck

import (
	"github.com/dhallcore/dhallcore/internal/diagnostics"
	"github.com/dhallcore/dhallcore/internal/equivalence"
	"github.com/dhallcore/dhallcore/internal/normalize"
	"github.com/dhallcore/dhallcore/internal/term"
	"github.com/dhallcore/dhallcore/internal/tyctx"
)

// universeOf checks that t classifies as a universe (its own type, under
// ctx, normalizes to Const) and returns which one, using code for the
// failure otherwise.
func universeOf(ctx tyctx.Context, t term.Term, code diagnostics.ErrorCode) (term.Universe, *TypeError) {
	k, err := TypeWith(ctx, t)
	if err != nil {
		return 0, err
	}
	nk := normalize.Normalize(k)
	c, ok := nk.(term.Const)
	if !ok {
		return 0, typeErr(ctx, t, code)
	}
	return c.U, nil
}

func typeLam(ctx tyctx.Context, e term.Lam) (term.Term, *TypeError) {
	kA, err := universeOf(ctx, e.Type, diagnostics.InvalidInputType)
	if err != nil {
		return nil, err
	}
	ctx2 := ctx.Insert(e.Label, e.Type)
	bodyT, err := TypeWith(ctx2, e.Body)
	if err != nil {
		return nil, err
	}
	kB, err := universeOf(ctx2, bodyT, diagnostics.InvalidOutputType)
	if err != nil {
		return nil, err
	}
	if _, ok := term.Rule(kA, kB); !ok {
		return nil, typeErr(ctx, e, diagnostics.NoDependentTypes)
	}
	return term.Pi{Label: e.Label, Type: e.Type, Body: bodyT}, nil
}

func typePi(ctx tyctx.Context, e term.Pi) (term.Term, *TypeError) {
	kA, err := universeOf(ctx, e.Type, diagnostics.InvalidInputType)
	if err != nil {
		return nil, err
	}
	ctx2 := ctx.Insert(e.Label, e.Type)
	kB, err := universeOf(ctx2, e.Body, diagnostics.InvalidOutputType)
	if err != nil {
		return nil, err
	}
	result, ok := term.Rule(kA, kB)
	if !ok {
		return nil, typeErr(ctx, e, diagnostics.NoDependentTypes)
	}
	return term.Const{U: result}, nil
}

func typeApp(ctx tyctx.Context, e term.App) (term.Term, *TypeError) {
	fnT, err := TypeWith(ctx, e.Fn)
	if err != nil {
		return nil, err
	}
	pi, ok := normalize.Normalize(fnT).(term.Pi)
	if !ok {
		return nil, typeErr(ctx, e, diagnostics.NotAFunction)
	}
	argT, err := TypeWith(ctx, e.Arg)
	if err != nil {
		return nil, err
	}
	if !equivalence.Equal(normalize.Normalize(argT), normalize.Normalize(pi.Type)) {
		return nil, typeErr(ctx, e, diagnostics.TypeMismatch,
			e.Arg.String(), argT.String(), pi.Type.String(), argT.String())
	}
	return term.Subst(pi.Label, 0, e.Arg, pi.Body), nil
}

func typeLet(ctx tyctx.Context, e term.Let) (term.Term, *TypeError) {
	valT, err := TypeWith(ctx, e.Value)
	if err != nil {
		return nil, err
	}
	if e.Annotation != nil {
		if _, err := TypeWith(ctx, e.Annotation); err != nil {
			return nil, err
		}
		if !equivalence.Equal(normalize.Normalize(valT), normalize.Normalize(e.Annotation)) {
			return nil, typeErr(ctx, e, diagnostics.AnnotMismatch,
				e.Value.String(), valT.String(), e.Annotation.String())
		}
		valT = e.Annotation
	}
	kA, err := universeOf(ctx, valT, diagnostics.InvalidInputType)
	if err != nil {
		return nil, err
	}
	ctx2 := ctx.Insert(e.Label, valT)
	bodyT, err := TypeWith(ctx2, e.Body)
	if err != nil {
		return nil, err
	}
	kB, err := universeOf(ctx2, bodyT, diagnostics.InvalidOutputType)
	if err != nil {
		return nil, err
	}
	if _, ok := term.Rule(kA, kB); !ok {
		return nil, typeErr(ctx, e, diagnostics.NoDependentLet)
	}
	return term.Subst(e.Label, 0, e.Value, bodyT), nil
}

func typeAnnot(ctx tyctx.Context, e term.Annot) (term.Term, *TypeError) {
	exprT, err := TypeWith(ctx, e.Expr)
	if err != nil {
		return nil, err
	}
	if _, err := TypeWith(ctx, e.Type); err != nil {
		return nil, err
	}
	if !equivalence.Equal(normalize.Normalize(exprT), normalize.Normalize(e.Type)) {
		return nil, typeErr(ctx, e, diagnostics.AnnotMismatch,
			e.Expr.String(), exprT.String(), e.Type.String())
	}
	return e.Type, nil
}
