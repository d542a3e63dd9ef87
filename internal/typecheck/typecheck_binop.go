package typecheck

import (
	"github.com/dhallcore/dhallcore/internal/config"
	"github.com/dhallcore/dhallcore/internal/diagnostics"
	"github.com/dhallcore/dhallcore/internal/normalize"
	"github.com/dhallcore/dhallcore/internal/term"
	"github.com/dhallcore/dhallcore/internal/tyctx"
)

func expectBuiltin(ctx tyctx.Context, e term.Term, t term.Term, name string) *TypeError {
	b, ok := normalize.Normalize(t).(term.Builtin)
	if !ok || b.Name != name {
		return typeErr(ctx, e, diagnostics.BinOpTypeMismatch, name, t.String())
	}
	return nil
}

// typeBinOp implements the §4.6 BinOp clause exactly: only the seven
// operators the clause names (&&, ||, ==, !=, +, *, ++) are handled. The
// record-combining operators (/\, //, //\\) and list append (#) are among
// the "incomplete clauses" §9 documents — the reference typechecker panics
// on them rather than synthesising a type, and a faithful port keeps that
// same gap at the same call site rather than inventing typing rules the
// source never specified.
func typeBinOp(ctx tyctx.Context, e term.BinOp) (term.Term, *TypeError) {
	lt, err := TypeWith(ctx, e.L)
	if err != nil {
		return nil, err
	}
	rt, err := TypeWith(ctx, e.R)
	if err != nil {
		return nil, err
	}

	var want string
	var result term.Term
	switch e.Op {
	case config.OpBoolAnd, config.OpBoolOr, config.OpBoolEQ, config.OpBoolNE:
		want = config.BoolName
		result = term.Builtin{Name: config.BoolName}
	case config.OpNaturalPlus, config.OpNaturalTimes:
		want = config.NaturalName
		result = term.Builtin{Name: config.NaturalName}
	case config.OpTextAppend:
		want = config.TextName
		result = term.Builtin{Name: config.TextName}
	default:
		panic("typecheck: unimplemented binary operator " + e.Op)
	}
	if tErr := expectBuiltin(ctx, e.L, lt, want); tErr != nil {
		return nil, tErr
	}
	if tErr := expectBuiltin(ctx, e.R, rt, want); tErr != nil {
		return nil, tErr
	}
	return result, nil
}
