package typecheck

import (
	"github.com/dhallcore/dhallcore/internal/builtins"
	"github.com/dhallcore/dhallcore/internal/diagnostics"
	"github.com/dhallcore/dhallcore/internal/term"
	"github.com/dhallcore/dhallcore/internal/tyctx"
)

func typeConst(ctx tyctx.Context, c term.Const) (term.Term, *TypeError) {
	u, ok := term.Axiom(c.U)
	if !ok {
		return nil, typeErr(ctx, c, diagnostics.Untyped)
	}
	return term.Const{U: u}, nil
}

func typeVar(ctx tyctx.Context, v term.Var) (term.Term, *TypeError) {
	t, ok := ctx.Lookup(v.V)
	if !ok {
		return nil, typeErr(ctx, v, diagnostics.UnboundVariable, v.V.Name.String())
	}
	return t, nil
}

// typeBuiltin looks up b in the oracle. §4.5 states the oracle never fails:
// a miss means b.Name names a builtin outside the committed set (e.g.
// Text/show), which is an implementation bug, not a user-facing unbound
// variable — so this panics the same way typeBinOp panics on an
// unimplemented operator, rather than reporting it through the
// UnboundVariable diagnostic channel.
func typeBuiltin(ctx tyctx.Context, b term.Builtin) (term.Term, *TypeError) {
	t, ok := builtins.Lookup(b.Name)
	if !ok {
		panic("typecheck: no oracle entry for builtin " + b.Name)
	}
	return t, nil
}

func unhandledCode(term.Term) diagnostics.ErrorCode {
	return diagnostics.Untyped
}
