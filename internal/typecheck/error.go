package typecheck

import (
	"github.com/dhallcore/dhallcore/internal/diagnostics"
	"github.com/dhallcore/dhallcore/internal/term"
	"github.com/dhallcore/dhallcore/internal/tyctx"
)

// TypeError is the result of a failed type_with call (§3.5): the context
// the offending term was checked in, the term itself, and the structured
// error kind. Rendering (turning this into text) is internal/diagnostics'
// job; TypeError only carries what diagnostics needs.
type TypeError struct {
	Context tyctx.Context
	Current term.Term
	Code    diagnostics.ErrorCode
	Slots   []string
}

func (e *TypeError) Error() string {
	return diagnostics.Render(e.Code, e.Slots)
}

func typeErr(ctx tyctx.Context, current term.Term, code diagnostics.ErrorCode, slots ...string) *TypeError {
	return &TypeError{Context: ctx, Current: current, Code: code, Slots: slots}
}
