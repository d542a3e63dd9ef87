// Package equivalence implements propositional equality (α-equivalence) over
// normalized terms (§4.4): two terms are equivalent when they are identical
// up to a consistent renaming of bound variables. The type synthesiser calls
// this, never raw structural equality, whenever two computed types must be
// compared.
package equivalence

import (
	"github.com/dhallcore/dhallcore/internal/label"
	"github.com/dhallcore/dhallcore/internal/term"
)

type pair struct {
	L, R label.Label
}

// Equal reports whether l and r (assumed already in normal form) are
// α-equivalent.
func Equal(l, r term.Term) bool {
	return equal(l, r, nil)
}

func equal(l, r term.Term, ctx []pair) bool {
	if l == nil || r == nil {
		return l == nil && r == nil
	}
	switch lv := l.(type) {
	case term.Const:
		rv, ok := r.(term.Const)
		return ok && lv.U == rv.U
	case term.Var:
		rv, ok := r.(term.Var)
		return ok && matchVars(lv.V, rv.V, ctx)
	case term.Builtin:
		rv, ok := r.(term.Builtin)
		return ok && lv.Name == rv.Name
	case term.BoolLit:
		rv, ok := r.(term.BoolLit)
		return ok && lv.Value == rv.Value
	case term.NaturalLit:
		rv, ok := r.(term.NaturalLit)
		return ok && lv.Value == rv.Value
	case term.IntegerLit:
		rv, ok := r.(term.IntegerLit)
		return ok && lv.Value == rv.Value
	case term.DoubleLit:
		rv, ok := r.(term.DoubleLit)
		return ok && lv.Value == rv.Value
	case term.TextLit:
		rv, ok := r.(term.TextLit)
		return ok && lv.Value == rv.Value
	case term.Pi:
		rv, ok := r.(term.Pi)
		if !ok || !equal(lv.Type, rv.Type, ctx) {
			return false
		}
		return equal(lv.Body, rv.Body, append(ctx, pair{lv.Label, rv.Label}))
	case term.Lam:
		rv, ok := r.(term.Lam)
		if !ok || !equal(lv.Type, rv.Type, ctx) {
			return false
		}
		return equal(lv.Body, rv.Body, append(ctx, pair{lv.Label, rv.Label}))
	case term.Let:
		rv, ok := r.(term.Let)
		if !ok || !equalMaybe(lv.Annotation, rv.Annotation, ctx) || !equal(lv.Value, rv.Value, ctx) {
			return false
		}
		return equal(lv.Body, rv.Body, append(ctx, pair{lv.Label, rv.Label}))
	case term.App:
		lh, largs := term.Spine(lv)
		rh, rargs := term.Spine(r)
		if len(largs) != len(rargs) || !equal(lh, rh, ctx) {
			return false
		}
		for i := range largs {
			if !equal(largs[i], rargs[i], ctx) {
				return false
			}
		}
		return true
	case term.Annot:
		rv, ok := r.(term.Annot)
		return ok && equal(lv.Expr, rv.Expr, ctx) && equal(lv.Type, rv.Type, ctx)
	case term.BoolIf:
		rv, ok := r.(term.BoolIf)
		return ok && equal(lv.Cond, rv.Cond, ctx) && equal(lv.Then, rv.Then, ctx) && equal(lv.Else, rv.Else, ctx)
	case term.EmptyListLit:
		rv, ok := r.(term.EmptyListLit)
		return ok && equal(lv.ElemType, rv.ElemType, ctx)
	case term.NEListLit:
		rv, ok := r.(term.NEListLit)
		if !ok || len(lv.Elems) != len(rv.Elems) {
			return false
		}
		for i := range lv.Elems {
			if !equal(lv.Elems[i], rv.Elems[i], ctx) {
				return false
			}
		}
		return true
	case term.EmptyOptionalLit:
		rv, ok := r.(term.EmptyOptionalLit)
		return ok && equal(lv.ElemType, rv.ElemType, ctx)
	case term.NEOptionalLit:
		rv, ok := r.(term.NEOptionalLit)
		return ok && equal(lv.Elem, rv.Elem, ctx)
	case term.RecordType:
		rv, ok := r.(term.RecordType)
		return ok && equalFields(lv.Fields, rv.Fields, ctx)
	case term.RecordLit:
		rv, ok := r.(term.RecordLit)
		return ok && equalFields(lv.Fields, rv.Fields, ctx)
	case term.UnionType:
		rv, ok := r.(term.UnionType)
		return ok && equalFields(lv.Alternatives, rv.Alternatives, ctx)
	case term.Field:
		rv, ok := r.(term.Field)
		return ok && lv.Label == rv.Label && equal(lv.Record, rv.Record, ctx)
	case term.BinOp:
		rv, ok := r.(term.BinOp)
		return ok && lv.Op == rv.Op && equal(lv.L, rv.L, ctx) && equal(lv.R, rv.R, ctx)
	default:
		return false
	}
}

func equalMaybe(l, r term.Term, ctx []pair) bool {
	if l == nil || r == nil {
		return l == nil && r == nil
	}
	return equal(l, r, ctx)
}

func equalFields(l, r term.Fields, ctx []pair) bool {
	lk, rk := l.Keys(), r.Keys()
	if len(lk) != len(rk) {
		return false
	}
	for i, k := range lk {
		if k != rk[i] {
			return false
		}
		lv, _ := l.Get(k)
		rv, _ := r.Get(k)
		if !equalMaybe(lv, rv, ctx) {
			return false
		}
	}
	return true
}

// matchVars walks the paired-label stack innermost-to-outermost (the slice
// is appended innermost-last, so we scan backward), decrementing whichever
// side's de Bruijn index refers to the frame currently under examination.
// Two variables are equivalent either because they hit the same frame at
// index 0 simultaneously, or because after the stack is exhausted they name
// the same still-free variable at the same index.
func matchVars(vl, vr term.V, ctx []pair) bool {
	for i := len(ctx) - 1; i >= 0; i-- {
		p := ctx[i]
		matchL := vl.Name == p.L
		matchR := vr.Name == p.R
		switch {
		case matchL && matchR:
			if vl.Index == 0 && vr.Index == 0 {
				return true
			}
			if vl.Index == 0 || vr.Index == 0 {
				return false
			}
			vl.Index--
			vr.Index--
		case matchL:
			if vl.Index == 0 {
				return false
			}
			vl.Index--
		case matchR:
			if vr.Index == 0 {
				return false
			}
			vr.Index--
		}
	}
	return vl.Name == vr.Name && vl.Index == vr.Index
}
