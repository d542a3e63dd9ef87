package term

import "github.com/dhallcore/dhallcore/internal/label"

// Shift renormalizes the de Bruijn indices of every free occurrence of x in
// t by delta. Binder traversal bumps the cutoff n for the variable's own
// label exactly once per binder of that label crossed, which is what makes
// shift capture-avoiding: a bound occurrence is never mistaken for a free
// one just because delta moved it past its own binder's index.
//
// delta is +1 when pushing a new binder (every existing reference must skip
// one more same-labelled binder), or the number of same-labelled frames
// crossed when tyctx.Context.Lookup re-indexes a stored type. Subst lowers
// the remaining indices itself, so no caller here passes a negative delta.
func Shift(delta int, x label.Label, n int, t Term) Term {
	if t == nil {
		return nil
	}
	switch e := t.(type) {
	case Const:
		return e
	case Var:
		if e.V.Name == x && e.V.Index >= n {
			return Var{V{Name: x, Index: e.V.Index + delta}}
		}
		return e
	case Builtin:
		return e
	case BoolLit, NaturalLit, IntegerLit, DoubleLit, TextLit:
		return e
	case Lam:
		n2 := n
		if e.Label == x {
			n2 = n + 1
		}
		return Lam{Label: e.Label, Type: Shift(delta, x, n, e.Type), Body: Shift(delta, x, n2, e.Body)}
	case Pi:
		n2 := n
		if e.Label == x {
			n2 = n + 1
		}
		return Pi{Label: e.Label, Type: Shift(delta, x, n, e.Type), Body: Shift(delta, x, n2, e.Body)}
	case Let:
		n2 := n
		if e.Label == x {
			n2 = n + 1
		}
		var ann Term
		if e.Annotation != nil {
			ann = Shift(delta, x, n, e.Annotation)
		}
		return Let{Label: e.Label, Annotation: ann, Value: Shift(delta, x, n, e.Value), Body: Shift(delta, x, n2, e.Body)}
	case App:
		return App{Fn: Shift(delta, x, n, e.Fn), Arg: Shift(delta, x, n, e.Arg)}
	case Annot:
		return Annot{Expr: Shift(delta, x, n, e.Expr), Type: Shift(delta, x, n, e.Type)}
	case BoolIf:
		return BoolIf{Cond: Shift(delta, x, n, e.Cond), Then: Shift(delta, x, n, e.Then), Else: Shift(delta, x, n, e.Else)}
	case EmptyListLit:
		return EmptyListLit{ElemType: Shift(delta, x, n, e.ElemType)}
	case NEListLit:
		return NEListLit{Elems: shiftAll(delta, x, n, e.Elems)}
	case EmptyOptionalLit:
		return EmptyOptionalLit{ElemType: Shift(delta, x, n, e.ElemType)}
	case NEOptionalLit:
		return NEOptionalLit{Elem: Shift(delta, x, n, e.Elem)}
	case RecordType:
		return RecordType{Fields: shiftFields(delta, x, n, e.Fields)}
	case RecordLit:
		return RecordLit{Fields: shiftFields(delta, x, n, e.Fields)}
	case UnionType:
		return UnionType{Alternatives: shiftFields(delta, x, n, e.Alternatives)}
	case Field:
		return Field{Record: Shift(delta, x, n, e.Record), Label: e.Label}
	case BinOp:
		return BinOp{Op: e.Op, L: Shift(delta, x, n, e.L), R: Shift(delta, x, n, e.R)}
	default:
		return t
	}
}

func shiftAll(delta int, x label.Label, n int, ts []Term) []Term {
	out := make([]Term, len(ts))
	for i, t := range ts {
		out[i] = Shift(delta, x, n, t)
	}
	return out
}

func shiftFields(delta int, x label.Label, n int, f Fields) Fields {
	pairs := make(map[label.Label]Term, f.Len())
	for _, k := range f.Keys() {
		v, _ := f.Get(k)
		if v != nil {
			v = Shift(delta, x, n, v)
		}
		pairs[k] = v
	}
	return NewFields(pairs)
}
