package term

import "github.com/dhallcore/dhallcore/internal/label"

// Subst replaces the variable x@n in t with value. Descending under any
// binder shifts value by +1 under that binder's own label (one of value's
// free variables may itself be named for the binder just crossed, and must
// skip it to stay pointing at the same thing); descending under a binder for
// label x additionally bumps n, since one more same-labelled binder now
// separates the target from the replaced occurrence.
func Subst(x label.Label, n int, value Term, t Term) Term {
	if t == nil {
		return nil
	}
	switch e := t.(type) {
	case Const:
		return e
	case Var:
		switch {
		case e.V.Name == x && e.V.Index == n:
			return value
		case e.V.Name == x && e.V.Index > n:
			return Var{V{Name: x, Index: e.V.Index - 1}}
		default:
			return e
		}
	case Builtin:
		return e
	case BoolLit, NaturalLit, IntegerLit, DoubleLit, TextLit:
		return e
	case Lam:
		n2 := n
		if e.Label == x {
			n2 = n + 1
		}
		v2 := Shift(1, e.Label, 0, value)
		return Lam{Label: e.Label, Type: Subst(x, n, value, e.Type), Body: Subst(x, n2, v2, e.Body)}
	case Pi:
		n2 := n
		if e.Label == x {
			n2 = n + 1
		}
		v2 := Shift(1, e.Label, 0, value)
		return Pi{Label: e.Label, Type: Subst(x, n, value, e.Type), Body: Subst(x, n2, v2, e.Body)}
	case Let:
		n2 := n
		if e.Label == x {
			n2 = n + 1
		}
		v2 := Shift(1, e.Label, 0, value)
		var ann Term
		if e.Annotation != nil {
			ann = Subst(x, n, value, e.Annotation)
		}
		return Let{Label: e.Label, Annotation: ann, Value: Subst(x, n, value, e.Value), Body: Subst(x, n2, v2, e.Body)}
	case App:
		return App{Fn: Subst(x, n, value, e.Fn), Arg: Subst(x, n, value, e.Arg)}
	case Annot:
		return Annot{Expr: Subst(x, n, value, e.Expr), Type: Subst(x, n, value, e.Type)}
	case BoolIf:
		return BoolIf{Cond: Subst(x, n, value, e.Cond), Then: Subst(x, n, value, e.Then), Else: Subst(x, n, value, e.Else)}
	case EmptyListLit:
		return EmptyListLit{ElemType: Subst(x, n, value, e.ElemType)}
	case NEListLit:
		return NEListLit{Elems: substAll(x, n, value, e.Elems)}
	case EmptyOptionalLit:
		return EmptyOptionalLit{ElemType: Subst(x, n, value, e.ElemType)}
	case NEOptionalLit:
		return NEOptionalLit{Elem: Subst(x, n, value, e.Elem)}
	case RecordType:
		return RecordType{Fields: substFields(x, n, value, e.Fields)}
	case RecordLit:
		return RecordLit{Fields: substFields(x, n, value, e.Fields)}
	case UnionType:
		return UnionType{Alternatives: substFields(x, n, value, e.Alternatives)}
	case Field:
		return Field{Record: Subst(x, n, value, e.Record), Label: e.Label}
	case BinOp:
		return BinOp{Op: e.Op, L: Subst(x, n, value, e.L), R: Subst(x, n, value, e.R)}
	default:
		return t
	}
}

func substAll(x label.Label, n int, value Term, ts []Term) []Term {
	out := make([]Term, len(ts))
	for i, t := range ts {
		out[i] = Subst(x, n, value, t)
	}
	return out
}

func substFields(x label.Label, n int, value Term, f Fields) Fields {
	pairs := make(map[label.Label]Term, f.Len())
	for _, k := range f.Keys() {
		v, _ := f.Get(k)
		if v != nil {
			v = Subst(x, n, value, v)
		}
		pairs[k] = v
	}
	return NewFields(pairs)
}
