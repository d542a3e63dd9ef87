// Package normalize implements the weak-head/full-normal-form reducer the
// typing core treats as an external collaborator (§4.3): β-reduction plus
// the closed, total builtin reductions. Its own internal strategy (here:
// direct substitution, normalize-then-recombine) is not part of the
// specified core and may be replaced by a more sophisticated evaluator
// without affecting any other package, as long as the function stays pure,
// idempotent and type-preserving.
package normalize

import (
	"github.com/dhallcore/dhallcore/internal/config"
	"github.com/dhallcore/dhallcore/internal/label"
	"github.com/dhallcore/dhallcore/internal/term"
	"github.com/dhallcore/dhallcore/internal/tyctx"
)

// Normalize reduces t to its normal form.
func Normalize(t term.Term) term.Term {
	if t == nil {
		return nil
	}
	switch e := t.(type) {
	case term.Const, term.Var, term.Builtin, term.BoolLit, term.NaturalLit, term.IntegerLit, term.DoubleLit, term.TextLit:
		return e
	case term.Lam:
		return term.Lam{Label: e.Label, Type: Normalize(e.Type), Body: Normalize(e.Body)}
	case term.Pi:
		return term.Pi{Label: e.Label, Type: Normalize(e.Type), Body: Normalize(e.Body)}
	case term.Let:
		val := Normalize(e.Value)
		return Normalize(term.Subst(e.Label, 0, val, e.Body))
	case term.Annot:
		return Normalize(e.Expr)
	case term.BoolIf:
		return normalizeBoolIf(e)
	case term.App:
		return normalizeApp(e)
	case term.EmptyListLit:
		return term.EmptyListLit{ElemType: Normalize(e.ElemType)}
	case term.NEListLit:
		elems := make([]term.Term, len(e.Elems))
		for i, x := range e.Elems {
			elems[i] = Normalize(x)
		}
		return term.NEListLit{Elems: elems}
	case term.EmptyOptionalLit:
		return term.EmptyOptionalLit{ElemType: Normalize(e.ElemType)}
	case term.NEOptionalLit:
		return term.NEOptionalLit{Elem: Normalize(e.Elem)}
	case term.RecordType:
		return term.RecordType{Fields: normalizeFields(e.Fields)}
	case term.RecordLit:
		return term.RecordLit{Fields: normalizeFields(e.Fields)}
	case term.UnionType:
		return term.UnionType{Alternatives: normalizeFields(e.Alternatives)}
	case term.Field:
		return normalizeField(e)
	case term.BinOp:
		return normalizeBinOp(e)
	default:
		return t
	}
}

func normalizeFields(f term.Fields) term.Fields {
	out := make(map[label.Label]term.Term, f.Len())
	for _, k := range f.Keys() {
		v, _ := f.Get(k)
		if v != nil {
			v = Normalize(v)
		}
		out[k] = v
	}
	return term.NewFields(out)
}

func normalizeBoolIf(e term.BoolIf) term.Term {
	c := Normalize(e.Cond)
	if b, ok := c.(term.BoolLit); ok {
		if b.Value {
			return Normalize(e.Then)
		}
		return Normalize(e.Else)
	}
	then, els := Normalize(e.Then), Normalize(e.Else)
	return term.BoolIf{Cond: c, Then: then, Else: els}
}

func normalizeField(e term.Field) term.Term {
	rec := Normalize(e.Record)
	if lit, ok := rec.(term.RecordLit); ok {
		if v, ok := lit.Fields.Get(e.Label); ok {
			return v
		}
	}
	return term.Field{Record: rec, Label: e.Label}
}

func normalizeApp(a term.App) term.Term {
	fn := Normalize(a.Fn)
	arg := Normalize(a.Arg)
	if lam, ok := fn.(term.Lam); ok {
		return Normalize(term.Subst(lam.Label, 0, arg, lam.Body))
	}
	head, args := term.Spine(term.App{Fn: fn, Arg: arg})
	if b, ok := head.(term.Builtin); ok {
		if result, ok := unfoldBuiltin(b.Name, args); ok {
			return Normalize(result)
		}
	}
	return term.App{Fn: fn, Arg: arg}
}

func natLit(e term.Term) (uint64, bool) {
	n, ok := e.(term.NaturalLit)
	return n.Value, ok
}

// unfoldBuiltin applies the closed reduction rule for a fully (or
// sufficiently) applied builtin. args are already normalized. ok is false
// when the builtin has no rule (Bool/Natural/... type formers) or the
// arguments are not yet concrete enough to reduce (e.g. a List/fold scrutinee
// that is still a free variable).
func unfoldBuiltin(name string, args []term.Term) (term.Term, bool) {
	switch name {
	case config.NaturalIsZeroName:
		if len(args) == 1 {
			if n, ok := natLit(args[0]); ok {
				return term.BoolLit{Value: n == 0}, true
			}
		}
	case config.NaturalEvenName:
		if len(args) == 1 {
			if n, ok := natLit(args[0]); ok {
				return term.BoolLit{Value: n%2 == 0}, true
			}
		}
	case config.NaturalOddName:
		if len(args) == 1 {
			if n, ok := natLit(args[0]); ok {
				return term.BoolLit{Value: n%2 == 1}, true
			}
		}
	case config.NaturalFoldName:
		if len(args) == 4 {
			if n, ok := natLit(args[0]); ok {
				succ, zero := args[2], args[3]
				result := zero
				for i := uint64(0); i < n; i++ {
					result = term.App{Fn: succ, Arg: result}
				}
				return result, true
			}
		}
	case config.NaturalBuildName:
		if len(args) == 1 {
			natV := tyctx.FreshLabel("x")
			succ := term.Lam{Label: natV, Type: term.Builtin{Name: config.NaturalName},
				Body: term.BinOp{Op: config.OpNaturalPlus, L: term.Var{term.V{Name: natV}}, R: term.NaturalLit{Value: 1}}}
			zero := term.NaturalLit{Value: 0}
			return term.AppArgs(args[0], term.Builtin{Name: config.NaturalName}, succ, zero), true
		}
	case config.ListLengthName:
		if len(args) == 2 {
			if n, ok := listLen(args[1]); ok {
				return term.NaturalLit{Value: uint64(n)}, true
			}
		}
	case config.ListReverseName:
		if len(args) == 2 {
			if elems, elemT, ok := listElems(args[1]); ok {
				out := make([]term.Term, len(elems))
				for i, e := range elems {
					out[len(elems)-1-i] = e
				}
				return listLit(out, elemT), true
			}
		}
	case config.ListHeadName:
		if len(args) == 2 {
			if elems, elemT, ok := listElems(args[1]); ok {
				if len(elems) == 0 {
					return term.EmptyOptionalLit{ElemType: elemT}, true
				}
				return term.NEOptionalLit{Elem: elems[0]}, true
			}
		}
	case config.ListLastName:
		if len(args) == 2 {
			if elems, elemT, ok := listElems(args[1]); ok {
				if len(elems) == 0 {
					return term.EmptyOptionalLit{ElemType: elemT}, true
				}
				return term.NEOptionalLit{Elem: elems[len(elems)-1]}, true
			}
		}
	case config.ListIndexedName:
		if len(args) == 2 {
			if elems, elemT, ok := listElems(args[1]); ok {
				indexedT := term.RecordType{Fields: term.NewFields(map[label.Label]term.Term{
					"index": term.Builtin{Name: config.NaturalName},
					"value": elemT,
				})}
				out := make([]term.Term, len(elems))
				for i, e := range elems {
					out[i] = term.RecordLit{Fields: term.NewFields(map[label.Label]term.Term{
						"index": term.NaturalLit{Value: uint64(i)},
						"value": e,
					})}
				}
				return listLit(out, indexedT), true
			}
		}
	case config.ListFoldName:
		if len(args) == 5 {
			if elems, _, ok := listElems(args[1]); ok {
				cons, nilV := args[3], args[4]
				result := nilV
				for i := len(elems) - 1; i >= 0; i-- {
					result = term.AppArgs(cons, elems[i], result)
				}
				return result, true
			}
		}
	case config.ListBuildName:
		if len(args) == 2 {
			a := args[0]
			x := tyctx.FreshLabel("x")
			xs := tyctx.FreshLabel("xs")
			cons := term.Lam{Label: x, Type: a, Body: term.Lam{Label: xs, Type: term.App{Fn: term.Builtin{Name: config.ListName}, Arg: a},
				Body: term.BinOp{Op: config.OpListAppend,
					L: term.NEListLit{Elems: []term.Term{term.Var{term.V{Name: x}}}},
					R: term.Var{term.V{Name: xs}}}}}
			nilV := term.EmptyListLit{ElemType: a}
			return term.AppArgs(args[1], term.App{Fn: term.Builtin{Name: config.ListName}, Arg: a}, cons, nilV), true
		}
	case config.OptionalFoldName:
		if len(args) == 5 {
			some, none := args[3], args[4]
			switch opt := args[1].(type) {
			case term.NEOptionalLit:
				return term.App{Fn: some, Arg: opt.Elem}, true
			case term.EmptyOptionalLit:
				return none, true
			}
		}
	case config.OptionalBuildName:
		if len(args) == 2 {
			a := args[0]
			x := tyctx.FreshLabel("x")
			some := term.Lam{Label: x, Type: a, Body: term.NEOptionalLit{Elem: term.Var{term.V{Name: x}}}}
			none := term.EmptyOptionalLit{ElemType: a}
			return term.AppArgs(args[1], term.App{Fn: term.Builtin{Name: config.OptionalName}, Arg: a}, some, none), true
		}
	}
	return nil, false
}

func listLen(t term.Term) (int, bool) {
	switch l := t.(type) {
	case term.NEListLit:
		return len(l.Elems), true
	case term.EmptyListLit:
		return 0, true
	}
	return 0, false
}

func listElems(t term.Term) ([]term.Term, term.Term, bool) {
	switch l := t.(type) {
	case term.NEListLit:
		return l.Elems, nil, true
	case term.EmptyListLit:
		return nil, l.ElemType, true
	}
	return nil, nil, false
}

func listLit(elems []term.Term, elemType term.Term) term.Term {
	if len(elems) == 0 {
		return term.EmptyListLit{ElemType: elemType}
	}
	return term.NEListLit{Elems: elems}
}

func normalizeBinOp(e term.BinOp) term.Term {
	l, r := Normalize(e.L), Normalize(e.R)
	switch e.Op {
	case config.OpBoolAnd:
		if lb, ok := l.(term.BoolLit); ok {
			if !lb.Value {
				return term.BoolLit{Value: false}
			}
			return r
		}
		if rb, ok := r.(term.BoolLit); ok {
			if !rb.Value {
				return term.BoolLit{Value: false}
			}
			return l
		}
	case config.OpBoolOr:
		if lb, ok := l.(term.BoolLit); ok {
			if lb.Value {
				return term.BoolLit{Value: true}
			}
			return r
		}
		if rb, ok := r.(term.BoolLit); ok {
			if rb.Value {
				return term.BoolLit{Value: true}
			}
			return l
		}
	case config.OpBoolEQ:
		if lb, ok := l.(term.BoolLit); ok {
			if rb, ok := r.(term.BoolLit); ok {
				return term.BoolLit{Value: lb.Value == rb.Value}
			}
		}
	case config.OpBoolNE:
		if lb, ok := l.(term.BoolLit); ok {
			if rb, ok := r.(term.BoolLit); ok {
				return term.BoolLit{Value: lb.Value != rb.Value}
			}
		}
	case config.OpNaturalPlus:
		if ln, ok := l.(term.NaturalLit); ok {
			if rn, ok := r.(term.NaturalLit); ok {
				return term.NaturalLit{Value: ln.Value + rn.Value}
			}
		}
	case config.OpNaturalTimes:
		if ln, ok := l.(term.NaturalLit); ok {
			if rn, ok := r.(term.NaturalLit); ok {
				return term.NaturalLit{Value: ln.Value * rn.Value}
			}
		}
	case config.OpTextAppend:
		if lt, ok := l.(term.TextLit); ok {
			if rt, ok := r.(term.TextLit); ok {
				return term.TextLit{Value: lt.Value + rt.Value}
			}
		}
	case config.OpListAppend:
		if lElems, lElemT, ok := listElems(l); ok {
			if rElems, rElemT, ok := listElems(r); ok {
				elemT := lElemT
				if elemT == nil {
					elemT = rElemT
				}
				all := append(append([]term.Term{}, lElems...), rElems...)
				return listLit(all, elemT)
			}
		}
	case config.OpRecordMerge:
		if lf, ok := l.(term.RecordLit); ok {
			if rf, ok := r.(term.RecordLit); ok {
				return term.RecordLit{Fields: mergeFieldsRecursive(lf.Fields, rf.Fields)}
			}
		}
	case config.OpRightBiasedOR:
		if lf, ok := l.(term.RecordLit); ok {
			if rf, ok := r.(term.RecordLit); ok {
				return term.RecordLit{Fields: mergeFieldsRightBiased(lf.Fields, rf.Fields)}
			}
		}
	case config.OpRecordTypeAnd:
		if lf, ok := l.(term.RecordType); ok {
			if rf, ok := r.(term.RecordType); ok {
				return term.RecordType{Fields: mergeFieldsRecursive(lf.Fields, rf.Fields)}
			}
		}
	}
	return term.BinOp{Op: e.Op, L: l, R: r}
}

func mergeFieldsRightBiased(l, r term.Fields) term.Fields {
	out := map[label.Label]term.Term{}
	for _, k := range l.Keys() {
		v, _ := l.Get(k)
		out[k] = v
	}
	for _, k := range r.Keys() {
		v, _ := r.Get(k)
		out[k] = v
	}
	return term.NewFields(out)
}

func mergeFieldsRecursive(l, r term.Fields) term.Fields {
	out := map[label.Label]term.Term{}
	for _, k := range l.Keys() {
		v, _ := l.Get(k)
		out[k] = v
	}
	for _, k := range r.Keys() {
		rv, _ := r.Get(k)
		if lv, ok := out[k]; ok {
			lRec, lok := lv.(term.RecordLit)
			rRec, rok := rv.(term.RecordLit)
			if lok && rok {
				out[k] = term.RecordLit{Fields: mergeFieldsRecursive(lRec.Fields, rRec.Fields)}
				continue
			}
		}
		out[k] = rv
	}
	return term.NewFields(out)
}
