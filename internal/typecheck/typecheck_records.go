package typecheck

import (
	"github.com/dhallcore/dhallcore/internal/diagnostics"
	"github.com/dhallcore/dhallcore/internal/label"
	"github.com/dhallcore/dhallcore/internal/normalize"
	"github.com/dhallcore/dhallcore/internal/term"
	"github.com/dhallcore/dhallcore/internal/tyctx"
)

// §4.6's RecordType clause requires every field's own type to synthesise to
// Type, full stop — this spec does not admit the Kind-sorted records the
// full Dhall standard allows (e.g. {x : Type} : Kind); every RecordType and
// UnionType here is Type-sorted.
func typeRecordType(ctx tyctx.Context, e term.RecordType) (term.Term, *TypeError) {
	for _, k := range e.Fields.Keys() {
		v, _ := e.Fields.Get(k)
		u, err := universeOf(ctx, v, diagnostics.InvalidFieldType)
		if err != nil {
			return nil, err
		}
		if u != term.Type {
			return nil, typeErr(ctx, e, diagnostics.InvalidFieldType, k.String())
		}
	}
	return term.Const{U: term.Type}, nil
}

func typeRecordLit(ctx tyctx.Context, e term.RecordLit) (term.Term, *TypeError) {
	fieldTypes := make(map[label.Label]term.Term, e.Fields.Len())
	for _, k := range e.Fields.Keys() {
		v, _ := e.Fields.Get(k)
		t, err := TypeWith(ctx, v)
		if err != nil {
			return nil, err
		}
		if u, err := universeOf(ctx, t, diagnostics.InvalidField); err != nil {
			return nil, err
		} else if u != term.Type {
			return nil, typeErr(ctx, e, diagnostics.InvalidField, k.String())
		}
		fieldTypes[k] = t
	}
	return term.RecordType{Fields: term.NewFields(fieldTypes)}, nil
}

// UnionType has no explicit clause in §4.6 (only union *literals* are named
// among §9's incomplete/unimplemented constructs); its type former is typed
// the same way RecordType's is, by analogy — every alternative with a
// payload must itself synthesise to Type.
func typeUnionType(ctx tyctx.Context, e term.UnionType) (term.Term, *TypeError) {
	for _, k := range e.Alternatives.Keys() {
		v, _ := e.Alternatives.Get(k)
		if v == nil {
			continue
		}
		u, err := universeOf(ctx, v, diagnostics.InvalidAlternativeType)
		if err != nil {
			return nil, err
		}
		if u != term.Type {
			return nil, typeErr(ctx, e, diagnostics.InvalidAlternativeType, k.String())
		}
	}
	return term.Const{U: term.Type}, nil
}

func typeField(ctx tyctx.Context, e term.Field) (term.Term, *TypeError) {
	recT, err := TypeWith(ctx, e.Record)
	if err != nil {
		return nil, err
	}
	rt, ok := normalize.Normalize(recT).(term.RecordType)
	if !ok {
		return nil, typeErr(ctx, e, diagnostics.NotARecord)
	}
	ft, ok := rt.Fields.Get(e.Label)
	if !ok {
		return nil, typeErr(ctx, e, diagnostics.MissingField, e.Label.String())
	}
	return ft, nil
}
