package term

import (
	"sort"
	"strings"

	"github.com/dhallcore/dhallcore/internal/label"
)

// Fields is an ordered label -> term map, kept sorted by label so that two
// records or unions built from the same key set always iterate (and print)
// identically regardless of source order.
type Fields struct {
	keys []label.Label
	vals map[label.Label]Term
}

// NewFields builds a Fields map from pairs, sorting by label.
func NewFields(pairs map[label.Label]Term) Fields {
	keys := make([]label.Label, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	vals := make(map[label.Label]Term, len(pairs))
	for k, v := range pairs {
		vals[k] = v
	}
	return Fields{keys: keys, vals: vals}
}

// Keys returns the sorted label list.
func (f Fields) Keys() []label.Label { return f.keys }

// Get looks up a field by label.
func (f Fields) Get(l label.Label) (Term, bool) {
	v, ok := f.vals[l]
	return v, ok
}

// Len returns the number of fields.
func (f Fields) Len() int { return len(f.keys) }

func (f Fields) print(eq string, sep string) string {
	var b strings.Builder
	b.WriteString("{")
	for i, k := range f.keys {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(k.String())
		b.WriteString(eq)
		if v := f.vals[k]; v != nil {
			b.WriteString(v.String())
		}
	}
	b.WriteString("}")
	return b.String()
}

// RecordType is `{ k1 : T1, k2 : T2, ... }`.
type RecordType struct{ Fields Fields }

func (RecordType) isTerm()          {}
func (r RecordType) String() string { return r.Fields.print(" : ", ", ") }

// RecordLit is `{ k1 = v1, k2 = v2, ... }`.
type RecordLit struct{ Fields Fields }

func (RecordLit) isTerm()          {}
func (r RecordLit) String() string { return r.Fields.print(" = ", ", ") }

// UnionType is `< k1 : T1 | k2 | ... >`; an alternative with no payload maps
// to a nil Term.
type UnionType struct{ Alternatives Fields }

func (UnionType) isTerm() {}
func (u UnionType) String() string {
	var b strings.Builder
	b.WriteString("<")
	for i, k := range u.Alternatives.keys {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(k.String())
		if v := u.Alternatives.vals[k]; v != nil {
			b.WriteString(" : ")
			b.WriteString(v.String())
		}
	}
	b.WriteString(">")
	return b.String()
}

// Field projects a single field out of a record, `Record.Label`.
type Field struct {
	Record Term
	Label  label.Label
}

func (Field) isTerm()          {}
func (f Field) String() string { return safeString(f.Record) + "." + f.Label.String() }

// EmptyListLit is `[] : List ElemType`; the element type must be explicit
// since there is no element to infer it from.
type EmptyListLit struct{ ElemType Term }

func (EmptyListLit) isTerm() {}
func (l EmptyListLit) String() string {
	return "[] : List " + safeString(l.ElemType)
}

// NEListLit is a non-empty list literal `[e1, e2, ...]`.
type NEListLit struct{ Elems []Term }

func (NEListLit) isTerm() {}
func (l NEListLit) String() string {
	parts := make([]string, len(l.Elems))
	for i, e := range l.Elems {
		parts[i] = safeString(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// EmptyOptionalLit is `None ElemType`.
type EmptyOptionalLit struct{ ElemType Term }

func (EmptyOptionalLit) isTerm()          {}
func (o EmptyOptionalLit) String() string { return "None " + safeString(o.ElemType) }

// NEOptionalLit is `Some Elem`.
type NEOptionalLit struct{ Elem Term }

func (NEOptionalLit) isTerm()          {}
func (o NEOptionalLit) String() string { return "Some " + safeString(o.Elem) }

// BinOp is an infix operator application.
type BinOp struct {
	Op string
	L  Term
	R  Term
}

func (BinOp) isTerm()          {}
func (b BinOp) String() string { return safeString(b.L) + " " + b.Op + " " + safeString(b.R) }
