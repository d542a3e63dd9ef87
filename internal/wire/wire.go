// Package wire is the on-disk term format: since no Dhall parser is part of
// this core (only the type synthesiser, normalizer and their supporting
// collaborators are specified), a document has to reach TypeWith some other
// way. Wire borrows the reference implementation's own escape hatch — the
// dhall-to-json/yaml codecs it ships alongside the parser — and goes one step
// further: it round-trips, not just serializes, using gopkg.in/yaml.v3 (which
// also parses the superset JSON needs). A .dhallterm.yaml or .dhallterm.json
// file is a YAML/JSON rendering of a term.Term tree, one map key per
// constructor, produced by Encode and consumed by Decode.
package wire

import (
	"fmt"

	"github.com/dhallcore/dhallcore/internal/label"
	"github.com/dhallcore/dhallcore/internal/term"
	"gopkg.in/yaml.v3"
)

// Node is the tagged-union wire shape: only the fields that belong to the
// constructor named in Kind are set (a Lam sets Label, Type and Body); some
// fields, such as Type and Label, are shared by several constructors.
type Node struct {
	Kind string `yaml:"kind"`

	Const string `yaml:"const,omitempty"`

	Name  string `yaml:"name,omitempty"`
	Index int    `yaml:"index,omitempty"`

	Builtin string `yaml:"builtin,omitempty"`

	Bool    *bool    `yaml:"bool,omitempty"`
	Natural *uint64  `yaml:"natural,omitempty"`
	Integer *int64   `yaml:"integer,omitempty"`
	Double  *float64 `yaml:"double,omitempty"`
	Text    *string  `yaml:"text,omitempty"`

	Label string `yaml:"label,omitempty"`
	Type  *Node  `yaml:"type,omitempty"`
	Body  *Node  `yaml:"body,omitempty"`

	Fn  *Node `yaml:"fn,omitempty"`
	Arg *Node `yaml:"arg,omitempty"`

	Annotation *Node `yaml:"annotation,omitempty"`
	Value      *Node `yaml:"value,omitempty"`

	Expr *Node `yaml:"expr,omitempty"`

	Cond *Node `yaml:"cond,omitempty"`
	Then *Node `yaml:"then,omitempty"`
	Else *Node `yaml:"else,omitempty"`

	ElemType *Node   `yaml:"elemType,omitempty"`
	Elems    []*Node `yaml:"elems,omitempty"`
	Elem     *Node   `yaml:"elem,omitempty"`

	Fields map[string]*Node `yaml:"fields,omitempty"`
	Record *Node            `yaml:"record,omitempty"`

	Op string `yaml:"op,omitempty"`
	L  *Node  `yaml:"l,omitempty"`
	R  *Node  `yaml:"r,omitempty"`
}

// Encode converts a term.Term into its wire Node.
func Encode(t term.Term) (*Node, error) {
	if t == nil {
		return nil, nil
	}
	switch e := t.(type) {
	case term.Const:
		name := "Type"
		if e.U == term.Kind {
			name = "Kind"
		}
		return &Node{Kind: "Const", Const: name}, nil
	case term.Var:
		return &Node{Kind: "Var", Name: string(e.V.Name), Index: e.V.Index}, nil
	case term.Builtin:
		return &Node{Kind: "Builtin", Builtin: e.Name}, nil
	case term.BoolLit:
		v := e.Value
		return &Node{Kind: "BoolLit", Bool: &v}, nil
	case term.NaturalLit:
		v := e.Value
		return &Node{Kind: "NaturalLit", Natural: &v}, nil
	case term.IntegerLit:
		v := e.Value
		return &Node{Kind: "IntegerLit", Integer: &v}, nil
	case term.DoubleLit:
		v := e.Value
		return &Node{Kind: "DoubleLit", Double: &v}, nil
	case term.TextLit:
		v := e.Value
		return &Node{Kind: "TextLit", Text: &v}, nil
	case term.Lam:
		ty, err := Encode(e.Type)
		if err != nil {
			return nil, err
		}
		body, err := Encode(e.Body)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: "Lam", Label: string(e.Label), Type: ty, Body: body}, nil
	case term.Pi:
		ty, err := Encode(e.Type)
		if err != nil {
			return nil, err
		}
		body, err := Encode(e.Body)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: "Pi", Label: string(e.Label), Type: ty, Body: body}, nil
	case term.App:
		fn, err := Encode(e.Fn)
		if err != nil {
			return nil, err
		}
		arg, err := Encode(e.Arg)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: "App", Fn: fn, Arg: arg}, nil
	case term.Let:
		ann, err := Encode(e.Annotation)
		if err != nil {
			return nil, err
		}
		val, err := Encode(e.Value)
		if err != nil {
			return nil, err
		}
		body, err := Encode(e.Body)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: "Let", Label: string(e.Label), Annotation: ann, Value: val, Body: body}, nil
	case term.Annot:
		expr, err := Encode(e.Expr)
		if err != nil {
			return nil, err
		}
		ty, err := Encode(e.Type)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: "Annot", Expr: expr, Type: ty}, nil
	case term.BoolIf:
		cond, err := Encode(e.Cond)
		if err != nil {
			return nil, err
		}
		then, err := Encode(e.Then)
		if err != nil {
			return nil, err
		}
		els, err := Encode(e.Else)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: "BoolIf", Cond: cond, Then: then, Else: els}, nil
	case term.EmptyListLit:
		elemT, err := Encode(e.ElemType)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: "EmptyListLit", ElemType: elemT}, nil
	case term.NEListLit:
		elems, err := encodeAll(e.Elems)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: "NEListLit", Elems: elems}, nil
	case term.EmptyOptionalLit:
		elemT, err := Encode(e.ElemType)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: "EmptyOptionalLit", ElemType: elemT}, nil
	case term.NEOptionalLit:
		elem, err := Encode(e.Elem)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: "NEOptionalLit", Elem: elem}, nil
	case term.RecordType:
		fields, err := encodeFields(e.Fields)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: "RecordType", Fields: fields}, nil
	case term.RecordLit:
		fields, err := encodeFields(e.Fields)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: "RecordLit", Fields: fields}, nil
	case term.UnionType:
		fields, err := encodeFields(e.Alternatives)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: "UnionType", Fields: fields}, nil
	case term.Field:
		rec, err := Encode(e.Record)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: "Field", Record: rec, Label: string(e.Label)}, nil
	case term.BinOp:
		l, err := Encode(e.L)
		if err != nil {
			return nil, err
		}
		r, err := Encode(e.R)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: "BinOp", Op: e.Op, L: l, R: r}, nil
	default:
		return nil, fmt.Errorf("wire: no encoding for term %T", t)
	}
}

func encodeAll(ts []term.Term) ([]*Node, error) {
	out := make([]*Node, len(ts))
	for i, t := range ts {
		n, err := Encode(t)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func encodeFields(f term.Fields) (map[string]*Node, error) {
	out := make(map[string]*Node, f.Len())
	for _, k := range f.Keys() {
		v, _ := f.Get(k)
		n, err := Encode(v)
		if err != nil {
			return nil, err
		}
		out[string(k)] = n
	}
	return out, nil
}

// Decode converts a wire Node back into a term.Term.
func Decode(n *Node) (term.Term, error) {
	if n == nil {
		return nil, nil
	}
	switch n.Kind {
	case "Const":
		if n.Const == "Kind" {
			return term.Const{U: term.Kind}, nil
		}
		return term.Const{U: term.Type}, nil
	case "Var":
		return term.Var{V: term.V{Name: label.Label(n.Name), Index: n.Index}}, nil
	case "Builtin":
		return term.Builtin{Name: n.Builtin}, nil
	case "BoolLit":
		if n.Bool == nil {
			return nil, fmt.Errorf("wire: BoolLit missing bool field")
		}
		return term.BoolLit{Value: *n.Bool}, nil
	case "NaturalLit":
		if n.Natural == nil {
			return nil, fmt.Errorf("wire: NaturalLit missing natural field")
		}
		return term.NaturalLit{Value: *n.Natural}, nil
	case "IntegerLit":
		if n.Integer == nil {
			return nil, fmt.Errorf("wire: IntegerLit missing integer field")
		}
		return term.IntegerLit{Value: *n.Integer}, nil
	case "DoubleLit":
		if n.Double == nil {
			return nil, fmt.Errorf("wire: DoubleLit missing double field")
		}
		return term.DoubleLit{Value: *n.Double}, nil
	case "TextLit":
		if n.Text == nil {
			return nil, fmt.Errorf("wire: TextLit missing text field")
		}
		return term.TextLit{Value: *n.Text}, nil
	case "Lam", "Pi":
		ty, err := Decode(n.Type)
		if err != nil {
			return nil, err
		}
		body, err := Decode(n.Body)
		if err != nil {
			return nil, err
		}
		if n.Kind == "Lam" {
			return term.Lam{Label: label.Label(n.Label), Type: ty, Body: body}, nil
		}
		return term.Pi{Label: label.Label(n.Label), Type: ty, Body: body}, nil
	case "App":
		fn, err := Decode(n.Fn)
		if err != nil {
			return nil, err
		}
		arg, err := Decode(n.Arg)
		if err != nil {
			return nil, err
		}
		return term.App{Fn: fn, Arg: arg}, nil
	case "Let":
		ann, err := Decode(n.Annotation)
		if err != nil {
			return nil, err
		}
		val, err := Decode(n.Value)
		if err != nil {
			return nil, err
		}
		body, err := Decode(n.Body)
		if err != nil {
			return nil, err
		}
		return term.Let{Label: label.Label(n.Label), Annotation: ann, Value: val, Body: body}, nil
	case "Annot":
		expr, err := Decode(n.Expr)
		if err != nil {
			return nil, err
		}
		ty, err := Decode(n.Type)
		if err != nil {
			return nil, err
		}
		return term.Annot{Expr: expr, Type: ty}, nil
	case "BoolIf":
		cond, err := Decode(n.Cond)
		if err != nil {
			return nil, err
		}
		then, err := Decode(n.Then)
		if err != nil {
			return nil, err
		}
		els, err := Decode(n.Else)
		if err != nil {
			return nil, err
		}
		return term.BoolIf{Cond: cond, Then: then, Else: els}, nil
	case "EmptyListLit":
		elemT, err := Decode(n.ElemType)
		if err != nil {
			return nil, err
		}
		return term.EmptyListLit{ElemType: elemT}, nil
	case "NEListLit":
		elems, err := decodeAll(n.Elems)
		if err != nil {
			return nil, err
		}
		return term.NEListLit{Elems: elems}, nil
	case "EmptyOptionalLit":
		elemT, err := Decode(n.ElemType)
		if err != nil {
			return nil, err
		}
		return term.EmptyOptionalLit{ElemType: elemT}, nil
	case "NEOptionalLit":
		elem, err := Decode(n.Elem)
		if err != nil {
			return nil, err
		}
		return term.NEOptionalLit{Elem: elem}, nil
	case "RecordType", "RecordLit", "UnionType":
		fields, err := decodeFields(n.Fields)
		if err != nil {
			return nil, err
		}
		switch n.Kind {
		case "RecordType":
			return term.RecordType{Fields: term.NewFields(fields)}, nil
		case "RecordLit":
			return term.RecordLit{Fields: term.NewFields(fields)}, nil
		default:
			return term.UnionType{Alternatives: term.NewFields(fields)}, nil
		}
	case "Field":
		rec, err := Decode(n.Record)
		if err != nil {
			return nil, err
		}
		return term.Field{Record: rec, Label: label.Label(n.Label)}, nil
	case "BinOp":
		l, err := Decode(n.L)
		if err != nil {
			return nil, err
		}
		r, err := Decode(n.R)
		if err != nil {
			return nil, err
		}
		return term.BinOp{Op: n.Op, L: l, R: r}, nil
	default:
		return nil, fmt.Errorf("wire: unrecognized node kind %q", n.Kind)
	}
}

func decodeAll(ns []*Node) ([]term.Term, error) {
	out := make([]term.Term, len(ns))
	for i, n := range ns {
		t, err := Decode(n)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

func decodeFields(ns map[string]*Node) (map[label.Label]term.Term, error) {
	out := make(map[label.Label]term.Term, len(ns))
	for k, n := range ns {
		t, err := Decode(n)
		if err != nil {
			return nil, err
		}
		out[label.Label(k)] = t
	}
	return out, nil
}

// Marshal renders t as YAML (a .dhallterm.yaml document's contents).
func Marshal(t term.Term) ([]byte, error) {
	n, err := Encode(t)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(n)
}

// Unmarshal parses YAML or JSON (YAML's syntax is a JSON superset) produced
// by Marshal back into a term.Term.
func Unmarshal(data []byte) (term.Term, error) {
	var n Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("wire: %w", err)
	}
	return Decode(&n)
}
