// Package prettyprinter renders a term.Term tree back into Dhall concrete
// syntax. It keeps the code printer's general shape (an indent-tracking
// buffer, an operator precedence table that decides when to parenthesize,
// and a field-count threshold that switches a literal from one line to
// one-field-per-line) and retargets every Visit-style case from the Funxy
// AST to term.Term's constructors.
package prettyprinter

import (
	"bytes"
	"strings"

	"github.com/dhallcore/dhallcore/internal/term"
)

// operatorPrecedence is the binding strength used to decide parenthesization
// (low to high): ||, +(Natural), #(List append), &&, combine records /\,
// combine types //\\, prefer //, ==, !=, *, ++(Text append); application
// binds tighter than all of them.
var operatorPrecedence = map[string]int{
	"||":   1,
	"+":    2,
	"#":    3,
	"&&":   4,
	"/\\":  5,
	"//\\\\": 6,
	"//":   7,
	"==":   8,
	"!=":   9,
	"*":    10,
	"++":   11,
}

func precedence(op string) int {
	if p, ok := operatorPrecedence[op]; ok {
		return p
	}
	return 20
}

const appPrecedence = 100

// Printer renders term.Term trees with indentation tracking, matching
// typed-source formatting conventions: a record, union or list with more
// than fieldsPerLine entries breaks one entry per line.
type Printer struct {
	buf               bytes.Buffer
	indent            int
	fieldsPerLine     int
	lineWidthForInline int
}

// New returns a Printer with the conventional settings: inline up to 3
// fields or elements. lineWidthForInline is set to 80 but is not read; the
// inline decision depends on the entry count only, not on line width.
func New() *Printer {
	return &Printer{fieldsPerLine: 3, lineWidthForInline: 80}
}

// Print renders t with a fresh Printer.
func Print(t term.Term) string {
	p := New()
	p.printExpr(t, 0)
	return p.String()
}

func (p *Printer) String() string { return p.buf.String() }

func (p *Printer) write(s string) { p.buf.WriteString(s) }

func (p *Printer) writeIndent() {
	p.buf.WriteString(strings.Repeat("  ", p.indent))
}

func (p *Printer) writeln() { p.buf.WriteByte('\n') }

// printExpr prints t, parenthesizing only when t's own precedence is lower
// than what the caller (parentPrec) requires.
func (p *Printer) printExpr(t term.Term, parentPrec int) {
	if t == nil {
		p.write("<missing>")
		return
	}
	switch e := t.(type) {
	case term.Const:
		p.write(e.String())
	case term.Var:
		p.write(e.String())
	case term.Builtin:
		p.write(e.Name)
	case term.BoolLit:
		p.write(e.String())
	case term.NaturalLit:
		p.write(e.String())
	case term.IntegerLit:
		p.write(e.String())
	case term.DoubleLit:
		p.write(e.String())
	case term.TextLit:
		p.write(e.String())
	case term.Lam:
		p.printBinder(0, "\\(", e.Label.String(), e.Type, e.Body, parentPrec)
	case term.Pi:
		if e.Label == "_" {
			p.printArrow(e, parentPrec)
			return
		}
		p.printBinder(0, "forall(", e.Label.String(), e.Type, e.Body, parentPrec)
	case term.App:
		needParens := parentPrec > appPrecedence
		if needParens {
			p.write("(")
		}
		fn, args := term.Spine(e)
		p.printExpr(fn, appPrecedence)
		for _, a := range args {
			p.write(" ")
			p.printExpr(a, appPrecedence+1)
		}
		if needParens {
			p.write(")")
		}
	case term.Let:
		p.write("let " + e.Label.String())
		if e.Annotation != nil {
			p.write(" : ")
			p.printExpr(e.Annotation, 0)
		}
		p.write(" = ")
		p.printExpr(e.Value, 0)
		p.write(" in ")
		p.printExpr(e.Body, parentPrec)
	case term.Annot:
		needParens := parentPrec > 0
		if needParens {
			p.write("(")
		}
		p.printExpr(e.Expr, 1)
		p.write(" : ")
		p.printExpr(e.Type, 0)
		if needParens {
			p.write(")")
		}
	case term.BoolIf:
		needParens := parentPrec > 0
		if needParens {
			p.write("(")
		}
		p.write("if ")
		p.printExpr(e.Cond, 0)
		p.write(" then ")
		p.printExpr(e.Then, 0)
		p.write(" else ")
		p.printExpr(e.Else, 0)
		if needParens {
			p.write(")")
		}
	case term.EmptyListLit:
		p.write("[] : List ")
		p.printExpr(e.ElemType, appPrecedence+1)
	case term.NEListLit:
		p.printList(e.Elems)
	case term.EmptyOptionalLit:
		p.write("None ")
		p.printExpr(e.ElemType, appPrecedence+1)
	case term.NEOptionalLit:
		needParens := parentPrec > appPrecedence
		if needParens {
			p.write("(")
		}
		p.write("Some ")
		p.printExpr(e.Elem, appPrecedence+1)
		if needParens {
			p.write(")")
		}
	case term.RecordType:
		p.printFields("{ ", " : ", " }", e.Fields)
	case term.RecordLit:
		p.printFields("{ ", " = ", " }", e.Fields)
	case term.UnionType:
		p.printFields("< ", " : ", " >", e.Alternatives)
	case term.Field:
		p.printExpr(e.Record, appPrecedence+1)
		p.write("." + e.Label.String())
	case term.BinOp:
		prec := precedence(e.Op)
		needParens := prec < parentPrec
		if needParens {
			p.write("(")
		}
		p.printExpr(e.L, prec)
		p.write(" " + e.Op + " ")
		p.printExpr(e.R, prec+1)
		if needParens {
			p.write(")")
		}
	default:
		p.write("<unprintable>")
	}
}

// printArrow prints a non-dependent Pi as `Type -> Body` rather than
// `forall(_ : Type) -> Body`, matching how Dhall source actually reads.
func (p *Printer) printArrow(e term.Pi, parentPrec int) {
	needParens := parentPrec > 1
	if needParens {
		p.write("(")
	}
	p.printExpr(e.Type, 2)
	p.write(" -> ")
	p.printExpr(e.Body, 1)
	if needParens {
		p.write(")")
	}
}

func (p *Printer) printBinder(_ int, keyword, label string, ty, body term.Term, parentPrec int) {
	needParens := parentPrec > 0
	if needParens {
		p.write("(")
	}
	p.write(keyword + label + " : ")
	p.printExpr(ty, 0)
	p.write(") -> ")
	p.printExpr(body, 1)
	if needParens {
		p.write(")")
	}
}

func (p *Printer) printList(elems []term.Term) {
	if len(elems) <= p.fieldsPerLine {
		p.write("[")
		for i, e := range elems {
			if i > 0 {
				p.write(", ")
			}
			p.printExpr(e, 1)
		}
		p.write("]")
		return
	}
	p.write("[")
	p.writeln()
	p.indent++
	for i, e := range elems {
		p.writeIndent()
		if i > 0 {
			p.write(", ")
		} else {
			p.write("  ")
		}
		p.printExpr(e, 1)
		p.writeln()
	}
	p.indent--
	p.writeIndent()
	p.write("]")
}

// printFields renders a Fields map (record type, record literal, or union
// alternatives) inline when it has few enough entries, one-per-line
// otherwise. Fields iterate in the sorted order term.Fields already
// maintains, so output is deterministic regardless of construction order.
func (p *Printer) printFields(open, sep, close string, fields term.Fields) {
	keys := fields.Keys()
	if len(keys) == 0 {
		switch open {
		case "{ ":
			if sep == " : " {
				p.write("{}")
			} else {
				p.write("{=}")
			}
		case "< ":
			p.write("<>")
		}
		return
	}
	if len(keys) <= p.fieldsPerLine {
		p.write(open)
		for i, k := range keys {
			if i > 0 {
				p.write(", ")
			}
			v, _ := fields.Get(k)
			p.write(k.String())
			if v != nil {
				p.write(sep)
				p.printExpr(v, 1)
			}
		}
		p.write(close)
		return
	}
	trimmedOpen := strings.TrimSuffix(open, " ")
	p.write(trimmedOpen)
	p.writeln()
	p.indent++
	for i, k := range keys {
		p.writeIndent()
		if i > 0 {
			p.write(", ")
		} else {
			p.write("  ")
		}
		v, _ := fields.Get(k)
		p.write(k.String())
		if v != nil {
			p.write(sep)
			p.printExpr(v, 1)
		}
		p.writeln()
	}
	p.indent--
	p.writeIndent()
	p.write(strings.TrimPrefix(close, " "))
}
