// Package tyctx implements the Dhall typing context (§4.1): an ordered,
// persistent stack of label/type bindings supporting capture-avoiding
// lookup and insertion. It has no shift or substitution operation of its
// own.
//
// The representation is an outer-chained, immutable frame list, the usual
// shape for nested scope lookup: a Context never mutates in place, Insert
// always returns a new Context sharing the old one's tail. Unlike a plain
// named scope chain the typing context also has to re-index the types it stores every time a new binder
// of the *same* label is pushed on top (so that old bindings keep pointing
// at themselves rather than the fresh binder) — that bookkeeping is grounded
// directly on the reference context implementation's lazy, accumulated-shift
// lookup.
package tyctx

import (
	"github.com/dhallcore/dhallcore/internal/label"
	"github.com/dhallcore/dhallcore/internal/term"
)

type frame struct {
	label label.Label
	typ   term.Term
	outer *frame
}

// Context is an immutable typing context. The zero value is the empty
// context.
type Context struct {
	top *frame
}

// Empty returns the empty typing context.
func Empty() Context { return Context{} }

// Insert extends ctx with a new innermost binding x : a, shifting a by +1
// over x first: a is a type valid in ctx, so any reference inside a to an
// outer x-binder must skip past the one we are about to push.
func (c Context) Insert(x label.Label, a term.Term) Context {
	shifted := term.Shift(1, x, 0, a)
	return Context{top: &frame{label: x, typ: shifted, outer: c.top}}
}

// Lookup resolves a de Bruijn variable against the context, returning the
// type stored for it (already re-indexed for the frames crossed since it was
// inserted) or false if the variable is unbound.
func (c Context) Lookup(v term.V) (term.Term, bool) {
	n := v.Index
	shiftCounts := map[label.Label]int{}
	for f := c.top; f != nil; f = f.outer {
		if f.label == v.Name {
			if n == 0 {
				return shiftUnderCounts(f.typ, shiftCounts), true
			}
			n--
		}
		shiftCounts[f.label]++
	}
	return nil, false
}

func shiftUnderCounts(t term.Term, counts map[label.Label]int) term.Term {
	for l, n := range counts {
		if n > 0 {
			t = term.Shift(n, l, 0, t)
		}
	}
	return t
}

// Empty reports whether the context has no bindings.
func (c Context) Empty() bool { return c.top == nil }

// Label returns the innermost bound label, for callers that want to mint a
// fresh non-colliding name (picking against the frame chain).
func (c Context) Label() (label.Label, bool) {
	if c.top == nil {
		return "", false
	}
	return c.top.label, true
}
