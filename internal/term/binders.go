package term

import "github.com/dhallcore/dhallcore/internal/label"

// Lam is a function literal \(Label : Type) -> Body.
type Lam struct {
	Label label.Label
	Type  Term
	Body  Term
}

func (Lam) isTerm() {}
func (l Lam) String() string {
	return "\\(" + l.Label.String() + " : " + safeString(l.Type) + ") -> " + safeString(l.Body)
}

// Pi is a function type, forall(Label : Type) -> Body. A non-dependent
// arrow A -> B is Pi{Underscore, A, B}.
type Pi struct {
	Label label.Label
	Type  Term
	Body  Term
}

func (Pi) isTerm() {}
func (p Pi) String() string {
	return "forall(" + p.Label.String() + " : " + safeString(p.Type) + ") -> " + safeString(p.Body)
}

// App is a single function application; a surface `f a b c` is represented
// as nested App{App{App{f,a},b},c}. AppArgs builds that chain.
type App struct {
	Fn  Term
	Arg Term
}

func (App) isTerm() {}
func (a App) String() string { return safeString(a.Fn) + " " + safeString(a.Arg) }

// AppArgs applies fn to args left to right.
func AppArgs(fn Term, args ...Term) Term {
	out := fn
	for _, a := range args {
		out = App{Fn: out, Arg: a}
	}
	return out
}

// Spine flattens a chain of App nodes back into (head, args).
func Spine(t Term) (Term, []Term) {
	var args []Term
	for {
		a, ok := t.(App)
		if !ok {
			reverse(args)
			return t, args
		}
		args = append(args, a.Arg)
		t = a.Fn
	}
}

func reverse(ts []Term) {
	for i, j := 0, len(ts)-1; i < j; i, j = i+1, j-1 {
		ts[i], ts[j] = ts[j], ts[i]
	}
}

// Let is a single let-binding; `let x : T = rhs in body`. Annotation is nil
// when the binding is unannotated.
type Let struct {
	Label      label.Label
	Annotation Term
	Value      Term
	Body       Term
}

func (Let) isTerm() {}
func (l Let) String() string {
	s := "let " + l.Label.String()
	if l.Annotation != nil {
		s += " : " + safeString(l.Annotation)
	}
	return s + " = " + safeString(l.Value) + " in " + safeString(l.Body)
}

// Annot is an explicit type ascription, `Expr : Type`.
type Annot struct {
	Expr Term
	Type Term
}

func (Annot) isTerm() {}
func (a Annot) String() string { return safeString(a.Expr) + " : " + safeString(a.Type) }

// BoolIf is the conditional `if Cond then Then else Else`.
type BoolIf struct {
	Cond Term
	Then Term
	Else Term
}

func (BoolIf) isTerm() {}
func (b BoolIf) String() string {
	return "if " + safeString(b.Cond) + " then " + safeString(b.Then) + " else " + safeString(b.Else)
}

func safeString(t Term) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
