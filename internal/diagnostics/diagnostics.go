// Package diagnostics renders TypeError values into messages, per §7. Only
// UnboundVariable and TypeMismatch get a fully rendered template — mirroring
// the reference implementation, which ships exactly two message text files
// (errors/UnboundVariable.txt, errors/TypeMismatch.txt) and falls every other
// code back to a generic placeholder. That split is deliberate, not a gap to
// fill in: §9 calls it out as a known, acceptable limitation of the checker
// as specified.
package diagnostics

import (
	"strconv"
	"strings"
)

// ErrorCode enumerates every TypeMessage variant from §3.5 / §7.
type ErrorCode int

const (
	UnboundVariable ErrorCode = iota
	InvalidInputType
	InvalidOutputType
	NotAFunction
	TypeMismatch
	AnnotMismatch
	Untyped
	InvalidListElement
	InvalidListType
	InvalidOptionalElement
	InvalidOptionalLiteral
	InvalidOptionalType
	InvalidPredicate
	IfBranchMismatch
	IfBranchMustBeTerm
	InvalidField
	InvalidFieldType
	InvalidAlternative
	InvalidAlternativeType
	DuplicateAlternative
	MustCombineARecord
	FieldCollision
	MustMergeARecord
	MustMergeUnion
	UnusedHandler
	MissingHandler
	HandlerInputTypeMismatch
	HandlerOutputTypeMismatch
	HandlerNotAFunction
	NotARecord
	MissingField
	BinOpTypeMismatch
	NoDependentLet
	NoDependentTypes
)

var codeNames = [...]string{
	"UnboundVariable", "InvalidInputType", "InvalidOutputType", "NotAFunction",
	"TypeMismatch", "AnnotMismatch", "Untyped", "InvalidListElement",
	"InvalidListType", "InvalidOptionalElement", "InvalidOptionalLiteral",
	"InvalidOptionalType", "InvalidPredicate", "IfBranchMismatch",
	"IfBranchMustBeTerm", "InvalidField", "InvalidFieldType",
	"InvalidAlternative", "InvalidAlternativeType", "DuplicateAlternative",
	"MustCombineARecord", "FieldCollision", "MustMergeARecord",
	"MustMergeUnion", "UnusedHandler", "MissingHandler",
	"HandlerInputTypeMismatch", "HandlerOutputTypeMismatch",
	"HandlerNotAFunction", "NotARecord", "MissingField", "BinOpTypeMismatch",
	"NoDependentLet", "NoDependentTypes",
}

func (c ErrorCode) String() string {
	if int(c) < 0 || int(c) >= len(codeNames) {
		return "UnknownError"
	}
	return codeNames[c]
}

// DiagnosticError is a rendered TypeError (§3.5): the context it was raised
// in is carried by the caller (internal/typecheck.TypeError), this type only
// owns the rendering concern.
type DiagnosticError struct {
	Code ErrorCode
	// Slots feeds the $txt0.. substitutions of the two fully templated
	// codes; ignored for every other code.
	Slots []string
}

func (e *DiagnosticError) Error() string {
	return Render(e.Code, e.Slots)
}

const unboundVariableTemplate = `Unbound variable: $txt0

Explanation: Every variable must be bound by an enclosing lambda or let, and
the variable name must exactly match the name used at the binding site.
`

const typeMismatchTemplate = `Wrong type of function argument

Explanation: Every function declares what type or kind of argument to accept

    ┌───────────────────────────────┐
    │ λ(x : Natural) → x + 1        │  This function only accepts arguments
    └───────────────────────────────┘  that have type ❰Natural❱

...

$txt0 : $txt1

$txt2 was expected, but got:

$txt3
`

// Render produces the message text for code, substituting $txt0.. with
// slots for the two codes that carry a real template and falling back to a
// generic placeholder for everything else (matching the reference
// implementation's Display impl).
func Render(code ErrorCode, slots []string) string {
	var tpl string
	switch code {
	case UnboundVariable:
		tpl = unboundVariableTemplate
	case TypeMismatch:
		tpl = typeMismatchTemplate
	default:
		return "Unhandled error message"
	}
	for i, s := range slots {
		tpl = strings.ReplaceAll(tpl, "$txt"+strconv.Itoa(i), s)
	}
	return tpl
}
