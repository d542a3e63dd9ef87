// Package label provides the Label identifier type shared by every piece of
// the typing core: variable names, record and union field names, and
// let-bound names.
package label

// Label is an opaque, comparable source-level identifier. Two labels are the
// same binder target only when they compare equal as strings; the core never
// interprets a label's characters beyond equality.
type Label string

// String returns the label's textual form.
func (l Label) String() string {
	return string(l)
}

// Underscore is the conventional "don't care" label used for function
// parameters that are never referenced in the body.
const Underscore Label = "_"
