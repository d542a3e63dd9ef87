package tyctx

import (
	"github.com/google/uuid"

	"github.com/dhallcore/dhallcore/internal/label"
)

// FreshLabel mints a binder name guaranteed not to collide with anything
// already in scope, by suffixing base with a random UUID. This is the
// alternative, UID-based realization of binder identity mentioned in §4.1 and
// §9 ("an atomic counter suffices"): instead of a Rc<RefCell<u64>> counter
// shared across every context derived from one root, each mint draws an
// independent v4 UUID. Both give the same guarantee — no two binders minted
// this way are ever equal — and a random UUID needs no shared mutable state,
// which matters once checking happens from more than one goroutine (§5).
//
// It is used by internal/normalize when a builtin unfolding (Natural/build,
// List/build, Optional/build) has to substitute a universally-quantified
// eliminator under a synthesized lambda: the synthesized parameter name must
// not capture anything already free in the caller-supplied motive or
// methods.
func FreshLabel(base label.Label) label.Label {
	return label.Label(base.String() + "$" + uuid.NewString())
}
