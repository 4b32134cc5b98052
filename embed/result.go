package embed

import (
	"errors"

	"github.com/katalvlaran/planarity/obstruction"
)

// ErrInternal wraps every INTERNAL outcome: an invariant
// failure (stack capacity, corrupt external-face link, unexpected arc type)
// that aborts the embed immediately and is never recovered internally.
var ErrInternal = errors.New("embed: internal invariant violation")

// Result is the three-way outcome threaded through every layer.
type Result int

const (
	// OK: the graph was embedded (or, for a search mode, the search
	// completed) under the active mode's contract.
	OK Result = iota
	// Nonembeddable: the input graph cannot be embedded under the active
	// mode; Obstruction (returned alongside Result) carries what the
	// isolator could report.
	Nonembeddable
	// Internal: an invariant failed; Err (returned alongside Result) is
	// non-nil and wraps ErrInternal.
	Internal
)

func (r Result) String() string {
	switch r {
	case OK:
		return "OK"
	case Nonembeddable:
		return "NONEMBEDDABLE"
	default:
		return "INTERNAL"
	}
}

// Outcome bundles everything a caller of Embed needs: the three-way result,
// the obstruction evidence (MinorNone/NIL root on OK), and a non-nil error
// only when Result is Internal.
type Outcome struct {
	Result      Result
	Obstruction obstruction.Result
	Err         error
}
