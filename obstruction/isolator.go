package obstruction

import "github.com/katalvlaran/planarity/core"

// MinorType coarsely tags which forbidden minor a NONEMBEDDABLE result's
// evidence points at (A, B, C, D, E) without the finer E1-E4 sub-flags a
// full isolation module would use to pick an exact reduction — that finer
// classification depends on obstruction-isolation routines this package
// deliberately leaves unimplemented.
type MinorType int

const (
	// MinorNone marks an OK result: no obstruction was found.
	MinorNone MinorType = iota
	// MinorA marks the generic single-blockage evidence
	// DefaultHandleBlockedDescendantBicomp leaves for PLANAR mode: the
	// pertinent child bicomp root pushed onto the stack, contracting to K5
	// or K3,3 depending on which ancestor paths converge on it.
	MinorA
	// MinorB marks a K2,3-shaped blockage under OUTERPLANAR search.
	MinorB
	// MinorC marks a blockage under OUTERPLANAR mode (K4 or K2,3 family);
	// hooks.Outerplanar tags every one of its blockages with it.
	MinorC
	// MinorD marks a blockage reduced during SEARCH-K2,3.
	MinorD
	// MinorE marks a blockage reduced during SEARCH-K3,3.
	MinorE
)

func (m MinorType) String() string {
	switch m {
	case MinorNone:
		return "none"
	case MinorA:
		return "A"
	case MinorB:
		return "B"
	case MinorC:
		return "C"
	case MinorD:
		return "D"
	case MinorE:
		return "E"
	default:
		return "unknown"
	}
}

// Result is what an Isolator reports for a NONEMBEDDABLE embed. BlockedRoot
// is the virtual-vertex slot (c+N) left on g.Stack by the handler that
// declared the blockage; NIL for an OK embed, where Minor is MinorNone.
type Result struct {
	Minor       MinorType
	BlockedRoot int
}

// Isolator extracts (or, for the default, merely reports) the obstruction
// evidence a NONEMBEDDABLE embed leaves behind. Every mode in this repo,
// the search modes included, uses DefaultIsolator; this repo does not
// implement true edge-level Kuratowski extraction,
// so it reports the blocked root and a minor-type tag rather than the
// witness subgraph itself.
type Isolator interface {
	Isolate(g *core.Graph) (Result, error)
}

// DefaultIsolator reads the top frame left on g.Stack by
// walk.DefaultHandleBlockedDescendantBicomp and tags it MinorA — the only
// evidence the core algorithm leaves without a dedicated isolation pass.
type DefaultIsolator struct{}

// Isolate implements Isolator.
func (DefaultIsolator) Isolate(g *core.Graph) (Result, error) {
	if !g.Stack.NonEmpty() {
		return Result{Minor: MinorNone, BlockedRoot: core.NIL}, nil
	}
	r, _ := g.Stack.Pop2()
	return Result{Minor: MinorA, BlockedRoot: r}, nil
}
