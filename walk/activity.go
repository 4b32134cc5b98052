package walk

import "github.com/katalvlaran/planarity/core"

// Status is a vertex's activity classification at step i.
// §4.3. It is ternary, not the four-label taxonomy a first reading of the
// spec suggests: "pertinent" is a separate, orthogonal predicate (see
// Pertinent) that Walkdown consults directly alongside Status, exactly as
// the reference algorithm's PERTINENT() macro and _VertexActiveStatus()
// macro are used side by side rather than folded into one enum.
type Status int

const (
	// StatusInternal marks a vertex that is pertinent and not externally
	// active: it must be visited by Walkdown this step, and once visited it
	// can safely be enclosed by the bicomp's new bounding cycle.
	StatusInternal Status = iota
	// StatusExternal marks a vertex with a path to some ancestor of i that
	// must remain on the external face; Walkdown stops rather than enclose
	// it, unless it is also pertinent (in which case Walkdown still embeds
	// the back edge but does not continue past it via HandleInactiveVertex).
	StatusExternal
	// StatusInactive marks a vertex with no pertinent or external-activity
	// claim at step i; Walkdown skips over it via HandleInactiveVertex.
	StatusInactive
)

// Pertinent reports whether v has an unembedded back edge to the vertex
// currently being processed (PertinentAdjacencyInfo != NIL) or a pertinent
// child bicomp (PertinentBicompList != NIL).
func Pertinent(g *core.Graph, v int) bool {
	vr := g.V(v)
	return vr.PertinentAdjacencyInfo != core.NIL || vr.PertinentBicompList != core.NIL
}

// ExternallyActive reports whether v (a descendant of i) has a claim to
// remain on the external face at step i: either v itself has an ancestor
// below i reachable by a back edge, or the DFS subtree rooted at v's
// least-lowpoint remaining separated child does.
func ExternallyActive(g *core.Graph, v, i int) bool {
	vr := g.V(v)
	if vr.LeastAncestor < i {
		return true
	}
	if c := vr.SeparatedDFSChildList; c != core.NIL {
		if g.V(c).Lowpoint < i {
			return true
		}
	}
	return false
}

// ActiveStatus classifies v at step i.
func ActiveStatus(g *core.Graph, v, i int) Status {
	if ExternallyActive(g, v, i) {
		return StatusExternal
	}
	if Pertinent(g, v) {
		return StatusInternal
	}
	return StatusInactive
}
