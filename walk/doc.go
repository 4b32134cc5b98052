// Package walk implements the two traversal halves of the edge-addition
// method: Walkup, which marks a step's pertinent vertices and bicomps by
// racing two external-face walkers outward from a descendant toward the
// current vertex, and Walkdown, which walks back down the external face of
// each pertinent bicomp embedding back edges and merging child bicomps as
// it goes.
//
// Both are driven by core.Graph alone plus a small Handlers interface that
// the hooks package's mode implementations satisfy; walk itself has no
// dependency on hooks, which is what lets hooks depend on walk without a
// cycle.
package walk

import "github.com/katalvlaran/planarity/core"

// Handlers is the subset of mode-specific behavior Walkdown needs from its
// caller. The core planarity/outerplanarity algorithm's default behavior
// lives in this package as DefaultMergeBicomps,
// DefaultEmbedBackEdgeToDescendant, DefaultHandleBlockedDescendantBicomp and
// DefaultHandleInactiveVertex; a mode may override one or more of them while
// delegating the rest back to the defaults (hooks.DrawPlanar overrides
// MergeBicomps; the other hooks modes use all four defaults).
type Handlers interface {
	// MergeBicomps merges every bicomp recorded on g.Stack into the vertex Z
	// at the bottom of each (R, Rout, Z, ZPrevLink) stack frame, in
	// preparation for embedding a back edge from W to the root vertex. It
	// returns ok=false if an extension determines the graph cannot be
	// embedded at this point (never true for the core algorithm, whose
	// MergeBicomps always succeeds once called).
	MergeBicomps(g *core.Graph, i, rootVertex, w, wPrevLink int) (ok bool, err error)

	// EmbedBackEdgeToDescendant embeds the back edge recorded in W's
	// PertinentAdjacencyInfo between rootVertex and w, linking both onto the
	// external face.
	EmbedBackEdgeToDescendant(g *core.Graph, rootSide, rootVertex, w, wPrevLink int) error

	// HandleBlockedDescendantBicomp is invoked when neither external-face
	// neighbor of a pertinent child bicomp's root R is pertinent or
	// internally active, i.e. Walkdown is blocked. The core implementation
	// pushes (R, 0) onto g.Stack and reports cleared=false, terminating
	// Walkdown with a NONEMBEDDABLE result; an extension capable of
	// resolving the blockage (e.g. by a reduction) sets rout/w/wPrevLink and
	// reports cleared=true so Walkdown continues from W.
	HandleBlockedDescendantBicomp(g *core.Graph, i, rootVertex, r int) (rout, w, wPrevLink int, cleared bool, err error)

	// HandleInactiveVertex advances past an inactive vertex w on the
	// external face, returning the next vertex and the link used to enter
	// it.
	HandleInactiveVertex(g *core.Graph, bicompRoot, w, wPrevLink int) (nextW, nextWPrevLink int, err error)
}
