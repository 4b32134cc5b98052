package dfsprep

import (
	"fmt"

	"github.com/katalvlaran/planarity/core"
)

// Initialize runs the embedder's one-time preprocessing pass on g: an
// iterative depth-first search assigns every vertex its DFI and DFS parent,
// classifies every arc as a tree or back edge, splices each back edge's
// ancestor-side half onto that ancestor's FwdArcList, and tracks each
// vertex's LeastAncestor. It then sorts the graph into DFI order
// (Graph.SortVertices), computes every vertex's Lowpoint, and builds the
// initial DFS-tree embedding — one singleton bicomp per tree edge, exactly
// the starting point gp_Embed's reverse-DFI main loop expects.
//
// Must be called exactly once, before any edges are added past the point g
// was built (AddEdge and Initialize/embed are mutually exclusive phases —
// see Graph.AddEdge's doc comment), and before
// CreateSortedSeparatedDFSChildLists.
//
// Grounded on graphEmbed.c _EmbeddingInitialize, steps (1)-(5) and (7); the
// DFS itself is iterative (an explicit stack, not recursion) so the total
// work stays O(N+M) with no recursion-depth risk on a path graph.
func Initialize(g *core.Graph) error {
	if g.Stack.Capacity() < 2*g.ArcCapacity {
		return fmt.Errorf("dfsprep: %w: stack capacity %d below 2*ArcCapacity %d", core.ErrCapacity, g.Stack.Capacity(), 2*g.ArcCapacity)
	}
	g.Stack.Clear()
	for v := 0; v < g.N; v++ {
		g.V(v).Visited = false
	}

	dfi := 0
	for i := 0; i < g.N; i++ {
		if g.V(i).Visited {
			continue
		}

		g.Stack.Push2(core.NIL, core.NIL)
		for g.Stack.NonEmpty() {
			uparent, e := g.Stack.Pop2()

			var u int
			if uparent == core.NIL {
				u = i
			} else {
				u = g.A(e).Neighbor
			}
			if g.V(u).Visited {
				continue
			}

			g.V(u).Visited = true
			g.V(u).Index = dfi
			g.V(u).Parent = uparent
			dfi++

			if e != core.NIL {
				g.A(e).Type = core.EdgeTypeTreeChild
				g.A(core.Twin(e)).Type = core.EdgeTypeTreeParent

				up := g.V(uparent)
				up.SortedDFSChildList = g.SortedDFS.Append(up.SortedDFSChildList, g.V(u).Index)

				r := g.V(u).Index + g.N
				g.V(r).FirstArc = e
				g.V(r).LastArc = e
			}

			for j := g.V(u).FirstArc; g.IsArc(j); j = g.A(j).Next {
				neighbor := g.A(j).Neighbor
				if !g.V(neighbor).Visited {
					g.Stack.Push2(u, j)
					continue
				}
				if g.A(j).Type == core.EdgeTypeTreeParent {
					continue
				}

				g.A(j).Type = core.EdgeTypeBack
				jTwin := core.Twin(j)
				g.A(jTwin).Type = core.EdgeTypeForward

				detachFromAdjacency(g, jTwin, neighbor)
				appendToFwdArcList(g, jTwin, neighbor)

				if g.V(neighbor).Index < g.V(u).LeastAncestor {
					g.V(u).LeastAncestor = g.V(neighbor).Index
				}
			}
		}
	}

	if err := g.SortVertices(); err != nil {
		return err
	}

	computeLowpoints(g)
	createDFSTreeEmbedding(g)

	return nil
}

// detachFromAdjacency removes arc jTwin from v's NIL-terminated adjacency
// list, patching the neighbors it sat between.
func detachFromAdjacency(g *core.Graph, jTwin, v int) {
	prev, next := g.A(jTwin).Prev, g.A(jTwin).Next
	if g.IsArc(prev) {
		g.A(prev).Next = next
	} else {
		g.V(v).FirstArc = next
	}
	if g.IsArc(next) {
		g.A(next).Prev = prev
	} else {
		g.V(v).LastArc = prev
	}
}

// appendToFwdArcList adds jTwin to the end of v's circular FwdArcList.
func appendToFwdArcList(g *core.Graph, jTwin, v int) {
	vr := g.V(v)
	if !g.IsArc(vr.FwdArcList) {
		vr.FwdArcList = jTwin
		g.A(jTwin).Prev, g.A(jTwin).Next = jTwin, jTwin
		return
	}
	head := vr.FwdArcList
	tail := g.A(head).Prev
	g.A(tail).Next = jTwin
	g.A(jTwin).Prev = tail
	g.A(jTwin).Next = head
	g.A(head).Prev = jTwin
}
