package dfsprep

import "github.com/katalvlaran/planarity/core"

// computeLowpoints fills in every vertex's Lowpoint field in a single
// reverse-DFI pass: by the time vertex i is processed, every vertex with a
// higher DFI (in particular every one of i's descendants) already has its
// final Lowpoint, since a DFS child always has a strictly higher DFI than
// its parent.
//
// Grounded on graphEmbed.c _EmbeddingInitialize's lowpoint loop (step
// between sorting and the DFS-tree embedding step).
func computeLowpoints(g *core.Graph) {
	for i := g.N - 1; i >= 0; i-- {
		least := i
		head := g.V(i).SortedDFSChildList
		for child := head; child != core.NIL; child = g.SortedDFS.Next(head, child) {
			if cl := g.V(child).Lowpoint; cl < least {
				least = cl
			}
		}
		if la := g.V(i).LeastAncestor; la < least {
			least = la
		}
		g.V(i).Lowpoint = least
	}
}
