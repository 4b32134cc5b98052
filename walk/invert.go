package walk

import "github.com/katalvlaran/planarity/core"

// InvertVertex flips v's rotation system: successors become predecessors
// and vice versa. It swaps Next/Prev on every arc in v's adjacency list,
// swaps FirstArc/LastArc, and swaps ExtFace[0]/ExtFace[1].
func InvertVertex(g *core.Graph, v int) {
	vr := g.V(v)
	j := vr.FirstArc
	for g.IsArc(j) {
		a := g.A(j)
		next := a.Next
		a.Next, a.Prev = a.Prev, a.Next
		j = next
	}
	vr.FirstArc, vr.LastArc = vr.LastArc, vr.FirstArc
	vr.ExtFace[0], vr.ExtFace[1] = vr.ExtFace[1], vr.ExtFace[0]
}
