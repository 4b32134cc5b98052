package embed

import (
	"fmt"

	"github.com/katalvlaran/planarity/core"
)

// TestEmbedResultIntegrity checks arc-twin consistency always, and on OK,
// the Euler bound for a simple planar graph plus a round-trip cross-check
// that every edge of original still appears somewhere in g's embedded
// structure.
// original must be a Graph captured before Embed ran (core.DupGraph taken
// prior to dfsprep.Initialize); g is the same Graph after Embed returned.
func TestEmbedResultIntegrity(g, original *core.Graph, result Result) error {
	if err := checkArcTwins(g); err != nil {
		return err
	}
	if result != OK {
		return nil
	}
	if g.N >= 3 && g.M > 3*g.N-6 {
		return fmt.Errorf("embed: %w: Euler bound violated (M=%d exceeds 3N-6=%d)", ErrInternal, g.M, 3*g.N-6)
	}
	return checkEdgeCorrespondence(g, original)
}

// checkArcTwins confirms twin(twin(j)) traces back to its owning vertex for
// every live arc in g's real-vertex adjacency lists.
func checkArcTwins(g *core.Graph) error {
	for u := 0; u < g.N; u++ {
		for j := g.V(u).FirstArc; g.IsArc(j); j = g.A(j).Next {
			twin := core.Twin(j)
			if g.A(twin).Neighbor != u {
				return fmt.Errorf("embed: %w: arc %d's twin does not point back at vertex %d", ErrInternal, j, u)
			}
		}
	}
	return nil
}

// checkEdgeCorrespondence builds a dense adjacency matrix for original (in
// its original, pre-DFI-sort labeling) and for g (mapped back through
// OriginalLabel to the same labeling) and confirms they match exactly.
func checkEdgeCorrespondence(g, original *core.Graph) error {
	n := original.N
	want := newDenseAdjacency(n)
	for u := 0; u < n; u++ {
		for j := original.V(u).FirstArc; original.IsArc(j); j = original.A(j).Next {
			want.Set(u, original.A(j).Neighbor, 1)
		}
	}

	got := newDenseAdjacency(n)
	for s := 0; s < g.N; s++ {
		labelU := originalLabelOrSelf(g, s)
		for j := g.V(s).FirstArc; g.IsArc(j); j = g.A(j).Next {
			t := g.A(j).Neighbor
			if !g.IsRealVertex(t) {
				continue
			}
			labelV := originalLabelOrSelf(g, t)
			got.Set(labelU, labelV, 1)
		}
	}

	if !want.Equal(got) {
		return fmt.Errorf("embed: %w: embedded adjacency does not match original edge set", ErrInternal)
	}
	return nil
}

func originalLabelOrSelf(g *core.Graph, slot int) int {
	if label := g.OriginalLabel(slot); label != core.NIL {
		return label
	}
	return slot
}
