package dfsprep

import "github.com/katalvlaran/planarity/core"

// CreateSortedSeparatedDFSChildLists bucket-sorts every vertex by Lowpoint
// (which is bounded in [0, N), so N buckets suffice for an O(N) sort) and
// uses that order to build each parent's SeparatedDFSChildList: the list of
// children not yet merged into their parent's bicomp, in ascending-Lowpoint
// order. Activity classification reads its head; MergeBicomps deletes each
// child as it merges that child's bicomp in.
//
// Must run after Initialize, since it reads Lowpoint. Uses g.Bin as bucket
// sort scratch space (reset before use, since a caller may re-embed the same
// Graph across many calls) and g.SeparatedDFS as the output Collection.
//
// Grounded on graphEmbed.c _CreateSortedSeparatedDFSChildLists.
func CreateSortedSeparatedDFSChildLists(g *core.Graph) {
	g.Bin.Reset()
	buckets := make([]int, g.N)
	for i := range buckets {
		buckets[i] = core.NIL
	}

	for i := 0; i < g.N; i++ {
		l := g.V(i).Lowpoint
		buckets[l] = g.Bin.Append(buckets[l], i)
	}

	for i := 0; i < g.N; i++ {
		head := buckets[i]
		if head == core.NIL {
			continue
		}
		for l := head; l != core.NIL; l = g.Bin.Next(head, l) {
			parent := g.V(l).Parent
			if parent != core.NIL && parent != l {
				pv := g.V(parent)
				pv.SeparatedDFSChildList = g.SeparatedDFS.Append(pv.SeparatedDFSChildList, l)
			}
		}
	}
}
