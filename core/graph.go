package core

import (
	"fmt"

	"github.com/katalvlaran/planarity/lclist"
)

// defaultSlack is the number of edges NewGraph adds on top of 3N (just above
// 3N-6, the maximum edge count of a simple planar graph, N>=3) to size
// ArcCapacity when no explicit capacity is given: generous enough for every
// graph this package's own test fixtures build, including small complete
// graphs whose edge count exceeds 3N-6.
const defaultSlack = 9

// Graph is the arena-based planar-embedding store. See the package doc
// comment in types.go for the addressing scheme.
type Graph struct {
	// N is the number of real vertices. Virtual vertices occupy slots
	// [N, 2N) one-for-one with real vertices.
	N int

	// ArcCapacity is the number of twin pairs the arena has room for; the
	// underlying arcs slice is sized 2*ArcCapacity.
	ArcCapacity int

	// M is the number of edges added so far (arcs in use is 2*M).
	M int

	vertices []VertexRec
	arcs     []ArcRec

	nextArcPair int // next free twin-pair slot, always even

	sortedByDFI   bool
	originalLabel []int // populated by SortVertices; originalLabel[dfi] = input label

	// Stack is the single integer-pair stack the graph owns: preprocessing's
	// iterative DFS, Walkdown, MergeBicomps and OrientVerticesInBicomp all
	// push and pop through it in turn, never
	// concurrently, so one stack suffices for the whole embed.
	Stack *PairStack

	// Bin is the bucket-sort scratch Collection preprocessing uses to
	// produce SeparatedDFSChildList order in O(N).
	Bin *lclist.Collection

	// SortedDFS and SeparatedDFS back every vertex's SortedDFSChildList and
	// SeparatedDFSChildList field (the VertexRec field is just a head id
	// into one of these shared Collections).
	SortedDFS   *lclist.Collection
	SeparatedDFS *lclist.Collection

	// Bicomps backs every vertex's PertinentBicompList field.
	Bicomps *lclist.Collection
}

// NewGraph allocates a Graph for n real vertices with room for the default
// edge-capacity slack (enough for any simple graph on n vertices up to
// roughly 3n, including small complete graphs). Use InitGraphCapacity to
// request a specific capacity instead.
func NewGraph(n int) (*Graph, error) {
	cap := 3*n + defaultSlack
	if n <= 1 {
		cap = defaultSlack
	}
	return InitGraphCapacity(n, cap)
}

// InitGraphCapacity allocates a Graph for n real vertices with room for
// arcCapacity edges. Returns ErrInvalidSize if n <= 0, ErrCapacity if
// arcCapacity is too small to hold n-1 edges (the minimum needed to even
// connect n vertices in a path).
func InitGraphCapacity(n, arcCapacity int) (*Graph, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}
	if arcCapacity < n-1 {
		return nil, fmt.Errorf("core: %w: arcCapacity %d below minimum %d for %d vertices", ErrCapacity, arcCapacity, n-1, n)
	}

	g := &Graph{}
	g.allocate(n, arcCapacity)
	g.Reinitialize()
	return g, nil
}

func (g *Graph) allocate(n, arcCapacity int) {
	g.N = n
	g.ArcCapacity = arcCapacity
	g.vertices = make([]VertexRec, 2*n)
	g.arcs = make([]ArcRec, 2*arcCapacity)
	g.Stack = NewPairStack(2 * arcCapacity)
	g.Bin = lclist.NewCollection(n)
	g.SortedDFS = lclist.NewCollection(n)
	g.SeparatedDFS = lclist.NewCollection(n)
	g.Bicomps = lclist.NewCollection(2 * n)
}

// Reinitialize resets every vertex and arc record to its just-allocated
// state and clears the DFS-sort flag, without reallocating, so a Graph can
// be reused across many AddEdge/Embed cycles. InitGraphCapacity and
// CopyGraph call it on every Graph they set up.
func (g *Graph) Reinitialize() {
	for i := range g.vertices {
		v := &g.vertices[i]
		*v = VertexRec{
			Index:                  i % g.N,
			Parent:                 NIL,
			LeastAncestor:          g.N,
			Lowpoint:               g.N,
			VisitedInfo:            g.N,
			PertinentAdjacencyInfo: NIL,
			SortedDFSChildList:     NIL,
			SeparatedDFSChildList:  NIL,
			PertinentBicompList:    NIL,
			FwdArcList:             NIL,
			FirstArc:               NIL,
			LastArc:                NIL,
			ExtFace:                [2]int{NIL, NIL},
		}
	}
	for i := range g.arcs {
		g.arcs[i] = ArcRec{Neighbor: NIL, Next: NIL, Prev: NIL}
	}
	g.M = 0
	g.nextArcPair = 0
	g.sortedByDFI = false
	g.originalLabel = nil

	g.Stack.Clear()
	g.Bin.Reset()
	g.SortedDFS.Reset()
	g.SeparatedDFS.Reset()
	g.Bicomps.Reset()
}

// EnsureEdgeCapacity grows the arena so it can hold at least m edges total,
// reallocating the arc array and the stack if the current ArcCapacity is
// insufficient. It is a no-op if the graph already has room. Existing arc
// contents and adjacency-list linkage are preserved; any in-progress stack
// contents are not (EnsureEdgeCapacity is meant to be called only before an
// embed begins, while the stack is empty).
func (g *Graph) EnsureEdgeCapacity(m int) {
	if m <= g.ArcCapacity {
		return
	}
	newCap := m
	newArcs := make([]ArcRec, 2*newCap)
	copy(newArcs, g.arcs)
	for i := len(g.arcs); i < len(newArcs); i++ {
		newArcs[i] = ArcRec{Neighbor: NIL, Next: NIL, Prev: NIL}
	}
	g.arcs = newArcs
	g.ArcCapacity = newCap
	g.Stack = NewPairStack(2 * newCap)
}

// IsVertex reports whether v addresses a real or virtual vertex slot.
func (g *Graph) IsVertex(v int) bool { return v >= 0 && v < 2*g.N }

// IsRealVertex reports whether v addresses a real (non-virtual) vertex.
func (g *Graph) IsRealVertex(v int) bool { return v >= 0 && v < g.N }

// IsArc reports whether j addresses a live arc slot.
func (g *Graph) IsArc(j int) bool { return j != NIL }

// Twin returns the other half of j's twin pair.
func Twin(j int) int { return j ^ 1 }

// V returns a pointer to the vertex record at slot v, real or virtual.
func (g *Graph) V(v int) *VertexRec { return &g.vertices[v] }

// A returns a pointer to the arc record at slot j.
func (g *Graph) A(j int) *ArcRec { return &g.arcs[j] }

// VertexArc returns vertex v's FirstArc (link 0) or LastArc (link 1). The
// two links play a symmetric, orientation-reversible role, which is what
// lets InvertVertex simply swap them rather than walk and rebuild the list.
func (g *Graph) VertexArc(v, link int) int {
	if link == 0 {
		return g.vertices[v].FirstArc
	}
	return g.vertices[v].LastArc
}

// SetVertexArc sets vertex v's FirstArc (link 0) or LastArc (link 1).
func (g *Graph) SetVertexArc(v, link, j int) {
	if link == 0 {
		g.vertices[v].FirstArc = j
	} else {
		g.vertices[v].LastArc = j
	}
}

// ArcLink returns arc j's Next (link 0) or Prev (link 1) field. Next and
// Prev play the same head/tail-relative role for arcs that FirstArc and
// LastArc play for vertices.
func (g *Graph) ArcLink(j, link int) int {
	if link == 0 {
		return g.arcs[j].Next
	}
	return g.arcs[j].Prev
}

// SetArcLink sets arc j's Next (link 0) or Prev (link 1) field.
func (g *Graph) SetArcLink(j, link, val int) {
	if link == 0 {
		g.arcs[j].Next = val
	} else {
		g.arcs[j].Prev = val
	}
}

// OriginalLabel returns the input label of the vertex currently holding DFI
// dfi. Valid only after SortVertices has run; returns NIL otherwise.
func (g *Graph) OriginalLabel(dfi int) int {
	if g.originalLabel == nil {
		return NIL
	}
	return g.originalLabel[dfi]
}

// SortedByDFI reports whether SortVertices has run since the last
// Reinitialize.
func (g *Graph) SortedByDFI() bool { return g.sortedByDFI }

// AddEdge adds the undirected edge (u, v) between real vertices u and v,
// allocating a fresh twin pair and appending one half to each endpoint's
// adjacency list. Grows the arena via EnsureEdgeCapacity if needed. Returns
// ErrVertexRange if u or v is not a real vertex slot; AddEdge must be
// called before SortVertices (the preprocessing/embed stages own the graph
// exclusively from then on).
func (g *Graph) AddEdge(u, v int) error {
	if !g.IsRealVertex(u) || !g.IsRealVertex(v) {
		return fmt.Errorf("core: %w: AddEdge(%d, %d)", ErrVertexRange, u, v)
	}
	g.EnsureEdgeCapacity(g.M + 1)

	j := g.nextArcPair
	jTwin := j + 1
	g.nextArcPair += 2
	g.M++

	g.arcs[j] = ArcRec{Neighbor: v, Next: NIL, Prev: NIL}
	g.arcs[jTwin] = ArcRec{Neighbor: u, Next: NIL, Prev: NIL}

	g.appendArc(u, j)
	g.appendArc(v, jTwin)
	return nil
}

// appendArc links arc j onto the tail of v's adjacency list.
func (g *Graph) appendArc(v, j int) {
	vr := &g.vertices[v]
	if vr.FirstArc == NIL {
		vr.FirstArc = j
		vr.LastArc = j
		return
	}
	tail := vr.LastArc
	g.arcs[tail].Next = j
	g.arcs[j].Prev = tail
	vr.LastArc = j
}

// SortVertices physically reorders the real vertex slots [0, N) so that
// slot i holds the vertex whose current Index field equals i, then sets
// every vertex's Index to its new slot (so Index(i)=i holds for every i
// immediately afterward). Arc Neighbor fields and Parent fields, the only
// fields that store slot references rather than DFI values, are remapped
// to follow their vertices. It is a no-op if the graph is already sorted.
//
// This is the one-shot label-order -> DFI-order transform dfsprep.Initialize
// performs once DFS discovery has assigned every vertex's Index its DFI;
// the original vertex numbering remains available afterward through
// OriginalLabel. This is one-directional: it does not support sorting back
// to input order mid-embed. By the time an embed finishes, virtual vertices
// are defunct and any caller wanting input-order output should consult
// OriginalLabel rather than re-sort.
func (g *Graph) SortVertices() error {
	if g.sortedByDFI {
		return nil
	}
	if g.N == 0 {
		g.sortedByDFI = true
		return nil
	}

	posMap := make([]int, g.N) // old slot -> new slot (DFI)
	origLabel := make([]int, g.N)
	newVerts := make([]VertexRec, len(g.vertices))
	copy(newVerts[g.N:], g.vertices[g.N:])

	for old := 0; old < g.N; old++ {
		newPos := g.vertices[old].Index
		if newPos < 0 || newPos >= g.N {
			return fmt.Errorf("core: %w: vertex %d has invalid DFI %d", ErrCorruptArc, old, newPos)
		}
		rec := g.vertices[old]
		rec.Index = newPos
		posMap[old] = newPos
		origLabel[newPos] = old
		newVerts[newPos] = rec
	}

	for j := range g.arcs {
		if n := g.arcs[j].Neighbor; n != NIL && n < g.N {
			g.arcs[j].Neighbor = posMap[n]
		}
	}
	for i := 0; i < g.N; i++ {
		if p := newVerts[i].Parent; p != NIL {
			newVerts[i].Parent = posMap[p]
		}
	}

	g.vertices = newVerts
	g.originalLabel = origLabel
	g.sortedByDFI = true
	return nil
}

// CopyGraph overwrites dst's contents with a deep copy of src, reallocating
// dst only if its current capacity is too small.
func CopyGraph(dst, src *Graph) {
	if dst.N != src.N || dst.ArcCapacity < src.ArcCapacity {
		dst.allocate(src.N, src.ArcCapacity)
	}
	dst.Reinitialize()

	copy(dst.vertices, src.vertices)
	copy(dst.arcs, src.arcs)
	dst.M = src.M
	dst.nextArcPair = src.nextArcPair
	dst.sortedByDFI = src.sortedByDFI
	if src.originalLabel != nil {
		dst.originalLabel = make([]int, len(src.originalLabel))
		copy(dst.originalLabel, src.originalLabel)
	}
}

// DupGraph returns a deep copy of src as a new Graph.
func DupGraph(src *Graph) *Graph {
	dst := &Graph{}
	dst.allocate(src.N, src.ArcCapacity)
	CopyGraph(dst, src)
	return dst
}
