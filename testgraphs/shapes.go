package testgraphs

import (
	"fmt"

	"github.com/katalvlaran/planarity/core"
)

// Complete returns the complete simple graph K_n: every unordered pair
// {i, j}, i < j, connected exactly once. Adapted from
// builder/impl_complete.go's pair-emission order (lexicographic by (i,j)).
func Complete(n int) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("testgraphs: Complete(%d): %w", n, ErrTooFewVertices)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(i, j); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Cycle returns the cycle graph C_n: edges (i, (i+1)%n) for i in [0, n),
// requiring n >= 3. Adapted from builder/impl_cycle.go's index-order edge
// emission.
func Cycle(n int) (*core.Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("testgraphs: Cycle(%d): %w", n, ErrTooFewVertices)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err := g.AddEdge(i, (i+1)%n); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Path returns the path graph P_n: edges (i, i+1) for i in [0, n-1),
// requiring n >= 2. Adapted from builder/impl_path.go.
func Path(n int) (*core.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("testgraphs: Path(%d): %w", n, ErrTooFewVertices)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n-1; i++ {
		if err := g.AddEdge(i, i+1); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Wheel returns the wheel graph W_rim: hub vertex 0 plus a rim cycle of size
// rim on vertices [1, rim], connected by one spoke per rim vertex, requiring
// rim >= 3 (hub 0, rim 1-2-3-...-1; Wheel(5) is the classic 6-vertex wheel).
// Adapted from builder/impl_wheel.go's ring-then-spokes emission order.
func Wheel(rim int) (*core.Graph, error) {
	if rim < 3 {
		return nil, fmt.Errorf("testgraphs: Wheel(%d): %w", rim, ErrTooFewVertices)
	}
	g, err := core.NewGraph(rim + 1)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rim; i++ {
		u, v := 1+i, 1+(i+1)%rim
		if err := g.AddEdge(u, v); err != nil {
			return nil, err
		}
	}
	for i := 1; i <= rim; i++ {
		if err := g.AddEdge(0, i); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Bipartite returns the complete bipartite graph K_{p,q}: left partition
// [0, p), right partition [p, p+q), every cross pair connected. Adapted from
// builder/impl_bipartite.go's i-then-j emission order.
func Bipartite(p, q int) (*core.Graph, error) {
	if p < 1 || q < 1 {
		return nil, fmt.Errorf("testgraphs: Bipartite(%d, %d): %w", p, q, ErrTooFewVertices)
	}
	g, err := core.NewGraph(p + q)
	if err != nil {
		return nil, err
	}
	for i := 0; i < p; i++ {
		for j := 0; j < q; j++ {
			if err := g.AddEdge(i, p+j); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// TwoTriangles returns two disjoint triangles on {0,1,2} and {3,4,5}, with no
// edge between them: a two-component graph, M=6.
func TwoTriangles() (*core.Graph, error) {
	g, err := core.NewGraph(6)
	if err != nil {
		return nil, err
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	return g, nil
}
