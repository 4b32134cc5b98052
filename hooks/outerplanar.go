package hooks

import (
	"github.com/katalvlaran/planarity/core"
	"github.com/katalvlaran/planarity/obstruction"
)

// Outerplanar tests whether every vertex can lie on a single common face by
// reducing to ordinary planarity: G is outerplanar iff the graph obtained by
// joining a new vertex to every vertex of G ("coning" G) is planar. A cone
// vertex adjacent to everything can only be embedded on a face that already
// borders every vertex of G, which exists exactly when G itself is
// outerplanar. Wheel(5) is the textbook witness this reduction has to get
// right: its cone puts the hub and the new cone vertex both universal to the
// same 5-cycle, forcing a K5 minor, so the cone is NONEMBEDDABLE even though
// Wheel(5) itself is planar.
//
// PrepareGraph performs the reduction; every other Handlers method is
// inherited from Planar unmodified and runs against the cone rather than
// against the caller's original graph, so a successful Outerplanar embed
// answers only OK/NONEMBEDDABLE for the caller's graph — it does not hand
// back a usable rotation system for it (the cone's embedding describes the
// cone, not G).
type Outerplanar struct {
	Planar
}

// NewOuterplanar returns an Outerplanar mode using obstruction.DefaultIsolator.
func NewOuterplanar() *Outerplanar {
	return &Outerplanar{Planar: *NewPlanar()}
}

// PrepareGraph returns the cone of g: a fresh graph on g.N+1 vertices
// carrying every edge of g plus an edge from the new vertex g.N to each
// original vertex.
func (o *Outerplanar) PrepareGraph(g *core.Graph) (*core.Graph, error) {
	cone, err := core.InitGraphCapacity(g.N+1, g.M+g.N+1)
	if err != nil {
		return nil, err
	}
	for u := 0; u < g.N; u++ {
		for j := g.V(u).FirstArc; g.IsArc(j); j = g.A(j).Next {
			if v := g.A(j).Neighbor; v > u {
				if err := cone.AddEdge(u, v); err != nil {
					return nil, err
				}
			}
		}
	}
	hub := g.N
	for v := 0; v < g.N; v++ {
		if err := cone.AddEdge(hub, v); err != nil {
			return nil, err
		}
	}
	return cone, nil
}

// EmbedPostprocess tags a blockage MinorC (K4/K2,3) instead of Planar's
// generic MinorA, since an outerplanar obstruction's minor is always drawn
// from that family.
func (o *Outerplanar) EmbedPostprocess(g *core.Graph, ok bool) (obstruction.Result, error) {
	res, err := o.Planar.EmbedPostprocess(g, ok)
	if err == nil && !ok {
		res.Minor = obstruction.MinorC
	}
	return res, err
}
