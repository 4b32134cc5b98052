package hooks

import (
	"github.com/katalvlaran/planarity/core"
	"github.com/katalvlaran/planarity/walk"
)

// VisibilitySpan is one recorded MergeBicomps call from a DrawPlanar embed:
// during step i, Walkdown from rootVertex merged the child bicomps on its
// stack so as to embed a back edge to vertex w. A real
// visibility representation turns a full trace of these into coordinate
// assignments; this repo stops at recording the trace itself (draw-planar
// asks only for "a hook that records vertical/horizontal spans during
// merges", not a coordinate-assignment pass, which is out of scope as
// an operation).
type VisibilitySpan struct {
	Step       int
	RootVertex int
	Vertex     int
}

// DrawPlanar layers span recording onto Planar by overriding MergeBicomps
// (the only operation that changes which bicomp a vertex belongs to): each
// call delegates to walk.DefaultMergeBicomps and, if that succeeds, appends
// one VisibilitySpan, however many bicomps the call merged.
type DrawPlanar struct {
	Planar
	Spans []VisibilitySpan
}

// NewDrawPlanar returns a DrawPlanar mode using obstruction.DefaultIsolator.
func NewDrawPlanar() *DrawPlanar {
	return &DrawPlanar{Planar: *NewPlanar()}
}

// MergeBicomps delegates to walk.DefaultMergeBicomps and then records a
// VisibilitySpan for this call's (i, rootVertex, w) if it succeeded.
func (d *DrawPlanar) MergeBicomps(g *core.Graph, i, rootVertex, w, wPrevLink int) (bool, error) {
	ok, err := walk.DefaultMergeBicomps(g, i, rootVertex, w, wPrevLink)
	if err == nil && ok {
		d.Spans = append(d.Spans, VisibilitySpan{Step: i, RootVertex: rootVertex, Vertex: w})
	}
	return ok, err
}
