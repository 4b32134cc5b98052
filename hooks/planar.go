package hooks

import (
	"github.com/katalvlaran/planarity/core"
	"github.com/katalvlaran/planarity/obstruction"
	"github.com/katalvlaran/planarity/orient"
	"github.com/katalvlaran/planarity/walk"
)

// Planar is the default mode: walk.DefaultHandlers unmodified, a blocked
// iteration always ends the embed, and a successful loop is closed out by
// orient.OrientVerticesInEmbedding followed by orient.JoinBicomps.
type Planar struct {
	walk.DefaultHandlers
	Isolator obstruction.Isolator
}

// NewPlanar returns a Planar mode using obstruction.DefaultIsolator.
func NewPlanar() *Planar {
	return &Planar{Isolator: obstruction.DefaultIsolator{}}
}

func (p *Planar) isolator() obstruction.Isolator {
	if p.Isolator == nil {
		return obstruction.DefaultIsolator{}
	}
	return p.Isolator
}

// HandleBlockedEmbedIteration is the default policy: a blocked iteration
// always ends the embed with NONEMBEDDABLE.
func (p *Planar) HandleBlockedEmbedIteration(g *core.Graph, i int) (bool, error) {
	return false, nil
}

// EmbedPostprocess orients and joins on success, isolates on failure.
func (p *Planar) EmbedPostprocess(g *core.Graph, ok bool) (obstruction.Result, error) {
	if ok {
		orient.OrientVerticesInEmbedding(g)
		orient.JoinBicomps(g)
		return obstruction.Result{Minor: obstruction.MinorNone, BlockedRoot: core.NIL}, nil
	}
	return p.isolator().Isolate(g)
}

// PrepareGraph is the default: no transformation.
func (p *Planar) PrepareGraph(g *core.Graph) (*core.Graph, error) {
	return g, nil
}
