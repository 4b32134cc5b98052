package hooks

import (
	"github.com/katalvlaran/planarity/core"
	"github.com/katalvlaran/planarity/obstruction"
	"github.com/katalvlaran/planarity/walk"
)

// ModeHandlers is the full capability set the embed driver dispatches
// through: everything Walkdown needs (walk.Handlers) plus the two hooks
// that live above it in the embed driver's per-step loop.
type ModeHandlers interface {
	walk.Handlers

	// HandleBlockedEmbedIteration runs when step I ends with either a
	// leftover forward arc or a NONEMBEDDABLE Walkdown. The default reports
	// ok=false, ending the driver's loop with NONEMBEDDABLE; a mode able to
	// recover (by discounting an innocuous obstruction) reports ok=true to
	// let the driver continue to the next I.
	HandleBlockedEmbedIteration(g *core.Graph, i int) (ok bool, err error)

	// EmbedPostprocess runs once after the driver's main loop ends,
	// receiving the loop's accumulated result. On ok=true it orients and
	// joins the embedding; on ok=false it isolates the obstruction.
	EmbedPostprocess(g *core.Graph, ok bool) (obstruction.Result, error)

	// PrepareGraph runs once, before DFS preprocessing, giving a mode the
	// chance to transform the input graph into one whose ordinary planarity
	// answer determines the mode's own answer. The default returns g
	// unchanged.
	PrepareGraph(g *core.Graph) (*core.Graph, error)
}
