package embed

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/planarity/core"
	"github.com/katalvlaran/planarity/dfsprep"
	"github.com/katalvlaran/planarity/hooks"
	"github.com/katalvlaran/planarity/walk"
)

// Embed runs the reverse-DFI main loop against g under mode:
// mode.PrepareGraph, dfsprep.Initialize and
// CreateSortedSeparatedDFSChildLists first, then for I = N-1 down to 0,
// WalkUp every forward arc rooted at I, WalkDown every pertinent DFS child
// of I, and mode's blocked-iteration handler if I ends blocked.
// mode.EmbedPostprocess runs once after the loop exits, orienting and
// joining on success or isolating on failure.
//
// g must not have had SortVertices or dfsprep.Initialize called on it
// already; Embed owns preprocessing. If mode.PrepareGraph returns a graph
// other than g (Outerplanar's cone construction, for instance), every step
// from here on — including the integrity check below — runs against that
// graph instead, and g itself is left untouched.
func Embed(g *core.Graph, mode hooks.ModeHandlers, opts ...Option) Outcome {
	o := newOptions(opts)

	if o.ArcSlack > 0 {
		g.EnsureEdgeCapacity(g.M + o.ArcSlack)
	}

	g, err := mode.PrepareGraph(g)
	if err != nil {
		return Outcome{Result: Internal, Err: fmt.Errorf("%w: %w", ErrInternal, err)}
	}

	var original *core.Graph
	if o.IntegrityCheck {
		original = core.DupGraph(g)
	}

	if err := dfsprep.Initialize(g); err != nil {
		return Outcome{Result: Internal, Err: fmt.Errorf("%w: %w", ErrInternal, err)}
	}
	dfsprep.CreateSortedSeparatedDFSChildLists(g)

	ok := true

step:
	for i := g.N - 1; i >= 0; i-- {
		g.V(i).VisitedInfo = g.N

		if head := g.V(i).FwdArcList; g.IsArc(head) {
			for j := head; ; {
				walk.WalkUp(g, i, j)
				j = g.A(j).Next
				if j == head {
					break
				}
			}
		}

		blocked := false
		for g.V(i).PertinentBicompList != core.NIL {
			head := g.V(i).PertinentBicompList
			child := head
			g.V(i).PertinentBicompList = g.Bicomps.Delete(head, head)

			walkOK, err := walk.WalkDown(g, mode, i, child+g.N)
			if err != nil {
				return Outcome{Result: Internal, Err: fmt.Errorf("%w: %w", ErrInternal, err)}
			}
			if !walkOK {
				blocked = true
				break
			}
		}
		g.V(i).PertinentBicompList = core.NIL

		logStep(o.Logger, i, blocked)

		if g.IsArc(g.V(i).FwdArcList) || blocked {
			recovered, err := mode.HandleBlockedEmbedIteration(g, i)
			if err != nil {
				return Outcome{Result: Internal, Err: fmt.Errorf("%w: %w", ErrInternal, err)}
			}
			logBlockage(o.Logger, i, recovered)
			if !recovered {
				ok = false
				break step
			}
		}
	}

	obs, err := mode.EmbedPostprocess(g, ok)
	if err != nil {
		return Outcome{Result: Internal, Err: fmt.Errorf("%w: %w", ErrInternal, err)}
	}

	result := OK
	if !ok {
		result = Nonembeddable
	}

	if o.IntegrityCheck {
		if err := TestEmbedResultIntegrity(g, original, result); err != nil {
			return Outcome{Result: Internal, Err: err}
		}
	}

	return Outcome{Result: result, Obstruction: obs}
}

func logStep(l *logrus.Logger, i int, blocked bool) {
	if l == nil {
		return
	}
	l.WithFields(logrus.Fields{"i": i, "blocked": blocked}).Trace("embed: step complete")
}

func logBlockage(l *logrus.Logger, i int, recovered bool) {
	if l == nil {
		return
	}
	l.WithFields(logrus.Fields{"i": i, "recovered": recovered}).Debug("embed: blocked iteration")
}
