package walk

import "github.com/katalvlaran/planarity/core"

// WalkDown walks both external-face paths emanating from rootVertex (a root
// copy of i), embedding a back edge to every pertinent descendant it
// passes and merging in pertinent child bicomps as needed to reach deeper
// descendants. It returns ok=true if every pertinent vertex reachable from
// rootVertex was embedded, ok=false if it became blocked on a descendant
// bicomp (evidence of a Kuratowski subgraph), and a non-nil error only for
// an internal inconsistency.
func WalkDown(g *core.Graph, h Handlers, i, rootVertex int) (bool, error) {
	g.Stack.Clear()

	var w, wPrevLink int

	for rootSide := 0; rootSide < 2; rootSide++ {
		w = g.V(rootVertex).ExtFace[rootSide]

		if g.V(w).ExtFace[0] == g.V(w).ExtFace[1] {
			wPrevLink = 1 ^ rootSide
		} else {
			if g.V(w).ExtFace[0] == rootVertex {
				wPrevLink = 0
			} else {
				wPrevLink = 1
			}
			if g.V(w).ExtFace[wPrevLink] != rootVertex {
				return false, errInconsistentExternalFace(rootVertex, w)
			}
		}

		for w != rootVertex {
			if g.V(w).PertinentAdjacencyInfo != core.NIL {
				if g.Stack.NonEmpty() {
					ok, err := h.MergeBicomps(g, i, rootVertex, w, wPrevLink)
					if err != nil {
						return false, err
					}
					if !ok {
						return false, nil
					}
				}
				if err := h.EmbedBackEdgeToDescendant(g, rootSide, rootVertex, w, wPrevLink); err != nil {
					return false, err
				}
				g.V(w).PertinentAdjacencyInfo = core.NIL
			}

			if g.V(w).PertinentBicompList != core.NIL {
				g.Stack.Push2(w, wPrevLink)
				r := g.V(w).PertinentBicompList + g.N

				x := g.V(r).ExtFace[0]
				xPrevLink := 1
				if g.V(x).ExtFace[1] != r {
					xPrevLink = 0
				}
				y := g.V(r).ExtFace[1]
				yPrevLink := 0
				if g.V(y).ExtFace[0] != r {
					yPrevLink = 1
				}

				if x == y && g.V(x).ExtFaceInversionFlag {
					xPrevLink, yPrevLink = 0, 1
				}

				var rout int
				switch {
				case ActiveStatus(g, x, i) == StatusInternal:
					w, wPrevLink, rout = x, xPrevLink, 0
				case ActiveStatus(g, y, i) == StatusInternal:
					w, wPrevLink, rout = y, yPrevLink, 1
				case Pertinent(g, x):
					w, wPrevLink, rout = x, xPrevLink, 0
				case Pertinent(g, y):
					w, wPrevLink, rout = y, yPrevLink, 1
				default:
					var cleared bool
					var err error
					rout, w, wPrevLink, cleared, err = h.HandleBlockedDescendantBicomp(g, i, rootVertex, r)
					if err != nil {
						return false, err
					}
					if !cleared {
						return false, nil
					}
				}

				g.Stack.Push2(r, rout)
				continue
			}

			if ActiveStatus(g, w, i) == StatusInactive {
				nextW, nextWPrevLink, err := h.HandleInactiveVertex(g, rootVertex, w, wPrevLink)
				if err != nil {
					return false, err
				}
				w, wPrevLink = nextW, nextWPrevLink
				continue
			}

			break
		}

		g.V(rootVertex).ExtFace[rootSide] = w
		g.V(w).ExtFace[wPrevLink] = rootVertex

		if g.V(w).ExtFace[0] == g.V(w).ExtFace[1] && wPrevLink == rootSide {
			g.V(w).ExtFaceInversionFlag = true
		} else {
			g.V(w).ExtFaceInversionFlag = false
		}

		if w == rootVertex {
			break
		}
	}

	return true, nil
}

type inconsistentExternalFaceError struct {
	rootVertex, w int
}

func (e *inconsistentExternalFaceError) Error() string {
	return "walk: external face link at w does not lead back to rootVertex"
}

func errInconsistentExternalFace(rootVertex, w int) error {
	return &inconsistentExternalFaceError{rootVertex, w}
}
