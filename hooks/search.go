package hooks

import (
	"github.com/katalvlaran/planarity/core"
	"github.com/katalvlaran/planarity/obstruction"
)

// SearchK23 and SearchK33 mark the two Kuratowski-search modes:
// "override iteration and descendant handlers to reduce innocuous
// obstructions and keep searching." Doing so for real requires the
// obstruction-isolation machinery this repo scopes out entirely (edge-level
// Kuratowski extraction, needed to tell an "innocuous" obstruction apart
// from a genuine one before deciding whether to keep searching) — without
// it there is no sound way to decide when a blockage is safe to discount.
// Both modes are therefore left as thin markers over Planar: they run the
// unmodified core algorithm and differ only in EmbedPostprocess's minor
// tag, matching what obstruction.DefaultIsolator can honestly report.

// SearchK23 behaves like Planar but tags a blockage MinorD, the K2,3-search
// family.
type SearchK23 struct {
	Planar
}

// NewSearchK23 returns a SearchK23 mode using obstruction.DefaultIsolator.
func NewSearchK23() *SearchK23 { return &SearchK23{Planar: *NewPlanar()} }

// EmbedPostprocess tags a blockage MinorD instead of Planar's generic MinorA.
func (s *SearchK23) EmbedPostprocess(g *core.Graph, ok bool) (obstruction.Result, error) {
	res, err := s.Planar.EmbedPostprocess(g, ok)
	if err == nil && !ok {
		res.Minor = obstruction.MinorD
	}
	return res, err
}

// SearchK33 behaves like Planar but tags a blockage MinorE, the K3,3-search
// family.
type SearchK33 struct {
	Planar
}

// NewSearchK33 returns a SearchK33 mode using obstruction.DefaultIsolator.
func NewSearchK33() *SearchK33 { return &SearchK33{Planar: *NewPlanar()} }

// EmbedPostprocess tags a blockage MinorE instead of Planar's generic MinorA.
func (s *SearchK33) EmbedPostprocess(g *core.Graph, ok bool) (obstruction.Result, error) {
	res, err := s.Planar.EmbedPostprocess(g, ok)
	if err == nil && !ok {
		res.Minor = obstruction.MinorE
	}
	return res, err
}
