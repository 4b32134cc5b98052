// Package hooks provides the mode implementations for the capability-
// interface design: ModeHandlers extends walk.Handlers with the two hooks
// that live above Walkdown (the per-step blocked-iteration handler and
// post-processing), and Planar/Outerplanar/DrawPlanar/SearchK23/SearchK33
// each provide one algorithm mode, embedding and selectively overriding
// rather than reimplementing.
package hooks
