// Package obstruction defines the boundary drawn around obstruction
// isolation: extracting the Kuratowski subgraph (K5, K3,3, or, for
// OUTERPLANAR, K4/K2,3) a NONEMBEDDABLE result leaves evidence for.
// Edge-level extraction is explicitly out of scope; this package instead
// defines the Isolator interface the embed driver calls through, plus
// DefaultIsolator, which reports the blocked bicomp root left on the merge
// stack and a coarse minor-type tag without walking out the witness edges
// themselves.
package obstruction
