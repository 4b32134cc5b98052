// Package dfsprep performs the one-time preprocessing pass the embedder
// needs before its main reverse-DFI loop can run: depth-first numbering,
// DFS-parent/edge-type assignment, lowpoint computation, and the two
// ordered child lists (by DFI in discovery order, and bucket-sorted by
// lowpoint) that let Walkup and
// Walkdown run in linear time without ever sorting anything themselves.
//
// Initialize performs everything through the initial DFS-tree embedding
// (singleton bicomps, one per tree edge); CreateSortedSeparatedDFSChildLists
// is a separate pass run afterward, exactly as the reference embedder's
// driver calls the two in sequence rather than folding the second into the
// first.
package dfsprep
