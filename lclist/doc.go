// Package lclist implements the intrusive linked-collection helper the
// embedding engine uses for every per-vertex list it keeps: the sorted
// DFS-child list, the separated DFS-child list, the pertinent-bicomp list,
// and the bucket-sort bin.
//
// A Collection owns a pair of next/prev index arrays sized to the largest id
// it will ever hold (a vertex id or a DFS-child id, both in [0, N)). A list
// inside a Collection is a circular doubly-linked list identified solely by
// its head id (NIL when empty) — the Collection itself never stores heads,
// callers do, which is what lets the same id live in several independent
// lists (e.g. a vertex is simultaneously a member of its parent's
// sortedDFSChildList and, via a different Collection, the parent's
// separatedDFSChildList).
//
// Append, Prepend and Delete are O(1) given the node's id, which is what the
// embedding engine's linear-time bound (spec P5) relies on.
package lclist

// NIL marks the absence of a list element or an empty list head.
const NIL = -1
