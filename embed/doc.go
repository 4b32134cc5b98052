// Package embed implements the reverse-DFI main loop: the driver that runs
// dfsprep.Initialize, then for I = N-1 down to 0 calls walk.WalkUp for each
// forward arc and walk.WalkDown for each pertinent DFS child, invoking a
// hooks.ModeHandlers for the blocked-iteration and post-processing hooks.
//
// Persisted formats are an external wire contract this package documents
// but does not implement, leaving file I/O to an external collaborator:
//
//   - Adjacency list: a header line, then one line per vertex
//     "i: n1 n2 ... nk -1", terminated by a trailing "N: -1" line.
//   - Adjacency matrix: N lines of N ASCII bits.
//   - Test capture (test.dat): one line naming the graph, then edge pairs
//     "u+1 v+1" (1-based) one per line, terminated by "0 0".
//
// A caller wanting these formats reads/writes them itself against the
// Graph built from AddEdge calls and OriginalLabel lookups; embed exposes no
// reader or writer.
package embed
