// Package planarity is a linear-time planar-graph embedding engine built on
// the Boyer–Myrvold edge-addition method.
//
// 🚀 What is lvlath/planarity?
//
//	Given a simple undirected graph on N vertices, the engine decides whether
//	the graph is planar (or, under selectable modes, outerplanar) and, on
//	success, produces a combinatorial embedding: a cyclic ordering of edges
//	around each vertex admitting a crossing-free drawing. On failure, the
//	blocked biconnected-component root is left in a state from which a
//	Kuratowski-subgraph isolator can extract the witness (K5/K3,3, or for
//	outerplanarity K4/K2,3).
//
// ✨ Why choose lvlath/planarity?
//
//   - O(N+E) worst case — depth-first preprocessing plus a single
//     reverse-DFI pass of Walkup/Walkdown/merge, no quadratic blowup.
//   - Extensible — every interior behavior (merge, blockage handling,
//     post-processing) is swappable through a small capability interface,
//     so planar, outerplanar, draw-planar and Kuratowski-search modes share
//     one implementation.
//   - Pure Go — no cgo; an arena/index graph representation gives O(1)
//     twin-arc and virtual-vertex addressing without pointer chasing.
//
// Under the hood, everything is organized under subpackages:
//
//	core/        — arena graph store: vertex/arc arrays, twin pairs, stack
//	lclist/      — intrusive linked-collection helper over index arrays
//	dfsprep/     — DFS preprocessing, lowpoint, DFS-tree embedding
//	walk/        — Walkup, Walkdown, bicomp merge
//	hooks/       — capability interface and algorithm modes
//	orient/      — vertex-orientation and bicomp-join post-processing
//	obstruction/ — Kuratowski-witness interface (isolation is external)
//	embed/       — driver, public Engine API, integrity checking
//	testgraphs/  — fixture builders (K_n, cycles, wheels, bipartite, ...)
package planarity
