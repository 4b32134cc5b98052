// Package testgraphs builds small named graphs (K4, K5, K3,3, paths, wheels,
// bipartite graphs, two disjoint triangles) against core.Graph's arena
// AddEdge, for use as embedding fixtures.
package testgraphs
