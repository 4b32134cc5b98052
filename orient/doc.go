// Package orient implements the two post-processing passes that turn the
// disjoint tree of singleton and merged bicomps the embedder builds into one
// consistently oriented planar rotation system: OrientVerticesInEmbedding
// (propagate each bicomp's accumulated inversion bits down its DFS tree) and
// JoinBicomps (splice any bicomp root left unmerged at the end of the main
// loop into its DFS parent's real adjacency list).
//
// Grounded on graphEmbed.c _OrientVerticesInEmbedding, _OrientVerticesInBicomp
// and _JoinBicomps.
package orient
