// Package delaunay triangulates a set of 2D vertices with the incremental
// Bowyer–Watson algorithm and returns the triangles together with their
// deduplicated undirected edge set.
//
// What & Why
//
//   - A Delaunay triangulation has no input vertex strictly inside the
//     circumcircle of any triangle. Its edges connect "natural neighbours",
//     which makes it the candidate graph for room connectivity: every useful
//     corridor between two rooms is one of its edges.
//
// Algorithm
//
//  1. Seed: the first vertex, the vertex farthest from it and the vertex
//     farthest from the line through both, ordered counter-clockwise. Each
//     hull edge is closed by a ghost triangle through a vertex at infinity,
//     so every later vertex lands in some triangle or ghost.
//  2. Insert the remaining vertices in input order. Triangles whose
//     circumcircle contains the vertex form the cavity; for a ghost triangle
//     that circle is the open half-plane beyond its hull edge. Directed
//     sides walked both ways cancel, and the boundary is fanned to the vertex.
//  3. Ghost triangles are discarded.
//  4. Edges are collected from the surviving triangles, deduplicated through
//     a hash set keyed by geom.EdgeKey, in first-seen order.
//
// Degenerate input
//
//   - nil vertices, non-finite coordinates, repeated IDs and coincident
//     positions are rejected with sentinel errors.
//   - Fewer than three vertices, or all vertices on one line, produce no
//     triangles; the edges then chain the vertices in order along the line.
//   - A collinear triangle created during insertion aborts the run with
//     ErrDegenerateTriangle instead of carrying NaN circumcircles forward.
//
// Complexity: O(n²) time, O(n) memory. No spatial acceleration; intended for
// tens to a few hundred rooms.
//
// Determinism: output depends only on the input order; no randomness.
package delaunay
