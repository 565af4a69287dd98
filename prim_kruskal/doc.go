// Package prim_kruskal reduces a candidate corridor graph to its Minimum
// Spanning Tree: the shortest set of edges that still connects every room.
//
// What & Why
//
//   - Input is a list of undirected geom.Edge values (usually the Delaunay
//     edges of the room centers) and the vertex set they should span.
//   - Edge weight is the Euclidean length between endpoints, computed once
//     into WeightedEdge.Distance and used only for ordering.
//   - The tree is the connectivity skeleton of a level: every room reachable,
//     no redundant corridor, minimal total corridor length.
//
// Algorithms Provided
//
//   - Kruskal(edges, vertices) / GetMinimumSpanningTree(edges, vertices)
//
//   - Strategy: stable-sort edges by distance, then scan them, keeping an edge
//     when its endpoints are in different disjoint sets (union-find with path
//     compression and union by rank).
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
//
//   - Prim(edges, vertices, root)
//
//   - Strategy: grow one tree from root; a pqueue.PriorityQueue keyed by vertex
//     holds the cheapest known connection of each outside vertex and is
//     lowered in place with UpdatePriority.
//
//   - Complexity: O(V·(V + log V) + E) time with the linear-scan queue, O(V + E) memory.
//
// Determinism
//
//   - Kruskal uses a stable sort: edges of equal length keep their input order,
//     so for a fixed input order the output is always the same tree. Callers
//     that need a reproducible level must therefore also keep their edge order
//     stable (delaunay.Triangulate does).
//   - Prim breaks ties by queue insertion order (pqueue is FIFO on ties).
//
// Error Conditions
//
//   - ErrNoVertices    : the vertex set is empty.
//   - ErrUnknownVertex : an edge endpoint is nil or not in the vertex set.
//   - ErrNilRoot       : Prim called with a nil root.
//   - ErrDisconnected  : the edges cannot span all vertices. The partial forest
//     (Kruskal) or the root's component tree (Prim) is still returned, so
//     callers may carve what is reachable.
//   - ErrInvalidMethod : Compute received an unknown method name.
package prim_kruskal
