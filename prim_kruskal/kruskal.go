// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It works on undirected geometric edges weighted by Euclidean length.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/lvlgen/geom"
)

// GetMinimumSpanningTree returns the MST edges of the graph (vertices, edges).
// It is Kruskal without the total length.
func GetMinimumSpanningTree(edges []geom.Edge, vertices []*geom.Vertex) ([]geom.Edge, error) {
	mst, _, err := Kruskal(edges, vertices)

	return mst, err
}

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected graph whose
// edge weights are Euclidean lengths. It uses a disjoint-set (union-find) data
// structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrNoVertices    : len(vertices) == 0.
//   - ErrUnknownVertex : an edge endpoint is not in vertices.
//   - ErrDisconnected  : the MST has fewer than |V|-1 edges; the forest is returned.
//
// Steps:
//  1. Validate; a single vertex is a trivial MST (empty, length 0).
//  2. Wrap edges as WeightedEdge, skipping self-loops.
//  3. Stable-sort by ascending Distance; equal distances keep input order.
//  4. Initialize DSU maps parent[] and rank[] for each vertex.
//  5. Keep every edge whose endpoints have different roots; stop at |V|-1 edges.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(edges []geom.Edge, vertices []*geom.Vertex) ([]geom.Edge, float64, error) {
	// 1. Validate.
	if len(vertices) == 0 {
		return nil, 0, ErrNoVertices
	}
	if err := checkEdges(edges, vertexSet(vertices)); err != nil {
		return nil, 0, err
	}
	if len(vertices) == 1 {
		return []geom.Edge{}, 0, nil
	}

	// 2. Compute distances once, skipping self-loops.
	weighted := make([]WeightedEdge, 0, len(edges))
	for _, e := range edges {
		if e.U == e.V {
			continue
		}
		weighted = append(weighted, NewWeightedEdge(e))
	}

	// 3. Stable sort keeps tie-breaking tied to input order.
	sort.SliceStable(weighted, func(i, j int) bool {
		return weighted[i].Distance < weighted[j].Distance
	})

	// 4. Disjoint sets keyed by vertex identity.
	parent := make(map[*geom.Vertex]*geom.Vertex, len(vertices))
	rank := make(map[*geom.Vertex]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
		rank[v] = 0
	}

	// Iterative find with path halving.
	find := func(u *geom.Vertex) *geom.Vertex {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// union attaches the lower-rank root under the higher one.
	union := func(ru, rv *geom.Vertex) {
		if rank[ru] < rank[rv] {
			parent[ru] = rv
			return
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}
	}

	// 5. Scan sorted edges.
	var (
		mst   = make([]geom.Edge, 0, len(vertices)-1)
		total float64
	)
	for _, we := range weighted {
		ru, rv := find(we.U), find(we.V)
		if ru == rv {
			continue
		}
		union(ru, rv)
		mst = append(mst, we.Edge)
		total += we.Distance
		if len(mst) == len(vertices)-1 {
			break
		}
	}

	if len(mst) < len(vertices)-1 {
		return mst, total, ErrDisconnected
	}

	return mst, total, nil
}
