// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree algorithm.
package prim_kruskal

import (
	"github.com/katalvlaran/lvlgen/geom"
	"github.com/katalvlaran/lvlgen/pqueue"
)

// Prim computes the MST by growing a tree from root.
//
// Each vertex outside the tree is queued once with the length of its cheapest
// known connection; a shorter connection lowers that priority in place
// (UpdatePriority) rather than queueing a duplicate.
//
// Error Conditions:
//   - ErrNoVertices, ErrUnknownVertex as Kruskal.
//   - ErrNilRoot       : root == nil.
//   - ErrUnknownVertex : root is not in vertices.
//   - ErrDisconnected  : some vertex is unreachable from root; the tree of
//     root's component is returned.
func Prim(edges []geom.Edge, vertices []*geom.Vertex, root *geom.Vertex) ([]geom.Edge, float64, error) {
	if len(vertices) == 0 {
		return nil, 0, ErrNoVertices
	}
	if root == nil {
		return nil, 0, ErrNilRoot
	}
	known := vertexSet(vertices)
	if _, ok := known[root]; !ok {
		return nil, 0, ErrUnknownVertex
	}
	if err := checkEdges(edges, known); err != nil {
		return nil, 0, err
	}

	// Adjacency in input order, self-loops dropped.
	adj := make(map[*geom.Vertex][]WeightedEdge, len(vertices))
	for _, e := range edges {
		if e.U == e.V {
			continue
		}
		we := NewWeightedEdge(e)
		adj[e.U] = append(adj[e.U], we)
		adj[e.V] = append(adj[e.V], we)
	}

	var (
		inTree = make(map[*geom.Vertex]bool, len(vertices))
		best   = make(map[*geom.Vertex]WeightedEdge, len(vertices))
		pq     = pqueue.New[*geom.Vertex, float64](len(vertices))
		mst    = make([]geom.Edge, 0, len(vertices)-1)
		total  float64
	)
	pq.Enqueue(root, 0)

	for pq.Count() > 0 {
		u, err := pq.Dequeue()
		if err != nil {
			return nil, 0, err
		}
		inTree[u] = true
		if u != root {
			mst = append(mst, best[u].Edge)
			total += best[u].Distance
		}

		for _, we := range adj[u] {
			v := we.V
			if v == u {
				v = we.U
			}
			if inTree[v] {
				continue
			}
			cur, queued := pq.TryGetPriority(v)
			switch {
			case !queued:
				best[v] = we
				pq.Enqueue(v, we.Distance)
			case we.Distance < cur:
				best[v] = we
				if err := pq.UpdatePriority(v, we.Distance); err != nil {
					return nil, 0, err
				}
			}
		}
	}

	if len(mst) < len(vertices)-1 {
		return mst, total, ErrDisconnected
	}

	return mst, total, nil
}

// TotalLength sums the Euclidean length of edges.
func TotalLength(edges []geom.Edge) float64 {
	var sum float64
	for _, e := range edges {
		sum += e.Length()
	}

	return sum
}
