package prim_kruskal_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlgen/delaunay"
	"github.com/katalvlaran/lvlgen/geom"
	"github.com/katalvlaran/lvlgen/prim_kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTriangle returns A(0,0), B(1,0), C(0,2) and all three sides.
// The MST is A-B and A-C with total length 3.
func buildTriangle() ([]geom.Edge, []*geom.Vertex) {
	a := geom.NewVertex(0, 0, 0)
	b := geom.NewVertex(1, 1, 0)
	c := geom.NewVertex(2, 0, 2)

	return []geom.Edge{geom.NewEdge(b, c), geom.NewEdge(a, b), geom.NewEdge(c, a)}, []*geom.Vertex{a, b, c}
}

// randomGraph builds a connected graph: a random chain plus extra random edges.
// The RNG is seeded for reproducibility.
func randomGraph(n, extra int, seed int64) ([]geom.Edge, []*geom.Vertex) {
	r := rand.New(rand.NewSource(seed))
	vs := make([]*geom.Vertex, n)
	for i := range vs {
		vs[i] = geom.NewVertex(i, r.Float64()*50, r.Float64()*50)
	}
	edges := make([]geom.Edge, 0, n-1+extra)
	for i := 1; i < n; i++ {
		edges = append(edges, geom.NewEdge(vs[i-1], vs[i]))
	}
	for len(edges) < n-1+extra {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		edges = append(edges, geom.NewEdge(vs[u], vs[v]))
	}

	return edges, vs
}

// bruteForceMST enumerates every (n-1)-subset of edges and returns the
// minimum total length among those forming a spanning tree.
func bruteForceMST(edges []geom.Edge, vs []*geom.Vertex) float64 {
	best := math.Inf(1)
	idx := make(map[*geom.Vertex]int, len(vs))
	for i, v := range vs {
		idx[v] = i
	}
	var pick func(start int, chosen []geom.Edge)
	pick = func(start int, chosen []geom.Edge) {
		if len(chosen) == len(vs)-1 {
			if isSpanningTree(chosen, idx, len(vs)) {
				best = math.Min(best, prim_kruskal.TotalLength(chosen))
			}
			return
		}
		for i := start; i < len(edges); i++ {
			pick(i+1, append(chosen, edges[i]))
		}
	}
	pick(0, nil)

	return best
}

// isSpanningTree reports whether n-1 edges connect n vertices without a cycle.
func isSpanningTree(edges []geom.Edge, idx map[*geom.Vertex]int, n int) bool {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			x = parent[x]
		}
		return x
	}
	for _, e := range edges {
		ru, rv := find(idx[e.U]), find(idx[e.V])
		if ru == rv {
			return false
		}
		parent[ru] = rv
	}

	return true
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

func TestValidation(t *testing.T) {
	edges, vs := buildTriangle()
	stranger := geom.NewVertex(9, 5, 5)

	_, _, err := prim_kruskal.Kruskal(edges, nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrNoVertices)

	_, _, err = prim_kruskal.Kruskal(append(edges, geom.NewEdge(vs[0], stranger)), vs)
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownVertex)

	_, _, err = prim_kruskal.Prim(edges, vs, nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrNilRoot)

	_, _, err = prim_kruskal.Prim(edges, vs, stranger)
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownVertex)

	_, _, err = prim_kruskal.Compute(edges, vs, prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidMethod)
}

// TestSelfLoopsSkipped checks that an edge from a vertex to itself is
// dropped rather than rejected.
func TestSelfLoopsSkipped(t *testing.T) {
	edges, vs := buildTriangle()
	edges = append([]geom.Edge{geom.NewEdge(vs[1], vs[1])}, edges...)
	for _, method := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
		t.Run(method, func(t *testing.T) {
			mst, total, err := prim_kruskal.Compute(edges, vs, prim_kruskal.WithMethod(method))
			require.NoError(t, err)
			assert.Len(t, mst, 2)
			assert.InDelta(t, 3.0, total, 1e-12)
		})
	}
}

func TestSingleVertex(t *testing.T) {
	v := geom.NewVertex(0, 1, 1)
	mst, total, err := prim_kruskal.Kruskal(nil, []*geom.Vertex{v})
	require.NoError(t, err)
	assert.Empty(t, mst)
	assert.Zero(t, total)

	mst, _, err = prim_kruskal.Prim(nil, []*geom.Vertex{v}, v)
	require.NoError(t, err)
	assert.Empty(t, mst)
}

// TestDisconnected checks that the partial forest comes back with the error.
func TestDisconnected(t *testing.T) {
	a, b := geom.NewVertex(0, 0, 0), geom.NewVertex(1, 1, 0)
	c, d := geom.NewVertex(2, 9, 9), geom.NewVertex(3, 9, 10)
	edges := []geom.Edge{geom.NewEdge(a, b), geom.NewEdge(c, d)}
	vs := []*geom.Vertex{a, b, c, d}

	mst, _, err := prim_kruskal.Kruskal(edges, vs)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	assert.Len(t, mst, 2)

	mst, _, err = prim_kruskal.Prim(edges, vs, a)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	assert.Len(t, mst, 1)
}

//----------------------------------------------------------------------------//
// Correctness
//----------------------------------------------------------------------------//

func TestTriangle(t *testing.T) {
	edges, vs := buildTriangle()
	for _, method := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
		t.Run(method, func(t *testing.T) {
			mst, total, err := prim_kruskal.Compute(edges, vs, prim_kruskal.WithMethod(method))
			require.NoError(t, err)
			assert.Len(t, mst, 2)
			assert.InDelta(t, 3.0, total, 1e-12)
			for _, e := range mst {
				assert.False(t, e.Equal(edges[0]), "longest side must be excluded")
			}
		})
	}
}

// TestAgainstBruteForce compares both algorithms to exhaustive search.
func TestAgainstBruteForce(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 4} {
		edges, vs := randomGraph(6, 5, seed)
		want := bruteForceMST(edges, vs)

		mst, total, err := prim_kruskal.Kruskal(edges, vs)
		require.NoError(t, err)
		require.Len(t, mst, len(vs)-1)
		idx := make(map[*geom.Vertex]int, len(vs))
		for i, v := range vs {
			idx[v] = i
		}
		assert.True(t, isSpanningTree(mst, idx, len(vs)))
		assert.InDelta(t, want, total, 1e-9)

		pmst, ptotal, err := prim_kruskal.Prim(edges, vs, vs[len(vs)-1])
		require.NoError(t, err)
		assert.True(t, isSpanningTree(pmst, idx, len(vs)))
		assert.InDelta(t, want, ptotal, 1e-9)
	}
}

// TestStableTieBreak checks that equal-length edges are taken in input order.
func TestStableTieBreak(t *testing.T) {
	// Unit square: four sides of length 1, any three form an MST.
	a := geom.NewVertex(0, 0, 0)
	b := geom.NewVertex(1, 1, 0)
	c := geom.NewVertex(2, 1, 1)
	d := geom.NewVertex(3, 0, 1)
	vs := []*geom.Vertex{a, b, c, d}
	edges := []geom.Edge{geom.NewEdge(d, a), geom.NewEdge(c, d), geom.NewEdge(b, c), geom.NewEdge(a, b)}

	mst, err := prim_kruskal.GetMinimumSpanningTree(edges, vs)
	require.NoError(t, err)
	assert.Equal(t, edges[:3], mst)
}

// TestOverDelaunay runs the MST on a triangulation of the five-room fixture.
// The interior room is the hub: the tree is a star of its four spokes.
func TestOverDelaunay(t *testing.T) {
	vs := []*geom.Vertex{
		geom.NewVertex(0, 0, 0),
		geom.NewVertex(1, 10, 0),
		geom.NewVertex(2, 5, 8),
		geom.NewVertex(3, 0, 10),
		geom.NewVertex(4, 10, 10),
	}
	tri, err := delaunay.Triangulate(vs)
	require.NoError(t, err)

	mst, total, err := prim_kruskal.Kruskal(tri.Edges, vs)
	require.NoError(t, err)
	require.Len(t, mst, 4)
	for _, e := range mst {
		assert.True(t, e.Has(vs[2]))
	}
	assert.InDelta(t, 2*math.Sqrt(29)+2*math.Sqrt(89), total, 1e-9)
	assert.InDelta(t, bruteForceMST(tri.Edges, vs), total, 1e-9)
}
