package delaunay_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlgen/delaunay"
	"github.com/katalvlaran/lvlgen/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fivePoints is the five-room fixture: a square with one interior point.
func fivePoints() []*geom.Vertex {
	return []*geom.Vertex{
		geom.NewVertex(0, 0, 0),
		geom.NewVertex(1, 10, 0),
		geom.NewVertex(2, 5, 8),
		geom.NewVertex(3, 0, 10),
		geom.NewVertex(4, 10, 10),
	}
}

// randomPoints returns n points with random float coordinates in [0, 100).
func randomPoints(n int, seed int64) []*geom.Vertex {
	r := rand.New(rand.NewSource(seed))
	out := make([]*geom.Vertex, n)
	for i := range out {
		out[i] = geom.NewVertex(i, r.Float64()*100, r.Float64()*100)
	}

	return out
}

// assertDelaunay checks that no input vertex lies strictly inside any
// output triangle's circumcircle.
func assertDelaunay(t *testing.T, res *delaunay.Result) {
	t.Helper()
	for _, tri := range res.Triangles {
		center, r2, ok := tri.Circumcircle()
		require.True(t, ok, "degenerate triangle in output")
		for _, v := range res.Vertices {
			if tri.ContainsVertex(v) {
				continue
			}
			d2 := v.Position.Sub(center).LengthSq()
			assert.GreaterOrEqual(t, d2, r2-1e-7, "vertex %s inside circumcircle of %v", v, tri)
		}
	}
}

// assertCovered checks every input vertex is a corner of some triangle and
// that no triangle references a vertex outside the input.
func assertCovered(t *testing.T, res *delaunay.Result) {
	t.Helper()
	inInput := make(map[*geom.Vertex]bool, len(res.Vertices))
	for _, v := range res.Vertices {
		inInput[v] = true
	}
	used := make(map[*geom.Vertex]bool, len(res.Vertices))
	for _, tri := range res.Triangles {
		for _, c := range []*geom.Vertex{tri.A, tri.B, tri.C} {
			require.True(t, inInput[c], "triangle references synthetic vertex %s", c)
			used[c] = true
		}
	}
	for _, v := range res.Vertices {
		assert.True(t, used[v], "vertex %s not covered", v)
	}
}

//----------------------------------------------------------------------------//
// Fixtures
//----------------------------------------------------------------------------//

// TestTriangulate_FivePoints checks the exact shape: an interior point fanned
// to the four corners of the square.
func TestTriangulate_FivePoints(t *testing.T) {
	pts := fivePoints()
	res, err := delaunay.Triangulate(pts)
	require.NoError(t, err)

	assert.Len(t, res.Triangles, 4)
	assert.Len(t, res.Edges, 8)
	for _, tri := range res.Triangles {
		assert.True(t, tri.ContainsVertex(pts[2]), "every triangle uses the interior point")
	}
	assertDelaunay(t, res)
	assertCovered(t, res)

	// No duplicate edges, in either orientation.
	for i := range res.Edges {
		for j := i + 1; j < len(res.Edges); j++ {
			assert.False(t, res.Edges[i].Equal(res.Edges[j]))
		}
	}
}

// TestTriangulate_RandomIsDelaunay checks the empty-circumcircle property on
// random inputs.
func TestTriangulate_RandomIsDelaunay(t *testing.T) {
	for _, seed := range []int64{1, 7, 42} {
		res, err := delaunay.Triangulate(randomPoints(40, seed))
		require.NoError(t, err)
		require.NotEmpty(t, res.Triangles)
		assertDelaunay(t, res)
	}
}

// TestTriangulate_Deterministic runs twice on the same input.
func TestTriangulate_Deterministic(t *testing.T) {
	pts := randomPoints(25, 3)
	a, err := delaunay.Triangulate(pts)
	require.NoError(t, err)
	b, err := delaunay.Triangulate(pts)
	require.NoError(t, err)
	assert.Equal(t, a.Edges, b.Edges)
	assert.Equal(t, a.Triangles, b.Triangles)
}

//----------------------------------------------------------------------------//
// Degenerate input
//----------------------------------------------------------------------------//

func TestTriangulate_SmallInputs(t *testing.T) {
	res, err := delaunay.Triangulate(nil)
	require.NoError(t, err)
	assert.Empty(t, res.Edges)
	assert.Empty(t, res.Triangles)

	one := []*geom.Vertex{geom.NewVertex(0, 1, 1)}
	res, err = delaunay.Triangulate(one)
	require.NoError(t, err)
	assert.Empty(t, res.Edges)

	two := []*geom.Vertex{geom.NewVertex(0, 1, 1), geom.NewVertex(1, 4, 5)}
	res, err = delaunay.Triangulate(two)
	require.NoError(t, err)
	require.Len(t, res.Edges, 1)
	assert.True(t, res.Edges[0].Equal(geom.NewEdge(two[0], two[1])))
}

// TestTriangulate_Collinear expects a path along the line, in line order.
func TestTriangulate_Collinear(t *testing.T) {
	a := geom.NewVertex(0, 10, 10)
	b := geom.NewVertex(1, 0, 0)
	c := geom.NewVertex(2, 5, 5)
	d := geom.NewVertex(3, 20, 20)

	res, err := delaunay.Triangulate([]*geom.Vertex{a, b, c, d})
	require.NoError(t, err)
	assert.Empty(t, res.Triangles)
	require.Len(t, res.Edges, 3)

	want := []geom.Edge{geom.NewEdge(b, c), geom.NewEdge(c, a), geom.NewEdge(a, d)}
	for _, w := range want {
		found := false
		for _, e := range res.Edges {
			found = found || e.Equal(w)
		}
		assert.True(t, found, "missing edge %s", w)
	}
}

func TestTriangulate_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input []*geom.Vertex
		err   error
	}{
		{"Nil", []*geom.Vertex{geom.NewVertex(0, 0, 0), nil}, delaunay.ErrNilVertex},
		{"DuplicateID", []*geom.Vertex{geom.NewVertex(0, 0, 0), geom.NewVertex(0, 1, 1)}, delaunay.ErrDuplicateID},
		{"Coincident", []*geom.Vertex{geom.NewVertex(0, 2, 2), geom.NewVertex(1, 5, 0), geom.NewVertex(2, 2, 2)}, delaunay.ErrDuplicateVertex},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := delaunay.Triangulate(tc.input)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestWithEpsilon(t *testing.T) {
	pts := []*geom.Vertex{geom.NewVertex(0, 0, 0), geom.NewVertex(1, 0.5, 0), geom.NewVertex(2, 0, 3)}

	_, err := delaunay.Triangulate(pts)
	require.NoError(t, err)

	_, err = delaunay.Triangulate(pts, delaunay.WithEpsilon(1))
	assert.ErrorIs(t, err, delaunay.ErrDuplicateVertex)

	assert.Panics(t, func() { delaunay.WithEpsilon(-1)(&delaunay.Options{}) })
}

// TestTriangulate_TinyExtent covers inputs spanning under one unit.
func TestTriangulate_TinyExtent(t *testing.T) {
	pts := []*geom.Vertex{geom.NewVertex(0, 0, 0), geom.NewVertex(1, 0.5, 0), geom.NewVertex(2, 0, 0.5), geom.NewVertex(3, 0.5, 0.5)}
	res, err := delaunay.Triangulate(pts)
	require.NoError(t, err)
	assertCovered(t, res)
	assert.Len(t, res.Triangles, 2)
}

// assertConnected checks that the edges link every input vertex.
func assertConnected(t *testing.T, res *delaunay.Result) {
	t.Helper()
	adj := make(map[*geom.Vertex][]*geom.Vertex, len(res.Vertices))
	for _, e := range res.Edges {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}
	seen := map[*geom.Vertex]bool{res.Vertices[0]: true}
	stack := []*geom.Vertex{res.Vertices[0]}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range adj[v] {
			if !seen[n] {
				seen[n] = true
				stack = append(stack, n)
			}
		}
	}
	assert.Len(t, seen, len(res.Vertices), "edges leave vertices disconnected")
}

// TestTriangulate_GridCentersCovered triangulates the centers of random
// distinct cells of a 20×20 grid. Such input is full of cocircular quads
// and points on the hull; every vertex must still be a triangle corner.
func TestTriangulate_GridCentersCovered(t *testing.T) {
	for seed := int64(0); seed < 300; seed++ {
		r := rand.New(rand.NewSource(seed))
		cells := r.Perm(400)[:12]
		pts := make([]*geom.Vertex, len(cells))
		for i, c := range cells {
			pts[i] = geom.NewVertex(i, float64(c%20)+0.5, float64(c/20)+0.5)
		}

		res, err := delaunay.Triangulate(pts)
		require.NoError(t, err, "seed %d", seed)
		assertConnected(t, res)
		if len(res.Triangles) == 0 {
			continue // all on one line
		}
		assertCovered(t, res)
		assertDelaunay(t, res)
	}
}

// TestTriangulate_CollinearHull puts several vertices on one hull side,
// including the ones inserted after the triangle that spans them.
func TestTriangulate_CollinearHull(t *testing.T) {
	pts := []*geom.Vertex{
		geom.NewVertex(0, 0.5, 0.5),
		geom.NewVertex(1, 2.5, 0.5),
		geom.NewVertex(2, 10.5, 0.5),
		geom.NewVertex(3, 19.5, 0.5),
		geom.NewVertex(4, 10.5, 19.5),
	}

	res, err := delaunay.Triangulate(pts)
	require.NoError(t, err)
	assertCovered(t, res)
	assertDelaunay(t, res)
	assert.Len(t, res.Triangles, 3)
	assert.Len(t, res.Edges, 7)
}

// TestTriangulate_FarOutsideFirstTriangle inserts points far beyond the
// first three, so each one lands only in ghost triangles.
func TestTriangulate_FarOutsideFirstTriangle(t *testing.T) {
	pts := []*geom.Vertex{
		geom.NewVertex(0, 0, 0),
		geom.NewVertex(1, 1, 0),
		geom.NewVertex(2, 0, 1),
		geom.NewVertex(3, 1000, 1000),
		geom.NewVertex(4, -1000, 500),
		geom.NewVertex(5, 3, -2000),
	}

	res, err := delaunay.Triangulate(pts)
	require.NoError(t, err)
	assertCovered(t, res)
	assertDelaunay(t, res)
	assertConnected(t, res)
}
