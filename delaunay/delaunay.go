package delaunay

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvlgen/geom"
	"github.com/zyedidia/generic/mapset"
)

// ghostID marks the vertex at infinity that closes every hull edge.
const ghostID = math.MinInt

// Triangulate computes the Delaunay triangulation of vertices.
//
// Steps:
//  1. Validate input (nil, non-finite, duplicate IDs or positions).
//  2. Fewer than 3 vertices or a collinear set → chain edges, no triangles.
//  3. Seed with one real triangle plus a ghost triangle per hull edge, then
//     insert every remaining vertex (Bowyer–Watson).
//  4. Drop the ghost triangles and collect unique edges.
//
// Complexity: O(n²) time, O(n) memory.
func Triangulate(vertices []*geom.Vertex, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate
	if err := validate(vertices, cfg.Epsilon); err != nil {
		return nil, err
	}
	res := &Result{Vertices: slices.Clone(vertices)}
	if len(vertices) < 2 {
		res.Edges = []geom.Edge{}
		res.Triangles = []geom.Triangle{}
		return res, nil
	}

	// 2) Degenerate sets have no triangles; the Delaunay graph is a path.
	if allCollinear(vertices) {
		res.Edges = chainEdges(vertices)
		res.Triangles = []geom.Triangle{}
		return res, nil
	}

	// 3) Incremental insertion.
	ghost := &geom.Vertex{ID: ghostID}
	seed := seedTriangle(vertices)
	triangles := []geom.Triangle{
		seed,
		geom.NewTriangle(seed.B, seed.A, ghost),
		geom.NewTriangle(seed.C, seed.B, ghost),
		geom.NewTriangle(seed.A, seed.C, ghost),
	}
	for _, v := range vertices {
		if seed.ContainsVertex(v) {
			continue
		}
		var err error
		triangles, err = insert(triangles, v, ghost)
		if err != nil {
			return nil, err
		}
	}

	// 4) Ghost triangles only describe the outside of the hull.
	res.Triangles = make([]geom.Triangle, 0, len(triangles))
	for _, t := range triangles {
		if t.C == ghost {
			continue
		}
		res.Triangles = append(res.Triangles, t)
	}
	res.Edges = uniqueTriangleEdges(res.Triangles)

	return res, nil
}

// insert adds v to the triangulation and returns the new triangle list.
// Real triangles are counter-clockwise; a ghost triangle (u, w, ghost) keeps
// the ghost last and lies to the left of the directed hull edge u→w.
func insert(triangles []geom.Triangle, v, ghost *geom.Vertex) ([]geom.Triangle, error) {
	bad, keep := partition(triangles, v.Position, ghost)
	if len(bad) == 0 {
		return nil, fmt.Errorf("%w: %s is in no circumcircle", ErrDegenerateTriangle, v)
	}

	for _, e := range cavityBoundary(bad) {
		var t geom.Triangle
		switch {
		case e.U == ghost:
			t = geom.NewTriangle(e.V, v, ghost)
		case e.V == ghost:
			t = geom.NewTriangle(v, e.U, ghost)
		default:
			t = geom.NewTriangle(e.U, e.V, v)
			if t.IsDegenerate() || geom.Cross(e.U.Position, e.V.Position, v.Position) < 0 {
				return nil, fmt.Errorf("%w: inserting %s against %s", ErrDegenerateTriangle, v, e)
			}
		}
		keep = append(keep, t)
	}

	return keep, nil
}

// partition splits triangles into those whose circumcircle contains p (bad)
// and the rest (keep). The input slice is not modified.
func partition(triangles []geom.Triangle, p geom.Vec2, ghost *geom.Vertex) (bad, keep []geom.Triangle) {
	keep = make([]geom.Triangle, 0, len(triangles)+2)
	for _, t := range triangles {
		if conflicts(t, p, ghost) {
			bad = append(bad, t)
		} else {
			keep = append(keep, t)
		}
	}

	return bad, keep
}

// conflicts reports whether p invalidates t. The circumcircle of a ghost
// triangle (u, w, ghost) degenerates to the open half-plane beyond u→w plus
// the open segment between u and w.
func conflicts(t geom.Triangle, p geom.Vec2, ghost *geom.Vertex) bool {
	if t.C != ghost {
		return t.CircumCircleContains(p)
	}

	u, w := t.A.Position, t.B.Position
	if !geom.Collinear(u, w, p) {
		return geom.Cross(u, w, p) > 0
	}
	d, q := w.Sub(u), p.Sub(u)
	along := d.X*q.X + d.Y*q.Y

	return along > 0 && along < d.LengthSq()
}

// cavityBoundary returns the directed sides of bad that no other bad
// triangle walks in the opposite direction. Shared sides cancel in pairs.
func cavityBoundary(bad []geom.Triangle) []geom.Edge {
	polygon := make([]geom.Edge, 0, 3*len(bad))
	for _, t := range bad {
		e := t.Edges()
		polygon = append(polygon, e[0], e[1], e[2])
	}

	shared := make([]bool, len(polygon))
	for i := range polygon {
		for j := i + 1; j < len(polygon); j++ {
			if polygon[i].U == polygon[j].V && polygon[i].V == polygon[j].U {
				shared[i] = true
				shared[j] = true
			}
		}
	}

	out := make([]geom.Edge, 0, len(polygon))
	for i, e := range polygon {
		if !shared[i] {
			out = append(out, e)
		}
	}

	return out
}

// seedTriangle picks a counter-clockwise starting triangle of maximal width:
// the first vertex, the vertex farthest from it and the vertex farthest from
// the line through both. The set must not be collinear.
func seedTriangle(vertices []*geom.Vertex) geom.Triangle {
	a := vertices[0]
	b := farthestVertex(a.Position, vertices)

	var c *geom.Vertex
	best := -1.0
	for _, v := range vertices {
		if area := math.Abs(geom.Cross(a.Position, b.Position, v.Position)); area > best {
			c, best = v, area
		}
	}
	if geom.Cross(a.Position, b.Position, c.Position) < 0 {
		b, c = c, b
	}

	return geom.NewTriangle(a, b, c)
}
// uniqueTriangleEdges collects triangle sides once each, in first-seen order.
func uniqueTriangleEdges(triangles []geom.Triangle) []geom.Edge {
	seen := mapset.New[geom.EdgeKey]()
	edges := make([]geom.Edge, 0, 3*len(triangles))
	for _, t := range triangles {
		for _, e := range t.Edges() {
			k := e.Key()
			if seen.Has(k) {
				continue
			}
			seen.Put(k)
			edges = append(edges, e)
		}
	}

	return edges
}

// validate rejects input the circumcircle arithmetic cannot handle.
func validate(vertices []*geom.Vertex, eps float64) error {
	ids := mapset.New[int]()
	for i, v := range vertices {
		if v == nil {
			return fmt.Errorf("%w: index %d", ErrNilVertex, i)
		}
		if !v.Position.IsFinite() {
			return fmt.Errorf("%w: %s", ErrNonFiniteVertex, v)
		}
		if ids.Has(v.ID) {
			return fmt.Errorf("%w: %d", ErrDuplicateID, v.ID)
		}
		ids.Put(v.ID)
	}
	for i, a := range vertices {
		for _, b := range vertices[i+1:] {
			if a.Position.AlmostEqual(b.Position, eps) {
				return fmt.Errorf("%w: %s and %s", ErrDuplicateVertex, a, b)
			}
		}
	}

	return nil
}

// allCollinear reports whether every vertex lies on the line through the
// first vertex and the vertex farthest from it.
func allCollinear(vertices []*geom.Vertex) bool {
	a := vertices[0].Position
	far := farthestVertex(a, vertices).Position
	for _, v := range vertices {
		if !geom.Collinear(a, far, v.Position) {
			return false
		}
	}

	return true
}

// chainEdges orders collinear vertices along their line and links neighbours.
func chainEdges(vertices []*geom.Vertex) []geom.Edge {
	a := vertices[0].Position
	dir := farthestVertex(a, vertices).Position.Sub(a)
	sorted := slices.Clone(vertices)
	slices.SortStableFunc(sorted, func(u, v *geom.Vertex) int {
		pu := u.Position.Sub(a)
		pv := v.Position.Sub(a)
		du := pu.X*dir.X + pu.Y*dir.Y
		dv := pv.X*dir.X + pv.Y*dir.Y
		switch {
		case du < dv:
			return -1
		case du > dv:
			return 1
		}
		return 0
	})

	edges := make([]geom.Edge, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		edges = append(edges, geom.NewEdge(sorted[i-1], sorted[i]))
	}

	return edges
}

func farthestVertex(a geom.Vec2, vertices []*geom.Vertex) *geom.Vertex {
	far, best := vertices[0], -1.0
	for _, v := range vertices {
		if d := v.Position.Sub(a).LengthSq(); d > best {
			far, best = v, d
		}
	}

	return far
}
