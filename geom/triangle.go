package geom

// Triangle is three vertices. Corner order is not significant.
type Triangle struct {
	A, B, C *Vertex
}

// NewTriangle returns the triangle (a, b, c).
func NewTriangle(a, b, c *Vertex) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// Edges returns the three sides AB, BC, CA.
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{NewEdge(t.A, t.B), NewEdge(t.B, t.C), NewEdge(t.C, t.A)}
}

// IsDegenerate reports whether the corners are collinear.
func (t Triangle) IsDegenerate() bool {
	return Collinear(t.A.Position, t.B.Position, t.C.Position)
}

// Circumcircle returns the circumcenter and squared radius of t.
// ok is false when the corners are collinear and no finite circle exists.
func (t Triangle) Circumcircle() (center Vec2, radiusSq float64, ok bool) {
	a := t.A.Position
	b := t.B.Position.Sub(a)
	c := t.C.Position.Sub(a)

	d := 2 * (b.X*c.Y - b.Y*c.X)
	if t.IsDegenerate() || d == 0 {
		return Vec2{}, 0, false
	}

	bl, cl := b.LengthSq(), c.LengthSq()
	ux := (c.Y*bl - b.Y*cl) / d
	uy := (b.X*cl - c.X*bl) / d
	// Relative to A, so the radius is the length of (ux, uy).
	center = Vec2{X: a.X + ux, Y: a.Y + uy}
	radiusSq = ux*ux + uy*uy

	return center, radiusSq, true
}

// CircumCircleContains reports whether p lies inside or on the circumcircle.
// Degenerate triangles contain nothing.
func (t Triangle) CircumCircleContains(p Vec2) bool {
	if t.IsDegenerate() {
		return false
	}
	a, b, c := t.A.Position, t.B.Position, t.C.Position
	det := InCircle(a, b, c, p)
	if Cross(a, b, c) < 0 {
		det = -det
	}

	return det >= 0
}

// ContainsPoint reports whether one corner lies within VertexTolerance of p.
func (t Triangle) ContainsPoint(p Vec2) bool {
	return t.A.Position.Distance(p) < VertexTolerance ||
		t.B.Position.Distance(p) < VertexTolerance ||
		t.C.Position.Distance(p) < VertexTolerance
}

// ContainsVertex reports whether v is one of the corners (identity).
func (t Triangle) ContainsVertex(v *Vertex) bool {
	return t.A == v || t.B == v || t.C == v
}

// Equal reports whether o has the same corners in any order.
func (t Triangle) Equal(o Triangle) bool {
	return t.ContainsVertex(o.A) && t.ContainsVertex(o.B) && t.ContainsVertex(o.C)
}
