package geom

import "fmt"

// Edge is an unordered pair of vertices.
type Edge struct {
	U, V *Vertex
}

// EdgeKey is a comparable, orientation-independent identity of an Edge.
// Lo holds the smaller vertex ID.
type EdgeKey struct {
	Lo, Hi int
}

// NewEdge returns the edge {u, v}.
func NewEdge(u, v *Vertex) Edge {
	return Edge{U: u, V: v}
}

// Equal reports undirected identity equality: {U,V} == {V,U}.
func (e Edge) Equal(o Edge) bool {
	return (e.U == o.U && e.V == o.V) || (e.U == o.V && e.V == o.U)
}

// AlmostEqual reports whether both endpoints coincide within Epsilon,
// in either orientation. Used to match edges rebuilt from different triangles.
func (e Edge) AlmostEqual(o Edge) bool {
	return (e.U.Position.AlmostEqual(o.U.Position, Epsilon) && e.V.Position.AlmostEqual(o.V.Position, Epsilon)) ||
		(e.U.Position.AlmostEqual(o.V.Position, Epsilon) && e.V.Position.AlmostEqual(o.U.Position, Epsilon))
}

// Key returns the hashable identity of e.
func (e Edge) Key() EdgeKey {
	if e.U.ID <= e.V.ID {
		return EdgeKey{Lo: e.U.ID, Hi: e.V.ID}
	}

	return EdgeKey{Lo: e.V.ID, Hi: e.U.ID}
}

// Length returns the Euclidean distance between the endpoints.
func (e Edge) Length() float64 {
	return e.U.Position.Distance(e.V.Position)
}

// Has reports whether v is one of the endpoints.
func (e Edge) Has(v *Vertex) bool {
	return e.U == v || e.V == v
}

// String formats the edge as "u-v".
func (e Edge) String() string {
	return fmt.Sprintf("%s-%s", e.U, e.V)
}
