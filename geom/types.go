package geom

import (
	"fmt"
	"math"
)

const (
	// Epsilon is the coordinate tolerance used by AlmostEqual comparisons.
	Epsilon = 1e-6

	// VertexTolerance is the distance under which ContainsPoint treats a
	// triangle corner and a point as the same location.
	VertexTolerance = 0.01

	// degenerateArea is the twice-signed-area, per squared unit of the longer
	// side, under which three points are considered collinear.
	degenerateArea = 1e-9
)

// Vec2 is a 2D point or direction in continuous space.
type Vec2 struct {
	X, Y float64
}

// Vec2Int is a 2D cell coordinate in grid space.
type Vec2Int struct {
	X, Y int
}

// Vec3 is a 3D point in world space. Y is the vertical axis.
type Vec3 struct {
	X, Y, Z float64
}

// Vertex is an identity-bearing graph node. Always handled by pointer:
// two *Vertex values are the same vertex only when the pointers are equal.
//
// ID must be unique among the vertices handed to a single algorithm run;
// it orders endpoints inside EdgeKey and keeps output deterministic.
type Vertex struct {
	ID       int
	Position Vec2
}

// NewVertex returns a new vertex with the given id at (x, y).
func NewVertex(id int, x, y float64) *Vertex {
	return &Vertex{ID: id, Position: Vec2{X: x, Y: y}}
}

// String formats the vertex as "#id(x,y)".
func (v *Vertex) String() string {
	if v == nil {
		return "<nil>"
	}

	return fmt.Sprintf("#%d(%g,%g)", v.ID, v.Position.X, v.Position.Y)
}

// IsFinite reports whether both coordinates are finite numbers.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
