package geom

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// LengthSq returns the squared Euclidean length of v.
func (v Vec2) LengthSq() float64 { return v.X*v.X + v.Y*v.Y }

// Point converts v into an orb.Point.
func (v Vec2) Point() orb.Point { return orb.Point{v.X, v.Y} }

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return planar.Distance(v.Point(), o.Point())
}

// AlmostEqual reports whether v and o differ by at most eps on each axis.
func (v Vec2) AlmostEqual(o Vec2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// Floor returns the grid cell containing v.
func (v Vec2) Floor() Vec2Int {
	return Vec2Int{X: int(math.Floor(v.X)), Y: int(math.Floor(v.Y))}
}

// FromPoint converts an orb.Point into a Vec2.
func FromPoint(p orb.Point) Vec2 { return Vec2{X: p.X(), Y: p.Y()} }

// Add returns v + o.
func (v Vec2Int) Add(o Vec2Int) Vec2Int { return Vec2Int{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2Int) Sub(o Vec2Int) Vec2Int { return Vec2Int{X: v.X - o.X, Y: v.Y - o.Y} }

// Vec2 converts the cell coordinate to continuous space.
func (v Vec2Int) Vec2() Vec2 { return Vec2{X: float64(v.X), Y: float64(v.Y)} }

// Distance returns the Euclidean distance between two cells.
func (v Vec2Int) Distance(o Vec2Int) float64 { return v.Vec2().Distance(o.Vec2()) }

// Manhattan returns |dx| + |dy| between two cells.
func (v Vec2Int) Manhattan(o Vec2Int) int {
	dx, dy := v.X-o.X, v.Y-o.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z} }

// Scale returns v multiplied by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s} }

// Distance returns the Euclidean distance between v and o.
func (v Vec3) Distance(o Vec3) float64 {
	d := v.Sub(o)

	return math.Sqrt(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
}

// Cross returns twice the signed area of triangle (a, b, c).
// Positive for counter-clockwise order, zero when collinear.
func Cross(a, b, c Vec2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Collinear reports whether a, b and c lie on a common line. The area
// tolerance grows with the squared length of the longer side from a, so
// the answer does not depend on the unit of the coordinates.
func Collinear(a, b, c Vec2) bool {
	scale := math.Max(1, math.Max(b.Sub(a).LengthSq(), c.Sub(a).LengthSq()))

	return math.Abs(Cross(a, b, c)) <= degenerateArea*scale
}

// InCircle returns the incircle determinant of d against (a, b, c):
// positive when d lies inside the circle through a, b, c taken
// counter-clockwise, zero on it. Exact for small integer and half-integer
// coordinates.
func InCircle(a, b, c, d Vec2) float64 {
	ad, bd, cd := a.Sub(d), b.Sub(d), c.Sub(d)

	return ad.LengthSq()*(bd.X*cd.Y-cd.X*bd.Y) +
		bd.LengthSq()*(cd.X*ad.Y-ad.X*cd.Y) +
		cd.LengthSq()*(ad.X*bd.Y-bd.X*ad.Y)
}
