package delaunay

import (
	"errors"

	"github.com/katalvlaran/lvlgen/geom"
)

// Sentinel errors returned by Triangulate.
var (
	// ErrNilVertex indicates a nil entry in the input slice.
	ErrNilVertex = errors.New("delaunay: nil vertex")

	// ErrNonFiniteVertex indicates a NaN or infinite coordinate.
	ErrNonFiniteVertex = errors.New("delaunay: vertex coordinate is not finite")

	// ErrDuplicateID indicates two input vertices share an ID.
	ErrDuplicateID = errors.New("delaunay: duplicate vertex ID")

	// ErrDuplicateVertex indicates two input vertices share a position.
	ErrDuplicateVertex = errors.New("delaunay: coincident vertices")

	// ErrDegenerateTriangle indicates insertion produced a collinear triangle.
	ErrDegenerateTriangle = errors.New("delaunay: degenerate triangle")

	// ErrBadEpsilon indicates a negative tolerance passed to WithEpsilon.
	ErrBadEpsilon = errors.New("delaunay: epsilon must be non-negative")
)

// Options configures Triangulate.
type Options struct {
	// Epsilon is the per-axis distance under which two input vertices are coincident.
	Epsilon float64
}

// Option is a functional option for Triangulate.
type Option func(*Options)

// WithEpsilon overrides the coincidence tolerance. Panics on a negative value.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			panic(ErrBadEpsilon.Error())
		}
		o.Epsilon = eps
	}
}

// DefaultOptions returns Options with Epsilon = geom.Epsilon.
func DefaultOptions() Options {
	return Options{Epsilon: geom.Epsilon}
}

// Result is the output of a triangulation.
//
// Vertices is the input slice (copied). Edges are undirected and unique.
// Triangles never reference the vertex at infinity used during insertion.
type Result struct {
	Vertices  []*geom.Vertex
	Edges     []geom.Edge
	Triangles []geom.Triangle
}
