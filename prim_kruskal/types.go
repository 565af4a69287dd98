// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlgen/geom"
)

// ErrNoVertices indicates there is nothing to span.
var ErrNoVertices = errors.New("prim_kruskal: vertex set is empty")

// ErrUnknownVertex indicates an edge endpoint outside the vertex set.
var ErrUnknownVertex = errors.New("prim_kruskal: edge endpoint not in vertex set")

// ErrNilRoot indicates that no start vertex was specified for Prim.
var ErrNilRoot = errors.New("prim_kruskal: nil root vertex")

// ErrDisconnected indicates that the edges do not connect all vertices, so a spanning
// tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrInvalidMethod indicates an unknown MSTOptions.Method.
var ErrInvalidMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using a priority queue).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// WeightedEdge is an edge with its Euclidean length, used for sorting only.
type WeightedEdge struct {
	geom.Edge
	Distance float64
}

// NewWeightedEdge computes the length of e once.
func NewWeightedEdge(e geom.Edge) WeightedEdge {
	return WeightedEdge{Edge: e, Distance: e.Length()}
}

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	// Nil means "first vertex".
	Root *geom.Vertex
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm; ignored by Kruskal.
func WithRoot(root *geom.Vertex) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   nil,
	}
}

// Compute selects and runs the MST algorithm based on the options.
//
//	– MethodKruskal: Kruskal(edges, vertices).
//	– MethodPrim:    Prim(edges, vertices, Root), Root defaulting to vertices[0].
//	– otherwise:     ErrInvalidMethod.
func Compute(edges []geom.Edge, vertices []*geom.Vertex, opts ...Option) ([]geom.Edge, float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(edges, vertices)
	case MethodPrim:
		root := cfg.Root
		if root == nil && len(vertices) > 0 {
			root = vertices[0]
		}
		return Prim(edges, vertices, root)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrInvalidMethod, cfg.Method)
	}
}

// checkEdges verifies every endpoint belongs to the vertex set.
func checkEdges(edges []geom.Edge, known map[*geom.Vertex]struct{}) error {
	for _, e := range edges {
		for _, v := range [2]*geom.Vertex{e.U, e.V} {
			if _, ok := known[v]; !ok {
				return fmt.Errorf("%w: %s in edge %s", ErrUnknownVertex, v, e)
			}
		}
	}

	return nil
}

// vertexSet indexes vertices by identity.
func vertexSet(vertices []*geom.Vertex) map[*geom.Vertex]struct{} {
	set := make(map[*geom.Vertex]struct{}, len(vertices))
	for _, v := range vertices {
		set[v] = struct{}{}
	}

	return set
}
