package pathfind

import (
	"errors"

	"github.com/katalvlaran/lvlgen/geom"
	"github.com/katalvlaran/lvlgen/grid"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNoPath indicates the target cannot be reached under the cost function.
	ErrNoPath = errors.New("pathfind: no path")

	// ErrOutOfBounds indicates start or end is outside the grid rectangle.
	ErrOutOfBounds = errors.New("pathfind: position out of bounds")

	// ErrNilCostFunc indicates FindPath was called without a cost function.
	ErrNilCostFunc = errors.New("pathfind: cost function is nil")

	// ErrNegativeCost indicates the cost function produced a negative or NaN step cost.
	ErrNegativeCost = errors.New("pathfind: negative step cost")

	// ErrSearchLimit indicates the expansion budget ran out before the target was reached.
	ErrSearchLimit = errors.New("pathfind: search limit exceeded")

	// ErrBadMaxExpansions indicates a negative expansion budget.
	ErrBadMaxExpansions = errors.New("pathfind: MaxExpansions must be non-negative")
)

// Node is one cell of the search.
//
// Cost is the cheapest accumulated cost found so far from the start
// (+Inf until reached). Previous points to the predecessor on that route.
type Node struct {
	Position geom.Vec2Int
	Cost     float64
	Previous *Node
}

// PathCost is the answer of a CostFunc for a single step.
type PathCost struct {
	// Traversable false forbids the step entirely.
	Traversable bool
	// Cost is the non-negative incremental cost of the step.
	Cost float64
}

// CostFunc evaluates the step from one node to an adjacent node.
// from.Cost holds the finalized cost of reaching from.
type CostFunc func(from, to *Node) PathCost

// Options configures a Pathfinder.
//
// Connectivity  – Conn4 (default) or Conn8 neighbours.
// MaxExpansions – cap on expanded nodes per call; 0 means unlimited.
type Options struct {
	Connectivity  grid.Connectivity
	MaxExpansions int
}

// Option is a functional option for New.
type Option func(*Options)

// WithConnectivity selects the neighbour model.
func WithConnectivity(conn grid.Connectivity) Option {
	return func(o *Options) {
		o.Connectivity = conn
	}
}

// WithMaxExpansions bounds the work of a single FindPath call.
// Panics on a negative value, as the option cannot be honoured.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// DefaultOptions returns 4-connectivity with no expansion cap.
func DefaultOptions() Options {
	return Options{
		Connectivity:  grid.Conn4,
		MaxExpansions: 0,
	}
}

// Pathfinder searches a fixed rectangle [offset, offset+size).
// It holds only configuration and is safe for concurrent use.
type Pathfinder struct {
	size    geom.Vec2Int
	offset  geom.Vec2Int
	options Options
}
