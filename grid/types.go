package grid

import "github.com/katalvlaran/lvlgen/geom"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = []geom.Vec2Int{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
	offsets8 = []geom.Vec2Int{
		{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
		{X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1},
	}
)

// NeighborOffsets returns the offsets for conn in a fixed clockwise order
// starting north. The returned slice must not be modified.
func NeighborOffsets(conn Connectivity) []geom.Vec2Int {
	if conn == Conn8 {
		return offsets8
	}

	return offsets4
}

// Grid2D is a sparse grid over the rectangle [Offset, Offset+Size).
// It is not safe for concurrent writes.
type Grid2D[T any] struct {
	size   geom.Vec2Int
	offset geom.Vec2Int
	cells  map[geom.Vec2Int]T
}
