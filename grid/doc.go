// Package grid provides Grid2D, a fixed-size, offset-addressed sparse grid,
// and the neighbor-offset tables used to walk it.
//
// What:
//
//   - Grid2D[T] declares a logical rectangle [Offset, Offset+Size) and stores
//     only the cells that were written, in a map keyed by geom.Vec2Int.
//   - Reads of never-written cells return T's zero value; no error, no panic.
//   - Writes are never rejected by Set/Put. InBounds is the only enforcement
//     of the declared rectangle; callers check it when strict containment matters.
//   - Positions and Each enumerate populated cells in row-major order
//     (y, then x) so iteration is deterministic.
//
// Connectivity:
//
//   - Conn4 uses 4-directional neighbors: N, E, S, W.
//   - Conn8 adds the diagonals.
//   - Components groups written cells into contiguous regions ("islands")
//     under either connectivity.
//
// Complexity:
//
//   - Get/Set/InBounds: O(1) average.
//   - Positions/Each:   O(k log k) for k populated cells.
//   - Components:       O(k log k + k·d), d = 4 or 8.
package grid
