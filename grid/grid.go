package grid

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/lvlgen/geom"
)

// New returns an empty grid covering [offset, offset+size).
// Negative size components are clamped to zero, which makes every InBounds false.
func New[T any](size, offset geom.Vec2Int) *Grid2D[T] {
	size.X = max(size.X, 0)
	size.Y = max(size.Y, 0)

	return &Grid2D[T]{
		size:   size,
		offset: offset,
		cells:  make(map[geom.Vec2Int]T),
	}
}

// Size returns the declared logical size.
func (g *Grid2D[T]) Size() geom.Vec2Int { return g.size }

// Offset returns the position of the first in-bounds cell.
func (g *Grid2D[T]) Offset() geom.Vec2Int { return g.offset }

// Len returns the number of populated cells.
func (g *Grid2D[T]) Len() int { return len(g.cells) }

// InBounds reports whether pos lies inside the declared rectangle.
func (g *Grid2D[T]) InBounds(pos geom.Vec2Int) bool {
	p := pos.Sub(g.offset)

	return p.X >= 0 && p.X < g.size.X && p.Y >= 0 && p.Y < g.size.Y
}

// At returns the value at pos, or the zero value if pos was never written.
func (g *Grid2D[T]) At(pos geom.Vec2Int) T {
	return g.cells[pos]
}

// Lookup returns the value at pos and whether it was written.
func (g *Grid2D[T]) Lookup(pos geom.Vec2Int) (T, bool) {
	v, ok := g.cells[pos]

	return v, ok
}

// Put stores v at pos. Out-of-bounds positions are stored as well.
func (g *Grid2D[T]) Put(pos geom.Vec2Int, v T) {
	g.cells[pos] = v
}

// Get is At(x, y).
func (g *Grid2D[T]) Get(x, y int) T { return g.At(geom.Vec2Int{X: x, Y: y}) }

// Set is Put(x, y).
func (g *Grid2D[T]) Set(x, y int, v T) { g.Put(geom.Vec2Int{X: x, Y: y}, v) }

// Delete forgets pos; later reads return the zero value again.
func (g *Grid2D[T]) Delete(pos geom.Vec2Int) {
	delete(g.cells, pos)
}

// Positions returns every populated position in row-major order.
func (g *Grid2D[T]) Positions() []geom.Vec2Int {
	out := make([]geom.Vec2Int, 0, len(g.cells))
	for p := range g.cells {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b geom.Vec2Int) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})

	return out
}

// Each calls fn for every populated cell in row-major order.
func (g *Grid2D[T]) Each(fn func(pos geom.Vec2Int, v T)) {
	for _, p := range g.Positions() {
		fn(p, g.cells[p])
	}
}

// Neighbors returns the in-bounds neighbors of pos under conn.
func (g *Grid2D[T]) Neighbors(pos geom.Vec2Int, conn Connectivity) []geom.Vec2Int {
	offs := NeighborOffsets(conn)
	out := make([]geom.Vec2Int, 0, len(offs))
	for _, d := range offs {
		if n := pos.Add(d); g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}
