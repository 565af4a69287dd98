package grid

import "github.com/katalvlaran/lvlgen/geom"

// Components finds the contiguous regions of written, in-bounds cells whose
// value satisfies keep, under conn connectivity.
//
// Regions are seeded in row-major order; cells inside a region are listed in
// breadth-first order from the seed.
//
// Time:   O(C·d) for C written cells, d = 4 or 8.
// Memory: O(C).
func Components[T any](g *Grid2D[T], keep func(T) bool, conn Connectivity) [][]geom.Vec2Int {
	seen := make(map[geom.Vec2Int]bool)
	var comps [][]geom.Vec2Int

	for _, p0 := range g.Positions() {
		if seen[p0] || !g.InBounds(p0) || !keep(g.cells[p0]) {
			continue
		}
		// BFS to collect the region
		queue := []geom.Vec2Int{p0}
		seen[p0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range g.Neighbors(queue[qi], conn) {
				if seen[n] {
					continue
				}
				if v, ok := g.cells[n]; !ok || !keep(v) {
					continue
				}
				seen[n] = true
				queue = append(queue, n)
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
