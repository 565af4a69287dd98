package pathfind_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlgen/geom"
	"github.com/katalvlaran/lvlgen/grid"
	"github.com/katalvlaran/lvlgen/pathfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uniform charges 1 per step everywhere.
func uniform(_, _ *pathfind.Node) pathfind.PathCost {
	return pathfind.PathCost{Traversable: true, Cost: 1}
}

// landscape returns a cost function where entering (x,y) costs land[y][x];
// zero cells are walls.
func landscape(land [][]int) pathfind.CostFunc {
	return func(_, to *pathfind.Node) pathfind.PathCost {
		c := land[to.Position.Y][to.Position.X]
		return pathfind.PathCost{Traversable: c > 0, Cost: float64(c)}
	}
}

// bruteForce runs Bellman–Ford style relaxation until nothing changes.
func bruteForce(land [][]int, start, end geom.Vec2Int) float64 {
	h, w := len(land), len(land[0])
	dist := make([][]float64, h)
	for y := range dist {
		dist[y] = make([]float64, w)
		for x := range dist[y] {
			dist[y][x] = math.Inf(1)
		}
	}
	dist[start.Y][start.X] = 0
	for changed := true; changed; {
		changed = false
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if math.IsInf(dist[y][x], 1) {
					continue
				}
				for _, d := range grid.NeighborOffsets(grid.Conn4) {
					nx, ny := x+d.X, y+d.Y
					if nx < 0 || ny < 0 || nx >= w || ny >= h || land[ny][nx] == 0 {
						continue
					}
					if c := dist[y][x] + float64(land[ny][nx]); c < dist[ny][nx] {
						dist[ny][nx] = c
						changed = true
					}
				}
			}
		}
	}

	return dist[end.Y][end.X]
}

func randomLand(w, h int, seed int64) [][]int {
	r := rand.New(rand.NewSource(seed))
	land := make([][]int, h)
	for y := range land {
		land[y] = make([]int, w)
		for x := range land[y] {
			if r.Intn(6) == 0 {
				continue // wall
			}
			land[y][x] = 1 + r.Intn(9)
		}
	}
	land[0][0], land[h-1][w-1] = 1, 1

	return land
}

// assertContiguous checks each step moves to an orthogonal neighbour.
func assertContiguous(t *testing.T, path []geom.Vec2Int) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		assert.Equal(t, 1, path[i-1].Manhattan(path[i]), "step %d: %v→%v", i, path[i-1], path[i])
	}
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

func TestFindPath_Validation(t *testing.T) {
	pf := pathfind.New(geom.Vec2Int{X: 5, Y: 5}, geom.Vec2Int{})

	_, err := pf.FindPath(geom.Vec2Int{}, geom.Vec2Int{X: 1}, nil)
	assert.ErrorIs(t, err, pathfind.ErrNilCostFunc)

	_, err = pf.FindPath(geom.Vec2Int{X: -1}, geom.Vec2Int{X: 1}, uniform)
	assert.ErrorIs(t, err, pathfind.ErrOutOfBounds)

	_, err = pf.FindPath(geom.Vec2Int{}, geom.Vec2Int{X: 5}, uniform)
	assert.ErrorIs(t, err, pathfind.ErrOutOfBounds)

	negative := func(_, _ *pathfind.Node) pathfind.PathCost {
		return pathfind.PathCost{Traversable: true, Cost: -1}
	}
	_, err = pf.FindPath(geom.Vec2Int{}, geom.Vec2Int{X: 4}, negative)
	assert.ErrorIs(t, err, pathfind.ErrNegativeCost)

	assert.Panics(t, func() { pathfind.WithMaxExpansions(-1)(&pathfind.Options{}) })
}

//----------------------------------------------------------------------------//
// Correctness
//----------------------------------------------------------------------------//

// TestFindPath_Uniform checks that a unit-cost path has Manhattan length.
func TestFindPath_Uniform(t *testing.T) {
	pf := pathfind.New(geom.Vec2Int{X: 20, Y: 20}, geom.Vec2Int{X: -10, Y: -10})
	start, end := geom.Vec2Int{X: -7, Y: 3}, geom.Vec2Int{X: 6, Y: -4}

	path, err := pf.FindPath(start, end, uniform)
	require.NoError(t, err)
	assert.Equal(t, start, path[0])
	assert.Equal(t, end, path[len(path)-1])
	assert.Len(t, path, start.Manhattan(end)+1)
	assertContiguous(t, path)
}

func TestFindPath_SameCell(t *testing.T) {
	pf := pathfind.New(geom.Vec2Int{X: 3, Y: 3}, geom.Vec2Int{})
	path, err := pf.FindPath(geom.Vec2Int{X: 1, Y: 1}, geom.Vec2Int{X: 1, Y: 1}, uniform)
	require.NoError(t, err)
	assert.Equal(t, []geom.Vec2Int{{X: 1, Y: 1}}, path)
}

// TestFindPath_MatchesBruteForce compares path cost with exhaustive relaxation.
func TestFindPath_MatchesBruteForce(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 5, 8} {
		land := randomLand(12, 9, seed)
		start, end := geom.Vec2Int{}, geom.Vec2Int{X: 11, Y: 8}
		want := bruteForce(land, start, end)
		cost := landscape(land)

		pf := pathfind.New(geom.Vec2Int{X: 12, Y: 9}, geom.Vec2Int{})
		path, err := pf.FindPath(start, end, cost)
		if math.IsInf(want, 1) {
			assert.ErrorIs(t, err, pathfind.ErrNoPath, "seed %d", seed)
			continue
		}
		require.NoError(t, err, "seed %d", seed)
		assertContiguous(t, path)
		got, ok := pathfind.TotalCost(path, cost)
		require.True(t, ok)
		assert.InDelta(t, want, got, 1e-9, "seed %d", seed)
	}
}

// TestFindPath_Wall separates start and end with a solid column.
func TestFindPath_Wall(t *testing.T) {
	land := [][]int{
		{1, 1, 0, 1, 1},
		{1, 1, 0, 1, 1},
		{1, 1, 0, 1, 1},
	}
	pf := pathfind.New(geom.Vec2Int{X: 5, Y: 3}, geom.Vec2Int{})
	path, err := pf.FindPath(geom.Vec2Int{}, geom.Vec2Int{X: 4, Y: 2}, landscape(land))
	assert.ErrorIs(t, err, pathfind.ErrNoPath)
	assert.Nil(t, path)

	// Opening one gap makes the target reachable through it.
	land[1][2] = 1
	path, err = pf.FindPath(geom.Vec2Int{}, geom.Vec2Int{X: 4, Y: 2}, landscape(land))
	require.NoError(t, err)
	assert.Contains(t, path, geom.Vec2Int{X: 2, Y: 1})
}

// TestFindPath_PrefersCheapCorridor checks that a detour over cheap cells
// beats a short route over expensive ones.
func TestFindPath_PrefersCheapCorridor(t *testing.T) {
	land := [][]int{
		{1, 9, 9, 9, 1},
		{1, 1, 1, 1, 1},
	}
	pf := pathfind.New(geom.Vec2Int{X: 5, Y: 2}, geom.Vec2Int{})
	path, err := pf.FindPath(geom.Vec2Int{}, geom.Vec2Int{X: 4}, landscape(land))
	require.NoError(t, err)
	assert.Len(t, path, 7)
	total, _ := pathfind.TotalCost(path, landscape(land))
	assert.Equal(t, 6.0, total)
}

// TestFindPath_Reusable calls the same Pathfinder repeatedly; no state leaks.
func TestFindPath_Reusable(t *testing.T) {
	pf := pathfind.New(geom.Vec2Int{X: 8, Y: 8}, geom.Vec2Int{})
	first, err := pf.FindPath(geom.Vec2Int{}, geom.Vec2Int{X: 7, Y: 7}, uniform)
	require.NoError(t, err)
	_, err = pf.FindPath(geom.Vec2Int{X: 3, Y: 3}, geom.Vec2Int{X: 4, Y: 3}, uniform)
	require.NoError(t, err)
	again, err := pf.FindPath(geom.Vec2Int{}, geom.Vec2Int{X: 7, Y: 7}, uniform)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestFindPath_SearchLimit(t *testing.T) {
	pf := pathfind.New(geom.Vec2Int{X: 30, Y: 30}, geom.Vec2Int{}, pathfind.WithMaxExpansions(10))
	_, err := pf.FindPath(geom.Vec2Int{}, geom.Vec2Int{X: 29, Y: 29}, uniform)
	assert.ErrorIs(t, err, pathfind.ErrSearchLimit)
}

func TestFindPath_Conn8(t *testing.T) {
	pf := pathfind.New(geom.Vec2Int{X: 6, Y: 6}, geom.Vec2Int{}, pathfind.WithConnectivity(grid.Conn8))
	path, err := pf.FindPath(geom.Vec2Int{}, geom.Vec2Int{X: 5, Y: 5}, uniform)
	require.NoError(t, err)
	assert.Len(t, path, 6)
}

func TestTotalCost_Blocked(t *testing.T) {
	land := [][]int{{1, 0, 1}}
	_, ok := pathfind.TotalCost([]geom.Vec2Int{{X: 0}, {X: 1}, {X: 2}}, landscape(land))
	assert.False(t, ok)
	_, ok = pathfind.TotalCost(nil, uniform)
	assert.False(t, ok)
}
