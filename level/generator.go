package level

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/lvlgen/delaunay"
	"github.com/katalvlaran/lvlgen/geom"
	"github.com/katalvlaran/lvlgen/grid"
	"github.com/katalvlaran/lvlgen/pathfind"
	"github.com/katalvlaran/lvlgen/prim_kruskal"
	"github.com/zyedidia/generic/mapset"
)

// Generator turns a set of placed rooms into a Level.
// It owns a *rand.Rand and is not safe for concurrent use.
type Generator struct {
	cfg    Config
	log    *slog.Logger
	rng    *rand.Rand
	finder *pathfind.Pathfinder
}

// NewGenerator validates cfg and returns a Generator.
func NewGenerator(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(cfg.Seed)
	}

	return &Generator{
		cfg:    cfg,
		log:    o.Logger,
		rng:    rng,
		finder: pathfind.New(cfg.Size, cfg.Offset, pathfind.WithMaxExpansions(cfg.MaxExpansions)),
	}, nil
}

// Config returns the configuration the Generator was built with.
func (g *Generator) Config() Config { return g.cfg }

// Generate builds a level from rooms.
//
// Steps:
//  1. Validate rooms: at least one, positive size, in bounds, no overlap.
//  2. Rasterize rooms as Floor with FloorCenter under each center.
//  3. Triangulate room centers; vertex i is the center of rooms[i].
//  4. Take the minimum spanning tree, then add each remaining triangulation
//     edge with probability LoopChance.
//  5. Carve a corridor per edge; unreachable edges go to Level.Skipped.
//  6. Optionally widen corridors, then surround walkable cells with walls.
//
// Loop selection draws from the Generator's RNG, so consecutive calls on the
// same Generator may differ. Build a fresh Generator to replay a seed.
func (g *Generator) Generate(rooms []Room) (*Level, error) {
	// 1) Validate
	index, err := g.validateRooms(rooms)
	if err != nil {
		return nil, err
	}

	lv := &Level{
		Grid:      grid.New[CellType](g.cfg.Size, g.cfg.Offset),
		Rooms:     append([]Room(nil), rooms...),
		Vertices:  make([]*geom.Vertex, len(rooms)),
		Corridors: []Corridor{},
		Skipped:   []geom.Edge{},
	}

	// 2) Rasterize
	for i, r := range rooms {
		rasterize(lv.Grid, r)
		c := r.Center()
		lv.Vertices[i] = geom.NewVertex(i, c.X, c.Y)
	}

	// 3) Triangulate
	tri, err := delaunay.Triangulate(lv.Vertices)
	if err != nil {
		return nil, fmt.Errorf("level: triangulate: %w", err)
	}
	lv.Triangulation = tri
	g.log.Debug("triangulated room centers",
		slog.Int("rooms", len(rooms)),
		slog.Int("triangles", len(tri.Triangles)),
		slog.Int("edges", len(tri.Edges)))

	// 4) Spanning tree plus loops
	tree, length, err := prim_kruskal.Kruskal(tri.Edges, lv.Vertices)
	if err != nil {
		return nil, fmt.Errorf("level: spanning tree: %w", err)
	}
	lv.Tree = tree
	loops := g.loopEdges(tri.Edges, tree)
	g.log.Debug("selected corridors",
		slog.Int("tree", len(tree)),
		slog.Float64("tree_length", length),
		slog.Int("loops", len(loops)))

	// 5) Carve
	for _, e := range tree {
		if err := g.carve(lv, index, e, false); err != nil {
			return nil, err
		}
	}
	for _, e := range loops {
		if err := g.carve(lv, index, e, true); err != nil {
			return nil, err
		}
	}

	// 6) Decorate
	if g.cfg.ExpandPaths {
		n := surround(lv.Grid, func(c CellType) bool { return c == Path }, ExpandedPath)
		g.log.Debug("expanded corridors", slog.Int("cells", n))
	}
	if g.cfg.Walls {
		n := surround(lv.Grid, CellType.IsWalkable, Wall)
		g.log.Debug("placed walls", slog.Int("cells", n))
	}
	g.log.Debug("generated level",
		slog.Int("corridors", len(lv.Corridors)),
		slog.Int("skipped", len(lv.Skipped)),
		slog.Int("walkable_regions", len(lv.Regions())))

	return lv, nil
}

// validateRooms checks rooms against the level rectangle and each other.
func (g *Generator) validateRooms(rooms []Room) (*RoomIndex, error) {
	if len(rooms) == 0 {
		return nil, ErrNoRooms
	}
	lo := g.cfg.Offset
	hi := g.cfg.Offset.Add(g.cfg.Size)
	for i, r := range rooms {
		if r.Size.X <= 0 || r.Size.Y <= 0 {
			return nil, fmt.Errorf("%w: room %d size %v", ErrInvalidRoom, i, r.Size)
		}
		m := r.Position.Add(r.Size)
		if r.Position.X < lo.X || r.Position.Y < lo.Y || m.X > hi.X || m.Y > hi.Y {
			return nil, fmt.Errorf("%w: room %d at %v size %v", ErrRoomOutOfBounds, i, r.Position, r.Size)
		}
	}

	return NewRoomIndex(rooms)
}

// rasterize writes r onto cells.
func rasterize(cells *grid.Grid2D[CellType], r Room) {
	for y := r.Position.Y; y < r.Position.Y+r.Size.Y; y++ {
		for x := r.Position.X; x < r.Position.X+r.Size.X; x++ {
			cells.Set(x, y, Floor)
		}
	}
	cells.Put(r.CenterCell(), FloorCenter)
}

// loopEdges returns the non-tree edges kept by the LoopChance roll, in
// triangulation order. One draw is made per candidate edge.
func (g *Generator) loopEdges(all, tree []geom.Edge) []geom.Edge {
	inTree := mapset.New[geom.EdgeKey]()
	for _, e := range tree {
		inTree.Put(e.Key())
	}

	var out []geom.Edge
	for _, e := range all {
		if inTree.Has(e.Key()) {
			continue
		}
		if g.rng.Float64() < g.cfg.LoopChance {
			out = append(out, e)
		}
	}

	return out
}

// carve finds and writes the corridor for e. Unreachable edges are recorded
// in lv.Skipped; any other search failure aborts generation.
func (g *Generator) carve(lv *Level, index *RoomIndex, e geom.Edge, loop bool) error {
	from, to := e.U.ID, e.V.ID
	start := lv.Rooms[from].CenterCell()
	end := lv.Rooms[to].CenterCell()

	path, err := g.finder.FindPath(start, end, g.corridorCost(lv, index, from, to, end))
	if errors.Is(err, pathfind.ErrNoPath) || errors.Is(err, pathfind.ErrSearchLimit) {
		g.log.Warn("corridor skipped",
			slog.Int("from", from),
			slog.Int("to", to),
			slog.Any("reason", err))
		lv.Skipped = append(lv.Skipped, e)
		return nil
	}
	if err != nil {
		return fmt.Errorf("level: corridor %d-%d: %w", from, to, err)
	}

	for _, pos := range path {
		if !lv.Grid.At(pos).IsRoom() {
			lv.Grid.Put(pos, Path)
		}
	}
	lv.Corridors = append(lv.Corridors, Corridor{Edge: e, Path: path, Loop: loop})

	return nil
}

// corridorCost prices the step into a cell by what the cell holds:
// endpoint-room and corridor cells cost PathCost, other room cells RoomCost,
// empty cells EmptyCost. HeuristicWeight times the remaining distance to end
// is added to every step.
func (g *Generator) corridorCost(lv *Level, index *RoomIndex, from, to int, end geom.Vec2Int) pathfind.CostFunc {
	return func(_, next *pathfind.Node) pathfind.PathCost {
		var step float64
		room, inRoom := index.At(next.Position)
		switch {
		case inRoom && (room == from || room == to):
			step = g.cfg.PathCost
		case inRoom:
			if g.cfg.AvoidRooms {
				return pathfind.PathCost{Traversable: false}
			}
			step = g.cfg.RoomCost
		case lv.Grid.At(next.Position) == Path:
			step = g.cfg.PathCost
		default:
			step = g.cfg.EmptyCost
		}
		step += g.cfg.HeuristicWeight * next.Position.Distance(end)

		return pathfind.PathCost{Traversable: true, Cost: step}
	}
}

// surround writes mark on every in-bounds Empty cell 8-adjacent to a cell
// matching src and returns how many cells changed.
func surround(cells *grid.Grid2D[CellType], src func(CellType) bool, mark CellType) int {
	var targets []geom.Vec2Int
	for _, pos := range cells.Positions() {
		if !src(cells.At(pos)) {
			continue
		}
		for _, n := range cells.Neighbors(pos, grid.Conn8) {
			if cells.At(n) == Empty {
				targets = append(targets, n)
			}
		}
	}

	n := 0
	for _, pos := range targets {
		if cells.At(pos) == Empty {
			cells.Put(pos, mark)
			n++
		}
	}

	return n
}
