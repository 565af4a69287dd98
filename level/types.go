package level

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlgen/delaunay"
	"github.com/katalvlaran/lvlgen/geom"
	"github.com/katalvlaran/lvlgen/grid"
)

// Sentinel errors for level generation.
var (
	// ErrNoRooms indicates Generate received no rooms.
	ErrNoRooms = errors.New("level: no rooms")

	// ErrInvalidRoom indicates a room with a non-positive size.
	ErrInvalidRoom = errors.New("level: room size must be positive")

	// ErrRoomOutOfBounds indicates a room extends past the level rectangle.
	ErrRoomOutOfBounds = errors.New("level: room out of bounds")

	// ErrRoomOverlap indicates two rooms share at least one cell.
	ErrRoomOverlap = errors.New("level: rooms overlap")

	// ErrInvalidConfig indicates a Config field outside its allowed range.
	ErrInvalidConfig = errors.New("level: invalid config")
)

// CellType is the semantic content of one output cell. It is the contract
// with the renderer that maps cells to tiles.
type CellType int

const (
	// Empty is the zero value: nothing was generated here.
	Empty CellType = iota
	// Floor is a room interior cell.
	Floor
	// FloorCenter is the cell under a room center.
	FloorCenter
	// Wall borders walkable cells.
	Wall
	// Path is a carved corridor cell.
	Path
	// ExpandedPath widens a corridor next to Path cells.
	ExpandedPath
)

var cellTypeNames = [...]string{"Empty", "Floor", "FloorCenter", "Wall", "Path", "ExpandedPath"}

// String returns the name of the cell type.
func (c CellType) String() string {
	if c < 0 || int(c) >= len(cellTypeNames) {
		return fmt.Sprintf("CellType(%d)", int(c))
	}

	return cellTypeNames[c]
}

// IsRoom reports whether c belongs to a room.
func (c CellType) IsRoom() bool { return c == Floor || c == FloorCenter }

// IsWalkable reports whether c can be walked on.
func (c CellType) IsWalkable() bool { return c.IsRoom() || c == Path || c == ExpandedPath }

// Room is a placed rectangular room in grid space: cells
// [Position, Position+Size).
type Room struct {
	Position geom.Vec2Int `yaml:"position"`
	Size     geom.Vec2Int `yaml:"size"`
}

// NewRoom returns the room at (x, y) with the given width and height.
func NewRoom(x, y, w, h int) Room {
	return Room{Position: geom.Vec2Int{X: x, Y: y}, Size: geom.Vec2Int{X: w, Y: h}}
}

// Center returns the continuous center of the room.
func (r Room) Center() geom.Vec2 {
	return geom.Vec2{
		X: float64(r.Position.X) + float64(r.Size.X)/2,
		Y: float64(r.Position.Y) + float64(r.Size.Y)/2,
	}
}

// CenterCell returns the cell under the center.
func (r Room) CenterCell() geom.Vec2Int {
	return r.Center().Floor()
}

// Max returns the last cell of the room (inclusive).
func (r Room) Max() geom.Vec2Int {
	return geom.Vec2Int{X: r.Position.X + r.Size.X - 1, Y: r.Position.Y + r.Size.Y - 1}
}

// Contains reports whether the cell lies inside the room.
func (r Room) Contains(p geom.Vec2Int) bool {
	return p.X >= r.Position.X && p.X < r.Position.X+r.Size.X &&
		p.Y >= r.Position.Y && p.Y < r.Position.Y+r.Size.Y
}

// Intersects reports whether the two rooms share a cell.
func (r Room) Intersects(o Room) bool {
	return r.Position.X < o.Position.X+o.Size.X && o.Position.X < r.Position.X+r.Size.X &&
		r.Position.Y < o.Position.Y+o.Size.Y && o.Position.Y < r.Position.Y+r.Size.Y
}

// WorldPosition maps the room corner to world space (Y up, grid Y → world Z).
func (r Room) WorldPosition(cellSize float64) geom.Vec3 {
	return geom.Vec3{X: float64(r.Position.X) * cellSize, Z: float64(r.Position.Y) * cellSize}
}

// WorldSize maps the room extent to world space.
func (r Room) WorldSize(cellSize float64) geom.Vec3 {
	return geom.Vec3{X: float64(r.Size.X) * cellSize, Y: cellSize, Z: float64(r.Size.Y) * cellSize}
}

// WorldCenter maps the room center to world space.
func (r Room) WorldCenter(cellSize float64) geom.Vec3 {
	c := r.Center()
	return geom.Vec3{X: c.X * cellSize, Z: c.Y * cellSize}
}

// Corridor is a carved connection between two rooms.
type Corridor struct {
	Edge geom.Edge
	Path []geom.Vec2Int
	// Loop is true for corridors added on top of the spanning tree.
	Loop bool
}

// Level is the output of one generation run.
type Level struct {
	// Grid holds the cell types over the configured rectangle.
	Grid *grid.Grid2D[CellType]
	// Rooms are the input rooms; Vertices[i] is the center of Rooms[i].
	Rooms    []Room
	Vertices []*geom.Vertex
	// Triangulation is the candidate graph over room centers.
	Triangulation *delaunay.Result
	// Tree is the minimum spanning tree of the triangulation.
	Tree []geom.Edge
	// Corridors are the carved connections, tree edges first.
	Corridors []Corridor
	// Skipped lists edges for which no path could be found.
	Skipped []geom.Edge
}

// Cell returns the cell type at pos (Empty if never written).
func (lv *Level) Cell(pos geom.Vec2Int) CellType {
	return lv.Grid.At(pos)
}

// CorridorEdges returns the edges of all carved corridors.
func (lv *Level) CorridorEdges() []geom.Edge {
	out := make([]geom.Edge, len(lv.Corridors))
	for i, c := range lv.Corridors {
		out[i] = c.Edge
	}

	return out
}

// Count returns how many written, in-bounds cells have type c.
func (lv *Level) Count(c CellType) int {
	n := 0
	lv.Grid.Each(func(pos geom.Vec2Int, v CellType) {
		if v == c && lv.Grid.InBounds(pos) {
			n++
		}
	})

	return n
}

// Regions returns the 4-connected regions of walkable cells.
func (lv *Level) Regions() [][]geom.Vec2Int {
	return grid.Components(lv.Grid, CellType.IsWalkable, grid.Conn4)
}

// Connected reports whether every room can reach every other room on foot.
func (lv *Level) Connected() bool {
	regions := lv.Regions()
	if len(lv.Rooms) == 0 {
		return true
	}
	if len(regions) == 0 {
		return false
	}
	home := make(map[geom.Vec2Int]int)
	for i, r := range regions {
		for _, p := range r {
			home[p] = i
		}
	}
	first := home[lv.Rooms[0].CenterCell()]
	for _, room := range lv.Rooms[1:] {
		if home[room.CenterCell()] != first {
			return false
		}
	}

	return true
}
