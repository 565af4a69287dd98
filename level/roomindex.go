package level

import (
	"fmt"
	"slices"

	"github.com/dhconnelly/rtreego"
	"github.com/katalvlaran/lvlgen/geom"
)

// shrink pulls query rectangles inside cell boundaries so touching rooms
// never register as intersecting, whichever boundary convention the tree uses.
const shrink = 0.25

// roomEntry wraps a room for R-tree storage.
type roomEntry struct {
	index int
	room  Room
	bbox  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *roomEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// RoomIndex answers "which room covers this cell" and "which rooms overlap
// this rectangle" through an R-tree over room rectangles.
type RoomIndex struct {
	tree  *rtreego.Rtree
	rooms []Room
}

// NewRoomIndex indexes rooms. It fails with ErrInvalidRoom for a non-positive
// size and ErrRoomOverlap when two rooms share a cell.
func NewRoomIndex(rooms []Room) (*RoomIndex, error) {
	ix := &RoomIndex{
		tree:  rtreego.NewTree(2, 4, 16),
		rooms: slices.Clone(rooms),
	}
	for i, r := range rooms {
		if r.Size.X <= 0 || r.Size.Y <= 0 {
			return nil, fmt.Errorf("%w: room %d size %v", ErrInvalidRoom, i, r.Size)
		}
		if hits := ix.Overlapping(r); len(hits) > 0 {
			return nil, fmt.Errorf("%w: room %d and room %d", ErrRoomOverlap, hits[0], i)
		}
		bbox, err := rtreego.NewRect(
			rtreego.Point{float64(r.Position.X), float64(r.Position.Y)},
			[]float64{float64(r.Size.X), float64(r.Size.Y)},
		)
		if err != nil {
			return nil, fmt.Errorf("%w: room %d: %v", ErrInvalidRoom, i, err)
		}
		ix.tree.Insert(&roomEntry{index: i, room: r, bbox: bbox})
	}

	return ix, nil
}

// Len returns the number of indexed rooms.
func (ix *RoomIndex) Len() int { return ix.tree.Size() }

// At returns the index of the room covering pos.
func (ix *RoomIndex) At(pos geom.Vec2Int) (int, bool) {
	q, err := rtreego.NewRect(
		rtreego.Point{float64(pos.X) + shrink, float64(pos.Y) + shrink},
		[]float64{1 - 2*shrink, 1 - 2*shrink},
	)
	if err != nil {
		return 0, false
	}
	for _, s := range ix.tree.SearchIntersect(q) {
		e := s.(*roomEntry)
		if e.room.Contains(pos) {
			return e.index, true
		}
	}

	return 0, false
}

// Overlapping returns the indices of indexed rooms sharing a cell with r,
// in ascending order.
func (ix *RoomIndex) Overlapping(r Room) []int {
	if r.Size.X <= 0 || r.Size.Y <= 0 {
		return nil
	}
	q, err := rtreego.NewRect(
		rtreego.Point{float64(r.Position.X) + shrink, float64(r.Position.Y) + shrink},
		[]float64{float64(r.Size.X) - 2*shrink, float64(r.Size.Y) - 2*shrink},
	)
	if err != nil {
		return nil
	}

	var out []int
	for _, s := range ix.tree.SearchIntersect(q) {
		e := s.(*roomEntry)
		if e.room.Intersects(r) {
			out = append(out, e.index)
		}
	}
	slices.Sort(out)

	return out
}

// Room returns the i-th indexed room.
func (ix *RoomIndex) Room(i int) Room { return ix.rooms[i] }
