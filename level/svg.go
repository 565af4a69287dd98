package level

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// LoadRoomsSVG reads every <rect> of an SVG drawing as a room. Coordinates
// are divided by cellSize: the corner is floored, the extent rounded.
func LoadRoomsSVG(r io.Reader, cellSize float64) ([]Room, error) {
	if !(cellSize > 0) || math.IsInf(cellSize, 0) {
		return nil, fmt.Errorf("%w: cell_size %g must be positive", ErrInvalidConfig, cellSize)
	}
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, fmt.Errorf("level: parse svg: %w", err)
	}

	rects := root.FindAll("rect")
	if len(rects) == 0 {
		return nil, ErrNoRooms
	}
	rooms := make([]Room, 0, len(rects))
	for i, el := range rects {
		var v [4]float64
		for j, name := range [...]string{"x", "y", "width", "height"} {
			s, ok := el.Attributes[name]
			if !ok && j < 2 {
				continue
			}
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: rect %d %s=%q", ErrInvalidRoom, i, name, s)
			}
			v[j] = f / cellSize
		}
		room := NewRoom(
			int(math.Floor(v[0])), int(math.Floor(v[1])),
			int(math.Round(v[2])), int(math.Round(v[3])),
		)
		if room.Size.X <= 0 || room.Size.Y <= 0 {
			return nil, fmt.Errorf("%w: rect %d size %v", ErrInvalidRoom, i, room.Size)
		}
		rooms = append(rooms, room)
	}

	return rooms, nil
}

// LoadRoomsSVGFile is LoadRoomsSVG on the named file.
func LoadRoomsSVGFile(path string, cellSize float64) ([]Room, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("level: open rooms: %w", err)
	}
	defer f.Close()

	return LoadRoomsSVG(f, cellSize)
}
