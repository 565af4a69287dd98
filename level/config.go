package level

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/lvlgen/geom"
	"gopkg.in/yaml.v3"
)

// Config holds the tunables of a generation run. Fields absent from a YAML
// document keep their DefaultConfig value.
type Config struct {
	// Size and Offset declare the level rectangle [Offset, Offset+Size).
	Size   geom.Vec2Int `yaml:"size"`
	Offset geom.Vec2Int `yaml:"offset"`

	// Seed feeds the RNG used for loop edges. 0 selects a fixed default seed.
	Seed int64 `yaml:"seed"`

	// LoopChance is the probability that a non-tree triangulation edge is
	// carved as an extra corridor.
	LoopChance float64 `yaml:"loop_chance"`

	// Step costs by the type of the entered cell.
	RoomCost  float64 `yaml:"room_cost"`
	EmptyCost float64 `yaml:"empty_cost"`
	PathCost  float64 `yaml:"path_cost"`

	// HeuristicWeight scales the distance-to-target term added to each step.
	HeuristicWeight float64 `yaml:"heuristic_weight"`

	// AvoidRooms forbids corridors from crossing rooms other than their endpoints.
	AvoidRooms bool `yaml:"avoid_rooms"`

	// ExpandPaths marks empty cells around corridors as ExpandedPath.
	ExpandPaths bool `yaml:"expand_paths"`

	// Walls surrounds walkable cells with Wall.
	Walls bool `yaml:"walls"`

	// MaxExpansions caps each corridor search; 0 means unlimited.
	MaxExpansions int `yaml:"max_expansions"`

	// CellSize is the world-space edge length of one cell.
	CellSize float64 `yaml:"cell_size"`
}

// DefaultConfig returns a 64×64 level with the corridor costs of the
// classic room-and-hallway generator: rooms 10, empty 5, corridors 1,
// plus the straight-line distance to the target.
func DefaultConfig() Config {
	return Config{
		Size:            geom.Vec2Int{X: 64, Y: 64},
		Offset:          geom.Vec2Int{},
		Seed:            0,
		LoopChance:      0.125,
		RoomCost:        10,
		EmptyCost:       5,
		PathCost:        1,
		HeuristicWeight: 1,
		AvoidRooms:      false,
		ExpandPaths:     false,
		Walls:           true,
		MaxExpansions:   0,
		CellSize:        1,
	}
}

// Validate checks every field range.
func (c Config) Validate() error {
	switch {
	case c.Size.X <= 0 || c.Size.Y <= 0:
		return fmt.Errorf("%w: size %v must be positive", ErrInvalidConfig, c.Size)
	case c.LoopChance < 0 || c.LoopChance > 1 || math.IsNaN(c.LoopChance):
		return fmt.Errorf("%w: loop_chance %g not in [0,1]", ErrInvalidConfig, c.LoopChance)
	case !nonNegative(c.RoomCost) || !nonNegative(c.EmptyCost) || !nonNegative(c.PathCost):
		return fmt.Errorf("%w: step costs must be non-negative", ErrInvalidConfig)
	case !nonNegative(c.HeuristicWeight):
		return fmt.Errorf("%w: heuristic_weight %g must be non-negative", ErrInvalidConfig, c.HeuristicWeight)
	case c.MaxExpansions < 0:
		return fmt.Errorf("%w: max_expansions %d must be non-negative", ErrInvalidConfig, c.MaxExpansions)
	case !(c.CellSize > 0) || math.IsInf(c.CellSize, 0):
		return fmt.Errorf("%w: cell_size %g must be positive", ErrInvalidConfig, c.CellSize)
	}

	return nil
}

func nonNegative(f float64) bool {
	return f >= 0 && !math.IsInf(f, 0)
}

// LoadConfig decodes YAML from r over DefaultConfig and validates the result.
// Unknown keys are rejected. An empty document yields DefaultConfig.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("level: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfigFile is LoadConfig on the named file.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("level: open config: %w", err)
	}
	defer f.Close()

	return LoadConfig(f)
}

// roomsDocument is the YAML layout of a room list.
type roomsDocument struct {
	Rooms []Room `yaml:"rooms"`
}

// LoadRooms decodes a YAML room list:
//
//	rooms:
//	  - position: {x: 2, y: 3}
//	    size: {x: 5, y: 4}
func LoadRooms(r io.Reader) ([]Room, error) {
	var doc roomsDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoRooms
		}
		return nil, fmt.Errorf("level: decode rooms: %w", err)
	}
	if len(doc.Rooms) == 0 {
		return nil, ErrNoRooms
	}

	return doc.Rooms, nil
}

// LoadRoomsFile is LoadRooms on the named file.
func LoadRoomsFile(path string) ([]Room, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("level: open rooms: %w", err)
	}
	defer f.Close()

	return LoadRooms(f)
}
