package pathfind

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvlgen/geom"
	"github.com/katalvlaran/lvlgen/grid"
	"github.com/katalvlaran/lvlgen/pqueue"
	"github.com/zyedidia/generic/mapset"
)

// New returns a Pathfinder over the rectangle [offset, offset+size).
func New(size, offset geom.Vec2Int, opts ...Option) *Pathfinder {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Pathfinder{size: size, offset: offset, options: cfg}
}

// FindPath returns the cheapest path from start to end, both inclusive.
//
// Preconditions and validation (in order):
//  1. cost must be non-nil (ErrNilCostFunc).
//  2. start and end must be in bounds (ErrOutOfBounds).
//
// Outcomes:
//   - path, nil          when the target was reached; path[0] == start.
//   - nil, ErrNoPath     when every reachable cell was expanded first.
//   - nil, ErrSearchLimit when MaxExpansions ran out.
//   - nil, ErrNegativeCost when cost returned an invalid step cost.
func (p *Pathfinder) FindPath(start, end geom.Vec2Int, cost CostFunc) ([]geom.Vec2Int, error) {
	if cost == nil {
		return nil, ErrNilCostFunc
	}

	r := &runner{
		options: p.options,
		nodes:   grid.New[*Node](p.size, p.offset),
		closed:  mapset.New[geom.Vec2Int](),
		open:    pqueue.New[*Node, float64](64),
		cost:    cost,
	}
	for _, pos := range []geom.Vec2Int{start, end} {
		if !r.nodes.InBounds(pos) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
		}
	}

	r.init(start)

	return r.process(end)
}

// Bounds returns the searched rectangle as (size, offset).
func (p *Pathfinder) Bounds() (size, offset geom.Vec2Int) {
	return p.size, p.offset
}

// runner holds the mutable state for a single FindPath execution.
type runner struct {
	options Options
	// nodes maps position → node, created on first touch.
	nodes *grid.Grid2D[*Node]
	// closed holds finalized positions.
	closed mapset.Set[geom.Vec2Int]
	// open is the frontier ordered by Cost.
	open     *pqueue.PriorityQueue[*Node, float64]
	cost     CostFunc
	expanded int
}

// node returns the node at pos, creating it at cost +Inf on first access.
func (r *runner) node(pos geom.Vec2Int) *Node {
	if n := r.nodes.At(pos); n != nil {
		return n
	}
	n := &Node{Position: pos, Cost: math.Inf(1)}
	r.nodes.Put(pos, n)

	return n
}

// init seeds the frontier with the start node at cost 0.
func (r *runner) init(start geom.Vec2Int) {
	s := r.node(start)
	s.Cost = 0
	r.open.Enqueue(s, 0)
}

// process is the main loop: pop the cheapest node, stop at the target,
// otherwise close it and relax its neighbours.
func (r *runner) process(end geom.Vec2Int) ([]geom.Vec2Int, error) {
	for r.open.Count() > 0 {
		current, err := r.open.Dequeue()
		if err != nil {
			return nil, err
		}
		if current.Position == end {
			return reconstruct(current), nil
		}
		if r.closed.Has(current.Position) {
			continue
		}
		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			return nil, fmt.Errorf("%w: %d nodes expanded", ErrSearchLimit, r.expanded)
		}
		r.closed.Put(current.Position)
		r.expanded++

		if err := r.relax(current); err != nil {
			return nil, err
		}
	}

	return nil, ErrNoPath
}

// relax offers every open neighbour of current a route through current.
// Only strictly cheaper routes replace the recorded one.
func (r *runner) relax(current *Node) error {
	for _, d := range grid.NeighborOffsets(r.options.Connectivity) {
		pos := current.Position.Add(d)
		if !r.nodes.InBounds(pos) || r.closed.Has(pos) {
			continue
		}

		neighbor := r.node(pos)
		step := r.cost(current, neighbor)
		if !step.Traversable {
			continue
		}
		if step.Cost < 0 || math.IsNaN(step.Cost) {
			return fmt.Errorf("%w: %v→%v cost=%g", ErrNegativeCost, current.Position, pos, step.Cost)
		}

		newCost := current.Cost + step.Cost
		if newCost >= neighbor.Cost {
			continue
		}
		neighbor.Cost = newCost
		neighbor.Previous = current

		if _, queued := r.open.TryGetPriority(neighbor); queued {
			if err := r.open.UpdatePriority(neighbor, newCost); err != nil {
				return err
			}
			continue
		}
		r.open.Enqueue(neighbor, newCost)
	}

	return nil
}

// reconstruct follows back-pointers from the target and reverses them.
func reconstruct(target *Node) []geom.Vec2Int {
	var path []geom.Vec2Int
	for n := target; n != nil; n = n.Previous {
		path = append(path, n.Position)
	}
	slices.Reverse(path)

	return path
}

// TotalCost replays cost along path and returns the accumulated cost.
// ok is false when the path has a non-traversable step.
func TotalCost(path []geom.Vec2Int, cost CostFunc) (total float64, ok bool) {
	if len(path) == 0 {
		return 0, false
	}
	prev := &Node{Position: path[0], Cost: 0}
	for _, pos := range path[1:] {
		next := &Node{Position: pos, Cost: math.Inf(1)}
		step := cost(prev, next)
		if !step.Traversable {
			return total, false
		}
		total += step.Cost
		next.Cost = total
		next.Previous = prev
		prev = next
	}

	return total, true
}
