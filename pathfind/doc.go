// Package pathfind finds the cheapest 4-connected route between two cells of
// a bounded grid under a caller-supplied traversal cost.
//
// The search is uniform-cost (Dijkstra): the open node with the lowest
// accumulated cost is expanded next, its neighbours are relaxed through the
// CostFunc, and the path is rebuilt from back-pointers once the target is
// dequeued. The cost model is entirely the caller's: the same primitive finds
// "the cheapest open route between two rooms" or, with a cost that favours
// already-carved cells, "reuse existing corridors over carving new ones".
// A CostFunc may also add a distance-to-goal term to steer the search.
//
// Complexity:
//
//   - Time:  O(C·(n + log n)) for C expanded cells and n queued cells; the
//     queue locates nodes by linear scan when lowering a priority.
//   - Space: O(C).
//
// Node table:
//
//   - Nodes live in a grid.Grid2D keyed by position that is allocated per
//     FindPath call; every node starts at cost +Inf with no predecessor.
//     A Pathfinder therefore keeps no state between calls and may be shared.
//
// Errors (sentinel):
//
//   - ErrNoPath        the queue emptied before reaching the target. This is a
//     normal outcome; callers branch on it with errors.Is.
//   - ErrOutOfBounds   start or end lies outside the declared rectangle.
//   - ErrNilCostFunc   no cost function given.
//   - ErrNegativeCost  the cost function returned a negative or NaN cost.
//   - ErrSearchLimit   more than MaxExpansions nodes were expanded.
package pathfind
