// Package level turns a set of placed rooms into a rasterized level: a
// CellType grid plus the list of corridors connecting the rooms.
//
// Pipeline (Generator.Generate):
//
//  1. Validate rooms against the grid bounds and each other (R-tree index).
//  2. Rasterize rooms: interior cells Floor, the center cell FloorCenter.
//  3. Triangulate room centers (delaunay).
//  4. Reduce the triangulation to its MST (prim_kruskal), then re-add each
//     remaining edge with probability Config.LoopChance so the level has loops.
//  5. For every corridor edge, search a cell path between the two room
//     centers (pathfind) and write Path onto empty cells. Existing Path cells
//     are cheap to cross, so later corridors tend to merge into earlier ones.
//  6. Optionally widen corridors (ExpandedPath) and surround everything
//     walkable with Wall.
//
// Randomness enters only through the injected *rand.Rand (step 4). With a
// fixed seed and fixed room order the output is identical across runs.
//
// Rooms come from YAML (LoadRooms) or from the <rect> elements of an SVG
// drawing (LoadRoomsSVG). Level.Connected checks the result by flood fill.
//
// A Generator owns its *rand.Rand and is not safe for concurrent use.
package level
