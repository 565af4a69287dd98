// Package lvlgen connects hand-placed rooms into a playable level: it builds
// a candidate graph over room centers, keeps a cheap spanning subset of it and
// carves each chosen connection into a grid of cell types.
//
// What is in the box?
//
//	geom/         — Vec2, Vec2Int, Vec3, Vertex, Edge and Triangle primitives
//	delaunay/     — Bowyer–Watson triangulation of room centers
//	prim_kruskal/ — minimum spanning tree (Kruskal with union-find, or Prim)
//	pqueue/       — generic min-priority queue with priority updates
//	grid/         — sparse, offset-addressed Grid2D and region search
//	pathfind/     — cheapest-route search on a bounded grid with a cost function
//	level/        — the pipeline: config, room index, corridors, walls
//	preview/      — ASCII and PNG renderings of a generated level
//	cmd/levelgen  — command-line front end for YAML or SVG room lists
//
// Pipeline:
//
//	rooms ─► centers ─► Delaunay ─► MST (+ loop edges) ─► pathfind ─► CellType grid
//
// Quick ASCII example (two rooms, one corridor):
//
//	 ...     ...
//	 .+.:::::.+.
//	 ...     ...
//
// Every algorithm is synchronous and deterministic for a fixed seed.
//
//	go install github.com/katalvlaran/lvlgen/cmd/levelgen@latest
package lvlgen
