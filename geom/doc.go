// Package geom defines the value types shared by every stage of the level
// generator: plain numeric vectors, identity-bearing vertices, undirected
// edges and triangles with their circumcircle predicates.
//
// What:
//
//   - Vec2, Vec2Int, Vec3: engine-free vectors carrying only arithmetic and distance.
//   - Vertex: a graph node with a position. Equality is by identity (pointer),
//     never by coordinates; two distinct vertices may share a position.
//   - Edge: an unordered pair of vertices. Equal is undirected identity equality,
//     AlmostEqual compares endpoint coordinates within Epsilon, Key yields a
//     comparable orientation-free value for hash sets.
//   - Triangle: three vertices plus CircumCircleContains, ContainsPoint and
//     ContainsVertex tests.
//
// Numeric robustness:
//
//   - Circumcircle reports ok=false for collinear corners instead of dividing by
//     zero; CircumCircleContains is false for such triangles, so NaN never leaks
//     into membership tests. Membership itself uses the InCircle determinant
//     rather than the rounded center, so grid-aligned cocircular points agree.
//   - Collinear scales its area tolerance with the squared side length.
//
// Distances are computed through github.com/paulmach/orb/planar so the whole
// module agrees on a single Euclidean metric.
package geom
