// Package converters provides two-way adapters between bipartite.Graph and
// gonum graphs (gonum.org/v1/gonum/graph).
//
//   - ToGonum(g) exports to a *simple.UndirectedGraph with node ids equal to
//     vertex ids.
//   - FromGonum(src, side, opts...) imports any graph.Graph, assigning sides
//     with a caller-supplied classifier. Nodes and neighbors are visited in
//     ascending id order, so the imported adjacency order is deterministic.
//
// Use these to feed teams maintained in gonum-based tooling into the cover
// computation, or to run gonum algorithms on a team graph.
package converters
