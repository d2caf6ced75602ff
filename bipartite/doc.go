// Package bipartite provides the array-indexed graph store used by the
// matching and cover packages: vertices split into two disjoint sides
// (SideA, SideB) and an unweighted adjacency relation between them.
//
// What
//
//   - Vertices are small positive integers (ID) below a fixed IDBound, so
//     every per-vertex table is a dense slice indexed by ID, not a map.
//   - The number of registered vertices is capped by MaxVertices; the store
//     never grows past it.
//   - Each vertex keeps its neighbors in insertion order. That order drives
//     tie-breaks in the matching engine and therefore must be reproducible.
//
// Forgiving API
//
// Duplicate vertices and duplicate edges are a normal occurrence (the same
// employee appears in many teams), so AddVertex and AddEdge report success
// with a bool rather than an error:
//
//	g := bipartite.MustNew()
//	g.AddVertex(1009, bipartite.SideA) // true
//	g.AddVertex(1009, bipartite.SideA) // false, already present
//	g.AddVertex(2001, bipartite.SideB) // true
//	g.AddEdge(1009, 2001)              // true
//	g.AddEdge(2001, 1009)              // false, same edge
//
// AddEdge never auto-registers endpoints. An edge between unregistered
// vertices, inside one side, or from a vertex to itself is rejected and the
// store is left untouched.
//
// Options
//
//   - WithMaxVertices(n): vertex capacity (default DefaultMaxVertices).
//   - WithIDBound(n):     exclusive upper bound on ids (default DefaultIDBound).
//
// Invalid option values surface as ErrOptionViolation from New.
//
// Concurrency
//
// A single sync.RWMutex guards the store. Queries return copies, so callers
// may hold on to neighbor slices while the graph keeps changing.
//
// Complexity (V = vertices, E = edges, d = degree)
//
//   - AddVertex O(1), AddEdge O(d), HasEdge O(d), Neighbors O(d)
//   - Vertices O(V), Edges O(V + E), Clone/Without O(IDBound + E)
package bipartite
