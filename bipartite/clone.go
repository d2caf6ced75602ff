// File: clone.go
// Role: Deep copies of a Graph, whole or minus one vertex.
// Determinism:
//   - Registration order and neighbor insertion order survive the copy,
//     so algorithms run on a clone break ties exactly as on the source.

package bipartite

// Clone returns a deep copy of g with the same bounds.
// Complexity: O(IDBound + E).
func (g *Graph) Clone() *Graph {
	return g.Without(NIL)
}

// Without returns a deep copy of g that omits vertex id and every edge
// incident to it. If id is not registered the result equals Clone().
// The omitted vertex frees one unit of capacity in the copy.
// Complexity: O(IDBound + E).
func (g *Graph) Without(id ID) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := newGraph(g.maxVertices, g.idBound)
	for _, v := range g.order {
		if v == id {
			continue
		}
		clone.side[v] = g.side[v]
		clone.order = append(clone.order, v)

		nbrs := make([]ID, 0, len(g.adj[v]))
		for _, w := range g.adj[v] {
			if w != id {
				nbrs = append(nbrs, w)
			}
		}
		clone.adj[v] = nbrs
		// count each edge once, from its A endpoint
		if g.side[v] == SideA {
			clone.edges += len(nbrs)
		}
	}

	return clone
}
