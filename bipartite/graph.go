// SPDX-License-Identifier: MIT
// Package: bipartite
//
// graph.go implements vertex and edge mutation plus read-only queries.
//
// Locking:
//   - Mutations take g.mu for writing, queries take it for reading.
//   - Every slice handed to callers is a fresh copy.

package bipartite

// inRange reports whether id can index the per-vertex tables.
func (g *Graph) inRange(id ID) bool {
	return id > NIL && int(id) < g.idBound
}

// AddVertex registers id on the given side.
// It returns false, leaving the graph unchanged, when id is already
// registered (on either side), id is outside (0, IDBound), side is not
// SideA or SideB, or MaxVertices vertices are already present.
// Complexity: O(1).
func (g *Graph) AddVertex(id ID, side Side) bool {
	if side != SideA && side != SideB {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inRange(id) || g.side[id] != SideNone {
		return false
	}
	if len(g.order) >= g.maxVertices {
		return false
	}
	g.side[id] = side
	g.order = append(g.order, id)

	return true
}

// AddEdge connects a Side-A vertex with a Side-B vertex. The endpoints may
// be passed in either order. Both must already be registered on opposite
// sides; otherwise AddEdge returns false. An existing edge is detected by a
// linear scan of the A endpoint's neighbors and also yields false.
// Complexity: O(deg(a)).
func (g *Graph) AddEdge(u, v ID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	a, b, ok := g.orient(u, v)
	if !ok {
		return false
	}
	if containsID(g.adj[a], b) {
		return false
	}
	g.adj[a] = append(g.adj[a], b)
	g.adj[b] = append(g.adj[b], a)
	g.edges++

	return true
}

// orient returns (a, b) with a on SideA and b on SideB, or ok=false when
// the pair cannot form an edge. Caller holds g.mu.
func (g *Graph) orient(u, v ID) (a, b ID, ok bool) {
	if !g.inRange(u) || !g.inRange(v) || u == v {
		return NIL, NIL, false
	}
	su, sv := g.side[u], g.side[v]
	switch {
	case su == SideA && sv == SideB:
		return u, v, true
	case su == SideB && sv == SideA:
		return v, u, true
	default:
		return NIL, NIL, false
	}
}

func containsID(list []ID, id ID) bool {
	for _, x := range list {
		if x == id {
			return true
		}
	}

	return false
}

// HasVertex reports whether id is registered.
func (g *Graph) HasVertex(id ID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.inRange(id) && g.side[id] != SideNone
}

// SideOf returns the side of id, or SideNone if id is not registered.
func (g *Graph) SideOf(id ID) Side {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(id) {
		return SideNone
	}

	return g.side[id]
}

// HasEdge reports whether u and v are adjacent; argument order is irrelevant.
// Complexity: O(deg).
func (g *Graph) HasEdge(u, v ID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	a, b, ok := g.orient(u, v)

	return ok && containsID(g.adj[a], b)
}

// Neighbors returns the neighbors of v in insertion order. The result is
// empty (never nil) for isolated, unregistered or out-of-range ids.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v ID) []ID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(v) {
		return []ID{}
	}
	out := make([]ID, len(g.adj[v]))
	copy(out, g.adj[v])

	return out
}

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v ID) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(v) {
		return 0
	}

	return len(g.adj[v])
}

// Vertices returns every registered id in registration order.
// Complexity: O(V).
func (g *Graph) Vertices() []ID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]ID, len(g.order))
	copy(out, g.order)

	return out
}

// SideVertices returns the registered ids of one side in registration order.
func (g *Graph) SideVertices(side Side) []ID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]ID, 0, len(g.order))
	for _, id := range g.order {
		if g.side[id] == side {
			out = append(out, id)
		}
	}

	return out
}

// Edges returns all edges as (A, B) pairs: Side-A vertices in registration
// order, each followed by its neighbors in insertion order.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edges)
	for _, a := range g.order {
		if g.side[a] != SideA {
			continue
		}
		for _, b := range g.adj[a] {
			out = append(out, Edge{A: a, B: b})
		}
	}

	return out
}

// VertexCount returns the number of registered vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// IDBound returns the exclusive upper bound on identifiers. Per-vertex
// tables sized IDBound can be indexed by any valid id.
func (g *Graph) IDBound() int {
	return g.idBound
}

// MaxVertices returns the vertex capacity.
func (g *Graph) MaxVertices() int {
	return g.maxVertices
}
