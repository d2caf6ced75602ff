package matching_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/teamcover/bipartite"
	"github.com/katalvlaran/teamcover/matching"
)

// buildGraph registers A ids from the first column and B ids from the
// second, in order of appearance, then adds every pair as an edge.
func buildGraph(t testing.TB, pairs [][2]bipartite.ID) *bipartite.Graph {
	t.Helper()
	g := bipartite.MustNew()
	for _, p := range pairs {
		g.AddVertex(p[0], bipartite.SideA)
		g.AddVertex(p[1], bipartite.SideB)
		g.AddEdge(p[0], p[1])
	}

	return g
}

// randomGraph builds a graph with nA + nB vertices (A: 1..nA, B: 101..100+nB)
// and each cross pair present with probability p.
func randomGraph(rng *rand.Rand, nA, nB int, p float64) *bipartite.Graph {
	g := bipartite.MustNew(bipartite.WithIDBound(200))
	for i := 1; i <= nA; i++ {
		g.AddVertex(bipartite.ID(i), bipartite.SideA)
	}
	for j := 1; j <= nB; j++ {
		g.AddVertex(bipartite.ID(100+j), bipartite.SideB)
	}
	for i := 1; i <= nA; i++ {
		for j := 1; j <= nB; j++ {
			if rng.Float64() < p {
				g.AddEdge(bipartite.ID(i), bipartite.ID(100+j))
			}
		}
	}

	return g
}

// kuhnSize is an independent O(V·E) maximum matching used as an oracle.
func kuhnSize(g *bipartite.Graph) int {
	mateB := make(map[bipartite.ID]bipartite.ID)
	var try func(a bipartite.ID, seen map[bipartite.ID]bool) bool
	try = func(a bipartite.ID, seen map[bipartite.ID]bool) bool {
		for _, b := range g.Neighbors(a) {
			if seen[b] {
				continue
			}
			seen[b] = true
			prev, ok := mateB[b]
			if !ok || try(prev, seen) {
				mateB[b] = a
				return true
			}
		}
		return false
	}

	size := 0
	for _, a := range g.SideVertices(bipartite.SideA) {
		if try(a, map[bipartite.ID]bool{}) {
			size++
		}
	}

	return size
}

// requireValidMatching checks mutual consistency and edge membership.
func requireValidMatching(t testing.TB, g *bipartite.Graph, m *matching.Matching) {
	t.Helper()
	require.NoError(t, m.Validate(g))
	for _, p := range m.Pairs() {
		require.Equal(t, p.A, m.MateOfB(p.B), "mate mismatch for pair %v", p)
	}
	matchedB := 0
	for _, b := range g.SideVertices(bipartite.SideB) {
		if a := m.MateOfB(b); a != bipartite.NIL {
			require.Equal(t, b, m.MateOfA(a))
			matchedB++
		}
	}
	require.Equal(t, m.Size(), matchedB)
	require.Len(t, m.Pairs(), m.Size())
}
