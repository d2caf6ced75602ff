package cover_test

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/katalvlaran/teamcover/bipartite"
)

// buildGraph registers the first column on SideA and the second on SideB.
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

// randomGraph builds A ids 1..nA and B ids 51..50+nB with edge probability p.
func randomGraph(rng *rand.Rand, nA, nB int, p float64) *bipartite.Graph {
	g := bipartite.MustNew(bipartite.WithIDBound(100))
	for i := 1; i <= nA; i++ {
		g.AddVertex(bipartite.ID(i), bipartite.SideA)
	}
	for j := 1; j <= nB; j++ {
		g.AddVertex(bipartite.ID(50+j), bipartite.SideB)
	}
	for i := 1; i <= nA; i++ {
		for j := 1; j <= nB; j++ {
			if rng.Float64() < p {
				g.AddEdge(bipartite.ID(i), bipartite.ID(50+j))
			}
		}
	}

	return g
}

// bruteForce enumerates vertex subsets of g (at most 20 vertices) and
// returns the minimum cover size plus, per vertex, whether some minimum
// cover contains it.
func bruteForce(t testing.TB, g *bipartite.Graph) (int, map[bipartite.ID]bool) {
	t.Helper()
	vs := g.Vertices()
	if len(vs) > 20 {
		t.Fatalf("bruteForce: %d vertices is too many", len(vs))
	}
	index := make(map[bipartite.ID]uint, len(vs))
	for i, v := range vs {
		index[v] = uint(i)
	}
	edges := g.Edges()

	best := len(vs) + 1
	var members []uint32
	for mask := uint32(0); mask < 1<<len(vs); mask++ {
		size := bits.OnesCount32(mask)
		if size > best {
			continue
		}
		ok := true
		for _, e := range edges {
			if mask&(1<<index[e.A]) == 0 && mask&(1<<index[e.B]) == 0 {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		if size < best {
			best = size
			members = members[:0]
		}
		members = append(members, mask)
	}

	in := make(map[bipartite.ID]bool, len(vs))
	for _, mask := range members {
		for v, i := range index {
			if mask&(1<<i) != 0 {
				in[v] = true
			}
		}
	}

	return best, in
}
