package matching_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/teamcover/bipartite"
	"github.com/katalvlaran/teamcover/matching"
)

// BenchmarkHopcroftKarp_Reference runs the reference problem size:
// 1000 + 1000 employees and 10000 random teams.
func BenchmarkHopcroftKarp_Reference(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	g := bipartite.MustNew()
	for i := 1; i <= 1000; i++ {
		g.AddVertex(bipartite.ID(i), bipartite.SideA)
		g.AddVertex(bipartite.ID(1000+i), bipartite.SideB)
	}
	for g.EdgeCount() < 10000 {
		g.AddEdge(bipartite.ID(1+rng.Intn(1000)), bipartite.ID(1001+rng.Intn(1000)))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matching.HopcroftKarp(g)
	}
}

// BenchmarkHopcroftKarp_Path forces long augmenting paths.
func BenchmarkHopcroftKarp_Path(b *testing.B) {
	g, err := bipartite.Path(1999)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matching.HopcroftKarp(g)
	}
}
