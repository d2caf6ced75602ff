package cover_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/teamcover/bipartite"
	"github.com/katalvlaran/teamcover/cover"
	"github.com/katalvlaran/teamcover/matching"
)

func referenceGraph() *bipartite.Graph {
	rng := rand.New(rand.NewSource(1))
	g := bipartite.MustNew()
	for i := 1; i <= 1000; i++ {
		g.AddVertex(bipartite.ID(1000+i-1), bipartite.SideA)
		g.AddVertex(bipartite.ID(2000+i-1), bipartite.SideB)
	}
	for g.EdgeCount() < 10000 {
		g.AddEdge(bipartite.ID(1000+rng.Intn(1000)), bipartite.ID(2000+rng.Intn(1000)))
	}

	return g
}

// BenchmarkKonig measures extraction alone on the reference problem size.
func BenchmarkKonig(b *testing.B) {
	g := referenceGraph()
	mres, err := matching.HopcroftKarp(g)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cover.Konig(g, mres.Matching)
	}
}

// BenchmarkMinimumVertexCover_Include includes the second solve on G − v.
func BenchmarkMinimumVertexCover_Include(b *testing.B) {
	g := referenceGraph()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cover.MinimumVertexCover(g, cover.WithInclude(1009))
	}
}
