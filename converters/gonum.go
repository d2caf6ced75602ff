package converters

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/teamcover/bipartite"
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("converters: graph is nil")

	// ErrNotBipartite indicates an edge whose endpoints share a side.
	ErrNotBipartite = errors.New("converters: edge inside one side")

	// ErrInvalidNode indicates a node the bipartite store rejected
	// (id out of range, no side, or capacity exhausted).
	ErrInvalidNode = errors.New("converters: node rejected")
)

// ToGonum copies g into a new undirected gonum graph.
// Complexity: O(V + E).
func ToGonum(g *bipartite.Graph) *simple.UndirectedGraph {
	out := simple.NewUndirectedGraph()
	if g == nil {
		return out
	}
	for _, v := range g.Vertices() {
		out.AddNode(simple.Node(int64(v)))
	}
	for _, e := range g.Edges() {
		out.SetEdge(simple.Edge{F: simple.Node(int64(e.A)), T: simple.Node(int64(e.B))})
	}

	return out
}

// FromGonum builds a bipartite.Graph from src. side classifies every node
// id; returning SideNone rejects the node. Edge direction in src is ignored.
// Complexity: O(V log V + E log d).
func FromGonum(src graph.Graph, side func(id int64) bipartite.Side, opts ...bipartite.Option) (*bipartite.Graph, error) {
	if src == nil {
		return nil, ErrGraphNil
	}
	g, err := bipartite.New(opts...)
	if err != nil {
		return nil, err
	}

	nodes := sortedIDs(src.Nodes())
	for _, id := range nodes {
		if !g.AddVertex(bipartite.ID(id), side(id)) {
			return nil, fmt.Errorf("%w: node %d", ErrInvalidNode, id)
		}
	}
	for _, u := range nodes {
		for _, v := range sortedIDs(src.From(u)) {
			if g.SideOf(bipartite.ID(u)) == g.SideOf(bipartite.ID(v)) {
				return nil, fmt.Errorf("%w: %d–%d on side %s", ErrNotBipartite, u, v, g.SideOf(bipartite.ID(u)))
			}
			g.AddEdge(bipartite.ID(u), bipartite.ID(v))
		}
	}

	return g, nil
}

func sortedIDs(it graph.Nodes) []int64 {
	n := it.Len()
	if n < 0 {
		n = 0 // unknown length
	}
	ids := make([]int64, 0, n)
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
