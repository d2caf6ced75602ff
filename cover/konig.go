// SPDX-License-Identifier: MIT
// Package: cover
//
// konig.go turns a maximum matching into a minimum vertex cover.
//
// Contract:
//   - The matching must belong to the graph (same id bound, pairs are edges).
//   - The returned cover is sorted ascending and has exactly m.Size() ids.
//   - The reachability set T lives in a dense []bool indexed by id and is
//     discarded when Konig returns.

package cover

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/teamcover/bipartite"
	"github.com/katalvlaran/teamcover/matching"
)

// Konig returns the minimum vertex cover (A \ T) ∪ (B ∩ T), where T holds
// the vertices alternating-reachable from free Side-A vertices.
//
// Steps:
//  1. Validate m against g.
//  2. Seed the stack with every free Side-A vertex (all join T).
//  3. Pop a; for each neighbor b over an unmatched edge not yet in T:
//     add b; b must be matched (else ErrNotMaximum); push its mate if new.
//  4. Collect the cover and check |cover| == m.Size().
//
// Complexity: O(IDBound + V + E) time, O(IDBound) extra space.
func Konig(g *bipartite.Graph, m *matching.Matching) ([]bipartite.ID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if m == nil {
		return nil, ErrMatchingNil
	}
	if err := m.Validate(g); err != nil {
		return nil, fmt.Errorf("cover: %w", err)
	}

	inT := make([]bool, g.IDBound())
	stack := make([]bipartite.ID, 0, g.VertexCount())
	for _, a := range g.SideVertices(bipartite.SideA) {
		if m.MateOfA(a) == bipartite.NIL {
			inT[a] = true
			stack = append(stack, a)
		}
	}

	for len(stack) > 0 {
		a := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		mate := m.MateOfA(a)
		for _, b := range g.Neighbors(a) {
			if b == mate || inT[b] {
				continue
			}
			inT[b] = true

			next := m.MateOfB(b)
			if next == bipartite.NIL {
				return nil, fmt.Errorf("%w: free vertex %d is reachable from %d", ErrNotMaximum, b, a)
			}
			if !inT[next] {
				inT[next] = true
				stack = append(stack, next)
			}
		}
	}

	vertices := g.Vertices()
	cover := make([]bipartite.ID, 0, m.Size())
	for _, v := range vertices {
		switch g.SideOf(v) {
		case bipartite.SideA:
			if !inT[v] {
				cover = append(cover, v)
			}
		case bipartite.SideB:
			if inT[v] {
				cover = append(cover, v)
			}
		}
	}
	if len(cover) != m.Size() {
		return nil, fmt.Errorf("%w: cover %d, matching %d", ErrSizeMismatch, len(cover), m.Size())
	}
	sortIDs(cover)

	return cover, nil
}

// MinimumVertexCover computes a minimum vertex cover of g.
//
// Steps:
//  1. Run HopcroftKarp (biased toward Include, else Priority) and Konig.
//  2. If Include is set, registered, not yet covered and not isolated,
//     solve g.Without(Include); when that cover is one smaller, add
//     Include to it and use it instead.
func MinimumVertexCover(g *bipartite.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	bias := o.Priority
	if o.Include != bipartite.NIL {
		bias = o.Include
	}

	phases, size, vertices, err := solve(g, bias, o.Logger)
	if err != nil {
		return nil, err
	}
	res := &Result{Vertices: vertices, MatchingSize: size, Phases: phases}

	if pin := o.Include; pin != bipartite.NIL && g.HasVertex(pin) {
		res.Included = res.Contains(pin)
		// an isolated vertex never belongs to a minimum cover
		if !res.Included && g.Degree(pin) > 0 {
			_, subSize, sub, subErr := solve(g.Without(pin), bipartite.NIL, o.Logger)
			if subErr != nil {
				return nil, subErr
			}
			if subSize == size-1 {
				res.Vertices = append(sub, pin)
				sortIDs(res.Vertices)
				res.Included = true
			}
		}
	}

	o.Logger.WithFields(logrus.Fields{
		"size":     res.Size(),
		"phases":   res.Phases,
		"include":  o.Include,
		"included": res.Included,
	}).Debug("minimum vertex cover computed")

	return res, nil
}

// solve runs Hopcroft–Karp and König on g.
func solve(g *bipartite.Graph, bias bipartite.ID, logger *logrus.Entry) (phases, size int, vertices []bipartite.ID, err error) {
	mres, err := matching.HopcroftKarp(g,
		matching.WithPriority(bias),
		matching.WithLogger(logger),
	)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("cover: %w", err)
	}
	vertices, err = Konig(g, mres.Matching)
	if err != nil {
		return 0, 0, nil, err
	}

	return mres.Phases, mres.Size(), vertices, nil
}

// Validate reports ErrUncovered for the first edge of g (in Edges order)
// with neither endpoint in ids. Ids outside the graph are ignored.
// Complexity: O(IDBound + V + E).
func Validate(g *bipartite.Graph, ids []bipartite.ID) error {
	if g == nil {
		return ErrGraphNil
	}
	in := make([]bool, g.IDBound())
	for _, id := range ids {
		if id > bipartite.NIL && int(id) < len(in) {
			in[id] = true
		}
	}
	for _, e := range g.Edges() {
		if !in[e.A] && !in[e.B] {
			return fmt.Errorf("%w: (%d, %d)", ErrUncovered, e.A, e.B)
		}
	}

	return nil
}

func sortIDs(ids []bipartite.ID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
