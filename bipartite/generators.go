// SPDX-License-Identifier: MIT
// Package: bipartite
//
// generators.go builds canonical graphs for tests, examples and benchmarks.
//
// Contract:
//   - Complete(nA, nB): A ids 1..nA, B ids nA+1..nA+nB, every cross pair
//     emitted a-major (a asc, then b asc).
//   - Path(n): ids 1..n, odd on SideA, even on SideB, edges (i, i+1).
//   - Both return ErrTooFewVertices for empty input and ErrDoesNotFit when
//     the ids or the vertex count exceed the configured bounds.

package bipartite

import "fmt"

const (
	methodComplete = "Complete"
	methodPath     = "Path"
)

// Complete returns the complete bipartite graph K(nA, nB).
// Complexity: O(nA·nB) edges, each inserted in O(nB).
func Complete(nA, nB int, opts ...Option) (*Graph, error) {
	if nA < 1 || nB < 1 {
		return nil, fmt.Errorf("%s: nA=%d, nB=%d (each must be ≥ 1): %w",
			methodComplete, nA, nB, ErrTooFewVertices)
	}
	g, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err = g.fits(methodComplete, nA+nB); err != nil {
		return nil, err
	}

	for i := 1; i <= nA; i++ {
		g.AddVertex(ID(i), SideA)
	}
	for j := 1; j <= nB; j++ {
		g.AddVertex(ID(nA+j), SideB)
	}
	for i := 1; i <= nA; i++ {
		for j := 1; j <= nB; j++ {
			g.AddEdge(ID(i), ID(nA+j))
		}
	}

	return g, nil
}

// Path returns the path 1-2-...-n with alternating sides. Its minimum
// vertex cover has n/2 vertices.
// Complexity: O(n).
func Path(n int, opts ...Option) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d (must be ≥ 1): %w", methodPath, n, ErrTooFewVertices)
	}
	g, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err = g.fits(methodPath, n); err != nil {
		return nil, err
	}

	for i := 1; i <= n; i++ {
		side := SideA
		if i%2 == 0 {
			side = SideB
		}
		g.AddVertex(ID(i), side)
	}
	for i := 1; i < n; i++ {
		g.AddEdge(ID(i), ID(i+1))
	}

	return g, nil
}

// fits checks that ids 1..n are addressable and within capacity.
func (g *Graph) fits(method string, n int) error {
	if n >= g.idBound || n > g.maxVertices {
		return fmt.Errorf("%s: %d vertices (id bound %d, capacity %d): %w",
			method, n, g.idBound, g.maxVertices, ErrDoesNotFit)
	}

	return nil
}
