// SPDX-License-Identifier: MIT
// Package: matching
//
// matching.go implements Matching, a bidirectional Side-A ↔ Side-B map.
//
// Contract:
//   - mateA[a] == b iff mateB[b] == a, for every a, b; NIL means unmatched.
//   - size equals the number of non-NIL entries in mateA.
//   - SetPair and ClearPair are the only mutators and preserve both facts.

package matching

import (
	"fmt"

	"github.com/katalvlaran/teamcover/bipartite"
)

// Pair is one matched edge.
type Pair struct {
	A, B bipartite.ID
}

// Matching maps Side-A vertices to Side-B vertices and back.
type Matching struct {
	mateA []bipartite.ID
	mateB []bipartite.ID
	size  int
}

// NewMatching returns an empty matching that accepts ids in (0, bound).
func NewMatching(bound int) *Matching {
	if bound < 0 {
		bound = 0
	}

	return &Matching{
		mateA: make([]bipartite.ID, bound),
		mateB: make([]bipartite.ID, bound),
	}
}

func (m *Matching) inRange(id bipartite.ID) bool {
	return id > bipartite.NIL && int(id) < len(m.mateA)
}

// Bound returns the exclusive id bound the matching was created with.
func (m *Matching) Bound() int {
	return len(m.mateA)
}

// SetPair matches a with b. Any previous partner of a and any previous
// partner of b become unmatched first. It returns false, changing nothing,
// if either id is NIL or out of range, or if a == b (a vertex has one side).
// Complexity: O(1).
func (m *Matching) SetPair(a, b bipartite.ID) bool {
	if a == b || !m.inRange(a) || !m.inRange(b) {
		return false
	}
	if m.mateA[a] == b {
		return true
	}
	if old := m.mateA[a]; old != bipartite.NIL {
		m.mateB[old] = bipartite.NIL
		m.size--
	}
	if old := m.mateB[b]; old != bipartite.NIL {
		m.mateA[old] = bipartite.NIL
		m.size--
	}
	m.mateA[a] = b
	m.mateB[b] = a
	m.size++

	return true
}

// ClearPair unmatches a and its partner. It reports whether a was matched.
// Complexity: O(1).
func (m *Matching) ClearPair(a bipartite.ID) bool {
	if !m.inRange(a) || m.mateA[a] == bipartite.NIL {
		return false
	}
	m.mateB[m.mateA[a]] = bipartite.NIL
	m.mateA[a] = bipartite.NIL
	m.size--

	return true
}

// MateOfA returns the Side-B partner of a, or NIL.
func (m *Matching) MateOfA(a bipartite.ID) bipartite.ID {
	if !m.inRange(a) {
		return bipartite.NIL
	}

	return m.mateA[a]
}

// MateOfB returns the Side-A partner of b, or NIL.
func (m *Matching) MateOfB(b bipartite.ID) bipartite.ID {
	if !m.inRange(b) {
		return bipartite.NIL
	}

	return m.mateB[b]
}

// IsMatched reports whether id is matched on either side.
func (m *Matching) IsMatched(id bipartite.ID) bool {
	return m.MateOfA(id) != bipartite.NIL || m.MateOfB(id) != bipartite.NIL
}

// Size returns the number of matched pairs.
func (m *Matching) Size() int {
	return m.size
}

// Pairs returns all matched pairs ordered by ascending A id.
// Complexity: O(bound).
func (m *Matching) Pairs() []Pair {
	out := make([]Pair, 0, m.size)
	for a, b := range m.mateA {
		if b != bipartite.NIL {
			out = append(out, Pair{A: bipartite.ID(a), B: b})
		}
	}

	return out
}

// Clone returns an independent copy.
func (m *Matching) Clone() *Matching {
	c := &Matching{
		mateA: make([]bipartite.ID, len(m.mateA)),
		mateB: make([]bipartite.ID, len(m.mateB)),
		size:  m.size,
	}
	copy(c.mateA, m.mateA)
	copy(c.mateB, m.mateB)

	return c
}

// Validate checks that m was sized for g and that every pair is an edge
// of g with its A endpoint on SideA.
// Complexity: O(bound · d).
func (m *Matching) Validate(g *bipartite.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	if len(m.mateA) != g.IDBound() {
		return fmt.Errorf("%w: matching %d, graph %d", ErrBoundMismatch, len(m.mateA), g.IDBound())
	}
	for _, p := range m.Pairs() {
		if g.SideOf(p.A) != bipartite.SideA || !g.HasEdge(p.A, p.B) {
			return fmt.Errorf("%w: (%d, %d)", ErrNotAnEdge, p.A, p.B)
		}
	}

	return nil
}
