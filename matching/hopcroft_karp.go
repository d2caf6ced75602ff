package matching

import (
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/teamcover/bipartite"
)

// inf marks an unlabeled or poisoned vertex.
const inf = math.MaxInt

// engine holds the per-run state of Hopcroft–Karp. All slices indexed by
// id are sized to the graph's IDBound.
type engine struct {
	nbrs    [][]bipartite.ID // Side-A id → neighbors in tie-break order
	roots   []bipartite.ID   // Side-A ids in tie-break order
	m       *Matching
	dist    []int // Side-A id → layer
	distNil int   // layer of the virtual NIL vertex
	queue   []bipartite.ID
}

// HopcroftKarp computes a maximum matching of g.
//
// Steps:
//  1. Apply options; snapshot Side-A adjacency, stable-sorted by Order (O(E log d)).
//  2. Repeat:
//     a. layer(): BFS from free Side-A vertices; stop if NIL stays unreachable.
//     b. augment() from every free root; count successes.
//     c. Fire OnPhase and log the phase.
//  3. Return the Matching and phase count.
//
// The graph is only read. "No augmenting path" is normal termination.
func HopcroftKarp(g *bipartite.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := newEngine(g, o.Order)
	res := &Result{Matching: e.m}

	for e.layer() {
		augmented := 0
		for _, a := range e.roots {
			if e.m.MateOfA(a) == bipartite.NIL && e.augment(a) {
				augmented++
			}
		}
		res.Phases++
		o.OnPhase(res.Phases, augmented)
		o.Logger.WithFields(logrus.Fields{
			"phase":     res.Phases,
			"augmented": augmented,
			"size":      e.m.Size(),
		}).Debug("matching phase complete")
	}

	return res, nil
}

func newEngine(g *bipartite.Graph, order Less) *engine {
	bound := g.IDBound()
	e := &engine{
		nbrs:  make([][]bipartite.ID, bound),
		roots: g.SideVertices(bipartite.SideA),
		m:     NewMatching(bound),
		dist:  make([]int, bound),
	}
	e.queue = make([]bipartite.ID, 0, len(e.roots))

	for _, a := range e.roots {
		e.nbrs[a] = g.Neighbors(a)
	}
	if order != nil {
		sortStable(e.roots, order)
		for _, a := range e.roots {
			sortStable(e.nbrs[a], order)
		}
	}

	return e
}

func sortStable(ids []bipartite.ID, less Less) {
	sort.SliceStable(ids, func(i, j int) bool { return less(ids[i], ids[j]) })
}

// layer runs the BFS half of a phase and reports whether NIL is reachable.
func (e *engine) layer() bool {
	e.queue = e.queue[:0]
	for _, a := range e.roots {
		if e.m.MateOfA(a) == bipartite.NIL {
			e.dist[a] = 0
			e.queue = append(e.queue, a)
		} else {
			e.dist[a] = inf
		}
	}
	e.distNil = inf

	for head := 0; head < len(e.queue); head++ {
		a := e.queue[head]
		// layers at or beyond NIL cannot lie on a shortest path
		if e.dist[a] >= e.distNil {
			continue
		}
		for _, b := range e.nbrs[a] {
			next := e.m.MateOfB(b)
			if next == bipartite.NIL {
				if e.distNil == inf {
					e.distNil = e.dist[a] + 1
				}
				continue
			}
			if e.dist[next] == inf {
				e.dist[next] = e.dist[a] + 1
				e.queue = append(e.queue, next)
			}
		}
	}

	return e.distNil != inf
}

// augment searches a shortest augmenting path from a along the layering
// and flips it on success. a is poisoned either way.
func (e *engine) augment(a bipartite.ID) bool {
	want := e.dist[a] + 1
	for _, b := range e.nbrs[a] {
		next := e.m.MateOfB(b)
		if next == bipartite.NIL {
			if want != e.distNil {
				continue
			}
		} else if e.dist[next] != want || !e.augment(next) {
			continue
		}
		// next (if any) has already been re-paired by the recursive call,
		// which left b free.
		e.m.SetPair(a, b)
		e.dist[a] = inf

		return true
	}
	e.dist[a] = inf

	return false
}
