// Package matching computes maximum-cardinality matchings on a
// bipartite.Graph with the Hopcroft–Karp algorithm.
//
// What
//
//   - HopcroftKarp(g, opts...) returns a Result holding the final Matching
//     and the number of phases that augmented it.
//   - Matching is a bidirectional map Side-A ↔ Side-B. SetPair and ClearPair
//     are the only mutators, so MateOfA(a) == b iff MateOfB(b) == a always.
//
// Algorithm
//
// Each phase has two steps:
//
//  1. Layering (BFS). Every free Side-A vertex gets distance 0. From a
//     Side-A vertex at distance d every neighbor b is inspected: if b is free
//     the virtual NIL vertex receives distance d+1 (first time only);
//     otherwise b's mate receives d+1 if it is still unlabeled. A finite NIL
//     distance means an augmenting path of that length exists.
//  2. Augmentation (DFS). From each free Side-A vertex, follow only edges
//     into vertices whose distance is exactly one more than the current one,
//     ending on a free Side-B vertex when d+1 equals the NIL distance. The
//     path is flipped with SetPair during unwinding. Every Side-A vertex the
//     search leaves, on success or failure, has its distance poisoned to
//     infinity, so the paths found in one phase are vertex-disjoint.
//
// Phases repeat until layering leaves NIL unreachable.
//
// Tie-breaks
//
// WithOrder(less) supplies a comparator; neighbors and free roots are
// stable-sorted with it, so equal elements keep adjacency/registration
// order. WithPriority(v) is the comparator that tries v before anything
// else. The bias is best-effort: it steers which maximum matching is found
// but never its size, and it does not guarantee that v ends up matched.
//
// Complexity (V = vertices, E = edges)
//
//   - Phases: O(√V). Each phase: O(V + E). Total: O(E·√V).
//   - Memory: O(IDBound + E); scratch arrays are allocated once per run and
//     reset, not reallocated, at the start of each phase.
//
// Errors
//
//   - ErrGraphNil when g is nil.
//   - Matching.Validate: ErrBoundMismatch, ErrNotAnEdge.
package matching
