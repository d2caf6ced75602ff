// Package cover derives minimum vertex covers of bipartite graphs from
// maximum matchings, following König's theorem.
//
// What
//
//   - Konig(g, m): given a maximum matching m of g, return a minimum
//     vertex cover with exactly m.Size() vertices.
//   - MinimumVertexCover(g, opts...): run matching.HopcroftKarp and Konig
//     in one call.
//   - Validate(g, ids): check that ids touches every edge of g.
//
// König construction
//
// Let T be the set of vertices reachable from the free Side-A vertices by
// alternating paths: Side-A → Side-B over an unmatched edge, Side-B →
// Side-A over the matched edge. Then
//
//	cover = (A \ T) ∪ (B ∩ T)
//
// T is built with an explicit stack, never recursion, so dense graphs do
// not grow the call stack. Isolated Side-A vertices are free and land in T,
// isolated Side-B vertices are never reached; neither appears in the cover.
//
// Pinned inclusion
//
// WithInclude(v) returns a minimum cover containing v whenever such a cover
// exists. With ν(G) the maximum matching size, one exists iff
// ν(G − v) = ν(G) − 1, in which case a minimum cover of G − v plus v is
// returned. Otherwise the plain cover of G is returned and
// Result.Included reports false.
//
// Errors
//
//   - ErrGraphNil, ErrMatchingNil for nil inputs.
//   - ErrNotMaximum when a free Side-B vertex is alternating-reachable,
//     i.e. m still has an augmenting path.
//   - ErrSizeMismatch if the derived cover breaks |cover| = |m|.
//   - ErrUncovered from Validate.
//   - matching.ErrBoundMismatch / matching.ErrNotAnEdge for a matching that
//     does not belong to g.
package cover
