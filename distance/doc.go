// Package distance computes the pattern distance between two pattern automata:
// the cost of the cheapest alignment of their words in an implicit edit graph.
//
// Overview:
//
//   - Nodes of the edit graph are pairs (i1, i2): i1 bytes of w1 and i2 bytes of
//     w2 consumed. The search starts at (0, 0) and ends at (|w1|, |w2|).
//   - From (i1, i2), each symbol k of the density vector proposes
//     j1 = g1.Delta(i1, k) and j2 = g2.Delta(i2, k) (staying put on None):
//     • diagonal   (j1, j2): both sides advance; weight 0 when the runs
//     w1[i1:j1] and w2[i2:j2] are identical, otherwise
//     lcs.Distance(run1, run2) · densities[k].
//     • horizontal (j1, i2): weight j1-i1 (raw run length, not scaled).
//     • vertical   (i1, j2): weight j2-i2.
//   - Edges are generated on the fly; the graph is never materialised.
//
// Search:
//
//   - Uniform-cost search on a min-heap ordered by (distance, i1, i2), using the
//     "lazy decrease-key" strategy: duplicates are pushed and stale entries are
//     skipped via a visited matrix of size (|w1|+1)x(|w2|+1).
//   - The first popped entry whose distance is ≥ maxDist ends the search with
//     Result{Exceeded: true}. This is how callers prune work when only a
//     threshold matters.
//   - Reaching (|w1|, |w2|) returns the exact distance.
//
// Normalization:
//
//   - Normalized divides by norm = |w1| + |w2| and interprets maxDist as a
//     fraction of norm in [0, 1]. Unbounded() (+Inf) disables pruning.
//   - A normalized result is Exceeded exactly when its quotient is not below
//     maxDist, so Result.Within(maxDist) agrees with it.
//
// Errors (sentinel):
//
//   - ErrNilAutomaton:    an input automaton is nil.
//   - ErrBadDensity:      a density is negative or NaN.
//   - ErrBadMaxDist:      maxDist is NaN.
//   - ErrGoalUnreachable: the queue drained without reaching (|w1|, |w2|),
//     which only happens when an automaton does not match its word
//     (vertex i not reachable by consuming i bytes). Treated as a defect.
//   - ErrBackwardTransition: a transition targets a vertex before its source.
//   - automaton.ErrOutOfRange is propagated unchanged (wrapped) when the density
//     vector is longer than an automaton's alphabet or a transition leaves the word.
//
// Complexity:
//
//   - Time:  O(N · K · (log N + L²)) with N = (|w1|+1)(|w2|+1) nodes, K symbols
//     and L the longest run compared by the LCS engine.
//   - Space: O(N) for the visited matrix plus O(N · K) heap entries worst case.
//
// Thread safety:
//
//   - Raw and Normalized only read their inputs and keep all search state local,
//     so concurrent calls on shared automata are safe.
package distance
