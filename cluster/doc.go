// Package cluster groups pattern automata with a greedy single-pass algorithm
// driven by distance.Normalized.
//
// Algorithm:
//
//  1. Patterns are visited in order 0..n-1 while a list of representatives grows.
//  2. Pattern i is compared with every current representative j using
//     distance.Normalized(patterns[j], patterns[i], densities, bound).
//  3. If the nearest representative is strictly closer than MaxDist, i joins
//     its cluster; otherwise i becomes a new representative of itself.
//
// The result is an assignment slice: assignment[i] is the index of the
// representative of pattern i. A representative r satisfies assignment[r] == r.
//
// Execution modes:
//
//   - Sequential: representatives are scanned in order and each search is
//     bounded by the best distance found so far, so later searches stop as
//     soon as they cannot win.
//   - Concurrent (default): one task per representative, each bounded by the
//     fixed MaxDist, run on an errgroup limited to Workers goroutines.
//     Completions are consumed from a channel as they arrive. Bounds are not
//     shared between in-flight tasks: this trades CPU for latency.
//
// Both modes break ties on equal distances in favour of the representative
// with the lowest index, so they return identical assignments. Pruning and
// acceptance compare the same normalized value (distance.Normalized reports
// Exceeded exactly when the quotient is not below its bound), so a tighter
// sequential bound never rejects a candidate the concurrent mode accepts.
//
// Errors:
//
//   - ErrBadMaxDist, ErrBadWorkers: invalid options.
//   - distance.ErrNilAutomaton: a nil pattern.
//   - Any error of distance.Normalized aborts the run and is returned wrapped
//     with the pattern and representative indices.
//   - ctx.Err() when the context is cancelled between patterns.
package cluster
