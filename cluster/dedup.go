package cluster

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/patclust/automaton"
	"github.com/katalvlaran/patclust/distance"
)

// ClusterDeduplicated clusters only one reference pattern per group of
// structurally equal automata (automaton.Equal), then gives every member the
// cluster of its group's reference.
//
// Lines sharing a pattern automaton always land in the same cluster, even
// when their words are unrelated. Indices in the result refer to patterns,
// not to references: assignment[r] == r for every representative r.
func ClusterDeduplicated(ctx context.Context, patterns []*automaton.Automaton, densities []float64, opts ...Option) ([]int, error) {
	for i, p := range patterns {
		if p == nil {
			return nil, fmt.Errorf("%w: patterns[%d]", distance.ErrNilAutomaton, i)
		}
	}

	// 1) Group equal automata; refs[k] is the first pattern of group k.
	refs, groupOf := groupIdentical(patterns)
	refPatterns := make([]*automaton.Automaton, len(refs))
	for k, r := range refs {
		refPatterns[k] = patterns[r]
	}

	// 2) Cluster references only.
	refAssignment, err := Cluster(ctx, refPatterns, densities, opts...)
	if err != nil {
		return nil, err
	}

	// 3) Expand back to every pattern, in pattern indices.
	assignment := make([]int, len(patterns))
	for i := range patterns {
		assignment[i] = refs[refAssignment[groupOf[i]]]
	}

	return assignment, nil
}

// groupIdentical returns the first index of each distinct automaton and, for
// every pattern, the position of its group in refs.
// Complexity: O(n · groups · V · Σ)
func groupIdentical(patterns []*automaton.Automaton) (refs []int, groupOf []int) {
	groupOf = make([]int, len(patterns))
	for i, p := range patterns {
		k := 0
		for ; k < len(refs); k++ {
			if patterns[refs[k]].Equal(p) {
				break
			}
		}
		if k == len(refs) {
			refs = append(refs, i)
		}
		groupOf[i] = k
	}

	return refs, groupOf
}

// Groups inverts an assignment: representative index → member indices in
// increasing order (the representative included).
func Groups(assignment []int) map[int][]int {
	groups := make(map[int][]int)
	for i, rep := range assignment {
		groups[rep] = append(groups[rep], i)
	}

	return groups
}

// Representatives returns the sorted distinct representative indices of an assignment.
func Representatives(assignment []int) []int {
	seen := make(map[int]struct{}, len(assignment))
	reps := make([]int, 0)
	for _, rep := range assignment {
		if _, ok := seen[rep]; ok {
			continue
		}
		seen[rep] = struct{}{}
		reps = append(reps, rep)
	}
	sort.Ints(reps)

	return reps
}
