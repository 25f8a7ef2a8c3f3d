package cluster_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/patclust/automaton"
	"github.com/katalvlaran/patclust/cluster"
)

// ExampleCluster clusters three one-symbol words: "abc" and "abd" differ by
// one byte substitution (normalized distance 2/6), "xyz" is far from both.
func ExampleCluster() {
	words := []string{"abc", "abd", "xyz"}
	patterns := make([]*automaton.Automaton, len(words))
	for i, w := range words {
		g := automaton.New(len(w)+1, 1, w)
		for j := 0; j < len(w); j++ {
			_ = g.AddEdge(j, j+1, 0)
		}
		patterns[i] = g
	}

	assignment, err := cluster.Cluster(context.Background(), patterns, []float64{1.0},
		cluster.WithMaxDist(0.4), cluster.WithConcurrent(false))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(assignment)
	fmt.Println(cluster.Representatives(assignment))
	// Output:
	// [0 0 2]
	// [0 2]
}
