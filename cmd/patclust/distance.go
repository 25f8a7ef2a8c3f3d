package main

import (
	"fmt"
	"math"

	"github.com/katalvlaran/patclust/distance"
	"github.com/katalvlaran/patclust/internal/dataset"
	"github.com/spf13/cobra"
)

func newDistanceCmd(a *app) *cobra.Command {
	var (
		i, j       int
		normalized bool
		maxDist    float64
	)

	cmd := &cobra.Command{
		Use:   "distance FILE",
		Short: "Print the pattern distance between two patterns of a dataset",
		Long: `Print the pattern distance between patterns --a and --b of a YAML dataset.

Without --max-dist the search is unbounded. With --normalized the distance is
divided by the combined word length and --max-dist is a fraction of it.
A pruned search prints "exceeded".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := dataset.Load(args[0])
			if err != nil {
				return err
			}
			n := len(ds.Patterns)
			if i < 0 || i >= n || j < 0 || j >= n {
				return fmt.Errorf("pattern index out of range: --a=%d --b=%d, dataset has %d patterns", i, j, n)
			}

			compute := distance.Raw
			if normalized {
				compute = distance.Normalized
			}
			res, err := compute(ds.Patterns[i], ds.Patterns[j], ds.Densities, maxDist)
			if err != nil {
				return err
			}
			a.logger.Debug("distance computed",
				"a", i, "b", j, "normalized", normalized, "result", res.String())

			fmt.Fprintln(cmd.OutOrStdout(), res.String())

			return nil
		},
	}
	cmd.Flags().IntVar(&i, "a", 0, "index of the first pattern")
	cmd.Flags().IntVar(&j, "b", 1, "index of the second pattern")
	cmd.Flags().BoolVar(&normalized, "normalized", false, "divide by the combined word length")
	cmd.Flags().Float64Var(&maxDist, "max-dist", math.Inf(1), "pruning bound")

	return cmd
}
