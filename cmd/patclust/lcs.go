package main

import (
	"fmt"

	"github.com/katalvlaran/patclust/lcs"
	"github.com/spf13/cobra"
)

func newLCSCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "lcs A B",
		Short: "Print the LCS distance between two strings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b := args[0], args[1]
			out := cmd.OutOrStdout()
			if verbose {
				fmt.Fprintf(out, "length: %d\n", lcs.Length(a, b))
			}
			fmt.Fprintf(out, "%d\n", lcs.Distance(a, b))

			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print the LCS length")

	return cmd
}
