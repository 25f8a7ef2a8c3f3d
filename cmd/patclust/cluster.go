package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/katalvlaran/patclust/cluster"
	"github.com/katalvlaran/patclust/internal/dataset"
	"github.com/spf13/cobra"
)

// Output formats of the cluster command.
const (
	formatText  = "text"  // colored listing grouped by representative
	formatJSON  = "json"  // assignment vector as a JSON array
	formatPlain = "plain" // assignment vector, space separated
)

var errBadFormat = errors.New("unknown output format")

func newClusterCmd(a *app) *cobra.Command {
	var (
		maxDist     float64
		sequential  bool
		dedup       bool
		workers     int
		assignments bool
		format      string
		outputFile  string
		htmlFile    string
	)

	cmd := &cobra.Command{
		Use:   "cluster FILE",
		Short: "Cluster the patterns of a dataset",
		Long: `Cluster the patterns of a YAML dataset greedily: each pattern joins the
nearest existing representative within --max-dist (normalized), or becomes a
new representative. Flags override the values of --config.

The result goes to stdout, or to --output, as a listing (text), a JSON array
(json) or space-separated indices (plain). --html also writes a report
coloring every pattern by cluster.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			flags := cmd.Flags()
			if flags.Changed("max-dist") {
				cfg.MaxDist = maxDist
			}
			if flags.Changed("sequential") {
				cfg.Concurrent = !sequential
			}
			if flags.Changed("dedup") {
				cfg.Deduplicate = dedup
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if assignments {
				format = formatPlain
			}
			switch format {
			case formatText, formatJSON, formatPlain:
			default:
				return fmt.Errorf("%w: %q, want text, json or plain", errBadFormat, format)
			}

			ds, err := dataset.Load(args[0])
			if err != nil {
				return err
			}

			run := cluster.Cluster
			if cfg.Deduplicate {
				run = cluster.ClusterDeduplicated
			}
			got, err := run(cmd.Context(), ds.Patterns, ds.Densities, cfg.ClusterOptions(a.logger)...)
			if err != nil {
				return fmt.Errorf("clustering %s: %w", args[0], err)
			}

			// 1) Main result, colored only on the terminal.
			var buf bytes.Buffer
			switch format {
			case formatJSON:
				err = printJSON(&buf, got)
			case formatPlain:
				printAssignments(&buf, got)
			default:
				printClusters(&buf, ds, got, outputFile == "")
			}
			if err != nil {
				return err
			}
			if outputFile == "" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
			} else {
				err = os.WriteFile(outputFile, buf.Bytes(), 0o644)
			}
			if err != nil {
				return fmt.Errorf("writing results: %w", err)
			}
			if outputFile != "" {
				a.logger.Info("results written", "path", outputFile, "format", format)
			}

			// 2) Optional HTML report.
			if htmlFile != "" {
				if err := writeHTMLFile(htmlFile, ds, got); err != nil {
					return err
				}
				a.logger.Info("html report written", "path", htmlFile)
			}

			return nil
		},
	}
	cmd.Flags().Float64Var(&maxDist, "max-dist", cluster.DefaultMaxDist, "normalized acceptance threshold in [0, 1]")
	cmd.Flags().BoolVar(&sequential, "sequential", false, "search representatives one at a time")
	cmd.Flags().BoolVar(&dedup, "dedup", false, "cluster one reference per group of equal automata")
	cmd.Flags().IntVar(&workers, "workers", 0, "goroutines per search (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&assignments, "assignments", false, "shorthand for --format plain")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json, plain")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "write the result to this file instead of stdout")
	cmd.Flags().StringVarP(&htmlFile, "html", "H", "", "also write an HTML report to this file")
	cmd.MarkFlagsMutuallyExclusive("assignments", "format")

	return cmd
}

// printJSON writes the assignment vector as a JSON array.
func printJSON(w io.Writer, assignment []int) error {
	if err := json.NewEncoder(w).Encode(assignment); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}

	return nil
}

// printAssignments writes the representative of every pattern on one line.
func printAssignments(w io.Writer, assignment []int) {
	parts := make([]string, len(assignment))
	for i, rep := range assignment {
		parts[i] = strconv.Itoa(rep)
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
}

// printClusters lists every cluster under its representative.
func printClusters(w io.Writer, ds *dataset.Dataset, assignment []int, colored bool) {
	heading := color.New(color.FgCyan, color.Bold)
	yellow := color.New(color.FgYellow)
	gray := color.New(color.FgHiBlack)
	if !colored {
		heading.DisableColor()
		yellow.DisableColor()
		gray.DisableColor()
	}

	groups := cluster.Groups(assignment)
	reps := cluster.Representatives(assignment)
	fmt.Fprintf(w, "%s\n", heading.Sprintf("=== %d patterns, %d clusters ===", len(assignment), len(reps)))

	for _, rep := range reps {
		members := groups[rep]
		fmt.Fprintf(w, "%s %q (%d)\n", yellow.Sprintf("[%d]", rep), ds.Patterns[rep].Word(), len(members))
		for _, m := range members {
			if m == rep {
				continue
			}
			fmt.Fprintf(w, "  %s %q\n", gray.Sprintf("%d", m), ds.Patterns[m].Word())
		}
	}
}

// writeHTMLFile renders the report of ds into path.
func writeHTMLFile(path string, ds *dataset.Dataset, assignment []int) error {
	words := make([]string, len(ds.Patterns))
	for i, p := range ds.Patterns {
		words[i] = p.Word()
	}

	var buf bytes.Buffer
	if err := writeHTMLReport(&buf, words, assignment); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing html report: %w", err)
	}

	return nil
}
