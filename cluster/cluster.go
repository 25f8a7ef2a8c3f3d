package cluster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/patclust/automaton"
	"github.com/katalvlaran/patclust/distance"
	"golang.org/x/sync/errgroup"
)

// Cluster assigns each pattern to the index of its cluster representative.
//
// patterns and densities are only read; they must not be mutated during the
// call. See the package documentation for the algorithm and both modes.
func Cluster(ctx context.Context, patterns []*automaton.Automaton, densities []float64, opts ...Option) ([]int, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(cfg, patterns); err != nil {
		return nil, err
	}

	// 2) Run the greedy pass.
	c := &clusterer{
		patterns:  patterns,
		densities: densities,
		opts:      cfg,
	}

	return c.run(ctx)
}

// validate checks options and patterns before any distance is computed.
func validate(cfg Options, patterns []*automaton.Automaton) error {
	if math.IsNaN(cfg.MaxDist) {
		return ErrBadMaxDist
	}
	if cfg.Concurrent && cfg.Workers < 1 {
		return fmt.Errorf("%w: got %d", ErrBadWorkers, cfg.Workers)
	}
	for i, p := range patterns {
		if p == nil {
			return fmt.Errorf("%w: patterns[%d]", distance.ErrNilAutomaton, i)
		}
	}

	return nil
}

// clusterer holds the read-only inputs of one clustering run.
type clusterer struct {
	patterns  []*automaton.Automaton
	densities []float64
	opts      Options
}

// logger returns the configured logger, or a discarding one.
func (c *clusterer) logger() *slog.Logger {
	if c.opts.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return c.opts.Logger
}

// run visits patterns in order, growing the representative list.
func (c *clusterer) run(ctx context.Context) ([]int, error) {
	log := c.logger()
	assignment := make([]int, len(c.patterns))
	var reps []int
	for i := range c.patterns {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		j, found, err := c.nearest(ctx, reps, i)
		if err != nil {
			if errors.Is(err, distance.ErrGoalUnreachable) {
				log.Error("malformed pattern automaton", "pattern", i, "err", err)
			}
			return nil, err
		}
		if found {
			assignment[i] = j
			log.Debug("pattern assigned", "pattern", i, "representative", j)
			continue
		}
		reps = append(reps, i)
		assignment[i] = i
		log.Debug("new representative", "pattern", i, "clusters", len(reps))
	}
	log.Info("clustering complete",
		"patterns", len(c.patterns),
		"clusters", len(reps),
		"max_dist", c.opts.MaxDist,
		"concurrent", c.opts.Concurrent)

	return assignment, nil
}

// nearest returns the representative closest to pattern i, if any lies
// strictly within MaxDist.
func (c *clusterer) nearest(ctx context.Context, reps []int, i int) (int, bool, error) {
	if len(reps) == 0 {
		return 0, false, nil
	}
	if c.opts.Concurrent {
		return c.nearestConcurrent(ctx, reps, i)
	}

	return c.nearestSequential(reps, i)
}

// nearestSequential scans reps in order, bounding each search by the best
// distance so far. A candidate equal to the current best is pruned, so the
// earliest representative wins ties.
func (c *clusterer) nearestSequential(reps []int, i int) (int, bool, error) {
	best, bestRep := c.opts.MaxDist, -1
	for _, j := range reps {
		res, err := distance.Normalized(c.patterns[j], c.patterns[i], c.densities, best)
		if err != nil {
			return 0, false, fmt.Errorf("cluster: pattern %d vs representative %d: %w", i, j, err)
		}
		if res.Within(best) {
			best, bestRep = res.Value, j
		}
	}

	return bestRep, bestRep >= 0, nil
}

// completion is the outcome of one representative comparison.
type completion struct {
	pos int // position of the representative in reps
	res distance.Result
}

// nearestConcurrent compares pattern i with every representative in parallel,
// each search bounded by MaxDist, and reduces completions as they arrive.
// Equal distances resolve to the lowest position, i.e. the lowest index.
func (c *clusterer) nearestConcurrent(ctx context.Context, reps []int, i int) (int, bool, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Workers)
	done := make(chan completion, len(reps)) // never blocks a task

	var waitErr error
	go func() {
		for pos, j := range reps {
			pos, j := pos, j // per-iteration copies (go < 1.22 loop semantics)
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				res, err := distance.Normalized(c.patterns[j], c.patterns[i], c.densities, c.opts.MaxDist)
				if err != nil {
					return fmt.Errorf("cluster: pattern %d vs representative %d: %w", i, j, err)
				}
				done <- completion{pos: pos, res: res}

				return nil
			})
		}
		waitErr = g.Wait()
		close(done)
	}()

	best, bestPos := c.opts.MaxDist, -1
	for cp := range done {
		if !cp.res.Within(c.opts.MaxDist) {
			continue
		}
		if bestPos < 0 || cp.res.Value < best || (cp.res.Value == best && cp.pos < bestPos) {
			best, bestPos = cp.res.Value, cp.pos
		}
	}
	if waitErr != nil {
		return 0, false, waitErr
	}
	if bestPos < 0 {
		return 0, false, nil
	}

	return reps[bestPos], true, nil
}
