package cluster

import (
	"errors"
	"io"
	"log/slog"
	"runtime"
)

// DefaultMaxDist is the default acceptance threshold on normalized distances.
const DefaultMaxDist = 0.5

// Sentinel errors for invalid options.
var (
	// ErrBadMaxDist indicates a NaN MaxDist.
	ErrBadMaxDist = errors.New("cluster: MaxDist must be a number")

	// ErrBadWorkers indicates a concurrent run with fewer than one worker.
	ErrBadWorkers = errors.New("cluster: Workers must be at least 1")
)

// Options configures Cluster and ClusterDeduplicated.
//
// MaxDist    – acceptance threshold in [0, 1]; a pattern joins a cluster only
// if its normalized distance to the representative is < MaxDist.
// Concurrent – run the nearest-representative search in parallel.
// Workers    – maximum goroutines per search in concurrent mode (≥ 1).
// Logger     – receives progress (debug), summary (info) and failures (error).
type Options struct {
	MaxDist    float64      // Normalized acceptance threshold
	Concurrent bool         // Parallel search over representatives
	Workers    int          // Goroutine limit in concurrent mode
	Logger     *slog.Logger // Nil discards output
}

// Option represents a functional option for configuring clustering.
type Option func(*Options)

// WithMaxDist sets the acceptance threshold.
func WithMaxDist(maxDist float64) Option {
	return func(o *Options) { o.MaxDist = maxDist }
}

// WithConcurrent selects concurrent (true) or sequential (false) search.
func WithConcurrent(concurrent bool) Option {
	return func(o *Options) { o.Concurrent = concurrent }
}

// WithWorkers caps the number of goroutines used per search.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns:
//   - MaxDist:    DefaultMaxDist
//   - Concurrent: true
//   - Workers:    runtime.GOMAXPROCS(0)
//   - Logger:     discard
func DefaultOptions() Options {
	return Options{
		MaxDist:    DefaultMaxDist,
		Concurrent: true,
		Workers:    runtime.GOMAXPROCS(0),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
