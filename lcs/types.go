// Package lcs computes longest-common-subsequence lengths and the edit-style
// distance derived from them.
package lcs

// MemoryMode controls how Length stores its DP table.
//
//   - FullMatrix: keep the entire (|a|+1)x(|b|+1) score table. Memory: O(|a|·|b|).
//   - TwoRows   : keep only the previous and current rows. Memory: O(|b|).
//
// Both modes return the same length.
type MemoryMode int

const (
	// FullMatrix stores all rows of the score table.
	FullMatrix MemoryMode = iota

	// TwoRows stores a rolling pair of rows.
	TwoRows
)

// Options configures LengthWith.
type Options struct {
	MemoryMode MemoryMode
}

// DefaultOptions returns FullMatrix options.
func DefaultOptions() Options {
	return Options{MemoryMode: FullMatrix}
}
