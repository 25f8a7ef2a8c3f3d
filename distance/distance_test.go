// Package distance_test validates the edit graph search: exact values on small
// hand-computed cases, metric-like properties, bound pruning and error paths.
package distance_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/patclust/automaton"
	"github.com/katalvlaran/patclust/distance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Symbols of the three-letter alphabet used by tokens().
const (
	symWord = iota
	symSpace
	symInt
)

// chain builds the one-symbol automaton of word where Delta(i, 0) == i+1.
func chain(t testing.TB, word string) *automaton.Automaton {
	t.Helper()
	g := automaton.New(len(word)+1, 1, word)
	for i := 0; i < len(word); i++ {
		require.NoError(t, g.AddEdge(i, i+1, 0))
	}

	return g
}

// tokens builds an automaton over {word, space, int} from explicit runs.
func tokens(t testing.TB, word string, runs ...automaton.Run) *automaton.Automaton {
	t.Helper()
	g, err := automaton.FromRuns(3, word, runs)
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Concrete values.
// ------------------------------------------------------------------------

func TestRaw_IdenticalChains(t *testing.T) {
	g1, g2 := chain(t, "aaa"), chain(t, "aaa")
	d := []float64{1.0}

	res, err := distance.Raw(g1, g2, d, distance.Unbounded())
	require.NoError(t, err)
	assert.False(t, res.Exceeded)
	assert.Equal(t, 0.0, res.Value)

	res, err = distance.Normalized(g1, g2, d, distance.Unbounded())
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Value)
}

func TestRaw_SingleSubstitution(t *testing.T) {
	// Two free diagonals over "a" then "a" vs "b": LCS distance 2, density 1.
	g1, g2 := chain(t, "aaa"), chain(t, "aab")

	res, err := distance.Raw(g1, g2, []float64{1.0}, distance.Unbounded())
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Value)

	res, err = distance.Normalized(g1, g2, []float64{1.0}, distance.Unbounded())
	require.NoError(t, err)
	assert.InDelta(t, 2.0/6.0, res.Value, 1e-12)
}

func TestRaw_SingleSubstitutionRuns(t *testing.T) {
	// "aaa" is one a-run; "aab" is an a-run then a b-run (alphabet {a, b}).
	g1, err := automaton.FromRuns(2, "aaa", []automaton.Run{{From: 0, To: 3, Symbol: 0}})
	require.NoError(t, err)
	g2, err := automaton.FromRuns(2, "aab", []automaton.Run{{From: 0, To: 2, Symbol: 0}, {From: 2, To: 3, Symbol: 1}})
	require.NoError(t, err)

	// Diagonal "aaa"/"aa" costs 1, then vertical "b" costs 1.
	res, err := distance.Raw(g1, g2, []float64{1.0, 1.0}, distance.Unbounded())
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Value)
}

func TestRaw_DensityScalesDiagonalsOnly(t *testing.T) {
	g1 := tokens(t, "abc 42",
		automaton.Run{From: 0, To: 3, Symbol: symWord},
		automaton.Run{From: 3, To: 4, Symbol: symSpace},
		automaton.Run{From: 4, To: 6, Symbol: symInt})
	g2 := tokens(t, "xyz 7",
		automaton.Run{From: 0, To: 3, Symbol: symWord},
		automaton.Run{From: 3, To: 4, Symbol: symSpace},
		automaton.Run{From: 4, To: 5, Symbol: symInt})

	// word: lcs("abc","xyz")=0 → 6·0.5; space: identical → 0; int: lcs("42","7")=0 → 3·0.2.
	res, err := distance.Raw(g1, g2, []float64{0.5, 0.1, 0.2}, distance.Unbounded())
	require.NoError(t, err)
	assert.InDelta(t, 3.6, res.Value, 1e-9)

	// With dense symbols, deleting and inserting runs (raw lengths) wins.
	res, err = distance.Raw(g1, g2, []float64{10, 10, 10}, distance.Unbounded())
	require.NoError(t, err)
	assert.InDelta(t, 6.0+3.0, res.Value, 1e-9)
}

func TestRaw_EmptyWords(t *testing.T) {
	e1, e2 := chain(t, ""), chain(t, "")

	res, err := distance.Raw(e1, e2, []float64{1}, distance.Unbounded())
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Value)

	res, err = distance.Normalized(e1, e2, []float64{1}, 0.5)
	require.NoError(t, err)
	assert.False(t, res.Exceeded)
	assert.Equal(t, 0.0, res.Value)

	res, err = distance.Normalized(e1, e2, []float64{1}, 0)
	require.NoError(t, err)
	assert.True(t, res.Exceeded, "bound 0 rejects even distance 0")

	res, err = distance.Raw(e1, chain(t, "abcd"), []float64{1}, distance.Unbounded())
	require.NoError(t, err)
	assert.Equal(t, 4.0, res.Value, "empty vs s costs |s|")
}

// ------------------------------------------------------------------------
// 2. Properties.
// ------------------------------------------------------------------------

var corpus = []string{"", "a", "aaa", "aab", "abc", "abd", "hello", "help", "192.168.0.1", "10.0.0.12"}

func TestRaw_SelfDistanceZero(t *testing.T) {
	for _, w := range corpus {
		res, err := distance.Raw(chain(t, w), chain(t, w), []float64{1}, distance.Unbounded())
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.Value, "self distance of %q", w)
	}

	g := tokens(t, "abc 42",
		automaton.Run{From: 0, To: 3, Symbol: symWord},
		automaton.Run{From: 3, To: 4, Symbol: symSpace},
		automaton.Run{From: 4, To: 6, Symbol: symInt})
	res, err := distance.Raw(g, g, []float64{1, 1, 1}, distance.Unbounded())
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Value)
}

func TestRaw_Symmetric(t *testing.T) {
	d := []float64{0.7}
	for _, a := range corpus {
		for _, b := range corpus {
			ab, err := distance.Raw(chain(t, a), chain(t, b), d, distance.Unbounded())
			require.NoError(t, err)
			ba, err := distance.Raw(chain(t, b), chain(t, a), d, distance.Unbounded())
			require.NoError(t, err)
			assert.InDelta(t, ab.Value, ba.Value, 1e-9, "d(%q,%q) vs d(%q,%q)", a, b, b, a)
		}
	}
}

func TestNormalized_UnitInterval(t *testing.T) {
	for _, a := range corpus {
		for _, b := range corpus {
			res, err := distance.Normalized(chain(t, a), chain(t, b), []float64{1}, distance.Unbounded())
			require.NoError(t, err)
			require.False(t, res.Exceeded)
			assert.GreaterOrEqual(t, res.Value, 0.0)
			assert.LessOrEqual(t, res.Value, 1.0, "normalized d(%q,%q)", a, b)
		}
	}
}

func TestRaw_MonotonicPruning(t *testing.T) {
	g1, g2 := chain(t, "hello"), chain(t, "help")
	d := []float64{1}

	exact, err := distance.Raw(g1, g2, d, distance.Unbounded())
	require.NoError(t, err)
	require.Positive(t, exact.Value)

	for _, bound := range []float64{exact.Value + 0.5, exact.Value + 10, 1e9} {
		res, err := distance.Raw(g1, g2, d, bound)
		require.NoError(t, err)
		assert.Equal(t, exact, res, "bound %g above the distance keeps it", bound)
	}
	for _, bound := range []float64{exact.Value, exact.Value - 0.5, 0} {
		res, err := distance.Raw(g1, g2, d, bound)
		require.NoError(t, err)
		assert.True(t, res.Exceeded, "bound %g at or below the distance prunes", bound)
	}
}

func TestNormalized_ExceededMatchesWithin(t *testing.T) {
	// Bounds sit exactly on, one ulp around and above each quotient, with
	// densities whose products do not round cleanly.
	for _, density := range []float64{1, 0.1, 0.3, 0.7} {
		d := []float64{density}
		for _, a := range corpus {
			for _, b := range corpus {
				g1, g2 := chain(t, a), chain(t, b)
				exact, err := distance.Normalized(g1, g2, d, distance.Unbounded())
				require.NoError(t, err)
				v := exact.Value

				bounds := []float64{v, math.Nextafter(v, math.Inf(1)), math.Nextafter(v, math.Inf(-1)), v + 0.1}
				for _, bound := range bounds {
					res, err := distance.Normalized(g1, g2, d, bound)
					require.NoError(t, err)
					assert.Equal(t, !(v < bound), res.Exceeded, "d(%q,%q) density %g bound %v", a, b, density, bound)
					if !res.Exceeded {
						assert.Equal(t, v, res.Value)
						assert.True(t, res.Within(bound))
					}
				}
			}
		}
	}
}

// ------------------------------------------------------------------------
// 3. Errors.
// ------------------------------------------------------------------------

func TestRaw_Validation(t *testing.T) {
	g := chain(t, "ab")

	_, err := distance.Raw(nil, g, []float64{1}, 1)
	assert.ErrorIs(t, err, distance.ErrNilAutomaton)

	_, err = distance.Normalized(g, nil, []float64{1}, 1)
	assert.ErrorIs(t, err, distance.ErrNilAutomaton)

	_, err = distance.Raw(g, g, []float64{-1}, 1)
	assert.ErrorIs(t, err, distance.ErrBadDensity)

	_, err = distance.Raw(g, g, []float64{math.NaN()}, 1)
	assert.ErrorIs(t, err, distance.ErrBadDensity)

	_, err = distance.Raw(g, g, []float64{1}, math.NaN())
	assert.ErrorIs(t, err, distance.ErrBadMaxDist)
}

func TestRaw_DensitiesBeyondAlphabet(t *testing.T) {
	_, err := distance.Raw(chain(t, "ab"), chain(t, "ab"), []float64{1, 1}, distance.Unbounded())
	assert.ErrorIs(t, err, automaton.ErrOutOfRange)
}

func TestRaw_MalformedAutomaton(t *testing.T) {
	// Vertex 1 has no way forward: "aaa" can never be fully consumed.
	broken := automaton.New(4, 1, "aaa")
	require.NoError(t, broken.AddEdge(0, 1, 0))

	_, err := distance.Raw(broken, chain(t, "aaa"), []float64{1}, distance.Unbounded())
	assert.ErrorIs(t, err, distance.ErrGoalUnreachable)
}

func TestRaw_TransitionLeavesWord(t *testing.T) {
	g := automaton.New(5, 1, "ab")
	require.NoError(t, g.AddEdge(0, 4, 0))

	_, err := distance.Raw(g, chain(t, "ab"), []float64{1}, distance.Unbounded())
	assert.ErrorIs(t, err, automaton.ErrOutOfRange)
}

func TestRaw_BackwardTransition(t *testing.T) {
	g := automaton.New(3, 2, "ab")
	require.NoError(t, g.AddEdge(0, 2, 0))
	require.NoError(t, g.AddEdge(2, 1, 1))

	_, err := distance.Raw(g, chain2(t, "ab"), []float64{1, 1}, distance.Unbounded())
	assert.ErrorIs(t, err, distance.ErrBackwardTransition)
}

// chain2 is chain over a two-symbol alphabet (symbol 1 unused).
func chain2(t testing.TB, word string) *automaton.Automaton {
	t.Helper()
	g := automaton.New(len(word)+1, 2, word)
	for i := 0; i < len(word); i++ {
		require.NoError(t, g.AddEdge(i, i+1, 0))
	}

	return g
}

// ------------------------------------------------------------------------
// 4. Result helpers.
// ------------------------------------------------------------------------

func TestResult_Float(t *testing.T) {
	assert.Equal(t, distance.SentinelExceeded, distance.Result{Exceeded: true}.Float())
	assert.Equal(t, 0.25, distance.Result{Value: 0.25}.Float())
	assert.Equal(t, "exceeded", distance.Result{Exceeded: true}.String())
	assert.Equal(t, "0.25", distance.Result{Value: 0.25}.String())
	assert.True(t, distance.Result{Value: 0.25}.Within(0.5))
	assert.False(t, distance.Result{Value: 0.5}.Within(0.5))
	assert.False(t, distance.Result{Exceeded: true}.Within(1))
}
