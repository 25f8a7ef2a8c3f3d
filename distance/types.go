package distance

import (
	"errors"
	"math"
	"strconv"
)

// Sentinel errors returned by Raw and Normalized.
var (
	// ErrNilAutomaton indicates that a nil *automaton.Automaton was passed.
	ErrNilAutomaton = errors.New("distance: automaton is nil")

	// ErrBadDensity indicates a negative or NaN density; edge weights must be non-negative.
	ErrBadDensity = errors.New("distance: density must be a non-negative number")

	// ErrBadMaxDist indicates that maxDist is NaN.
	ErrBadMaxDist = errors.New("distance: maxDist must be a number")

	// ErrGoalUnreachable indicates that the edit graph search exhausted every
	// reachable node without reaching (|w1|, |w2|). The automaton/word pairing
	// supplied by the caller is malformed.
	ErrGoalUnreachable = errors.New("distance: goal unreachable in edit graph")

	// ErrBackwardTransition indicates a transition from vertex i to a vertex
	// j < i, which would consume a negative number of bytes.
	ErrBackwardTransition = errors.New("distance: transition moves backwards in word")
)

// Legacy numeric encodings of non-exact outcomes, as produced by Result.Float.
const (
	// SentinelExceeded encodes Result{Exceeded: true}.
	SentinelExceeded = -1.0

	// SentinelUnreachable encodes ErrGoalUnreachable for callers that flatten
	// errors into numbers. Raw and Normalized never return it as a value.
	SentinelUnreachable = -2.0
)

// Unbounded returns +Inf, the maxDist that never prunes.
func Unbounded() float64 { return math.Inf(1) }

// Result is the outcome of a bounded distance computation.
//
// Exceeded == true means the true distance is at least the requested bound;
// Value is then meaningless and must not be compared with real distances.
type Result struct {
	Value    float64
	Exceeded bool
}

// Float flattens r into a single number: Value, or SentinelExceeded.
func (r Result) Float() float64 {
	if r.Exceeded {
		return SentinelExceeded
	}

	return r.Value
}

// Within reports whether r is an exact distance strictly below bound.
func (r Result) Within(bound float64) bool {
	return !r.Exceeded && r.Value < bound
}

// String renders the value, or "exceeded".
func (r Result) String() string {
	if r.Exceeded {
		return "exceeded"
	}

	return strconv.FormatFloat(r.Value, 'g', -1, 64)
}
