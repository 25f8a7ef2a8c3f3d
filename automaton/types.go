package automaton

import (
	"errors"
	"strconv"
)

// ErrOutOfRange indicates that a vertex or symbol index is outside the
// automaton's current bounds.
var ErrOutOfRange = errors.New("automaton: index out of range")

// State is a tagged optional vertex index. The zero value is None.
type State struct {
	index int
	valid bool
}

// None is the "no edge" / "no predecessor" state.
var None = State{}

// StateOf wraps a vertex index. Negative indices yield None.
func StateOf(i int) State {
	if i < 0 {
		return None
	}

	return State{index: i, valid: true}
}

// Index returns the wrapped vertex index and whether s is defined.
func (s State) Index() (int, bool) { return s.index, s.valid }

// IsNone reports whether s is the None state.
func (s State) IsNone() bool { return !s.valid }

// String renders the vertex index, or "⊥" for None.
func (s State) String() string {
	if !s.valid {
		return "⊥"
	}

	return strconv.Itoa(s.index)
}

// Run describes one transition of a word's decomposition: consuming symbol
// Symbol moves from vertex From to vertex To, i.e. covers Word()[From:To].
type Run struct {
	From   int
	To     int
	Symbol int
}
