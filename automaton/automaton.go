package automaton

import (
	"fmt"
	"strings"
)

// Automaton is a deterministic transition table annotated with the word it encodes.
//
// transitions[q][a] holds the target of the edge leaving q labelled a, or None.
// alphabetSize and word never change after New.
type Automaton struct {
	transitions  [][]State
	alphabetSize int
	word         string
}

// New creates an automaton with numVertices states, no edges, an alphabet of
// alphabetSize symbols, and the given word. Negative sizes are treated as 0.
// Complexity: O(numVertices · alphabetSize)
func New(numVertices, alphabetSize int, word string) *Automaton {
	if numVertices < 0 {
		numVertices = 0
	}
	if alphabetSize < 0 {
		alphabetSize = 0
	}
	g := &Automaton{
		transitions:  make([][]State, numVertices),
		alphabetSize: alphabetSize,
		word:         word,
	}
	for q := range g.transitions {
		g.transitions[q] = make([]State, alphabetSize) // zero value is None
	}

	return g
}

// AddVertex appends a state whose transitions are all None and returns its index.
func (g *Automaton) AddVertex() int {
	g.transitions = append(g.transitions, make([]State, g.alphabetSize))

	return len(g.transitions) - 1
}

// AddEdge sets transition[q][a] = r.
// It returns ErrOutOfRange, leaving g untouched, if q or r is not a vertex
// or a is not a symbol.
func (g *Automaton) AddEdge(q, r, a int) error {
	n := len(g.transitions)
	if q < 0 || q >= n || r < 0 || r >= n || a < 0 || a >= g.alphabetSize {
		return fmt.Errorf("%w: AddEdge(q=%d, r=%d, a=%d): need 0 <= q, r < %d and 0 <= a < %d",
			ErrOutOfRange, q, r, a, n, g.alphabetSize)
	}
	g.transitions[q][a] = StateOf(r)

	return nil
}

// Delta returns the state reached from q by consuming symbol a.
//
// None is absorbing: Delta(None, a) == None for every valid a. An undefined
// transition also yields None. ErrOutOfRange is returned when a is not a
// symbol or q is not a vertex.
func (g *Automaton) Delta(q State, a int) (State, error) {
	if a < 0 || a >= g.alphabetSize {
		return None, fmt.Errorf("%w: Delta(q=%s, a=%d): alphabet size is %d",
			ErrOutOfRange, q, a, g.alphabetSize)
	}
	i, ok := q.Index()
	if !ok {
		return None, nil
	}
	if i >= len(g.transitions) {
		return None, fmt.Errorf("%w: Delta(q=%d, a=%d): %d vertices",
			ErrOutOfRange, i, a, len(g.transitions))
	}

	return g.transitions[i][a], nil
}

// NumVertices returns the number of states.
func (g *Automaton) NumVertices() int { return len(g.transitions) }

// NumEdges counts defined transitions.
// Complexity: O(NumVertices · AlphabetSize)
func (g *Automaton) NumEdges() int {
	n := 0
	for _, row := range g.transitions {
		for _, r := range row {
			if !r.IsNone() {
				n++
			}
		}
	}

	return n
}

// AlphabetSize returns the number of symbols accepted by Delta and AddEdge.
func (g *Automaton) AlphabetSize() int { return g.alphabetSize }

// Word returns the string this automaton encodes.
func (g *Automaton) Word() string { return g.word }

// String renders every defined edge as "q--[a]-->r", one per line, ordered by
// source state then symbol. Intended for diagnostics only.
func (g *Automaton) String() string {
	var sb strings.Builder
	for q, row := range g.transitions {
		for a, r := range row {
			if r.IsNone() {
				continue
			}
			fmt.Fprintf(&sb, "%d--[%d]-->%s\n", q, a, r)
		}
	}

	return sb.String()
}

// Equal reports whether g and h have the same vertex count, alphabet size and
// transition table. Words are ignored: two lines with the same pattern
// structure compare equal.
func (g *Automaton) Equal(h *Automaton) bool {
	if g == nil || h == nil {
		return g == h
	}
	if len(g.transitions) != len(h.transitions) || g.alphabetSize != h.alphabetSize {
		return false
	}
	for q := range g.transitions {
		for a := range g.transitions[q] {
			if g.transitions[q][a] != h.transitions[q][a] {
				return false
			}
		}
	}

	return true
}

// FromRuns builds the automaton of word with len(word)+1 vertices (vertex i
// means i bytes consumed) and one edge per run.
// The first run rejected by AddEdge aborts construction.
func FromRuns(alphabetSize int, word string, runs []Run) (*Automaton, error) {
	g := New(len(word)+1, alphabetSize, word)
	for _, run := range runs {
		if err := g.AddEdge(run.From, run.To, run.Symbol); err != nil {
			return nil, err
		}
	}

	return g, nil
}
