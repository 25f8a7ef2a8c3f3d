// Package dataset reads pattern collections from YAML for the patclust command.
//
// A dataset names its symbols, optionally weights them, and lists each
// pattern as a word plus the runs decomposing it:
//
//	alphabet: [any, int, spaces, word]
//	densities: {int: 0.1, spaces: 0.5}
//	patterns:
//	  - word: "user 42"
//	    runs:
//	      - {from: 0, to: 4, symbol: word}
//	      - {from: 4, to: 5, symbol: spaces}
//	      - {from: 5, to: 7, symbol: int}
//	  - word: "?!"        # no runs: a single "any" run covers the word
//
// Symbol k is the k-th alphabet entry. Symbols without a density weigh 1.0.
package dataset

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/katalvlaran/patclust/automaton"
	"gopkg.in/yaml.v3"
)

// AnySymbol names the fallback symbol covering a pattern given without runs.
const AnySymbol = "any"

// Sentinel errors for malformed datasets.
var (
	// ErrEmptyAlphabet indicates a dataset without symbols.
	ErrEmptyAlphabet = errors.New("dataset: alphabet is empty")

	// ErrDuplicateSymbol indicates a symbol listed twice in the alphabet.
	ErrDuplicateSymbol = errors.New("dataset: duplicate symbol")

	// ErrUnknownSymbol indicates a run or density naming a symbol outside the alphabet.
	ErrUnknownSymbol = errors.New("dataset: unknown symbol")

	// ErrBadDensity indicates a negative or NaN density.
	ErrBadDensity = errors.New("dataset: density must be a non-negative number")

	// ErrNoRuns indicates a non-empty word without runs and no "any" symbol to cover it.
	ErrNoRuns = errors.New("dataset: pattern has no runs")
)

// File is the YAML document layout.
type File struct {
	Alphabet  []string           `yaml:"alphabet"`
	Densities map[string]float64 `yaml:"densities"`
	Patterns  []PatternSpec      `yaml:"patterns"`
}

// PatternSpec is one pattern of the document.
type PatternSpec struct {
	Word string    `yaml:"word"`
	Runs []RunSpec `yaml:"runs"`
}

// RunSpec is one run of a pattern, with its symbol given by name.
type RunSpec struct {
	From   int    `yaml:"from"`
	To     int    `yaml:"to"`
	Symbol string `yaml:"symbol"`
}

// Dataset is a decoded collection ready for distance and clustering calls.
type Dataset struct {
	Alphabet  []string
	Densities []float64
	Patterns  []*automaton.Automaton
}

// Load reads and parses the dataset at path.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML dataset.
func Parse(data []byte) (*Dataset, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}

	return f.Build()
}

// Build resolves symbol names and constructs one automaton per pattern.
func (f *File) Build() (*Dataset, error) {
	// 1) Index the alphabet.
	if len(f.Alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	index := make(map[string]int, len(f.Alphabet))
	for k, name := range f.Alphabet {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, name)
		}
		index[name] = k
	}

	// 2) Densities default to 1.0.
	densities := make([]float64, len(f.Alphabet))
	for k := range densities {
		densities[k] = 1.0
	}
	for name, d := range f.Densities {
		k, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("%w: density for %q", ErrUnknownSymbol, name)
		}
		if d < 0 || math.IsNaN(d) {
			return nil, fmt.Errorf("%w: %q=%g", ErrBadDensity, name, d)
		}
		densities[k] = d
	}

	// 3) Patterns.
	patterns := make([]*automaton.Automaton, len(f.Patterns))
	for i, p := range f.Patterns {
		g, err := p.build(len(f.Alphabet), index)
		if err != nil {
			return nil, fmt.Errorf("pattern %d (%q): %w", i, p.Word, err)
		}
		patterns[i] = g
	}

	return &Dataset{
		Alphabet:  f.Alphabet,
		Densities: densities,
		Patterns:  patterns,
	}, nil
}

// build converts named runs to an automaton of len(Word)+1 vertices.
func (p PatternSpec) build(alphabetSize int, index map[string]int) (*automaton.Automaton, error) {
	runs := make([]automaton.Run, 0, len(p.Runs))
	for _, r := range p.Runs {
		k, ok := index[r.Symbol]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, r.Symbol)
		}
		runs = append(runs, automaton.Run{From: r.From, To: r.To, Symbol: k})
	}
	if len(runs) == 0 && len(p.Word) > 0 {
		k, ok := index[AnySymbol]
		if !ok {
			return nil, ErrNoRuns
		}
		runs = append(runs, automaton.Run{From: 0, To: len(p.Word), Symbol: k})
	}

	return automaton.FromRuns(alphabetSize, p.Word, runs)
}
