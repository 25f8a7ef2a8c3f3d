// Package automaton provides the pattern automaton: a deterministic transition
// table over dense integer states and symbols, paired with the word it encodes.
//
// Overview:
//
//   - States are identified by 0..NumVertices()-1, symbols by 0..AlphabetSize()-1.
//   - Each (state, symbol) pair has at most one outgoing transition.
//   - Vertex i is understood to mean "i bytes of Word() consumed". This pairing is
//     assumed by callers and by package distance; the automaton never checks it.
//
// "No edge" is represented by the zero State value (None) rather than by a
// reserved integer, so no valid index can ever be mistaken for an absent one:
//
//	g := automaton.New(4, 1, "aaa")
//	_ = g.AddEdge(0, 3, 0)
//	r, _ := g.Delta(automaton.StateOf(0), 0) // r == StateOf(3)
//	r, _ = g.Delta(automaton.StateOf(1), 0)  // r == None
//	r, _ = g.Delta(automaton.None, 0)        // None propagates
//
// Errors (sentinel):
//
//   - ErrOutOfRange: a vertex or symbol index lies outside current bounds.
//     Returned wrapped with the offending indices; test with errors.Is.
//
// Thread safety:
//
//   - Read-only methods (Delta, NumEdges, String, ...) may be called concurrently.
//   - AddVertex and AddEdge must not race with any other call; build the
//     automaton first, then share it.
package automaton
