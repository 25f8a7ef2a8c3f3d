// Package patclust groups words by the shape of their pattern automata.
//
// A word such as "user 42 login" is described by the runs that decompose it
// (a word, spaces, an integer, spaces, a word). Two words are close when one
// can be rewritten into the other cheaply run by run, and a collection is
// clustered greedily around representatives.
//
// The work is split across subpackages:
//
//	automaton/: pattern automata: vertices are byte offsets, edges are runs
//	lcs/      : longest common subsequence length and distance
//	distance/ : uniform-cost search over the edit graph of two automata
//	cluster/  : greedy clustering, sequential or concurrent, with dedup
//
// The patclust command (cmd/patclust) reads YAML datasets and exposes the
// lcs, distance and cluster operations.
//
// Quick example:
//
//	"user 42"  word(0,4) spaces(4,5) int(5,7)
//	"user 7"   word(0,4) spaces(4,5) int(5,6)
//
//	substitute int "42" → "7": lcs distance 3 × density(int)
//
// All searches are bounded: pass a maximum distance and a search that cannot
// finish below it reports an exceeded result instead of a value.
package patclust
