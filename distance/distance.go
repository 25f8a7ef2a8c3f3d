package distance

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/patclust/automaton"
	"github.com/katalvlaran/patclust/lcs"
)

// Raw computes the pattern distance between g1 and g2.
//
// densities[k] scales the cost of substituting a run of symbol k; its length
// decides which symbols are explored. The search stops as soon as the
// cheapest frontier entry reaches maxDist, returning Result{Exceeded: true};
// pass Unbounded() to always get the exact value.
//
// Preconditions and validation (in order):
//  1. g1 and g2 must be non-nil (ErrNilAutomaton).
//  2. maxDist must not be NaN (ErrBadMaxDist).
//  3. Every density must be ≥ 0 (ErrBadDensity).
//
// Automaton errors met during the search abort it and are returned wrapped.
func Raw(g1, g2 *automaton.Automaton, densities []float64, maxDist float64) (Result, error) {
	// 1) Validate inputs.
	if g1 == nil || g2 == nil {
		return Result{}, ErrNilAutomaton
	}
	if math.IsNaN(maxDist) {
		return Result{}, ErrBadMaxDist
	}
	for k, d := range densities {
		if d < 0 || math.IsNaN(d) {
			return Result{}, fmt.Errorf("%w: densities[%d]=%g", ErrBadDensity, k, d)
		}
	}

	// 2) Run the uniform-cost search with state local to this call.
	r := newRunner(g1, g2, densities, maxDist)

	return r.process()
}

// Normalized computes Raw divided by |w1| + |w2|.
//
// maxDist is a fraction of the combined length, normally in [0, 1]. The
// result is Exceeded exactly when the normalized value is not below maxDist,
// so Within(maxDist) and Exceeded never disagree. Two empty words are at
// distance 0 whenever maxDist > 0.
func Normalized(g1, g2 *automaton.Automaton, densities []float64, maxDist float64) (Result, error) {
	if g1 == nil || g2 == nil {
		return Result{}, ErrNilAutomaton
	}
	norm := float64(len(g1.Word()) + len(g2.Word()))

	// Inf·0 is NaN, so an empty pair keeps the fractional bound as is.
	// Otherwise the raw bound is widened by one ulp: maxDist·norm may round
	// below a raw value whose quotient still rounds below maxDist.
	bound := maxDist
	if norm > 0 {
		bound = math.Nextafter(maxDist*norm, math.Inf(1))
	}

	res, err := Raw(g1, g2, densities, bound)
	if err != nil || res.Exceeded {
		return res, err
	}
	if res.Value != 0 {
		res.Value /= norm
	}
	if !(res.Value < maxDist) {
		return Result{Exceeded: true}, nil
	}

	return res, nil
}

// runner holds the mutable state of a single edit graph search.
type runner struct {
	g1, g2    *automaton.Automaton // read-only inputs
	w1, w2    string               // words of g1 and g2
	densities []float64            // per-symbol substitution weights
	maxDist   float64              // pruning bound on popped distances
	visited   [][]bool             // visited[i1][i2]: node already expanded
	pq        nodePQ               // min-heap of frontier entries
}

// newRunner allocates the visited matrix and an empty heap.
func newRunner(g1, g2 *automaton.Automaton, densities []float64, maxDist float64) *runner {
	w1, w2 := g1.Word(), g2.Word()
	visited := make([][]bool, len(w1)+1)
	for i := range visited {
		visited[i] = make([]bool, len(w2)+1)
	}

	return &runner{
		g1:        g1,
		g2:        g2,
		w1:        w1,
		w2:        w2,
		densities: densities,
		maxDist:   maxDist,
		visited:   visited,
		pq:        make(nodePQ, 0, len(w1)+len(w2)+1),
	}
}

// process pops frontier entries in (dist, i1, i2) order until the goal is
// reached, the bound is hit, or the frontier is empty.
func (r *runner) process() (Result, error) {
	n1, n2 := len(r.w1), len(r.w2)
	heap.Push(&r.pq, nodeItem{})
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)

		// 1) Every remaining entry costs at least item.dist: nothing can beat the bound.
		if item.dist >= r.maxDist {
			return Result{Exceeded: true}, nil
		}

		// 2) First goal pop is optimal: weights are non-negative.
		if item.i1 == n1 && item.i2 == n2 {
			return Result{Value: item.dist}, nil
		}

		// 3) Stale duplicate of an expanded node.
		if r.visited[item.i1][item.i2] {
			continue
		}
		r.visited[item.i1][item.i2] = true

		if err := r.expand(item); err != nil {
			return Result{}, err
		}
	}

	return Result{}, fmt.Errorf("%w: |w1|=%d, |w2|=%d", ErrGoalUnreachable, n1, n2)
}

// expand pushes the diagonal, horizontal and vertical successors of item for
// every symbol of the density vector.
func (r *runner) expand(item nodeItem) error {
	i1, i2 := item.i1, item.i2
	for k, density := range r.densities {
		j1, err := advance(r.g1, i1, k, len(r.w1))
		if err != nil {
			return fmt.Errorf("distance: g1: %w", err)
		}
		j2, err := advance(r.g2, i2, k, len(r.w2))
		if err != nil {
			return fmt.Errorf("distance: g2: %w", err)
		}
		n1, n2 := j1-i1, j2-i2

		// Diagonal edge: substitute run w1[i1:j1] by run w2[i2:j2].
		if n1 > 0 && n2 > 0 {
			s1, s2 := r.w1[i1:j1], r.w2[i2:j2]
			weight := 0.0
			if s1 != s2 {
				weight = float64(lcs.Distance(s1, s2)) * density
			}
			r.push(item.dist+weight, j1, j2)
		}

		// Horizontal edge: delete run of w1.
		if n1 > 0 {
			r.push(item.dist+float64(n1), j1, i2)
		}

		// Vertical edge: insert run of w2.
		if n2 > 0 {
			r.push(item.dist+float64(n2), i1, j2)
		}
	}

	return nil
}

// push enqueues (dist, i1, i2) unless the node is already finalised.
func (r *runner) push(dist float64, i1, i2 int) {
	if r.visited[i1][i2] {
		return
	}
	heap.Push(&r.pq, nodeItem{dist: dist, i1: i1, i2: i2})
}

// advance follows symbol k from vertex i of g. An undefined transition keeps
// the position. Targets must stay inside the word and never move backwards.
func advance(g *automaton.Automaton, i, k, wordLen int) (int, error) {
	next, err := g.Delta(automaton.StateOf(i), k)
	if err != nil {
		return 0, err
	}
	j, ok := next.Index()
	if !ok {
		return i, nil
	}
	if j > wordLen {
		return 0, fmt.Errorf("%w: transition %d--[%d]-->%d leaves a word of length %d",
			automaton.ErrOutOfRange, i, k, j, wordLen)
	}
	if j < i {
		return 0, fmt.Errorf("%w: transition %d--[%d]-->%d", ErrBackwardTransition, i, k, j)
	}

	return j, nil
}

// nodeItem is a frontier entry: node (i1, i2) reached at cumulative cost dist.
type nodeItem struct {
	dist   float64
	i1, i2 int
}

// nodePQ is a min-heap of nodeItem ordered lexicographically by (dist, i1, i2),
// which makes pop order a total order independent of push order.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less compares by dist, then i1, then i2.
func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	if a.i1 != b.i1 {
		return a.i1 < b.i1
	}

	return a.i2 < b.i2
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
