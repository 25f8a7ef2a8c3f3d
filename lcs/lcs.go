package lcs

// LCS: Longest Common Subsequence
//
// Algorithm Outline (FullMatrix):
//  1. Let n1 = len(a), n2 = len(b). Allocate (n1+1)x(n2+1) table S, row and column 0 at 0.
//  2. For i = 1..n1, j = 1..n2:
//     S[i][j] = max(S[i-1][j], S[i][j-1], S[i-1][j-1] + [a[i-1] == b[j-1]])
//  3. Length = S[n1][n2].
//
// Identical inputs short-circuit to len(a).
// Strings are compared byte by byte: callers slice words by byte offsets.
//
// Complexity:
//
//	Time   = O(n1·n2)
//	Memory = O(n1·n2) (FullMatrix) or O(n2) (TwoRows)

// Length returns the length of a longest common subsequence of a and b.
func Length(a, b string) int {
	return LengthWith(a, b, DefaultOptions())
}

// LengthWith is Length with an explicit memory mode.
func LengthWith(a, b string, opts Options) int {
	if a == b {
		return len(a)
	}
	n1, n2 := len(a), len(b)
	if n1 == 0 || n2 == 0 {
		return 0
	}

	if opts.MemoryMode == TwoRows {
		prev := make([]int, n2+1)
		curr := make([]int, n2+1)
		for i := 1; i <= n1; i++ {
			curr[0] = 0
			for j := 1; j <= n2; j++ {
				curr[j] = step(prev[j], curr[j-1], prev[j-1], a[i-1] == b[j-1])
			}
			prev, curr = curr, prev
		}

		return prev[n2]
	}

	score := make([][]int, n1+1)
	for i := range score {
		score[i] = make([]int, n2+1)
	}
	for i := 1; i <= n1; i++ {
		for j := 1; j <= n2; j++ {
			score[i][j] = step(score[i-1][j], score[i][j-1], score[i-1][j-1], a[i-1] == b[j-1])
		}
	}

	return score[n1][n2]
}

// Distance returns len(a) + len(b) - 2·Length(a, b): the number of byte
// insertions and deletions turning a into b. It is even, non-negative, and
// zero iff a == b.
func Distance(a, b string) int {
	return len(a) + len(b) - 2*Length(a, b)
}

// step applies the LCS recurrence to one cell.
func step(up, left, diag int, match bool) int {
	if match {
		diag++
	}

	return max(up, left, diag)
}
