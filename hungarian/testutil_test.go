// Package hungarian_test provides lightweight helpers shared across *_test.go
// files in this package: an exhaustive reference solver and structural
// checks for assignments.
package hungarian_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/assign/hungarian"
	"github.com/katalvlaran/assign/matrix"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet is the deterministic seed for randomized property tests.
	seedDet = int64(20071)

	// maxBrute is the largest side the exhaustive reference is run on.
	maxBrute = 5
)

// bruteForceMin returns the minimum total over every injective pairing of
// size min(M,N). It enumerates injective maps from the shorter side into the
// longer side, so it is exponential and only meant for tiny matrices.
func bruteForceMin[T matrix.Number](cost [][]T) T {
	rows, cols := len(cost), len(cost[0])
	at := func(short, long int) T { return cost[short][long] }
	nShort, nLong := rows, cols
	if rows > cols {
		at = func(short, long int) T { return cost[long][short] }
		nShort, nLong = cols, rows
	}

	used := make([]bool, nLong)
	var (
		best  T
		found bool
		dfs   func(i int, acc T)
	)
	dfs = func(i int, acc T) {
		if i == nShort {
			if !found || acc < best {
				best, found = acc, true
			}

			return
		}
		var j int
		for j = 0; j < nLong; j++ {
			if used[j] {
				continue
			}
			used[j] = true
			dfs(i+1, acc+at(i, j))
			used[j] = false
		}
	}
	dfs(0, 0)

	return best
}

// sumRows sums the picked cells of a slice-of-rows cost literal.
func sumRows[T matrix.Number](cost [][]T, a hungarian.Assignment) T {
	var s T
	for _, p := range a {
		s += cost[p.Row][p.Col]
	}

	return s
}

// requireValid asserts the structural contract of an assignment for an
// rows×cols cost matrix: min(M,N) pairs, in-range indices, unique rows and
// columns, strictly ascending rows.
func requireValid(t testing.TB, a hungarian.Assignment, rows, cols int) {
	t.Helper()
	require.Len(t, a, min(rows, cols))

	seenRow := make(map[int]bool, len(a))
	seenCol := make(map[int]bool, len(a))
	var i int
	for i = range a {
		p := a[i]
		require.GreaterOrEqual(t, p.Row, 0)
		require.Less(t, p.Row, rows)
		require.GreaterOrEqual(t, p.Col, 0)
		require.Less(t, p.Col, cols)
		require.False(t, seenRow[p.Row], "row %d assigned twice", p.Row)
		require.False(t, seenCol[p.Col], "column %d assigned twice", p.Col)
		seenRow[p.Row], seenCol[p.Col] = true, true
		if i > 0 {
			require.Less(t, a[i-1].Row, p.Row, "pairs must be sorted by row")
		}
	}
}

// randomInts builds a rows×cols matrix with values in [lo, hi].
func randomInts(rng *rand.Rand, rows, cols, lo, hi int) [][]int {
	out := make([][]int, rows)
	var i, j int
	for i = range out {
		out[i] = make([]int, cols)
		for j = range out[i] {
			out[i][j] = lo + rng.Intn(hi-lo+1)
		}
	}

	return out
}

// randomFloats builds a rows×cols matrix with values in [0, scale).
func randomFloats(rng *rand.Rand, rows, cols int, scale float64) [][]float64 {
	out := make([][]float64, rows)
	var i, j int
	for i = range out {
		out[i] = make([]float64, cols)
		for j = range out[i] {
			out[i][j] = rng.Float64() * scale
		}
	}

	return out
}
