package hungarian_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/assign/hungarian"
	"github.com/katalvlaran/assign/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolve_Square3 checks the multiplication-table instance against the
// exhaustive reference. The diagonal (1+4+9=14) is the most expensive choice;
// the anti-diagonal 3+4+3=10 is the unique optimum.
func TestSolve_Square3(t *testing.T) {
	cost := [][]int{
		{1, 2, 3},
		{2, 4, 6},
		{3, 6, 9},
	}
	got, err := hungarian.SolveRows(cost)
	require.NoError(t, err)
	requireValid(t, got, 3, 3)

	require.Equal(t, bruteForceMin(cost), sumRows(cost, got))
	require.Equal(t, 10, sumRows(cost, got))
	require.Equal(t, hungarian.Assignment{{0, 2}, {1, 1}, {2, 0}}, got)
}

// TestSolve_Rectangular2x3 checks a wide matrix: two pairs, one per row,
// minimum over all 2-of-3 column choices.
func TestSolve_Rectangular2x3(t *testing.T) {
	cost := [][]float64{
		{1, 2, 3},
		{2, 4, 6},
	}
	got, err := hungarian.SolveRows(cost)
	require.NoError(t, err)
	requireValid(t, got, 2, 3)

	require.Equal(t, bruteForceMin(cost), sumRows(cost, got))
	require.Equal(t, hungarian.Assignment{{0, 1}, {1, 0}}, got)
}

// TestSolve_Tall checks a tall matrix: one pair per column, extra rows stay
// unassigned.
func TestSolve_Tall(t *testing.T) {
	cost := [][]int{
		{7, 3},
		{1, 9},
		{4, 4},
		{8, 2},
	}
	got, err := hungarian.SolveRows(cost)
	require.NoError(t, err)
	requireValid(t, got, 4, 2)
	require.Equal(t, 3, sumRows(cost, got))
	require.Equal(t, []int{-1, 0, -1, 1}, got.RowAssignment(4))
	require.Equal(t, []int{1, 3}, got.ColAssignment(2))
}

// TestSolve_SingleCell covers the 1×1 and 1×N degenerate-but-valid shapes.
func TestSolve_SingleCell(t *testing.T) {
	got, err := hungarian.SolveRows([][]float64{{42}})
	require.NoError(t, err)
	require.Equal(t, hungarian.Assignment{{0, 0}}, got)

	got, err = hungarian.SolveRows([][]int{{5, 3, 8, 3}})
	require.NoError(t, err)
	require.Equal(t, hungarian.Assignment{{0, 1}}, got, "first cheapest column wins")

	got, err = hungarian.SolveRows([][]int{{5}, {3}, {8}})
	require.NoError(t, err)
	require.Equal(t, hungarian.Assignment{{1, 0}}, got)
}

// TestSolve_Ties: an all-zero matrix has n! optima; exactly one star per row
// and column must survive.
func TestSolve_Ties(t *testing.T) {
	cost := make([][]float64, 4)
	for i := range cost {
		cost[i] = make([]float64, 4)
	}
	got, err := hungarian.SolveRows(cost)
	require.NoError(t, err)
	requireValid(t, got, 4, 4)
	require.Equal(t, hungarian.Assignment{{0, 0}, {1, 1}, {2, 2}, {3, 3}}, got)

	// Repeated zeros in a single row and column.
	shared := [][]int{
		{0, 0, 0},
		{0, 5, 5},
		{0, 5, 5},
	}
	got, err = hungarian.SolveRows(shared)
	require.NoError(t, err)
	requireValid(t, got, 3, 3)
	require.Equal(t, bruteForceMin(shared), sumRows(shared, got))
}

// TestSolve_NegativeAndMixedCosts: reduction makes negative inputs legal.
func TestSolve_NegativeAndMixedCosts(t *testing.T) {
	cost := [][]int{
		{-5, 2, 0},
		{3, -1, 4},
		{0, 0, -7},
	}
	got, err := hungarian.SolveRows(cost)
	require.NoError(t, err)
	requireValid(t, got, 3, 3)
	require.Equal(t, -13, sumRows(cost, got))
}

// TestSolve_MatchesBruteForce_Ints compares against the exhaustive reference
// on random integer matrices of every shape up to 5×5.
func TestSolve_MatchesBruteForce_Ints(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	var rows, cols, rep int
	for rows = 1; rows <= maxBrute; rows++ {
		for cols = 1; cols <= maxBrute; cols++ {
			for rep = 0; rep < 20; rep++ {
				cost := randomInts(rng, rows, cols, 1, 50)
				got, err := hungarian.SolveRows(cost)
				require.NoError(t, err)
				requireValid(t, got, rows, cols)
				require.Equal(t, bruteForceMin(cost), sumRows(cost, got), "cost=%v", cost)
			}
		}
	}
}

// TestSolve_MatchesBruteForce_SmallRange uses a tiny value range to force
// many ties and many Adjust rounds.
func TestSolve_MatchesBruteForce_SmallRange(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 1))
	for rep := 0; rep < 300; rep++ {
		rows, cols := 1+rng.Intn(maxBrute), 1+rng.Intn(maxBrute)
		cost := randomInts(rng, rows, cols, 0, 3)
		got, err := hungarian.SolveRows(cost)
		require.NoError(t, err)
		requireValid(t, got, rows, cols)
		require.Equal(t, bruteForceMin(cost), sumRows(cost, got), "cost=%v", cost)
	}
}

// TestSolve_MatchesBruteForce_Floats runs non-integer costs; totals are
// compared with a tolerance since float sums depend on order.
func TestSolve_MatchesBruteForce_Floats(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 2))
	for rep := 0; rep < 300; rep++ {
		rows, cols := 1+rng.Intn(maxBrute), 1+rng.Intn(maxBrute)
		cost := randomFloats(rng, rows, cols, 100)
		got, err := hungarian.SolveRows(cost)
		require.NoError(t, err)
		requireValid(t, got, rows, cols)
		require.InDelta(t, bruteForceMin(cost), sumRows(cost, got), 1e-9, "cost=%v", cost)
	}
}

// TestSolve_OtherElementTypes exercises the generic path with narrow types.
func TestSolve_OtherElementTypes(t *testing.T) {
	c32 := [][]float32{{1, 2, 3}, {2, 4, 6}, {3, 6, 9}}
	got, err := hungarian.SolveRows(c32)
	require.NoError(t, err)
	require.Equal(t, float32(10), sumRows(c32, got))

	cu := [][]uint16{{9, 2, 7}, {6, 4, 3}, {5, 8, 1}}
	gotU, err := hungarian.SolveRows(cu)
	require.NoError(t, err)
	require.Equal(t, bruteForceMin(cu), sumRows(cu, gotU))
}

// widenRows copies an integer cost literal into int64 so reference totals
// cannot wrap.
func widenRows[T ~int8 | ~int16 | ~int32 | ~int64 | ~uint8](cost [][]T) [][]int64 {
	out := make([][]int64, len(cost))
	for i := range cost {
		out[i] = make([]int64, len(cost[i]))
		for j, v := range cost[i] {
			out[i][j] = int64(v)
		}
	}

	return out
}

// TestSolve_NarrowSignedFullRange draws int8 costs over the whole type range,
// where max-min does not fit int8, and compares against the exhaustive
// reference on widened values.
func TestSolve_NarrowSignedFullRange(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 5))
	for rep := 0; rep < 500; rep++ {
		rows, cols := 1+rng.Intn(maxBrute), 1+rng.Intn(maxBrute)
		cost := make([][]int8, rows)
		for i := range cost {
			cost[i] = make([]int8, cols)
			for j := range cost[i] {
				cost[i][j] = int8(rng.Intn(256) - 128)
			}
		}
		got, err := hungarian.SolveRows(cost)
		require.NoError(t, err)
		requireValid(t, got, rows, cols)
		wide := widenRows(cost)
		require.Equal(t, bruteForceMin(wide), sumRows(wide, got), "cost=%v", cost)
	}
}

// TestSolve_NarrowSignedKnownCase is a 4×4 int8 instance whose optimum is -252.
func TestSolve_NarrowSignedKnownCase(t *testing.T) {
	cost := [][]int8{
		{-113, 71, 59, 1},
		{6, -71, 44, -56},
		{36, 70, 47, 34},
		{113, -40, -102, 11},
	}
	got, err := hungarian.SolveRows(cost)
	require.NoError(t, err)
	requireValid(t, got, 4, 4)
	wide := widenRows(cost)
	require.Equal(t, bruteForceMin(wide), sumRows(wide, got))
	require.Equal(t, int64(-252), sumRows(wide, got))
}

// TestSolve_WideIntegerExtremes: spans up to math.MaxInt64 are solved
// exactly; wider spans are rejected instead of wrapping.
func TestSolve_WideIntegerExtremes(t *testing.T) {
	u := [][]uint64{
		{math.MaxUint64, math.MaxUint64 - 5},
		{math.MaxUint64 - 5, math.MaxUint64 - 1},
	}
	got, err := hungarian.SolveRows(u)
	require.NoError(t, err)
	require.Equal(t, hungarian.Assignment{{0, 1}, {1, 0}}, got)

	_, err = hungarian.SolveRows([][]int64{{math.MinInt64, math.MaxInt64}, {0, 0}})
	require.ErrorIs(t, err, hungarian.ErrCostRange)

	_, err = hungarian.SolveRows([][]uint64{{0}, {math.MaxUint64}})
	require.ErrorIs(t, err, hungarian.ErrCostRange)

	_, err = hungarian.SolveRows([][]float64{{math.MaxFloat64, -math.MaxFloat64}, {0, 0}})
	require.ErrorIs(t, err, hungarian.ErrCostRange)
}

// TestSolve_Deterministic: identical input yields identical output.
func TestSolve_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 3))
	cost := randomInts(rng, 6, 4, 1, 10)

	first, err := hungarian.SolveRows(cost)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := hungarian.SolveRows(cost)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

// TestSolve_InputUntouched: the caller's matrix is never modified.
func TestSolve_InputUntouched(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{4, 1}, {2, math.Inf(1)}, {3, 3}})
	require.NoError(t, err)
	before := m.String()

	_, err = hungarian.Solve[float64](m)
	require.NoError(t, err)
	require.Equal(t, before, m.String())
}

// TestSolve_InfinityAvoided: an infinite cell is never selected when a
// finite complete assignment exists.
func TestSolve_InfinityAvoided(t *testing.T) {
	inf := math.Inf(1)
	cost := [][]float64{
		{inf, 1, 2},
		{1, 3, 2},
		{2, 2, 1},
	}
	got, err := hungarian.SolveRows(cost)
	require.NoError(t, err)
	requireValid(t, got, 3, 3)
	for _, p := range got {
		assert.False(t, math.IsInf(cost[p.Row][p.Col], 0), "picked infinite cell %v", p)
	}
	require.Equal(t, 3.0, sumRows(cost, got))
}

// TestSolve_InfPolicy demonstrates why the penalty is the default: with
// InfAsMax the infinite cell (0,0) ties into the optimum, with InfPenalty
// the only all-finite assignment wins.
func TestSolve_InfPolicy(t *testing.T) {
	inf := math.Inf(1)
	cost := [][]float64{
		{inf, 5},
		{5, 0},
	}

	asMax, err := hungarian.SolveRows(cost, hungarian.WithInfPolicy(hungarian.InfAsMax))
	require.NoError(t, err)
	require.Equal(t, hungarian.Assignment{{0, 0}, {1, 1}}, asMax)

	penalty, err := hungarian.SolveRows(cost)
	require.NoError(t, err)
	require.Equal(t, hungarian.Assignment{{0, 1}, {1, 0}}, penalty)
	require.Equal(t, 10.0, sumRows(cost, penalty))
}

// TestSolve_NonFiniteEverywhere: NaN/-Inf are sanitized like +Inf, and a
// matrix without any finite cell still yields a structurally valid result.
func TestSolve_NonFiniteEverywhere(t *testing.T) {
	inf, nan := math.Inf(1), math.NaN()

	got, err := hungarian.SolveRows([][]float64{
		{nan, 4, math.Inf(-1)},
		{2, nan, 3},
	})
	require.NoError(t, err)
	requireValid(t, got, 2, 3)
	require.Equal(t, hungarian.Assignment{{0, 1}, {1, 0}}, got)

	got, err = hungarian.SolveRows([][]float64{{inf, inf}, {inf, inf}, {nan, inf}})
	require.NoError(t, err)
	requireValid(t, got, 3, 2)
}

// TestSolve_FiniteAssignmentImpossible: when every complete assignment hits
// an infinite cell the solver still returns one, and TotalCost reports +Inf.
func TestSolve_FiniteAssignmentImpossible(t *testing.T) {
	inf := math.Inf(1)
	m, err := matrix.NewDenseFrom([][]float64{
		{inf, inf},
		{1, 2},
	})
	require.NoError(t, err)

	got, err := hungarian.Solve[float64](m)
	require.NoError(t, err)
	requireValid(t, got, 2, 2)

	total, err := hungarian.TotalCost[float64](m, got)
	require.NoError(t, err)
	require.True(t, math.IsInf(total, 1))
}

// TestSolve_Epsilon: near-zero float residue is treated as zero only when a
// tolerance is configured; the optimum is the same either way here.
func TestSolve_Epsilon(t *testing.T) {
	cost := [][]float64{
		{0.1 + 0.2, 0.3, 1},
		{0.3, 0.1 + 0.2, 1},
		{1, 1, 0.3},
	}
	exact, err := hungarian.SolveRows(cost)
	require.NoError(t, err)
	tolerant, err := hungarian.SolveRows(cost, hungarian.WithEpsilon(1e-9))
	require.NoError(t, err)

	requireValid(t, exact, 3, 3)
	requireValid(t, tolerant, 3, 3)
	require.InDelta(t, bruteForceMin(cost), sumRows(cost, exact), 1e-12)
	require.InDelta(t, bruteForceMin(cost), sumRows(cost, tolerant), 1e-9)
}

// TestSolve_Errors covers the degenerate-input contract.
func TestSolve_Errors(t *testing.T) {
	_, err := hungarian.Solve[float64](nil)
	require.ErrorIs(t, err, hungarian.ErrNilMatrix)

	var nilDense *matrix.Dense[int]
	_, err = hungarian.Solve[int](nilDense)
	require.ErrorIs(t, err, hungarian.ErrNilMatrix)

	_, err = hungarian.SolveRows([][]int{})
	require.ErrorIs(t, err, hungarian.ErrEmptyMatrix)

	_, err = hungarian.SolveRows([][]int{{}})
	require.ErrorIs(t, err, hungarian.ErrEmptyMatrix)

	_, err = hungarian.SolveRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = hungarian.SolveRows([][]int{{1}}, hungarian.WithEpsilon(-1))
	require.ErrorIs(t, err, hungarian.ErrOptionViolation)
}

// TestTotalCost checks summation and range validation.
func TestTotalCost(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	total, err := hungarian.TotalCost[int](m, hungarian.Assignment{{0, 1}, {1, 0}})
	require.NoError(t, err)
	require.Equal(t, 5, total)

	_, err = hungarian.TotalCost[int](m, hungarian.Assignment{{2, 0}})
	require.ErrorIs(t, err, hungarian.ErrPairOutOfRange)

	_, err = hungarian.TotalCost[int](nil, nil)
	require.ErrorIs(t, err, hungarian.ErrNilMatrix)
}
