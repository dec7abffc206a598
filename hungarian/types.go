// Package hungarian defines result types, steps and error definitions
// for the Kuhn–Munkres assignment solver.
package hungarian

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/assign/matrix"
)

// Sentinel errors for assignment solving.
var (
	// ErrNilMatrix is returned when a nil cost matrix is passed.
	ErrNilMatrix = errors.New("hungarian: cost matrix is nil")

	// ErrEmptyMatrix is returned when the cost matrix has zero rows or zero columns.
	ErrEmptyMatrix = errors.New("hungarian: cost matrix must have at least one row and one column")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("hungarian: invalid option supplied")

	// ErrCostRange is returned when the spread of the costs is too wide for
	// the working arithmetic: an integer span max-min above math.MaxInt64, or
	// a float span or reduced cost beyond math.MaxFloat64.
	ErrCostRange = errors.New("hungarian: cost range exceeds working precision")

	// ErrPairOutOfRange is returned when an assignment pair does not address
	// a cell of the cost matrix it is evaluated against.
	ErrPairOutOfRange = errors.New("hungarian: assignment pair out of range")
)

// Pair is one (row, column) pairing of an assignment, 0-based.
type Pair struct {
	Row int
	Col int
}

// Assignment is the solver output: min(M,N) pairs sorted ascending by Row,
// with no row and no column repeated.
type Assignment []Pair

// RowAssignment returns a rows-long slice where out[i] is the column assigned
// to row i, or -1 when row i is unassigned (tall matrices leave rows over).
// Pairs whose Row is outside [0, rows) are ignored.
func (a Assignment) RowAssignment(rows int) []int {
	out := make([]int, rows)
	var i int
	for i = range out {
		out[i] = -1
	}
	for _, p := range a {
		if p.Row >= 0 && p.Row < rows {
			out[p.Row] = p.Col
		}
	}

	return out
}

// ColAssignment is the column-side mirror of RowAssignment: out[j] is the
// row assigned to column j, or -1.
func (a Assignment) ColAssignment(cols int) []int {
	out := make([]int, cols)
	var j int
	for j = range out {
		out[j] = -1
	}
	for _, p := range a {
		if p.Col >= 0 && p.Col < cols {
			out[p.Col] = p.Row
		}
	}

	return out
}

// TotalCost sums the original costs of the selected cells.
// Non-finite costs are summed as-is, so an assignment forced onto an
// infinite cell reports +Inf. The sum is accumulated in T and wraps for
// narrow integer types; widen the costs first when that matters.
//
// Errors: ErrNilMatrix, ErrPairOutOfRange.
// Complexity: O(len(a)).
func TotalCost[T matrix.Number](cost matrix.Matrix[T], a Assignment) (T, error) {
	var sum T
	if cost == nil {
		return sum, ErrNilMatrix
	}
	rows, cols := cost.Rows(), cost.Cols()
	for _, p := range a {
		if p.Row < 0 || p.Row >= rows || p.Col < 0 || p.Col >= cols {
			return sum, fmt.Errorf("TotalCost: pair (%d,%d) in %dx%d: %w", p.Row, p.Col, rows, cols, ErrPairOutOfRange)
		}
		v, err := cost.At(p.Row, p.Col)
		if err != nil {
			return sum, fmt.Errorf("TotalCost: %w", err)
		}
		sum += v
	}

	return sum, nil
}

// Step names one state of the labeling state machine.
type Step int

const (
	stepDone Step = iota // terminal; never reported to hooks

	// StepStar stars independent zeros in row-major order.
	StepStar

	// StepCoverCheck covers every starred column and detects completion.
	StepCoverCheck

	// StepPrimeSearch primes uncovered zeros (column-major scan).
	StepPrimeSearch

	// StepAugment flips the alternating path of primes and stars.
	StepAugment

	// StepAdjust shifts the smallest uncovered value to create a new zero.
	StepAdjust
)

// String returns the kebab-case step name.
func (s Step) String() string {
	switch s {
	case stepDone:
		return "done"
	case StepStar:
		return "star"
	case StepCoverCheck:
		return "cover-check"
	case StepPrimeSearch:
		return "prime-search"
	case StepAugment:
		return "augment"
	case StepAdjust:
		return "adjust"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}
