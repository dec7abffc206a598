// Package hungarian - entry points.
//
// This file provides the canonical ways to run the solver:
//
//   - Solve: accept any matrix.Matrix[T] and solve it with the given options.
//   - SolveRows: accept a slice-of-rows literal; thin wrapper over Solve.
//   - Solver: validated, immutable options reused across many calls and
//     goroutines.
//
// Every call builds its own state (working matrix, mask, covers, saved zero,
// path), so nothing leaks between calls.
package hungarian

import (
	"fmt"

	"github.com/katalvlaran/assign/matrix"
)

// Solver solves assignment problems with a fixed, validated configuration.
// A *Solver is safe for concurrent use; the OnStep hook, if any, is then
// invoked concurrently too.
type Solver[T matrix.Number] struct {
	opts Options
}

// NewSolver validates opts once and returns a reusable Solver.
//
// Errors: ErrOptionViolation (wrapped with the offending value).
func NewSolver[T matrix.Number](opts ...Option) (*Solver[T], error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &Solver[T]{opts: o}, nil
}

// Options returns a copy of the effective configuration.
func (s *Solver[T]) Options() Options { return s.opts }

// Solve returns a minimum-cost assignment for cost.
//
// Contracts:
//   - cost is non-nil with at least one row and one column.
//   - cost is read, never written.
//   - the result has exactly min(M,N) pairs, sorted ascending by Row, with
//     unique rows and unique columns.
//
// Integer costs are solved on int64 offsets from the minimum and float costs
// on float64, so narrow element types never wrap during the search.
//
// Errors: ErrNilMatrix, ErrEmptyMatrix, ErrCostRange, or an At error from a
// foreign Matrix implementation.
//
// Complexity: O(n³) time, O(n²) memory, n = max(M,N).
func (s *Solver[T]) Solve(cost matrix.Matrix[T]) (Assignment, error) {
	// Stage 1 - preprocessing on a private copy.
	st, err := newMachine(cost, s.opts)
	if err != nil {
		return nil, err
	}

	// Stage 2 - labeling state machine.
	if err = st.run(s.opts.OnStep); err != nil {
		return nil, err
	}

	// Stage 3 - drop padding and collect stars.
	rows, cols := cost.Rows(), cost.Cols()
	out, err := st.extract(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("hungarian: extract %dx%d: %w", rows, cols, err)
	}

	return out, nil
}

// Solve is the one-shot form of NewSolver(opts...).Solve(cost).
func Solve[T matrix.Number](cost matrix.Matrix[T], opts ...Option) (Assignment, error) {
	s, err := NewSolver[T](opts...)
	if err != nil {
		return nil, err
	}

	return s.Solve(cost)
}

// SolveRows solves a slice-of-rows cost literal.
//
// Errors: ErrEmptyMatrix for no rows / empty first row, matrix.ErrBadShape
// for ragged rows, plus everything Solve returns.
func SolveRows[T matrix.Number](cost [][]T, opts ...Option) (Assignment, error) {
	if len(cost) == 0 || len(cost[0]) == 0 {
		return nil, ErrEmptyMatrix
	}
	m, err := matrix.NewDenseFrom(cost)
	if err != nil {
		return nil, fmt.Errorf("hungarian: %w", err)
	}

	return Solve[T](m, opts...)
}
