// Package assign is a small toolkit for the rectangular assignment problem:
// given an M×N cost matrix, pick min(M,N) cells, no two in the same row or
// column, with the smallest possible total.
//
// 🚀 What is inside?
//
//	• matrix/   : generic dense matrix with the preprocessing primitives
//	               the solver needs (resize/pad, finite scans, row/column reduction)
//	• hungarian/: Kuhn-Munkres labeling solver, O(n³), any integer or float type
//	• cmd/munkres: demo CLI: random or YAML cost matrix in, assignment out
//
// ✨ Why?
//
//   - Rectangular input handled by padding, not by the caller
//   - NaN/±Inf costs sanitized up front, with a selectable policy
//   - Deterministic tie-breaking: same input, same pairs
//   - A configured Solver is immutable and safe to share between goroutines
//
// Quick example:
//
//	pairs, _ := hungarian.SolveRows([][]float64{
//		{4, 1, 3},
//		{2, 0, 5},
//	})
//	// pairs == [{0 1} {1 0}], total cost 3
//
//	go install github.com/katalvlaran/assign/cmd/munkres@latest
package assign
