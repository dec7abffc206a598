// Package matrix offers a generic dense numeric matrix used as the cost and
// working storage of the assignment solver.
//
// The matrix package provides:
//
//   - Dense[T], a row-major matrix over any integer or floating-point type,
//     with bounds-checked At/Set that return errors instead of panicking.
//   - Finite-value queries (IsFinite, HasNonFinite, MaxFinite, MinFinite) and
//     in-place sanitization (ReplaceNonFinite).
//   - Row and column reduction (ReduceRows, ReduceCols): subtract each row's
//     or column's minimum so that every row/column holds at least one zero.
//   - Resize, which pads with a fill value or trims to a smaller shape.
//
// Determinism: every operation walks the storage in a fixed row-major order.
//
// See the examples in this package and in hungarian for usage patterns.
package matrix
