// SPDX-License-Identifier: MIT

// Package matrix - row/column minimum reduction.
//
// Purpose:
//   - ReduceRows subtracts, from every row, that row's minimum.
//   - ReduceCols subtracts, from every column, that column's minimum.
//
// After ReduceRows followed by ReduceCols every row and every column holds at
// least one zero and no element is negative. Both kernels require finite
// input and return ErrNaNInf otherwise. A difference that does not fit T
// (a wide signed-integer span, a float span beyond MaxFloat64) is reported
// as ErrOverflow. On error the matrix is left untouched.
package matrix

import "fmt"

const (
	ctxReduceRows = "ReduceRows"
	ctxReduceCols = "ReduceCols"
)

// ReduceRows subtracts each row's minimum from that row, in place, and
// returns the subtracted minima (len == Rows()).
//
// Implementation:
//   - Stage 1: reject non-finite storage (ErrNaNInf).
//   - Stage 2: per row, find the minimum and check every difference (ErrOverflow).
//   - Stage 3: subtract.
//
// Complexity: Time O(r*c), Space O(r).
func (m *Dense[T]) ReduceRows() ([]T, error) {
	if m.HasNonFinite() {
		return nil, fmt.Errorf("%s: %w", ctxReduceRows, ErrNaNInf)
	}

	mins := make([]T, m.r)
	var i, j, base int
	var lo T
	for i = 0; i < m.r; i++ {
		base = i * m.c
		lo = m.data[base]
		for j = 1; j < m.c; j++ {
			if m.data[base+j] < lo {
				lo = m.data[base+j]
			}
		}
		for j = 0; j < m.c; j++ {
			if subOverflows(m.data[base+j], lo) {
				return nil, fmt.Errorf("%s: row %d: %w", ctxReduceRows, i, ErrOverflow)
			}
		}
		mins[i] = lo
	}
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] -= mins[i]
		}
	}

	return mins, nil
}

// ReduceCols subtracts each column's minimum from that column, in place, and
// returns the subtracted minima (len == Cols()).
//
// Implementation:
//   - Stage 1: reject non-finite storage (ErrNaNInf).
//   - Stage 2: one row-major pass collects all column minima.
//   - Stage 3: a second pass checks every difference (ErrOverflow).
//   - Stage 4: a third pass subtracts the minima.
//
// Complexity: Time O(r*c), Space O(c).
func (m *Dense[T]) ReduceCols() ([]T, error) {
	if m.HasNonFinite() {
		return nil, fmt.Errorf("%s: %w", ctxReduceCols, ErrNaNInf)
	}

	mins := make([]T, m.c)
	copy(mins, m.data[:m.c])
	var i, j, base int
	for i = 1; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if m.data[base+j] < mins[j] {
				mins[j] = m.data[base+j]
			}
		}
	}
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if subOverflows(m.data[base+j], mins[j]) {
				return nil, fmt.Errorf("%s: column %d: %w", ctxReduceCols, j, ErrOverflow)
			}
		}
	}
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] -= mins[j]
		}
	}

	return mins, nil
}

// subOverflows reports whether v-lo, with v >= lo, leaves the range of T.
// Signed integers wrap to a negative value; floats saturate to +Inf.
func subOverflows[T Number](v, lo T) bool {
	d := v - lo

	return d < 0 || !IsFinite(d)
}
