// SPDX-License-Identifier: MIT

// Package matrix - shape changes (padding and trimming).
package matrix

import "fmt"

const ctxResize = "Resize"

// Resize returns a new rows×cols matrix whose top-left overlap with m is
// copied from m and whose remaining cells hold fill.
//
// Growing pads with fill (e.g. squaring a rectangular cost matrix); shrinking
// trims trailing rows/columns. m itself is never modified, and the result
// does not share storage with it.
//
// Errors: ErrInvalidDimensions when rows<=0 or cols<=0.
// Complexity: Time O(rows*cols), Space O(rows*cols).
func (m *Dense[T]) Resize(rows, cols int, fill T) (*Dense[T], error) {
	out, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxResize, rows, cols, err)
	}

	keepR, keepC := min(rows, m.r), min(cols, m.c)
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		if i < keepR {
			copy(out.data[base:base+keepC], m.data[i*m.c:i*m.c+keepC])
			j = keepC
		} else {
			j = 0
		}
		for ; j < cols; j++ {
			out.data[base+j] = fill
		}
	}

	return out, nil
}
