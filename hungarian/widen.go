package hungarian

import (
	"fmt"
	"math"

	"github.com/katalvlaran/assign/matrix"
)

// isFloat reports whether T is a floating-point type.
func isFloat[T matrix.Number]() bool {
	half := 0.5

	return T(half) != 0
}

// isSigned reports whether the integer type T has negative values.
func isSigned[T matrix.Number]() bool {
	var zero T

	return zero-1 < zero
}

// upperBound returns the largest value of the working type.
func upperBound[W working]() W {
	var w W
	switch p := any(&w).(type) {
	case *int64:
		*p = math.MaxInt64
	case *float64:
		*p = math.MaxFloat64
	}

	return w
}

// widenInts maps an integer matrix onto int64 offsets v - min. Shifting every
// cell by the same constant changes each complete assignment of the padded
// square by the same amount, so the optimum is unchanged. The offsets are
// computed in uint64, where they are exact for every integer T.
//
// Errors: ErrCostRange when max - min exceeds math.MaxInt64.
func widenInts[T matrix.Number](src *matrix.Dense[T]) (*matrix.Dense[int64], error) {
	lo, _ := src.MinFinite()
	signed := isSigned[T]()

	var wide bool
	out := matrix.Convert(src, func(v T) int64 {
		d := offset(v, lo, signed)
		if d > math.MaxInt64 {
			wide = true
		}

		return int64(d)
	})
	if wide {
		return nil, fmt.Errorf("hungarian: cost span exceeds int64: %w", ErrCostRange)
	}

	return out, nil
}

// offset returns v - lo for v >= lo without wrapping.
func offset[T matrix.Number](v, lo T, signed bool) uint64 {
	if signed {
		return uint64(int64(v)) - uint64(int64(lo))
	}

	return uint64(v) - uint64(lo)
}
