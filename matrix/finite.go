// SPDX-License-Identifier: MIT

// Package matrix - finite-value queries and sanitization.
//
// Integer element types are always finite; only float types may hold NaN or
// ±Inf. Every query treats NaN, +Inf and -Inf alike as "non-finite".
package matrix

import "math"

// IsFinite reports whether v is neither NaN nor ±Inf.
// The float64 conversion is exact for every float type and never yields a
// non-finite value for an integer type.
func IsFinite[T Number](v T) bool {
	f := float64(v)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// HasNonFinite reports whether any element is NaN or ±Inf.
// Complexity: O(r*c), early exit on the first hit.
func (m *Dense[T]) HasNonFinite() bool {
	for _, v := range m.data {
		if !IsFinite(v) {
			return true
		}
	}

	return false
}

// MaxFinite returns the largest finite element. ok is false when the matrix
// holds no finite element at all.
// Complexity: O(r*c).
func (m *Dense[T]) MaxFinite() (hi T, ok bool) {
	for _, v := range m.data {
		if !IsFinite(v) {
			continue
		}
		if !ok || v > hi {
			hi, ok = v, true
		}
	}

	return hi, ok
}

// MinFinite returns the smallest finite element. ok is false when the matrix
// holds no finite element at all.
// Complexity: O(r*c).
func (m *Dense[T]) MinFinite() (lo T, ok bool) {
	for _, v := range m.data {
		if !IsFinite(v) {
			continue
		}
		if !ok || v < lo {
			lo, ok = v, true
		}
	}

	return lo, ok
}

// ReplaceNonFinite overwrites every NaN/±Inf element with val in place and
// returns how many elements were replaced.
//
// Errors: ErrNaNInf when val itself is not finite (nothing is written).
// Complexity: O(r*c).
func (m *Dense[T]) ReplaceNonFinite(val T) (int, error) {
	if !IsFinite(val) {
		return 0, ErrNaNInf
	}
	var n, i int
	for i = range m.data {
		if !IsFinite(m.data[i]) {
			m.data[i] = val
			n++
		}
	}

	return n, nil
}
