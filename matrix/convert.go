// SPDX-License-Identifier: MIT

package matrix

// Convert returns a new matrix of the same shape whose elements are f applied
// to the elements of m, in row-major order.
//
// Complexity: Time O(r*c), Space O(r*c).
func Convert[U, T Number](m *Dense[T], f func(T) U) *Dense[U] {
	out := &Dense[U]{r: m.r, c: m.c, data: make([]U, len(m.data))}
	for i, v := range m.data {
		out.data[i] = f(v)
	}

	return out
}
