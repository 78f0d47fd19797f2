// Package vector provides an immutable, fixed-length vector of float64 values.
//
// A Vector owns a private copy of its entries: constructing one from a slice
// copies it, and Entries returns a copy. Arithmetic never mutates operands and
// always returns a new Vector.
//
// # Operations
//
//   - Add / Sum: element-wise sum (lengths must match)
//   - Multiply / Product: element-wise scalar product
//   - NormL1: sum of absolute values
//   - NormL2: sum of squares (the squared Euclidean norm, no square root)
//   - Norm: Euclidean norm
//
// # Usage
//
//	u := vector.New([]float64{1, -2, 3})
//	v := vector.New([]float64{4, 5, -6})
//	w, err := u.Add(v) // [5.0  3.0  -3.0]
//
// Use a Builder when entries have to be assembled or replaced incrementally.
package vector
