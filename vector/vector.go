package vector

import (
	"math"
	"slices"
)

// Vector is an immutable sequence of float64 values.
// The zero value is the empty vector.
//
// Vectors are safe for concurrent reads.
type Vector struct {
	entries []float64
}

// New returns a Vector holding a copy of entries.
// A nil or empty slice yields the empty vector.
func New(entries []float64) Vector {
	return Vector{entries: slices.Clone(entries)}
}

// Len returns the number of entries.
func (u Vector) Len() int {
	return len(u.entries)
}

// Get returns the entry at position.
// It returns *ErrIndexOutOfRange if position is outside [0, Len()).
func (u Vector) Get(position int) (float64, error) {
	if err := checkIndex(position, len(u.entries)); err != nil {
		return 0, err
	}
	return u.entries[position], nil
}

// Entries returns a copy of the entries.
func (u Vector) Entries() []float64 {
	if len(u.entries) == 0 {
		return []float64{}
	}
	return slices.Clone(u.entries)
}

// Equal reports whether u and v have the same length and pairwise equal entries.
// Entries compare with ==, so NaN never equals NaN.
func (u Vector) Equal(v Vector) bool {
	return slices.Equal(u.entries, v.entries)
}

// Add returns the element-wise sum of u and v.
// It returns *ErrDimensionMismatch if the lengths differ.
func (u Vector) Add(v Vector) (Vector, error) {
	if len(u.entries) != len(v.entries) {
		return Vector{}, &ErrDimensionMismatch{Expected: len(u.entries), Actual: len(v.entries)}
	}

	sums := make([]float64, len(u.entries))
	for i := range sums {
		sums[i] = u.entries[i] + v.entries[i]
	}
	return Vector{entries: sums}, nil
}

// Sum returns the element-wise sum of a and b. See Vector.Add.
func Sum(a, b Vector) (Vector, error) {
	return a.Add(b)
}

// Multiply returns u with every entry multiplied by scalar.
func (u Vector) Multiply(scalar float64) Vector {
	products := make([]float64, len(u.entries))
	for i, x := range u.entries {
		products[i] = scalar * x
	}
	return Vector{entries: products}
}

// Product returns v scaled by scalar. See Vector.Multiply.
func Product(v Vector, scalar float64) Vector {
	return v.Multiply(scalar)
}

// NormL1 returns the sum of the absolute values of the entries.
func (u Vector) NormL1() float64 {
	var sum float64
	for _, x := range u.entries {
		sum += math.Abs(x)
	}
	return sum
}

// NormL2 returns the sum of the squares of the entries.
//
// Note: despite the name this is the squared Euclidean norm; no square root
// is taken, so NormL2 of [3 4] is 25. Use Norm for the Euclidean length.
func (u Vector) NormL2() float64 {
	var sum float64
	for _, x := range u.entries {
		sum += x * x
	}
	return sum
}

// Norm returns the Euclidean norm, sqrt(NormL2()).
func (u Vector) Norm() float64 {
	return math.Sqrt(u.NormL2())
}
