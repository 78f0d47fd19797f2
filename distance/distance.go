package distance

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/linalg/vector"
)

// ErrZeroVector is returned by Cosine when either operand has zero norm.
var ErrZeroVector = errors.New("cosine distance undefined for zero vector")

// Dot calculates the dot product of two vectors.
func Dot(a, b vector.Vector) (float64, error) {
	x, y, err := entries(a, b)
	if err != nil {
		return 0, err
	}

	var ret float64
	for i := range x {
		ret += x[i] * y[i]
	}
	return ret, nil
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// It equals the NormL2 of a - b.
func SquaredL2(a, b vector.Vector) (float64, error) {
	diff, err := a.Add(b.Multiply(-1))
	if err != nil {
		return 0, err
	}
	return diff.NormL2(), nil
}

// L1 calculates the Manhattan distance between two vectors.
// It equals the NormL1 of a - b.
func L1(a, b vector.Vector) (float64, error) {
	diff, err := a.Add(b.Multiply(-1))
	if err != nil {
		return 0, err
	}
	return diff.NormL1(), nil
}

// Cosine calculates 1 - cos(a, b).
// It returns ErrZeroVector if either vector has zero norm.
func Cosine(a, b vector.Vector) (float64, error) {
	dot, err := Dot(a, b)
	if err != nil {
		return 0, err
	}
	denom := a.Norm() * b.Norm()
	if denom == 0 {
		return 0, ErrZeroVector
	}
	return 1 - dot/denom, nil
}

func entries(a, b vector.Vector) ([]float64, []float64, error) {
	if a.Len() != b.Len() {
		return nil, nil, &vector.ErrDimensionMismatch{Expected: a.Len(), Actual: b.Len()}
	}
	return a.Entries(), b.Entries(), nil
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricL2 Metric = iota
	MetricL1
	MetricCosine
	MetricDot
)

func (m Metric) String() string {
	switch m {
	case MetricL2:
		return "L2"
	case MetricL1:
		return "L1"
	case MetricCosine:
		return "Cosine"
	case MetricDot:
		return "Dot"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation.
type Func func(a, b vector.Vector) (float64, error)

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricL2:
		return SquaredL2, nil
	case MetricL1:
		return L1, nil
	case MetricCosine:
		return Cosine, nil
	case MetricDot:
		return Dot, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}

// NormalizeL2 returns u scaled to unit Euclidean length.
// It returns false if u has zero norm.
func NormalizeL2(u vector.Vector) (vector.Vector, bool) {
	norm := u.Norm()
	if norm == 0 || math.IsNaN(norm) {
		return vector.Vector{}, false
	}
	return u.Multiply(1 / norm), true
}
