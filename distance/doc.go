// Package distance provides distance calculations between vectors.
//
// # Supported Metrics
//
//   - MetricL2: Squared Euclidean distance (default)
//   - MetricL1: Manhattan distance
//   - MetricCosine: Cosine distance (1 - cosine similarity)
//   - MetricDot: Dot product (inner product)
//
// All functions reject operands of different lengths with
// *vector.ErrDimensionMismatch.
//
// # Usage
//
//	dist, err := distance.SquaredL2(a, b)
//	sim, err := distance.Dot(a, b)
package distance
