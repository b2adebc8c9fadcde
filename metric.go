package neighborjoin

import "math"

// DistanceMetric computes the dissimilarity between two points at the
// pipeline's float width. Implementations must be symmetric and return 0
// for identical inputs, or the resulting matrix will fail validation.
type DistanceMetric[F Float] interface {
	Distance(a, b []F) F
}

// DistanceFunc adapts a plain function into a DistanceMetric.
type DistanceFunc[F Float] func(a, b []F) F

func (f DistanceFunc[F]) Distance(a, b []F) F { return f(a, b) }

// EuclideanMetric computes the Euclidean (L2) distance.
type EuclideanMetric[F Float] struct{}

func (EuclideanMetric[F]) Distance(a, b []F) F {
	var sum F
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return F(math.Sqrt(float64(sum)))
}

// ManhattanMetric computes the Manhattan (L1 / city-block) distance.
type ManhattanMetric[F Float] struct{}

func (ManhattanMetric[F]) Distance(a, b []F) F {
	var sum F
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum
}

// PairwiseDistances computes the full n×n distance matrix for n points.
// data is flat row-major with n rows and dims columns. The result is a flat
// []F of length n×n, symmetric with a zero diagonal, ready to pass to Build.
func PairwiseDistances[F Float](data []F, n, dims int, metric DistanceMetric[F]) []F {
	result := make([]F, n*n)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := metric.Distance(data[i*dims:(i+1)*dims], data[j*dims:(j+1)*dims])
			result[i*n+j] = d
			result[j*n+i] = d
		}
	}

	return result
}
