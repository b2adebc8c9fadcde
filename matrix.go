package neighborjoin

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// BuildSym constructs a neighbor-joining tree from any gonum symmetric
// matrix. The matrix is flattened into the package's row-major layout and
// validated exactly like a Build input (zero diagonal, non-negative, finite,
// n >= 3). gonum matrices are float64-only, so this entry point always
// builds at 64-bit width; use Build[float32] directly for the narrow path.
func BuildSym(m mat.Symmetric, labels []string, cfg Config) (*Tree[float64], error) {
	n := m.SymmetricDim()
	if n < 3 {
		return nil, fmt.Errorf("neighborjoin: need at least 3 taxa, got %d", n)
	}
	dm := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := m.At(i, j)
			dm[i*n+j] = v
			dm[j*n+i] = v
		}
	}
	return Build(dm, n, labels, cfg)
}

// SymDense validates a flat row-major distance matrix and returns it as a
// gonum *mat.SymDense for interop with gonum-based consumers. The data is
// copied; dm is not aliased by the result.
func SymDense(dm []float64, n int, tol float64) (*mat.SymDense, error) {
	if err := validateMatrix(dm, n, tol); err != nil {
		return nil, err
	}
	data := make([]float64, n*n)
	copy(data, dm)
	return mat.NewSymDense(n, data), nil
}
