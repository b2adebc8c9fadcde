package neighborjoin

import (
	"fmt"
	"math"
)

// validateMatrix checks every input invariant the merge loop relies on:
// dimension, squareness, finiteness, non-negativity, zero diagonal, and
// symmetry within tol. The first violation found is reported with its
// location; no computation happens on invalid input.
func validateMatrix[F Float](dm []F, n int, tol float64) error {
	if n < 3 {
		return fmt.Errorf("neighborjoin: need at least 3 taxa, got %d", n)
	}
	if len(dm) != n*n {
		return fmt.Errorf("neighborjoin: matrix length %d does not match n*n = %d (n=%d)", len(dm), n*n, n)
	}
	for i := 0; i < n; i++ {
		if d := dm[i*n+i]; d != 0 {
			return fmt.Errorf("neighborjoin: diagonal entry (%d,%d) is %v, want 0", i, i, d)
		}
		for j := i + 1; j < n; j++ {
			a := float64(dm[i*n+j])
			b := float64(dm[j*n+i])
			if math.IsNaN(a) || math.IsInf(a, 0) {
				return fmt.Errorf("neighborjoin: distance at (%d,%d) is not finite: %v", i, j, a)
			}
			if math.IsNaN(b) || math.IsInf(b, 0) {
				return fmt.Errorf("neighborjoin: distance at (%d,%d) is not finite: %v", j, i, b)
			}
			if a < 0 {
				return fmt.Errorf("neighborjoin: negative distance %v at (%d,%d)", a, i, j)
			}
			if b < 0 {
				return fmt.Errorf("neighborjoin: negative distance %v at (%d,%d)", b, j, i)
			}
			if diff := math.Abs(a - b); diff > tol {
				return fmt.Errorf("neighborjoin: asymmetry at (%d,%d): %v vs %v differs by %g (tolerance %g)", i, j, a, b, diff, tol)
			}
		}
	}
	return nil
}

// validateLabels checks that exactly n unique, non-empty labels are given.
// Duplicate labels are a caller error, reported rather than silently
// merged.
func validateLabels(labels []string, n int) error {
	if len(labels) != n {
		return fmt.Errorf("neighborjoin: got %d labels for %d taxa", len(labels), n)
	}
	seen := make(map[string]int, n)
	for i, label := range labels {
		if label == "" {
			return fmt.Errorf("neighborjoin: label %d is empty", i)
		}
		if prev, dup := seen[label]; dup {
			return fmt.Errorf("neighborjoin: duplicate label %q at indices %d and %d", label, prev, i)
		}
		seen[label] = i
	}
	return nil
}
