package neighborjoin

import (
	"fmt"
	"runtime"
)

// Config controls tree construction. Start with [DefaultConfig] and
// override the fields you need.
type Config struct {
	// Workers controls the number of goroutines used for the Q-criterion
	// scan on large active sets (the only parallelizable stage; the merge
	// loop itself is inherently sequential). 0 means use runtime.NumCPU().
	// The result is identical for any worker count. Default: 0 (auto).
	Workers int

	// SymmetryTolerance is the maximum absolute difference allowed between
	// d(i,j) and d(j,i) during input validation. 0 means the default.
	// Default: 1e-9.
	SymmetryTolerance float64
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		SymmetryTolerance: defaultSymmetryTolerance,
	}
}

const defaultSymmetryTolerance = 1e-9

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.SymmetryTolerance == 0 {
		cfg.SymmetryTolerance = defaultSymmetryTolerance
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive
// error if not.
func validateConfig(cfg *Config) error {
	if cfg.Workers < 0 {
		return fmt.Errorf("neighborjoin: Workers must be >= 0 (0 means auto), got %d", cfg.Workers)
	}
	if cfg.SymmetryTolerance < 0 {
		return fmt.Errorf("neighborjoin: SymmetryTolerance must be >= 0, got %g", cfg.SymmetryTolerance)
	}
	return nil
}

// Build constructs a neighbor-joining tree from a pairwise distance matrix.
// dm is flat row-major n×n: symmetric within cfg.SymmetryTolerance,
// non-negative, finite, with a zero diagonal. labels must contain exactly n
// unique, non-empty taxon labels; labels[i] names row i. n must be >= 3.
//
// The float width F is fixed for the whole build; Build[float32] halves the
// matrix footprint at the cost of precision. dm is copied, never mutated.
//
// The returned tree has exactly n leaves, n−2 internal nodes, and 2n−3
// edges. Branch lengths are the standard least-squares estimates and are
// NOT clipped: non-additive inputs can legitimately produce negative
// lengths, and they are passed through unchanged. Builds are deterministic;
// the same input always yields the identical tree (see FindMinQ for the
// tie-break rule).
func Build[F Float](dm []F, n int, labels []string, cfg Config) (*Tree[F], error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if err := validateMatrix(dm, n, cfg.SymmetryTolerance); err != nil {
		return nil, err
	}
	if err := validateLabels(labels, n); err != nil {
		return nil, err
	}

	b := newBuilder(dm, n, labels, cfg)
	for b.n > 2 {
		b.step()
	}
	return b.finalize(), nil
}
