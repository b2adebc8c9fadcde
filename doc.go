// Package neighborjoin implements Neighbor-Joining (NJ) phylogenetic tree
// construction: given a symmetric matrix of pairwise distances over N taxa,
// it builds an unrooted binary tree whose branch lengths approximate the
// input distances under the standard least-squares criterion.
//
// Basic usage:
//
//	dm := []float64{ // flat row-major N×N, symmetric, zero diagonal
//		0, 5, 9,
//		5, 0, 10,
//		9, 10, 0,
//	}
//	tree, err := neighborjoin.Build(dm, 3, []string{"A", "B", "C"}, neighborjoin.DefaultConfig())
//	// tree.Root() is the final join; tree.Leaf("A") looks up a taxon;
//	// tree.Walk visits every (parent, edge) pair.
//
// For raw coordinate data, PairwiseDistances builds the matrix first:
//
//	dm := neighborjoin.PairwiseDistances(points, n, dims, neighborjoin.EuclideanMetric[float64]{})
//
// Gonum users can pass any mat.Symmetric via BuildSym, and BuildBatch
// builds trees for many replicate matrices concurrently.
//
// # Precision
//
// The pipeline is generic over the matrix element type: Build[float32]
// runs the whole algorithm at 32-bit width, halving the O(N²) matrix
// footprint at the cost of precision. The width is fixed per build; mixing
// widths is a compile-time error.
//
// # Determinism and branch lengths
//
// Builds are deterministic: ties in the pair-selection criterion are
// broken by first-in-scan-order (see FindMinQ), and the parallel scan
// reproduces the sequential choice exactly, so the same input always
// yields the identical tree. Branch lengths are not clipped: distances
// that fit no tree exactly can produce negative estimates, which are
// returned unchanged for callers that need the mathematically exact NJ
// output. Consumers requiring biologically valid trees should post-process.
package neighborjoin
