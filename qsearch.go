package neighborjoin

import (
	"fmt"
	"math"
)

// FindMinQ returns the pair (i, j), i < j, minimizing the neighbor-joining
// selection criterion Q(i,j) = (n-2)·d(i,j) − sums[i] − sums[j] over the
// upper triangle of dm. dm is a flat row-major n×n matrix; sums[k] must hold
// the row sum of dm over the first n columns.
//
// The full Q matrix is never materialized: the sums[j] subtraction is folded
// into the inner scan and only a running minimum is kept, so the scan is
// O(n²) with zero allocation. The comparison is strictly-less, so on ties
// the first pair in row-major scan order wins; this ordering is part of the
// contract and keeps builds reproducible on inputs with tied Q values.
//
// Panics if n < 2 or if dm/sums are shorter than n requires. These are
// contract violations, not recoverable errors; Build validates its input
// before ever reaching this point.
func FindMinQ[F Float](dm, sums []F, n int) (i, j int) {
	checkQArgs(len(dm), len(sums), n, n)
	return findMinQ(dm, sums, n, n)
}

func checkQArgs(lenDM, lenSums, n, stride int) {
	if n < 2 {
		panic(fmt.Sprintf("neighborjoin: Q scan needs n >= 2, got n=%d", n))
	}
	if lenDM < (n-1)*stride+n {
		panic(fmt.Sprintf("neighborjoin: matrix length %d too short for n=%d", lenDM, n))
	}
	if lenSums < n {
		panic(fmt.Sprintf("neighborjoin: sums length %d too short for n=%d", lenSums, n))
	}
}

// findMinQ scans the active prefix [0, n) of a matrix with the given row
// stride. Split out from FindMinQ so the engine can scan its fixed-stride
// working matrix as the logical dimension shrinks.
func findMinQ[F Float](dm, sums []F, n, stride int) (int, int) {
	nm2 := F(n - 2)
	minQ := F(math.Inf(1))
	bi, bj := -1, -1
	for i := 0; i < n-1; i++ {
		si := sums[i]
		row := dm[i*stride : i*stride+n]
		for j := i + 1; j < n; j++ {
			if q := nm2*row[j] - si - sums[j]; q < minQ {
				minQ = q
				bi, bj = i, j
			}
		}
	}
	return bi, bj
}
