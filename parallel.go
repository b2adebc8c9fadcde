package neighborjoin

import (
	"math"
	"sync"
)

// parallelMinDim is the smallest active dimension at which splitting the
// Q scan across goroutines beats running it on one. Below this the scan is
// a few microseconds and the fan-out/fan-in overhead dominates.
const parallelMinDim = 64

// qCandidate is one worker's running minimum: the best Q value seen and the
// pair that achieved it.
type qCandidate[F Float] struct {
	q    F
	i, j int
}

// FindMinQParallel is FindMinQ with the row scan split across workers
// goroutines. Each worker scans a contiguous ascending range of rows,
// keeping its local first-pair-wins minimum; the final reduction visits
// workers in ascending row order with a strictly-less comparison, so the
// result is identical to FindMinQ, ties included.
//
// Falls back to the sequential scan when workers <= 1 or n is too small for
// the goroutine overhead to pay off.
func FindMinQParallel[F Float](dm, sums []F, n, workers int) (i, j int) {
	checkQArgs(len(dm), len(sums), n, n)
	if workers <= 1 || n < parallelMinDim {
		return findMinQ(dm, sums, n, n)
	}
	return findMinQParallel(dm, sums, n, n, workers)
}

func findMinQParallel[F Float](dm, sums []F, n, stride, workers int) (int, int) {
	// Only rows 0..n-2 contribute upper-triangle pairs.
	rows := n - 1
	rowsPerWorker := (rows + workers - 1) / workers

	results := make([]qCandidate[F], workers)
	for w := range results {
		results[w] = qCandidate[F]{q: F(math.Inf(1)), i: -1, j: -1}
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := min(start+rowsPerWorker, rows)
		if start >= rows {
			break
		}

		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			nm2 := F(n - 2)
			best := qCandidate[F]{q: F(math.Inf(1)), i: -1, j: -1}
			for i := start; i < end; i++ {
				si := sums[i]
				row := dm[i*stride : i*stride+n]
				for j := i + 1; j < n; j++ {
					if q := nm2*row[j] - si - sums[j]; q < best.q {
						best = qCandidate[F]{q: q, i: i, j: j}
					}
				}
			}
			results[w] = best
		}(w, start, end)
	}
	wg.Wait()

	// Workers own ascending row ranges, so an in-order strictly-less
	// reduction reproduces the sequential first-pair-wins tie-break.
	best := qCandidate[F]{q: F(math.Inf(1)), i: -1, j: -1}
	for _, r := range results {
		if r.i >= 0 && r.q < best.q {
			best = r
		}
	}
	return best.i, best.j
}

// PairwiseDistancesParallel computes the full n×n distance matrix using
// multiple goroutines. data is flat row-major with n rows and dims columns.
// Each worker handles a contiguous range of source rows and computes
// dist(i,j) for all j > i in that range; ranges don't overlap, so writes
// need no synchronization. The result is bitwise identical to
// PairwiseDistances. Falls back to the sequential version if workers <= 1.
func PairwiseDistancesParallel[F Float](data []F, n, dims int, metric DistanceMetric[F], workers int) []F {
	if workers <= 1 || n <= 1 {
		return PairwiseDistances(data, n, dims, metric)
	}

	result := make([]F, n*n)

	var wg sync.WaitGroup
	rowsPerWorker := (n + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := min(start+rowsPerWorker, n)
		if start >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				for j := i + 1; j < n; j++ {
					d := metric.Distance(data[i*dims:(i+1)*dims], data[j*dims:(j+1)*dims])
					result[i*n+j] = d
					result[j*n+i] = d
				}
			}
		}(start, end)
	}

	wg.Wait()
	return result
}
