// Package matrix: static row partitioning for the fixed-pool kernel.
package matrix

// rowRange is a half-open chunk [Start, End) of output rows owned by
// exactly one worker.
type rowRange struct {
	Start, End int
}

// partitionRows splits rows output rows into exactly workers contiguous,
// disjoint chunks assigned up front (no runtime rebalancing): the base
// chunk size is rows/workers and the first rows%workers chunks receive
// one extra row each, so chunk sizes differ by at most one and earlier
// chunks carry the surplus. When workers > rows the trailing chunks are
// empty. Requires rows >= 0 and workers >= 1.
// Complexity: O(workers).
func partitionRows(rows, workers int) []rowRange {
	chunks := make([]rowRange, workers)
	base := rows / workers
	surplus := rows % workers

	start := 0
	for w := 0; w < workers; w++ {
		size := base
		if w < surplus {
			size++ // earlier chunks absorb the remainder
		}
		chunks[w] = rowRange{Start: start, End: start + size}
		start += size
	}

	return chunks
}
