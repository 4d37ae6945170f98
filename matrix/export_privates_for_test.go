// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Private Kernels
//
// Purpose:
//   - Expose the unexported static-partitioning helper to matrix_test
//     ONLY, so the chunk-coverage invariants can be verified without
//     widening the production API.
//
// Provided Surface:
//   - RowRange_TestOnly mirrors rowRange.
//   - PartitionRows_TestOnly forwards to partitionRows verbatim.

// RowRange_TestOnly is the test-facing copy of rowRange.
type RowRange_TestOnly struct {
	Start, End int
}

// PartitionRows_TestOnly forwards to the private partitionRows helper.
func PartitionRows_TestOnly(rows, workers int) []RowRange_TestOnly {
	chunks := partitionRows(rows, workers)
	out := make([]RowRange_TestOnly, len(chunks))
	for i, ch := range chunks {
		out[i] = RowRange_TestOnly{Start: ch.Start, End: ch.End}
	}

	return out
}
