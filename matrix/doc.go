// Package matrix provides a generic, dense, row-major matrix type and
// three interchangeable multiplication strategies for comparing their
// runtime behavior.
//
// 🚀 What is in here?
//
//	A minimal numeric core built for benchmarking, not for a full
//	linear-algebra suite:
//	  • Dense[T] — rectangular grid over any real scalar type
//	  • MulSerial — classic i→j→k triple loop, the baseline
//	  • MulAsync — one goroutine per output row, join-all barrier
//	  • MulPool — fixed worker count over static contiguous row chunks
//	  • Benchmark — times all three on the same operands, reports µs
//
// ✨ Guarantees:
//
//   - All three strategies validate dimensions identically and fail with
//     ErrDimensionMismatch before any work starts.
//   - All three accumulate each output cell in ascending k order, so for
//     a given element type their results are bit-identical.
//   - Parallel variants write through disjoint row views of the result;
//     no locks or atomics are involved.
//
// ⚙️ Usage:
//
//	a, _ := matrix.NewDense[float64](500, 500)
//	b, _ := matrix.NewDense[float64](500, 500)
//	_ = a.RandomInit(0, 100)
//	_ = b.RandomInit(0, 100)
//	_, err := matrix.Benchmark(os.Stdout, a, b)
//
// See example_test.go for runnable examples.
package matrix
