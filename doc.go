// Package matrixmultiplication compares three strategies for dense
// matrix multiplication: a serial triple-loop baseline, a
// one-goroutine-per-row variant, and a fixed worker pool over static
// row chunks.
//
// 🚀 What is in here?
//
//	A small benchmarking module, organized in two pieces:
//	  • matrix/       — generic Dense[T] container, the three Mul
//	    strategies, uniform random fills and the timing harness
//	  • cmd/matbench/ — the executable driver: builds two square
//	    operands, randomizes them and prints per-strategy microseconds
//
// ✨ Why three strategies?
//
//   - Serial fixes the reference result and the accumulation order.
//   - Async measures the cost/benefit of maximal task fan-out.
//   - Thread Pool measures static partitioning at hardware concurrency.
//
// All three validate identically, fail identically, and produce
// bit-identical products — only the execution strategy differs.
//
// Quick start:
//
//	go run ./cmd/matbench --size 500
//
// See matrix/doc.go and the package examples for library usage.
package matrixmultiplication
