// Package matrix: scalar type constraint shared by all kernels.
package matrix

// Real enumerates the scalar types Dense can hold: any real-valued type
// closed under addition and multiplication with a zero value. Unsigned
// integers are excluded on purpose — the randomization range arithmetic
// (max-min spans) assumes signed semantics.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}
