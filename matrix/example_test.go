package matrix_test

import (
	"fmt"
	"os"

	"github.com/mohammed-hamdan-alom/matrix-multiplication/matrix"
)

// ExampleMulSerial multiplies two hand-filled 2×2 matrices with the
// baseline strategy.
func ExampleMulSerial() {
	a, _ := matrix.NewDense[float64](2, 2)
	_ = a.Set(0, 0, 1)
	_ = a.Set(0, 1, 2)
	_ = a.Set(1, 0, 3)
	_ = a.Set(1, 1, 4)

	b, _ := matrix.NewDense[float64](2, 2)
	_ = b.Set(0, 0, 5)
	_ = b.Set(0, 1, 6)
	_ = b.Set(1, 0, 7)
	_ = b.Set(1, 1, 8)

	c, err := matrix.MulSerial(a, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	_ = c.Print(os.Stdout)
	// Output:
	// 19 22
	// 43 50
}

// ExampleMulPool shows the fixed-pool strategy with an explicit worker
// count; the result is identical to the serial product.
func ExampleMulPool() {
	a, _ := matrix.NewDense[float64](2, 2)
	_ = a.Set(0, 0, 1)
	_ = a.Set(1, 1, 1) // identity

	b, _ := matrix.NewDense[float64](2, 2)
	_ = b.Set(0, 0, 5)
	_ = b.Set(0, 1, 6)
	_ = b.Set(1, 0, 7)
	_ = b.Set(1, 1, 8)

	c, err := matrix.MulPool(a, b, matrix.WithWorkers(2))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	_ = c.Print(os.Stdout)
	// Output:
	// 5 6
	// 7 8
}

// ExampleMulSerial_mismatch demonstrates the shared failure contract:
// non-conformable operands are rejected before any work starts.
func ExampleMulSerial_mismatch() {
	a, _ := matrix.NewDense[float64](2, 3)
	b, _ := matrix.NewDense[float64](2, 3)

	_, err := matrix.MulSerial(a, b)
	fmt.Println(err)
	// Output:
	// MulSerial: ValidateMulCompatible: matrix: dimension mismatch
}
