// Command matbench benchmarks three dense matrix multiplication
// strategies — serial, one-goroutine-per-row, and a fixed worker pool —
// on the same randomized operand pair, printing wall-clock microseconds
// for each.
//
// Usage:
//
//	matbench                      # 500×500 float64, values in [0,100)
//	matbench --size 1000          # bigger operands
//	matbench --workers 4          # pin the pool size
//	matbench --seed 42            # reproducible fill
//	matbench --plot timings.png   # also render a bar chart
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/mohammed-hamdan-alom/matrix-multiplication/matrix"
)

// DefaultSize is the reference operand dimension: two square 500×500
// matrices.
const DefaultSize = 500

type config struct {
	size    int
	min     float64
	max     float64
	workers int
	seed    int64
	plot    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "matbench:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	cmd := &cobra.Command{
		Use:   "matbench",
		Short: "Compare serial, per-row async and fixed-pool matrix multiplication",
		Long: "matbench constructs two square matrices, fills them with uniform\n" +
			"random values, then times three multiplication strategies on the\n" +
			"same operand pair: a serial triple loop, one goroutine per output\n" +
			"row, and a fixed worker pool over static row chunks.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, cfg)
		},
	}

	cmd.Flags().IntVar(&cfg.size, "size", DefaultSize, "operand dimension (size×size)")
	cmd.Flags().Float64Var(&cfg.min, "min", matrix.DefaultRandomMin, "inclusive lower bound of the random fill")
	cmd.Flags().Float64Var(&cfg.max, "max", matrix.DefaultRandomMax, "exclusive upper bound of the random fill")
	cmd.Flags().IntVar(&cfg.workers, "workers", 0, "pool size for the thread-pool strategy (0 = hardware concurrency)")
	cmd.Flags().Int64Var(&cfg.seed, "seed", 0, "random seed for reproducible fills (0 = fresh seed per matrix)")
	cmd.Flags().StringVar(&cfg.plot, "plot", "", "write a PNG bar chart of the timings to this path")

	return cmd
}

func run(cmd *cobra.Command, cfg *config) error {
	a, err := matrix.NewDense[float64](cfg.size, cfg.size)
	if err != nil {
		return err
	}
	b, err := matrix.NewDense[float64](cfg.size, cfg.size)
	if err != nil {
		return err
	}

	if cfg.seed != 0 {
		// Offset the second seed so the operands stay decorrelated.
		if err = a.RandomInitFrom(rand.New(rand.NewSource(cfg.seed)), cfg.min, cfg.max); err != nil {
			return err
		}
		if err = b.RandomInitFrom(rand.New(rand.NewSource(cfg.seed+1)), cfg.min, cfg.max); err != nil {
			return err
		}
	} else {
		if err = a.RandomInit(cfg.min, cfg.max); err != nil {
			return err
		}
		if err = b.RandomInit(cfg.min, cfg.max); err != nil {
			return err
		}
	}

	var opts []matrix.Option
	if cfg.workers > 0 {
		opts = append(opts, matrix.WithWorkers(cfg.workers))
	}

	timings, err := matrix.Benchmark(cmd.OutOrStdout(), a, b, opts...)
	if err != nil {
		return err
	}

	if cfg.plot != "" {
		if err = savePlot(cfg.plot, cfg.size, timings); err != nil {
			return fmt.Errorf("plot: %w", err)
		}
	}

	return nil
}
