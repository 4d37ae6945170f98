package main

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mohammed-hamdan-alom/matrix-multiplication/matrix"
)

// savePlot renders the measured timings as a bar chart, one bar per
// strategy in report order, and writes it to path (format inferred from
// the extension, typically .png).
func savePlot(path string, size int, timings []matrix.Timing) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Matrix multiplication, %d×%d", size, size)
	p.Y.Label.Text = "elapsed (µs)"

	values := make(plotter.Values, len(timings))
	labels := make([]string, len(timings))
	for i, t := range timings {
		values[i] = float64(t.Microseconds())
		labels[i] = t.Label
	}

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalX(labels...)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
