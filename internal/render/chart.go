package render

import (
	"fmt"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/fabtooling/dieyield/internal/domain"
)

// WriteYieldChart plots fab yield per Monte Carlo run as a PNG line
// chart. Needs at least two runs; go-chart cannot plot a single point.
func WriteYieldChart(path string, results []domain.Result) error {
	if len(results) < 2 {
		return fmt.Errorf("yield chart needs at least 2 runs, got %d", len(results))
	}

	xs := make([]float64, len(results))
	ys := make([]float64, len(results))
	for i, r := range results {
		xs[i] = float64(i + 1)
		ys[i] = r.FabYield
	}

	graph := chart.Chart{
		Title: "Fab yield per run",
		XAxis: chart.XAxis{
			Name: "run",
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name: "fab yield",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "fab yield",
				XValues: xs,
				YValues: ys,
				Style:   chart.Style{StrokeColor: chart.ColorGreen, StrokeWidth: 2.0},
			},
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create yield chart: %w", err)
	}
	defer f.Close()
	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render yield chart: %w", err)
	}
	return nil
}
