package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/fabtooling/dieyield/internal/domain"
	"github.com/fabtooling/dieyield/internal/engine"
)

// WriteJSON writes the full engine output as indented JSON: the ordered
// die list per run, the shot rectangles, and the tallies.
func WriteJSON(path string, out *engine.Output) error {
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// WriteCSV writes one tally row per Monte Carlo run.
func WriteCSV(path string, results []domain.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"run", "total", "good", "defective", "partial", "lost", "fab_yield"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, r := range results {
		row := []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Total),
			strconv.Itoa(r.Good),
			strconv.Itoa(r.Defective),
			strconv.Itoa(r.Partial),
			strconv.Itoa(r.Lost),
			strconv.FormatFloat(r.FabYield, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
