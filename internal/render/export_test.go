package render

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fabtooling/dieyield/internal/domain"
	"github.com/fabtooling/dieyield/internal/engine"
)

func sampleOutput() *engine.Output {
	return &engine.Output{
		Shots:         []domain.Rect{{X: 0, Y: 0, Width: 10, Height: 10}},
		YieldFraction: 0.9,
		Runs: []engine.Run{
			{
				Dice: []domain.DieInstance{
					{Rect: domain.Rect{X: 0, Y: 0, Width: 5, Height: 5}, Status: domain.StatusGood},
					{Rect: domain.Rect{X: 5, Y: 0, Width: 5, Height: 5}, Status: domain.StatusPartial},
				},
				Result: domain.Result{Total: 2, Good: 1, Partial: 1, FabYield: 0.5},
			},
		},
		MeanFabYield: 0.5,
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := WriteJSON(path, sampleOutput()); err != nil {
		t.Fatalf("WriteJSON returned error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	var decoded struct {
		YieldFraction float64 `json:"yield_fraction"`
		Runs          []struct {
			Dice []struct {
				Status string `json:"status"`
			} `json:"dice"`
			Result domain.Result `json:"result"`
		} `json:"runs"`
	}
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal json: %v", err)
	}
	if decoded.YieldFraction != 0.9 {
		t.Fatalf("yield fraction = %v, want 0.9", decoded.YieldFraction)
	}
	if got := decoded.Runs[0].Dice[0].Status; got != "good" {
		t.Fatalf("status serialized as %q, want \"good\"", got)
	}
	if decoded.Runs[0].Result.FabYield != 0.5 {
		t.Fatalf("fab yield = %v, want 0.5", decoded.Runs[0].Result.FabYield)
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.csv")
	results := []domain.Result{
		{Total: 10, Good: 6, Defective: 2, Partial: 1, Lost: 1, FabYield: 6.0 / 9.0},
		{Total: 10, Good: 7, Defective: 1, Partial: 1, Lost: 1, FabYield: 7.0 / 9.0},
	}
	if err := WriteCSV(path, results); err != nil {
		t.Fatalf("WriteCSV returned error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d rows", len(rows))
	}
	if rows[0][0] != "run" || rows[0][6] != "fab_yield" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][2] != "6" || rows[2][2] != "7" {
		t.Fatalf("good counts wrong: %v / %v", rows[1], rows[2])
	}
}

func TestWriteYieldChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	results := []domain.Result{
		{FabYield: 0.5}, {FabYield: 0.6}, {FabYield: 0.55},
	}
	if err := WriteYieldChart(path, results); err != nil {
		t.Fatalf("WriteYieldChart returned error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat chart: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("chart file is empty")
	}
}

func TestWriteYieldChartNeedsTwoRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	if err := WriteYieldChart(path, []domain.Result{{FabYield: 1}}); err == nil {
		t.Fatal("expected error for single-run chart")
	}
}
