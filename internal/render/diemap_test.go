package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/fabtooling/dieyield/internal/domain"
)

func TestDieMapPixels(t *testing.T) {
	sub := domain.Substrate{Shape: domain.Panel, Width: 100, Height: 100}
	dice := []domain.DieInstance{
		{Rect: domain.Rect{X: 40, Y: 40, Width: 20, Height: 20}, Status: domain.StatusGood},
		{Rect: domain.Rect{X: 0, Y: 0, Width: 20, Height: 20}, Status: domain.StatusLost},
	}

	img := DieMap(sub, dice, nil, MapOptions{WidthPx: 100})

	bounds := img.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 100+legendHeight {
		t.Fatalf("image is %dx%d, want 100x%d", bounds.Dx(), bounds.Dy(), 100+legendHeight)
	}

	// Center of the good die; y flips because image rows grow downward.
	if got := img.RGBAAt(50, 50); got != statusColors[domain.StatusGood] {
		t.Fatalf("good die pixel = %v, want %v", got, statusColors[domain.StatusGood])
	}
	// Lost die sits at the bottom-left of the substrate, so the top of
	// its pixel block is at image row 80.
	if got := img.RGBAAt(10, 90); got != statusColors[domain.StatusLost] {
		t.Fatalf("lost die pixel = %v, want %v", got, statusColors[domain.StatusLost])
	}
}

func TestWriteDieMapProducesDecodablePNG(t *testing.T) {
	sub := domain.Substrate{Shape: domain.Wafer, Diameter: 50, EdgeMargin: 2}
	dice := []domain.DieInstance{
		{Rect: domain.Rect{X: -5, Y: -5, Width: 10, Height: 10}, Status: domain.StatusGood},
	}
	shots := []domain.Rect{{X: -25, Y: -25, Width: 25, Height: 25}}

	path := filepath.Join(t.TempDir(), "map.png")
	if err := WriteDieMap(path, sub, dice, shots, MapOptions{WidthPx: 200, ShowShots: true}); err != nil {
		t.Fatalf("WriteDieMap returned error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open rendered map: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode rendered map: %v", err)
	}
	if img.Bounds().Dx() != 200 {
		t.Fatalf("rendered width = %d, want 200", img.Bounds().Dx())
	}
}

func TestDieMapSkipsUnresolvedStatuses(t *testing.T) {
	sub := domain.Substrate{Shape: domain.Panel, Width: 10, Height: 10}
	dice := []domain.DieInstance{
		{Rect: domain.Rect{X: 0, Y: 0, Width: 10, Height: 10}, Status: domain.StatusInside},
	}
	img := DieMap(sub, dice, nil, MapOptions{WidthPx: 10})
	// Pre-simulation dice have no color assignment; background stays white.
	if got := img.RGBAAt(5, 5); got.R != 255 || got.G != 255 || got.B != 255 {
		t.Fatalf("unresolved die was painted: %v", got)
	}
}
