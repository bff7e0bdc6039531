// Package render turns an engine output into artifacts for the
// downstream collaborators: a colored die-map PNG, a Monte Carlo yield
// chart, and JSON/CSV exports.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/fabtooling/dieyield/internal/domain"
)

// Status color convention shared with the interactive plot:
// good=green, defective=red, partial=yellow, lost=grey.
var statusColors = map[domain.DieStatus]color.RGBA{
	domain.StatusGood:      {0, 170, 0, 255},
	domain.StatusDefective: {220, 0, 0, 255},
	domain.StatusPartial:   {240, 200, 0, 255},
	domain.StatusLost:      {169, 169, 169, 255},
}

const legendHeight = 24

// MapOptions control die-map rendering.
type MapOptions struct {
	// WidthPx is the target image width; height follows the substrate's
	// aspect ratio. Zero means 800.
	WidthPx int

	// ShowShots overlays the reticle-shot outlines.
	ShowShots bool
}

// DieMap draws each die as a colored rectangle over the substrate
// bounding box, with the effective substrate outline and a legend.
func DieMap(sub domain.Substrate, dice []domain.DieInstance, shots []domain.Rect, opts MapOptions) *image.RGBA {
	bounds := sub.Bounds()
	widthPx := opts.WidthPx
	if widthPx <= 0 {
		widthPx = 800
	}
	scale := float64(widthPx) / bounds.Width
	heightPx := int(math.Ceil(bounds.Height * scale))

	img := image.NewRGBA(image.Rect(0, 0, widthPx, heightPx+legendHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	// Substrate coordinates grow upward; image rows grow downward.
	toPx := func(x, y float64) (int, int) {
		return int((x - bounds.X) * scale), heightPx - int((y-bounds.Y)*scale)
	}

	for _, d := range dice {
		c, ok := statusColors[d.Status]
		if !ok {
			continue
		}
		x0, y1 := toPx(d.X, d.Y)
		x1, y0 := toPx(d.X+d.Width, d.Y+d.Height)
		fillRect(img, x0, y0, x1, y1, c)
	}

	if opts.ShowShots {
		for _, s := range shots {
			x0, y1 := toPx(s.X, s.Y)
			x1, y0 := toPx(s.X+s.Width, s.Y+s.Height)
			strokeRect(img, x0, y0, x1, y1, color.RGBA{80, 80, 80, 255})
		}
	}

	drawBoundary(img, sub, toPx, scale)
	drawLegend(img, heightPx)

	return img
}

// WriteDieMap renders the die map and writes it as PNG.
func WriteDieMap(path string, sub domain.Substrate, dice []domain.DieInstance, shots []domain.Rect, opts MapOptions) error {
	img := DieMap(sub, dice, shots, opts)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create die map: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode die map: %w", err)
	}
	return nil
}

// drawBoundary outlines the effective substrate area: the margin-shrunk
// circle for a wafer, the margin-inset rectangle for a panel.
func drawBoundary(img *image.RGBA, sub domain.Substrate, toPx func(x, y float64) (int, int), scale float64) {
	outline := color.RGBA{0, 0, 0, 255}
	if sub.Shape == domain.Wafer {
		r := sub.EffectiveRadius()
		if r <= 0 {
			return
		}
		cx, cy := toPx(0, 0)
		strokeCircle(img, cx, cy, int(r*scale), outline)
		return
	}
	m := sub.EdgeMargin
	x0, y1 := toPx(m, m)
	x1, y0 := toPx(sub.Width-m, sub.Height-m)
	strokeRect(img, x0, y0, x1, y1, outline)
}

func drawLegend(img *image.RGBA, topY int) {
	entries := []struct {
		label  string
		status domain.DieStatus
	}{
		{"good", domain.StatusGood},
		{"defective", domain.StatusDefective},
		{"partial", domain.StatusPartial},
		{"lost", domain.StatusLost},
	}
	x := 8
	for _, e := range entries {
		c := statusColors[e.status]
		fillRect(img, x, topY+6, x+12, topY+18, c)
		drawLabel(img, x+16, topY+5, e.label)
		x += 16 + len(e.label)*7 + 14
	}
}

// drawLabel renders text with the fixed 7x13 basic font.
func drawLabel(img *image.RGBA, x, y int, label string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{0, 0, 0, 255}),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y + 13)},
	}
	d.DrawString(label)
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	draw.Draw(img, image.Rect(x0, y0, x1, y1), &image.Uniform{c}, image.Point{}, draw.Src)
}

func strokeRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for x := x0; x <= x1; x++ {
		img.Set(x, y0, c)
		img.Set(x, y1, c)
	}
	for y := y0; y <= y1; y++ {
		img.Set(x0, y, c)
		img.Set(x1, y, c)
	}
}

// strokeCircle plots the circle with the midpoint algorithm.
func strokeCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	x, y, err := r, 0, 1-r
	for x >= y {
		img.Set(cx+x, cy+y, c)
		img.Set(cx+y, cy+x, c)
		img.Set(cx-y, cy+x, c)
		img.Set(cx-x, cy+y, c)
		img.Set(cx-x, cy-y, c)
		img.Set(cx-y, cy-x, c)
		img.Set(cx+y, cy-x, c)
		img.Set(cx+x, cy-y, c)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}
