// Package render rasterizes origami artworks. It is the unconstrained
// evaluator's back half: it consumes the per-cell (level, color) grid, the
// crease list and the two highlight cells, and draws PNG-encodable images.
// The engine itself never imports it.
package render

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/gg"

	"github.com/gogpu/origami"
)

// Renderer draws artworks at a fixed scale. A Renderer is immutable after
// construction and safe for concurrent use; Batch relies on that.
type Renderer struct {
	scale    float64
	grainAmp float64
	workers  int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithScale multiplies the artwork's canvas dimensions; 1 renders at the
// engine's native size.
func WithScale(s float64) Option {
	return func(r *Renderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// WithGrainAmplitude scales the paper-grain strength on top of the
// per-paper-kind base amplitude. 0 disables grain even for grainy seeds.
func WithGrainAmplitude(a float64) Option {
	return func(r *Renderer) {
		if a >= 0 {
			r.grainAmp = a
		}
	}
}

// WithWorkers bounds Batch concurrency; 0 or negative means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(r *Renderer) {
		r.workers = n
	}
}

// New returns a renderer with scale 1 and default grain.
func New(opts ...Option) *Renderer {
	r := &Renderer{scale: 1, grainAmp: 1}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Image rasterizes one artwork. The output is deterministic: the same
// artwork and renderer options produce byte-identical pixels, which is why
// the draw path stays on gg's software renderer and never registers a GPU
// accelerator.
func (r *Renderer) Image(a *origami.Artwork) image.Image {
	w := scaleDim(a.Width, r.scale)
	h := scaleDim(a.Height, r.scale)
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}

	dc := gg.NewContext(w, h)
	ramp := Ramp(a)

	dc.SetHexColor(ramp[0])
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	_ = dc.Fill()

	r.drawCells(dc, a, ramp)
	if a.Traits.ShowCreases {
		r.drawCreases(dc, a)
	}
	r.drawHighlights(dc, a)

	img := toRGBA(dc.Image())
	if a.Traits.HitCounts {
		drawHitCounts(img, a, r.scale)
	}
	if a.Traits.Grain && r.grainAmp > 0 {
		applyGrain(img, a.Seed, grainAmplitude(a.Traits.PaperKind)*r.grainAmp)
	}
	return img
}

// drawCells fills every non-empty cell with its ramp color and ticks the
// peak cells sitting above T3 and Extreme.
func (r *Renderer) drawCells(dc *gg.Context, a *origami.Artwork, ramp [4]string) {
	g := a.Grid
	s := r.scale
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			level := a.Level(col, row)
			if level == 0 {
				continue
			}
			x := (g.OriginX + float64(col*g.CellW)) * s
			y := (g.OriginY + float64(row*g.CellH)) * s
			cw := float64(g.CellW) * s
			ch := float64(g.CellH) * s

			dc.SetHexColor(ramp[level])
			dc.DrawRectangle(x, y, cw, ch)
			_ = dc.Fill()

			weight := g.Cell(col, row).Weight
			if weight > a.Thresholds.T3 {
				dc.SetHexColor(a.Palette.Accent.Hex)
				dc.SetLineWidth(s)
				dc.DrawLine(x, y, x+cw*0.3, y)
				_ = dc.Stroke()
				if weight > a.Thresholds.Extreme {
					dc.DrawLine(x, y+2*s, x+cw*0.3, y+2*s)
					_ = dc.Stroke()
				}
			}
		}
	}
}

// drawCreases strokes the recorded crease segments, heavier creases wider.
func (r *Renderer) drawCreases(dc *gg.Context, a *origami.Artwork) {
	maxW := a.Traits.WeightRange.Max
	dc.SetHexColor(a.Palette.Text.Hex)
	for _, c := range a.Creases {
		width := 0.5
		switch {
		case c.Weight > maxW*2/3:
			width = 1.5
		case c.Weight > maxW/3:
			width = 1.0
		}
		dc.SetLineWidth(width * r.scale)
		dc.DrawLine(c.P1.X*r.scale, c.P1.Y*r.scale, c.P2.X*r.scale, c.P2.Y*r.scale)
		_ = dc.Stroke()
	}
}

// drawHighlights outlines the max-gap cell and fills a marker in the cell
// containing the last fold target.
func (r *Renderer) drawHighlights(dc *gg.Context, a *origami.Artwork) {
	g := a.Grid
	s := r.scale
	cellRect := func(col, row int) (x, y, w, h float64) {
		return (g.OriginX + float64(col*g.CellW)) * s,
			(g.OriginY + float64(row*g.CellH)) * s,
			float64(g.CellW) * s,
			float64(g.CellH) * s
	}

	dc.SetHexColor(a.Palette.Accent.Hex)
	if a.MaxGapOk {
		x, y, w, h := cellRect(a.MaxGapCol, a.MaxGapRow)
		dc.SetLineWidth(2 * s)
		dc.DrawRectangle(x, y, w, h)
		_ = dc.Stroke()
	}
	if a.LastTargetOk {
		x, y, w, h := cellRect(a.LastTargetCol, a.LastTargetRow)
		dc.DrawCircle(x+w/2, y+h/2, minF(w, h)*0.25)
		_ = dc.Fill()
	}
}

// EncodePNG rasterizes the artwork and writes it as PNG.
func (r *Renderer) EncodePNG(a *origami.Artwork, w io.Writer) error {
	return png.Encode(w, r.Image(a))
}

// SavePNG rasterizes the artwork into a PNG file.
func (r *Renderer) SavePNG(a *origami.Artwork, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, r.Image(a)); err != nil {
		return err
	}
	return f.Close()
}

// toRGBA returns img as *image.RGBA, copying only when the underlying
// buffer is some other format. The overlay and grain passes mutate pixels
// directly.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, img, b.Min, draw.Src)
	return out
}

func scaleDim(v int, s float64) int {
	return int(float64(v) * s)
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
