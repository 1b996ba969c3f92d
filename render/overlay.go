package render

import (
	"image"
	"image/color"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/origami"
)

// drawHitCounts overlays the per-cell intersection count in the top-left
// corner of every non-empty cell. Digits only, so the fixed 7x13 bitmap
// face covers the whole glyph set without shipping a font asset.
func drawHitCounts(img *image.RGBA, a *origami.Artwork, scale float64) {
	g := a.Grid
	text := a.Palette.Text
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: text.R, G: text.G, B: text.B, A: 255}),
		Face: basicfont.Face7x13,
	}

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			count := g.Cell(col, row).Count
			if count == 0 {
				continue
			}
			x := (g.OriginX + float64(col*g.CellW) + 2) * scale
			y := (g.OriginY + float64(row*g.CellH)) * scale
			d.Dot = fixed.P(int(x), int(y)+basicfont.Face7x13.Ascent)
			d.DrawString(strconv.Itoa(count))
		}
	}
}
