package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/origami"
)

// Ramp builds the four-entry color ladder for density levels 0..3. Level 0
// is the background. Multi-color artworks blend text toward accent in Lab
// space; single-color artworks fade the text color up from the background,
// which reads like increasing ink alpha without any compositing. The
// inverted render mode swaps the background and text roles, and the
// monochrome flag collapses every entry to its BT.709 gray.
func Ramp(a *origami.Artwork) [4]string {
	bgHex := a.Palette.BG.Hex
	textHex := a.Palette.Text.Hex
	if a.Traits.RenderMode == origami.ModeInverted {
		bgHex, textHex = textHex, bgHex
	}

	bg, _ := colorful.Hex(bgHex)
	text, _ := colorful.Hex(textHex)
	accent, _ := colorful.Hex(a.Palette.Accent.Hex)

	var ramp [4]colorful.Color
	ramp[0] = bg
	if a.Traits.MultiColor {
		ramp[1] = text.BlendLab(accent, 0.15).Clamped()
		ramp[2] = text.BlendLab(accent, 0.55).Clamped()
		ramp[3] = accent
	} else {
		ramp[1] = bg.BlendLab(text, 0.45).Clamped()
		ramp[2] = bg.BlendLab(text, 0.75).Clamped()
		ramp[3] = text
	}

	var out [4]string
	for i, c := range ramp {
		if a.Traits.Monochrome {
			c = toGray(c)
		}
		out[i] = c.Hex()
	}
	return out
}

// toGray replaces a color with its BT.709 luminance gray.
func toGray(c colorful.Color) colorful.Color {
	y := 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
	return colorful.Color{R: y, G: y, B: y}
}

// grainAmplitude is the per-paper-kind base strength of the grain field.
func grainAmplitude(kind origami.PaperKind) float64 {
	switch kind {
	case origami.PaperVellum:
		return 0.09
	case origami.PaperRough:
		return 0.16
	default:
		return 0.04
	}
}
