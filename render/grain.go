package render

import (
	"image"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// grainFreq is the noise sampling frequency in cycles per pixel. Low enough
// that the grain reads as paper fiber, not static.
const grainFreq = 0.085

// applyGrain multiplies a seeded simplex noise field into the image. The
// field depends only on the artwork seed, so grainy renders stay
// byte-for-byte reproducible.
func applyGrain(img *image.RGBA, seed int64, amp float64) {
	noise := opensimplex.New(seed)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			n := noise.Eval2(float64(x)*grainFreq, float64(y)*grainFreq)
			factor := 1 + amp*n
			i := img.PixOffset(x, y)
			img.Pix[i+0] = mulClamp(img.Pix[i+0], factor)
			img.Pix[i+1] = mulClamp(img.Pix[i+1], factor)
			img.Pix[i+2] = mulClamp(img.Pix[i+2], factor)
		}
	}
}

func mulClamp(v uint8, f float64) uint8 {
	out := float64(v) * f
	if out < 0 {
		return 0
	}
	if out > 255 {
		return 255
	}
	return uint8(out)
}
