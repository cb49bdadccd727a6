package imaging

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// Segment produces a binary mask of pixels whose color falls inside the given
// HSV window.
//
// Each pixel is converted from RGB to hue/saturation/value. Hue is normalized
// to [0,1) (1/6 is pure yellow, 2/3 is pure blue); saturation and value are
// in [0,1]. A pixel is true iff all four inequalities hold:
//
//	hueMin <= hue <= hueMax
//	sat >= satMin
//	val >= valMin
//
// # Hue Wrapping
//
// The hue window does not wrap through the 0/1 boundary. A band that crosses
// the boundary (e.g. reds spanning 0.95..0.05) must be issued as two separate
// calls and the resulting masks ORed together by the caller; a single call
// with hueMin > hueMax matches nothing.
//
// Segment is a pure function of its inputs and never retains the frame.
func Segment(img image.Image, hueMin, hueMax, satMin, valMin float64) Mask {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	mask := NewMask(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			c := colorful.Color{
				R: float64(r>>8) / 255.0,
				G: float64(g>>8) / 255.0,
				B: float64(b>>8) / 255.0,
			}
			h, s, v := c.Hsv()
			h /= 360.0
			if h >= hueMin && h <= hueMax && s >= satMin && v >= valMin {
				mask[y][x] = true
			}
		}
	}
	return mask
}
