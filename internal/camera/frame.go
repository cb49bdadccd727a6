package camera

import (
	"fmt"
	"image"

	"github.com/fruitworks/banana-vision/internal/pipeline"
)

// Frame is a raw color frame as delivered by a capture device: a dense
// width x height grid of 3-channel 8-bit samples in RGB order, row-major.
type Frame struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

// Validate checks the frame against the pipeline's input contract: nonzero
// dimensions, exactly 3 channels, and a pixel buffer of the right length.
// Failures wrap pipeline.ErrInvalidFrame.
func (f *Frame) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", pipeline.ErrInvalidFrame, f.Width, f.Height)
	}
	if f.Channels != 3 {
		return fmt.Errorf("%w: %d channels, want 3", pipeline.ErrInvalidFrame, f.Channels)
	}
	if len(f.Pix) != f.Width*f.Height*f.Channels {
		return fmt.Errorf("%w: pixel buffer is %d bytes, want %d", pipeline.ErrInvalidFrame, len(f.Pix), f.Width*f.Height*f.Channels)
	}
	return nil
}

// ToImage converts the raw frame to an *image.RGBA for the pipeline. The
// pixel data is copied; the Frame may be reused by the capture device
// afterwards.
func (f *Frame) ToImage() (*image.RGBA, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			src := (y*f.Width + x) * 3
			dst := img.PixOffset(x, y)
			img.Pix[dst+0] = f.Pix[src+0]
			img.Pix[dst+1] = f.Pix[src+1]
			img.Pix[dst+2] = f.Pix[src+2]
			img.Pix[dst+3] = 0xFF
		}
	}
	return img, nil
}

// FrameFromImage flattens an image into a raw 3-channel frame, dropping
// alpha.
func FrameFromImage(img image.Image) *Frame {
	bounds := img.Bounds()
	f := &Frame{
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Channels: 3,
		Pix:      make([]byte, bounds.Dx()*bounds.Dy()*3),
	}
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			f.Pix[i+0] = byte(r >> 8)
			f.Pix[i+1] = byte(g >> 8)
			f.Pix[i+2] = byte(b >> 8)
			i += 3
		}
	}
	return f
}
