// Package render draws detection annotations onto frames: a green overlay on
// the cleaned mask's perimeter and red bounding boxes with a text label for
// each flagged component. The input frame is never mutated; annotation always
// happens on a fresh copy.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/fruitworks/banana-vision/internal/detection"
	"github.com/fruitworks/banana-vision/internal/imaging"
)

// Label is the text rendered above each detection's bounding box.
const Label = "banana time we ball"

var (
	perimeterColor = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	boxColor       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	textColor      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// labelFace is the fixed-size font used for detection labels. Face7x13 is
// 7 pixels wide and 13 tall per glyph, with an ascent of 11.
var labelFace = basicfont.Face7x13

// Annotate renders detection annotations and returns a new frame.
//
// If no flag is set, the result is a pixel-identical copy of the input and
// nothing is drawn. Otherwise, in order:
//
//  1. Every perimeter pixel of cleanedMask (true pixels with a false
//     4-neighbor, or on the image border) is painted solid green.
//  2. Each component whose flag is true gets a red rectangle outline of
//     lineWidth pixels around its bounding box and a red-backed white text
//     label positioned above the box, clamped to stay inside the frame.
//
// The input frame is read-only; callers may keep using it afterwards.
func Annotate(frame image.Image, cleanedMask imaging.Mask, components []detection.Component, flags []bool, lineWidth int) *image.RGBA {
	bounds := frame.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), frame, bounds.Min, draw.Src)

	any := false
	for _, f := range flags {
		if f {
			any = true
			break
		}
	}
	if !any {
		return out
	}

	perim := imaging.Perimeter(cleanedMask)
	for y, row := range perim {
		for x, v := range row {
			if v {
				out.SetRGBA(x, y, perimeterColor)
			}
		}
	}

	for i, c := range components {
		if i >= len(flags) || !flags[i] {
			continue
		}
		drawBox(out, c.Bounds, lineWidth)
		drawLabel(out, c.Bounds)
	}
	return out
}

// drawBox paints a rectangle outline of the given line width just around the
// bounding box, clipped to the frame.
func drawBox(img *image.RGBA, b detection.Bounds, lineWidth int) {
	if lineWidth < 1 {
		lineWidth = 1
	}
	outer := image.Rect(b.X1-lineWidth, b.Y1-lineWidth, b.X2+1+lineWidth, b.Y2+1+lineWidth)
	inner := image.Rect(b.X1, b.Y1, b.X2+1, b.Y2+1)
	clip := outer.Intersect(img.Bounds())

	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			if !(image.Point{X: x, Y: y}).In(inner) {
				img.SetRGBA(x, y, boxColor)
			}
		}
	}
}

// drawLabel renders the label text on a filled background above the box,
// clamping the label rectangle so it never leaves the frame.
func drawLabel(img *image.RGBA, b detection.Bounds) {
	metrics := labelFace.Metrics()
	textWidth := labelFace.Advance * len(Label)
	textHeight := metrics.Height.Ceil()

	x := b.X1
	y := b.Y1 - textHeight - 2
	frameBounds := img.Bounds()
	if x+textWidth+2 > frameBounds.Max.X {
		x = frameBounds.Max.X - textWidth - 2
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	bg := image.Rect(x, y, x+textWidth+2, y+textHeight+2).Intersect(frameBounds)
	draw.Draw(img, bg, image.NewUniform(boxColor), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: labelFace,
		Dot: fixed.Point26_6{
			X: fixed.I(x + 1),
			Y: fixed.I(y + 1 + metrics.Ascent.Ceil()),
		},
	}
	d.DrawString(Label)
}
