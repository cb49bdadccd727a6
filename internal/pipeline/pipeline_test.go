package pipeline

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/fruitworks/banana-vision/internal/imaging"
)

// bananaScene renders a 640x480 frame with a thick yellow arc (a band of an
// annulus centered below the frame) on a black background: an elongated,
// curved, solid-yellow region the default thresholds are tuned to accept.
func bananaScene(t *testing.T) *image.RGBA {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 640, 480))
	yellow := color.RGBA{R: 255, G: 225, B: 50, A: 255}
	black := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	maxAngle := 20 * math.Pi / 180

	for y := 0; y < 480; y++ {
		for x := 0; x < 640; x++ {
			dx := float64(x - 320)
			dy := float64(y - 520)
			d2 := dx*dx + dy*dy
			if d2 >= 260*260 && d2 <= 300*300 && math.Abs(math.Atan2(dx, -dy)) <= maxAngle {
				img.SetRGBA(x, y, yellow)
			} else {
				img.SetRGBA(x, y, black)
			}
		}
	}
	return img
}

func TestProcess_InvalidFrame(t *testing.T) {
	d, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = d.Process(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	if !errors.Is(err, ErrInvalidFrame) {
		t.Errorf("zero-size frame: got %v, want ErrInvalidFrame", err)
	}
}

func TestProcess_EmptySceneIsNotAnError(t *testing.T) {
	d, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	frame := image.NewRGBA(image.Rect(0, 0, 64, 48))
	result, err := d.Process(frame)
	if err != nil {
		t.Fatalf("Process failed on an empty scene: %v", err)
	}
	if len(result.Detections) != 0 {
		t.Errorf("got %d detections on a black frame, want 0", len(result.Detections))
	}
	// With nothing detected the output is an untouched copy.
	if !bytes.Equal(result.Annotated.Pix, frame.Pix) {
		t.Error("annotated frame differs from input with no detections")
	}
}

func TestProcess_BananaScene(t *testing.T) {
	d, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	frame := bananaScene(t)
	original := make([]byte, len(frame.Pix))
	copy(original, frame.Pix)

	result, err := d.Process(frame)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if len(result.Detections) != 1 {
		t.Fatalf("got %d detections, want 1", len(result.Detections))
	}

	det := result.Detections[0]
	// The arc spans roughly x 218..422, y 220..275; morphology may shave a
	// pixel or two off each edge.
	if det.Bounds.X1 < 214 || det.Bounds.X1 > 224 ||
		det.Bounds.X2 < 416 || det.Bounds.X2 > 426 ||
		det.Bounds.Y1 < 216 || det.Bounds.Y1 > 224 ||
		det.Bounds.Y2 < 270 || det.Bounds.Y2 > 280 {
		t.Errorf("bounding box %+v far from expected arc extent", det.Bounds)
	}
	if det.Area < 7500 || det.Area > 8100 {
		t.Errorf("area: got %d, want ~7800", det.Area)
	}
	if det.Eccentricity < 0.9 {
		t.Errorf("eccentricity: got %v, want > 0.9", det.Eccentricity)
	}
	if det.Solidity < 0.75 || det.Solidity > 0.90 {
		t.Errorf("solidity: got %v, want in [0.75, 0.90]", det.Solidity)
	}
	if det.ConvexityDeficit < 0.10 || det.ConvexityDeficit > 0.25 {
		t.Errorf("convexity deficit: got %v, want in [0.10, 0.25]", det.ConvexityDeficit)
	}

	// The input frame must be untouched.
	if !bytes.Equal(frame.Pix, original) {
		t.Error("Process mutated the input frame")
	}

	// The cleaned-mask perimeter is painted green. Recompute the mask the
	// same way the pipeline does and check its bottom-most boundary pixel,
	// which no box or label can cover.
	cfg := d.Config()
	cleaned := imaging.Clean(
		imaging.Segment(frame, cfg.HueMin, cfg.HueMax, cfg.SatMin, cfg.ValMin),
		cfg.MinObjectSize, cfg.CloseRadius, cfg.OpenRadius,
	)
	perim := imaging.Perimeter(cleaned)
	px, py := -1, -1
	for y := perim.Height() - 1; y >= 0 && py < 0; y-- {
		for x := 0; x < perim.Width(); x++ {
			if perim[y][x] {
				px, py = x, y
				break
			}
		}
	}
	if py < 0 {
		t.Fatal("cleaned mask has no perimeter")
	}
	green := color.RGBA{R: 0, G: 255, B: 0, A: 255}
	if got := result.Annotated.RGBAAt(px, py); got != green {
		t.Errorf("perimeter pixel (%d,%d): got %v, want green", px, py, got)
	}

	// The bounding box outline is red, just outside the box.
	red := color.RGBA{R: 255, G: 0, B: 0, A: 255}
	midY := (det.Bounds.Y1 + det.Bounds.Y2) / 2
	if got := result.Annotated.RGBAAt(det.Bounds.X1-1, midY); got != red {
		t.Errorf("box outline pixel: got %v, want red", got)
	}
	if got := result.Annotated.RGBAAt(det.Bounds.X2+1, midY); got != red {
		t.Errorf("box outline pixel: got %v, want red", got)
	}
}

func TestProcess_DeterministicAcrossCalls(t *testing.T) {
	d, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	frame := bananaScene(t)
	first, err := d.Process(frame)
	if err != nil {
		t.Fatalf("first Process failed: %v", err)
	}
	second, err := d.Process(frame)
	if err != nil {
		t.Fatalf("second Process failed: %v", err)
	}

	if len(first.Detections) != len(second.Detections) {
		t.Fatalf("detection counts differ: %d vs %d", len(first.Detections), len(second.Detections))
	}
	for i := range first.Detections {
		if first.Detections[i] != second.Detections[i] {
			t.Errorf("detection %d differs between identical frames", i)
		}
	}
	if !bytes.Equal(first.Annotated.Pix, second.Annotated.Pix) {
		t.Error("annotated frames differ between identical frames")
	}
}
