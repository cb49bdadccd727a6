package pipeline

import (
	"errors"
	"fmt"
	"image"

	"github.com/fruitworks/banana-vision/internal/detection"
	"github.com/fruitworks/banana-vision/internal/imaging"
	"github.com/fruitworks/banana-vision/internal/render"
)

// ErrInvalidFrame is wrapped by frame validation failures (zero dimensions,
// wrong channel count). Check with errors.Is.
var ErrInvalidFrame = errors.New("invalid frame")

// Detection is one classified component: its bounding box plus the
// descriptor values it qualified with, exposed for threshold tuning and
// testing.
type Detection struct {
	Bounds           detection.Bounds `json:"bounds"`
	Area             int              `json:"area"`
	Eccentricity     float64          `json:"eccentricity"`
	Solidity         float64          `json:"solidity"`
	ConvexityDeficit float64          `json:"convexity_deficit"`
}

// Result is the output of processing one frame.
type Result struct {
	// Annotated is the output frame: a copy of the input with the green
	// mask perimeter and red detection boxes drawn in, or a plain copy when
	// nothing was detected.
	Annotated *image.RGBA `json:"-"`

	// Detections lists the components that passed classification, in the
	// measurer's stable component order.
	Detections []Detection `json:"detections"`
}

// Detector runs the per-frame detection pipeline. It holds only the
// read-only configuration, no per-frame state, so a single Detector is safe
// for concurrent use from multiple goroutines.
type Detector struct {
	cfg Config
}

// New validates the configuration and constructs a Detector. The returned
// error wraps ErrInvalidConfig if any threshold is out of range.
func New(cfg Config) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Detector{cfg: cfg}, nil
}

// Config returns the detector's configuration.
func (d *Detector) Config() Config {
	return d.cfg
}

// Process runs the full pipeline on one frame:
//
//	frame -> color mask -> cleaned mask -> components -> flags -> annotated frame
//
// Data flows strictly forward; no stage sees a frame other than the current
// one. The input frame is never mutated and never retained.
//
// An empty color mask, a mask with only degenerate components, or zero
// detections are all normal outcomes with an empty Detections slice; the
// only error Process returns is ErrInvalidFrame for a frame with zero
// dimensions.
func (d *Detector) Process(frame image.Image) (*Result, error) {
	bounds := frame.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidFrame, bounds.Dx(), bounds.Dy())
	}

	mask := imaging.Segment(frame, d.cfg.HueMin, d.cfg.HueMax, d.cfg.SatMin, d.cfg.ValMin)
	cleaned := imaging.Clean(mask, d.cfg.MinObjectSize, d.cfg.CloseRadius, d.cfg.OpenRadius)
	components := detection.FindComponents(cleaned)
	flags := detection.Classify(components, detection.Thresholds{
		AreaMin:  d.cfg.AreaMin,
		EccMin:   d.cfg.EccMin,
		SolMin:   d.cfg.SolMin,
		SolMax:   d.cfg.SolMax,
		CurveMin: d.cfg.CurveMin,
	})

	detections := make([]Detection, 0, len(components))
	for i, c := range components {
		if !flags[i] {
			continue
		}
		detections = append(detections, Detection{
			Bounds:           c.Bounds,
			Area:             c.Area,
			Eccentricity:     c.Eccentricity,
			Solidity:         c.Solidity,
			ConvexityDeficit: c.ConvexityDeficit(),
		})
	}

	annotated := render.Annotate(frame, cleaned, components, flags, d.cfg.LineWidth)
	return &Result{Annotated: annotated, Detections: detections}, nil
}
