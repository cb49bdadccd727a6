package pipeline

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
// Check with errors.Is.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config bundles every threshold of the pipeline. It is loaded once, never
// mutated during processing, and safe for concurrent reads; a single Config
// may back any number of workers.
type Config struct {
	// Color window (segmentation). Hue is normalized to [0,1); the default
	// band selects yellow-ish colors around pure yellow at 1/6. The band
	// does not wrap through 0/1.
	HueMin float64 `json:"hue_min"`
	HueMax float64 `json:"hue_max"`
	SatMin float64 `json:"sat_min"` // Minimum saturation, rejects washed-out pixels
	ValMin float64 `json:"val_min"` // Minimum brightness, rejects shadowed pixels

	// Mask cleanup (morphology).
	MinObjectSize int `json:"min_object_size"` // Components below this pixel count are noise
	CloseRadius   int `json:"close_radius"`    // Disk radius for gap-bridging closing
	OpenRadius    int `json:"open_radius"`     // Disk radius for protrusion-trimming opening

	// Shape classification.
	AreaMin  int     `json:"area_min"`  // Minimum pixel area of a detection
	EccMin   float64 `json:"ecc_min"`   // Minimum eccentricity (elongation)
	SolMin   float64 `json:"sol_min"`   // Lower solidity bound
	SolMax   float64 `json:"sol_max"`   // Upper solidity bound
	CurveMin float64 `json:"curve_min"` // Minimum convexity deficit

	// Annotation.
	LineWidth int `json:"line_width"` // Bounding-box outline width in pixels
}

// DefaultConfig returns the tuned defaults for banana detection under
// ordinary indoor lighting.
func DefaultConfig() Config {
	return Config{
		HueMin:        0.10,
		HueMax:        0.25,
		SatMin:        0.30,
		ValMin:        0.30,
		MinObjectSize: 200,
		CloseRadius:   7,
		OpenRadius:    3,
		AreaMin:       1200,
		EccMin:        0.70,
		SolMin:        0.60,
		SolMax:        0.95,
		CurveMin:      0.05,
		LineWidth:     2,
	}
}

// Validate checks every threshold against its valid range. Validation is
// eager: a Detector refuses to be constructed from an invalid Config rather
// than clamping values silently. All failures wrap ErrInvalidConfig.
func (c Config) Validate() error {
	if c.HueMin < 0 || c.HueMin >= 1 || c.HueMax < 0 || c.HueMax >= 1 {
		return fmt.Errorf("%w: hue bounds [%v, %v] outside [0,1)", ErrInvalidConfig, c.HueMin, c.HueMax)
	}
	if c.HueMin > c.HueMax {
		return fmt.Errorf("%w: hue bounds inverted (%v > %v); wrap-around bands are not supported", ErrInvalidConfig, c.HueMin, c.HueMax)
	}
	if c.SatMin < 0 || c.SatMin > 1 {
		return fmt.Errorf("%w: saturation minimum %v outside [0,1]", ErrInvalidConfig, c.SatMin)
	}
	if c.ValMin < 0 || c.ValMin > 1 {
		return fmt.Errorf("%w: value minimum %v outside [0,1]", ErrInvalidConfig, c.ValMin)
	}
	if c.MinObjectSize < 0 {
		return fmt.Errorf("%w: negative minimum object size %d", ErrInvalidConfig, c.MinObjectSize)
	}
	if c.CloseRadius < 0 || c.OpenRadius < 0 {
		return fmt.Errorf("%w: negative structuring-element radius (close %d, open %d)", ErrInvalidConfig, c.CloseRadius, c.OpenRadius)
	}
	if c.AreaMin < 0 {
		return fmt.Errorf("%w: negative area minimum %d", ErrInvalidConfig, c.AreaMin)
	}
	if c.EccMin < 0 || c.EccMin >= 1 {
		return fmt.Errorf("%w: eccentricity minimum %v outside [0,1)", ErrInvalidConfig, c.EccMin)
	}
	if c.SolMin < 0 || c.SolMax > 1 {
		return fmt.Errorf("%w: solidity bounds [%v, %v] outside [0,1]", ErrInvalidConfig, c.SolMin, c.SolMax)
	}
	if c.SolMin > c.SolMax {
		return fmt.Errorf("%w: solidity bounds inverted (%v > %v)", ErrInvalidConfig, c.SolMin, c.SolMax)
	}
	if c.CurveMin < 0 || c.CurveMin > 1 {
		return fmt.Errorf("%w: convexity deficit minimum %v outside [0,1]", ErrInvalidConfig, c.CurveMin)
	}
	if c.LineWidth < 1 {
		return fmt.Errorf("%w: line width %d below 1", ErrInvalidConfig, c.LineWidth)
	}
	return nil
}
