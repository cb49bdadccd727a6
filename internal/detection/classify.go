package detection

// Thresholds is the tunable surface of the shape classifier. Each field has
// a physical meaning:
//
//   - AreaMin rejects components too small to be a banana at working
//     distance (stray yellow patches, highlights).
//   - EccMin favors elongated shapes over round ones; a banana's best-fit
//     ellipse is strongly stretched.
//   - SolMin/SolMax bound solidity: the lower bound excludes ragged,
//     fragmented shapes, the upper bound excludes near-perfectly convex
//     shapes (balls, stickers) that a curved banana never produces.
//   - CurveMin is the minimum convexity deficit (1 - area/convexArea);
//     it favors curved outlines over straight-edged convex ones.
type Thresholds struct {
	AreaMin  int     `json:"area_min"`
	EccMin   float64 `json:"ecc_min"`
	SolMin   float64 `json:"sol_min"`
	SolMax   float64 `json:"sol_max"`
	CurveMin float64 `json:"curve_min"`
}

// ConvexityDeficit returns 1 - area/convexArea, or 0 when the component is
// degenerate (convex area 0). Degenerate components therefore never qualify
// through the curvature criterion.
func (c Component) ConvexityDeficit() float64 {
	if c.ConvexArea <= 0 {
		return 0
	}
	return 1 - float64(c.Area)/float64(c.ConvexArea)
}

// Classify applies the conjunctive threshold filter to each component and
// returns one flag per component, in input order. A component is a detection
// iff every criterion holds:
//
//	area > AreaMin
//	eccentricity >= EccMin
//	SolMin <= solidity <= SolMax
//	convexity deficit >= CurveMin
//
// There is no scoring or weighting; the flags are a pure function of the
// descriptors and thresholds.
func Classify(components []Component, th Thresholds) []bool {
	flags := make([]bool, len(components))
	for i, c := range components {
		flags[i] = c.Area > th.AreaMin &&
			c.Eccentricity >= th.EccMin &&
			c.Solidity >= th.SolMin && c.Solidity <= th.SolMax &&
			c.ConvexityDeficit() >= th.CurveMin
	}
	return flags
}
