package detection

import (
	"image"
	"math"
	"sort"

	"github.com/fruitworks/banana-vision/internal/imaging"
)

// Bounds is an axis-aligned bounding box in pixel coordinates.
//
// (X1, Y1) is the top-left corner and (X2, Y2) the bottom-right corner, both
// inclusive: the box spans the pixels it encloses, so Width/Height are
// X2-X1+1 and Y2-Y1+1.
type Bounds struct {
	X1 int `json:"x1"` // Left edge (inclusive)
	Y1 int `json:"y1"` // Top edge (inclusive)
	X2 int `json:"x2"` // Right edge (inclusive)
	Y2 int `json:"y2"` // Bottom edge (inclusive)
}

// Width returns the horizontal extent of the box in pixels.
func (b Bounds) Width() int { return b.X2 - b.X1 + 1 }

// Height returns the vertical extent of the box in pixels.
func (b Bounds) Height() int { return b.Y2 - b.Y1 + 1 }

// Component is one maximal 8-connected region of true mask pixels together
// with its geometric descriptors.
//
// # Degenerate Components
//
// Eccentricity and Solidity are undefined for degenerate components (Area <= 1
// or ConvexArea == 0) and are reported as the sentinel value 0. The classifier
// never accepts such components.
type Component struct {
	// Area is the number of pixels in the component.
	Area int `json:"area"`

	// Bounds is the axis-aligned bounding box of the component.
	Bounds Bounds `json:"bounds"`

	// ConvexArea is the pixel count of the component's convex image: the
	// pixels of the bounding box whose centers lie inside or on the convex
	// hull of the component's pixels.
	ConvexArea int `json:"convex_area"`

	// Eccentricity of the best-fit ellipse, in [0,1). 0 is a circle;
	// values near 1 indicate a highly elongated shape.
	Eccentricity float64 `json:"eccentricity"`

	// Solidity is Area / ConvexArea, in (0,1]. Low values indicate a ragged
	// or strongly curved outline.
	Solidity float64 `json:"solidity"`
}

// FindComponents labels the 8-connected components of a mask and computes
// descriptors for each.
//
// Components are returned in a stable order: sorted by their first pixel in
// a row-major scan (top to bottom, left to right). The order only affects
// rendering order downstream, but determinism matters for reproducible
// output.
//
// An empty mask yields an empty slice, never an error.
//
// # Eccentricity
//
// The best-fit ellipse is derived from the normalized second-order central
// moments of the pixel set, with the standard 1/12 correction for the unit
// extent of a pixel:
//
//	mxx = sum((x-cx)^2)/n + 1/12
//	myy = sum((y-cy)^2)/n + 1/12
//	mxy = sum((x-cx)*(y-cy))/n
//
// The ellipse semi-axes are the square roots of the eigenvalues of the
// moment matrix [[mxx, mxy], [mxy, myy]]:
//
//	common = sqrt((mxx-myy)^2 + 4*mxy^2)
//	l1 = (mxx + myy + common) / 2   (major)
//	l2 = (mxx + myy - common) / 2   (minor)
//	eccentricity = sqrt(1 - l2/l1)
//
// These are the formulas to check first if descriptor values ever drift from
// expectations; everything else in this package is far less sensitive.
func FindComponents(m imaging.Mask) []Component {
	width, height := m.Width(), m.Height()
	visited := imaging.NewMask(width, height)
	components := make([]Component, 0)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !m[y][x] || visited[y][x] {
				continue
			}
			pixels := collectComponent(m, visited, x, y)
			components = append(components, describe(pixels))
		}
	}
	return components
}

// collectComponent gathers the 8-connected component containing the start
// pixel using an explicit stack, marking each pixel visited.
func collectComponent(m, visited imaging.Mask, startX, startY int) []image.Point {
	width, height := m.Width(), m.Height()
	pixels := make([]image.Point, 0, 64)
	stack := []image.Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			continue
		}
		if visited[p.Y][p.X] || !m[p.Y][p.X] {
			continue
		}
		visited[p.Y][p.X] = true
		pixels = append(pixels, p)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, image.Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
	return pixels
}

// describe computes the full descriptor set for one component's pixels.
func describe(pixels []image.Point) Component {
	c := Component{Area: len(pixels)}

	minX, minY := pixels[0].X, pixels[0].Y
	maxX, maxY := minX, minY
	for _, p := range pixels {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	c.Bounds = Bounds{X1: minX, Y1: minY, X2: maxX, Y2: maxY}

	if c.Area <= 1 {
		// Degenerate: descriptors stay at the 0 sentinel.
		return c
	}

	c.ConvexArea = convexArea(pixels, c.Bounds)
	if c.ConvexArea > 0 {
		c.Solidity = float64(c.Area) / float64(c.ConvexArea)
	}
	c.Eccentricity = eccentricity(pixels)
	return c
}

// eccentricity derives elongation from the second-order central moments of
// the pixel set. See FindComponents for the exact formulas.
func eccentricity(pixels []image.Point) float64 {
	n := float64(len(pixels))
	var cx, cy float64
	for _, p := range pixels {
		cx += float64(p.X)
		cy += float64(p.Y)
	}
	cx /= n
	cy /= n

	var mxx, myy, mxy float64
	for _, p := range pixels {
		dx := float64(p.X) - cx
		dy := float64(p.Y) - cy
		mxx += dx * dx
		myy += dy * dy
		mxy += dx * dy
	}
	mxx = mxx/n + 1.0/12.0
	myy = myy/n + 1.0/12.0
	mxy /= n

	common := math.Sqrt((mxx-myy)*(mxx-myy) + 4*mxy*mxy)
	major := (mxx + myy + common) / 2
	minor := (mxx + myy - common) / 2
	if major <= 0 {
		return 0
	}
	if minor < 0 {
		minor = 0
	}
	return math.Sqrt(1 - minor/major)
}

// convexArea counts the bounding-box pixels whose centers lie inside or on
// the convex hull of the component's pixels. Counting pixels rather than
// taking the polygon's analytic area keeps ConvexArea in the same units as
// Area, so Solidity is a ratio of pixel counts.
func convexArea(pixels []image.Point, b Bounds) int {
	hull := convexHull(pixels)
	if len(hull) == 0 {
		return 0
	}
	if len(hull) <= 2 {
		// Hull collapsed to a point or segment; the convex image is the
		// component itself.
		return len(pixels)
	}

	count := 0
	for y := b.Y1; y <= b.Y2; y++ {
		for x := b.X1; x <= b.X2; x++ {
			if insideHull(hull, x, y) {
				count++
			}
		}
	}
	return count
}

// convexHull computes the convex hull of a point set using Andrew's monotone
// chain. The result is in counter-clockwise order (in image coordinates,
// with Y growing downward) without the closing repetition.
func convexHull(points []image.Point) []image.Point {
	pts := make([]image.Point, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	n := len(pts)
	if n < 3 {
		return pts
	}

	hull := make([]image.Point, 0, 2*n)
	// Lower chain.
	for _, p := range pts {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	// Upper chain.
	lower := len(hull) + 1
	for i := n - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}

// cross returns the z-component of (b-a) x (c-a).
func cross(a, b, c image.Point) int {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// insideHull reports whether (x, y) lies inside or on the boundary of a
// convex polygon as returned by convexHull. Interior points have a
// non-negative cross product against every edge.
func insideHull(hull []image.Point, x, y int) bool {
	p := image.Point{X: x, Y: y}
	for i := range hull {
		a := hull[i]
		b := hull[(i+1)%len(hull)]
		if cross(a, b, p) < 0 {
			return false
		}
	}
	return true
}
