package detection

import (
	"math"
	"testing"

	"github.com/fruitworks/banana-vision/internal/imaging"
)

// diskMask builds a mask with a filled disk of the given radius.
func diskMask(t *testing.T, size, cx, cy, radius int) imaging.Mask {
	t.Helper()
	m := imaging.NewMask(size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= radius*radius {
				m[y][x] = true
			}
		}
	}
	return m
}

func TestFindComponents_Empty(t *testing.T) {
	comps := FindComponents(imaging.NewMask(20, 20))
	if len(comps) != 0 {
		t.Errorf("empty mask: got %d components, want 0", len(comps))
	}

	comps = FindComponents(imaging.Mask{})
	if len(comps) != 0 {
		t.Errorf("zero-size mask: got %d components, want 0", len(comps))
	}
}

func TestFindComponents_StableOrder(t *testing.T) {
	// Three blocks; order must follow the row-major position of each
	// component's first pixel.
	m := imaging.NewMask(20, 20)
	blocks := []struct{ x0, y0, x1, y1 int }{
		{12, 2, 15, 5},
		{2, 4, 5, 7},
		{6, 10, 9, 13},
	}
	for _, b := range blocks {
		for y := b.y0; y < b.y1; y++ {
			for x := b.x0; x < b.x1; x++ {
				m[y][x] = true
			}
		}
	}

	comps := FindComponents(m)
	if len(comps) != 3 {
		t.Fatalf("got %d components, want 3", len(comps))
	}
	wantBounds := []Bounds{
		{X1: 12, Y1: 2, X2: 14, Y2: 4},
		{X1: 2, Y1: 4, X2: 4, Y2: 6},
		{X1: 6, Y1: 10, X2: 8, Y2: 12},
	}
	for i, want := range wantBounds {
		if comps[i].Bounds != want {
			t.Errorf("component %d bounds: got %+v, want %+v", i, comps[i].Bounds, want)
		}
		if comps[i].Area != 9 {
			t.Errorf("component %d area: got %d, want 9", i, comps[i].Area)
		}
	}
}

func TestFindComponents_DiagonalConnectivity(t *testing.T) {
	// 8-connectivity joins diagonal neighbors into one component.
	m := imaging.NewMask(10, 10)
	m[1][1] = true
	m[2][2] = true
	m[3][3] = true

	comps := FindComponents(m)
	if len(comps) != 1 {
		t.Fatalf("got %d components, want 1 (8-connectivity)", len(comps))
	}
	if comps[0].Area != 3 {
		t.Errorf("area: got %d, want 3", comps[0].Area)
	}
}

func TestFindComponents_DegenerateSinglePixel(t *testing.T) {
	m := imaging.NewMask(10, 10)
	m[4][7] = true

	comps := FindComponents(m)
	if len(comps) != 1 {
		t.Fatalf("got %d components, want 1", len(comps))
	}
	c := comps[0]
	if c.Area != 1 {
		t.Errorf("area: got %d, want 1", c.Area)
	}
	if c.Eccentricity != 0 || c.Solidity != 0 || c.ConvexArea != 0 {
		t.Errorf("degenerate descriptors not at sentinel 0: %+v", c)
	}
	want := Bounds{X1: 7, Y1: 4, X2: 7, Y2: 4}
	if c.Bounds != want {
		t.Errorf("bounds: got %+v, want %+v", c.Bounds, want)
	}
}

func TestFindComponents_CircleDescriptors(t *testing.T) {
	// A filled disk is its own convex image: solidity exactly 1, and by
	// symmetry the best-fit ellipse is a circle: eccentricity 0.
	comps := FindComponents(diskMask(t, 50, 25, 25, 20))
	if len(comps) != 1 {
		t.Fatalf("got %d components, want 1", len(comps))
	}
	c := comps[0]
	if c.Area != 1257 {
		t.Errorf("area: got %d, want 1257", c.Area)
	}
	if c.ConvexArea != c.Area {
		t.Errorf("convex area: got %d, want %d", c.ConvexArea, c.Area)
	}
	if c.Solidity != 1.0 {
		t.Errorf("solidity: got %v, want 1.0", c.Solidity)
	}
	if c.Eccentricity > 1e-9 {
		t.Errorf("eccentricity: got %v, want 0", c.Eccentricity)
	}
}

func TestFindComponents_ElongatedRectangle(t *testing.T) {
	m := imaging.NewMask(70, 20)
	for y := 5; y < 13; y++ {
		for x := 4; x < 64; x++ {
			m[y][x] = true
		}
	}

	comps := FindComponents(m)
	if len(comps) != 1 {
		t.Fatalf("got %d components, want 1", len(comps))
	}
	c := comps[0]
	if c.Area != 480 {
		t.Errorf("area: got %d, want 480", c.Area)
	}
	// A 60x8 rectangle is convex (solidity 1) and strongly elongated.
	if c.Solidity != 1.0 {
		t.Errorf("solidity: got %v, want 1.0", c.Solidity)
	}
	if math.Abs(c.Eccentricity-0.99107) > 1e-3 {
		t.Errorf("eccentricity: got %v, want ~0.99107", c.Eccentricity)
	}
}

func TestFindComponents_CurvedBlob(t *testing.T) {
	// A quarter annulus (radii 15..25 around a corner point) is an
	// elongated curved band: high eccentricity, solidity well below 1.
	m := imaging.NewMask(40, 40)
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			dy := y - 39
			d2 := x*x + dy*dy
			if d2 >= 225 && d2 <= 625 {
				m[y][x] = true
			}
		}
	}

	comps := FindComponents(m)
	if len(comps) != 1 {
		t.Fatalf("got %d components, want 1", len(comps))
	}
	c := comps[0]
	if c.Area != 327 {
		t.Errorf("area: got %d, want 327", c.Area)
	}
	if c.Solidity < 0.80 || c.Solidity > 0.85 {
		t.Errorf("solidity: got %v, want in [0.80, 0.85]", c.Solidity)
	}
	if c.Eccentricity < 0.91 || c.Eccentricity > 0.95 {
		t.Errorf("eccentricity: got %v, want in [0.91, 0.95]", c.Eccentricity)
	}
	if d := c.ConvexityDeficit(); d < 0.15 || d > 0.20 {
		t.Errorf("convexity deficit: got %v, want in [0.15, 0.20]", d)
	}
}

func TestFindComponents_Deterministic(t *testing.T) {
	m := diskMask(t, 40, 20, 20, 12)
	a := FindComponents(m)
	b := FindComponents(m)
	if len(a) != len(b) {
		t.Fatalf("component counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("component %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
