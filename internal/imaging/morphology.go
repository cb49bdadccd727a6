package imaging

import "image"

// DiskOffsets returns the structuring element for a disk of the given radius:
// the set of integer offsets (dx, dy) with dx*dx+dy*dy <= radius*radius.
//
// Radius 0 yields the single center offset. Offsets are generated in
// row-major order so structuring elements are deterministic.
func DiskOffsets(radius int) []image.Point {
	if radius < 0 {
		radius = 0
	}
	offsets := make([]image.Point, 0, (2*radius+1)*(2*radius+1))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				offsets = append(offsets, image.Point{X: dx, Y: dy})
			}
		}
	}
	return offsets
}

// Dilate sets each output pixel true if any structuring-element offset lands
// on a true input pixel. Offsets falling outside the mask are treated as
// false, the standard padding convention for dilation.
func Dilate(m Mask, se []image.Point) Mask {
	width, height := m.Width(), m.Height()
	out := NewMask(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for _, off := range se {
				nx, ny := x+off.X, y+off.Y
				if nx >= 0 && nx < width && ny >= 0 && ny < height && m[ny][nx] {
					out[y][x] = true
					break
				}
			}
		}
	}
	return out
}

// Erode sets each output pixel true only if every structuring-element offset
// lands on a true input pixel. Offsets falling outside the mask are treated
// as true, so an all-true mask is a fixed point of erosion.
func Erode(m Mask, se []image.Point) Mask {
	width, height := m.Width(), m.Height()
	out := NewMask(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			all := true
			for _, off := range se {
				nx, ny := x+off.X, y+off.Y
				if nx >= 0 && nx < width && ny >= 0 && ny < height && !m[ny][nx] {
					all = false
					break
				}
			}
			out[y][x] = all
		}
	}
	return out
}

// Close performs morphological closing (dilation followed by erosion) with a
// disk structuring element of the given radius. Closing bridges gaps narrower
// than the disk diameter.
func Close(m Mask, radius int) Mask {
	se := DiskOffsets(radius)
	return Erode(Dilate(m, se), se)
}

// Open performs morphological opening (erosion followed by dilation) with a
// disk structuring element of the given radius. Opening removes protrusions
// and isolated specks thinner than the disk diameter.
func Open(m Mask, radius int) Mask {
	se := DiskOffsets(radius)
	return Dilate(Erode(m, se), se)
}

// RemoveSmallObjects drops every 8-connected component whose pixel count is
// below minArea. Components with exactly minArea pixels survive.
func RemoveSmallObjects(m Mask, minArea int) Mask {
	width, height := m.Width(), m.Height()
	out := NewMask(width, height)
	visited := NewMask(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !m[y][x] || visited[y][x] {
				continue
			}
			pixels := floodCollect(m, visited, x, y)
			if len(pixels) >= minArea {
				for _, p := range pixels {
					out[p.Y][p.X] = true
				}
			}
		}
	}
	return out
}

// FillHoles sets true every false region that does not touch the image
// border. Background connectivity is 4-connected, the dual of the
// 8-connected foreground; an 8-connected background would leak holes out
// through diagonal gaps in the enclosing component.
func FillHoles(m Mask) Mask {
	width, height := m.Width(), m.Height()
	if width == 0 || height == 0 {
		return Mask{}
	}

	// Flood the background from every border pixel; anything false that the
	// flood never reaches is an interior hole.
	outside := NewMask(width, height)
	stack := make([]image.Point, 0, 2*(width+height))
	for x := 0; x < width; x++ {
		stack = append(stack, image.Point{X: x, Y: 0}, image.Point{X: x, Y: height - 1})
	}
	for y := 0; y < height; y++ {
		stack = append(stack, image.Point{X: 0, Y: y}, image.Point{X: width - 1, Y: y})
	}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			continue
		}
		if outside[p.Y][p.X] || m[p.Y][p.X] {
			continue
		}
		outside[p.Y][p.X] = true
		stack = append(stack,
			image.Point{X: p.X + 1, Y: p.Y},
			image.Point{X: p.X - 1, Y: p.Y},
			image.Point{X: p.X, Y: p.Y + 1},
			image.Point{X: p.X, Y: p.Y - 1},
		)
	}

	out := NewMask(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			out[y][x] = m[y][x] || !outside[y][x]
		}
	}
	return out
}

// Clean denoises a raw segmentation mask by applying, in order:
//
//  1. Small-object removal (components below minObjectSize pixels)
//  2. Morphological closing with a disk of closeRadius
//  3. Morphological opening with a disk of openRadius
//  4. Interior hole filling
//
// Each stage consumes the previous stage's output, not the original mask,
// so the ordering is load-bearing: closing may merge surviving components
// before opening trims them, and holes are filled last so gaps bridged by
// closing become fillable interiors.
func Clean(m Mask, minObjectSize, closeRadius, openRadius int) Mask {
	cleaned := RemoveSmallObjects(m, minObjectSize)
	cleaned = Close(cleaned, closeRadius)
	cleaned = Open(cleaned, openRadius)
	return FillHoles(cleaned)
}

// floodCollect gathers the 8-connected component containing (startX, startY),
// marking visited pixels. Stack-based to avoid recursion depth limits on
// large components.
func floodCollect(m, visited Mask, startX, startY int) []image.Point {
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
