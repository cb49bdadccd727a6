package imaging

// Perimeter returns the boundary of a mask: every true pixel that sits on the
// image border or has at least one false 4-neighbor. Interior pixels of a
// solid region are excluded.
func Perimeter(m Mask) Mask {
	width, height := m.Width(), m.Height()
	out := NewMask(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !m[y][x] {
				continue
			}
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				out[y][x] = true
				continue
			}
			if !m[y][x-1] || !m[y][x+1] || !m[y-1][x] || !m[y+1][x] {
				out[y][x] = true
			}
		}
	}
	return out
}
