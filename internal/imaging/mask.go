package imaging

// Mask is a dense binary image stored as rows of booleans, indexed [y][x].
//
// A Mask is produced fresh by every processing stage; stages never alias or
// mutate their input mask. An empty Mask (zero rows) is a valid value and
// propagates through every operation as an empty result.
type Mask [][]bool

// NewMask allocates an all-false mask with the given dimensions.
//
// Width or height of zero (or negative) returns an empty mask.
func NewMask(width, height int) Mask {
	if width <= 0 || height <= 0 {
		return Mask{}
	}
	m := make(Mask, height)
	for y := range m {
		m[y] = make([]bool, width)
	}
	return m
}

// Width returns the number of columns, or 0 for an empty mask.
func (m Mask) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Height returns the number of rows.
func (m Mask) Height() int {
	return len(m)
}

// Clone returns a deep copy of the mask.
func (m Mask) Clone() Mask {
	out := make(Mask, len(m))
	for y, row := range m {
		out[y] = make([]bool, len(row))
		copy(out[y], row)
	}
	return out
}

// Any reports whether the mask contains at least one true pixel.
func (m Mask) Any() bool {
	for _, row := range m {
		for _, v := range row {
			if v {
				return true
			}
		}
	}
	return false
}

// Count returns the number of true pixels.
func (m Mask) Count() int {
	n := 0
	for _, row := range m {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// Equal reports whether two masks have identical dimensions and pixels.
func (m Mask) Equal(other Mask) bool {
	if len(m) != len(other) {
		return false
	}
	for y, row := range m {
		if len(row) != len(other[y]) {
			return false
		}
		for x, v := range row {
			if v != other[y][x] {
				return false
			}
		}
	}
	return true
}
