package models

// Mask marks pixels that must not be removed by seam carving.
// It is indexed as mask[y][x]; true means protected.
type Mask [][]bool

// NewMask creates an all-unprotected mask of the given dimensions
func NewMask(width, height int) Mask {
	m := make(Mask, height)
	for y := range m {
		m[y] = make([]bool, width)
	}
	return m
}

// Width returns the number of columns (0 for an empty mask)
func (m Mask) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Height returns the number of rows
func (m Mask) Height() int {
	return len(m)
}

// At reports whether (x, y) is protected. Positions outside the mask are
// reported as unprotected.
func (m Mask) At(x, y int) bool {
	if y < 0 || y >= len(m) || x < 0 || x >= len(m[y]) {
		return false
	}
	return m[y][x]
}

// Clone returns a deep copy of the mask
func (m Mask) Clone() Mask {
	if m == nil {
		return nil
	}
	dup := make(Mask, len(m))
	for y := range m {
		dup[y] = make([]bool, len(m[y]))
		copy(dup[y], m[y])
	}
	return dup
}

// Count returns the number of protected pixels
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
