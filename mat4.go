package plot

import "fmt"

// Mat4 is a column-major 4x4 matrix: element (row r, column c) is m[c*4+r].
type Mat4 [16]float32

// Identity4 returns the identity matrix.
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Ortho returns the orthographic projection mapping x in [left, right],
// y in [bottom, top] and z in [near, far] onto [-1, 1].
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	rl := right - left
	tb := top - bottom
	fn := far - near
	return Mat4{
		2 / rl, 0, 0, 0,
		0, 2 / tb, 0, 0,
		0, 0, -2 / fn, 0,
		-(right + left) / rl, -(top + bottom) / tb, -(far + near) / fn, 1,
	}
}

// At returns the element at row r, column c.
func (m Mat4) At(r, c int) float32 {
	return m[c*4+r]
}

// Apply transforms the point (x, y, z, 1) and returns it after the
// perspective divide.
func (m Mat4) Apply(x, y, z float32) (float32, float32, float32) {
	ox := m[0]*x + m[4]*y + m[8]*z + m[12]
	oy := m[1]*x + m[5]*y + m[9]*z + m[13]
	oz := m[2]*x + m[6]*y + m[10]*z + m[14]
	ow := m[3]*x + m[7]*y + m[11]*z + m[15]
	if ow != 0 && ow != 1 {
		return ox / ow, oy / ow, oz / ow
	}
	return ox, oy, oz
}

// Mul returns m * n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += m[k*4+r] * n[c*4+k]
			}
			out[c*4+r] = s
		}
	}
	return out
}

// Transform is a row-major 3x3 (2D homogeneous) or 4x4 matrix, one slice
// per row.
type Transform [][]float32

// Translate returns a 3x3 transform moving by (x, y).
func Translate(x, y float32) Transform {
	return Transform{
		{1, 0, x},
		{0, 1, y},
		{0, 0, 1},
	}
}

// Scale returns a 3x3 transform scaling by (sx, sy).
func Scale(sx, sy float32) Transform {
	return Transform{
		{sx, 0, 0},
		{0, sy, 0},
		{0, 0, 1},
	}
}

// Mat4 converts the transform to a column-major matrix. A 3x3 transform
// acts on x, y and w and leaves z untouched.
func (t Transform) Mat4() (Mat4, error) {
	n := len(t)
	if n != 3 && n != 4 {
		return Mat4{}, fmt.Errorf("%w: %d rows", ErrTransform, n)
	}
	for r, row := range t {
		if len(row) != n {
			return Mat4{}, fmt.Errorf("%w: row %d has %d columns", ErrTransform, r, len(row))
		}
	}

	if n == 4 {
		var m Mat4
		for r := 0; r < 4; r++ {
			for c := 0; c < 4; c++ {
				m[c*4+r] = t[r][c]
			}
		}
		return m, nil
	}

	// Homogeneous row and column 2 of the 3x3 move to index 3.
	idx := [3]int{0, 1, 3}
	m := Mat4{10: 1}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[idx[c]*4+idx[r]] = t[r][c]
		}
	}
	return m, nil
}
