package geom

import "github.com/chewxy/math32"

// Mat4 is a column-major 4x4 matrix, laid out the way GLSL expects it.
type Mat4 [16]float32

func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Translate4(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func RotateZ4(a float32) Mat4 {
	c, s := math32.Cos(a), math32.Sin(a)
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Ortho builds an off-center orthographic projection. Passing top < bottom
// gives a Y-down space, e.g. Ortho(0, w, h, 0, 0.01, 1000) for pixel coordinates.
func Ortho(l, r, b, t, n, f float32) Mat4 {
	rl := 1 / (r - l)
	tb := 1 / (t - b)
	fn := 1 / (f - n)
	return Mat4{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(r + l) * rl, -(t + b) * tb, -(f + n) * fn, 1,
	}
}

// Mul returns a*b (b is applied first to column vectors).
func (a Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i+4*j] = a[i+0]*b[0+4*j] + a[i+4]*b[1+4*j] + a[i+8]*b[2+4*j] + a[i+12]*b[3+4*j]
		}
	}
	return out
}

// Apply transforms the point (x, y, 0, 1) and returns x, y.
func (m Mat4) Apply(x, y float32) (float32, float32) {
	return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
}

// Floats exposes the matrix as a slice for uniform uploads.
func (m *Mat4) Floats() []float32 { return m[:] }

// Mat4 widens a 2D affine transform to 4x4 (z untouched).
func (m Mat3x2) Mat4() Mat4 {
	return Mat4{
		m.M11, m.M12, 0, 0,
		m.M21, m.M22, 0, 0,
		0, 0, 1, 0,
		m.M31, m.M32, 0, 1,
	}
}
