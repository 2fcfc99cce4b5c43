package geom

import "github.com/chewxy/math32"

// Mat3x2 is a 2D affine transform using row vectors:
//
//	x' = x*M11 + y*M21 + M31
//	y' = x*M12 + y*M22 + M32
//
// a.Mul(b) applies a first, then b.
type Mat3x2 struct {
	M11, M12 float32
	M21, M22 float32
	M31, M32 float32
}

var Identity = Mat3x2{M11: 1, M22: 1}

func Translation(x, y float32) Mat3x2 { return Mat3x2{M11: 1, M22: 1, M31: x, M32: y} }

func Scale(x, y float32) Mat3x2 { return Mat3x2{M11: x, M22: y} }

func Rotation(radians float32) Mat3x2 {
	c, s := math32.Cos(radians), math32.Sin(radians)
	return Mat3x2{M11: c, M12: s, M21: -s, M22: c}
}

// Transform builds the matrix that moves origin to (0,0), scales, rotates and
// finally translates to position.
func Transform(position, origin, scale Vec2, radians float32) Mat3x2 {
	m := Identity
	if origin.X != 0 || origin.Y != 0 {
		m = Translation(-origin.X, -origin.Y)
	}
	if scale.X != 1 || scale.Y != 1 {
		m = m.Mul(Scale(scale.X, scale.Y))
	}
	if radians != 0 {
		m = m.Mul(Rotation(radians))
	}
	if position.X != 0 || position.Y != 0 {
		m = m.Mul(Translation(position.X, position.Y))
	}
	return m
}

func (a Mat3x2) Mul(b Mat3x2) Mat3x2 {
	return Mat3x2{
		M11: a.M11*b.M11 + a.M12*b.M21,
		M12: a.M11*b.M12 + a.M12*b.M22,
		M21: a.M21*b.M11 + a.M22*b.M21,
		M22: a.M21*b.M12 + a.M22*b.M22,
		M31: a.M31*b.M11 + a.M32*b.M21 + b.M31,
		M32: a.M31*b.M12 + a.M32*b.M22 + b.M32,
	}
}

// Apply transforms the point (x, y).
func (m Mat3x2) Apply(x, y float32) (float32, float32) {
	return x*m.M11 + y*m.M21 + m.M31, x*m.M12 + y*m.M22 + m.M32
}

func (m Mat3x2) ApplyVec(v Vec2) Vec2 {
	x, y := m.Apply(v.X, v.Y)
	return Vec2{x, y}
}

func (m Mat3x2) Determinant() float32 { return m.M11*m.M22 - m.M21*m.M12 }

// Invert returns the inverse transform. A singular matrix inverts to Identity.
func (m Mat3x2) Invert() Mat3x2 {
	det := m.Determinant()
	if det == 0 {
		return Identity
	}
	inv := 1 / det
	return Mat3x2{
		M11: m.M22 * inv,
		M12: -m.M12 * inv,
		M21: -m.M21 * inv,
		M22: m.M11 * inv,
		M31: (m.M21*m.M32 - m.M31*m.M22) * inv,
		M32: (m.M31*m.M12 - m.M11*m.M32) * inv,
	}
}
