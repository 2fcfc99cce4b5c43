// Package geom holds the small float32 value types the 2D renderer works in.
package geom

import "github.com/chewxy/math32"

type Vec2 struct {
	X, Y float32
}

func V2(x, y float32) Vec2 { return Vec2{x, y} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(o Vec2) Vec2      { return Vec2{v.X * o.X, v.Y * o.Y} }
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Dot(o Vec2) float32   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Length() float32      { return math32.Sqrt(v.X*v.X + v.Y*v.Y) }

// Normal returns v scaled to unit length, or the zero vector for a zero input.
func (v Vec2) Normal() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// TurnRight rotates v by 90 degrees clockwise in a Y-down space.
func (v Vec2) TurnRight() Vec2 { return Vec2{-v.Y, v.X} }

// TurnLeft rotates v by 90 degrees counter-clockwise in a Y-down space.
func (v Vec2) TurnLeft() Vec2 { return Vec2{v.Y, -v.X} }

// FromAngle returns the point at angle radians and distance length from the origin.
func FromAngle(radians, length float32) Vec2 {
	return Vec2{math32.Cos(radians) * length, math32.Sin(radians) * length}
}

// Lerp interpolates between a and b.
func Lerp(a, b Vec2, t float32) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// BezierQuad evaluates a quadratic bezier at t.
func BezierQuad(a, b, c Vec2, t float32) Vec2 {
	return Lerp(Lerp(a, b, t), Lerp(b, c, t), t)
}

// BezierCubic evaluates a cubic bezier at t.
func BezierCubic(a, b, c, d Vec2, t float32) Vec2 {
	return BezierQuad(Lerp(a, b, t), Lerp(b, c, t), Lerp(c, d, t), t)
}
