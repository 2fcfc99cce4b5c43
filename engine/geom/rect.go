package geom

import "github.com/chewxy/math32"

// Rect is an axis aligned rectangle. A negative width or height is used
// by the renderer to mean "no rectangle" (for instance no scissor).
type Rect struct {
	X, Y, W, H float32
}

func R(x, y, w, h float32) Rect { return Rect{x, y, w, h} }

// NoRect is the canonical "unset" rectangle.
var NoRect = Rect{0, 0, -1, -1}

func (r Rect) Left() float32   { return r.X }
func (r Rect) Right() float32  { return r.X + r.W }
func (r Rect) Top() float32    { return r.Y }
func (r Rect) Bottom() float32 { return r.Y + r.H }

func (r Rect) TopLeft() Vec2     { return Vec2{r.X, r.Y} }
func (r Rect) TopRight() Vec2    { return Vec2{r.X + r.W, r.Y} }
func (r Rect) BottomRight() Vec2 { return Vec2{r.X + r.W, r.Y + r.H} }
func (r Rect) BottomLeft() Vec2  { return Vec2{r.X, r.Y + r.H} }
func (r Rect) Center() Vec2      { return Vec2{r.X + r.W*0.5, r.Y + r.H*0.5} }

// Valid reports whether r has a non-negative size.
func (r Rect) Valid() bool { return r.W >= 0 && r.H >= 0 }

func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Overlap returns the intersection of r and o. Disjoint rectangles
// produce a zero-sized rectangle rather than a negative one.
func (r Rect) Overlap(o Rect) Rect {
	x0 := math32.Max(r.X, o.X)
	y0 := math32.Max(r.Y, o.Y)
	x1 := math32.Min(r.Right(), o.Right())
	y1 := math32.Min(r.Bottom(), o.Bottom())
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

func (r Rect) Inflate(amount float32) Rect {
	return Rect{r.X - amount, r.Y - amount, r.W + amount*2, r.H + amount*2}
}
