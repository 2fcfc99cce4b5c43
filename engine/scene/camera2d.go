package scene

import "github.com/hubastard/batch2d/engine/geom"

// Camera2D looks at Position from the center of a viewport measured in
// pixels, Y down. Rotation turns the world around that center.
type Camera2D struct {
	Position geom.Vec2
	Rotation float32
	Zoom     float32 // 1 = no zoom

	width, height float32
	view          geom.Mat3x2
	dirty         bool
}

const minZoom = 0.05

func NewCamera2D(width, height int) *Camera2D {
	c := &Camera2D{Zoom: 1}
	c.SetViewport(width, height)
	return c
}

// SetViewport follows a resize. The world point at the center stays there.
func (c *Camera2D) SetViewport(w, h int) {
	c.width, c.height = float32(w), float32(h)
	c.dirty = true
}

func (c *Camera2D) Width() float32  { return c.width }
func (c *Camera2D) Height() float32 { return c.height }

func (c *Camera2D) SetPosition(p geom.Vec2) { c.Position = p; c.dirty = true }
func (c *Camera2D) Move(dx, dy float32)     { c.Position.X += dx; c.Position.Y += dy; c.dirty = true }
func (c *Camera2D) Rotate(rad float32)      { c.Rotation += rad; c.dirty = true }

func (c *Camera2D) SetZoom(z float32) {
	c.Zoom = max(z, minZoom)
	c.dirty = true
}

// View maps world to screen pixels. Push it on a batch to draw in world space.
func (c *Camera2D) View() geom.Mat3x2 {
	if c.dirty {
		c.recalculate()
	}
	return c.view
}

// Matrix is the projection for a whole frame in world space, for RenderWith.
func (c *Camera2D) Matrix() geom.Mat4 {
	proj := geom.Ortho(0, c.width, c.height, 0, 0.01, 1000)
	return proj.Mul(c.View().Mat4())
}

// ScreenToWorld converts a pixel position (mouse) to world space.
func (c *Camera2D) ScreenToWorld(p geom.Vec2) geom.Vec2 {
	return c.View().Invert().ApplyVec(p)
}

func (c *Camera2D) recalculate() {
	// row vectors: applied left to right
	c.view = geom.Translation(-c.Position.X, -c.Position.Y).
		Mul(geom.Rotation(c.Rotation)).
		Mul(geom.Scale(c.Zoom, c.Zoom)).
		Mul(geom.Translation(c.width*0.5, c.height*0.5))
	c.dirty = false
}
