package renderer2d

import (
	"github.com/hubastard/batch2d/engine/core"
	"github.com/hubastard/batch2d/engine/geom"
)

// Subtexture is a region of a texture.
//
// Source is the region in texture pixels. Frame is where that region sits
// inside the logical image (trimmed sprites have a negative frame offset)
// and gives the logical size. DrawCoords and TexCoords are the four corners,
// clockwise from the top left, ready for the batch.
type Subtexture struct {
	Texture    core.Texture
	Source     geom.Rect
	Frame      geom.Rect
	DrawCoords [4]geom.Vec2
	TexCoords  [4]geom.Vec2
}

// NewSubtexture covers the whole texture.
func NewSubtexture(tex core.Texture) Subtexture {
	var w, h float32
	if tex != nil {
		w, h = float32(tex.Width()), float32(tex.Height())
	}
	return NewSubtextureFrame(tex, geom.R(0, 0, w, h), geom.R(0, 0, w, h))
}

// NewSubtextureFrame builds a subtexture from a source rect and a frame.
func NewSubtextureFrame(tex core.Texture, source, frame geom.Rect) Subtexture {
	s := Subtexture{Texture: tex, Source: source, Frame: frame}
	s.update()
	return s
}

// FromPixels builds a subtexture from pixel coordinates within an atlas.
func FromPixels(tex core.Texture, x, y, w, h int) Subtexture {
	src := geom.R(float32(x), float32(y), float32(w), float32(h))
	return NewSubtextureFrame(tex, src, geom.R(0, 0, float32(w), float32(h)))
}

// FromGrid builds a subtexture from tile grid coordinates (cx,cy) of cell size (cw,ch).
func FromGrid(tex core.Texture, cx, cy, cw, ch int) Subtexture {
	return FromPixels(tex, cx*cw, cy*ch, cw, ch)
}

func (s Subtexture) Width() float32  { return s.Frame.W }
func (s Subtexture) Height() float32 { return s.Frame.H }

func (s *Subtexture) update() {
	fx, fy := -s.Frame.X, -s.Frame.Y
	s.DrawCoords = [4]geom.Vec2{
		{X: fx, Y: fy},
		{X: fx + s.Source.W, Y: fy},
		{X: fx + s.Source.W, Y: fy + s.Source.H},
		{X: fx, Y: fy + s.Source.H},
	}
	if s.Texture == nil || s.Texture.Width() <= 0 || s.Texture.Height() <= 0 {
		return
	}
	uvx := 1 / float32(s.Texture.Width())
	uvy := 1 / float32(s.Texture.Height())
	u0, v0 := s.Source.X*uvx, s.Source.Y*uvy
	u1, v1 := s.Source.Right()*uvx, s.Source.Bottom()*uvy
	s.TexCoords = [4]geom.Vec2{{X: u0, Y: v0}, {X: u1, Y: v0}, {X: u1, Y: v1}, {X: u0, Y: v1}}
}

// Crop returns the part of s inside clip, clip being in the subtexture's
// logical (frame) space.
func (s Subtexture) Crop(clip geom.Rect) Subtexture {
	offset := clip
	offset.X += s.Source.X + s.Frame.X
	offset.Y += s.Source.Y + s.Frame.Y
	source := offset.Overlap(s.Source)

	frame := geom.Rect{
		X: min(0, s.Frame.X+clip.X),
		Y: min(0, s.Frame.Y+clip.Y),
		W: clip.W,
		H: clip.H,
	}
	return NewSubtextureFrame(s.Texture, source, frame)
}
