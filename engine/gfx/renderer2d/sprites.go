package renderer2d

import (
	"github.com/hubastard/batch2d/engine/colors"
	"github.com/hubastard/batch2d/engine/core"
	"github.com/hubastard/batch2d/engine/geom"
)

// Tex draws the whole texture with its top-left corner at pos. A nil texture draws nothing.
func (b *Batch) Tex(tex core.Texture, pos geom.Vec2, color colors.Color) {
	if tex == nil {
		return
	}
	b.SetTexture(tex)
	w, h := float32(tex.Width()), float32(tex.Height())
	b.pushQuad(
		pos, geom.V2(pos.X+w, pos.Y), geom.V2(pos.X+w, pos.Y+h), geom.V2(pos.X, pos.Y+h),
		geom.V2(0, 0), geom.V2(1, 0), geom.V2(1, 1), geom.V2(0, 1),
		color, color, color, color,
		b.texWeight,
	)
}

// TexTransformed draws the texture so that origin lands on pos, scaled then rotated around origin.
func (b *Batch) TexTransformed(tex core.Texture, pos, origin, scale geom.Vec2, rotation float32, color colors.Color) {
	b.PushMatrix(geom.Transform(pos, origin, scale, rotation), false)
	b.Tex(tex, geom.Vec2{}, color)
	b.PopMatrix()
}

// TexSub draws a subtexture at pos. Without a texture the frame is filled with color.
func (b *Batch) TexSub(sub Subtexture, pos geom.Vec2, color colors.Color) {
	d := sub.DrawCoords
	p0, p1, p2, p3 := pos.Add(d[0]), pos.Add(d[1]), pos.Add(d[2]), pos.Add(d[3])
	if sub.Texture == nil {
		b.flatQuad(p0, p1, p2, p3, color)
		return
	}
	b.SetTexture(sub.Texture)
	t := sub.TexCoords
	b.pushQuad(p0, p1, p2, p3, t[0], t[1], t[2], t[3], color, color, color, color, b.texWeight)
}

func (b *Batch) TexSubTransformed(sub Subtexture, pos, origin, scale geom.Vec2, rotation float32, color colors.Color) {
	b.PushMatrix(geom.Transform(pos, origin, scale, rotation), false)
	b.TexSub(sub, geom.Vec2{}, color)
	b.PopMatrix()
}

// TexSubClip draws the part of sub inside clip (in the subtexture's own space).
func (b *Batch) TexSubClip(sub Subtexture, clip geom.Rect, pos geom.Vec2, color colors.Color) {
	b.TexSub(sub.Crop(clip), pos, color)
}
