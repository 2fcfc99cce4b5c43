package renderer2d

import (
	"github.com/hubastard/batch2d/engine/colors"
	"github.com/hubastard/batch2d/engine/geom"
)

// Str draws text with its top-left corner at pos, at the font's own size.
func (b *Batch) Str(font *SpriteFont, text string, pos geom.Vec2, color colors.Color) {
	if font == nil {
		return
	}
	b.StrAligned(font, text, pos, AlignTopLeft, font.Size, color)
}

// StrAligned draws text anchored at pos according to align, scaled to size.
// Each visible glyph is one quad; runes missing from the font advance by a space.
func (b *Batch) StrAligned(font *SpriteFont, text string, pos geom.Vec2, align TextAlign, size float32, color colors.Color) {
	if font == nil || text == "" || size <= 0 || font.Size <= 0 {
		return
	}

	scale := size / font.Size
	b.PushMatrix(geom.Scale(scale, scale).Mul(geom.Translation(pos.X, pos.Y)), false)
	defer b.PopMatrix()

	var pen geom.Vec2
	pen.X = font.lineX(text, 0, align)
	switch {
	case align.has(AlignTop):
		pen.Y = font.Ascent
	case align.has(AlignBottom):
		pen.Y = font.Ascent - font.HeightOf(text)
	default:
		pen.Y = font.Ascent - float32(int(font.HeightOf(text)*0.5))
	}

	var last rune = -1
	for i, r := range text {
		if r == '\n' {
			pen.X = font.lineX(text, i+1, align)
			pen.Y += font.LineHeight()
			last = -1
			continue
		}
		if last >= 0 {
			pen.X += font.Kerning(last, r)
		}
		if ch, ok := font.Character(r); ok && ch.Subtexture.Texture != nil {
			b.TexSub(ch.Subtexture, pen.Add(ch.Offset), color)
		}
		pen.X += font.advance(r)
		last = r
	}
}
