package renderer2d

import (
	"testing"

	"github.com/hubastard/batch2d/engine/colors"
	"github.com/hubastard/batch2d/engine/geom"
	"github.com/stretchr/testify/assert"
)

func TestSubtextureCoords(t *testing.T) {
	_, dev := newTestBatch(t)
	tex := newTexture(t, dev, 64, 32)

	s := FromPixels(tex, 16, 8, 8, 4)
	assert.Equal(t, [4]geom.Vec2{{0, 0}, {8, 0}, {8, 4}, {0, 4}}, s.DrawCoords)
	assert.Equal(t, [4]geom.Vec2{{0.25, 0.25}, {0.375, 0.25}, {0.375, 0.375}, {0.25, 0.375}}, s.TexCoords)
	assert.Equal(t, float32(8), s.Width())
	assert.Equal(t, float32(4), s.Height())

	g := FromGrid(tex, 2, 1, 8, 8)
	assert.Equal(t, geom.R(16, 8, 8, 8), g.Source)

	whole := NewSubtexture(tex)
	assert.Equal(t, geom.V2(1, 1), whole.TexCoords[2])
	assert.Equal(t, geom.V2(64, 32), whole.DrawCoords[2])
}

func TestSubtextureTrimmedFrame(t *testing.T) {
	_, dev := newTestBatch(t)
	tex := newTexture(t, dev, 64, 64)

	// 8x8 of pixels sitting at (2,3) inside a 16x16 logical sprite
	s := NewSubtextureFrame(tex, geom.R(0, 0, 8, 8), geom.R(-2, -3, 16, 16))
	assert.Equal(t, geom.V2(2, 3), s.DrawCoords[0])
	assert.Equal(t, geom.V2(10, 11), s.DrawCoords[2])
	assert.Equal(t, float32(16), s.Width())
}

func TestSubtextureCrop(t *testing.T) {
	_, dev := newTestBatch(t)
	tex := newTexture(t, dev, 64, 32)
	s := FromPixels(tex, 16, 8, 8, 4)

	c := s.Crop(geom.R(2, 1, 4, 10))
	assert.Equal(t, geom.R(18, 9, 4, 3), c.Source)
	assert.Equal(t, geom.R(0, 0, 4, 10), c.Frame)
	assert.Equal(t, geom.V2(4, 3), c.DrawCoords[2])
	assert.Equal(t, tex, c.Texture)

	out := s.Crop(geom.R(100, 100, 4, 4))
	assert.Zero(t, out.Source.W)
}

func TestTexSubDrawsAtPosition(t *testing.T) {
	b, dev := newTestBatch(t)
	tex := newTexture(t, dev, 64, 32)
	s := FromPixels(tex, 16, 8, 8, 4)

	b.TexSub(s, geom.V2(10, 20), colors.Red)
	b.TexSubClip(s, geom.R(0, 0, 4, 4), geom.V2(0, 0), colors.Red)

	vs := b.Vertices()
	assert.Equal(t, geom.V2(10, 20), vs[0].Pos)
	assert.Equal(t, geom.V2(18, 24), vs[2].Pos)
	assert.Equal(t, s.TexCoords[2], vs[2].Tex)
	assert.Equal(t, geom.V2(4, 4), vs[6].Pos)
	assert.Equal(t, tex, b.Texture())
	assert.Len(t, b.DrawBatches(), 1)
}
