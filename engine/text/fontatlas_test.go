package text

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hubastard/batch2d/engine/colors"
	"github.com/hubastard/batch2d/engine/geom"
	"github.com/hubastard/batch2d/engine/gfx/record"
	"github.com/hubastard/batch2d/engine/gfx/renderer2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestFromTTF(t *testing.T) {
	dev := record.New(256, 256)
	f, err := FromTTF(dev, "goregular", goregular.TTF, 16, nil)
	require.NoError(t, err)

	assert.Equal(t, "goregular", f.Name)
	assert.Equal(t, float32(16), f.Size)
	assert.Greater(t, f.Ascent, float32(0))
	assert.Less(t, f.Descent, float32(0))
	assert.GreaterOrEqual(t, f.LineHeight(), f.Ascent-f.Descent)

	a, ok := f.Character('A')
	require.True(t, ok)
	require.NotNil(t, a.Subtexture.Texture)
	assert.Greater(t, a.Advance, float32(0))
	assert.Greater(t, a.Subtexture.Width(), float32(0))
	assert.Less(t, a.Offset.Y, float32(0), "glyph top is above the baseline")

	space, ok := f.Character(' ')
	require.True(t, ok)
	assert.Nil(t, space.Subtexture.Texture)
	assert.Greater(t, space.Advance, float32(0))

	_, ok = f.Character('é')
	assert.False(t, ok)

	textures, _, _, _ := dev.Created()
	assert.Equal(t, 1, textures)
	tex := a.Subtexture.Texture.(*record.Texture)
	assert.Equal(t, tex.W, tex.H)
	assert.Len(t, tex.Pixels, tex.W*tex.H*4)
	assert.True(t, hasCoverage(tex.Pixels), "atlas holds rasterized glyphs")
}

func hasCoverage(rgba []byte) bool {
	for i := 3; i < len(rgba); i += 4 {
		if rgba[i] != 0 {
			return true
		}
	}
	return false
}

func TestFromTTFCharset(t *testing.T) {
	dev := record.New(256, 256)
	f, err := FromTTF(dev, "digits", goregular.TTF, 12, Charset('0', '9'))
	require.NoError(t, err)

	_, ok := f.Character('5')
	assert.True(t, ok)
	_, ok = f.Character('A')
	assert.False(t, ok)
	assert.Len(t, Charset('a', 'z'), 26)
	assert.Empty(t, Charset('z', 'a'))
}

func TestFromTTFErrors(t *testing.T) {
	dev := record.New(256, 256)

	_, err := FromTTF(dev, "junk", []byte("not a font"), 16, nil)
	assert.Error(t, err)

	_, err = FromTTF(dev, "zero", goregular.TTF, 0, nil)
	assert.Error(t, err)

	dev.Feats.MaxTextureSize = 16
	_, err = FromTTF(dev, "big", goregular.TTF, 64, nil)
	assert.ErrorContains(t, err, "atlas too large")
}

func TestLoadTTF(t *testing.T) {
	dev := record.New(256, 256)
	path := filepath.Join(t.TempDir(), "regular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))

	f, err := LoadTTF(dev, path, 14, nil)
	require.NoError(t, err)
	assert.Equal(t, "regular.ttf", f.Name)

	_, err = LoadTTF(dev, filepath.Join(t.TempDir(), "missing.ttf"), 14, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAtlasFontDrawsThroughBatch(t *testing.T) {
	dev := record.New(256, 256)
	f, err := FromTTF(dev, "goregular", goregular.TTF, 16, nil)
	require.NoError(t, err)

	b := renderer2d.New(dev)
	b.Str(f, "Hi there", geom.V2(10, 10), colors.White)

	// one quad per visible glyph, all from the same atlas
	assert.Equal(t, 7*2, b.TriangleCount())
	assert.Len(t, b.DrawBatches(), 1)

	b.Render(nil)
	require.Len(t, dev.Calls, 1)
	assert.Equal(t, int64(7*6), dev.Calls[0].IndexCount)
}
