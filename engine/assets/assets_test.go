package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/hubastard/batch2d/engine/gfx/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(2, 1, color.NRGBA{0, 0, 255, 128})
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestLoadTexture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprite.png")
	writePNG(t, path)
	dev := record.New(64, 64)

	tex, err := LoadTexture(dev, path)
	require.NoError(t, err)
	assert.Equal(t, 3, tex.Width())
	assert.Equal(t, 2, tex.Height())

	pix := tex.(*record.Texture).Pixels
	require.Len(t, pix, 3*2*4)
	assert.Equal(t, []byte{255, 0, 0, 255}, pix[0:4])
	// premultiplied
	assert.Equal(t, []byte{0, 0, 128, 128}, pix[20:24])
}

func TestLoadTextureErrors(t *testing.T) {
	dir := t.TempDir()
	dev := record.New(64, 64)

	_, err := LoadTexture(dev, filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("nope"), 0o644))
	_, err = LoadTexture(dev, bad)
	assert.ErrorContains(t, err, "decode png")

	big := filepath.Join(dir, "big.png")
	writePNG(t, big)
	dev.Feats.MaxTextureSize = 2
	_, err = LoadTexture(dev, big)
	assert.Error(t, err)
}

func TestLoadShader(t *testing.T) {
	dir := t.TempDir()
	vs, fs := filepath.Join(dir, "sprite.vert"), filepath.Join(dir, "sprite.frag")
	require.NoError(t, os.WriteFile(vs, []byte("uniform mat4 u_matrix;\n"), 0o644))
	require.NoError(t, os.WriteFile(fs, []byte("uniform sampler2D u_texture;\n"), 0o644))

	desc, err := LoadShader(vs, fs)
	require.NoError(t, err)
	assert.Equal(t, "sprite", desc.Name)

	dev := record.New(1, 1)
	sh, err := dev.CreateShader(desc)
	require.NoError(t, err)
	assert.Len(t, sh.Uniforms(), 2)

	_, err = LoadShader(vs, filepath.Join(dir, "none.frag"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
