// Package text rasterizes TrueType fonts into sprite font atlases.
package text

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"

	"github.com/hubastard/batch2d/engine/core"
	"github.com/hubastard/batch2d/engine/geom"
	"github.com/hubastard/batch2d/engine/gfx/renderer2d"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const maxAtlasSize = 4096

// ASCII is the printable ASCII range, the default charset.
var ASCII = Charset(32, 126)

// Charset lists every rune from first to last inclusive.
func Charset(first, last rune) []rune {
	out := make([]rune, 0, max(0, int(last-first)+1))
	for r := first; r <= last; r++ {
		out = append(out, r)
	}
	return out
}

// LoadTTF reads a TrueType/OpenType file and builds a sprite font of the given pixel size.
func LoadTTF(d core.Device, path string, sizePx float32, charset []rune) (*renderer2d.SpriteFont, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	name := filepath.Base(path)
	return FromTTF(d, name, data, sizePx, charset)
}

type glyphMetrics struct {
	r      rune
	w, h   int
	adv    float32
	bx, by float32 // left bearing, and distance from baseline to glyph top
}

// FromTTF rasterizes charset (ASCII when nil) into one white-on-transparent
// atlas texture and returns a SpriteFont whose glyphs point into it.
func FromTTF(d core.Device, name string, ttf []byte, sizePx float32, charset []rune) (*renderer2d.SpriteFont, error) {
	if sizePx <= 0 {
		return nil, fmt.Errorf("font %s: invalid size %v", name, sizePx)
	}
	if charset == nil {
		charset = ASCII
	}

	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer face.Close()

	// Metrics in pixels
	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(-m.Descent.Round())
	lineGap := max(0, float32(m.Height.Round())-ascent+descent)

	measure := make([]glyphMetrics, 0, len(charset))
	for _, r := range charset {
		br, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		measure = append(measure, glyphMetrics{
			r:   r,
			w:   br.Max.X.Ceil() - br.Min.X.Floor(),
			h:   br.Max.Y.Ceil() - br.Min.Y.Floor(),
			adv: float32(adv.Round()),
			bx:  float32(br.Min.X.Floor()),
			by:  float32(-br.Min.Y.Floor()),
		})
	}

	limit := maxAtlasSize
	if mts := d.Features().MaxTextureSize; mts > 0 {
		limit = min(limit, mts)
	}
	size, pos, err := pack(measure, limit)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", name, err)
	}

	// white glyphs with alpha coverage
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}
	for _, g := range measure {
		p, ok := pos[g.r]
		if !ok {
			continue
		}
		// the drawer's dot sits on the baseline; clip to the glyph cell
		drawer.Dst = dst.SubImage(image.Rect(p.X, p.Y, p.X+g.w, p.Y+g.h)).(draw.Image)
		drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
		drawer.DrawString(string(g.r))
	}

	tex, err := d.CreateTexture(core.TextureDesc{
		Width: size, Height: size,
		Format: core.TextureRGBA8,
		Pixels: dst.Pix,
	})
	if err != nil {
		return nil, fmt.Errorf("font %s atlas: %w", name, err)
	}

	sf := renderer2d.NewSpriteFont(name, sizePx, ascent, descent, lineGap)
	for _, g := range measure {
		ch := renderer2d.Character{Advance: g.adv, Offset: geom.V2(g.bx, -g.by)}
		if p, ok := pos[g.r]; ok {
			ch.Subtexture = renderer2d.FromPixels(tex, p.X, p.Y, g.w, g.h)
		}
		sf.SetCharacter(g.r, ch)
	}
	for _, a := range measure {
		for _, b := range measure {
			if dx := face.Kern(a.r, b.r); dx != 0 {
				sf.SetKerning(a.r, b.r, float32(dx.Round()))
			}
		}
	}
	return sf, nil
}

// pack places glyphs on shelves, doubling the atlas from 128 up to limit
// until everything fits. Empty glyphs get no cell.
func pack(glyphs []glyphMetrics, limit int) (int, map[rune]image.Point, error) {
	const padding = 2
	for size := min(128, limit); size <= limit; size *= 2 {
		pos, ok := packInto(glyphs, size, padding)
		if ok {
			return size, pos, nil
		}
	}
	return 0, nil, fmt.Errorf("atlas too large (>%d)", limit)
}

func packInto(glyphs []glyphMetrics, size, padding int) (map[rune]image.Point, bool) {
	x, y, rowH := padding, padding, 0
	pos := make(map[rune]image.Point, len(glyphs))
	for _, g := range glyphs {
		if g.w == 0 || g.h == 0 {
			continue
		}
		if g.w+padding*2 > size || g.h+padding*2 > size {
			return nil, false
		}
		if x+g.w+padding > size {
			x = padding
			y += rowH + padding
			rowH = 0
		}
		if y+g.h+padding > size {
			return nil, false
		}
		pos[g.r] = image.Pt(x, y)
		x += g.w + padding
		rowH = max(rowH, g.h)
	}
	return pos, true
}
