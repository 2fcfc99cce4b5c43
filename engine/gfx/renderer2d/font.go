package renderer2d

import (
	"strings"

	"github.com/hubastard/batch2d/engine/geom"
)

// Character is one glyph of a SpriteFont.
type Character struct {
	Subtexture Subtexture
	// Offset of the glyph's top-left corner from the pen position on the baseline.
	Offset  geom.Vec2
	Advance float32
}

type kernPair struct{ a, b rune }

// SpriteFont is a set of glyph subtextures with the metrics needed to lay out text.
// Descent is negative (below the baseline).
type SpriteFont struct {
	Name    string
	Size    float32
	Ascent  float32
	Descent float32
	LineGap float32

	chars   map[rune]Character
	kerning map[kernPair]float32
}

func NewSpriteFont(name string, size, ascent, descent, lineGap float32) *SpriteFont {
	return &SpriteFont{
		Name: name, Size: size,
		Ascent: ascent, Descent: descent, LineGap: lineGap,
		chars:   make(map[rune]Character),
		kerning: make(map[kernPair]float32),
	}
}

func (f *SpriteFont) SetCharacter(r rune, ch Character) { f.chars[r] = ch }

func (f *SpriteFont) Character(r rune) (Character, bool) {
	ch, ok := f.chars[r]
	return ch, ok
}

// advance falls back to the width of a space for runes the font lacks.
func (f *SpriteFont) advance(r rune) float32 {
	if ch, ok := f.chars[r]; ok {
		return ch.Advance
	}
	return f.chars[' '].Advance
}

func (f *SpriteFont) SetKerning(a, b rune, v float32) {
	if v == 0 {
		delete(f.kerning, kernPair{a, b})
		return
	}
	f.kerning[kernPair{a, b}] = v
}

func (f *SpriteFont) Kerning(a, b rune) float32 { return f.kerning[kernPair{a, b}] }

// LineHeight is the distance between two baselines.
func (f *SpriteFont) LineHeight() float32 { return f.Ascent - f.Descent + f.LineGap }

// HeightOf is the height of text from the top of the first line to the bottom of the last.
func (f *SpriteFont) HeightOf(text string) float32 {
	if text == "" {
		return 0
	}
	lines := strings.Count(text, "\n") + 1
	return float32(lines)*f.LineHeight() - f.LineGap
}

// WidthOf is the width of the widest line of text.
func (f *SpriteFont) WidthOf(text string) float32 {
	var width float32
	for start := 0; start <= len(text); {
		width = max(width, f.WidthOfLine(text, start))
		nl := strings.IndexByte(text[start:], '\n')
		if nl < 0 {
			break
		}
		start += nl + 1
	}
	return width
}

// WidthOfLine measures the line of text starting at byte offset start.
func (f *SpriteFont) WidthOfLine(text string, start int) float32 {
	if start < 0 || start >= len(text) {
		return 0
	}
	var width float32
	var last rune = -1
	for _, r := range text[start:] {
		if r == '\n' {
			break
		}
		if last >= 0 {
			width += f.Kerning(last, r)
		}
		width += f.advance(r)
		last = r
	}
	return width
}

// TextAlign flags. Horizontal and vertical flags combine; an axis with no flag is centered.
type TextAlign int

const (
	AlignCenter TextAlign = 0
	AlignLeft   TextAlign = 1 << 0
	AlignRight  TextAlign = 1 << 1
	AlignTop    TextAlign = 1 << 2
	AlignBottom TextAlign = 1 << 3

	AlignTopLeft     = AlignTop | AlignLeft
	AlignTopRight    = AlignTop | AlignRight
	AlignBottomLeft  = AlignBottom | AlignLeft
	AlignBottomRight = AlignBottom | AlignRight
)

func (a TextAlign) has(flag TextAlign) bool { return a&flag == flag }

// lineX is the pen start for the line at byte offset start.
func (f *SpriteFont) lineX(text string, start int, align TextAlign) float32 {
	switch {
	case align.has(AlignLeft):
		return 0
	case align.has(AlignRight):
		return -f.WidthOfLine(text, start)
	default:
		return -float32(int(f.WidthOfLine(text, start) * 0.5))
	}
}
