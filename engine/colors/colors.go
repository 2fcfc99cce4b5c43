package colors

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is an 8-bit per channel RGBA color, laid out the way vertices carry it.
type Color struct {
	R, G, B, A uint8
}

var (
	Transparent = Color{0, 0, 0, 0}
	White       = Color{255, 255, 255, 255}
	Red         = Color{255, 0, 0, 255}
	Green       = Color{0, 255, 0, 255}
	Blue        = Color{0, 0, 255, 255}
	Black       = Color{0, 0, 0, 255}
	Magenta     = Color{255, 0, 255, 255}
	Cyan        = Color{0, 255, 255, 255}
	Yellow      = Color{255, 255, 0, 255}
	Gray        = Color{128, 128, 128, 255}
	DarkGray    = Color{20, 26, 31, 255}
)

// RGB builds an opaque color.
func RGB(r, g, b uint8) Color { return Color{r, g, b, 255} }

// Hex builds an opaque color from 0xRRGGBB.
func Hex(v uint32) Color {
	return Color{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}
}

func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Mul scales every channel (alpha included) by f, clamped to [0,1].
func (c Color) Mul(f float32) Color {
	if f <= 0 {
		return Transparent
	}
	if f >= 1 {
		return c
	}
	return Color{
		uint8(float32(c.R) * f),
		uint8(float32(c.G) * f),
		uint8(float32(c.B) * f),
		uint8(float32(c.A) * f),
	}
}

// Floats returns the color normalized to [0..1], handy for clear colors and uniforms.
func (c Color) Floats() [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

// UnmarshalYAML accepts "#RRGGBB", "#RRGGBBAA" or an {r, g, b, a} mapping.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		s := strings.TrimPrefix(node.Value, "#")
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil || (len(s) != 6 && len(s) != 8) {
			return fmt.Errorf("color: invalid hex %q", node.Value)
		}
		if len(s) == 6 {
			*c = Hex(uint32(v))
			return nil
		}
		*c = Color{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}
		return nil
	}
	var raw struct{ R, G, B, A uint8 }
	raw.A = 255
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	*c = Color(raw)
	return nil
}
