package main

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/hubastard/batch2d/engine/assets"
	"github.com/hubastard/batch2d/engine/colors"
	"github.com/hubastard/batch2d/engine/core"
	"github.com/hubastard/batch2d/engine/geom"
	"github.com/hubastard/batch2d/engine/gfx/renderer2d"
	"github.com/hubastard/batch2d/engine/profiler"
	"github.com/hubastard/batch2d/engine/scene"
)

const canvasSize = 128

// Layer2D draws the demo scene in world space through a movable camera.
type Layer2D struct {
	batch *renderer2d.Batch
	cam   *scene.Camera2D
	ctrl  *scene.Controller2D
	font  *renderer2d.SpriteFont

	checker core.Texture
	tiles   [4]renderer2d.Subtexture
	player  renderer2d.Subtexture

	// canvas is redrawn every frame by its own batch and drawn back as a sprite
	canvas      core.Texture
	canvasBatch *renderer2d.Batch

	t float32
}

func NewLayer2D(d core.Device, font *renderer2d.SpriteFont, w, h int) (*Layer2D, error) {
	l := &Layer2D{
		batch:       renderer2d.New(d, renderer2d.WithInitialCapacity(4096)),
		canvasBatch: renderer2d.New(d),
		cam:         scene.NewCamera2D(w, h),
		font:        font,
	}
	l.ctrl = scene.NewController2D(l.cam)

	var err error
	l.checker, err = d.CreateTexture(core.TextureDesc{
		Width: 64, Height: 64, Format: core.TextureRGBA8, Pixels: checkerPixels(64, 16),
	})
	if err != nil {
		return nil, fmt.Errorf("checker texture: %w", err)
	}
	for i := range l.tiles {
		l.tiles[i] = renderer2d.FromGrid(l.checker, i%2, i/2, 32, 32)
	}

	// the sprite sheet is optional; the checker stands in for it
	l.player = renderer2d.FromPixels(l.checker, 0, 0, 32, 32)
	if tex, err := assets.LoadTexture(d, "player.png"); err == nil {
		l.player = renderer2d.FromPixels(tex, 0, 0, min(32, tex.Width()), min(32, tex.Height()))
	}

	l.canvas, err = d.CreateTexture(core.TextureDesc{
		Width: canvasSize, Height: canvasSize, Format: core.TextureRGBA8, Framebuffer: true,
	})
	if err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}
	return l, nil
}

// checkerPixels builds a premultiplied RGBA checkerboard.
func checkerPixels(size, cell int) []byte {
	px := make([]byte, size*size*4)
	for y := range size {
		for x := range size {
			c := colors.Hex(0x3a7bd5)
			if (x/cell+y/cell)%2 == 0 {
				c = colors.Hex(0xe0e0e0)
			}
			i := (y*size + x) * 4
			px[i], px[i+1], px[i+2], px[i+3] = c.R, c.G, c.B, c.A
		}
	}
	return px
}

func (l *Layer2D) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.cam.SetViewport(w, h)
}

func (l *Layer2D) OnDetach(e *core.Engine) {
	l.batch.Dispose()
	l.canvasBatch.Dispose()
	l.checker.Dispose()
	l.canvas.Dispose()
}

func (l *Layer2D) OnUpdate(e *core.Engine, dt float64) {
	l.ctrl.Update(e.Input, float32(dt))
	l.t += float32(dt)
}

func (l *Layer2D) OnRender(e *core.Engine, alpha float64) {
	defer profiler.Start("Layer2D.OnRender")()
	l.Frame()
}

// Frame redraws the canvas, then emits and renders the scene to the backbuffer.
func (l *Layer2D) Frame() {
	l.drawCanvas()
	l.batch.Clear()
	l.Draw()
	l.batch.RenderWith(nil, l.cam.Matrix())
}

func (l *Layer2D) OnEvent(e *core.Engine, ev core.Event) bool {
	if v, ok := ev.(core.EventResize); ok {
		l.cam.SetViewport(v.W, v.H)
	}
	return false
}

// drawCanvas renders a spinning fan into the framebuffer texture.
func (l *Layer2D) drawCanvas() {
	b := l.canvasBatch
	b.Clear()
	b.Rect(geom.R(0, 0, canvasSize, canvasSize), colors.Black.WithAlpha(200))
	center := geom.V2(canvasSize/2, canvasSize/2)
	for i := range 6 {
		a := l.t + float32(i)*math32.Pi/3
		b.SemiCircle(center, a, a+math32.Pi/6, canvasSize*0.45, 8, colors.Yellow, colors.Red)
	}
	b.Render(l.canvas)
}

// Draw emits the whole scene into the batch. It does not render.
func (l *Layer2D) Draw() {
	b := l.batch

	// background grid behind everything
	b.PushLayer(-10)
	for i := -10; i <= 10; i++ {
		f := float32(i) * 64
		b.Line(geom.V2(f, -640), geom.V2(f, 640), 1, colors.Gray.WithAlpha(60))
		b.Line(geom.V2(-640, f), geom.V2(640, f), 1, colors.Gray.WithAlpha(60))
	}
	b.PopLayer()

	// flat shapes
	b.Rect(geom.R(-300, -200, 120, 80), colors.Hex(0xd9534f))
	b.RectRounded(geom.R(-160, -200, 120, 80), 16, 6, colors.Hex(0x5cb85c))
	b.RectRoundedLine(geom.R(-20, -200, 120, 80), 16, 6, 3, colors.Hex(0xf0ad4e))
	b.RectLine(geom.R(120, -200, 120, 80), 4, colors.Cyan)
	b.TriGradient(geom.V2(-300, -20), geom.V2(-180, -20), geom.V2(-240, -110), colors.Red, colors.Green, colors.Blue)
	b.CircleGradient(geom.V2(-100, -60), 50, 32, colors.White, colors.Magenta.WithAlpha(0))
	b.CircleLine(geom.V2(40, -60), 50, 3, 32, colors.Yellow)
	b.BezierLine(geom.V2(120, -20), geom.V2(180, -140), geom.V2(240, -20), 16, 3, colors.White)
	b.ArrowHead(geom.V2(240, -20), math32.Pi/4, 16, colors.White)

	// additive glow, split into its own batch
	b.PushBlend(core.BlendAdditive)
	for i := range 3 {
		a := l.t + float32(i)*2*math32.Pi/3
		c := geom.V2(-200, 120).Add(geom.FromAngle(a, 30))
		b.Circle(c, 50, 24, []colors.Color{colors.Red, colors.Green, colors.Blue}[i].WithAlpha(160))
	}
	b.PopBlend()

	// textures: plain, transformed, tinted and washed
	b.Tex(l.checker, geom.V2(-60, 60), colors.White)
	b.TexTransformed(l.checker, geom.V2(110, 120), geom.V2(32, 32), geom.V2(1.5, 1.5), l.t, colors.White)
	for i, tile := range l.tiles {
		b.TexSub(tile, geom.V2(180+float32(i)*36, 60), colors.White)
	}
	b.PushColorMode(renderer2d.ColorWash)
	b.TexSubTransformed(l.player, geom.V2(260, 140), geom.V2(16, 16), geom.V2(2, 2), 0, colors.Hex(0xf0ad4e))
	b.PopColorMode()
	b.TexSubClip(l.player, geom.R(8, 8, 16, 16), geom.V2(320, 60), colors.White)

	// framebuffer texture, flipped back by the batch
	b.Tex(l.canvas, geom.V2(-300, 200), colors.White)

	// orbiting quads under a nested transform
	b.PushMatrix(geom.Transform(geom.V2(120, 260), geom.Vec2{}, geom.V2(1, 1), l.t*0.5), false)
	for i := range 8 {
		a := float32(i) * math32.Pi / 4
		p := geom.FromAngle(a, 60)
		b.QuadGradient(p.Add(geom.V2(-8, -8)), p.Add(geom.V2(8, -8)), p.Add(geom.V2(8, 8)), p.Add(geom.V2(-8, 8)),
			colors.White, colors.Cyan, colors.Blue, colors.Magenta)
	}
	b.PopMatrix()

	// a strip of the scene clipped in screen space
	w, h := l.cam.Width(), l.cam.Height()
	b.PushScissor(geom.R(0, h*0.5-20, w, 40))
	b.PushLayer(5)
	b.Rect(geom.R(-640, -640, 1280, 1280), colors.Hex(0x3a7bd5).WithAlpha(80))
	b.PopLayer()
	b.PopScissor()

	// labels above the rest
	if l.font != nil {
		b.PushLayer(10)
		b.StrAligned(l.font, "batch2d sandbox", geom.V2(0, -260), renderer2d.AlignCenter, 32, colors.White)
		b.Str(l.font, "WASD move, Q/E rotate, Z/X zoom", geom.V2(-300, 330), colors.Gray)
		b.PopLayer()
	}
}
