package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hubastard/batch2d/engine/colors"
	"github.com/hubastard/batch2d/engine/core"
	"github.com/hubastard/batch2d/engine/geom"
	"github.com/hubastard/batch2d/engine/gfx/renderer2d"
	"github.com/hubastard/batch2d/engine/profiler"
)

const speedscopePath = "batch2d.speedscope.json"

// LayerDebug draws frame, batch and memory stats in screen space.
type LayerDebug struct {
	batch  *renderer2d.Batch
	font   *renderer2d.SpriteFont
	scene  *renderer2d.Batch
	frames *profiler.FrameTimer
	lines  []string
}

func NewLayerDebug(d core.Device, font *renderer2d.SpriteFont, scene *renderer2d.Batch) *LayerDebug {
	return &LayerDebug{
		batch:  renderer2d.New(d),
		font:   font,
		scene:  scene,
		frames: profiler.NewFrameTimer(60),
	}
}

func (l *LayerDebug) OnAttach(e *core.Engine) {}

func (l *LayerDebug) OnDetach(e *core.Engine) { l.batch.Dispose() }

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {
	defer profiler.Start("LayerDebug.OnRender")()

	l.frames.Tick(time.Now())
	l.collect()

	b := l.batch
	b.Clear()
	l.draw(geom.V2(16, 16))
	b.Render(nil)
}

// collect formats the stats of the previous frame.
func (l *LayerDebug) collect() {
	st := l.scene.Stats()
	mem := profiler.ReadMemory()
	avg := l.frames.Average()

	l.lines = append(l.lines[:0],
		fmt.Sprintf("Frame %d", l.frames.Frames()),
		fmt.Sprintf("  %.3f ms (%.1f FPS)", float64(avg.Microseconds())/1000, l.frames.FPS()),
		"Batch",
		fmt.Sprintf("  batches %d, draw calls %d", st.Batches, st.DrawCalls),
		fmt.Sprintf("  triangles %d, vertices %d", st.Triangles, st.Vertices),
		fmt.Sprintf("  skipped %d", st.Skipped),
		"Memory",
		fmt.Sprintf("  heap %.3f MB, allocs %d", float64(mem.Alloc)/(1<<20), mem.Mallocs),
		fmt.Sprintf("  goroutines %d, cpus %d", mem.Goroutines, mem.CPUs),
	)
}

func (l *LayerDebug) draw(at geom.Vec2) {
	if l.font == nil {
		return
	}
	b := l.batch
	lh := l.font.LineHeight()
	var w float32
	for _, s := range l.lines {
		w = max(w, l.font.WidthOf(s))
	}
	const pad = 12
	b.RectRounded(geom.R(at.X, at.Y, w+pad*2, lh*float32(len(l.lines))+pad*2), 8, 4, colors.Black.WithAlpha(160))

	pos := geom.V2(at.X+pad, at.Y+pad)
	for _, s := range l.lines {
		c := colors.White
		if len(s) > 0 && s[0] != ' ' {
			c = colors.Yellow
		}
		b.Str(l.font, s, pos, c)
		pos.Y += lh
	}
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	k, ok := ev.(core.EventKey)
	if !ok || !k.Down || k.Key != core.KeyP || k.Mods&core.ModCtrl == 0 {
		return false
	}
	if err := profiler.WriteSpeedscope(speedscopePath); err != nil {
		slog.Warn("sandbox: profile dump", "err", err)
	} else {
		slog.Info("sandbox: profile written", "path", speedscopePath)
	}
	return true
}
