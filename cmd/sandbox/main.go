package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hubastard/batch2d/engine/core"
	glbackend "github.com/hubastard/batch2d/engine/gfx/gl"
	"github.com/hubastard/batch2d/engine/gfx/record"
	"github.com/hubastard/batch2d/engine/gfx/renderer2d"
	"github.com/hubastard/batch2d/engine/platform"
	"github.com/hubastard/batch2d/engine/profiler"
	"github.com/hubastard/batch2d/engine/text"
	"golang.org/x/image/font/gofont/goregular"
)

type App struct {
	fontPath   string
	layer      *Layer2D
	debugLayer *LayerDebug
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(1 << 16)

	font, err := loadFont(e.Device, a.fontPath, 18)
	if err != nil {
		slog.Error("sandbox: font", "err", err)
		e.Window.RequestClose()
		return
	}

	w, h := e.Window.FramebufferSize()
	a.layer, err = NewLayer2D(e.Device, font, w, h)
	if err != nil {
		slog.Error("sandbox: scene", "err", err)
		e.Window.RequestClose()
		return
	}
	e.PushLayer(a.layer)

	a.debugLayer = NewLayerDebug(e.Device, font, a.layer.batch)
	e.PushLayer(a.debugLayer)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	if e.Input.IsKeyDown(core.KeyEscape) {
		e.Window.RequestClose()
	}
}

func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnEvent(e *core.Engine, ev core.Event) {}
func (a *App) OnShutdown(e *core.Engine) {}

// loadFont builds a sprite font from path, or from the embedded Go font when path is empty.
func loadFont(d core.Device, path string, size float32) (*renderer2d.SpriteFont, error) {
	if path != "" {
		return text.LoadTTF(d, path, size, text.ASCII)
	}
	return text.FromTTF(d, "goregular", goregular.TTF, size, text.ASCII)
}

// runHeadless renders a single frame of the demo scene into a recording
// device and logs every draw call it produced.
func runHeadless(cfg core.Config, fontPath string) error {
	dev := record.New(cfg.Width, cfg.Height)
	font, err := loadFont(dev, fontPath, 18)
	if err != nil {
		return err
	}
	l, err := NewLayer2D(dev, font, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	l.Frame()

	for i, c := range dev.Calls {
		slog.Info("draw call",
			"index", i,
			"start", c.IndexStart,
			"count", c.IndexCount,
			"scissor", c.HasScissor,
			"textured", c.Texture != nil,
			"additive", c.Blend == core.BlendAdditive,
		)
	}
	st := l.batch.Stats()
	slog.Info("frame", "batches", st.Batches, "draw_calls", st.DrawCalls, "triangles", st.Triangles, "vertices", st.Vertices, "skipped", st.Skipped)
	return nil
}

func main() {
	var (
		configPath = flag.String("config", "sandbox.yaml", "yaml config file")
		fontPath   = flag.String("font", "", "TrueType font for text, defaults to Go Regular")
		headless   = flag.Bool("headless", false, "render one frame without a window and log the draw calls")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	renderer2d.SetLogger(logger)

	cfg, err := core.LoadConfig(*configPath)
	if err != nil {
		slog.Error("sandbox: config", "err", err)
		os.Exit(1)
	}

	if *headless {
		if err := runHeadless(cfg, *fontPath); err != nil {
			slog.Error("sandbox: headless", "err", err)
			os.Exit(1)
		}
		return
	}

	app := &App{fontPath: *fontPath}
	newDevice := func(win core.Window, cfg core.Config) (core.Backend, error) {
		d, err := glbackend.NewDevice(win, cfg)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
	if err := core.Run(app, cfg, platform.NewGLFWWindow, newDevice); err != nil {
		slog.Error("sandbox", "err", err)
		os.Exit(1)
	}
}
