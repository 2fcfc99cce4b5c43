package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hubastard/batch2d/engine/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recLayer struct {
	name    string
	handles bool
	log     *[]string
}

func (l *recLayer) OnAttach(*Engine)           { *l.log = append(*l.log, "attach "+l.name) }
func (l *recLayer) OnDetach(*Engine)           { *l.log = append(*l.log, "detach "+l.name) }
func (l *recLayer) OnUpdate(*Engine, float64)  {}
func (l *recLayer) OnRender(*Engine, float64)  { *l.log = append(*l.log, "render "+l.name) }
func (l *recLayer) OnEvent(*Engine, Event) bool {
	*l.log = append(*l.log, "event "+l.name)
	return l.handles
}

func TestLayerStackOrder(t *testing.T) {
	var log []string
	e := &Engine{Input: NewInput()}
	e.PushLayer(&recLayer{name: "bottom", handles: true, log: &log})
	e.PushLayer(&recLayer{name: "top", log: &log})

	e.Layers.ForEach(func(l Layer) { l.OnRender(e, 0) })
	handled := e.Layers.Dispatch(e, EventKey{Key: KeySpace, Down: true})
	e.PopLayer()
	e.PopLayer()
	e.PopLayer()

	assert.True(t, handled)
	assert.Equal(t, []string{
		"attach bottom", "attach top",
		"render bottom", "render top",
		"event top", "event bottom",
		"detach top", "detach bottom",
	}, log)
	assert.Zero(t, e.Layers.Len())
}

func TestInput(t *testing.T) {
	in := NewInput()
	in.Handle(EventKey{Key: KeyW, Down: true})
	in.Handle(EventMouseMove{X: 3, Y: 4})
	in.Handle(EventScroll{Yoff: 1})
	in.Handle(EventScroll{Yoff: 0.5})

	assert.True(t, in.IsKeyDown(KeyW))
	assert.False(t, in.IsKeyDown(KeyA))
	x, y := in.Mouse()
	assert.Equal(t, [2]float64{3, 4}, [2]float64{x, y})
	assert.Equal(t, 1.5, in.ConsumeScroll())
	assert.Zero(t, in.ConsumeScroll())

	in.Handle(EventKey{Key: KeyW})
	assert.False(t, in.IsKeyDown(KeyW))
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path := filepath.Join(dir, "sandbox.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: demo\nwidth: 640\nclear_color: \"#102030\"\n"), 0o644))
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Title)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.Equal(t, colors.RGB(0x10, 0x20, 0x30), cfg.ClearColor)

	require.NoError(t, os.WriteFile(path, []byte("clear_color: {r: 1, g: 2, b: 3}\n"), 0o644))
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, colors.Color{R: 1, G: 2, B: 3, A: 255}, cfg.ClearColor)

	require.NoError(t, os.WriteFile(path, []byte("width: -1\n"), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("clear_color: \"#zz\"\n"), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}
