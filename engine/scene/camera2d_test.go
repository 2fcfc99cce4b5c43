package scene

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/hubastard/batch2d/engine/core"
	"github.com/hubastard/batch2d/engine/geom"
	"github.com/stretchr/testify/assert"
)

func assertVec(t *testing.T, want, got geom.Vec2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-3)
	assert.InDelta(t, want.Y, got.Y, 1e-3)
}

func TestCameraCentersPosition(t *testing.T) {
	c := NewCamera2D(800, 600)
	c.SetPosition(geom.V2(100, 50))

	assertVec(t, geom.V2(400, 300), c.View().ApplyVec(geom.V2(100, 50)))
	assertVec(t, geom.V2(410, 300), c.View().ApplyVec(geom.V2(110, 50)))

	c.SetZoom(2)
	assertVec(t, geom.V2(420, 300), c.View().ApplyVec(geom.V2(110, 50)))

	c.SetZoom(0)
	assert.Equal(t, float32(minZoom), c.Zoom)
}

func TestCameraRotation(t *testing.T) {
	c := NewCamera2D(200, 200)
	c.Rotate(math32.Pi / 2)

	// a point right of the center ends up below it (Y down)
	assertVec(t, geom.V2(100, 110), c.View().ApplyVec(geom.V2(10, 0)))
}

func TestScreenToWorldInvertsView(t *testing.T) {
	c := NewCamera2D(640, 480)
	c.SetPosition(geom.V2(-30, 12))
	c.SetZoom(1.5)
	c.Rotate(0.3)

	w := geom.V2(17, -4)
	assertVec(t, w, c.ScreenToWorld(c.View().ApplyVec(w)))
}

func TestCameraMatrixReachesClipSpace(t *testing.T) {
	c := NewCamera2D(800, 600)
	c.SetPosition(geom.V2(100, 50))

	m := c.Matrix()
	x, y := m.Apply(100, 50)
	assert.InDelta(t, 0, x, 1e-5)
	assert.InDelta(t, 0, y, 1e-5)

	x, y = m.Apply(100-400, 50-300)
	assert.InDelta(t, -1, x, 1e-5)
	assert.InDelta(t, 1, y, 1e-5)
}

func TestControllerMovesAndZooms(t *testing.T) {
	cam := NewCamera2D(100, 100)
	cc := NewController2D(cam)
	in := core.NewInput()

	in.Handle(core.EventKey{Key: core.KeyD, Down: true})
	in.Handle(core.EventKey{Key: core.KeyW, Down: true})
	cc.Update(in, 0.5)
	assertVec(t, geom.V2(200, -200), cam.Position)

	in.Handle(core.EventKey{Key: core.KeyD})
	in.Handle(core.EventKey{Key: core.KeyW})
	in.Handle(core.EventScroll{Yoff: 2})
	cc.Update(in, 0.1)
	assert.InDelta(t, 1.2, cam.Zoom, 1e-5)

	cc.Update(in, 0.1)
	assert.InDelta(t, 1.2, cam.Zoom, 1e-5)
}
