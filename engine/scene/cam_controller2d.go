package scene

import "github.com/hubastard/batch2d/engine/core"

// Controller2D: WASD move, Q/E rotate, Z/X and the scroll wheel zoom.
type Controller2D struct {
	MoveSpeed float32 // pixels per second at zoom 1
	RotSpeed  float32 // radians per second
	ZoomSpeed float32 // factor per second
	Camera    *Camera2D
}

func NewController2D(cam *Camera2D) *Controller2D {
	return &Controller2D{
		MoveSpeed: 400,
		RotSpeed:  2.0,
		ZoomSpeed: 2,
		Camera:    cam,
	}
}

func (cc *Controller2D) Update(in *core.Input, dt float32) {
	cam := cc.Camera
	speed := cc.MoveSpeed * dt / cam.Zoom

	if in.IsKeyDown(core.KeyW) {
		cam.Move(0, -speed)
	}
	if in.IsKeyDown(core.KeyS) {
		cam.Move(0, speed)
	}
	if in.IsKeyDown(core.KeyA) {
		cam.Move(-speed, 0)
	}
	if in.IsKeyDown(core.KeyD) {
		cam.Move(speed, 0)
	}

	if in.IsKeyDown(core.KeyQ) {
		cam.Rotate(-cc.RotSpeed * dt)
	}
	if in.IsKeyDown(core.KeyE) {
		cam.Rotate(cc.RotSpeed * dt)
	}

	zoom := float32(1)
	if in.IsKeyDown(core.KeyZ) {
		zoom *= 1 + (cc.ZoomSpeed-1)*dt
	}
	if in.IsKeyDown(core.KeyX) {
		zoom /= 1 + (cc.ZoomSpeed-1)*dt
	}
	if s := in.ConsumeScroll(); s != 0 {
		zoom *= 1 + float32(s)*0.1
	}
	if zoom != 1 {
		cam.SetZoom(cam.Zoom * zoom)
	}
}
