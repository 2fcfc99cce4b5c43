// Package glbackend implements core.Device on OpenGL 3.3 core.
package glbackend

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/batch2d/engine/colors"
	"github.com/hubastard/batch2d/engine/core"
)

// Device drives an OpenGL context that must be current on the calling thread.
type Device struct {
	win        core.Window
	feats      core.Features
	backbuffer *backbuffer
}

var _ core.Backend = (*Device)(nil)

type backbuffer struct{ w, h int }

func (b *backbuffer) Width() int  { return b.w }
func (b *backbuffer) Height() int { return b.h }

// NewDevice wraps the context created by the window. The window has already
// loaded the GL function pointers.
func NewDevice(win core.Window, _ core.Config) (*Device, error) {
	var maxTex int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &maxTex)
	if maxTex <= 0 {
		return nil, fmt.Errorf("gl: no usable context")
	}

	d := &Device{
		win:        win,
		feats:      core.Features{OriginBottomLeft: true, MaxTextureSize: int(maxTex)},
		backbuffer: &backbuffer{},
	}
	d.backbuffer.w, d.backbuffer.h = win.FramebufferSize()

	slog.Info("gl device",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"max_texture_size", maxTex,
	)
	return d, nil
}

func (d *Device) Features() core.Features { return d.feats }
func (d *Device) Backbuffer() core.Target { return d.backbuffer }

func (d *Device) Resize(w, h int) {
	d.backbuffer.w, d.backbuffer.h = w, h
	gl.Viewport(0, 0, int32(w), int32(h))
}

// Clear clears the backbuffer's color, depth and stencil.
func (d *Device) Clear(c colors.Color) {
	f := c.Floats()
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Disable(gl.SCISSOR_TEST)
	gl.ColorMask(true, true, true, true)
	gl.ClearColor(f[0], f[1], f[2], f[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
}

func (d *Device) Shutdown() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.UseProgram(0)
	gl.BindVertexArray(0)
}

// Render executes one indexed draw. The call has been validated by DrawCall.Perform.
func (d *Device) Render(call core.DrawCall) {
	mesh, ok := call.Mesh.(*mesh)
	if !ok {
		slog.Warn("gl: foreign mesh", "type", fmt.Sprintf("%T", call.Mesh))
		return
	}
	mat, ok := call.Material.(*material)
	if !ok {
		slog.Warn("gl: foreign material", "type", fmt.Sprintf("%T", call.Material))
		return
	}

	targetH := d.backbuffer.h
	if t, ok := call.Target.(*texture); ok && t.fbo != 0 {
		gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
		targetH = t.h
	} else {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		if call.Target != nil {
			targetH = call.Target.Height()
		}
	}

	gl.UseProgram(mat.shader.program)
	mat.apply()

	applyBlend(call.Blend)
	applyDepth(call.Depth)
	applyCull(call.Cull)

	// core rects are top-left based, GL's are bottom-left
	vp := call.Viewport
	gl.Viewport(int32(vp.X), int32(float32(targetH)-vp.Y-vp.H), int32(vp.W), int32(vp.H))
	if call.HasScissor {
		s := call.Scissor
		gl.Enable(gl.SCISSOR_TEST)
		gl.Scissor(int32(s.X), int32(float32(targetH)-s.Y-s.H), int32(s.W), int32(s.H))
	} else {
		gl.Disable(gl.SCISSOR_TEST)
	}

	gl.BindVertexArray(mesh.vao)
	indexType, indexSize := uint32(gl.UNSIGNED_INT), 4
	if mesh.indexFormat == core.IndexUInt16 {
		indexType, indexSize = gl.UNSIGNED_SHORT, 2
	}
	offset := gl.PtrOffset(int(call.IndexStart) * indexSize)
	if call.InstanceCount > 0 {
		gl.DrawElementsInstanced(gl.TRIANGLES, int32(call.IndexCount), indexType, offset, int32(call.InstanceCount))
	} else {
		gl.DrawElements(gl.TRIANGLES, int32(call.IndexCount), indexType, offset)
	}
	gl.BindVertexArray(0)
}

func applyBlend(b core.BlendMode) {
	gl.Enable(gl.BLEND)
	gl.BlendEquationSeparate(blendOp(b.ColorOp), blendOp(b.AlphaOp))
	gl.BlendFuncSeparate(blendFactor(b.ColorSrc), blendFactor(b.ColorDst), blendFactor(b.AlphaSrc), blendFactor(b.AlphaDst))
	gl.ColorMask(b.Mask&core.MaskRed != 0, b.Mask&core.MaskGreen != 0, b.Mask&core.MaskBlue != 0, b.Mask&core.MaskAlpha != 0)
	gl.BlendColor(
		float32(b.RGBA>>24&0xff)/255,
		float32(b.RGBA>>16&0xff)/255,
		float32(b.RGBA>>8&0xff)/255,
		float32(b.RGBA&0xff)/255,
	)
}

func applyDepth(c core.Compare) {
	if c == core.CompareNone {
		gl.Disable(gl.DEPTH_TEST)
		return
	}
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(compareFunc(c))
}

func applyCull(c core.Cull) {
	switch c {
	case core.CullFront:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT)
	case core.CullBack:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	default:
		gl.Disable(gl.CULL_FACE)
	}
}
