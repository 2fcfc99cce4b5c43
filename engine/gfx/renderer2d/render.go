package renderer2d

import (
	"github.com/hubastard/batch2d/engine/core"
	"github.com/hubastard/batch2d/engine/geom"
	"github.com/hubastard/batch2d/engine/profiler"
)

// Render draws everything emitted since the last Clear into target (nil is
// the backbuffer) with a pixel-space projection: (0,0) top-left, Y down.
func (b *Batch) Render(target core.Target) {
	t := target
	if t == nil && b.device != nil {
		t = b.device.Backbuffer()
	}
	if t == nil {
		b.RenderWith(target, geom.Identity4())
		return
	}
	b.RenderWith(target, geom.Ortho(0, float32(t.Width()), float32(t.Height()), 0, 0.01, 1000))
}

// RenderWith draws everything emitted since the last Clear with the given
// projection. The geometry is uploaded once and each batch becomes one draw
// call, in layer order. Nothing is cleared; call Clear before the next frame.
func (b *Batch) RenderWith(target core.Target, matrix geom.Mat4) {
	defer profiler.Start("renderer2d.Render")()
	b.stats = Statistics{}
	if len(b.indices) == 0 || (len(b.batches) == 0 && b.current.Elements == 0) {
		return
	}
	if b.device == nil {
		Logger().Warn("renderer2d: render without a device")
		return
	}
	if !b.ensureResources() {
		return
	}

	b.mesh.IndexData(core.IndexUInt32, indexBytes(b.indices), len(b.indices))
	b.mesh.VertexData(VertexFormat, vertexBytes(b.vertices), len(b.vertices))
	b.stats.Vertices = len(b.vertices)
	Logger().Debug("renderer2d: upload", "vertices", len(b.vertices), "indices", len(b.indices))

	call := core.DrawCall{
		Target:        target,
		Mesh:          b.mesh,
		InstanceCount: 0,
		Depth:         core.CompareNone,
		Cull:          core.CullNone,
	}
	b.each(func(db *DrawBatch) {
		b.stats.Batches++
		b.renderSingle(call, db, &matrix)
	})
}

func (b *Batch) renderSingle(call core.DrawCall, db *DrawBatch, matrix *geom.Mat4) {
	mat := db.Material
	if mat == nil {
		mat = b.defaultMaterial
	}
	if mat == nil {
		b.stats.Skipped++
		return
	}

	mat.SetTexture(b.opts.textureUniform, db.Texture)
	mat.SetSampler(b.opts.samplerUniform, db.Sampler)
	mat.SetValue(b.opts.matrixUniform, matrix.Floats())

	call.Material = mat
	call.Blend = db.Blend
	call.HasScissor = db.Scissor.W >= 0 && db.Scissor.H >= 0
	call.Scissor = db.Scissor
	call.IndexStart = int64(db.Offset) * 3
	call.IndexCount = int64(db.Elements) * 3

	if err := call.Perform(b.device); err != nil {
		b.stats.Skipped++
		Logger().Warn("renderer2d: draw call dropped", "layer", db.Layer, "offset", db.Offset, "err", err)
		return
	}
	b.stats.DrawCalls++
	b.stats.Triangles += db.Elements
}

// ensureResources lazily creates the mesh and the default shader and material.
// A missing default material is tolerated: batches with their own material still draw.
func (b *Batch) ensureResources() bool {
	if b.mesh == nil {
		mesh, err := b.device.CreateMesh()
		if err != nil {
			Logger().Warn("renderer2d: create mesh", "err", err)
			return false
		}
		b.mesh = mesh
		Logger().Debug("renderer2d: created mesh")
	}
	if b.defaultMaterial != nil || b.createFailed {
		return true
	}

	if b.defaultShader == nil {
		shader, err := b.device.CreateShader(b.opts.shader)
		if err != nil {
			Logger().Warn("renderer2d: create default shader", "shader", b.opts.shader.Name, "err", err)
			b.createFailed = true
			return true
		}
		b.defaultShader = shader
	}
	mat, err := b.device.CreateMaterial(b.defaultShader)
	if err != nil {
		Logger().Warn("renderer2d: create default material", "err", err)
		b.createFailed = true
		return true
	}
	b.defaultMaterial = mat
	Logger().Debug("renderer2d: created default material", "shader", b.opts.shader.Name)
	return true
}
