package renderer2d

import (
	"testing"

	"github.com/hubastard/batch2d/engine/colors"
	"github.com/hubastard/batch2d/engine/core"
	"github.com/hubastard/batch2d/engine/geom"
	"github.com/hubastard/batch2d/engine/gfx/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderNothingMakesNoDeviceCalls(t *testing.T) {
	b, dev := newTestBatch(t)

	b.PushLayer(4)
	b.PushBlend(core.BlendAdditive)
	b.Render(nil)

	assert.Empty(t, dev.Calls)
	textures, meshes, shaders, materials := dev.Created()
	assert.Zero(t, textures+meshes+shaders+materials)
	assert.Equal(t, Statistics{}, b.Stats())
}

func TestRenderUploadsOnceAndBindsUniforms(t *testing.T) {
	b, dev := newTestBatch(t)
	tex := newTexture(t, dev, 32, 16)

	b.Rect(geom.R(0, 0, 10, 10), colors.White)
	b.PushBlend(core.BlendAdditive)
	b.Tex(tex, geom.V2(5, 5), colors.Red)
	b.PopBlend()
	b.Render(nil)

	mesh := b.mesh.(*record.Mesh)
	assert.Equal(t, 1, mesh.IndexUploads)
	assert.Equal(t, 12, mesh.IndexCount())
	assert.Equal(t, 8, mesh.VertexCount())
	assert.Equal(t, core.IndexUInt32, mesh.IndexFmt)
	assert.Len(t, mesh.Vertices, 8*vertexSize)
	assert.Equal(t, 24, vertexSize)
	assert.Equal(t, vertexSize, mesh.VertexFmt.Stride)

	require.Len(t, dev.Calls, 2)
	proj := geom.Ortho(0, 320, 240, 0, 0.01, 1000)
	for _, c := range dev.Calls {
		assert.Equal(t, proj.Floats(), c.Matrix)
		assert.Equal(t, core.DefaultSampler, c.Sampler)
		assert.Equal(t, core.CompareNone, c.Depth)
		assert.Equal(t, core.CullNone, c.Cull)
		assert.Zero(t, c.InstanceCount)
		assert.False(t, c.HasScissor)
		assert.Equal(t, geom.R(0, 0, 320, 240), c.Viewport)
		assert.Equal(t, dev.Backbuffer(), c.Target)
	}
	assert.Nil(t, dev.Calls[0].Texture)
	assert.Equal(t, core.BlendNormal, dev.Calls[0].Blend)
	assert.Equal(t, tex, dev.Calls[1].Texture)
	assert.Equal(t, core.BlendAdditive, dev.Calls[1].Blend)
	assert.Equal(t, int64(6), dev.Calls[1].IndexStart)
	assert.Equal(t, int64(6), dev.Calls[1].IndexCount)

	st := b.Stats()
	assert.Equal(t, Statistics{Batches: 2, DrawCalls: 2, Triangles: 4, Vertices: 8}, st)
	assert.Equal(t, 12, st.TotalIndexCount())
}

func TestRenderTwiceIsIdentical(t *testing.T) {
	b, dev := newTestBatch(t)
	b.Rect(geom.R(0, 0, 10, 10), colors.White)
	b.PushLayer(-1)
	b.Circle(geom.V2(20, 20), 5, 12, colors.Green)
	b.PopLayer()
	b.PushScissor(geom.R(0, 0, 100, 100))
	b.Tri(geom.V2(0, 0), geom.V2(1, 0), geom.V2(0, 1), colors.Blue)

	b.Render(nil)
	first := append([]record.Call(nil), dev.Calls...)
	b.Render(nil)

	require.Len(t, dev.Calls, 2*len(first))
	assert.Equal(t, first, dev.Calls[len(first):])
	assert.Equal(t, 15, b.TriangleCount())
}

func TestRenderToTargetUsesItsSize(t *testing.T) {
	b, dev := newTestBatch(t)
	target := &record.Target{W: 64, H: 32}

	b.Rect(geom.R(0, 0, 10, 10), colors.White)
	b.Render(target)

	require.Len(t, dev.Calls, 1)
	proj := geom.Ortho(0, 64, 32, 0, 0.01, 1000)
	assert.Equal(t, proj.Floats(), dev.Calls[0].Matrix)
	assert.Equal(t, target, dev.Calls[0].Target)
	assert.Equal(t, geom.R(0, 0, 64, 32), dev.Calls[0].Viewport)
}

func TestRenderWithCustomMatrix(t *testing.T) {
	b, dev := newTestBatch(t)
	b.Rect(geom.R(0, 0, 10, 10), colors.White)

	m := geom.Translate4(3, 4, 0)
	b.RenderWith(nil, m)

	require.Len(t, dev.Calls, 1)
	assert.Equal(t, m.Floats(), dev.Calls[0].Matrix)
}

func TestRenderScissorIsClippedToTarget(t *testing.T) {
	b, dev := newTestBatch(t)

	b.PushScissor(geom.R(-10, 10, 50, 500))
	b.Rect(geom.R(0, 0, 10, 10), colors.White)
	b.PopScissor()
	b.Rect(geom.R(0, 0, 10, 10), colors.White)
	b.Render(nil)

	require.Len(t, dev.Calls, 2)
	assert.True(t, dev.Calls[0].HasScissor)
	assert.Equal(t, geom.R(0, 10, 40, 230), dev.Calls[0].Scissor)
	assert.False(t, dev.Calls[1].HasScissor)
}

func TestRenderUsesPushedMaterial(t *testing.T) {
	b, dev := newTestBatch(t)
	shader, err := dev.CreateShader(DefaultShader)
	require.NoError(t, err)
	custom, err := dev.CreateMaterial(shader)
	require.NoError(t, err)

	b.Rect(geom.R(0, 0, 1, 1), colors.White)
	b.PushMaterial(custom)
	b.Rect(geom.R(0, 0, 1, 1), colors.White)
	b.PopMaterial()
	b.Render(nil)

	require.Len(t, dev.Calls, 2)
	assert.Equal(t, b.defaultMaterial, dev.Calls[0].Material)
	assert.Equal(t, custom, dev.Calls[1].Material)
	assert.NotNil(t, b.defaultMaterial)
}

func TestRenderSkipsBatchesWithoutMaterial(t *testing.T) {
	b, dev := newTestBatch(t)
	shader, err := dev.CreateShader(DefaultShader)
	require.NoError(t, err)
	custom, err := dev.CreateMaterial(shader)
	require.NoError(t, err)
	dev.FailShader = true

	b.Rect(geom.R(0, 0, 1, 1), colors.White)
	b.PushMaterial(custom)
	b.Rect(geom.R(0, 0, 1, 1), colors.White)
	b.PopMaterial()

	assert.NotPanics(t, func() { b.Render(nil) })
	require.Len(t, dev.Calls, 1)
	assert.Equal(t, custom, dev.Calls[0].Material)
	assert.Equal(t, 1, b.Stats().Skipped)
	assert.Equal(t, 1, b.Stats().DrawCalls)

	// creation is not retried every frame
	dev.FailShader = false
	b.Render(nil)
	assert.Nil(t, b.defaultMaterial)
}

func TestRenderWithoutMeshDrawsNothing(t *testing.T) {
	b, dev := newTestBatch(t)
	dev.FailMesh = true

	b.Rect(geom.R(0, 0, 1, 1), colors.White)
	assert.NotPanics(t, func() { b.Render(nil) })
	assert.Empty(t, dev.Calls)

	dev.FailMesh = false
	b.Render(nil)
	assert.Len(t, dev.Calls, 1)
}

func TestRenderWithoutDevice(t *testing.T) {
	b := New(nil)
	b.Rect(geom.R(0, 0, 1, 1), colors.White)
	assert.NotPanics(t, func() { b.Render(nil) })
	assert.Zero(t, b.Stats().DrawCalls)
}

func TestRenderDropsDrawsOnEmptyTarget(t *testing.T) {
	b, dev := newTestBatch(t)
	b.Rect(geom.R(0, 0, 1, 1), colors.White)

	b.Render(&record.Target{})

	assert.Empty(t, dev.Calls)
	assert.Equal(t, 1, b.Stats().Skipped)
}

func TestFramebufferTexturesAreFlipped(t *testing.T) {
	b, dev := newTestBatch(t)
	dev.Feats.OriginBottomLeft = true
	fb, err := dev.CreateTexture(core.TextureDesc{Width: 8, Height: 8, Framebuffer: true})
	require.NoError(t, err)
	plain := newTexture(t, dev, 8, 8)

	b.Tex(fb, geom.V2(0, 0), colors.White)
	assert.True(t, b.Current().FlipVertically)
	v := b.Vertices()
	assert.Equal(t, geom.V2(0, 1), v[0].Tex)
	assert.Equal(t, geom.V2(1, 0), v[2].Tex)

	b.Tex(plain, geom.V2(0, 0), colors.White)
	assert.False(t, b.Current().FlipVertically)
	assert.Equal(t, geom.V2(0, 0), b.Vertices()[4].Tex)

	bs := b.DrawBatches()
	require.Len(t, bs, 2)
	assert.True(t, bs[0].FlipVertically)
}

func TestFramebufferNotFlippedOnTopLeftDevices(t *testing.T) {
	b, dev := newTestBatch(t)
	fb, err := dev.CreateTexture(core.TextureDesc{Width: 8, Height: 8, Framebuffer: true})
	require.NoError(t, err)

	b.Tex(fb, geom.V2(0, 0), colors.White)
	assert.False(t, b.Current().FlipVertically)
	assert.Equal(t, geom.V2(0, 0), b.Vertices()[0].Tex)
}

func TestCustomUniformNames(t *testing.T) {
	dev := record.New(100, 100)
	dev.TextureUniform, dev.SamplerUniform, dev.MatrixUniform = "tex", "tex_sampler", "mvp"
	desc := core.ShaderDesc{
		Name:     "custom",
		Vertex:   "uniform mat4 mvp;\n",
		Fragment: "uniform sampler2D tex;\n",
	}
	b := New(dev, WithShader(desc), WithUniformNames("tex", "tex_sampler", "mvp"))
	tex := newTexture(t, dev, 4, 4)

	b.Tex(tex, geom.V2(0, 0), colors.White)
	b.Render(nil)

	require.Len(t, dev.Calls, 1)
	assert.Equal(t, tex, dev.Calls[0].Texture)
	assert.Len(t, dev.Calls[0].Matrix, 16)
	assert.Equal(t, core.DefaultSampler, dev.Calls[0].Sampler)
}
