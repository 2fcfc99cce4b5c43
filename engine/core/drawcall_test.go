package core_test

import (
	"testing"

	"github.com/hubastard/batch2d/engine/core"
	"github.com/hubastard/batch2d/engine/geom"
	"github.com/hubastard/batch2d/engine/gfx/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCall(t *testing.T, dev *record.Device, indices int) core.DrawCall {
	t.Helper()
	mesh, err := dev.CreateMesh()
	require.NoError(t, err)
	mesh.IndexData(core.IndexUInt32, make([]byte, indices*4), indices)
	shader, err := dev.CreateShader(core.ShaderDesc{Name: "s"})
	require.NoError(t, err)
	mat, err := dev.CreateMaterial(shader)
	require.NoError(t, err)
	return core.DrawCall{Mesh: mesh, Material: mat, IndexCount: int64(indices)}
}

func TestPerformDefaultsToBackbuffer(t *testing.T) {
	dev := record.New(200, 100)
	call := newCall(t, dev, 6)

	require.NoError(t, call.Perform(dev))
	require.Len(t, dev.Calls, 1)
	got := dev.Calls[0]
	assert.Equal(t, dev.Backbuffer(), got.Target)
	assert.Equal(t, geom.R(0, 0, 200, 100), got.Viewport)
	assert.False(t, got.HasScissor)
}

func TestPerformClipsViewportAndScissor(t *testing.T) {
	dev := record.New(200, 100)
	call := newCall(t, dev, 6)
	call.HasViewport = true
	call.Viewport = geom.R(-50, 0, 100, 500)
	call.HasScissor = true
	call.Scissor = geom.R(150, 90, 100, 100)

	require.NoError(t, call.Perform(dev))
	got := dev.Calls[0]
	assert.Equal(t, geom.R(0, 0, 50, 100), got.Viewport)
	assert.Equal(t, geom.R(150, 90, 50, 10), got.Scissor)
}

func TestPerformClampsIndexRange(t *testing.T) {
	dev := record.New(10, 10)
	call := newCall(t, dev, 12)
	call.IndexStart = 6
	call.IndexCount = 100

	require.NoError(t, call.Perform(dev))
	assert.Equal(t, int64(6), dev.Calls[0].IndexCount)
}

func TestPerformRejectsInvalidCalls(t *testing.T) {
	dev := record.New(10, 10)
	valid := newCall(t, dev, 6)

	tests := []struct {
		name   string
		device core.Device
		edit   func(c *core.DrawCall)
		want   error
	}{
		{"no device", nil, func(*core.DrawCall) {}, core.ErrNoDevice},
		{"no mesh", dev, func(c *core.DrawCall) { c.Mesh = nil }, core.ErrNoMesh},
		{"no material", dev, func(c *core.DrawCall) { c.Material = nil }, core.ErrNoMaterial},
		{"nothing to draw", dev, func(c *core.DrawCall) { c.IndexCount = 0 }, core.ErrNothingToRun},
		{"start past end", dev, func(c *core.DrawCall) { c.IndexStart = 6 }, core.ErrIndexRange},
		{"empty target", dev, func(c *core.DrawCall) { c.Target = &record.Target{} }, core.ErrEmptyTarget},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call := valid
			tt.edit(&call)
			err := call.Perform(tt.device)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Empty(t, dev.Calls)

	empty := newCall(t, dev, 0)
	empty.IndexCount = 3
	assert.ErrorIs(t, empty.Perform(dev), core.ErrEmptyMesh)
}

func TestVertexFormatOffsets(t *testing.T) {
	f := core.NewVertexFormat(
		core.VertexAttrib{Type: core.VertexFloat2},
		core.VertexAttrib{Type: core.VertexFloat3},
		core.VertexAttrib{Type: core.VertexUByte4, Normalized: true},
	)
	assert.Equal(t, 8+12+4, f.Stride)
	assert.Equal(t, 0, f.Offset(0))
	assert.Equal(t, 8, f.Offset(1))
	assert.Equal(t, 20, f.Offset(2))
	assert.Equal(t, 4, core.IndexUInt32.Size())
	assert.Equal(t, 2, core.IndexUInt16.Size())
}

func TestBlendModesAreComparable(t *testing.T) {
	assert.Equal(t, core.BlendNormal, core.BlendNormal)
	assert.NotEqual(t, core.BlendNormal, core.BlendAdditive)
	assert.NotEqual(t, core.BlendNormal, core.BlendNonPremultiplied)
}
