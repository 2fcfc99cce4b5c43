package core

import (
	"errors"
	"fmt"

	"github.com/hubastard/batch2d/engine/geom"
)

type Compare int

const (
	CompareNone Compare = iota
	CompareAlways
	CompareNever
	CompareLess
	CompareEqual
	CompareLessOrEqual
	CompareGreater
	CompareNotEqual
	CompareGreaterOrEqual
)

type Cull int

const (
	CullNone Cull = iota
	CullFront
	CullBack
)

var (
	ErrNoDevice     = errors.New("draw call: no device")
	ErrNoMesh       = errors.New("draw call: no mesh")
	ErrNoMaterial   = errors.New("draw call: no material")
	ErrEmptyMesh    = errors.New("draw call: mesh has no indices")
	ErrIndexRange   = errors.New("draw call: index range outside of mesh")
	ErrEmptyTarget  = errors.New("draw call: target has no size")
	ErrNothingToRun = errors.New("draw call: index count is zero")
)

// DrawCall describes one indexed draw. Zero values mean: backbuffer target,
// full-target viewport, no scissor, no depth test, no culling.
type DrawCall struct {
	Target   Target
	Mesh     Mesh
	Material Material

	HasViewport bool
	Viewport    geom.Rect
	HasScissor  bool
	Scissor     geom.Rect

	IndexStart    int64
	IndexCount    int64
	InstanceCount int64

	Depth Compare
	Cull  Cull
	Blend BlendMode
}

// Perform validates the call against the device and the target size and
// hands it to the device. Nothing is drawn when an error is returned.
func (c DrawCall) Perform(d Device) error {
	if d == nil {
		return ErrNoDevice
	}
	if c.Mesh == nil {
		return ErrNoMesh
	}
	if c.Material == nil {
		return ErrNoMaterial
	}

	total := int64(c.Mesh.IndexCount())
	if total <= 0 {
		return ErrEmptyMesh
	}
	if c.IndexCount <= 0 {
		return ErrNothingToRun
	}
	if c.IndexStart < 0 || c.IndexStart >= total {
		return fmt.Errorf("%w: start %d, mesh has %d", ErrIndexRange, c.IndexStart, total)
	}
	if c.IndexStart+c.IndexCount > total {
		c.IndexCount = total - c.IndexStart
	}

	target := c.Target
	if target == nil {
		target = d.Backbuffer()
	}
	if target == nil || target.Width() <= 0 || target.Height() <= 0 {
		return ErrEmptyTarget
	}
	bounds := geom.R(0, 0, float32(target.Width()), float32(target.Height()))

	if !c.HasViewport {
		c.Viewport = bounds
	} else {
		c.Viewport = c.Viewport.Overlap(bounds)
	}
	if c.HasScissor {
		c.Scissor = c.Scissor.Overlap(bounds)
	}

	c.Target = target
	d.Render(c)
	return nil
}
