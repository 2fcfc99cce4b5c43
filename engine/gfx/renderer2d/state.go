package renderer2d

import (
	"github.com/hubastard/batch2d/engine/core"
	"github.com/hubastard/batch2d/engine/geom"
)

// pop removes the top of s. ok is false when s is empty.
func pop[T any](s *[]T) (v T, ok bool) {
	n := len(*s)
	if n == 0 {
		return v, false
	}
	v = (*s)[n-1]
	var zero T
	(*s)[n-1] = zero
	*s = (*s)[:n-1]
	return v, true
}

func underflow(stack string) {
	Logger().Warn("renderer2d: pop on empty stack", "stack", stack)
}

// PushMatrix makes m the current transform. Unless absolute, m is applied
// before the transform already in place. Matrix changes never split a batch:
// vertices are transformed as they are emitted.
func (b *Batch) PushMatrix(m geom.Mat3x2, absolute bool) {
	b.matrixStack = append(b.matrixStack, b.matrix)
	if absolute {
		b.matrix = m
	} else {
		b.matrix = m.Mul(b.matrix)
	}
}

// PopMatrix restores the previous transform and returns the one removed.
func (b *Batch) PopMatrix() geom.Mat3x2 {
	was := b.matrix
	m, ok := pop(&b.matrixStack)
	if !ok {
		underflow("matrix")
		return was
	}
	b.matrix = m
	return was
}

func (b *Batch) PeekMatrix() geom.Mat3x2 { return b.matrix }

// PushScissor clips following geometry to r (in target pixels). A negative
// size disables scissoring.
func (b *Batch) PushScissor(r geom.Rect) {
	b.scissorStack = append(b.scissorStack, b.current.Scissor)
	b.setScissor(r)
}

func (b *Batch) PopScissor() geom.Rect {
	was := b.current.Scissor
	r, ok := pop(&b.scissorStack)
	if !ok {
		underflow("scissor")
		return was
	}
	b.setScissor(r)
	return was
}

func (b *Batch) PeekScissor() geom.Rect { return b.current.Scissor }

func (b *Batch) setScissor(r geom.Rect) {
	if r != b.current.Scissor {
		b.flush()
		b.current.Scissor = r
	}
}

func (b *Batch) PushBlend(mode core.BlendMode) {
	b.blendStack = append(b.blendStack, b.current.Blend)
	b.setBlend(mode)
}

func (b *Batch) PopBlend() core.BlendMode {
	was := b.current.Blend
	mode, ok := pop(&b.blendStack)
	if !ok {
		underflow("blend")
		return was
	}
	b.setBlend(mode)
	return was
}

func (b *Batch) PeekBlend() core.BlendMode { return b.current.Blend }

func (b *Batch) setBlend(mode core.BlendMode) {
	if mode != b.current.Blend {
		b.flush()
		b.current.Blend = mode
	}
}

// PushMaterial draws following geometry with m. A nil material means the
// batch's default material.
func (b *Batch) PushMaterial(m core.Material) {
	b.materialStack = append(b.materialStack, b.current.Material)
	b.setMaterial(m)
}

func (b *Batch) PopMaterial() core.Material {
	was := b.current.Material
	m, ok := pop(&b.materialStack)
	if !ok {
		underflow("material")
		return was
	}
	b.setMaterial(m)
	return was
}

func (b *Batch) PeekMaterial() core.Material { return b.current.Material }

func (b *Batch) setMaterial(m core.Material) {
	if m != b.current.Material {
		b.flush()
		b.current.Material = m
	}
}

// PushLayer moves following geometry to layer. Lower layers draw first;
// within a layer, batches keep their emission order.
func (b *Batch) PushLayer(layer int) {
	b.layerStack = append(b.layerStack, b.current.Layer)
	b.setLayer(layer)
}

func (b *Batch) PopLayer() int {
	was := b.current.Layer
	layer, ok := pop(&b.layerStack)
	if !ok {
		underflow("layer")
		return was
	}
	b.setLayer(layer)
	return was
}

func (b *Batch) PeekLayer() int { return b.current.Layer }

// PushColorMode changes how following textured geometry uses its color.
func (b *Batch) PushColorMode(mode ColorMode) {
	b.colorModeStack = append(b.colorModeStack, b.current.ColorMode)
	b.setColorMode(mode)
}

func (b *Batch) PopColorMode() ColorMode {
	was := b.current.ColorMode
	mode, ok := pop(&b.colorModeStack)
	if !ok {
		underflow("color mode")
		return was
	}
	b.setColorMode(mode)
	return was
}

func (b *Batch) PeekColorMode() ColorMode { return b.current.ColorMode }

func (b *Batch) setColorMode(mode ColorMode) {
	if mode != b.current.ColorMode {
		b.flush()
		b.current.ColorMode = mode
	}
	b.texWeight = mode.weights()
}

// SetTexture binds tex for following textured geometry. Untextured geometry
// ignores the texture, so a batch that has none yet simply adopts tex.
func (b *Batch) SetTexture(tex core.Texture) {
	if tex == b.current.Texture {
		return
	}
	if b.current.Texture != nil {
		b.flush()
	}
	b.current.Texture = tex
	b.current.FlipVertically = tex != nil && tex.IsFramebuffer() && b.device != nil && b.device.Features().OriginBottomLeft
}

// Texture returns the texture bound to the batch in progress.
func (b *Batch) Texture() core.Texture { return b.current.Texture }

func (b *Batch) SetSampler(s core.TextureSampler) {
	if s != b.current.Sampler {
		b.flush()
		b.current.Sampler = s
	}
}

func (b *Batch) Sampler() core.TextureSampler { return b.current.Sampler }
