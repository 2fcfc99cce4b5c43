package glbackend

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/batch2d/engine/core"
)

func blendOp(op core.BlendOp) uint32 {
	switch op {
	case core.BlendOpSubtract:
		return gl.FUNC_SUBTRACT
	case core.BlendOpReverseSubtract:
		return gl.FUNC_REVERSE_SUBTRACT
	case core.BlendOpMin:
		return gl.MIN
	case core.BlendOpMax:
		return gl.MAX
	default:
		return gl.FUNC_ADD
	}
}

func blendFactor(f core.BlendFactor) uint32 {
	switch f {
	case core.BlendZero:
		return gl.ZERO
	case core.BlendOne:
		return gl.ONE
	case core.BlendSrcColor:
		return gl.SRC_COLOR
	case core.BlendOneMinusSrcColor:
		return gl.ONE_MINUS_SRC_COLOR
	case core.BlendDstColor:
		return gl.DST_COLOR
	case core.BlendOneMinusDstColor:
		return gl.ONE_MINUS_DST_COLOR
	case core.BlendSrcAlpha:
		return gl.SRC_ALPHA
	case core.BlendOneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	case core.BlendDstAlpha:
		return gl.DST_ALPHA
	case core.BlendOneMinusDstAlpha:
		return gl.ONE_MINUS_DST_ALPHA
	case core.BlendConstantColor:
		return gl.CONSTANT_COLOR
	case core.BlendOneMinusConstantColor:
		return gl.ONE_MINUS_CONSTANT_COLOR
	case core.BlendSrcAlphaSaturate:
		return gl.SRC_ALPHA_SATURATE
	}
	return gl.ONE
}

func compareFunc(c core.Compare) uint32 {
	switch c {
	case core.CompareNever:
		return gl.NEVER
	case core.CompareLess:
		return gl.LESS
	case core.CompareEqual:
		return gl.EQUAL
	case core.CompareLessOrEqual:
		return gl.LEQUAL
	case core.CompareGreater:
		return gl.GREATER
	case core.CompareNotEqual:
		return gl.NOTEQUAL
	case core.CompareGreaterOrEqual:
		return gl.GEQUAL
	}
	return gl.ALWAYS
}

func textureFilter(f core.TextureFilter) int32 {
	if f == core.FilterNearest {
		return gl.NEAREST
	}
	return gl.LINEAR
}

func textureWrap(w core.TextureWrap) int32 {
	if w == core.WrapRepeat {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}

func vertexType(t core.VertexType) (typ uint32, components int32) {
	if t == core.VertexUByte4 {
		return gl.UNSIGNED_BYTE, 4
	}
	return gl.FLOAT, int32(t.Components())
}

func uniformType(glType uint32) core.UniformType {
	switch glType {
	case gl.FLOAT:
		return core.UniformFloat
	case gl.FLOAT_VEC2:
		return core.UniformFloat2
	case gl.FLOAT_VEC3:
		return core.UniformFloat3
	case gl.FLOAT_VEC4:
		return core.UniformFloat4
	case gl.FLOAT_MAT3x2:
		return core.UniformMat3x2
	case gl.FLOAT_MAT4:
		return core.UniformMat4x4
	case gl.SAMPLER_2D:
		return core.UniformTexture2D
	}
	return core.UniformNone
}
