package core

type BlendOp int

const (
	BlendOpAdd BlendOp = iota
	BlendOpSubtract
	BlendOpReverseSubtract
	BlendOpMin
	BlendOpMax
)

type BlendFactor int

const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcColor
	BlendOneMinusSrcColor
	BlendDstColor
	BlendOneMinusDstColor
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
	BlendDstAlpha
	BlendOneMinusDstAlpha
	BlendConstantColor
	BlendOneMinusConstantColor
	BlendSrcAlphaSaturate
)

type BlendMask uint8

const (
	MaskNone  BlendMask = 0
	MaskRed   BlendMask = 1 << 0
	MaskGreen BlendMask = 1 << 1
	MaskBlue  BlendMask = 1 << 2
	MaskAlpha BlendMask = 1 << 3
	MaskRGB             = MaskRed | MaskGreen | MaskBlue
	MaskRGBA            = MaskRGB | MaskAlpha
)

// BlendMode is a comparable value; two modes are the same state iff ==.
type BlendMode struct {
	ColorOp  BlendOp
	ColorSrc BlendFactor
	ColorDst BlendFactor
	AlphaOp  BlendOp
	AlphaSrc BlendFactor
	AlphaDst BlendFactor
	Mask     BlendMask
	RGBA     uint32 // constant color, 0xRRGGBBAA
}

// NewBlendMode uses the same op and factors for color and alpha.
func NewBlendMode(op BlendOp, src, dst BlendFactor) BlendMode {
	return BlendMode{
		ColorOp: op, ColorSrc: src, ColorDst: dst,
		AlphaOp: op, AlphaSrc: src, AlphaDst: dst,
		Mask: MaskRGBA, RGBA: 0xffffffff,
	}
}

var (
	// BlendNormal expects premultiplied alpha.
	BlendNormal           = NewBlendMode(BlendOpAdd, BlendOne, BlendOneMinusSrcAlpha)
	BlendNonPremultiplied = NewBlendMode(BlendOpAdd, BlendSrcAlpha, BlendOneMinusSrcAlpha)
	BlendSubtract         = NewBlendMode(BlendOpReverseSubtract, BlendOne, BlendOne)
	BlendAdditive         = NewBlendMode(BlendOpAdd, BlendSrcAlpha, BlendOne)
)
