package core

type TextureFilter int

const (
	FilterNone TextureFilter = iota
	FilterLinear
	FilterNearest
)

type TextureWrap int

const (
	WrapNone TextureWrap = iota
	WrapClamp
	WrapRepeat
)

// TextureSampler is comparable; equal samplers never split a batch.
type TextureSampler struct {
	Filter TextureFilter
	WrapX  TextureWrap
	WrapY  TextureWrap
}

func NewSampler(filter TextureFilter, wrapX, wrapY TextureWrap) TextureSampler {
	return TextureSampler{Filter: filter, WrapX: wrapX, WrapY: wrapY}
}

var DefaultSampler = TextureSampler{Filter: FilterLinear, WrapX: WrapClamp, WrapY: WrapClamp}
