package core

type IndexFormat int

const (
	IndexUInt16 IndexFormat = iota
	IndexUInt32
)

func (f IndexFormat) Size() int {
	if f == IndexUInt16 {
		return 2
	}
	return 4
}

type VertexType int

const (
	VertexFloat VertexType = iota
	VertexFloat2
	VertexFloat3
	VertexFloat4
	VertexUByte4
)

// Size in bytes.
func (t VertexType) Size() int {
	switch t {
	case VertexFloat:
		return 4
	case VertexFloat2:
		return 8
	case VertexFloat3:
		return 12
	case VertexFloat4:
		return 16
	case VertexUByte4:
		return 4
	}
	return 0
}

// Components is the number of scalars in one attribute.
func (t VertexType) Components() int {
	switch t {
	case VertexFloat:
		return 1
	case VertexFloat2:
		return 2
	case VertexFloat3:
		return 3
	case VertexFloat4, VertexUByte4:
		return 4
	}
	return 0
}

type VertexAttrib struct {
	Location   int
	Type       VertexType
	Normalized bool
}

type VertexFormat struct {
	Attributes []VertexAttrib
	Stride     int
}

// NewVertexFormat computes the stride from the attribute list.
func NewVertexFormat(attrs ...VertexAttrib) VertexFormat {
	stride := 0
	for _, a := range attrs {
		stride += a.Type.Size()
	}
	return VertexFormat{Attributes: attrs, Stride: stride}
}

// Offset returns the byte offset of attribute i within a vertex.
func (f VertexFormat) Offset(i int) int {
	off := 0
	for j := 0; j < i && j < len(f.Attributes); j++ {
		off += f.Attributes[j].Type.Size()
	}
	return off
}
