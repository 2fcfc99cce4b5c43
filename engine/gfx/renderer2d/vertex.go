package renderer2d

import (
	"unsafe"

	"github.com/hubastard/batch2d/engine/colors"
	"github.com/hubastard/batch2d/engine/core"
	"github.com/hubastard/batch2d/engine/geom"
)

// Vertex: pos2 + uv2 + color4 (bytes) + type4 (mult, wash, fill, pad) => 24 bytes.
//
// The type bytes pick how the fragment is composed:
// Mult samples the texture and tints it, Wash tints the texture's alpha,
// Fill ignores the texture and outputs the color.
type Vertex struct {
	Pos  geom.Vec2
	Tex  geom.Vec2
	Col  colors.Color
	Mult uint8
	Wash uint8
	Fill uint8
	Pad  uint8
}

const vertexSize = int(unsafe.Sizeof(Vertex{}))

// VertexFormat describes Vertex to the device.
var VertexFormat = core.NewVertexFormat(
	core.VertexAttrib{Location: 0, Type: core.VertexFloat2},                   // pos
	core.VertexAttrib{Location: 1, Type: core.VertexFloat2},                   // uv
	core.VertexAttrib{Location: 2, Type: core.VertexUByte4, Normalized: true}, // color
	core.VertexAttrib{Location: 3, Type: core.VertexUByte4, Normalized: true}, // mult, wash, fill
)

// weights is the (mult, wash, fill) triple written to every vertex of a primitive.
type weights struct{ mult, wash, fill uint8 }

var flat = weights{0, 0, 255}

func vertexBytes(v []Vertex) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*vertexSize)
}

func indexBytes(i []uint32) []byte {
	if len(i) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&i[0])), len(i)*4)
}

// vertex transforms (x, y) by the current matrix and flips v if the batch samples a bottom-up texture.
func (b *Batch) vertex(x, y, u, v float32, c colors.Color, w weights) Vertex {
	px, py := b.matrix.Apply(x, y)
	if b.current.FlipVertically {
		v = 1 - v
	}
	return Vertex{
		Pos:  geom.Vec2{X: px, Y: py},
		Tex:  geom.Vec2{X: u, Y: v},
		Col:  c,
		Mult: w.mult, Wash: w.wash, Fill: w.fill,
	}
}

func (b *Batch) pushTri(p0, p1, p2, t0, t1, t2 geom.Vec2, c0, c1, c2 colors.Color, w weights) {
	base := uint32(len(b.vertices))
	b.indices = append(b.indices, base, base+1, base+2)
	b.vertices = append(b.vertices,
		b.vertex(p0.X, p0.Y, t0.X, t0.Y, c0, w),
		b.vertex(p1.X, p1.Y, t1.X, t1.Y, c1, w),
		b.vertex(p2.X, p2.Y, t2.X, t2.Y, c2, w),
	)
	b.current.Elements++
}

// pushQuad emits p0..p3 as two triangles (0,1,2) and (0,2,3).
func (b *Batch) pushQuad(p0, p1, p2, p3, t0, t1, t2, t3 geom.Vec2, c0, c1, c2, c3 colors.Color, w weights) {
	base := uint32(len(b.vertices))
	b.indices = append(b.indices,
		base+0, base+1, base+2,
		base+0, base+2, base+3,
	)
	b.vertices = append(b.vertices,
		b.vertex(p0.X, p0.Y, t0.X, t0.Y, c0, w),
		b.vertex(p1.X, p1.Y, t1.X, t1.Y, c1, w),
		b.vertex(p2.X, p2.Y, t2.X, t2.Y, c2, w),
		b.vertex(p3.X, p3.Y, t3.X, t3.Y, c3, w),
	)
	b.current.Elements += 2
}

// flatQuad is the common untextured, single color case.
func (b *Batch) flatQuad(p0, p1, p2, p3 geom.Vec2, c colors.Color) {
	var z geom.Vec2
	b.pushQuad(p0, p1, p2, p3, z, z, z, z, c, c, c, c, flat)
}

func (b *Batch) flatTri(p0, p1, p2 geom.Vec2, c colors.Color) {
	var z geom.Vec2
	b.pushTri(p0, p1, p2, z, z, z, c, c, c, flat)
}
