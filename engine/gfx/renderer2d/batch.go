package renderer2d

import (
	"github.com/hubastard/batch2d/engine/core"
	"github.com/hubastard/batch2d/engine/geom"
)

// ColorMode selects how textured geometry uses its vertex color.
type ColorMode int

const (
	// ColorNormal multiplies the texture by the color.
	ColorNormal ColorMode = iota
	// ColorWash keeps only the texture's alpha and paints it with the color.
	ColorWash
)

func (m ColorMode) weights() weights {
	if m == ColorWash {
		return weights{0, 255, 0}
	}
	return weights{255, 0, 0}
}

// DrawBatch is a contiguous run of triangles in the index buffer drawn with
// one device state. Offset and Elements count triangles, not indices.
type DrawBatch struct {
	Layer          int
	Offset         int
	Elements       int
	Material       core.Material
	Blend          core.BlendMode
	Texture        core.Texture
	Sampler        core.TextureSampler
	Scissor        geom.Rect // negative W/H means no scissor
	FlipVertically bool
	ColorMode      ColorMode
}

// Statistics captures the counts generated by the last Render.
type Statistics struct {
	Batches   int
	DrawCalls int
	Triangles int
	Vertices  int
	Skipped   int
}

// TotalIndexCount reports indices submitted by the last Render.
func (s Statistics) TotalIndexCount() int { return s.Triangles * 3 }

// Batch accumulates 2D geometry into one vertex/index buffer and splits it
// into draw batches whenever the device state changes. It is not safe for
// concurrent use; every Batch is independent.
type Batch struct {
	device core.Device
	opts   options

	vertices []Vertex
	indices  []uint32

	matrix    geom.Mat3x2
	texWeight weights

	matrixStack    []geom.Mat3x2
	scissorStack   []geom.Rect
	blendStack     []core.BlendMode
	materialStack  []core.Material
	layerStack     []int
	colorModeStack []ColorMode

	// batches is sorted by layer. insert is where the open batch belongs.
	batches []DrawBatch
	current DrawBatch
	insert  int

	defaultShader   core.Shader
	defaultMaterial core.Material
	mesh            core.Mesh
	createFailed    bool

	stats Statistics
}

// New creates an empty batch drawing to d. GPU resources are created on the first Render.
func New(d core.Device, opts ...Option) *Batch {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	b := &Batch{
		device:   d,
		opts:     o,
		vertices: make([]Vertex, 0, o.initialQuads*4),
		indices:  make([]uint32, 0, o.initialQuads*6),
	}
	b.Clear()
	return b
}

// Clear drops all geometry and resets every state stack. Buffer capacity is kept.
func (b *Batch) Clear() {
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]

	clear(b.batches)
	b.batches = b.batches[:0]
	b.insert = 0

	b.matrix = geom.Identity
	b.texWeight = ColorNormal.weights()
	b.matrixStack = b.matrixStack[:0]
	b.scissorStack = b.scissorStack[:0]
	b.blendStack = b.blendStack[:0]
	clear(b.materialStack)
	b.materialStack = b.materialStack[:0]
	b.layerStack = b.layerStack[:0]
	b.colorModeStack = b.colorModeStack[:0]

	b.current = DrawBatch{
		Blend:   core.BlendNormal,
		Sampler: b.opts.sampler,
		Scissor: geom.NoRect,
	}
}

// Dispose clears the batch, releases its default GPU resources and its buffers.
// The batch can still be used afterwards; resources are recreated on demand.
func (b *Batch) Dispose() {
	b.Clear()
	if b.mesh != nil {
		b.mesh.Dispose()
		b.mesh = nil
	}
	if b.defaultShader != nil {
		b.defaultShader.Dispose()
		b.defaultShader = nil
	}
	b.defaultMaterial = nil
	b.createFailed = false

	b.vertices = nil
	b.indices = nil
	b.batches = nil
	b.matrixStack = nil
	b.scissorStack = nil
	b.blendStack = nil
	b.materialStack = nil
	b.layerStack = nil
	b.colorModeStack = nil
}

// Stats returns the statistics of the last Render.
func (b *Batch) Stats() Statistics { return b.stats }

// Vertices exposes the accumulated vertices. Valid until the next emission or Clear.
func (b *Batch) Vertices() []Vertex { return b.vertices }

// Indices exposes the accumulated indices. Valid until the next emission or Clear.
func (b *Batch) Indices() []uint32 { return b.indices }

// TriangleCount is the number of triangles emitted since the last Clear.
func (b *Batch) TriangleCount() int { return len(b.indices) / 3 }

// Empty reports whether nothing has been emitted since the last Clear.
func (b *Batch) Empty() bool { return len(b.indices) == 0 }

// Current returns the batch in progress.
func (b *Batch) Current() DrawBatch { return b.current }

// DrawBatches returns the batches in the order Render submits them, with the
// batch in progress spliced at its insertion point when it holds geometry.
func (b *Batch) DrawBatches() []DrawBatch {
	out := make([]DrawBatch, 0, len(b.batches)+1)
	b.each(func(db *DrawBatch) { out = append(out, *db) })
	return out
}

// each visits batches in submission order.
func (b *Batch) each(f func(*DrawBatch)) {
	for i := range b.batches {
		if b.insert == i && b.current.Elements > 0 {
			f(&b.current)
		}
		f(&b.batches[i])
	}
	if b.insert == len(b.batches) && b.current.Elements > 0 {
		f(&b.current)
	}
}
