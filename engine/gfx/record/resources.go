package record

import (
	"slices"

	"github.com/hubastard/batch2d/engine/core"
)

type Texture struct {
	ID          int
	W, H        int
	Fmt         core.TextureFormat
	Framebuffer bool
	Pixels      []byte
	Disposed    bool
}

func (t *Texture) Width() int                 { return t.W }
func (t *Texture) Height() int                { return t.H }
func (t *Texture) Format() core.TextureFormat { return t.Fmt }
func (t *Texture) IsFramebuffer() bool        { return t.Framebuffer }
func (t *Texture) SetData(pixels []byte)      { t.Pixels = slices.Clone(pixels) }
func (t *Texture) Dispose()                   { t.Disposed = true; t.Pixels = nil }

// Mesh keeps a copy of the last upload.
type Mesh struct {
	Indices      []byte
	Vertices     []byte
	IndexFmt     core.IndexFormat
	VertexFmt    core.VertexFormat
	indexCount   int
	vertexCount  int
	IndexUploads int
	Disposed     bool
}

func (m *Mesh) IndexData(format core.IndexFormat, data []byte, count int) {
	m.IndexFmt = format
	m.Indices = append(m.Indices[:0], data...)
	m.indexCount = count
	m.IndexUploads++
}

func (m *Mesh) VertexData(format core.VertexFormat, data []byte, count int) {
	m.VertexFmt = format
	m.Vertices = append(m.Vertices[:0], data...)
	m.vertexCount = count
}

func (m *Mesh) IndexCount() int  { return m.indexCount }
func (m *Mesh) VertexCount() int { return m.vertexCount }
func (m *Mesh) Dispose()         { m.Disposed = true }

type Shader struct {
	Name     string
	uniforms []core.UniformInfo
	Disposed bool
}

func (s *Shader) Uniforms() []core.UniformInfo { return s.uniforms }
func (s *Shader) Dispose()                     { s.Disposed = true }

// Material stores bindings for the uniforms its shader declares.
type Material struct {
	shader   core.Shader
	textures map[string]core.Texture
	samplers map[string]core.TextureSampler
	values   map[string][]float32
}

func NewMaterial(s core.Shader) *Material {
	return &Material{
		shader:   s,
		textures: map[string]core.Texture{},
		samplers: map[string]core.TextureSampler{},
		values:   map[string][]float32{},
	}
}

func (m *Material) Shader() core.Shader { return m.shader }

func (m *Material) uniform(name string) (core.UniformInfo, bool) {
	for _, u := range m.shader.Uniforms() {
		if u.Name == name {
			return u, true
		}
	}
	return core.UniformInfo{}, false
}

func (m *Material) SetTexture(name string, tex core.Texture) {
	if u, ok := m.uniform(name); ok && u.Type == core.UniformTexture2D {
		m.textures[name] = tex
	}
}

func (m *Material) Texture(name string) core.Texture { return m.textures[name] }

// SetSampler accepts any declared name: GLSL folds samplers into sampler2D uniforms.
func (m *Material) SetSampler(name string, s core.TextureSampler) {
	if _, ok := m.uniform(name); ok || m.hasTextureFor(name) {
		m.samplers[name] = s
	}
}

func (m *Material) hasTextureFor(sampler string) bool {
	for _, u := range m.shader.Uniforms() {
		if u.Type == core.UniformTexture2D && u.Name+"_sampler" == sampler {
			return true
		}
	}
	return false
}

func (m *Material) Sampler(name string) core.TextureSampler { return m.samplers[name] }

func (m *Material) SetValue(name string, values []float32) {
	u, ok := m.uniform(name)
	if !ok {
		return
	}
	n := u.Type.Size() * max(u.ArrayLength, 1)
	if n == 0 {
		return
	}
	m.values[name] = append(m.values[name][:0], values[:min(n, len(values))]...)
}

func (m *Material) Value(name string) ([]float32, bool) {
	v, ok := m.values[name]
	return v, ok
}
