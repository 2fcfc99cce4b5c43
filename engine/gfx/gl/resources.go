package glbackend

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/batch2d/engine/core"
)

type texture struct {
	id     uint32
	fbo    uint32
	w, h   int
	format core.TextureFormat
}

func (d *Device) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("gl: invalid texture size %dx%d", desc.Width, desc.Height)
	}
	if desc.Width > d.feats.MaxTextureSize || desc.Height > d.feats.MaxTextureSize {
		return nil, fmt.Errorf("gl: texture %dx%d exceeds %d", desc.Width, desc.Height, d.feats.MaxTextureSize)
	}

	t := &texture{w: desc.Width, h: desc.Height, format: desc.Format}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	t.upload(desc.Pixels)

	if desc.Framebuffer {
		gl.GenFramebuffers(1, &t.fbo)
		gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.id, 0)
		status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		if status != gl.FRAMEBUFFER_COMPLETE {
			t.Dispose()
			return nil, fmt.Errorf("gl: framebuffer incomplete (0x%x)", status)
		}
	}
	return t, nil
}

func (t *texture) formats() (internal int32, format uint32) {
	if t.format == core.TextureR8 {
		return gl.R8, gl.RED
	}
	return gl.RGBA8, gl.RGBA
}

// upload replaces the whole image. nil pixels allocate storage only.
func (t *texture) upload(pixels []byte) {
	internal, format := t.formats()
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(t.w), int32(t.h), 0, format, gl.UNSIGNED_BYTE, bytesPtr(pixels))
}

func (t *texture) Width() int                 { return t.w }
func (t *texture) Height() int                { return t.h }
func (t *texture) Format() core.TextureFormat { return t.format }
func (t *texture) IsFramebuffer() bool        { return t.fbo != 0 }
func (t *texture) SetData(pixels []byte)      { t.upload(pixels) }

func (t *texture) Dispose() {
	if t.fbo != 0 {
		gl.DeleteFramebuffers(1, &t.fbo)
		t.fbo = 0
	}
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

func (t *texture) bind(unit int, s core.TextureSampler) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	if t == nil {
		gl.BindTexture(gl.TEXTURE_2D, 0)
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, textureFilter(s.Filter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, textureFilter(s.Filter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, textureWrap(s.WrapX))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, textureWrap(s.WrapY))
}

// mesh owns a VAO with one vertex and one index buffer. Uploads replace the contents.
type mesh struct {
	vao, vbo, ebo uint32
	indexFormat   core.IndexFormat
	indexCount    int
	vertexCount   int
}

func (d *Device) CreateMesh() (core.Mesh, error) {
	m := &mesh{}
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)
	if m.vao == 0 || m.vbo == 0 || m.ebo == 0 {
		m.Dispose()
		return nil, fmt.Errorf("gl: could not create mesh buffers")
	}
	return m, nil
}

func (m *mesh) IndexData(format core.IndexFormat, data []byte, count int) {
	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data), bytesPtr(data), gl.DYNAMIC_DRAW)
	gl.BindVertexArray(0)
	m.indexFormat = format
	m.indexCount = count
}

func (m *mesh) VertexData(format core.VertexFormat, data []byte, count int) {
	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data), bytesPtr(data), gl.DYNAMIC_DRAW)
	for i, a := range format.Attributes {
		typ, n := vertexType(a.Type)
		loc := uint32(a.Location)
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointerWithOffset(loc, n, typ, a.Normalized, int32(format.Stride), uintptr(format.Offset(i)))
	}
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	m.vertexCount = count
}

func (m *mesh) IndexCount() int  { return m.indexCount }
func (m *mesh) VertexCount() int { return m.vertexCount }

func (m *mesh) Dispose() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}

// material binds by uniform name. Samplers are named after their texture
// uniform with a "_sampler" suffix.
type material struct {
	shader   *shader
	textures map[string]*texture
	samplers map[string]core.TextureSampler
	values   map[string][]float32
}

func (d *Device) CreateMaterial(s core.Shader) (core.Material, error) {
	sh, ok := s.(*shader)
	if !ok || sh == nil || sh.program == 0 {
		return nil, fmt.Errorf("gl: material needs a live gl shader, got %T", s)
	}
	return &material{
		shader:   sh,
		textures: map[string]*texture{},
		samplers: map[string]core.TextureSampler{},
		values:   map[string][]float32{},
	}, nil
}

func (m *material) Shader() core.Shader { return m.shader }

func (m *material) SetTexture(name string, tex core.Texture) {
	if tex == nil {
		delete(m.textures, name)
		return
	}
	if t, ok := tex.(*texture); ok {
		m.textures[name] = t
	}
}

func (m *material) Texture(name string) core.Texture {
	if t, ok := m.textures[name]; ok {
		return t
	}
	return nil
}

func (m *material) SetSampler(name string, s core.TextureSampler) { m.samplers[name] = s }
func (m *material) Sampler(name string) core.TextureSampler       { return m.samplers[name] }

func (m *material) SetValue(name string, values []float32) {
	m.values[name] = append(m.values[name][:0], values...)
}

func (m *material) Value(name string) ([]float32, bool) {
	v, ok := m.values[name]
	return v, ok
}

// apply uploads every binding to the program in use.
func (m *material) apply() {
	unit := 0
	for _, u := range m.shader.uniforms {
		if u.Type == core.UniformTexture2D {
			s, ok := m.samplers[u.Name+"_sampler"]
			if !ok {
				s = core.DefaultSampler
			}
			m.textures[u.Name].bind(unit, s)
			gl.Uniform1i(u.location, int32(unit))
			unit++
			continue
		}

		v, ok := m.values[u.Name]
		if !ok {
			continue
		}
		size := u.Type.Size()
		if size == 0 {
			continue
		}
		n := int32(min(len(v)/size, max(u.ArrayLength, 1)))
		if n == 0 {
			continue
		}
		switch u.Type {
		case core.UniformFloat:
			gl.Uniform1fv(u.location, n, &v[0])
		case core.UniformFloat2:
			gl.Uniform2fv(u.location, n, &v[0])
		case core.UniformFloat3:
			gl.Uniform3fv(u.location, n, &v[0])
		case core.UniformFloat4:
			gl.Uniform4fv(u.location, n, &v[0])
		case core.UniformMat3x2:
			gl.UniformMatrix3x2fv(u.location, n, false, &v[0])
		case core.UniformMat4x4:
			gl.UniformMatrix4fv(u.location, n, false, &v[0])
		}
	}
}

// bytesPtr is gl.Ptr that tolerates empty slices.
func bytesPtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return gl.Ptr(b)
}
