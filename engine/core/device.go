package core

// Features describes the capabilities of a Device that the 2D renderer cares about.
type Features struct {
	// OriginBottomLeft is set when framebuffer textures are stored bottom-up
	// (OpenGL), so sampling them needs a vertical flip.
	OriginBottomLeft bool
	MaxTextureSize   int
}

// Device owns GPU resources and executes draw calls.
// Creation failures return a nil resource and an error; they never panic.
type Device interface {
	Features() Features
	// Backbuffer is the default render target (the window surface).
	Backbuffer() Target

	CreateTexture(desc TextureDesc) (Texture, error)
	CreateMesh() (Mesh, error)
	CreateShader(desc ShaderDesc) (Shader, error)
	CreateMaterial(shader Shader) (Material, error)

	// Render executes exactly one indexed draw. Callers go through
	// DrawCall.Perform, which validates the call first.
	Render(call DrawCall)
}

// Target is something that can be drawn into.
type Target interface {
	Width() int
	Height() int
}

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
	TextureR8
)

type TextureDesc struct {
	Width, Height int
	Format        TextureFormat
	Pixels        []byte // optional, tightly packed rows, top-left origin
	// Framebuffer marks textures that are the color attachment of a render target.
	Framebuffer bool
}

type Texture interface {
	Width() int
	Height() int
	Format() TextureFormat
	IsFramebuffer() bool
	SetData(pixels []byte)
	Dispose()
}

type ShaderDesc struct {
	Name     string
	Vertex   string
	Fragment string
}

// UniformType identifies what a shader uniform holds.
type UniformType int

const (
	UniformNone UniformType = iota
	UniformFloat
	UniformFloat2
	UniformFloat3
	UniformFloat4
	UniformMat3x2
	UniformMat4x4
	UniformTexture2D
	UniformSampler2D
)

// Size is the number of floats one element of the uniform takes.
func (t UniformType) Size() int {
	switch t {
	case UniformFloat:
		return 1
	case UniformFloat2:
		return 2
	case UniformFloat3:
		return 3
	case UniformFloat4:
		return 4
	case UniformMat3x2:
		return 6
	case UniformMat4x4:
		return 16
	default:
		return 0
	}
}

type UniformInfo struct {
	Name        string
	Type        UniformType
	ArrayLength int
}

type Shader interface {
	Uniforms() []UniformInfo
	Dispose()
}

// Material binds textures, samplers and uniform values to a shader by name.
// Unknown names are ignored.
type Material interface {
	Shader() Shader
	SetTexture(name string, tex Texture)
	Texture(name string) Texture
	SetSampler(name string, s TextureSampler)
	Sampler(name string) TextureSampler
	SetValue(name string, values []float32)
	Value(name string) ([]float32, bool)
}

// Mesh receives full-replace vertex and index uploads.
type Mesh interface {
	IndexData(format IndexFormat, data []byte, count int)
	VertexData(format VertexFormat, data []byte, count int)
	IndexCount() int
	VertexCount() int
	Dispose()
}
