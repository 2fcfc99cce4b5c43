// Package record implements core.Device without a GPU. Every resource keeps
// its data in memory and every draw call is recorded, which makes it the
// device of choice for tests and headless runs.
package record

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/hubastard/batch2d/engine/core"
)

var (
	ErrShaderFailed   = errors.New("record: shader creation disabled")
	ErrMaterialFailed = errors.New("record: material creation disabled")
	ErrMeshFailed     = errors.New("record: mesh creation disabled")
)

// Call is a snapshot of one draw call, taken when the device ran it.
// Material bindings are copied since materials are mutated between calls.
type Call struct {
	core.DrawCall
	Texture core.Texture
	Sampler core.TextureSampler
	Matrix  []float32
}

// Device records draw calls. The Fail* switches simulate resource creation failures.
type Device struct {
	Feats core.Features
	Calls []Call

	FailShader   bool
	FailMaterial bool
	FailMesh     bool

	TextureUniform string
	SamplerUniform string
	MatrixUniform  string

	backbuffer *Target
	created    struct{ textures, meshes, shaders, materials int }
}

// New returns a device with a backbuffer of the given size.
func New(width, height int) *Device {
	return &Device{
		Feats:          core.Features{MaxTextureSize: 8192},
		backbuffer:     &Target{W: width, H: height},
		TextureUniform: "u_texture",
		SamplerUniform: "u_texture_sampler",
		MatrixUniform:  "u_matrix",
	}
}

func (d *Device) Features() core.Features { return d.Feats }
func (d *Device) Backbuffer() core.Target { return d.backbuffer }

// ResizeBackbuffer changes the backbuffer size.
func (d *Device) ResizeBackbuffer(w, h int) { d.backbuffer.W, d.backbuffer.H = w, h }

func (d *Device) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("record: invalid texture size %dx%d", desc.Width, desc.Height)
	}
	if limit := d.Feats.MaxTextureSize; limit > 0 && (desc.Width > limit || desc.Height > limit) {
		return nil, fmt.Errorf("record: texture %dx%d exceeds %d", desc.Width, desc.Height, limit)
	}
	d.created.textures++
	t := &Texture{ID: d.created.textures, W: desc.Width, H: desc.Height, Fmt: desc.Format, Framebuffer: desc.Framebuffer}
	if desc.Pixels != nil {
		t.SetData(desc.Pixels)
	}
	return t, nil
}

func (d *Device) CreateMesh() (core.Mesh, error) {
	if d.FailMesh {
		return nil, ErrMeshFailed
	}
	d.created.meshes++
	return &Mesh{}, nil
}

func (d *Device) CreateShader(desc core.ShaderDesc) (core.Shader, error) {
	if d.FailShader {
		return nil, ErrShaderFailed
	}
	d.created.shaders++
	return &Shader{Name: desc.Name, uniforms: parseUniforms(desc.Vertex, desc.Fragment)}, nil
}

func (d *Device) CreateMaterial(s core.Shader) (core.Material, error) {
	if d.FailMaterial {
		return nil, ErrMaterialFailed
	}
	if s == nil {
		return nil, errors.New("record: material needs a shader")
	}
	d.created.materials++
	return NewMaterial(s), nil
}

func (d *Device) Render(call core.DrawCall) {
	c := Call{DrawCall: call}
	if m := call.Material; m != nil {
		c.Texture = m.Texture(d.TextureUniform)
		c.Sampler = m.Sampler(d.SamplerUniform)
		if v, ok := m.Value(d.MatrixUniform); ok {
			c.Matrix = slices.Clone(v)
		}
	}
	d.Calls = append(d.Calls, c)
}

// Reset forgets the recorded calls.
func (d *Device) Reset() { d.Calls = d.Calls[:0] }

// Created reports how many resources of each kind were created.
func (d *Device) Created() (textures, meshes, shaders, materials int) {
	return d.created.textures, d.created.meshes, d.created.shaders, d.created.materials
}

type Target struct{ W, H int }

func (t *Target) Width() int  { return t.W }
func (t *Target) Height() int { return t.H }

// parseUniforms picks up `uniform <type> <name>;` declarations from GLSL sources.
func parseUniforms(sources ...string) []core.UniformInfo {
	var out []core.UniformInfo
	seen := map[string]bool{}
	for _, src := range sources {
		for _, line := range strings.Split(src, "\n") {
			fields := strings.Fields(strings.TrimSuffix(strings.TrimSpace(line), ";"))
			if len(fields) < 3 || fields[0] != "uniform" {
				continue
			}
			name := fields[len(fields)-1]
			length := 1
			if i := strings.IndexByte(name, '['); i >= 0 {
				fmt.Sscanf(name[i:], "[%d]", &length)
				name = name[:i]
			}
			if seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, core.UniformInfo{Name: name, Type: uniformType(fields[len(fields)-2]), ArrayLength: length})
		}
	}
	return out
}

func uniformType(glsl string) core.UniformType {
	switch glsl {
	case "float":
		return core.UniformFloat
	case "vec2":
		return core.UniformFloat2
	case "vec3":
		return core.UniformFloat3
	case "vec4":
		return core.UniformFloat4
	case "mat4":
		return core.UniformMat4x4
	case "sampler2D":
		return core.UniformTexture2D
	}
	return core.UniformNone
}
