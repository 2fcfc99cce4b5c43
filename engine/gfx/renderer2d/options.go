package renderer2d

import "github.com/hubastard/batch2d/engine/core"

// Uniform names the default shader binds per draw call.
const (
	TextureUniform = "u_texture"
	SamplerUniform = "u_texture_sampler"
	MatrixUniform  = "u_matrix"
)

type options struct {
	initialQuads   int
	shader         core.ShaderDesc
	sampler        core.TextureSampler
	textureUniform string
	samplerUniform string
	matrixUniform  string
}

func defaultOptions() options {
	return options{
		initialQuads:   1024,
		shader:         DefaultShader,
		sampler:        core.DefaultSampler,
		textureUniform: TextureUniform,
		samplerUniform: SamplerUniform,
		matrixUniform:  MatrixUniform,
	}
}

// Option configures a Batch.
type Option func(*options)

// WithInitialCapacity reserves room for n quads up front. Buffers still grow past it.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.initialQuads = n
		}
	}
}

// WithShader replaces the source of the lazily created default shader.
// It must declare the uniforms named by the Uniform constants.
func WithShader(desc core.ShaderDesc) Option {
	return func(o *options) { o.shader = desc }
}

// WithDefaultSampler sets the sampler batches start with after Clear.
func WithDefaultSampler(s core.TextureSampler) Option {
	return func(o *options) { o.sampler = s }
}

// WithUniformNames overrides the names used to bind texture, sampler and matrix.
func WithUniformNames(texture, sampler, matrix string) Option {
	return func(o *options) {
		o.textureUniform = texture
		o.samplerUniform = sampler
		o.matrixUniform = matrix
	}
}
