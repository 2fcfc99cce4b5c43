package renderer2d

import "github.com/hubastard/batch2d/engine/core"

// DefaultShader composes each fragment from the vertex type bytes:
// mult * texture * color + wash * texture.a * color + fill * color.
var DefaultShader = core.ShaderDesc{
	Name:     "renderer2d",
	Vertex:   defaultVertexSource,
	Fragment: defaultFragmentSource,
}

const defaultVertexSource = `#version 330 core
uniform mat4 u_matrix;
layout(location=0) in vec2 a_position;
layout(location=1) in vec2 a_tex;
layout(location=2) in vec4 a_color;
layout(location=3) in vec4 a_type;
out vec2 v_tex;
out vec4 v_col;
out vec4 v_type;
void main() {
    gl_Position = u_matrix * vec4(a_position.xy, 0.0, 1.0);
    v_tex = a_tex;
    v_col = a_color;
    v_type = a_type;
}
`

const defaultFragmentSource = `#version 330 core
uniform sampler2D u_texture;
in vec2 v_tex;
in vec4 v_col;
in vec4 v_type;
out vec4 o_color;
void main() {
    vec4 color = texture(u_texture, v_tex);
    o_color =
        v_type.x * color * v_col +
        v_type.y * color.a * v_col +
        v_type.z * v_col;
}
`
