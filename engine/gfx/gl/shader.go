package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/batch2d/engine/core"
)

type uniform struct {
	core.UniformInfo
	location int32
}

type shader struct {
	program  uint32
	uniforms []uniform
	infos    []core.UniformInfo
}

func (s *shader) Uniforms() []core.UniformInfo { return s.infos }

func (s *shader) Dispose() {
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
}

func (d *Device) CreateShader(desc core.ShaderDesc) (core.Shader, error) {
	prog, err := makeProgram(desc.Vertex, desc.Fragment)
	if err != nil {
		return nil, fmt.Errorf("shader %s: %w", desc.Name, err)
	}
	s := &shader{program: prog}
	s.reflect()
	return s, nil
}

// reflect lists the active uniforms. Array names come back as "name[0]".
func (s *shader) reflect() {
	var count, maxLen int32
	gl.GetProgramiv(s.program, gl.ACTIVE_UNIFORMS, &count)
	gl.GetProgramiv(s.program, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)
	buf := make([]byte, maxLen+1)

	for i := int32(0); i < count; i++ {
		var length, size int32
		var typ uint32
		gl.GetActiveUniform(s.program, uint32(i), maxLen, &length, &size, &typ, &buf[0])
		name := string(buf[:length])
		name, _, _ = strings.Cut(name, "[")

		u := uniform{
			UniformInfo: core.UniformInfo{Name: name, Type: uniformType(typ), ArrayLength: int(size)},
			location:    gl.GetUniformLocation(s.program, gl.Str(name+"\x00")),
		}
		s.uniforms = append(s.uniforms, u)
		s.infos = append(s.infos, u.UniformInfo)
	}
}

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", strings.TrimRight(log, "\x00"))
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}
