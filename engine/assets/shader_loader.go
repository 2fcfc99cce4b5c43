package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hubastard/batch2d/engine/core"
)

// LoadShader reads a vertex and a fragment GLSL file into a shader description
// named after the vertex file.
func LoadShader(vertPath, fragPath string) (core.ShaderDesc, error) {
	vs, err := os.ReadFile(vertPath)
	if err != nil {
		return core.ShaderDesc{}, fmt.Errorf("load shader %q: %w", vertPath, err)
	}
	fs, err := os.ReadFile(fragPath)
	if err != nil {
		return core.ShaderDesc{}, fmt.Errorf("load shader %q: %w", fragPath, err)
	}
	name := strings.TrimSuffix(filepath.Base(vertPath), filepath.Ext(vertPath))
	return core.ShaderDesc{Name: name, Vertex: string(vs), Fragment: string(fs)}, nil
}
