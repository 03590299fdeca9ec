package renderer

import (
	"path"

	"github.com/db47h/ofs"
	"github.com/pkg/errors"

	"beach-renderer/internal/opengl"
	"beach-renderer/scene"
)

// Shader pair names under shaders/. Each has a .vs and a .fs file.
const (
	ModelShader       = "2.model_lighting"
	SkyboxShader      = "6.1.skybox"
	TransparentShader = "transparentobj"
	LightCubeShader   = "light_cube"
	FloorShader       = "advanced_lighting"
)

// ShaderDir is the asset directory holding the shader sources.
const ShaderDir = "shaders"

// ShaderPaths returns the vertex and fragment shader asset names of a pair.
func ShaderPaths(name string) (vert, frag string) {
	base := path.Join(ShaderDir, name)
	return base + ".vs", base + ".fs"
}

// LoadProgram reads a shader pair through fsys and links it.
func LoadProgram(fsys ofs.FileSystem, name string) (*opengl.Program, error) {
	vp, fp := ShaderPaths(name)
	vert, err := scene.ReadAsset(fsys, vp)
	if err != nil {
		return nil, errors.Wrap(err, "vertex shader")
	}
	frag, err := scene.ReadAsset(fsys, fp)
	if err != nil {
		return nil, errors.Wrap(err, "fragment shader")
	}
	return opengl.NewProgram(name, string(vert), string(frag))
}
