package scene

import (
	"path"
	"strings"

	"github.com/db47h/ofs"
	"github.com/pkg/errors"
)

// ErrUnsupportedModel is returned by LoadModel for unknown file extensions.
var ErrUnsupportedModel = errors.New("unsupported model format")

// Model is a named list of meshes loaded from one file.
type Model struct {
	Name   string
	Meshes []*Mesh
	// Warnings lists non-fatal problems met while loading, such as missing
	// material libraries or textures.
	Warnings []error
}

// LoadModel loads a model through fsys, choosing the loader by extension.
func LoadModel(fsys ofs.FileSystem, name string) (*Model, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".obj":
		return LoadOBJ(fsys, name)
	case ".glb":
		return LoadGLTF(fsys, name)
	}
	return nil, errors.Wrapf(ErrUnsupportedModel, "%s", name)
}

// Textures returns every texture referenced by the model's materials.
func (m *Model) Textures() []*Texture {
	seen := map[*Texture]bool{}
	var out []*Texture
	for _, mesh := range m.Meshes {
		if mesh.Material == nil {
			continue
		}
		for _, t := range mesh.Material.Textures() {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out
}
