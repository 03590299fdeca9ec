package opengl

import (
	"fmt"

	"beach-renderer/scene"
)

// GPUModel is a scene.Model whose meshes and textures live on the GPU.
// Materials without a diffuse or specular map get 1x1 textures of their
// Kd / Ks color so the lighting shader always has both samplers bound.
type GPUModel struct {
	Model    *scene.Model
	fallback map[*scene.Material][2]*scene.Texture
}

// NewGPUModel uploads every mesh and texture of m. A texture that fails to
// upload is replaced by its material's solid color; those failures are
// returned alongside the usable model.
func NewGPUModel(m *scene.Model) (*GPUModel, []error) {
	g := &GPUModel{Model: m, fallback: map[*scene.Material][2]*scene.Texture{}}
	var errs []error

	for _, mesh := range m.Meshes {
		if mesh.Material == nil {
			mesh.Material = scene.DefaultMaterial()
		}
		mat := mesh.Material
		if _, done := g.fallback[mat]; !done {
			pair := [2]*scene.Texture{mat.SolidDiffuse(), mat.SolidSpecular()}
			for _, t := range pair {
				if err := UploadTexture(t); err != nil {
					errs = append(errs, err)
				}
			}
			for _, t := range mat.Textures() {
				if err := UploadTexture(t); err != nil {
					errs = append(errs, fmt.Errorf("model %s: %w", m.Name, err))
				}
			}
			g.fallback[mat] = pair
		}
		UploadMesh(mesh)
	}
	return g, errs
}

func pick(tex, fallback *scene.Texture) *scene.Texture {
	if tex != nil && tex.GLID != 0 {
		return tex
	}
	return fallback
}

// Draw renders every mesh with prog, which must already be in use with its
// transform and light uniforms set.
func (g *GPUModel) Draw(prog *Program) {
	prog.SetInt("material.texture_diffuse1", 0)
	prog.SetInt("material.texture_specular1", 1)
	for _, mesh := range g.Model.Meshes {
		mat := mesh.Material
		fb := g.fallback[mat]
		BindTexture(0, pick(mat.DiffuseTexture, fb[0]))
		BindTexture(1, pick(mat.SpecularTexture, fb[1]))
		DrawMesh(mesh)
	}
	BindTexture(1, nil)
	BindTexture(0, nil)
}

// Destroy frees the GPU buffers and textures of the model.
func (g *GPUModel) Destroy() {
	for _, mesh := range g.Model.Meshes {
		ReleaseMesh(mesh)
	}
	for _, t := range g.Model.Textures() {
		DeleteTexture(t)
	}
	for _, pair := range g.fallback {
		DeleteTexture(pair[0])
		DeleteTexture(pair[1])
	}
}
