package scene

import "github.com/go-gl/mathgl/mgl32"

// Material describes the Phong surface of a model mesh. The lighting shader
// samples texture_diffuse1 and texture_specular1; when a texture is missing
// the renderer binds a 1x1 texture of the matching color instead.
type Material struct {
	Name      string
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32

	// Upload via opengl.UploadTexture before rendering.
	DiffuseTexture  *Texture
	SpecularTexture *Texture
}

// DefaultMaterial returns a plain white matte Phong material.
func DefaultMaterial() *Material {
	return &Material{
		Name:      "Default",
		Diffuse:   mgl32.Vec3{1, 1, 1},
		Specular:  mgl32.Vec3{0.3, 0.3, 0.3},
		Shininess: MaterialShininess,
	}
}

// Textures returns the non-nil textures of the material.
func (m *Material) Textures() []*Texture {
	var out []*Texture
	if m.DiffuseTexture != nil {
		out = append(out, m.DiffuseTexture)
	}
	if m.SpecularTexture != nil {
		out = append(out, m.SpecularTexture)
	}
	return out
}

// colorByte maps a [0,1] color component to 0–255.
func colorByte(c float32) uint8 {
	return uint8(clamp(c, 0, 1)*255 + 0.5)
}

// SolidDiffuse returns a 1x1 texture filled with the diffuse color.
func (m *Material) SolidDiffuse() *Texture {
	return NewSolidTexture(m.Name+"_kd", colorByte(m.Diffuse[0]), colorByte(m.Diffuse[1]), colorByte(m.Diffuse[2]), 255)
}

// SolidSpecular returns a 1x1 texture filled with the specular color.
func (m *Material) SolidSpecular() *Texture {
	return NewSolidTexture(m.Name+"_ks", colorByte(m.Specular[0]), colorByte(m.Specular[1]), colorByte(m.Specular[2]), 255)
}
