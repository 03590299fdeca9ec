package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"beach-renderer/scene"
)

// Skybox renders a cubemap on an inside-out unit cube.
// The vertex shader writes gl_Position.xyww so every fragment lands at NDC
// depth 1.0, behind all scene geometry.
type Skybox struct {
	cube    *VertexArray
	cubemap uint32
}

// 36 positions (xyz) for a cube of half-extent 1.
var skyboxVerts = []float32{
	-1, 1, -1, -1, -1, -1, 1, -1, -1,
	1, -1, -1, 1, 1, -1, -1, 1, -1,

	-1, -1, 1, -1, -1, -1, -1, 1, -1,
	-1, 1, -1, -1, 1, 1, -1, -1, 1,

	1, -1, -1, 1, -1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, -1, 1, -1, -1,

	-1, -1, 1, -1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, -1, 1, -1, -1, 1,

	-1, 1, -1, 1, 1, -1, 1, 1, 1,
	1, 1, 1, -1, 1, 1, -1, 1, -1,

	-1, -1, -1, -1, -1, 1, 1, -1, -1,
	1, -1, -1, -1, -1, 1, 1, -1, 1,
}

// NewSkybox uploads the cube geometry and the six cubemap faces.
func NewSkybox(faces [6]*scene.Texture) (*Skybox, error) {
	id, err := UploadCubemap(faces)
	if err != nil {
		return nil, fmt.Errorf("skybox: %w", err)
	}
	return &Skybox{
		cube:    NewVertexArray(skyboxVerts, []int32{3}, nil),
		cubemap: id,
	}, nil
}

// Draw renders the sky with prog, which must sample the cubemap from unit 0
// as "skybox". view must already have its translation stripped.
func (sb *Skybox) Draw(prog *Program, view, projection mgl32.Mat4) {
	// Depth LEQUAL so depth=1.0 fragments pass against the cleared depth value.
	gl.DepthFunc(gl.LEQUAL)

	prog.Use()
	prog.SetMat4("view", view)
	prog.SetMat4("projection", projection)
	prog.SetInt("skybox", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, sb.cubemap)
	sb.cube.Draw()
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	gl.DepthFunc(gl.LESS)
}

// Destroy frees all GPU resources owned by this skybox.
func (sb *Skybox) Destroy() {
	sb.cube.Destroy()
	gl.DeleteTextures(1, &sb.cubemap)
}
