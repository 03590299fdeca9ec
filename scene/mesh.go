package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Vertex is the interleaved layout shared by every model mesh:
// position, normal, texture coordinate.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// Mesh holds CPU-side vertex/index data.
// GPU upload is managed by the renderer backend.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32

	// Material holds surface shading properties. If nil, DefaultMaterial() is used.
	Material *Material

	// GPUData is set by the renderer backend (e.g. *opengl.GPUMesh).
	// Do not access directly; use the renderer's API.
	GPUData interface{}
}

// NewMesh builds a Mesh from vertex and index data.
func NewMesh(name string, vertices []Vertex, indices []uint32) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
	}
}

// checkIndices reports the first index that does not address a vertex.
func checkIndices(indices []uint32, vertexCount int) error {
	for i, idx := range indices {
		if int(idx) >= vertexCount {
			return errors.Errorf("index %d at %d out of range for %d vertices", idx, i, vertexCount)
		}
	}
	return nil
}

// generateNormals computes area-weighted normals and writes them to the vertex slice.
func generateNormals(vertices []Vertex, indices []uint32) {
	accum := make([]mgl32.Vec3, len(vertices))

	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		v0 := vertices[i0].Position
		v1 := vertices[i1].Position
		v2 := vertices[i2].Position
		n := v1.Sub(v0).Cross(v2.Sub(v0))
		accum[i0] = accum[i0].Add(n)
		accum[i1] = accum[i1].Add(n)
		accum[i2] = accum[i2].Add(n)
	}
	for i := range vertices {
		if accum[i].Len() > 0 {
			vertices[i].Normal = accum[i].Normalize()
		}
	}
}
