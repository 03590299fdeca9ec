package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

func TestCheckIndices(t *testing.T) {
	if err := checkIndices([]uint32{0, 1, 2}, 3); err != nil {
		t.Errorf("in range: expected nil, got %v", err)
	}
	if err := checkIndices(nil, 0); err != nil {
		t.Errorf("empty: expected nil, got %v", err)
	}
	if err := checkIndices([]uint32{0, 1, 3}, 3); err == nil {
		t.Errorf("index 3 of 3 vertices: expected error, got nil")
	}
}

func TestGenerateNormalsTriangle(t *testing.T) {
	verts := []Vertex{
		{Position: mgl32.Vec3{0, 0, 0}},
		{Position: mgl32.Vec3{1, 0, 0}},
		{Position: mgl32.Vec3{0, 1, 0}},
	}
	generateNormals(verts, []uint32{0, 1, 2})
	for i, v := range verts {
		if !vecNear(v.Normal, mgl32.Vec3{0, 0, 1}, 1e-6) {
			t.Errorf("vertex %d: expected normal (0,0,1), got %v", i, v.Normal)
		}
	}
}

func TestGLTFPrimitiveRejectsOutOfRangeIndices(t *testing.T) {
	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	idx := modeler.WriteIndices(doc, []uint16{0, 1, 7})
	prim := &gltf.Primitive{
		Attributes: gltf.PrimitiveAttributes{gltf.POSITION: pos},
		Indices:    gltf.Index(idx),
	}
	// No NORMAL attribute, so normals would be generated from these indices.
	if _, err := loadGLTFPrimitive(doc, "bad", 0, prim); err == nil {
		t.Errorf("index 7 of 3 vertices: expected error, got nil")
	}

	good := modeler.WriteIndices(doc, []uint16{0, 1, 2})
	prim.Indices = gltf.Index(good)
	m, err := loadGLTFPrimitive(doc, "good", 0, prim)
	if err != nil {
		t.Fatalf("valid primitive: unexpected error %v", err)
	}
	if len(m.Vertices) != 3 || len(m.Indices) != 3 {
		t.Errorf("valid primitive: expected 3 vertices and 3 indices, got %d and %d", len(m.Vertices), len(m.Indices))
	}
}
