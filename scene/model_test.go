package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

const quadOBJ = `# towel-sized quad
mtllib quad.mtl
o Quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
usemtl sand
f 1/1 2/2 3/3 4/4
`

const quadMTL = `newmtl sand
Kd 0.5 0.25 1
Ks 0 0 0
Ns 64
map_Kd -bm 1 tex\sand.png
map_Ks missing.png
`

func writeAsset(t *testing.T, root, name, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadModel(t *testing.T) {
	Convey("Given an asset root with an OBJ model", t, func() {
		root := t.TempDir()
		writeAsset(t, root, "objects/quad.obj", quadOBJ)
		writeAsset(t, root, "objects/quad.mtl", quadMTL)
		writePNG(t, filepath.Join(root, "objects", "tex", "sand.png"), grayColumn(1, 2))
		fsys, err := NewAssetFS(root)
		So(err, ShouldBeNil)

		Convey("the quad is fan-triangulated with shared vertices", func() {
			m, err := LoadModel(fsys, "objects/quad.obj")
			So(err, ShouldBeNil)
			So(m.Meshes, ShouldHaveLength, 1)
			mesh := m.Meshes[0]
			So(mesh.Name, ShouldEqual, "Quad")
			So(mesh.Vertices, ShouldHaveLength, 4)
			So(mesh.Indices, ShouldResemble, []uint32{0, 1, 2, 0, 2, 3})

			Convey("texture coordinates are flipped vertically", func() {
				So(mesh.Vertices[0].UV, ShouldResemble, mgl32.Vec2{0, 1})
				So(mesh.Vertices[2].UV, ShouldResemble, mgl32.Vec2{1, 0})
			})

			Convey("missing normals are generated from the winding", func() {
				for _, v := range mesh.Vertices {
					So(vecNear(v.Normal, mgl32.Vec3{0, 0, 1}, 1e-5), ShouldBeTrue)
				}
			})

			Convey("the material comes from the MTL library", func() {
				mat := mesh.Material
				So(mat.Name, ShouldEqual, "sand")
				So(mat.Diffuse, ShouldResemble, mgl32.Vec3{0.5, 0.25, 1})
				So(mat.Shininess, ShouldEqual, float32(64))
				So(mat.DiffuseTexture, ShouldNotBeNil)
				So(mat.DiffuseTexture.Name, ShouldEqual, "objects/tex/sand.png")
				So(mat.SpecularTexture, ShouldBeNil)
				So(m.Textures(), ShouldHaveLength, 1)
			})

			Convey("the missing specular map is reported as a warning", func() {
				So(m.Warnings, ShouldHaveLength, 1)
			})
		})

		Convey("negative indices count back from the last vertex", func() {
			writeAsset(t, root, "objects/tri.obj", "v 0 0 0\nv 1 0 0\nv 0 1 0\nvn 0 0 1\nf -3//-1 -2//-1 -1//-1\n")
			m, err := LoadModel(fsys, "objects/tri.obj")
			So(err, ShouldBeNil)
			mesh := m.Meshes[0]
			So(mesh.Indices, ShouldResemble, []uint32{0, 1, 2})
			So(mesh.Vertices[1].Position, ShouldResemble, mgl32.Vec3{1, 0, 0})
			So(mesh.Material.Name, ShouldEqual, "Default")
		})

		Convey("a missing material library keeps the geometry", func() {
			writeAsset(t, root, "objects/lonely.obj", "mtllib nowhere.mtl\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")
			m, err := LoadModel(fsys, "objects/lonely.obj")
			So(err, ShouldBeNil)
			So(m.Meshes, ShouldHaveLength, 1)
			So(m.Warnings, ShouldHaveLength, 1)
		})

		Convey("a file without faces is an error", func() {
			writeAsset(t, root, "objects/empty.obj", "v 0 0 0\n")
			_, err := LoadModel(fsys, "objects/empty.obj")
			So(err, ShouldNotBeNil)
		})

		Convey("unknown extensions are rejected", func() {
			_, err := LoadModel(fsys, "objects/umbrella.fbx")
			So(errors.Is(err, ErrUnsupportedModel), ShouldBeTrue)
		})

		Convey("missing and corrupt glTF files are errors", func() {
			_, err := LoadModel(fsys, "objects/ball.glb")
			So(err, ShouldNotBeNil)

			writeAsset(t, root, "objects/broken.glb", "definitely not a model")
			_, err = LoadModel(fsys, "objects/broken.glb")
			So(err, ShouldNotBeNil)
			So(errors.Is(err, ErrUnsupportedModel), ShouldBeFalse)
		})
	})
}

func TestReadAsset(t *testing.T) {
	root := t.TempDir()
	writeAsset(t, root, "shaders/light_cube.fs", "void main() {}\n")
	fsys, err := NewAssetFS(root)
	if err != nil {
		t.Fatal(err)
	}
	data, err := ReadAsset(fsys, "shaders/light_cube.fs")
	if err != nil || string(data) != "void main() {}\n" {
		t.Errorf("ReadAsset: got %q, %v", data, err)
	}
	if _, err := ReadAsset(fsys, "shaders/nope.fs"); err == nil {
		t.Errorf("ReadAsset: expected error for missing file")
	}
	if _, err := NewAssetFS(); err == nil {
		t.Errorf("NewAssetFS: expected error without roots")
	}
}
