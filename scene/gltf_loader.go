package scene

import (
	"bytes"
	"fmt"
	"path"

	"github.com/db47h/ofs"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF opens a binary glTF (.glb) file and flattens its node hierarchy
// into a list of meshes with node transforms baked into the vertices.
// Base color factors and textures become the diffuse channel; PBR
// metallic-roughness is approximated to Phong specular and shininess.
func LoadGLTF(fsys ofs.FileSystem, name string) (*Model, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "open gltf %s", name)
	}
	defer f.Close()

	doc := new(gltf.Document)
	if err := gltf.NewDecoder(f).Decode(doc); err != nil {
		return nil, errors.Wrapf(err, "decode gltf %s", name)
	}

	model := &Model{Name: name}
	dir := path.Dir(name)

	// ── 1. Textures ───────────────────────────────────────────────────────────
	texCache := make([]*Texture, len(doc.Textures))
	for i, gt := range doc.Textures {
		if gt.Source == nil || *gt.Source >= len(doc.Images) {
			continue
		}
		tex, err := loadGLTFImage(fsys, doc, *gt.Source, dir)
		if err != nil {
			model.Warnings = append(model.Warnings, errors.Wrapf(err, "gltf %s image %d", name, *gt.Source))
			continue
		}
		texCache[i] = tex
	}

	// ── 2. Materials ─────────────────────────────────────────────────────────
	matCache := make([]*Material, len(doc.Materials))
	for i, gm := range doc.Materials {
		mat := DefaultMaterial()
		mat.Name = gm.Name

		if pbr := gm.PBRMetallicRoughness; pbr != nil {
			cf := pbr.BaseColorFactorOrDefault()
			mat.Diffuse = mgl32.Vec3{float32(cf[0]), float32(cf[1]), float32(cf[2])}
			if pbr.BaseColorTexture != nil {
				idx := pbr.BaseColorTexture.Index
				if idx < len(texCache) && texCache[idx] != nil {
					mat.DiffuseTexture = texCache[idx]
				}
			}
			// smooth surface = high shininess, metallic = stronger highlight
			roughness := float32(pbr.RoughnessFactorOrDefault())
			metallic := float32(pbr.MetallicFactorOrDefault())
			mat.Shininess = (1.0-roughness)*(1.0-roughness)*128.0 + 1.0
			s := metallic * 0.7
			mat.Specular = mgl32.Vec3{s, s, s}
		}
		matCache[i] = mat
	}

	// ── 3. Nodes ──────────────────────────────────────────────────────────────
	var roots []int
	if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
		roots = doc.Scenes[*doc.Scene].Nodes
	} else {
		hasParent := make([]bool, len(doc.Nodes))
		for _, gn := range doc.Nodes {
			for _, c := range gn.Children {
				if c < len(hasParent) {
					hasParent[c] = true
				}
			}
		}
		for i := range doc.Nodes {
			if !hasParent[i] {
				roots = append(roots, i)
			}
		}
	}

	visited := make([]bool, len(doc.Nodes))
	var walk func(idx int, parent mgl32.Mat4)
	walk = func(idx int, parent mgl32.Mat4) {
		if idx >= len(doc.Nodes) || visited[idx] {
			return
		}
		visited[idx] = true
		gn := doc.Nodes[idx]
		world := parent.Mul4(nodeMatrix(gn))

		if gn.Mesh != nil && *gn.Mesh < len(doc.Meshes) {
			gm := doc.Meshes[*gn.Mesh]
			for pi, prim := range gm.Primitives {
				m, err := loadGLTFPrimitive(doc, gm.Name, pi, prim)
				if err != nil {
					model.Warnings = append(model.Warnings, errors.Wrapf(err, "gltf %s mesh %d prim %d", name, *gn.Mesh, pi))
					continue
				}
				bakeTransform(m, world)
				if prim.Material != nil && *prim.Material < len(matCache) {
					m.Material = matCache[*prim.Material]
				}
				model.Meshes = append(model.Meshes, m)
			}
		}
		for _, c := range gn.Children {
			walk(c, world)
		}
	}
	for _, r := range roots {
		walk(r, mgl32.Ident4())
	}

	if len(model.Meshes) == 0 {
		return nil, errors.Errorf("no geometry found in %s", name)
	}
	return model, nil
}

func nodeMatrix(gn *gltf.Node) mgl32.Mat4 {
	t := gn.TranslationOrDefault()
	r := gn.RotationOrDefault() // [x, y, z, w]
	s := gn.ScaleOrDefault()
	q := mgl32.Quat{W: float32(r[3]), V: mgl32.Vec3{float32(r[0]), float32(r[1]), float32(r[2])}}
	return mgl32.Translate3D(float32(t[0]), float32(t[1]), float32(t[2])).
		Mul4(q.Normalize().Mat4()).
		Mul4(mgl32.Scale3D(float32(s[0]), float32(s[1]), float32(s[2])))
}

// bakeTransform applies m to positions and its inverse transpose to normals.
func bakeTransform(mesh *Mesh, m mgl32.Mat4) {
	if m == mgl32.Ident4() {
		return
	}
	normalMat := m.Mat3().Inv().Transpose()
	for i := range mesh.Vertices {
		v := &mesh.Vertices[i]
		v.Position = m.Mul4x1(v.Position.Vec4(1)).Vec3()
		if n := normalMat.Mul3x1(v.Normal); n.Len() > 0 {
			v.Normal = n.Normalize()
		}
	}
}

func loadGLTFImage(fsys ofs.FileSystem, doc *gltf.Document, idx int, dir string) (*Texture, error) {
	img := doc.Images[idx]
	name := img.Name
	if name == "" {
		name = fmt.Sprintf("gltf_img_%d", idx)
	}

	switch {
	case img.BufferView != nil:
		raw, err := modeler.ReadBufferView(doc, doc.BufferViews[*img.BufferView])
		if err != nil {
			return nil, errors.Wrap(err, "bufferview")
		}
		return DecodeTexture(name, bytes.NewReader(raw), false)
	case img.IsEmbeddedResource():
		raw, err := img.MarshalData()
		if err != nil {
			return nil, errors.Wrap(err, "data uri")
		}
		return DecodeTexture(name, bytes.NewReader(raw), false)
	case img.URI != "":
		return LoadTexture(fsys, path.Join(dir, img.URI), false)
	}
	return nil, errors.New("image has no data")
}

// loadGLTFPrimitive converts one glTF mesh primitive into a scene.Mesh.
func loadGLTFPrimitive(doc *gltf.Document, meshName string, primIdx int, prim *gltf.Primitive) (*Mesh, error) {
	name := fmt.Sprintf("%s_p%d", meshName, primIdx)
	if meshName == "" {
		name = fmt.Sprintf("prim_%d", primIdx)
	}

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, errors.New("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, errors.Wrap(err, "positions")
	}

	var normals [][3]float32
	var uvs [][2]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, _ = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
	}

	verts := make([]Vertex, len(positions))
	for i, p := range positions {
		v := Vertex{
			Position: mgl32.Vec3{p[0], p[1], p[2]},
			Normal:   mgl32.Vec3{0, 1, 0},
		}
		if i < len(normals) {
			v.Normal = mgl32.Vec3(normals[i])
		}
		if i < len(uvs) {
			v.UV = mgl32.Vec2(uvs[i])
		}
		verts[i] = v
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, errors.Wrap(err, "indices")
		}
	} else {
		indices = make([]uint32, len(verts))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}
	if err := checkIndices(indices, len(verts)); err != nil {
		return nil, err
	}

	if len(normals) == 0 {
		generateNormals(verts, indices)
	}
	return NewMesh(name, verts, indices), nil
}
