package scene

import (
	"bufio"
	"io"
	"math"
	"path"
	"strconv"
	"strings"

	"github.com/db47h/ofs"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// objFace is an already-triangulated face (three vertex references).
type objFace struct {
	vIdx, vtIdx, vnIdx [3]int // 0-based position / UV / normal indices (-1 = absent)
}

type objObject struct {
	name    string
	matName string
	faces   []objFace
}

// LoadOBJ parses a Wavefront .obj file and returns one Mesh per object/group.
// A companion .mtl file is loaded automatically if referenced via "mtllib".
// Texture coordinates are flipped vertically so that images can be uploaded
// as decoded. Material files and textures that fail to load are reported in
// Model.Warnings; the geometry is still returned.
func LoadOBJ(fsys ofs.FileSystem, name string) (*Model, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "open obj %s", name)
	}
	defer f.Close()

	model := &Model{Name: name}
	objects, pools, mtllibs, err := parseOBJ(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse obj %s", name)
	}
	if len(objects) == 0 {
		return nil, errors.Errorf("no geometry found in %s", name)
	}

	dir := path.Dir(name)
	materials := map[string]*Material{}
	for _, lib := range mtllibs {
		loaded, warns, err := loadMTL(fsys, path.Join(dir, lib), dir)
		model.Warnings = append(model.Warnings, warns...)
		if err != nil {
			model.Warnings = append(model.Warnings, err)
			continue
		}
		for k, v := range loaded {
			materials[k] = v
		}
	}

	for _, obj := range objects {
		mesh := buildMeshFromOBJ(obj.name, obj.faces, pools)
		if mat, ok := materials[obj.matName]; ok {
			mesh.Material = mat
		} else {
			mesh.Material = DefaultMaterial()
		}
		model.Meshes = append(model.Meshes, mesh)
	}
	return model, nil
}

type objPools struct {
	positions []mgl32.Vec3
	normals   []mgl32.Vec3
	uvs       []mgl32.Vec2
}

func parseOBJ(r io.Reader) ([]objObject, objPools, []string, error) {
	var pools objPools
	var objects []objObject
	var mtllibs []string
	cur := &objObject{name: "default"}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				continue
			}
			pools.positions = append(pools.positions, parseVec3(fields[1:4]))

		case "vn":
			if len(fields) < 4 {
				continue
			}
			pools.normals = append(pools.normals, parseVec3(fields[1:4]))

		case "vt":
			if len(fields) < 3 {
				continue
			}
			u, _ := strconv.ParseFloat(fields[1], 32)
			v, _ := strconv.ParseFloat(fields[2], 32)
			pools.uvs = append(pools.uvs, mgl32.Vec2{float32(u), 1 - float32(v)})

		case "o", "g":
			if len(cur.faces) > 0 {
				objects = append(objects, *cur)
			}
			name := "default"
			if len(fields) > 1 {
				name = fields[1]
			}
			cur = &objObject{name: name, matName: cur.matName}

		case "usemtl":
			if len(fields) > 1 {
				// A material switch inside a group starts a new mesh.
				if len(cur.faces) > 0 {
					objects = append(objects, *cur)
					cur = &objObject{name: cur.name}
				}
				cur.matName = fields[1]
			}

		case "mtllib":
			mtllibs = append(mtllibs, fields[1:]...)

		case "f":
			if len(fields) < 4 {
				continue
			}
			fverts := make([]faceVertex, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				fverts = append(fverts, parseFaceVertex(tok, pools))
			}
			// Fan triangulation: 0-1-2, 0-2-3, 0-3-4, ...
			for i := 1; i+1 < len(fverts); i++ {
				f0, f1, f2 := fverts[0], fverts[i], fverts[i+1]
				cur.faces = append(cur.faces, objFace{
					vIdx:  [3]int{f0.v, f1.v, f2.v},
					vtIdx: [3]int{f0.vt, f1.vt, f2.vt},
					vnIdx: [3]int{f0.vn, f1.vn, f2.vn},
				})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, pools, nil, errors.Wrap(err, "scan obj")
	}
	if len(cur.faces) > 0 {
		objects = append(objects, *cur)
	}
	return objects, pools, mtllibs, nil
}

func parseVec3(fields []string) mgl32.Vec3 {
	x, _ := strconv.ParseFloat(fields[0], 32)
	y, _ := strconv.ParseFloat(fields[1], 32)
	z, _ := strconv.ParseFloat(fields[2], 32)
	return mgl32.Vec3{float32(x), float32(y), float32(z)}
}

type faceVertex struct{ v, vt, vn int }

// parseFaceVertex parses one face vertex token: "v", "v/vt", "v//vn", "v/vt/vn".
// Returns 0-based indices (-1 if absent). OBJ is 1-based; negative indices
// count back from the end of the pool read so far.
func parseFaceVertex(tok string, pools objPools) faceVertex {
	parseIdx := func(s string, n int) int {
		if s == "" {
			return -1
		}
		i, err := strconv.Atoi(s)
		switch {
		case err != nil || i == 0:
			return -1
		case i > 0:
			return i - 1
		default:
			return n + i
		}
	}
	parts := strings.Split(tok, "/")
	res := faceVertex{v: -1, vt: -1, vn: -1}
	if len(parts) > 0 {
		res.v = parseIdx(parts[0], len(pools.positions))
	}
	if len(parts) > 1 {
		res.vt = parseIdx(parts[1], len(pools.uvs))
	}
	if len(parts) > 2 {
		res.vn = parseIdx(parts[2], len(pools.normals))
	}
	return res
}

// buildMeshFromOBJ converts parsed face data into a deduplicated Mesh.
func buildMeshFromOBJ(name string, faces []objFace, pools objPools) *Mesh {
	vertMap := map[faceVertex]uint32{}
	var vertices []Vertex
	var indices []uint32

	missingNormals := false
	for _, face := range faces {
		for c := 0; c < 3; c++ {
			k := faceVertex{face.vIdx[c], face.vtIdx[c], face.vnIdx[c]}
			if idx, ok := vertMap[k]; ok {
				indices = append(indices, idx)
				continue
			}
			v := Vertex{Normal: mgl32.Vec3{0, 1, 0}}
			if k.v >= 0 && k.v < len(pools.positions) {
				v.Position = pools.positions[k.v]
			}
			if k.vn >= 0 && k.vn < len(pools.normals) {
				v.Normal = pools.normals[k.vn]
			} else {
				missingNormals = true
			}
			if k.vt >= 0 && k.vt < len(pools.uvs) {
				v.UV = pools.uvs[k.vt]
			}
			idx := uint32(len(vertices))
			vertices = append(vertices, v)
			vertMap[k] = idx
			indices = append(indices, idx)
		}
	}

	if missingNormals {
		generateNormals(vertices, indices)
	}
	return NewMesh(name, vertices, indices)
}

// ── MTL loader ───────────────────────────────────────────────────────────────

// loadMTL returns the materials of one library. Texture failures come back
// as warnings; only failing to read the library itself is an error.
func loadMTL(fsys ofs.FileSystem, name, dir string) (map[string]*Material, []error, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open mtl %s", name)
	}
	defer f.Close()

	mats := map[string]*Material{}
	var warns []error
	var cur *Material

	texture := func(fields []string) *Texture {
		// Options such as "-bm 1" precede the file name.
		file := strings.ReplaceAll(fields[len(fields)-1], "\\", "/")
		tex, err := LoadTexture(fsys, path.Join(dir, file), false)
		if err != nil {
			warns = append(warns, err)
			return nil
		}
		return tex
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if fields[0] == "newmtl" {
			if len(fields) > 1 {
				cur = DefaultMaterial()
				cur.Name = fields[1]
				mats[fields[1]] = cur
			}
			continue
		}
		if cur == nil {
			continue
		}

		switch fields[0] {
		case "Kd":
			if len(fields) >= 4 {
				cur.Diffuse = parseVec3(fields[1:4])
			}
		case "Ks":
			if len(fields) >= 4 {
				cur.Specular = parseVec3(fields[1:4])
			}
		case "Ns":
			if len(fields) >= 2 {
				ns, _ := strconv.ParseFloat(fields[1], 32)
				cur.Shininess = float32(math.Max(1, ns))
			}
		case "map_Kd":
			if len(fields) >= 2 {
				cur.DiffuseTexture = texture(fields)
			}
		case "map_Ks":
			if len(fields) >= 2 {
				cur.SpecularTexture = texture(fields)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, warns, errors.Wrapf(err, "scan mtl %s", name)
	}
	return mats, warns, nil
}
