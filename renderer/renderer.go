package renderer

import (
	"github.com/db47h/ofs"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"beach-renderer/internal/opengl"
	"beach-renderer/scene"
)

// Assets names every file the beach loads, relative to the asset roots.
type Assets struct {
	Umbrella string
	Ball     string
	Coconut  string

	Floor string
	Towel string
	Grass string

	Skybox [6]string
}

// DefaultAssets returns the asset names of the stock beach.
func DefaultAssets() Assets {
	return Assets{
		Umbrella: "objects/suncobran/13518_Beach_Umbrella_v1_L3.obj",
		Ball:     "objects/lopta/13517_Beach_Ball_v2_L3.obj",
		Coconut:  "objects/kokos2/10175_CoconutHalf_L3.obj",
		Floor:    "textures/pexels-sharon-mccutcheon-3711238.jpg",
		Towel:    "textures/pexels-sharon-mccutcheon-3711238.jpg",
		Grass:    "textures/grass.png",
		Skybox:   scene.CubemapFaces,
	}
}

// SceneRenderer owns every GPU resource of the beach and draws one
// scene.Frame at a time.
type SceneRenderer struct {
	log *zap.Logger

	modelProg       *opengl.Program
	skyboxProg      *opengl.Program
	transparentProg *opengl.Program
	lightCubeProg   *opengl.Program
	floorProg       *opengl.Program

	// nil when the model failed to load
	umbrella *opengl.GPUModel
	ball     *opengl.GPUModel
	coconut  *opengl.GPUModel

	towel *opengl.VertexArray
	grass *opengl.VertexArray
	plane *opengl.VertexArray
	cube  *opengl.VertexArray

	floorTex *scene.Texture
	towelTex *scene.Texture
	grassTex *scene.Texture
	textures []*scene.Texture

	sky *opengl.Skybox
}

// New compiles the shaders, loads the models and textures and builds the
// static vertex buffers. The GL context must be current. Shader failures
// are returned; asset failures are logged and worked around.
func New(fsys ofs.FileSystem, assets Assets, log *zap.Logger) (*SceneRenderer, error) {
	r := &SceneRenderer{log: log}

	progs := []struct {
		name string
		dst  **opengl.Program
	}{
		{ModelShader, &r.modelProg},
		{SkyboxShader, &r.skyboxProg},
		{TransparentShader, &r.transparentProg},
		{LightCubeShader, &r.lightCubeProg},
		{FloorShader, &r.floorProg},
	}
	for _, p := range progs {
		prog, err := LoadProgram(fsys, p.name)
		if err != nil {
			r.Destroy()
			return nil, errors.Wrapf(err, "load shader %s", p.name)
		}
		*p.dst = prog
	}
	log.Info("shaders compiled", zap.Int("programs", len(progs)))

	r.umbrella = r.loadModel(fsys, assets.Umbrella)
	r.ball = r.loadModel(fsys, assets.Ball)
	r.coconut = r.loadModel(fsys, assets.Coconut)

	r.towel = opengl.NewVertexArray(towelVerts, towelLayout, towelIndices)
	r.grass = opengl.NewVertexArray(grassVerts, grassLayout, nil)
	r.plane = opengl.NewVertexArray(planeVerts, planeLayout, nil)
	r.cube = opengl.NewVertexArray(cubeVerts, cubeLayout, nil)

	r.floorTex = r.loadTexture(fsys, assets.Floor)
	r.towelTex = r.loadTexture(fsys, assets.Towel)
	r.grassTex = r.loadTexture(fsys, assets.Grass)

	r.sky = r.loadSkybox(fsys, assets.Skybox)

	// Sampler units never change, set them once.
	r.transparentProg.Use()
	r.transparentProg.SetInt("texture1", 0)
	r.floorProg.Use()
	r.floorProg.SetInt("floorTexture", 0)
	r.skyboxProg.Use()
	r.skyboxProg.SetInt("skybox", 0)

	return r, nil
}

func (r *SceneRenderer) loadModel(fsys ofs.FileSystem, name string) *opengl.GPUModel {
	m, err := scene.LoadModel(fsys, name)
	if err != nil {
		r.log.Warn("model skipped", zap.String("model", name), zap.Error(err))
		return nil
	}
	for _, w := range m.Warnings {
		r.log.Warn("model asset missing", zap.String("model", name), zap.Error(w))
	}
	gm, errs := opengl.NewGPUModel(m)
	for _, err := range errs {
		r.log.Warn("model texture upload failed", zap.String("model", name), zap.Error(err))
	}
	r.log.Info("model loaded", zap.String("model", name), zap.Int("meshes", len(m.Meshes)))
	return gm
}

// loadTexture never returns nil: a failed texture becomes a 1x1 white
// placeholder.
func (r *SceneRenderer) loadTexture(fsys ofs.FileSystem, name string) *scene.Texture {
	for _, t := range r.textures {
		if t.Name == name {
			return t
		}
	}
	tex, err := scene.LoadTexture(fsys, name, true)
	if err == nil {
		err = opengl.UploadTexture(tex)
	}
	if err != nil {
		r.log.Warn("texture replaced by placeholder", zap.String("texture", name), zap.Error(err))
		tex = scene.NewSolidTexture(name, 255, 255, 255, 255)
		if err := opengl.UploadTexture(tex); err != nil {
			r.log.Warn("placeholder upload failed", zap.String("texture", name), zap.Error(err))
		}
	}
	r.textures = append(r.textures, tex)
	return tex
}

// placeholderFace stands in for every face when any face is missing, since
// a cubemap with mismatched face sizes is incomplete.
func placeholderFace() *scene.Texture {
	return scene.NewSolidTexture("sky_placeholder", 135, 206, 235, 255)
}

func (r *SceneRenderer) loadSkybox(fsys ofs.FileSystem, faces [6]string) *opengl.Skybox {
	loaded, err := scene.LoadCubemap(fsys, faces)
	if err != nil {
		r.log.Warn("skybox faces replaced by placeholder", zap.Error(err))
		for i := range loaded {
			loaded[i] = placeholderFace()
		}
	}
	sky, err := opengl.NewSkybox(loaded)
	if err != nil {
		r.log.Warn("skybox disabled", zap.Error(err))
		return nil
	}
	return sky
}

// Resize updates the viewport after a framebuffer size change.
func (r *SceneRenderer) Resize(width, height int) {
	opengl.SetViewport(width, height)
}

// Render draws one frame in the fixed order: models, towel, light cubes,
// floor, grass, then the skybox last.
func (r *SceneRenderer) Render(f scene.Frame) {
	opengl.Clear(f.ClearColor)

	// Models
	mp := r.modelProg
	mp.Use()
	setPointLight(mp, "pointLight", f.Lamps[0])
	setPointLight(mp, "pointLight1", f.Lamps[1])
	setSpotLight(mp, "spotLight", f.Flashlight)
	mp.SetVec3("viewPosition", f.ViewPos)
	mp.SetFloat("material.shininess", f.Shininess)
	mp.SetMat4("projection", f.Projection)
	mp.SetMat4("view", f.View)

	for _, m := range []struct {
		model *opengl.GPUModel
		xf    mgl32.Mat4
	}{
		{r.umbrella, f.Umbrella},
		{r.ball, f.Ball},
		{r.coconut, f.Coconut},
	} {
		if m.model == nil {
			continue
		}
		mp.SetMat4("model", m.xf)
		m.model.Draw(mp)
	}

	// Towel
	tp := r.transparentProg
	tp.Use()
	tp.SetMat4("projection", f.Projection)
	tp.SetMat4("view", f.View)
	tp.SetMat4("model", f.Towel)
	opengl.BindTexture(0, r.towelTex)
	r.towel.Draw()

	// Light cubes
	lp := r.lightCubeProg
	lp.Use()
	lp.SetMat4("projection", f.Projection)
	lp.SetMat4("view", f.View)
	for _, xf := range f.LightCubes {
		lp.SetMat4("model", xf)
		r.cube.Draw()
	}

	// Floor, already in world space
	fp := r.floorProg
	fp.Use()
	fp.SetMat4("projection", f.Projection)
	fp.SetMat4("view", f.View)
	fp.SetVec3("viewPos", f.ViewPos)
	fp.SetVec3("lightPos", f.FloorLight)
	fp.SetBool("blinn", f.Blinn)
	opengl.BindTexture(0, r.floorTex)
	r.plane.Draw()

	// Grass
	tp.Use()
	opengl.BindTexture(0, r.grassTex)
	for _, xf := range f.Grass {
		tp.SetMat4("model", xf)
		r.grass.Draw()
	}
	opengl.BindTexture(0, nil)

	if r.sky != nil {
		r.sky.Draw(r.skyboxProg, f.SkyboxView, f.Projection)
	}
}

func setPointLight(p *opengl.Program, name string, l scene.PointLight) {
	p.SetVec3(name+".position", l.Position)
	p.SetVec3(name+".ambient", l.Ambient)
	p.SetVec3(name+".diffuse", l.Diffuse)
	p.SetVec3(name+".specular", l.Specular)
	p.SetFloat(name+".constant", l.Constant)
	p.SetFloat(name+".linear", l.Linear)
	p.SetFloat(name+".quadratic", l.Quadratic)
}

func setSpotLight(p *opengl.Program, name string, l scene.SpotLight) {
	p.SetVec3(name+".position", l.Position)
	p.SetVec3(name+".direction", l.Direction)
	p.SetVec3(name+".ambient", l.Ambient)
	p.SetVec3(name+".diffuse", l.Diffuse)
	p.SetVec3(name+".specular", l.Specular)
	p.SetFloat(name+".constant", l.Constant)
	p.SetFloat(name+".linear", l.Linear)
	p.SetFloat(name+".quadratic", l.Quadratic)
	p.SetFloat(name+".cutOff", l.CutOff)
	p.SetFloat(name+".outerCutOff", l.OuterCutOff)
}

// Destroy releases all GPU resources.
func (r *SceneRenderer) Destroy() {
	for _, m := range []*opengl.GPUModel{r.umbrella, r.ball, r.coconut} {
		if m != nil {
			m.Destroy()
		}
	}
	for _, va := range []*opengl.VertexArray{r.towel, r.grass, r.plane, r.cube} {
		if va != nil {
			va.Destroy()
		}
	}
	for _, t := range r.textures {
		opengl.DeleteTexture(t)
	}
	if r.sky != nil {
		r.sky.Destroy()
	}
	for _, p := range []*opengl.Program{r.modelProg, r.skyboxProg, r.transparentProg, r.lightCubeProg, r.floorProg} {
		if p != nil {
			p.Destroy()
		}
	}
}
