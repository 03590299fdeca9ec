package input

import (
	"go.uber.org/zap"

	"beach-renderer/scene"
)

// Action mirrors the GLFW key actions.
type Action int

const (
	Release Action = iota
	Press
	Repeat
)

// KeyState reports whether a key is currently held. *core.Window satisfies
// it.
type KeyState interface {
	IsKeyPressed(key int) bool
}

// Bindings maps controller commands to key codes.
type Bindings struct {
	Quit          int
	ToggleShading int
	ResetCamera   int
	StartGame     int
	ToggleCapture int

	Forward  int
	Backward int
	Left     int
	Right    int
}

// Effects are window-side consequences of input the controller cannot apply
// itself.
type Effects struct {
	Quit bool
	// ApplyCapture means the cursor mode must be set to match
	// ProgramState.MouseCapture.
	ApplyCapture bool
}

func (e Effects) merge(o Effects) Effects {
	return Effects{
		Quit:         e.Quit || o.Quit,
		ApplyCapture: e.ApplyCapture || o.ApplyCapture,
	}
}

// Controller owns the input bookkeeping that does not belong in the program
// state: the last cursor position and the key latches.
type Controller struct {
	keys Bindings
	log  *zap.Logger

	shading Latch
	capture Latch

	firstMouse   bool
	lastX, lastY float64
}

func NewController(keys Bindings, log *zap.Logger) *Controller {
	return &Controller{
		keys:       keys,
		log:        log,
		firstMouse: true,
	}
}

// CursorMoved turns the camera by the distance the cursor travelled since
// the previous event. The first event only seeds the position. Screen Y
// grows downward, so the vertical offset is reversed.
func (c *Controller) CursorMoved(st *scene.ProgramState, x, y float64) {
	if c.firstMouse {
		c.lastX, c.lastY = x, y
		c.firstMouse = false
	}
	xOffset := float32(x - c.lastX)
	yOffset := float32(c.lastY - y)
	c.lastX, c.lastY = x, y

	if st.MouseCapture {
		st.Camera.ProcessMouseMovement(xOffset, yOffset)
	}
}

func (c *Controller) Scrolled(st *scene.ProgramState, yOffset float64) {
	st.Camera.ProcessMouseScroll(float32(yOffset))
}

// KeyEvent handles a key callback. now is the current time in seconds.
func (c *Controller) KeyEvent(st *scene.ProgramState, key int, action Action, now float64) Effects {
	if key != c.keys.StartGame || action != Press {
		return Effects{}
	}
	if !st.GameStarted {
		st.GameStarted = true
		st.StartTime = now
		c.log.Info("game started", zap.Float64("at", now))
	}
	return c.setCapture(st, true)
}

// Poll reads held keys once per frame. dt is the frame time in seconds.
func (c *Controller) Poll(st *scene.ProgramState, keys KeyState, dt float32) Effects {
	var eff Effects

	if keys.IsKeyPressed(c.keys.Quit) {
		eff.Quit = true
	}

	if c.shading.Update(keys.IsKeyPressed(c.keys.ToggleShading)) {
		st.Blinn = !st.Blinn
		c.log.Info("shading toggled", zap.Bool("blinn", st.Blinn))
	}

	if c.capture.Update(keys.IsKeyPressed(c.keys.ToggleCapture)) {
		eff = eff.merge(c.setCapture(st, !st.MouseCapture))
	}

	if keys.IsKeyPressed(c.keys.ResetCamera) {
		st.Camera.Position = scene.ResetCameraPosition
	}

	moves := [...]struct {
		key int
		dir scene.CameraMovement
	}{
		{c.keys.Forward, scene.Forward},
		{c.keys.Backward, scene.Backward},
		{c.keys.Left, scene.Left},
		{c.keys.Right, scene.Right},
	}
	for _, m := range moves {
		if keys.IsKeyPressed(m.key) {
			st.Camera.ProcessKeyboard(m.dir, dt)
		}
	}

	return eff
}

func (c *Controller) setCapture(st *scene.ProgramState, on bool) Effects {
	if on && !st.MouseCapture {
		// The cursor may jump when it is grabbed again.
		c.firstMouse = true
	}
	if st.MouseCapture != on {
		c.log.Info("mouse capture", zap.Bool("enabled", on))
	}
	st.MouseCapture = on
	return Effects{ApplyCapture: true}
}
