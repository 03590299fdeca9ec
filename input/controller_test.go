package input

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"beach-renderer/internal/logger"
	"beach-renderer/scene"
)

const (
	keyEsc = iota + 1
	keyB
	keyM
	keyS
	keyF1
	keyUp
	keyDown
	keyLeft
	keyRight
)

var testBindings = Bindings{
	Quit:          keyEsc,
	ToggleShading: keyB,
	ResetCamera:   keyM,
	StartGame:     keyS,
	ToggleCapture: keyF1,
	Forward:       keyUp,
	Backward:      keyDown,
	Left:          keyLeft,
	Right:         keyRight,
}

type fakeKeys map[int]bool

func (k fakeKeys) IsKeyPressed(key int) bool { return k[key] }

func newTestController() (*Controller, *scene.ProgramState) {
	return NewController(testBindings, logger.Nop()), scene.NewProgramState()
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func approxVec(a, b mgl32.Vec3) bool {
	return approx(a[0], b[0]) && approx(a[1], b[1]) && approx(a[2], b[2])
}

func TestCursorMovedScenario(t *testing.T) {
	c, st := newTestController()

	// The first event only seeds the cursor position.
	c.CursorMoved(st, 400, 300)
	if st.Camera.Yaw != scene.DefaultYaw || st.Camera.Pitch != 0 {
		t.Fatalf("first event moved the camera: yaw=%v pitch=%v", st.Camera.Yaw, st.Camera.Pitch)
	}

	c.CursorMoved(st, 410, 295)
	c.CursorMoved(st, 420, 290)
	if !approx(st.Camera.Yaw-scene.DefaultYaw, 2) {
		t.Errorf("yaw delta: expected 2.0, got %v", st.Camera.Yaw-scene.DefaultYaw)
	}
	if !approx(st.Camera.Pitch, 1) {
		t.Errorf("pitch: expected 1.0, got %v", st.Camera.Pitch)
	}
}

func TestCursorMovedIgnoredWithoutCapture(t *testing.T) {
	c, st := newTestController()
	st.MouseCapture = false

	c.CursorMoved(st, 0, 0)
	c.CursorMoved(st, 500, -500)
	if st.Camera.Yaw != scene.DefaultYaw || st.Camera.Pitch != 0 {
		t.Errorf("camera moved without capture: yaw=%v pitch=%v", st.Camera.Yaw, st.Camera.Pitch)
	}

	// Position is still tracked, so re-enabling capture does not replay
	// the skipped distance.
	st.MouseCapture = true
	c.CursorMoved(st, 510, -500)
	if !approx(st.Camera.Yaw-scene.DefaultYaw, 1) {
		t.Errorf("yaw delta after capture: expected 1.0, got %v", st.Camera.Yaw-scene.DefaultYaw)
	}
}

func TestScrolled(t *testing.T) {
	c, st := newTestController()
	c.Scrolled(st, 5)
	if st.Camera.Zoom != 40 {
		t.Errorf("zoom: expected 40, got %v", st.Camera.Zoom)
	}
	c.Scrolled(st, -50)
	if st.Camera.Zoom != 45 {
		t.Errorf("zoom: expected clamp to 45, got %v", st.Camera.Zoom)
	}
}

func TestStartGame(t *testing.T) {
	c, st := newTestController()
	st.MouseCapture = false

	if eff := c.KeyEvent(st, keyS, Release, 1); eff != (Effects{}) || st.GameStarted {
		t.Fatalf("release should do nothing, got %+v", eff)
	}
	if eff := c.KeyEvent(st, keyB, Press, 1); eff != (Effects{}) {
		t.Fatalf("unbound key should do nothing, got %+v", eff)
	}

	eff := c.KeyEvent(st, keyS, Press, 3.5)
	if !st.GameStarted || st.StartTime != 3.5 {
		t.Errorf("start: expected started at 3.5, got started=%v at %v", st.GameStarted, st.StartTime)
	}
	if !st.MouseCapture || !eff.ApplyCapture {
		t.Errorf("start should force capture, got capture=%v effects=%+v", st.MouseCapture, eff)
	}

	// A second press keeps the original start time.
	c.KeyEvent(st, keyS, Press, 9)
	if st.StartTime != 3.5 {
		t.Errorf("restart: start time changed to %v", st.StartTime)
	}
}

func TestPollToggles(t *testing.T) {
	c, st := newTestController()
	keys := fakeKeys{}

	keys[keyB] = true
	for i := 0; i < 10; i++ {
		c.Poll(st, keys, 0.016)
	}
	if !st.Blinn {
		t.Errorf("holding B should toggle Blinn once")
	}
	keys[keyB] = false
	c.Poll(st, keys, 0.016)
	keys[keyB] = true
	c.Poll(st, keys, 0.016)
	if st.Blinn {
		t.Errorf("second press should toggle Blinn back off")
	}

	keys[keyF1] = true
	eff := c.Poll(st, keys, 0.016)
	if st.MouseCapture || !eff.ApplyCapture {
		t.Errorf("F1 should release capture, got capture=%v effects=%+v", st.MouseCapture, eff)
	}
	if eff = c.Poll(st, keys, 0.016); eff.ApplyCapture {
		t.Errorf("held F1 should not toggle again")
	}
	keys[keyF1] = false
	c.Poll(st, keys, 0.016)
	keys[keyF1] = true
	c.Poll(st, keys, 0.016)
	if !st.MouseCapture {
		t.Errorf("second F1 press should capture again")
	}
}

func TestPollQuitAndReset(t *testing.T) {
	c, st := newTestController()
	st.Camera.Position = mgl32.Vec3{100, 100, 100}

	eff := c.Poll(st, fakeKeys{keyM: true}, 0.016)
	if eff.Quit {
		t.Errorf("M should not quit")
	}
	if st.Camera.Position != scene.ResetCameraPosition {
		t.Errorf("reset: expected %v, got %v", scene.ResetCameraPosition, st.Camera.Position)
	}

	if eff = c.Poll(st, fakeKeys{keyEsc: true}, 0.016); !eff.Quit {
		t.Errorf("Escape should quit")
	}
}

func TestPollMovement(t *testing.T) {
	c, st := newTestController()
	start := st.Camera.Position

	c.Poll(st, fakeKeys{keyUp: true}, 1)
	want := start.Add(st.Camera.Front.Mul(st.Camera.MovementSpeed))
	if !approxVec(st.Camera.Position, want) {
		t.Errorf("forward: expected %v, got %v", want, st.Camera.Position)
	}

	c.Poll(st, fakeKeys{keyDown: true}, 1)
	if !approxVec(st.Camera.Position, start) {
		t.Errorf("backward: expected %v, got %v", start, st.Camera.Position)
	}
}
