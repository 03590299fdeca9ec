package scene

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// ErrMalformedState is returned by Load when the state file exists but does
// not hold exactly nine finite numbers with a non-zero front vector.
var ErrMalformedState = errors.New("malformed program state")

// stateFields is the number of values in a state file: clear color (r g b),
// camera position (x y z) and camera front (x y z).
const stateFields = 9

var (
	// DefaultCameraPosition is where the camera starts when no state file
	// has been saved yet.
	DefaultCameraPosition = mgl32.Vec3{-2.3, 0.5, 5.9}
	// ResetCameraPosition is where the reset key puts the camera.
	ResetCameraPosition = mgl32.Vec3{-2.32, 0.54, 5.87}
)

// ProgramState is everything the input handlers and the renderer share.
// Only ClearColor, Camera.Position and Camera.Front survive a restart.
type ProgramState struct {
	ClearColor mgl32.Vec3
	Camera     *Camera

	// MouseCapture gates camera orientation updates from the cursor.
	MouseCapture bool
	// Blinn selects Blinn-Phong over Phong for the floor.
	Blinn bool

	GameStarted bool
	StartTime   float64
}

func NewProgramState() *ProgramState {
	return &ProgramState{
		Camera:       NewCamera(DefaultCameraPosition),
		MouseCapture: true,
	}
}

// Elapsed reports seconds since the game was started, or zero before that.
func (s *ProgramState) Elapsed(now float64) float64 {
	if !s.GameStarted {
		return 0
	}
	return now - s.StartTime
}

// Save writes the persistent fields to path, one value per line,
// overwriting any previous file.
func (s *ProgramState) Save(path string) error {
	var buf bytes.Buffer
	for _, v := range s.persistent() {
		buf.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
		buf.WriteByte('\n')
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create state dir %s", dir)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "write state %s", path)
	}
	return nil
}

// Load replaces the persistent fields with the contents of path. A missing
// file leaves the state untouched and is not an error. A file that fails
// validation also leaves the state untouched and returns an error wrapping
// ErrMalformedState; nothing is applied partially.
func (s *ProgramState) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "read state %s", path)
	}

	vals, err := parseState(data)
	if err != nil {
		return errors.Wrapf(err, "state %s", path)
	}

	s.ClearColor = mgl32.Vec3{vals[0], vals[1], vals[2]}
	s.Camera.Position = mgl32.Vec3{vals[3], vals[4], vals[5]}
	s.Camera.SetFront(mgl32.Vec3{vals[6], vals[7], vals[8]})
	return nil
}

func (s *ProgramState) persistent() [stateFields]float32 {
	c, p, f := s.ClearColor, s.Camera.Position, s.Camera.Front
	return [stateFields]float32{c[0], c[1], c[2], p[0], p[1], p[2], f[0], f[1], f[2]}
}

func parseState(data []byte) ([stateFields]float32, error) {
	var vals [stateFields]float32
	fields := strings.Fields(string(data))
	if len(fields) != stateFields {
		return vals, errors.Wrapf(ErrMalformedState, "expected %d values, found %d", stateFields, len(fields))
	}
	for i, tok := range fields {
		v, err := strconv.ParseFloat(tok, 32)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return vals, errors.Wrapf(ErrMalformedState, "value %d: %q is not a finite number", i+1, tok)
		}
		vals[i] = float32(v)
	}
	if vals[6] == 0 && vals[7] == 0 && vals[8] == 0 {
		return vals, errors.Wrap(ErrMalformedState, "camera front is the zero vector")
	}
	return vals, nil
}
