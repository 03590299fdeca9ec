// Package config holds the startup settings of the beach renderer. Every field
// has a default; an optional YAML file may override any subset of them.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks for overrides when run from the repo root.
const DefaultPath = "resources/config.yaml"

type Config struct {
	Window    WindowConfig `yaml:"window"`
	Assets    AssetsConfig `yaml:"assets"`
	Camera    CameraConfig `yaml:"camera"`
	StateFile string       `yaml:"state_file"`
	LogLevel  string       `yaml:"log_level"`
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
	VSync     bool   `yaml:"vsync"`

	// Fullscreen opens the window on the primary monitor.
	Fullscreen bool `yaml:"fullscreen"`
}

// AssetsConfig lists the directories overlaid into the asset file system
// that shaders, models and textures are read from.
type AssetsConfig struct {
	Roots []string `yaml:"roots"`
}

type CameraConfig struct {
	Sensitivity float32 `yaml:"sensitivity"`
	Speed       float32 `yaml:"speed"`
	ZoomMin     float32 `yaml:"zoom_min"`
	ZoomMax     float32 `yaml:"zoom_max"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     800,
			Height:    600,
			Title:     "LearnOpenGL",
			Resizable: true,
			VSync:     true,
		},
		Assets: AssetsConfig{
			Roots: []string{"resources"},
		},
		Camera: CameraConfig{
			Sensitivity: 0.1,
			Speed:       2.5,
			ZoomMin:     1,
			ZoomMax:     45,
		},
		StateFile: "resources/program_state.txt",
		LogLevel:  "info",
	}
}

// Load reads overrides from path. A missing file is not an error and yields
// the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse applies YAML overrides on top of the defaults and validates the
// result. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decode yaml")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return errors.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case len(c.Assets.Roots) == 0:
		return errors.New("at least one asset root is required")
	case c.StateFile == "":
		return errors.New("state_file must not be empty")
	case c.Camera.Sensitivity <= 0:
		return errors.Errorf("camera sensitivity %v must be positive", c.Camera.Sensitivity)
	case c.Camera.Speed < 0:
		return errors.Errorf("camera speed %v must not be negative", c.Camera.Speed)
	case c.Camera.ZoomMin <= 0 || c.Camera.ZoomMin >= c.Camera.ZoomMax:
		return errors.Errorf("zoom band [%v, %v] is invalid", c.Camera.ZoomMin, c.Camera.ZoomMax)
	case c.Camera.ZoomMax >= 180:
		return errors.Errorf("zoom_max %v must be below 180 degrees", c.Camera.ZoomMax)
	}
	return nil
}
