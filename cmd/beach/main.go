package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"beach-renderer/config"
	"beach-renderer/core"
	"beach-renderer/input"
	"beach-renderer/internal/logger"
	"beach-renderer/internal/opengl"
	"beach-renderer/renderer"
	"beach-renderer/scene"
)

var bindings = input.Bindings{
	Quit:          core.KeyEscape,
	ToggleShading: core.KeyB,
	ResetCamera:   core.KeyM,
	StartGame:     core.KeyS,
	ToggleCapture: core.KeyF1,
	Forward:       core.KeyUp,
	Backward:      core.KeyDown,
	Left:          core.KeyLeft,
	Right:         core.KeyRight,
}

func main() {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error("beach renderer failed", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	st := scene.NewProgramState()
	cam := st.Camera
	cam.MouseSensitivity = cfg.Camera.Sensitivity
	cam.MovementSpeed = cfg.Camera.Speed
	cam.SetZoomBand(cfg.Camera.ZoomMin, cfg.Camera.ZoomMax)
	if err := st.Load(cfg.StateFile); err != nil {
		log.Warn("state file ignored, using defaults", zap.String("path", cfg.StateFile), zap.Error(err))
	}

	window, err := core.NewWindow(core.WindowConfig{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Title:      cfg.Window.Title,
		Resizable:  cfg.Window.Resizable,
		VSync:      cfg.Window.VSync,
		Fullscreen: cfg.Window.Fullscreen,
	})
	if err != nil {
		return errors.Wrap(err, "create window")
	}
	defer window.Destroy()

	version, err := opengl.Init()
	if err != nil {
		return errors.WithMessage(err, "init OpenGL")
	}
	log.Info("OpenGL context ready", zap.String("version", version))

	fsys, err := scene.NewAssetFS(cfg.Assets.Roots...)
	if err != nil {
		return err
	}

	r, err := renderer.New(fsys, renderer.DefaultAssets(), log)
	if err != nil {
		return err
	}
	defer r.Destroy()

	fbW, fbH := window.GetFramebufferSize()
	r.Resize(fbW, fbH)

	ctrl := input.NewController(bindings, log)
	apply := func(eff input.Effects) {
		if eff.ApplyCapture {
			window.SetCursorCaptured(st.MouseCapture)
		}
		if eff.Quit {
			window.SetShouldClose(true)
		}
	}

	window.SetFramebufferSizeCallback(func(w, h int) {
		fbW, fbH = w, h
		r.Resize(w, h)
	})
	window.SetCursorPosCallback(func(x, y float64) {
		ctrl.CursorMoved(st, x, y)
	})
	window.SetScrollCallback(func(_, y float64) {
		ctrl.Scrolled(st, y)
	})
	window.SetKeyCallback(func(key, action int) {
		if a, ok := keyAction(action); ok {
			apply(ctrl.KeyEvent(st, key, a, window.Time()))
		}
	})
	window.SetCursorCaptured(st.MouseCapture)

	log.Info("entering render loop")
	last := window.Time()
	for !window.ShouldClose() {
		now := window.Time()
		dt := float32(now - last)
		last = now

		apply(ctrl.Poll(st, window, dt))

		aspect := float32(1)
		if fbW > 0 && fbH > 0 {
			aspect = float32(fbW) / float32(fbH)
		}
		frame := scene.PlanFrame(st, aspect, now)
		r.Render(frame)
		log.Debug("frame",
			zap.String("shading", frame.ShadingName()),
			zap.Float64("elapsed", st.Elapsed(now)))

		window.SwapBuffers()
		window.PollEvents()
	}

	if err := st.Save(cfg.StateFile); err != nil {
		return errors.Wrap(err, "save state")
	}
	log.Info("state saved", zap.String("path", cfg.StateFile))
	return nil
}

// keyAction translates a window key action into the controller's.
func keyAction(action int) (input.Action, bool) {
	switch action {
	case core.ActionPress:
		return input.Press, true
	case core.ActionRelease:
		return input.Release, true
	case core.ActionRepeat:
		return input.Repeat, true
	}
	return 0, false
}
