package config

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	Convey("Given a config path", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")

		Convey("a missing file yields the defaults", func() {
			cfg, err := Load(path)
			So(err, ShouldBeNil)
			So(cfg, ShouldResemble, Default())
		})

		Convey("a partial file overrides only the named keys", func() {
			data := "window:\n  width: 1024\ncamera:\n  sensitivity: 0.25\nlog_level: debug\n"
			So(os.WriteFile(path, []byte(data), 0o644), ShouldBeNil)

			cfg, err := Load(path)
			So(err, ShouldBeNil)
			So(cfg.Window.Width, ShouldEqual, 1024)
			So(cfg.Window.Height, ShouldEqual, 600)
			So(cfg.Window.Title, ShouldEqual, "LearnOpenGL")
			So(cfg.Camera.Sensitivity, ShouldEqual, float32(0.25))
			So(cfg.Camera.ZoomMax, ShouldEqual, float32(45))
			So(cfg.LogLevel, ShouldEqual, "debug")
			So(cfg.StateFile, ShouldEqual, "resources/program_state.txt")
		})

		Convey("asset roots are replaced as a whole", func() {
			So(os.WriteFile(path, []byte("assets:\n  roots: [mods, resources]\n"), 0o644), ShouldBeNil)
			cfg, err := Load(path)
			So(err, ShouldBeNil)
			So(cfg.Assets.Roots, ShouldResemble, []string{"mods", "resources"})
		})

		Convey("an empty file yields the defaults", func() {
			So(os.WriteFile(path, nil, 0o644), ShouldBeNil)
			cfg, err := Load(path)
			So(err, ShouldBeNil)
			So(cfg, ShouldResemble, Default())
		})

		Convey("unknown keys are rejected", func() {
			So(os.WriteFile(path, []byte("windw:\n  width: 3\n"), 0o644), ShouldBeNil)
			_, err := Load(path)
			So(err, ShouldNotBeNil)
		})

		Convey("malformed yaml is rejected", func() {
			So(os.WriteFile(path, []byte("window: [1, 2\n"), 0o644), ShouldBeNil)
			_, err := Load(path)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Validate", t, func() {
		Convey("accepts the defaults", func() {
			So(Default().Validate(), ShouldBeNil)
		})

		Convey("rejects a non-positive window size", func() {
			cfg := Default()
			cfg.Window.Height = 0
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("rejects an inverted zoom band", func() {
			cfg := Default()
			cfg.Camera.ZoomMin, cfg.Camera.ZoomMax = 50, 10
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("rejects zero sensitivity", func() {
			cfg := Default()
			cfg.Camera.Sensitivity = 0
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("rejects an empty root list", func() {
			cfg := Default()
			cfg.Assets.Roots = nil
			So(cfg.Validate(), ShouldNotBeNil)
		})
	})
}
