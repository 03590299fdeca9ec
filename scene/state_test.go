package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	. "github.com/smartystreets/goconvey/convey"
)

func TestProgramStatePersistence(t *testing.T) {
	Convey("Given a program state and a state file path", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "program_state.txt")
		st := NewProgramState()

		Convey("a fresh state starts at the default camera position", func() {
			So(st.Camera.Position, ShouldResemble, DefaultCameraPosition)
			So(st.ClearColor, ShouldResemble, mgl32.Vec3{})
			So(st.MouseCapture, ShouldBeTrue)
			So(st.Blinn, ShouldBeFalse)
		})

		Convey("loading a nonexistent file keeps the defaults without error", func() {
			So(st.Load(filepath.Join(dir, "missing.txt")), ShouldBeNil)
			So(st.Camera.Position, ShouldResemble, DefaultCameraPosition)
			So(st.Camera.Front, ShouldResemble, NewCamera(DefaultCameraPosition).Front)
		})

		Convey("save then load reproduces every persisted value exactly", func() {
			st.ClearColor = mgl32.Vec3{0.1, 0.2, 0.3}
			st.Camera.Position = mgl32.Vec3{1.5, -2.25, 1e-7}
			st.Camera.ProcessMouseMovement(123.4, -56.7)
			So(st.Save(path), ShouldBeNil)

			loaded := NewProgramState()
			So(loaded.Load(path), ShouldBeNil)
			So(loaded.ClearColor, ShouldResemble, st.ClearColor)
			So(loaded.Camera.Position, ShouldResemble, st.Camera.Position)
			So(loaded.Camera.Front, ShouldResemble, st.Camera.Front)

			Convey("and the camera angles follow the loaded front", func() {
				So(loaded.Camera.Yaw, ShouldAlmostEqual, st.Camera.Yaw, 1e-3)
				So(loaded.Camera.Pitch, ShouldAlmostEqual, st.Camera.Pitch, 1e-3)
			})
		})

		Convey("a tiny but non-zero front survives the round trip", func() {
			st.Camera.SetFront(mgl32.Vec3{1e-30, 0, 0})
			So(st.Camera.Front, ShouldResemble, mgl32.Vec3{1e-30, 0, 0})
			So(st.Save(path), ShouldBeNil)

			loaded := NewProgramState()
			So(loaded.Load(path), ShouldBeNil)
			So(loaded.Camera.Front, ShouldResemble, mgl32.Vec3{1e-30, 0, 0})
			So(loaded.Camera.Yaw, ShouldEqual, float32(0))
			So(loaded.Camera.Pitch, ShouldEqual, float32(0))
		})

		Convey("the file holds nine newline-separated values", func() {
			So(st.Save(path), ShouldBeNil)
			data, err := os.ReadFile(path)
			So(err, ShouldBeNil)
			lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
			So(len(lines), ShouldEqual, 9)
			So(lines[3], ShouldEqual, "-2.3")
			So(lines[4], ShouldEqual, "0.5")
			So(lines[5], ShouldEqual, "5.9")
		})

		Convey("saving creates missing parent directories", func() {
			nested := filepath.Join(dir, "a", "b", "state.txt")
			So(st.Save(nested), ShouldBeNil)
			_, err := os.Stat(nested)
			So(err, ShouldBeNil)
		})

		malformed := []struct{ name, content string }{
			{"truncated", "0\n0\n0\n1\n2\n3\n0\n0\n"},
			{"too long", "0\n0\n0\n1\n2\n3\n0\n0\n-1\n7\n"},
			{"non-numeric", "0\n0\n0\n1\nabc\n3\n0\n0\n-1\n"},
			{"not finite", "0\n0\n0\n1\n2\nNaN\n0\n0\n-1\n"},
			{"infinite", "0\n0\n+Inf\n1\n2\n3\n0\n0\n-1\n"},
			{"facing nowhere", "0\n0\n0\n1\n2\n3\n0\n0\n0\n"},
			{"empty", ""},
			{"out of range", "0\n0\n0\n1\n2\n1e39\n0\n0\n-1\n"},
		}
		for _, tc := range malformed {
			name, content := tc.name, tc.content
			Convey("a file that is "+name+" is rejected and the defaults are kept", func() {
				So(os.WriteFile(path, []byte(content), 0o644), ShouldBeNil)
				err := st.Load(path)
				So(err, ShouldNotBeNil)
				So(errors.Is(err, ErrMalformedState), ShouldBeTrue)
				So(st.ClearColor, ShouldResemble, mgl32.Vec3{})
				So(st.Camera.Position, ShouldResemble, DefaultCameraPosition)
			})
		}

		Convey("whitespace between values is not significant", func() {
			So(os.WriteFile(path, []byte("0.5 0.25 0\n1 2 3\n\n0 0 -1"), 0o644), ShouldBeNil)
			So(st.Load(path), ShouldBeNil)
			So(st.ClearColor, ShouldResemble, mgl32.Vec3{0.5, 0.25, 0})
			So(st.Camera.Position, ShouldResemble, mgl32.Vec3{1, 2, 3})
			So(st.Camera.Front, ShouldResemble, mgl32.Vec3{0, 0, -1})
		})

		Convey("an unreadable path is an error but not a malformed file", func() {
			err := st.Load(dir)
			So(err, ShouldNotBeNil)
			So(errors.Is(err, ErrMalformedState), ShouldBeFalse)
		})
	})
}

func TestProgramStateElapsed(t *testing.T) {
	st := NewProgramState()
	if got := st.Elapsed(10); got != 0 {
		t.Errorf("Elapsed before start: expected 0, got %v", got)
	}
	st.GameStarted = true
	st.StartTime = 4
	if got := st.Elapsed(10); got != 6 {
		t.Errorf("Elapsed: expected 6, got %v", got)
	}
}
