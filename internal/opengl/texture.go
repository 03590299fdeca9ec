package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"beach-renderer/scene"
)

// formatFor maps a channel count to the GL pixel format.
func formatFor(channels int) (uint32, error) {
	switch channels {
	case 1:
		return gl.RED, nil
	case 3:
		return gl.RGB, nil
	case 4:
		return gl.RGBA, nil
	}
	return 0, fmt.Errorf("unsupported channel count %d", channels)
}

// UploadTexture uploads a scene.Texture to the GPU and sets its GLID field.
// Call this from the main goroutine (OpenGL context must be current).
// Textures with alpha clamp to the edge so sprite borders do not bleed;
// the rest repeat.
func UploadTexture(tex *scene.Texture) error {
	if tex == nil {
		return fmt.Errorf("nil texture")
	}
	if tex.GLID != 0 {
		return nil
	}
	if len(tex.Pixels) == 0 {
		return fmt.Errorf("texture %q has no pixel data", tex.Name)
	}
	format, err := formatFor(tex.Channels)
	if err != nil {
		return fmt.Errorf("texture %q: %w", tex.Name, err)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		int32(format),
		int32(tex.Width),
		int32(tex.Height),
		0,
		format,
		gl.UNSIGNED_BYTE,
		unsafe.Pointer(&tex.Pixels[0]),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	wrap := int32(gl.REPEAT)
	if tex.HasAlpha() {
		wrap = gl.CLAMP_TO_EDGE
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	tex.GLID = id
	return nil
}

// BindTexture binds an uploaded texture to the given texture unit.
func BindTexture(unit uint32, tex *scene.Texture) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	var id uint32
	if tex != nil {
		id = tex.GLID
	}
	gl.BindTexture(gl.TEXTURE_2D, id)
}

// DeleteTexture frees a previously uploaded GPU texture and zeroes its GLID.
func DeleteTexture(tex *scene.Texture) {
	if tex == nil || tex.GLID == 0 {
		return
	}
	gl.DeleteTextures(1, &tex.GLID)
	tex.GLID = 0
}

// UploadCubemap uploads six faces in +X, -X, +Y, -Y, +Z, -Z order and
// returns the cubemap texture ID.
func UploadCubemap(faces [6]*scene.Texture) (uint32, error) {
	for i, f := range faces {
		if f == nil || len(f.Pixels) == 0 {
			return 0, fmt.Errorf("cubemap face %d has no pixel data", i)
		}
		if _, err := formatFor(f.Channels); err != nil {
			return 0, fmt.Errorf("cubemap face %d: %w", i, err)
		}
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	for i, f := range faces {
		format, _ := formatFor(f.Channels)
		gl.TexImage2D(
			gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i),
			0,
			int32(format),
			int32(f.Width),
			int32(f.Height),
			0,
			format,
			gl.UNSIGNED_BYTE,
			unsafe.Pointer(&f.Pixels[0]),
		)
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return id, nil
}
