package scene

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/db47h/ofs"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"go.uber.org/multierr"
)

// Texture holds CPU-side pixel data for a 2D texture or one cubemap face.
// GLID is set by the OpenGL backend after upload; do not access directly.
type Texture struct {
	Name   string
	Width  int
	Height int
	// Channels is 1 (red), 3 (RGB) or 4 (RGBA).
	Channels int
	// Pixels holds Channels bytes per pixel, tightly packed. Rows run
	// bottom-to-top when the texture was loaded flipped, top-to-bottom
	// otherwise.
	Pixels []byte
	// GLID is the OpenGL texture object ID, set by opengl.UploadTexture.
	GLID uint32
}

// HasAlpha reports whether the texture carries an alpha channel.
func (t *Texture) HasAlpha() bool {
	return t.Channels == 4
}

// LoadTexture reads a PNG, JPEG or BMP image from fsys. With flip set the
// rows are reversed so the first row is the bottom of the image, which is
// what OpenGL expects for 2D textures.
func LoadTexture(fsys ofs.FileSystem, name string, flip bool) (*Texture, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "open texture %s", name)
	}
	defer f.Close()
	return DecodeTexture(name, f, flip)
}

// DecodeTexture decodes an image stream into a Texture.
func DecodeTexture(name string, r io.Reader, flip bool) (*Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrapf(err, "decode texture %s", name)
	}
	return NewTextureFromImage(name, img, flip), nil
}

// NewTextureFromImage converts img to tightly packed bytes. Grayscale images
// keep one channel, opaque color images three, everything else four.
func NewTextureFromImage(name string, img image.Image, flip bool) *Texture {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	nrgba, ok := img.(*image.NRGBA)
	if !ok || b.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}

	ch := channelsOf(img)
	pix := make([]byte, 0, w*h*ch)
	for row := 0; row < h; row++ {
		y := row
		if flip {
			y = h - 1 - row
		}
		line := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
		for x := 0; x < w; x++ {
			px := line[x*4 : x*4+4]
			pix = append(pix, px[:ch]...)
		}
	}

	return &Texture{
		Name:     name,
		Width:    w,
		Height:   h,
		Channels: ch,
		Pixels:   pix,
	}
}

func channelsOf(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	case *image.NRGBA, *image.NRGBA64:
		return 4
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}

// NewSolidTexture creates a 1x1 texture with the given RGBA color values (0–255).
func NewSolidTexture(name string, r, g, b, a uint8) *Texture {
	return &Texture{
		Name:     name,
		Width:    1,
		Height:   1,
		Channels: 4,
		Pixels:   []byte{r, g, b, a},
	}
}

// CubemapFaces lists the skybox images in GL face order: +X, -X, +Y, -Y,
// +Z, -Z.
var CubemapFaces = [6]string{
	"textures/PalmTrees/posx.jpg",
	"textures/PalmTrees/negx.jpg",
	"textures/PalmTrees/posy.jpg",
	"textures/PalmTrees/negy.jpg",
	"textures/PalmTrees/posz.jpg",
	"textures/PalmTrees/negz.jpg",
}

// LoadCubemap loads six unflipped faces. Faces that fail are left nil and
// their errors are combined into the returned error; the others are still
// usable.
func LoadCubemap(fsys ofs.FileSystem, faces [6]string) ([6]*Texture, error) {
	var out [6]*Texture
	var errs error
	for i, name := range faces {
		tex, err := LoadTexture(fsys, name, false)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "cubemap face %d", i))
			continue
		}
		out[i] = tex
	}
	return out, errs
}
