package graphics

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// AssetLoadError reports an image that could not be opened or decoded.
type AssetLoadError struct {
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("failed to load asset %q: %v", e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error { return e.Err }

// DecodeImage reads an image file into tightly packed RGBA rows, top row first.
func DecodeImage(path string) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &AssetLoadError{Path: path, Err: err}
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, &AssetLoadError{Path: path, Err: err}
	}

	// Decoders hand back YCbCr, NRGBA, paletted and so on; the upload wants R,G,B,A bytes.
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(rgba, image.Point{}, img, b, draw.Src, nil)

	Logger().Debug("image decoded", "path", path, "format", format, "width", b.Dx(), "height", b.Dy())
	return rgba, nil
}

// Texture is an immutable 2D texture with linear filtering.
type Texture struct {
	ID     uint32
	Width  int
	Height int
}

// LoadTexture decodes path and uploads it as a single-level texture. No GL
// object is created if decoding fails.
func LoadTexture(path string) (*Texture, error) {
	rgba, err := DecodeImage(path)
	if err != nil {
		return nil, err
	}
	t := NewTexture(rgba)
	Logger().Info("texture loaded", "path", path, "id", t.ID, "width", t.Width, "height", t.Height)
	return t, nil
}

// NewTexture uploads pixels as an RGBA8 texture. pixels may be dropped afterwards.
func NewTexture(pixels *image.RGBA) *Texture {
	size := pixels.Rect.Size()
	t := &Texture{Width: size.X, Height: size.Y}

	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAX_LEVEL, 0)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA8,
		int32(size.X),
		int32(size.Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(pixels.Pix),
	)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t
}

// Bind binds the texture to unit 0.
func (t *Texture) Bind() {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Delete releases the texture. Safe to call twice.
func (t *Texture) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}
