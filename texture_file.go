package plot

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// LoadTexture loads an image file as a texture. Each filename is read once
// per window; later calls return the cached texture even if the file has
// changed. On failure it returns a nil texture and an error wrapping
// ErrTextureLoad, and the window stays usable.
func (w *Window) LoadTexture(filename string) (*Texture, error) {
	if w.closed {
		return nil, ErrClosed
	}
	if t, ok := w.textures[filename]; ok {
		return t, nil
	}

	img, format, err := decodeFile(filename)
	if err != nil {
		Logger().Warn("plot: texture load failed", "file", filename, "err", err)
		return nil, fmt.Errorf("%w: %q: %w", ErrTextureLoad, filename, err)
	}

	b := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)

	t, err := w.newTexture(filename, b.Dx(), b.Dy(), nrgba.Pix)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrTextureLoad, filename, err)
	}
	// Cached textures live in w.textures only.
	delete(w.owned, t.id)
	t.name = filename
	w.textures[filename] = t
	Logger().Debug("plot: texture loaded", "file", filename, "format", format, "width", b.Dx(), "height", b.Dy())
	return t, nil
}

func decodeFile(filename string) (image.Image, string, error) {
	f, err := os.Open(filename) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, "", err
	}
	defer func() {
		_ = f.Close()
	}()
	return image.Decode(f)
}
