package plot

import (
	"fmt"

	"github.com/gogpu/plot/gpucore"
)

// Texture is an image uploaded to the window's device. Textures created by
// a window are destroyed when it closes.
type Texture struct {
	id     gpucore.TextureID
	width  int
	height int
	name   string
}

// Size returns the texture size in texels.
func (t *Texture) Size() (int, int) {
	return t.width, t.height
}

// Name returns the file name a cached texture was loaded from, or "".
func (t *Texture) Name() string {
	return t.name
}

// NewTexture uploads 8-bit pixel data, top row first. channels selects the
// layout: 1 gray, 2 gray+alpha, 3 RGB, 4 RGBA.
func (w *Window) NewTexture(width, height, channels int, data []byte) (*Texture, error) {
	rgba, err := expand(width, height, channels, len(data), func(i int) uint8 { return data[i] })
	if err != nil {
		return nil, err
	}
	return w.newTexture("texture", width, height, rgba)
}

// NewTextureFloat uploads float pixel data in [0, 1], top row first.
// Values outside the range are clamped. channels is as for NewTexture.
func (w *Window) NewTextureFloat(width, height, channels int, data []float32) (*Texture, error) {
	rgba, err := expand(width, height, channels, len(data), func(i int) uint8 { return unitByte(data[i]) })
	if err != nil {
		return nil, err
	}
	return w.newTexture("texture", width, height, rgba)
}

// ReleaseTexture destroys a texture created by NewTexture or NewTextureFloat.
// Cached file textures stay alive until Close.
func (w *Window) ReleaseTexture(t *Texture) {
	if t == nil || t.name != "" {
		return
	}
	if _, ok := w.owned[t.id]; !ok {
		return
	}
	delete(w.owned, t.id)
	w.device.DestroyTexture(t.id)
}

func (w *Window) newTexture(label string, width, height int, rgba []byte) (*Texture, error) {
	if w.closed {
		return nil, ErrClosed
	}
	id, err := w.device.CreateTexture(gpucore.TextureDesc{Label: label, Width: width, Height: height}, rgba)
	if err != nil {
		return nil, fmt.Errorf("plot: create texture: %w", err)
	}
	t := &Texture{id: id, width: width, height: height}
	w.owned[id] = t
	return t, nil
}

// expand converts width*height pixels of 1 to 4 channels to RGBA8.
func expand(width, height, channels, n int, at func(int) uint8) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: texture %dx%d", ErrInvalidSize, width, height)
	}
	if channels < 1 || channels > 4 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidSize, channels)
	}
	if n != width*height*channels {
		return nil, fmt.Errorf("%w: %d values for %dx%dx%d", ErrBufferSize, n, width, height, channels)
	}

	out := make([]byte, width*height*4)
	for p := 0; p < width*height; p++ {
		s, d := p*channels, p*4
		switch channels {
		case 1:
			g := at(s)
			out[d], out[d+1], out[d+2], out[d+3] = g, g, g, 0xFF
		case 2:
			g := at(s)
			out[d], out[d+1], out[d+2], out[d+3] = g, g, g, at(s+1)
		case 3:
			out[d], out[d+1], out[d+2], out[d+3] = at(s), at(s+1), at(s+2), 0xFF
		case 4:
			out[d], out[d+1], out[d+2], out[d+3] = at(s), at(s+1), at(s+2), at(s+3)
		}
	}
	return out, nil
}

func unitByte(v float32) uint8 {
	switch {
	case !(v > 0): // negative or NaN
		return 0
	case v >= 1:
		return 0xFF
	}
	return uint8(v*255 + 0.5)
}
