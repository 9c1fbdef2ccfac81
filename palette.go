package plot

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Palette is an ordered list of colors referenced by index.
type Palette []RGBA

// lookup returns the color at index i. With wrap set, indices outside the
// palette wrap modulo its length, negative ones included.
func (p Palette) lookup(i int, wrap bool) (RGBA, error) {
	n := len(p)
	if n == 0 {
		return RGBA{}, ErrEmptyPalette
	}
	if i >= 0 && i < n {
		return p[i], nil
	}
	if !wrap {
		return RGBA{}, fmt.Errorf("%w: %d not in [0, %d)", ErrPaletteIndex, i, n)
	}
	i %= n
	if i < 0 {
		i += n
	}
	return p[i], nil
}

// ParsePalette builds a palette from hex color strings.
func ParsePalette(colors ...string) (Palette, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyPalette
	}
	p := make(Palette, len(colors))
	for i, s := range colors {
		c, err := Hex(s)
		if err != nil {
			return nil, fmt.Errorf("plot: palette entry %d: %w", i, err)
		}
		p[i] = c
	}
	return p, nil
}

// paletteFile is the YAML layout read by ReadPalette:
//
//	colors:
//	  - "#000000"
//	  - "#ffffff"
type paletteFile struct {
	Colors []string `yaml:"colors"`
}

// ReadPalette decodes a YAML palette document.
func ReadPalette(r io.Reader) (Palette, error) {
	var f paletteFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyPalette
		}
		return nil, fmt.Errorf("plot: decode palette: %w", err)
	}
	return ParsePalette(f.Colors...)
}

// LoadPalette reads a YAML palette file.
func LoadPalette(filename string) (Palette, error) {
	f, err := os.Open(filename) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("plot: load palette: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return ReadPalette(f)
}
