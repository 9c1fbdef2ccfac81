package plot

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// writeScreenshot saves frame as PNG with every pixel fully opaque.
func writeScreenshot(filename string, frame *image.RGBA) error {
	img := image.NewRGBA(frame.Rect)
	copy(img.Pix, frame.Pix)
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xFF
	}

	f, err := os.Create(filename) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("plot: screenshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("plot: screenshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("plot: screenshot: %w", err)
	}
	return nil
}
