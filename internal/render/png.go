package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// Image wraps a packed RGB frame of size w*h as an *image.RGBA.
func Image(rgb []byte, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 || len(rgb) != 3*w*h {
		return nil, fmt.Errorf("frame of %d bytes does not match %dx%d", len(rgb), w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	FillRGBA(img.Pix, rgb)
	return img, nil
}

// WritePNG encodes a packed RGB frame to path.
func WritePNG(path string, rgb []byte, w, h int) error {
	img, err := Image(rgb, w, h)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
