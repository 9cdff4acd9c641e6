package scene

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// Texture holds CPU-side RGBA8 pixel data for one image.
type Texture struct {
	Name   string
	Width  int
	Height int
	// Pixels in RGBA8 format (4 bytes per pixel, row-major, top-to-bottom).
	Pixels []byte
}

// LoadTexture reads a PNG or JPEG file from disk and converts it to RGBA8.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.Set(x, y, img.At(x, y))
		}
	}

	return &Texture{
		Name:   path,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pixels: rgba.Pix,
	}, nil
}
