// Package loaders decodes image files for use as surface textures.
package loaders

import (
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/pkg/errors"

	"github.com/df07/go-bucket-raytracer/pkg/core"
	"github.com/df07/go-bucket-raytracer/pkg/material"
)

// ImageData is a decoded image as a row-major Vec3 grid, top row first
type ImageData struct {
	Width  int
	Height int
	Format string
	Pixels []core.Vec3
}

// LoadImage decodes a PNG or JPEG file into linear [0,1] channel values
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open image")
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "decode image %s", filename)
	}

	return fromImage(img, format), nil
}

// LoadTexture decodes an image file straight into an image lookup texture
func LoadTexture(filename string) (*material.ImageTexture, error) {
	data, err := LoadImage(filename)
	if err != nil {
		return nil, err
	}
	if data.Width == 0 || data.Height == 0 {
		return nil, errors.Errorf("image %s has no pixels", filename)
	}
	return material.NewImageTexture(data.Width, data.Height, data.Pixels), nil
}

func fromImage(img image.Image, format string) *ImageData {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// RGBA channels are in [0, 65535]
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			pixels[y*width+x] = core.NewVec3(float64(r)/65535, float64(g)/65535, float64(b)/65535)
		}
	}

	return &ImageData{Width: width, Height: height, Format: format, Pixels: pixels}
}
