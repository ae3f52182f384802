package material

import (
	"github.com/df07/go-bucket-raytracer/pkg/core"
)

// NewCheckerboardImage creates an image texture holding a 2D checkerboard.
// Unlike CheckerTexture it follows the surface UV mapping.
func NewCheckerboardImage(width, height, checkSize int, color1, color2 core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			checkX := x / checkSize
			checkY := y / checkSize

			color := color1
			if (checkX+checkY)%2 != 0 {
				color = color2
			}
			pixels[y*width+x] = color
		}
	}

	return NewImageTexture(width, height, pixels)
}

// NewGradientImage creates a vertical gradient from color1 (top) to color2 (bottom)
func NewGradientImage(width, height int, color1, color2 core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		t := float64(y) / float64(max(1, height-1))
		color := color1.Multiply(1.0 - t).Add(color2.Multiply(t))

		for x := 0; x < width; x++ {
			pixels[y*width+x] = color
		}
	}

	return NewImageTexture(width, height, pixels)
}
