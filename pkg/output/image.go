// Package output provides renderer outputs that encode the finished image.
package output

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/df07/go-bucket-raytracer/pkg/core"
	"github.com/df07/go-bucket-raytracer/pkg/renderer"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format is an encoding for the finished image
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	PPM  Format = "ppm"
)

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".ppm":
		return PPM, nil
	}
	return "", errors.Wrapf(ErrUnsupportedFormat, "%q", path)
}

// New returns the output for the path's format
func New(path string) (renderer.Output, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	if format == PPM {
		return NewPPMFile(path), nil
	}
	return &ImageOutput{Path: path, Format: format, Quality: 95}, nil
}

// toRGBA converts a display-space color in [0,1] to 8 bits per channel
func toRGBA(c core.Vec3) color.RGBA {
	c = c.Clamp(0, 1)
	return color.RGBA{
		R: uint8(255.99 * c.X),
		G: uint8(255.99 * c.Y),
		B: uint8(255.99 * c.Z),
		A: 255,
	}
}

// canvas accumulates buckets into an RGBA image
type canvas struct {
	img *image.RGBA
}

func (c *canvas) Begin(width, height int) error {
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	return nil
}

func (c *canvas) BeginBucket(b renderer.Bucket) error {
	return nil
}

func (c *canvas) PutBucket(b renderer.Bucket, pixels [][]core.Vec3) error {
	for row, line := range pixels {
		for col, p := range line {
			c.img.SetRGBA(b.X+col, b.Y+row, toRGBA(p))
		}
	}
	return nil
}

// Image returns the image assembled so far
func (c *canvas) Image() *image.RGBA {
	return c.img
}

// ImageOutput writes a PNG or JPEG file when the render ends
type ImageOutput struct {
	canvas
	Path    string
	Format  Format
	Quality int // JPEG quality
}

func (o *ImageOutput) End() error {
	f, err := os.Create(o.Path)
	if err != nil {
		return errors.Wrap(err, "create image file")
	}

	switch o.Format {
	case JPEG:
		err = jpeg.Encode(f, o.img, &jpeg.Options{Quality: o.Quality})
	default:
		err = png.Encode(f, o.img)
	}
	if err != nil {
		f.Close()
		return errors.Wrapf(err, "encode %s", o.Format)
	}
	return errors.Wrap(f.Close(), "close image file")
}
