package loaders

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/df07/go-bucket-raytracer/pkg/core"
)

func writeTestPNG(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.png")

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, A: 255})
	img.Set(0, 1, color.RGBA{G: 255, A: 255})
	img.Set(1, 1, color.RGBA{B: 255, A: 255})

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	return path
}

func TestLoadImage(t *testing.T) {
	data, err := LoadImage(writeTestPNG(t))
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if data.Width != 2 || data.Height != 2 || len(data.Pixels) != 4 {
		t.Fatalf("Expected 2x2 image with 4 pixels, got %dx%d with %d", data.Width, data.Height, len(data.Pixels))
	}
	if data.Format != "png" {
		t.Errorf("Expected format png, got %q", data.Format)
	}

	expected := []core.Vec3{
		core.NewVec3(1, 1, 1),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1),
	}
	for i, want := range expected {
		got := data.Pixels[i]
		if math.Abs(got.X-want.X) > 0.01 || math.Abs(got.Y-want.Y) > 0.01 || math.Abs(got.Z-want.Z) > 0.01 {
			t.Errorf("Pixel %d: expected %v, got %v", i, want, got)
		}
	}
}

func TestLoadTexture(t *testing.T) {
	tex, err := LoadTexture(writeTestPNG(t))
	if err != nil {
		t.Fatalf("LoadTexture failed: %v", err)
	}

	// v=1 is the top row of the image
	got := tex.Value(0.75, 1, core.Vec3{})
	if math.Abs(got.X-1) > 0.01 || got.Y > 0.01 {
		t.Errorf("Expected red at top right, got %v", got)
	}
}

func TestLoadImageErrors(t *testing.T) {
	_, err := LoadImage("nonexistent.png")
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
	if !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("Expected not-exist cause, got %v", err)
	}

	garbage := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if _, err := LoadTexture(garbage); err == nil {
		t.Error("Expected decode error, got nil")
	}
}
