package renderer

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Bucket is a rectangle of the image rendered as one unit of work.
// Y grows downwards from the top row of the image.
type Bucket struct {
	X, Y          int
	Width, Height int
}

func (b Bucket) String() string {
	return fmt.Sprintf("%dx%d@(%d,%d)", b.Width, b.Height, b.X, b.Y)
}

// Pixels returns the number of pixels in the bucket
func (b Bucket) Pixels() int {
	return b.Width * b.Height
}

// Strategy is the order in which buckets are handed out
type Strategy int

const (
	// Spiral starts near the image center and winds outwards
	Spiral Strategy = iota
	// Raster walks rows left to right, top to bottom
	Raster
)

func (s Strategy) String() string {
	switch s {
	case Spiral:
		return "spiral"
	case Raster:
		return "raster"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps "spiral" or "raster" to a Strategy
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "spiral":
		return Spiral, nil
	case "raster", "linear":
		return Raster, nil
	}
	return Spiral, errors.Errorf("unknown bucket strategy %q", name)
}

// CreateBuckets tiles a width x height image with buckets of at most
// bucketWidth x bucketHeight. Full buckets come first in strategy order.
// Partial buckets along the right and bottom edges follow: for raster they
// end each row, for spiral the right strip runs top to bottom, then the
// corner, then the bottom strip right to left.
func CreateBuckets(width, height int, strategy Strategy, bucketWidth, bucketHeight int) []Bucket {
	if width <= 0 || height <= 0 || bucketWidth <= 0 || bucketHeight <= 0 {
		return nil
	}
	if strategy == Raster {
		return rasterBuckets(width, height, bucketWidth, bucketHeight)
	}
	return spiralBuckets(width, height, bucketWidth, bucketHeight)
}

func rasterBuckets(width, height, bw, bh int) []Bucket {
	bucketsX, bucketsY := width/bw, height/bh
	lastX, lastY := width%bw, height%bh
	buckets := make([]Bucket, 0, (bucketsX+1)*(bucketsY+1))

	addRow := func(y, rowHeight int) {
		for x := 0; x < bucketsX; x++ {
			buckets = append(buckets, Bucket{X: x * bw, Y: y * bh, Width: bw, Height: rowHeight})
		}
		if lastX != 0 {
			buckets = append(buckets, Bucket{X: bucketsX * bw, Y: y * bh, Width: lastX, Height: rowHeight})
		}
	}
	for y := 0; y < bucketsY; y++ {
		addRow(y, bh)
	}
	if lastY != 0 {
		addRow(bucketsY, lastY)
	}
	return buckets
}

// subFloor is subtraction clamped at zero
func subFloor(a, b int) int {
	return max(0, a-b)
}

func spiralBuckets(width, height, bw, bh int) []Bucket {
	bucketsX, bucketsY := width/bw, height/bh
	lastX, lastY := width%bw, height%bh
	full := bucketsX * bucketsY
	buckets := make([]Bucket, 0, (bucketsX+1)*(bucketsY+1))

	used := make([][]bool, bucketsY)
	for i := range used {
		used[i] = make([]bool, bucketsX)
	}
	add := func(x, y int) {
		if y < bucketsY && x < bucketsX && !used[y][x] {
			buckets = append(buckets, Bucket{X: x * bw, Y: y * bh, Width: bw, Height: bh})
			used[y][x] = true
		}
	}

	// Each ring runs down its right side, right to left along the bottom,
	// up the left side and left to right along the top, then grows by one
	// bucket on every side. Clamping at zero keeps the ring on the grid.
	sx, sy := bucketsX/2, bucketsY/2
	ringW, ringH := 3, 3
	add(sx, sy)
	sx++
	for len(buckets) < full {
		for y := 0; y < ringH-1; y++ {
			add(sx, sy+y)
		}
		for x := 0; x < ringW-1; x++ {
			add(subFloor(subFloor(sx, x), 1), subFloor(sy+ringH, 2))
		}
		for y := 0; y < ringH-1; y++ {
			add(subFloor(sx+1, ringW), subFloor(subFloor(sy+ringH, 3), y))
		}
		for x := 0; x < ringW-1; x++ {
			add(subFloor(sx+2+x, ringW), subFloor(sy, 1))
		}
		sx++
		sy = subFloor(sy, 1)
		ringW += 2
		ringH += 2
	}

	if lastX != 0 {
		for y := 0; y < bucketsY; y++ {
			buckets = append(buckets, Bucket{X: bucketsX * bw, Y: y * bh, Width: lastX, Height: bh})
		}
	}
	if lastX != 0 && lastY != 0 {
		buckets = append(buckets, Bucket{X: bucketsX * bw, Y: bucketsY * bh, Width: lastX, Height: lastY})
	}
	if lastY != 0 {
		for x := bucketsX - 1; x >= 0; x-- {
			buckets = append(buckets, Bucket{X: x * bw, Y: bucketsY * bh, Width: bw, Height: lastY})
		}
	}
	return buckets
}
