package renderer

import (
	"github.com/df07/go-bucket-raytracer/pkg/core"
)

// Output receives finished buckets. All calls for one render come from a
// single goroutine in order: Begin, then BeginBucket and PutBucket for each
// bucket, then End. BeginBucket calls for several buckets may precede their
// PutBucket calls while they render concurrently.
type Output interface {
	Begin(width, height int) error
	BeginBucket(b Bucket) error
	// PutBucket delivers pixels[row][col] for the bucket, rows top to
	// bottom, in display space with components in [0, 1]
	PutBucket(b Bucket, pixels [][]core.Vec3) error
	End() error
}

// MemoryOutput keeps the whole image in memory
type MemoryOutput struct {
	Width, Height int
	Pixels        [][]core.Vec3 // Pixels[y][x], top row first
	Started       []Bucket      // BeginBucket order
	Finished      []Bucket      // PutBucket order
	Ended         bool
}

// NewMemoryOutput creates an empty in-memory output
func NewMemoryOutput() *MemoryOutput {
	return &MemoryOutput{}
}

func (m *MemoryOutput) Begin(width, height int) error {
	m.Width, m.Height = width, height
	m.Pixels = make([][]core.Vec3, height)
	for y := range m.Pixels {
		m.Pixels[y] = make([]core.Vec3, width)
	}
	m.Started = m.Started[:0]
	m.Finished = m.Finished[:0]
	m.Ended = false
	return nil
}

func (m *MemoryOutput) BeginBucket(b Bucket) error {
	m.Started = append(m.Started, b)
	return nil
}

func (m *MemoryOutput) PutBucket(b Bucket, pixels [][]core.Vec3) error {
	for row := range pixels {
		copy(m.Pixels[b.Y+row][b.X:b.X+b.Width], pixels[row])
	}
	m.Finished = append(m.Finished, b)
	return nil
}

func (m *MemoryOutput) End() error {
	m.Ended = true
	return nil
}

// At returns the pixel at column x, row y (0 is the top row)
func (m *MemoryOutput) At(x, y int) core.Vec3 {
	return m.Pixels[y][x]
}
