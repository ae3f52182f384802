package output

import (
	"github.com/df07/go-bucket-raytracer/pkg/core"
	"github.com/df07/go-bucket-raytracer/pkg/log"
	"github.com/df07/go-bucket-raytracer/pkg/renderer"
)

var logger = log.New("output")

// Progress forwards every call to Next and logs completion at each tenth
// of the image
type Progress struct {
	Next renderer.Output

	total, done int
	lastTenth   int
}

// NewProgress wraps next with progress logging
func NewProgress(next renderer.Output) *Progress {
	return &Progress{Next: next}
}

func (p *Progress) Begin(width, height int) error {
	p.total, p.done, p.lastTenth = width*height, 0, 0
	return p.Next.Begin(width, height)
}

func (p *Progress) BeginBucket(b renderer.Bucket) error {
	return p.Next.BeginBucket(b)
}

func (p *Progress) PutBucket(b renderer.Bucket, pixels [][]core.Vec3) error {
	if err := p.Next.PutBucket(b, pixels); err != nil {
		return err
	}
	p.done += b.Pixels()
	if p.total > 0 {
		if tenth := 10 * p.done / p.total; tenth > p.lastTenth {
			p.lastTenth = tenth
			logger.Infof("%d%% of pixels rendered", tenth*10)
		}
	}
	return nil
}

func (p *Progress) End() error {
	return p.Next.End()
}
