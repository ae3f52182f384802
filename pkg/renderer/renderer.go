// Package renderer splits an image into buckets, renders them on a worker
// pool and streams the finished pixels to an Output.
package renderer

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/df07/go-bucket-raytracer/pkg/integrator"
	"github.com/df07/go-bucket-raytracer/pkg/log"
	"github.com/df07/go-bucket-raytracer/pkg/scene"
)

var logger = log.New("renderer")

// Config controls how the image is divided and scheduled
type Config struct {
	BucketWidth  int
	BucketHeight int
	Strategy     Strategy
	NumWorkers   int   // 0 uses one worker per CPU
	Seed         int64 // Seeds every bucket's random generator
}

// DefaultConfig returns 64x64 spiral buckets on all CPUs
func DefaultConfig() Config {
	return Config{
		BucketWidth:  64,
		BucketHeight: 64,
		Strategy:     Spiral,
		NumWorkers:   0,
		Seed:         42,
	}
}

// Validate reports an unusable config
func (c Config) Validate() error {
	if c.BucketWidth <= 0 || c.BucketHeight <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "bucket size %dx%d", c.BucketWidth, c.BucketHeight)
	}
	if c.NumWorkers < 0 {
		return errors.Wrapf(ErrInvalidConfig, "%d workers", c.NumWorkers)
	}
	return nil
}

// Renderer renders a scene bucket by bucket
type Renderer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	config     Config
}

// NewRenderer creates a renderer. A nil integrator selects a path tracer
// configured from the scene.
func NewRenderer(s *scene.Scene, integ integrator.Integrator, config Config) *Renderer {
	if integ == nil {
		integ = integrator.NewPathTracer(s.Config)
	}
	return &Renderer{scene: s, integrator: integ, config: config}
}

// Render renders every bucket and hands it to out. Output calls are made
// from the calling goroutine only. Cancelling ctx stops new buckets from
// being started and returns ctx.Err(); buckets already rendering are
// discarded. An output returning ErrAbort stops rendering the same way but
// yields a nil error and Stats.Aborted.
func (r *Renderer) Render(ctx context.Context, out Output) (Stats, error) {
	if err := r.config.Validate(); err != nil {
		return Stats{}, err
	}

	start := time.Now()
	config := r.scene.Config
	buckets := CreateBuckets(config.Width, config.Height, r.config.Strategy, r.config.BucketWidth, r.config.BucketHeight)

	pool := NewWorkerPool(NewBucketRenderer(r.scene, r.integrator), r.config.Seed, r.config.NumWorkers)
	stats := newStats(pool.NumWorkers())

	logger.Infof("rendering %dx%d at %d spp: %d %s buckets on %d workers",
		config.Width, config.Height, config.SamplesPerPixel, len(buckets), r.config.Strategy, pool.NumWorkers())

	if err := out.Begin(config.Width, config.Height); err != nil {
		return r.finish(stats, start, err)
	}

	pool.Start()
	next, inFlight := 0, 0
	var stopErr error

	// Keep one bucket queued per worker; starting a bucket only when a
	// worker is about to take it lets cancellation stop promptly.
	fill := func() {
		for stopErr == nil && next < len(buckets) && inFlight < pool.NumWorkers() {
			if err := ctx.Err(); err != nil {
				stopErr = err
				return
			}
			b := buckets[next]
			if err := out.BeginBucket(b); err != nil {
				stopErr = err
				return
			}
			pool.SubmitTask(BucketTask{Bucket: b})
			next++
			inFlight++
		}
	}

	fill()
	for inFlight > 0 {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		inFlight--
		if stopErr != nil {
			continue
		}
		if err := out.PutBucket(result.Bucket, result.Pixels); err != nil {
			stopErr = err
			continue
		}
		stats.add(result)
		logger.Debugf("bucket %d/%d %v done in %s by worker %d",
			stats.Buckets, len(buckets), result.Bucket, result.Duration, result.WorkerID)
		fill()
	}
	pool.Stop()

	if err := out.End(); stopErr == nil {
		stopErr = err
	}
	return r.finish(stats, start, stopErr)
}

func (r *Renderer) finish(stats Stats, start time.Time, err error) (Stats, error) {
	stats.Duration = time.Since(start)

	switch {
	case err == nil:
		logger.Infof("render finished: %d buckets, %d samples in %s", stats.Buckets, stats.Samples, stats.Duration)
		return stats, nil
	case errors.Cause(err) == ErrAbort:
		stats.Aborted = true
		logger.Noticef("render aborted by output after %d buckets", stats.Buckets)
		return stats, nil
	case err == context.Canceled || err == context.DeadlineExceeded:
		logger.Warningf("render stopped after %d buckets: %v", stats.Buckets, err)
		return stats, err
	}
	return stats, errors.Wrap(err, "render output")
}
