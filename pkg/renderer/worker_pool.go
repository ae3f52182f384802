package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/df07/go-bucket-raytracer/pkg/core"
)

// BucketTask is a bucket waiting to be rendered
type BucketTask struct {
	Bucket Bucket
}

// BucketResult is a rendered bucket
type BucketResult struct {
	Bucket   Bucket
	Pixels   [][]core.Vec3
	Samples  int
	Duration time.Duration
	WorkerID int
}

// WorkerPool renders buckets in parallel. Tasks and results travel over
// buffered channels sized to the number of workers.
type WorkerPool struct {
	taskQueue   chan BucketTask
	resultQueue chan BucketResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker renders one bucket at a time
type Worker struct {
	ID          int
	renderer    *BucketRenderer
	seed        int64
	taskQueue   chan BucketTask
	resultQueue chan BucketResult
}

// NewWorkerPool creates a pool of numWorkers workers, or one per CPU when numWorkers <= 0
func NewWorkerPool(renderer *BucketRenderer, seed int64, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan BucketTask, numWorkers),
		resultQueue: make(chan BucketResult, numWorkers),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			renderer:    renderer,
			seed:        seed,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop waits for submitted tasks to finish and shuts the workers down.
// Results not yet collected are discarded.
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	go func() {
		for range wp.resultQueue {
		}
	}()
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask queues a bucket for rendering
func (wp *WorkerPool) SubmitTask(task BucketTask) {
	wp.taskQueue <- task
}

// GetResult blocks until a rendered bucket is available
func (wp *WorkerPool) GetResult() (BucketResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		start := time.Now()
		random := rand.New(rand.NewSource(bucketSeed(w.seed, task.Bucket)))
		pixels, samples := w.renderer.RenderBucket(task.Bucket, random)

		w.resultQueue <- BucketResult{
			Bucket:   task.Bucket,
			Pixels:   pixels,
			Samples:  samples,
			Duration: time.Since(start),
			WorkerID: w.ID,
		}
	}
}

// bucketSeed derives a bucket's generator seed from the render seed and
// the bucket origin, so a bucket's pixels do not depend on which worker
// renders it or when
func bucketSeed(seed int64, b Bucket) int64 {
	return seed*1_000_003 + int64(b.Y)*65_537 + int64(b.X) + 42
}
