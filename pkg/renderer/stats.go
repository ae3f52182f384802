package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
)

// Stats summarizes a finished or stopped render
type Stats struct {
	Buckets     int // Buckets delivered to the output
	Pixels      int
	Samples     int // Camera rays traced
	Duration    time.Duration
	Aborted     bool            // The output returned ErrAbort
	BucketTimes []time.Duration // Render time of each delivered bucket, in delivery order
	Workers     []WorkerStats
}

// WorkerStats is the share of a render done by one worker
type WorkerStats struct {
	ID      int
	Buckets int
	Pixels  int
	Busy    time.Duration
}

func newStats(numWorkers int) Stats {
	stats := Stats{Workers: make([]WorkerStats, numWorkers)}
	for i := range stats.Workers {
		stats.Workers[i].ID = i
	}
	return stats
}

func (s *Stats) add(result BucketResult) {
	pixels := result.Bucket.Pixels()
	s.Buckets++
	s.Pixels += pixels
	s.Samples += result.Samples
	s.BucketTimes = append(s.BucketTimes, result.Duration)

	if result.WorkerID >= 0 && result.WorkerID < len(s.Workers) {
		w := &s.Workers[result.WorkerID]
		w.Buckets++
		w.Pixels += pixels
		w.Busy += result.Duration
	}
}

// SamplesPerSecond returns the camera ray throughput
func (s Stats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Samples) / s.Duration.Seconds()
}

// Table renders the per-worker breakdown
func (s Stats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Buckets", "Pixels", "% of frame", "Busy time"})
	for _, w := range s.Workers {
		percent := 0.0
		if s.Pixels > 0 {
			percent = 100 * float64(w.Pixels) / float64(s.Pixels)
		}
		table.Append([]string{
			fmt.Sprintf("%d", w.ID),
			fmt.Sprintf("%d", w.Buckets),
			fmt.Sprintf("%d", w.Pixels),
			fmt.Sprintf("%02.1f %%", percent),
			w.Busy.String(),
		})
	}
	table.SetFooter([]string{"", fmt.Sprintf("%d", s.Buckets), fmt.Sprintf("%d", s.Pixels), "TOTAL", s.Duration.String()})
	table.Render()
	return buf.String()
}
