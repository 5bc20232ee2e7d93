// =======================
// donut/benchmarks.go
// =======================

package donut

import (
	"fmt"
	"io"
	"time"
)

// BenchmarkInfo holds render metrics for one sampling resolution.
type BenchmarkInfo struct {
	Resolution    int           `json:"resolution"`
	Samples       int           `json:"samples"`
	FrameTime     time.Duration `json:"frame_time"`
	SamplesPerSec float64       `json:"samples_per_second"`
	Coverage      float64       `json:"coverage"`
}

// BenchmarkRenderer times frame rendering for each resolution, using it for
// both sampling directions. Everything else comes from cfg.
func BenchmarkRenderer(cfg Config, resolutions []int, iterations int) ([]BenchmarkInfo, error) {
	if iterations <= 0 {
		return nil, configErr("iterations", "must be positive, got %d", iterations)
	}
	results := make([]BenchmarkInfo, 0, len(resolutions))

	for _, res := range resolutions {
		c := cfg
		c.Torus.ResolutionA, c.Torus.ResolutionB = res, res
		a, err := New(c)
		if err != nil {
			return nil, fmt.Errorf("failed to create renderer for resolution %d: %w", res, err)
		}
		fb, err := NewFramebuffer(c.Camera)
		if err != nil {
			return nil, err
		}

		start := time.Now()
		var covered int
		for i := 0; i < iterations; i++ {
			if err := a.RenderInto(fb, i%a.Frames()); err != nil {
				return nil, fmt.Errorf("render failed at iteration %d: %w", i, err)
			}
			covered += fb.Covered()
		}
		duration := time.Since(start)

		samples := a.Torus().Len()
		pixels := float64(c.Camera.Width * c.Camera.Height)
		results = append(results, BenchmarkInfo{
			Resolution:    res,
			Samples:       samples,
			FrameTime:     duration / time.Duration(iterations),
			SamplesPerSec: float64(samples*iterations) / duration.Seconds(),
			Coverage:      float64(covered) / float64(iterations) / pixels,
		})
	}

	return results, nil
}

// PrintBenchmarkResults writes results as a table.
func PrintBenchmarkResults(w io.Writer, results []BenchmarkInfo) {
	fmt.Fprintln(w, "Torus Render Benchmark Results")
	fmt.Fprintln(w, "==============================")
	fmt.Fprintf(w, "%-10s | %-10s | %-12s | %-14s | %-8s\n",
		"Resolution", "Samples", "Time/Frame", "Samples/sec", "Coverage")
	fmt.Fprintln(w, "-----------|------------|--------------|----------------|---------")

	for _, r := range results {
		fmt.Fprintf(w, "%-10d | %-10d | %-12s | %-14.0f | %-7.1f%%\n",
			r.Resolution,
			r.Samples,
			r.FrameTime.String(),
			r.SamplesPerSec,
			r.Coverage*100)
	}
}
