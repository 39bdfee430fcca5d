package frames

import "context"

// Extractor captures still frames from a video file.
type Extractor interface {
	// Extract writes one frame per timestamp into outputDir. Per-timestamp
	// failures are recorded in the report and do not abort the batch.
	Extract(ctx context.Context, videoPath string, timestamps []float64, outputDir string) (*Report, error)

	// ExtractEvery writes one frame every interval seconds across the whole
	// video and returns the number of frames saved.
	ExtractEvery(ctx context.Context, videoPath string, interval float64, outputDir string) (int, error)
}

// Result records the outcome of a single timestamp extraction.
type Result struct {
	Timestamp float64
	Path      string
	Err       error
}

// Report collects per-timestamp results in input order.
type Report struct {
	FPS     float64
	Results []Result
}

// Succeeded returns the number of frames written.
func (r *Report) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the number of timestamps that produced no frame.
func (r *Report) Failed() int {
	return len(r.Results) - r.Succeeded()
}
