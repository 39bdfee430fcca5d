// Package frames extracts still images from a video at selected timestamps.
package frames

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// FileName is the deterministic frame file name for a timestamp. Section to
// frame lookup downstream relies on this being a pure function.
func FileName(timestamp float64) string {
	return fmt.Sprintf("frame_%.1fs.jpg", timestamp)
}

// Extract seeks to each timestamp and writes a single decoded frame into
// outputDir. Processing follows input order; each timestamp is independent,
// so a failed seek or decode is recorded and the batch continues. Re-running
// with the same timestamps overwrites the same files.
func (e *implExtractor) Extract(ctx context.Context, videoPath string, timestamps []float64, outputDir string) (*Report, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", outputDir, err)
	}

	info, err := e.probe(ctx, videoPath)
	if err != nil {
		return nil, fmt.Errorf("open video: %w", err)
	}

	e.logger.Info(ctx, "Extracting %d frames from %s (%.3f fps)", len(timestamps), videoPath, info.FPS)

	report := &Report{FPS: info.FPS}
	for _, ts := range timestamps {
		path := filepath.Join(outputDir, FileName(ts))

		if err := e.extractOne(ctx, videoPath, ts, info.FPS, path); err != nil {
			e.logger.Warn(ctx, "Failed to extract frame at %.1fs: %v", ts, err)
			report.Results = append(report.Results, Result{Timestamp: ts, Path: path, Err: err})
			continue
		}

		e.logger.Info(ctx, "Frame extracted at %.1fs: %s", ts, path)
		report.Results = append(report.Results, Result{Timestamp: ts, Path: path})
	}

	e.logger.Info(ctx, "Frame extraction done: %d saved, %d failed", report.Succeeded(), report.Failed())
	return report, nil
}

// extractOne decodes exactly one frame. The seek position snaps to the
// nearest frame boundary so identical timestamps always hit the same frame.
func (e *implExtractor) extractOne(ctx context.Context, videoPath string, timestamp, fps float64, outputPath string) error {
	seek := timestamp
	if fps > 0 {
		frameIndex := math.Round(timestamp * fps)
		seek = frameIndex / fps
	}

	args := []string{
		"-hide_banner", "-loglevel", "error",
		"-ss", fmt.Sprintf("%.6f", seek),
		"-i", videoPath,
		"-frames:v", "1",
		"-q:v", "2",
		"-y",
		outputPath,
	}

	if _, err := e.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return fmt.Errorf("ffmpeg seek %.6fs: %w", seek, err)
	}

	// ffmpeg exits zero on a past-end seek but writes nothing
	if fi, err := os.Stat(outputPath); err != nil || fi.Size() == 0 {
		return fmt.Errorf("no frame decoded at %.1fs", timestamp)
	}

	return nil
}

// ExtractEvery saves one frame every interval seconds across the video,
// named frame_0000.jpg onward. Used by the optional bulk-capture mode.
func (e *implExtractor) ExtractEvery(ctx context.Context, videoPath string, interval float64, outputDir string) (int, error) {
	if interval <= 0 {
		return 0, fmt.Errorf("interval must be positive, got %v", interval)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return 0, fmt.Errorf("create output dir %s: %w", outputDir, err)
	}

	info, err := e.probe(ctx, videoPath)
	if err != nil {
		return 0, fmt.Errorf("open video: %w", err)
	}

	e.logger.Info(ctx, "Capturing 1 frame every %.0fs over %.1fs of video", interval, info.Duration)

	saved := 0
	for ts := 0.0; ts < info.Duration; ts += interval {
		path := filepath.Join(outputDir, fmt.Sprintf("frame_%04d.jpg", saved))
		if err := e.extractOne(ctx, videoPath, ts, info.FPS, path); err != nil {
			e.logger.Warn(ctx, "Failed to extract frame at %.1fs: %v", ts, err)
			continue
		}
		saved++
	}

	e.logger.Info(ctx, "%d frames saved in %s", saved, outputDir)
	return saved, nil
}
