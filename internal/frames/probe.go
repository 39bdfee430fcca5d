package frames

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type probeResult struct {
	Format  probeFormat   `json:"format"`
	Streams []probeStream `json:"streams"`
}

type probeFormat struct {
	Duration string `json:"duration"`
}

type probeStream struct {
	CodecType  string `json:"codec_type"`
	RFrameRate string `json:"r_frame_rate,omitempty"`
}

type videoInfo struct {
	FPS      float64
	Duration float64
}

// probe reads the frame rate and duration of the first video stream.
func (e *implExtractor) probe(ctx context.Context, videoPath string) (*videoInfo, error) {
	out, err := e.executor.Execute(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		videoPath,
	)
	if err != nil {
		return nil, fmt.Errorf("ffprobe %s: %w", videoPath, err)
	}

	var result probeResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		return nil, fmt.Errorf("parse ffprobe output: %w", err)
	}

	info := &videoInfo{}
	if result.Format.Duration != "" {
		info.Duration, _ = strconv.ParseFloat(result.Format.Duration, 64)
	}

	for _, s := range result.Streams {
		if s.CodecType == "video" {
			fps, err := parseFrameRate(s.RFrameRate)
			if err != nil {
				return nil, err
			}
			info.FPS = fps
			return info, nil
		}
	}

	return nil, fmt.Errorf("no video stream in %s", videoPath)
}

// parseFrameRate converts ffprobe's rational rate ("30000/1001") to a float.
func parseFrameRate(rate string) (float64, error) {
	num, den, found := strings.Cut(rate, "/")
	if !found {
		fps, err := strconv.ParseFloat(rate, 64)
		if err != nil {
			return 0, fmt.Errorf("parse frame rate %q: %w", rate, err)
		}
		return fps, nil
	}

	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("parse frame rate %q: %w", rate, err)
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0, fmt.Errorf("parse frame rate %q: invalid denominator", rate)
	}

	return n / d, nil
}
