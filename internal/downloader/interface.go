package downloader

import (
	"context"

	"github.com/nguyentantai21042004/video-digest/internal/artifact"
)

// Downloader acquires a source video into the work directory.
type Downloader interface {
	// Acquire downloads a URL (or copies a local file) into dir as
	// video.<ext> and returns the video path plus whatever metadata could
	// be probed. Metadata is best-effort and may be nil.
	Acquire(ctx context.Context, source, dir string) (string, *artifact.VideoMetadata, error)
}
