package transcriber

import (
	"context"

	"github.com/nguyentantai21042004/video-digest/internal/transcript"
)

// Transcriber turns a video file into a timestamped transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, videoPath string) (*transcript.Transcript, error)
}
