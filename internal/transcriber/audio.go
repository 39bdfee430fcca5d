package transcriber

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// extractAudio converts the video's audio track to 16kHz mono WAV, the
// format whisper.cpp expects.
func (t *implTranscriber) extractAudio(ctx context.Context, videoPath string) (string, error) {
	audioPath := strings.TrimSuffix(videoPath, filepath.Ext(videoPath)) + ".wav"

	t.logger.Info(ctx, "Extracting audio: %s", videoPath)

	args := []string{
		"-i", videoPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		audioPath,
	}

	if _, err := t.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	t.logger.Info(ctx, "Audio extracted: %s", audioPath)
	return audioPath, nil
}
