// Package transcriber drives whisper.cpp to produce timestamped transcript
// segments from a video's audio track.
package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/video-digest/internal/transcript"
)

// whisperOutput is the shape of whisper.cpp's JSON output mode.
type whisperOutput struct {
	Transcription []whisperSegment `json:"transcription"`
}

type whisperSegment struct {
	Offsets whisperOffsets `json:"offsets"`
	Text    string         `json:"text"`
}

type whisperOffsets struct {
	From int64 `json:"from"` // milliseconds
	To   int64 `json:"to"`
}

// Transcribe extracts the audio track, runs whisper.cpp in JSON output mode
// and normalizes the recognized segments into a Transcript.
func (t *implTranscriber) Transcribe(ctx context.Context, videoPath string) (*transcript.Transcript, error) {
	audioPath, err := t.extractAudio(ctx, videoPath)
	if err != nil {
		return nil, fmt.Errorf("extract audio: %w", err)
	}
	defer t.cleanupTempFile(ctx, audioPath)

	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	t.logger.Info(ctx, "Transcribing with %d threads: %s", t.cfg.Whisper.Threads, audioPath)

	args := []string{
		"-m", t.cfg.Whisper.ModelPath,
		"-f", audioPath,
		"-oj",
		"-l", t.cfg.Whisper.Language,
		"-t", strconv.Itoa(t.cfg.Whisper.Threads),
		"-ml", "0",
		"-mc", "0",
		"-bo", "5",
		"--output-file", outputPrefix,
	}
	if t.cfg.Whisper.Prompt != "" {
		args = append(args, "--prompt", t.cfg.Whisper.Prompt)
	}

	if _, err := t.executor.Execute(ctx, t.cfg.Whisper.BinaryPath, args...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	jsonPath := outputPrefix + ".json"
	defer t.cleanupTempFile(ctx, jsonPath)

	tr, err := parseWhisperJSON(jsonPath)
	if err != nil {
		return nil, err
	}

	t.logger.Info(ctx, "Transcription completed: %d segments", len(tr.Segmentos))
	return tr, nil
}

// parseWhisperJSON converts whisper.cpp's millisecond offsets into float
// second segments, preserving segment order.
func parseWhisperJSON(path string) (*transcript.Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}

	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse whisper output: %w", err)
	}

	segments := make([]transcript.Segment, len(out.Transcription))
	var fullText strings.Builder
	for i, seg := range out.Transcription {
		segments[i] = transcript.Segment{
			Inicio: float64(seg.Offsets.From) / 1000,
			Fim:    float64(seg.Offsets.To) / 1000,
			Texto:  seg.Text,
		}
		fullText.WriteString(seg.Text)
	}

	return transcript.New(fullText.String(), segments), nil
}

// cleanupTempFile removes an intermediate file, warning on failure.
func (t *implTranscriber) cleanupTempFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		t.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	} else {
		t.logger.Debug(ctx, "Cleaned up temp file: %s", path)
	}
}
