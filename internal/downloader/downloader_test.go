package downloader

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/video-digest/internal/logger"
)

// fakeYtdlp answers -j probes with canned JSON and simulates a download by
// writing video.mp4 into the working dir.
type fakeYtdlp struct {
	probeJSON string
	probeErr  error
}

func (f *fakeYtdlp) Execute(ctx context.Context, name string, args ...string) (string, error) {
	if f.probeErr != nil {
		return "", f.probeErr
	}
	return f.probeJSON, nil
}

func (f *fakeYtdlp) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	return "", os.WriteFile(filepath.Join(dir, "video.mp4"), []byte("mp4"), 0644)
}

func TestIsURL(t *testing.T) {
	tests := []struct {
		source string
		want   bool
	}{
		{"https://www.youtube.com/watch?v=x", true},
		{"http://example.com/v.mp4", true},
		{"/tmp/aula.mp4", false},
		{"aula.mp4", false},
	}

	for _, tt := range tests {
		if got := IsURL(tt.source); got != tt.want {
			t.Errorf("IsURL(%q) = %v, want %v", tt.source, got, tt.want)
		}
	}
}

func TestAcquireURL(t *testing.T) {
	exec := &fakeYtdlp{probeJSON: `{
		"title": "Aula de Dashboards",
		"channel": "Canal Técnico",
		"webpage_url": "https://www.youtube.com/watch?v=abc",
		"duration": 630,
		"duration_string": "10:30"
	}`}
	d := New(exec, logger.New("error"))
	dir := t.TempDir()

	videoPath, meta, err := d.Acquire(context.Background(), "https://www.youtube.com/watch?v=abc", dir)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}

	if filepath.Base(videoPath) != "video.mp4" {
		t.Errorf("videoPath = %s", videoPath)
	}
	if meta == nil || meta.Titulo != "Aula de Dashboards" || meta.Canal != "Canal Técnico" {
		t.Errorf("metadata = %+v", meta)
	}
	if meta.Duracao != "10:30" {
		t.Errorf("Duracao = %q", meta.Duracao)
	}
	if meta.DataProcessamento == "" {
		t.Error("DataProcessamento should be stamped")
	}
}

func TestAcquireURLProbeFailureIsNotFatal(t *testing.T) {
	exec := &fakeYtdlp{probeErr: fmt.Errorf("network down")}
	d := New(exec, logger.New("error"))

	// download path uses ExecuteInDir, which still succeeds
	videoPath, meta, err := d.Acquire(context.Background(), "https://example.com/v", t.TempDir())
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if videoPath == "" {
		t.Error("video should download even when the metadata probe fails")
	}
	if meta != nil {
		t.Errorf("metadata should be nil after a failed probe, got %+v", meta)
	}
}

func TestAcquireLocalFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "Minha Aula.MP4")
	if err := os.WriteFile(src, []byte("mp4"), 0644); err != nil {
		t.Fatal(err)
	}

	d := New(&fakeYtdlp{}, logger.New("error"))
	dir := t.TempDir()

	videoPath, meta, err := d.Acquire(context.Background(), src, dir)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}

	if filepath.Base(videoPath) != "video.mp4" {
		t.Errorf("videoPath = %s, want normalized video.mp4", videoPath)
	}
	if meta.Titulo != "Minha Aula" {
		t.Errorf("Titulo = %q", meta.Titulo)
	}
}

func TestAcquireLocalFileCopiesBytes(t *testing.T) {
	payload := bytes.Repeat([]byte("frame data "), 4096)
	src := filepath.Join(t.TempDir(), "palestra.mkv")
	if err := os.WriteFile(src, payload, 0644); err != nil {
		t.Fatal(err)
	}

	d := New(&fakeYtdlp{}, logger.New("error"))

	videoPath, _, err := d.Acquire(context.Background(), src, t.TempDir())
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}

	got, err := os.ReadFile(videoPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("copied %d bytes differ from source (%d bytes)", len(got), len(payload))
	}
}

func TestAcquireMissingLocalFile(t *testing.T) {
	d := New(&fakeYtdlp{}, logger.New("error"))

	if _, _, err := d.Acquire(context.Background(), "/nonexistent/video.mp4", t.TempDir()); err == nil {
		t.Error("Acquire() should fail for a missing local file")
	}
}
