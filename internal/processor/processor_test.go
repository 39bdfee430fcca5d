package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/video-digest/internal/analyzer"
	"github.com/nguyentantai21042004/video-digest/internal/artifact"
	"github.com/nguyentantai21042004/video-digest/internal/config"
	"github.com/nguyentantai21042004/video-digest/internal/frames"
	"github.com/nguyentantai21042004/video-digest/internal/logger"
	"github.com/nguyentantai21042004/video-digest/internal/transcript"
)

type fakeDownloader struct{}

func (f *fakeDownloader) Acquire(ctx context.Context, source, dir string) (string, *artifact.VideoMetadata, error) {
	path := filepath.Join(dir, "video.mp4")
	return path, &artifact.VideoMetadata{Titulo: "t", URL: "https://example.com/v"}, os.WriteFile(path, []byte("mp4"), 0644)
}

type fakeTranscriber struct {
	err error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, videoPath string) (*transcript.Transcript, error) {
	if f.err != nil {
		return nil, f.err
	}
	return transcript.New("texto completo", []transcript.Segment{
		{Inicio: 0, Fim: 2, Texto: "frase um"},
		{Inicio: 2, Fim: 4, Texto: "frase dois"},
	}), nil
}

type fakeAnalyzer struct {
	err error
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, tr *transcript.Transcript) (*analyzer.Analysis, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &analyzer.Analysis{
		Titulo:      "Resumo Técnico",
		ResumoGeral: "visão geral",
		Secoes: []analyzer.Section{
			{Titulo: "Primeira Técnica", TimestampInicio: 0, TimestampFim: 3, TimestampFrame: 1.5, TipoConteudo: analyzer.TipoCodigo, Descricao: "d"},
		},
		Conclusao: "fim",
	}, nil
}

type fakeFrames struct {
	extracted [][]float64
}

func (f *fakeFrames) Extract(ctx context.Context, videoPath string, timestamps []float64, outputDir string) (*frames.Report, error) {
	f.extracted = append(f.extracted, timestamps)
	report := &frames.Report{}
	for _, ts := range timestamps {
		report.Results = append(report.Results, frames.Result{Timestamp: ts, Path: filepath.Join(outputDir, frames.FileName(ts))})
	}
	return report, nil
}

func (f *fakeFrames) ExtractEvery(ctx context.Context, videoPath string, interval float64, outputDir string) (int, error) {
	return 0, nil
}

func newTestProcessor(t *testing.T) (Processor, *fakeFrames) {
	t.Helper()
	cfg := &config.Config{
		Whisper: config.WhisperConfig{ModelPath: "m", BinaryPath: "b", Language: "pt"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	fx := &fakeFrames{}
	p := New(cfg, &fakeDownloader{}, &fakeTranscriber{}, &fakeAnalyzer{}, fx, logger.New("error"))
	return p, fx
}

func TestRunFullPipeline(t *testing.T) {
	p, fx := newTestProcessor(t)
	dir := filepath.Join(t.TempDir(), "conteudo_video")

	if err := p.Run(context.Background(), "https://example.com/v", dir); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for _, name := range []string{
		artifact.TranscriptJSON, artifact.TranscriptTXT, artifact.TranscriptSRT,
		artifact.MetadataJSON, artifact.AnalysisJSON, artifact.DigestMD, artifact.DigestHTML,
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}

	if len(fx.extracted) != 1 || len(fx.extracted[0]) != 1 || fx.extracted[0][0] != 1.5 {
		t.Errorf("frame extraction got timestamps %v, want [[1.5]]", fx.extracted)
	}

	md, err := os.ReadFile(filepath.Join(dir, artifact.DigestMD))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(md), "# Resumo Técnico") {
		t.Errorf("digest missing title:\n%s", md)
	}
	if !strings.Contains(string(md), "frames_importantes/frame_1.5s.jpg") {
		t.Errorf("digest missing frame reference:\n%s", md)
	}
	if !strings.Contains(string(md), "t=0") {
		t.Errorf("digest missing deep link from metadata URL:\n%s", md)
	}
}

func TestAnalyzeWithoutTranscript(t *testing.T) {
	p, _ := newTestProcessor(t)

	err := p.Analyze(context.Background(), t.TempDir())
	if err == nil {
		t.Fatal("Analyze() should fail without a transcript artifact")
	}
	if !strings.Contains(err.Error(), "digest process") {
		t.Errorf("error should guide the user to the prior stage: %v", err)
	}
}

func TestAnalyzeResumableFromArtifacts(t *testing.T) {
	// A directory holding only transcricao.json is enough to analyze;
	// the missing video only skips frame extraction.
	dir := t.TempDir()
	store, err := artifact.NewStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.SaveTranscript(transcript.New("x", []transcript.Segment{{Inicio: 0, Fim: 1, Texto: "a"}})); err != nil {
		t.Fatal(err)
	}

	p, fx := newTestProcessor(t)
	if err := p.Analyze(context.Background(), dir); err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if len(fx.extracted) != 0 {
		t.Error("frame extraction should be skipped when no video exists")
	}
	if _, err := os.Stat(filepath.Join(dir, artifact.DigestMD)); err != nil {
		t.Errorf("digest should still be assembled: %v", err)
	}
}

func TestProcessRequiresWhisperConfig(t *testing.T) {
	cfg := &config.Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	p := New(cfg, &fakeDownloader{}, &fakeTranscriber{}, &fakeAnalyzer{}, &fakeFrames{}, logger.New("error"))

	if err := p.Process(context.Background(), "video.mp4", t.TempDir()); err == nil {
		t.Error("Process() should fail without whisper configuration")
	}
}

func TestAnalyzeFailsOnAnalyzerError(t *testing.T) {
	dir := t.TempDir()
	store, err := artifact.NewStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.SaveTranscript(transcript.New("x", nil)); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	p := New(cfg, &fakeDownloader{}, &fakeTranscriber{}, &fakeAnalyzer{err: fmt.Errorf("unparseable output")}, &fakeFrames{}, logger.New("error"))

	if err := p.Analyze(context.Background(), dir); err == nil {
		t.Error("Analyze() must propagate analyzer failures, not substitute defaults")
	}
	if _, statErr := os.Stat(filepath.Join(dir, artifact.DigestMD)); statErr == nil {
		t.Error("no digest should be written after a failed analysis")
	}
}
