// Package artifact persists the named files each pipeline stage exchanges.
// Every stage loads its inputs and saves its outputs through the store, so
// any later stage can be re-run from disk without redoing earlier ones.
package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/video-digest/internal/analyzer"
	"github.com/nguyentantai21042004/video-digest/internal/transcript"
)

// File names inside a per-video output directory.
const (
	TranscriptJSON = "transcricao.json"
	TranscriptTXT  = "transcricao.txt"
	TranscriptSRT  = "transcricao.srt"
	AnalysisJSON   = "analise.json"
	MetadataJSON   = "metadata.json"
	FramesDir      = "frames_importantes"
	DigestMD       = "resumo.md"
	DigestHTML     = "resumo.html"
	DigestDocx     = "resumo.docx"
	VideoBase      = "video"
)

// VideoMetadata is decorative information about the source video. Every
// field is optional; consumers degrade gracefully when fields are empty.
type VideoMetadata struct {
	Titulo            string `json:"titulo,omitempty"`
	Canal             string `json:"canal,omitempty"`
	URL               string `json:"url,omitempty"`
	Duracao           string `json:"duracao,omitempty"`
	DataProcessamento string `json:"data_processamento,omitempty"`
}

// Store reads and writes artifacts in one per-video directory.
type Store struct {
	Dir string
}

// NewStore creates the output directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", dir, err)
	}
	return &Store{Dir: dir}, nil
}

// Path returns the absolute path of a named artifact.
func (s *Store) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

// SaveTranscript writes all three transcript renderings.
func (s *Store) SaveTranscript(tr *transcript.Transcript) error {
	if err := writeJSON(s.Path(TranscriptJSON), tr); err != nil {
		return err
	}
	if err := os.WriteFile(s.Path(TranscriptTXT), []byte(tr.PlainText()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", TranscriptTXT, err)
	}
	if err := os.WriteFile(s.Path(TranscriptSRT), []byte(tr.SRT()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", TranscriptSRT, err)
	}
	return nil
}

// LoadTranscript reads transcricao.json.
func (s *Store) LoadTranscript() (*transcript.Transcript, error) {
	var tr transcript.Transcript
	if err := readJSON(s.Path(TranscriptJSON), &tr); err != nil {
		return nil, err
	}
	return &tr, nil
}

// HasTranscript reports whether transcricao.json exists.
func (s *Store) HasTranscript() bool {
	_, err := os.Stat(s.Path(TranscriptJSON))
	return err == nil
}

// SaveAnalysis persists the raw structured analysis before any further
// processing, so assembly is resumable without recomputation.
func (s *Store) SaveAnalysis(a *analyzer.Analysis) error {
	return writeJSON(s.Path(AnalysisJSON), a)
}

// LoadAnalysis reads analise.json.
func (s *Store) LoadAnalysis() (*analyzer.Analysis, error) {
	var a analyzer.Analysis
	if err := readJSON(s.Path(AnalysisJSON), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// SaveMetadata writes metadata.json.
func (s *Store) SaveMetadata(m *VideoMetadata) error {
	return writeJSON(s.Path(MetadataJSON), m)
}

// LoadMetadata reads metadata.json. A missing file is not an error; it
// returns nil metadata.
func (s *Store) LoadMetadata() (*VideoMetadata, error) {
	path := s.Path(MetadataJSON)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	var m VideoMetadata
	if err := readJSON(path, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// FindVideo locates the downloaded video file (video.<ext>).
func (s *Store) FindVideo() (string, error) {
	for _, ext := range []string{".mp4", ".webm", ".mkv", ".mov", ".avi", ".m4v"} {
		path := s.Path(VideoBase + ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no video file found in %s", s.Dir)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
