package processor

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/nguyentantai21042004/video-digest/internal/artifact"
	"github.com/nguyentantai21042004/video-digest/internal/document"
)

// Process acquires the source video and writes the transcript artifacts.
func (p *implProcessor) Process(ctx context.Context, source, outputDir string) error {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing video: %s", source)
	p.logger.Info(ctx, "========================================")

	if err := p.cfg.ValidateWhisper(); err != nil {
		return fmt.Errorf("whisper config: %w", err)
	}

	store, err := artifact.NewStore(outputDir)
	if err != nil {
		return err
	}

	// Step 1: acquire the video
	videoPath, meta, err := p.downloader.Acquire(ctx, source, store.Dir)
	if err != nil {
		return fmt.Errorf("acquire video: %w", err)
	}

	if meta != nil {
		if err := store.SaveMetadata(meta); err != nil {
			p.logger.Warn(ctx, "Failed to save metadata: %v", err)
		}
	}

	// Step 2: transcribe
	tr, err := p.transcriber.Transcribe(ctx, videoPath)
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}

	if err := store.SaveTranscript(tr); err != nil {
		return fmt.Errorf("save transcript: %w", err)
	}

	p.logger.Info(ctx, "Transcript saved: %s", store.Path(artifact.TranscriptJSON))
	p.logger.Info(ctx, "Preview: %s...", preview(tr.PlainText(), 200))

	// Step 3 (optional): bulk frame capture
	if p.cfg.Frames.ExtractAll {
		saved, err := p.frames.ExtractEvery(ctx, videoPath, p.cfg.Frames.IntervalSeconds, store.Dir)
		if err != nil {
			p.logger.Warn(ctx, "Bulk frame capture failed: %v", err)
		} else {
			p.logger.Info(ctx, "%d frames captured every %.0fs", saved, p.cfg.Frames.IntervalSeconds)
		}
	}

	p.logger.Info(ctx, "Processing completed in %s", time.Since(startTime))
	return nil
}

// Analyze resumes from the persisted transcript: content analysis, frame
// extraction at the selected timestamps, then document assembly.
func (p *implProcessor) Analyze(ctx context.Context, outputDir string) error {
	startTime := time.Now()

	store, err := artifact.NewStore(outputDir)
	if err != nil {
		return err
	}

	if !store.HasTranscript() {
		return fmt.Errorf("transcript not found: %s (run 'digest process' first)", store.Path(artifact.TranscriptJSON))
	}

	tr, err := store.LoadTranscript()
	if err != nil {
		return fmt.Errorf("load transcript: %w", err)
	}

	// Step 1: content analysis
	analysis, err := p.analyzer.Analyze(ctx, tr)
	if err != nil {
		return fmt.Errorf("analyze transcript: %w", err)
	}

	// Persist the raw analysis before any further processing so assembly
	// is resumable without another remote call
	if err := store.SaveAnalysis(analysis); err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}
	p.logger.Info(ctx, "Analysis saved: %s", store.Path(artifact.AnalysisJSON))

	// Step 2: extract the representative frames. A missing or unreadable
	// video costs the images, not the document.
	if videoPath, err := store.FindVideo(); err != nil {
		p.logger.Warn(ctx, "Video not found, skipping frame extraction: %v", err)
	} else if len(analysis.Secoes) > 0 {
		report, err := p.frames.Extract(ctx, videoPath, analysis.FrameTimestamps(), store.Path(artifact.FramesDir))
		if err != nil {
			p.logger.Warn(ctx, "Frame extraction failed: %v", err)
		} else if report.Failed() > 0 {
			p.logger.Warn(ctx, "%d of %d frames could not be extracted", report.Failed(), len(report.Results))
		}
	}

	// Step 3: assemble the digest
	meta, err := store.LoadMetadata()
	if err != nil {
		p.logger.Warn(ctx, "Unreadable metadata, assembling without it: %v", err)
		meta = nil
	}

	md := document.Assemble(analysis, artifact.FramesDir, meta)
	if err := os.WriteFile(store.Path(artifact.DigestMD), []byte(md), 0644); err != nil {
		return fmt.Errorf("write digest: %w", err)
	}
	p.logger.Info(ctx, "Digest saved: %s", store.Path(artifact.DigestMD))

	// Secondary renderings are best-effort
	if page, err := document.HTML(analysis.Titulo, md); err != nil {
		p.logger.Warn(ctx, "HTML rendering failed: %v", err)
	} else if err := os.WriteFile(store.Path(artifact.DigestHTML), []byte(page), 0644); err != nil {
		p.logger.Warn(ctx, "Failed to write HTML digest: %v", err)
	}

	if err := document.Docx(analysis.Titulo, md, store.Path(artifact.DigestDocx)); err != nil {
		p.logger.Warn(ctx, "Docx rendering failed: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Analysis completed in %s", time.Since(startTime))
	p.logger.Info(ctx, "Output: %s", store.Dir)
	p.logger.Info(ctx, "========================================")
	return nil
}

// Run executes the full pipeline for one source.
func (p *implProcessor) Run(ctx context.Context, source, outputDir string) error {
	if err := p.Process(ctx, source, outputDir); err != nil {
		return err
	}
	return p.Analyze(ctx, outputDir)
}

func preview(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
