package processor

import (
	"github.com/nguyentantai21042004/video-digest/internal/analyzer"
	"github.com/nguyentantai21042004/video-digest/internal/config"
	"github.com/nguyentantai21042004/video-digest/internal/downloader"
	"github.com/nguyentantai21042004/video-digest/internal/frames"
	"github.com/nguyentantai21042004/video-digest/internal/logger"
	"github.com/nguyentantai21042004/video-digest/internal/transcriber"
)

type implProcessor struct {
	cfg         *config.Config
	downloader  downloader.Downloader
	transcriber transcriber.Transcriber
	analyzer    analyzer.Analyzer
	frames      frames.Extractor
	logger      logger.Logger
}

// New creates a Processor wired with the given stage implementations.
func New(cfg *config.Config, dl downloader.Downloader, tr transcriber.Transcriber, an analyzer.Analyzer, fx frames.Extractor, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		downloader:  dl,
		transcriber: tr,
		analyzer:    an,
		frames:      fx,
		logger:      log,
	}
}
