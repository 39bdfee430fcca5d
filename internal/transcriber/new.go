package transcriber

import (
	"github.com/nguyentantai21042004/video-digest/internal/config"
	"github.com/nguyentantai21042004/video-digest/internal/logger"
	"github.com/nguyentantai21042004/video-digest/pkg/executor"
)

type implTranscriber struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Transcriber backed by whisper.cpp.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
