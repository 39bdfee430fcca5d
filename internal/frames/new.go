package frames

import (
	"github.com/nguyentantai21042004/video-digest/internal/logger"
	"github.com/nguyentantai21042004/video-digest/pkg/executor"
)

type implExtractor struct {
	executor executor.Executor
	logger   logger.Logger
}

// New creates an Extractor that drives ffmpeg/ffprobe through the executor.
func New(exec executor.Executor, log logger.Logger) Extractor {
	return &implExtractor{
		executor: exec,
		logger:   log,
	}
}
