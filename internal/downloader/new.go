package downloader

import (
	"github.com/nguyentantai21042004/video-digest/internal/logger"
	"github.com/nguyentantai21042004/video-digest/pkg/executor"
)

type implDownloader struct {
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Downloader backed by yt-dlp.
func New(exec executor.Executor, log logger.Logger) Downloader {
	return &implDownloader{
		executor: exec,
		logger:   log,
	}
}
