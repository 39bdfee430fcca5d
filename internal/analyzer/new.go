package analyzer

import (
	"github.com/nguyentantai21042004/video-digest/internal/logger"
)

type implAnalyzer struct {
	generator Generator
	logger    logger.Logger
}

// New creates an Analyzer backed by the given Generator.
func New(gen Generator, log logger.Logger) Analyzer {
	return &implAnalyzer{
		generator: gen,
		logger:    log,
	}
}
