package analyzer

import (
	"context"

	"github.com/nguyentantai21042004/video-digest/internal/transcript"
)

// Analyzer turns a transcript into a structured technical analysis.
type Analyzer interface {
	Analyze(ctx context.Context, tr *transcript.Transcript) (*Analysis, error)
}

// Generator is the narrow text-generation boundary. Implementations must
// return a JSON document matching the Analysis schema.
type Generator interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}
