package processor

import "context"

// Processor orchestrates the digest pipeline stages. Each stage persists
// its artifacts, so Analyze can re-run from a previous Process without
// recomputation.
type Processor interface {
	// Process acquires the source video into outputDir and writes the
	// transcript artifacts.
	Process(ctx context.Context, source, outputDir string) error

	// Analyze loads the persisted transcript, runs the content analysis,
	// extracts the selected frames and assembles the digest document.
	Analyze(ctx context.Context, outputDir string) error

	// Run executes Process followed by Analyze.
	Run(ctx context.Context, source, outputDir string) error
}
