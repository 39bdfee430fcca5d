package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/video-digest/internal/transcript"
)

var codeBlockRe = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")

// Analyze sends the transcript through the Generator and parses the strict
// JSON analysis it returns. A response that cannot be parsed is an error,
// never a default.
func (a *implAnalyzer) Analyze(ctx context.Context, tr *transcript.Transcript) (*Analysis, error) {
	prompt, err := buildPrompt(tr)
	if err != nil {
		return nil, fmt.Errorf("build prompt: %w", err)
	}

	a.logger.Info(ctx, "Analyzing transcript (%d segments)...", len(tr.Segmentos))

	raw, err := a.generator.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate analysis: %w", err)
	}

	analysis, err := parseAnalysis(raw)
	if err != nil {
		return nil, err
	}

	a.logger.Info(ctx, "Analysis complete: %q, %d sections", analysis.Titulo, len(analysis.Secoes))
	return analysis, nil
}

// parseAnalysis decodes the generator output, tolerating a markdown code
// fence around the JSON body.
func parseAnalysis(raw string) (*Analysis, error) {
	text := stripCodeBlock(strings.TrimSpace(raw))

	var analysis Analysis
	if err := json.Unmarshal([]byte(text), &analysis); err != nil {
		return nil, fmt.Errorf("parse analysis json: %w (raw: %s)", err, truncate(text, 200))
	}

	if analysis.Titulo == "" {
		return nil, fmt.Errorf("analysis missing titulo (raw: %s)", truncate(text, 200))
	}

	return &analysis, nil
}

func stripCodeBlock(s string) string {
	if m := codeBlockRe.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
