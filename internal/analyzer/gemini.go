package analyzer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/video-digest/internal/logger"
)

type geminiGenerator struct {
	apiKeys    []string
	currentKey int
	model      string
	timeout    time.Duration
	logger     logger.Logger
}

// NewGemini creates a Generator backed by the Gemini API, rotating through
// the supplied keys on quota errors. Fails immediately when no key is
// configured so the pipeline aborts before any remote call.
func NewGemini(apiKeys []string, model string, timeout time.Duration, log logger.Logger) (Generator, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("no Gemini API key configured (set GEMINI_API_KEY)")
	}

	return &geminiGenerator{
		apiKeys: apiKeys,
		model:   model,
		timeout: timeout,
		logger:  log,
	}, nil
}

// GenerateJSON sends the prompt to Gemini requesting a JSON response.
// Rotates API keys on 429 / quota errors.
func (g *geminiGenerator) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	attempts := len(g.apiKeys)
	var lastErr error

	for range attempts {
		key := g.apiKeys[g.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", g.currentKey+1)
				g.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *geminiGenerator) rotateKey() {
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
}
