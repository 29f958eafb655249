package advisor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"google.golang.org/genai"

	"stock-advisor/internal/logger"
	"stock-advisor/internal/store"
	"stock-advisor/internal/trace"
)

// Gemini calls the Gemini generateContent API and returns the raw text.
// The API key is resolved from the environment at call time, so a missing
// key fails the call rather than startup.
type Gemini struct {
	cfg *store.Config
}

func NewGemini(cfg *store.Config) *Gemini {
	return &Gemini{cfg: cfg}
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "gemini-generate")
	defer span.End()

	apiKey := os.Getenv(g.cfg.LLM.APIKeyEnv)
	if apiKey == "" {
		err := fmt.Errorf("%s missing", g.cfg.LLM.APIKeyEnv)
		logger.ErrorWithErr(ctx, "Gemini API key not configured", err)
		return "", err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("gemini client: %w", err)
	}

	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(g.cfg.LLM.MaxTokens),
	}
	if g.cfg.LLM.Temperature > 0 {
		config.Temperature = genai.Ptr(g.cfg.LLM.Temperature)
	}

	logger.Debug(ctx, "Sending request to Gemini",
		"model", g.cfg.LLM.Model, "max_tokens", g.cfg.LLM.MaxTokens, "prompt_length", len(prompt))
	start := time.Now()

	resp, err := client.Models.GenerateContent(ctx, g.cfg.LLM.Model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}, config)
	latency := time.Since(start)
	if err != nil {
		logger.ErrorWithErr(ctx, "Gemini request failed", err, "latency_ms", latency.Milliseconds())
		return "", err
	}

	text := extractText(resp)
	if text == "" {
		return "", errors.New("gemini: empty response")
	}

	logger.Debug(ctx, "Gemini response received",
		"latency_ms", latency.Milliseconds(), "response_length", len(text))
	return text, nil
}

// extractText concatenates the text parts of the first candidate that
// carries any.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
		if sb.Len() > 0 {
			break
		}
	}
	return sb.String()
}
