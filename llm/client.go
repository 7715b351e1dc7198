// Package llm provides the text-completion client that turns project
// summaries into generated container definitions.
package llm

import (
	"context"
	"fmt"
	"strings"

	genai "google.golang.org/genai"
)

// DefaultModel is the completion model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Config carries the completion-service credentials and sampling controls.
// It is constructed once at process start and passed to NewClient rather
// than read from ambient process state.
type Config struct {
	APIKey           string
	Model            string
	Temperature      float32
	TopP             float32
	MaxOutputTokens  int32
	FrequencyPenalty float32
	PresencePenalty  float32
}

// DefaultConfig returns the sampling controls used for container-definition
// generation: deterministic output with a generous token budget.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:          apiKey,
		Model:           DefaultModel,
		Temperature:     0,
		TopP:            1.0,
		MaxOutputTokens: 2816,
	}
}

// Client is a thin wrapper around the official genai client. It only focuses
// on the API call itself; there is no retry, rate limiting or caching, and
// transport, auth and rate-limit errors surface to the caller untouched.
type Client struct {
	cli *genai.Client
	cfg Config
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &Client{cli: cli, cfg: cfg}, nil
}

// Complete sends a single prompt and returns the generated text with
// surrounding whitespace trimmed.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.cli.Models.GenerateContent(ctx, c.cfg.Model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(c.cfg.Temperature),
			TopP:             genai.Ptr(c.cfg.TopP),
			MaxOutputTokens:  c.cfg.MaxOutputTokens,
			FrequencyPenalty: genai.Ptr(c.cfg.FrequencyPenalty),
			PresencePenalty:  genai.Ptr(c.cfg.PresencePenalty),
		},
	)
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyCompletion
	}

	return strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text), nil
}

// Error returned when the completion service responds without any generated text.
var ErrEmptyCompletion = fmt.Errorf("The completion service returned an empty response.")
