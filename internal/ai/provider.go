// Package ai provides clients for external text-generation APIs.
//
// A Generator produces full blog article bodies from a title and tone.
// Implementations exist for the OpenAI Chat Completions API and the
// Anthropic Messages API. Every call is a single attempt against the live
// API: no retries, no caching.
package ai

import (
	"context"
	"errors"
	"fmt"

	"blogsmith/internal/models"
)

// Generator is the interface implemented by all LLM providers.
type Generator interface {
	// GenerateArticle produces article body text for the given title,
	// written in the given tone. The returned content is Markdown.
	GenerateArticle(ctx context.Context, title string, tone models.Tone) (Result, error)
}

// Result holds a successful generation outcome.
type Result struct {
	// Content is the generated article body in Markdown.
	Content string
	// Model is the model identifier that produced the content.
	Model string
}

// ProviderConfig holds the configuration needed to create a provider.
type ProviderConfig struct {
	Provider string // "anthropic" | "openai"
	APIKey   string
	Model    string
}

// GenerationError reports a failed call to an external generation API.
// Callers processing a batch catch it per title so that one failure does
// not abort the remaining titles.
type GenerationError struct {
	Provider string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// NewProvider creates the appropriate provider based on config.
// An empty API key is a configuration error: it is rejected here so that
// generation calls never reach the network with missing credentials.
func NewProvider(cfg ProviderConfig) (Generator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("API key is empty: set ai.api_key in the config file or the AI_API_KEY environment variable")
	}

	switch cfg.Provider {
	case "anthropic":
		return NewAnthropicProvider(cfg.APIKey, cfg.Model), nil
	case "openai":
		return NewOpenAIProvider(cfg.APIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", cfg.Provider)
	}
}
