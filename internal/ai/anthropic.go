package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"blogsmith/internal/models"
)

// Compile-time interface check.
var _ Generator = (*AnthropicProvider)(nil)

const anthropicAPIURL = "https://api.anthropic.com/v1/messages"

// maxArticleTokens comfortably covers an 800-word article.
const maxArticleTokens = 2048

// AnthropicProvider implements Generator using the Anthropic Messages API.
type AnthropicProvider struct {
	apiKey string
	model  string
	apiURL string
	client *http.Client
}

// NewAnthropicProvider creates an AnthropicProvider with a 60-second timeout
// HTTP client.
func NewAnthropicProvider(apiKey, model string) *AnthropicProvider {
	return &AnthropicProvider{
		apiKey: apiKey,
		model:  model,
		apiURL: anthropicAPIURL,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// anthropicRequest is the request body for the Anthropic Messages API.
type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

// anthropicMessage is a single message in the Anthropic request.
type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// anthropicResponse is the response body from the Anthropic Messages API.
type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateArticle produces article body text for the given title and tone
// using the Anthropic Messages API.
func (p *AnthropicProvider) GenerateArticle(ctx context.Context, title string, tone models.Tone) (Result, error) {
	systemPrompt, userPrompt := ArticlePrompt(title, tone)

	text, err := p.callAPI(ctx, systemPrompt, userPrompt)
	if err != nil {
		return Result{}, &GenerationError{Provider: "anthropic", Err: err}
	}

	content := normalizeContent(text)
	if content == "" {
		return Result{}, &GenerationError{Provider: "anthropic", Err: fmt.Errorf("model returned empty content")}
	}

	return Result{Content: content, Model: p.model}, nil
}

// callAPI makes an HTTP request to the Anthropic Messages API and returns
// the text content from the first content block.
func (p *AnthropicProvider) callAPI(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	reqBody := anthropicRequest{
		Model:     p.model,
		MaxTokens: maxArticleTokens,
		System:    systemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: userPrompt},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	req.Header.Set("content-type", "application/json")

	slog.Debug("calling Anthropic API", "model", p.model)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}

	var apiResp anthropicResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("parsing response (status %d): %w", resp.StatusCode, err)
	}

	if apiResp.Error != nil {
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, apiResp.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if len(apiResp.Content) == 0 {
		return "", fmt.Errorf("empty response: no content blocks returned")
	}

	return apiResp.Content[0].Text, nil
}
