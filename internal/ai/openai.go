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
var _ Generator = (*OpenAIProvider)(nil)

const openaiAPIURL = "https://api.openai.com/v1/chat/completions"

// OpenAIProvider implements Generator using the OpenAI Chat Completions API.
type OpenAIProvider struct {
	apiKey string
	model  string
	apiURL string
	client *http.Client
}

// NewOpenAIProvider creates an OpenAIProvider with a 60-second timeout
// HTTP client.
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	return &OpenAIProvider{
		apiKey: apiKey,
		model:  model,
		apiURL: openaiAPIURL,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// openaiRequest is the request body for the OpenAI Chat Completions API.
type openaiRequest struct {
	Model    string          `json:"model"`
	Messages []openaiMessage `json:"messages"`
}

// openaiMessage is a single message in the OpenAI request.
type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// openaiResponse is the response body from the OpenAI Chat Completions API.
type openaiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateArticle produces article body text for the given title and tone
// using the OpenAI Chat Completions API.
func (p *OpenAIProvider) GenerateArticle(ctx context.Context, title string, tone models.Tone) (Result, error) {
	systemPrompt, userPrompt := ArticlePrompt(title, tone)

	text, err := p.callAPI(ctx, systemPrompt, userPrompt)
	if err != nil {
		return Result{}, &GenerationError{Provider: "openai", Err: err}
	}

	content := normalizeContent(text)
	if content == "" {
		return Result{}, &GenerationError{Provider: "openai", Err: fmt.Errorf("model returned empty content")}
	}

	return Result{Content: content, Model: p.model}, nil
}

// callAPI makes an HTTP request to the OpenAI Chat Completions API and
// returns the text content from the first choice.
func (p *OpenAIProvider) callAPI(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	reqBody := openaiRequest{
		Model: p.model,
		Messages: []openaiMessage{
			{Role: "system", Content: systemPrompt},
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

	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	slog.Debug("calling OpenAI API", "model", p.model)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}

	var apiResp openaiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("parsing response (status %d): %w", resp.StatusCode, err)
	}

	if apiResp.Error != nil {
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, apiResp.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if len(apiResp.Choices) == 0 {
		return "", fmt.Errorf("empty response: no choices returned")
	}

	return apiResp.Choices[0].Message.Content, nil
}
