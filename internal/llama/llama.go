package llama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/stupiduntilnot/localagent/internal/model"
)

// Client talks to a llama.cpp server running against locally stored model
// weights. Only the /completion and /health endpoints are used.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a llama.cpp client for the given server base URL
// (e.g. "http://127.0.0.1:8080").
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type completionRequest struct {
	Prompt      string  `json:"prompt"`
	Temperature float32 `json:"temperature"`
	TopK        int     `json:"top_k"`
	TopP        float32 `json:"top_p"`
	NPredict    int     `json:"n_predict"`
}

type completionResponse struct {
	Content         string `json:"content"`
	TokensEvaluated int    `json:"tokens_evaluated"`
	TokensPredicted int    `json:"tokens_predicted"`
}

// Complete sends one prompt to /completion and returns the generated text.
func (c *Client) Complete(ctx context.Context, prompt string, params model.Params) (model.Completion, error) {
	reqBody := completionRequest{
		Prompt:      prompt,
		Temperature: params.Temperature,
		TopK:        params.TopK,
		TopP:        params.TopP,
		NPredict:    params.MaxTokens,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return model.Completion{}, fmt.Errorf("%w: marshal llama request: %v", model.ErrInference, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/completion", bytes.NewReader(payload))
	if err != nil {
		return model.Completion{}, fmt.Errorf("%w: create llama request: %v", model.ErrInference, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Completion{}, fmt.Errorf("%w: llama request failed: %v", model.ErrInference, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Completion{}, fmt.Errorf("%w: reading llama response: %v", model.ErrInference, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.Completion{}, fmt.Errorf("%w: llama non-success status=%d body=%s",
			model.ErrInference, resp.StatusCode, truncate(string(body), 400))
	}

	var parsed completionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return model.Completion{}, fmt.Errorf("%w: parse llama response: %s",
			model.ErrInference, truncate(string(body), 400))
	}

	content := strings.TrimSpace(parsed.Content)
	if content == "" {
		content = "(empty model response)"
	}
	return model.Completion{
		Content:      content,
		InputTokens:  parsed.TokensEvaluated,
		OutputTokens: parsed.TokensPredicted,
	}, nil
}

// Health checks that the server is up and the model is loaded. Called once
// at startup; a failure here is fatal before the loop begins.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("create llama health request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("llama server unreachable at %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()
	io.ReadAll(resp.Body) // drain

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("llama server not ready: status=%d", resp.StatusCode)
	}
	return nil
}

func truncate(s string, maxChars int) string {
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars])
}
