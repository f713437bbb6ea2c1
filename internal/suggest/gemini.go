package suggest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"google.golang.org/genai"
)

const (
	DefaultGeminiModel = "gemini-2.5-flash"
	geminiTimeout      = 30 * time.Second
)

// GeminiClient generates text with the Gemini API through the genai SDK.
// The SDK client is created on first use.
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string

	mu     sync.Mutex
	client *genai.Client
}

// NewGeminiClient creates a client for model; an empty model means
// DefaultGeminiModel.
func NewGeminiClient(apiKey, model string) *GeminiClient {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiClient{apiKey: apiKey, model: model}
}

// WithBaseURL points the client at another endpoint root.
func (c *GeminiClient) WithBaseURL(u string) *GeminiClient {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = u
	c.client = nil
	return c
}

func (c *GeminiClient) sdk(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}

	cfg := &genai.ClientConfig{APIKey: c.apiKey, Backend: genai.BackendGeminiAPI}
	if c.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: c.baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	c.client = client
	return client, nil
}

// Generate sends prompt as a single user turn and returns the text of the
// first candidate, or "" when the model produced none.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("gemini api key not set")
	}

	client, err := c.sdk(ctx)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, geminiTimeout)
	defer cancel()

	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return resp.Text(), nil
}
