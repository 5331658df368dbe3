package utils

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// TextClientInterface is the boundary to the external generative text
// service. Callers must treat the output as an unreliable oracle: slice and
// validate before trusting it.
type TextClientInterface interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GeminiTextClient implements TextClientInterface using Google's Gemini models.
type GeminiTextClient struct {
	client *genai.Client
	model  string
}

// NewGeminiTextClient creates a new Gemini client.
func NewGeminiTextClient(apiKey, model string) (TextClientInterface, error) {
	if model == "" {
		model = "gemini-2.0-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTextClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiTextClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	// Low temperature keeps the structured parts of the response stable.
	m.SetTemperature(0.2)
	m.SetTopP(0.5)
	m.SetTopK(20)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}
