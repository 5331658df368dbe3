package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAITextClient implements TextClientInterface using the OpenAI chat API.
// Alternative backend to Gemini, selected via configuration.
type OpenAITextClient struct {
	client *openai.Client
	model  string
}

func NewOpenAITextClient(apiKey, model string) TextClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAITextClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAITextClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no content")
	}
	return resp.Choices[0].Message.Content, nil
}
