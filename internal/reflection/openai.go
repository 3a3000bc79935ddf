package reflection

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// OpenAICompleter uses the official SDK's chat completions endpoint.
type OpenAICompleter struct {
	client *openai.Client
	model  string
}

func NewOpenAICompleter(apiKey, endpoint, model string) (*OpenAICompleter, error) {
	if apiKey == "" {
		return nil, ErrMissingKey
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}
	if endpoint != "" {
		opts = append(opts, option.WithBaseURL(endpoint))
	}
	client := openai.NewClient(opts...)
	return &OpenAICompleter{client: &client, model: model}, nil
}

func (c *OpenAICompleter) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(0.7),
		MaxTokens:   openai.Int(150),
		TopP:        openai.Float(0.9),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("reflection: api returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
