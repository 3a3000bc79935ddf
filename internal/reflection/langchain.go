package reflection

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// LangChainCompleter talks to any OpenAI-compatible endpoint through langchaingo.
type LangChainCompleter struct {
	model llms.Model
}

func NewLangChainCompleter(apiKey, endpoint, model string) (*LangChainCompleter, error) {
	if apiKey == "" {
		return nil, ErrMissingKey
	}
	m, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(endpoint),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create langchain client: %w", err)
	}
	return &LangChainCompleter{model: m}, nil
}

func (c *LangChainCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, system),
		llms.TextParts(llms.ChatMessageTypeHuman, user),
	}
	resp, err := c.model.GenerateContent(ctx, messages,
		llms.WithTemperature(0.7),
		llms.WithMaxTokens(150),
		llms.WithTopP(0.9),
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("reflection: api returned no choices")
	}
	return resp.Choices[0].Content, nil
}
