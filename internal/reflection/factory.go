package reflection

import (
	"context"
	"errors"
	"fmt"

	"github.com/yourname/moodjournal/internal/config"
)

type missingKeyCompleter struct{}

func (missingKeyCompleter) Complete(context.Context, string, string) (string, error) {
	return "", ErrMissingKey
}

// NewCompleter builds the backend named by cfg.ReflectionProvider. It returns
// nil for "none". A missing key is reported when a reflection is requested,
// not at startup.
func NewCompleter(cfg *config.Config) (Completer, error) {
	var (
		c   Completer
		err error
	)
	switch cfg.ReflectionProvider {
	case "none":
		return nil, nil
	case "langchain":
		c, err = NewLangChainCompleter(cfg.ReflectionAPIKey, cfg.ReflectionEndpoint, cfg.ReflectionModel)
	case "openai":
		c, err = NewOpenAICompleter(cfg.ReflectionAPIKey, cfg.ReflectionEndpoint, cfg.ReflectionModel)
	default:
		return nil, fmt.Errorf("reflection: unknown provider %q", cfg.ReflectionProvider)
	}
	if errors.Is(err, ErrMissingKey) {
		return missingKeyCompleter{}, nil
	}
	return c, err
}
