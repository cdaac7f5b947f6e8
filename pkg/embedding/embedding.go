// Package embedding turns ingredient descriptions into vectors for
// similarity search.
package embedding

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
)

var ErrDisabled = errors.New("embedding provider not configured")

type Client interface {
	Embed(ctx context.Context, texts []string) ([]pgvector.Vector, error)
	Model() string
	Close() error
}

type Config struct {
	Provider string
	APIKey   string
	Model    string
}

// New returns a client for cfg.Provider. An empty provider or API key yields
// a client that always fails with ErrDisabled.
func New(cfg Config) (Client, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == "" || provider == "none" || cfg.APIKey == "" {
		return disabledClient{}, nil
	}

	switch provider {
	case "openai":
		return NewOpenAIClient(cfg.APIKey, cfg.Model), nil
	case "gemini":
		return NewGeminiClient(cfg.APIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s. Use 'openai' or 'gemini'", cfg.Provider)
	}
}

type disabledClient struct{}

func (disabledClient) Embed(context.Context, []string) ([]pgvector.Vector, error) {
	return nil, ErrDisabled
}

func (disabledClient) Model() string { return "" }

func (disabledClient) Close() error { return nil }
