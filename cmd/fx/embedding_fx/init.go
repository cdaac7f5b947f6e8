package embedding_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"clean/internal/config"
	"clean/pkg/embedding"
)

var Module = fx.Provide(provideEmbeddingClient)

func provideEmbeddingClient(lc fx.Lifecycle, cfg config.Config) (embedding.Client, error) {
	client, err := embedding.New(embedding.Config{
		Provider: cfg.EmbeddingProvider,
		APIKey:   cfg.EmbeddingAPIKey,
		Model:    cfg.EmbeddingModel,
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("embedding provider configured",
		zap.String("provider", cfg.EmbeddingProvider),
		zap.String("model", client.Model()))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}
