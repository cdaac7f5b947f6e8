package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"clean/internal/config"
	"clean/pkg/logger"
	"clean/pkg/utils"
)

// Module expects a config.Config to be supplied with fx.Supply.
var Module = fx.Provide(
	provideLogger,
	provideTokenIssuer)

func provideLogger(cfg config.Config) (*zap.Logger, error) {
	return logger.New(cfg.IsDevelopment())
}

func provideTokenIssuer(cfg config.Config) (*utils.TokenIssuer, error) {
	return utils.NewTokenIssuer(cfg.JWTSecret, cfg.AccessTokenTTL)
}
