package corefx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"mapmind/internal/config"
	"mapmind/pkg/logger"
)

var Module = fx.Provide(
	provideConfig, provideLogger)

func provideConfig() (*config.Config, error) {
	return config.Load()
}

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.Log.Level)
}
