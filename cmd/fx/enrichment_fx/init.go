package enrichmentfx

import (
	"go.uber.org/fx"

	"mapmind/internal/config"
	"mapmind/pkg/utils"
)

var Module = fx.Provide(
	provideTextClient)

// provideTextClient builds the generative backend named by configuration.
// Provider "none" yields a nil client; the pipeline degrades to its
// deterministic paths.
func provideTextClient(cfg *config.Config) (utils.TextClientInterface, error) {
	switch cfg.Enrichment.Provider {
	case "gemini":
		return utils.NewGeminiTextClient(cfg.Enrichment.GeminiAPIKey, cfg.Enrichment.GeminiModel)
	case "openai":
		return utils.NewOpenAITextClient(cfg.Enrichment.OpenAIAPIKey, cfg.Enrichment.OpenAIModel), nil
	default:
		return nil, nil
	}
}
