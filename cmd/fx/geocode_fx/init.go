package geocodefx

import (
	"net/http"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"mapmind/internal/config"
	"mapmind/internal/services"
	"mapmind/pkg/nominatim"
)

var Module = fx.Provide(
	provideNominatimClient, provideAreaService)

func provideNominatimClient(cfg *config.Config) nominatim.Client {
	return nominatim.NewClient(
		nominatim.WithBaseURL(cfg.Nominatim.BaseURL),
		nominatim.WithUserAgent(cfg.Nominatim.UserAgent),
		nominatim.WithRateLimit(cfg.Nominatim.RateLimit),
		nominatim.WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.Nominatim.TimeoutSeconds) * time.Second,
		}),
	)
}

func provideAreaService(client nominatim.Client, logger *zap.Logger) services.AreaServiceInterface {
	return services.NewAreaService(client, logger)
}
