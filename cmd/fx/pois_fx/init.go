package poisfx

import (
	"net/http"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"mapmind/internal/config"
	"mapmind/internal/services"
	"mapmind/pkg/overpass"
)

var Module = fx.Provide(
	provideOverpassClient, providePoiService)

func provideOverpassClient(cfg *config.Config) overpass.Client {
	return overpass.NewClient(
		overpass.WithBaseURL(cfg.Overpass.BaseURL),
		overpass.WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.Overpass.TimeoutSeconds) * time.Second,
		}),
	)
}

func providePoiService(client overpass.Client, logger *zap.Logger) services.POIServiceInterface {
	return services.NewPOIService(client, logger)
}
