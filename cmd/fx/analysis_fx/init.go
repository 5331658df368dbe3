package analysisfx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"mapmind/internal/config"
	"mapmind/internal/services"
	"mapmind/pkg/utils"
)

var Module = fx.Provide(
	provideClassifierService,
	provideAggregateService,
	provideGeometryService,
	provideAnalysisService,
)

func provideClassifierService() services.ClassifierServiceInterface {
	return services.NewClassifierService()
}

func provideAggregateService(classifier services.ClassifierServiceInterface) services.AggregateServiceInterface {
	return services.NewAggregateService(classifier)
}

func enrichmentTimeout(cfg *config.Config) func(ctx context.Context) (context.Context, context.CancelFunc) {
	return func(ctx context.Context) (context.Context, context.CancelFunc) {
		return context.WithTimeout(ctx, cfg.Enrichment.Timeout())
	}
}

func provideGeometryService(
	cfg *config.Config,
	ai utils.TextClientInterface,
	classifier services.ClassifierServiceInterface,
	logger *zap.Logger,
) services.GeometryServiceInterface {
	// Geometry enrichment is opt-in; the deterministic path is the default.
	if !cfg.Enrichment.Geometry {
		ai = nil
	}
	return services.NewGeometryService(ai, classifier, enrichmentTimeout(cfg), logger)
}

func provideAnalysisService(
	cfg *config.Config,
	areas services.AreaServiceInterface,
	pois services.POIServiceInterface,
	geometry services.GeometryServiceInterface,
	aggregate services.AggregateServiceInterface,
	ai utils.TextClientInterface,
	logger *zap.Logger,
) services.AnalysisServiceInterface {
	return services.NewAnalysisService(
		areas, pois, geometry, aggregate, ai,
		enrichmentTimeout(cfg), cfg.Overpass.RadiusMeters, logger)
}
