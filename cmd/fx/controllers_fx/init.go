package controllersfx

import (
	"go.uber.org/fx"

	"mapmind/internal/api/controllers"
	"mapmind/internal/services"
)

var Module = fx.Provide(
	provideAnalysisController)

func provideAnalysisController(analysisService services.AnalysisServiceInterface) *controllers.AnalysisController {
	return controllers.NewAnalysisController(analysisService)
}
