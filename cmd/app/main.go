package main

import (
	"context"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"mapmind/cmd/fx/analysis_fx"
	"mapmind/cmd/fx/controllers_fx"
	"mapmind/cmd/fx/core_fx"
	"mapmind/cmd/fx/enrichment_fx"
	"mapmind/cmd/fx/geocode_fx"
	"mapmind/cmd/fx/pois_fx"
	"mapmind/internal/api/controllers"
	"mapmind/internal/config"
	"mapmind/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		corefx.Module,
		geocodefx.Module,
		poisfx.Module,
		enrichmentfx.Module,
		analysisfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				addr := ":" + strconv.Itoa(cfg.Server.Port)
				log.Printf("Starting HTTP server at %s", addr)
				if err := engine.Run(addr); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(cfg *config.Config, analysisController *controllers.AnalysisController) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))

	RegisterRoutes(r, analysisController)

	return r
}

func RegisterRoutes(r *gin.Engine, analysisController *controllers.AnalysisController) {
	r.POST("/analyze-area", analysisController.AnalyzeArea)
	r.GET("/area-boundary", analysisController.GetAreaBoundary)
	r.GET("/area-geojson", analysisController.GetAreaGeoJSON)
}
