package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"mapmind/internal/models/geo_models"
	"mapmind/internal/models/response_models"
	"mapmind/pkg/utils"
)

type AnalysisServiceInterface interface {
	// Analyze runs the full pipeline for one named area and assembles the
	// response document.
	Analyze(ctx context.Context, city, area string) (*response_models.AnalysisResponse, error)

	// Boundary resolves an area and returns its boundary-only geometry.
	Boundary(ctx context.Context, city, area string) (*geo_models.FeatureCollection, error)

	// AreaGeoJSON resolves an area and returns the full boundary+POIs
	// document, enrichment-assisted when a generative backend is wired.
	AreaGeoJSON(ctx context.Context, city, area string) (*geo_models.FeatureCollection, error)
}

type AnalysisService struct {
	areas     AreaServiceInterface
	pois      POIServiceInterface
	geometry  GeometryServiceInterface
	aggregate AggregateServiceInterface
	ai        utils.TextClientInterface // nil disables the narrative summary
	timeout   timeoutFunc
	radius    int
	logger    *zap.Logger
}

func NewAnalysisService(
	areas AreaServiceInterface,
	pois POIServiceInterface,
	geometry GeometryServiceInterface,
	aggregate AggregateServiceInterface,
	ai utils.TextClientInterface,
	timeout timeoutFunc,
	radiusMeters int,
	logger *zap.Logger,
) AnalysisServiceInterface {
	if timeout == nil {
		timeout = func(ctx context.Context) (context.Context, context.CancelFunc) {
			return context.WithCancel(ctx)
		}
	}
	if radiusMeters <= 0 {
		radiusMeters = DefaultRadiusMeters
	}
	return &AnalysisService{
		areas:     areas,
		pois:      pois,
		geometry:  geometry,
		aggregate: aggregate,
		ai:        ai,
		timeout:   timeout,
		radius:    radiusMeters,
		logger:    logger,
	}
}

func (s *AnalysisService) Analyze(ctx context.Context, city, area string) (*response_models.AnalysisResponse, error) {
	resolved, err := s.areas.Resolve(ctx, area, city)
	if err != nil {
		return nil, err
	}
	s.logger.Info("area resolved",
		zap.String("display_name", resolved.DisplayName),
		zap.Float64("lat", resolved.Coordinate.Lat),
		zap.Float64("lon", resolved.Coordinate.Lon))

	pois, err := s.pois.Extract(ctx, resolved.Coordinate, s.radius)
	if err != nil {
		return nil, err
	}

	// The narrative summary depends only on the categorized POIs, so it
	// runs alongside the local geometry and chart computation.
	var summary string
	var rating float64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary, rating = s.narrativeSummary(gctx, area, city, pois)
		// Degradation is absorbed inside narrativeSummary; only a request
		// canceled mid-summary fails the pipeline here.
		return gctx.Err()
	})

	collection := s.geometry.BuildPoiCollection(pois)
	chart := s.aggregate.Aggregate(pois)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &response_models.AnalysisResponse{
		Summary:      summary,
		PieChartData: chart,
		AIRating:     rating,
		Geocode: response_models.GeocodeInfo{
			Lat:         resolved.Coordinate.Lat,
			Lon:         resolved.Coordinate.Lon,
			DisplayName: resolved.DisplayName,
		},
		BBox:    resolved.BoundingBox,
		GeoJSON: collection,
		Pois:    pois,
	}, nil
}

func (s *AnalysisService) Boundary(ctx context.Context, city, area string) (*geo_models.FeatureCollection, error) {
	resolved, err := s.areas.Resolve(ctx, area, city)
	if err != nil {
		return nil, err
	}
	return s.geometry.BuildBoundary(area, city, resolved.BoundingBox), nil
}

func (s *AnalysisService) AreaGeoJSON(ctx context.Context, city, area string) (*geo_models.FeatureCollection, error) {
	resolved, err := s.areas.Resolve(ctx, area, city)
	if err != nil {
		return nil, err
	}
	pois, err := s.pois.Extract(ctx, resolved.Coordinate, s.radius)
	if err != nil {
		return nil, err
	}
	return s.geometry.Synthesize(ctx, area, city, pois, resolved.BoundingBox), nil
}

// narrativeSummary asks the generative service for the free-text summary and
// livability rating. Any failure degrades to an empty summary and zero
// rating; the summary call never fails the request.
func (s *AnalysisService) narrativeSummary(ctx context.Context, area, city string, pois *geo_models.CategorizedPois) (string, float64) {
	if s.ai == nil {
		return "", 0
	}

	summaryCtx, cancel := s.timeout(ctx)
	defer cancel()

	text, err := s.ai.GenerateText(summaryCtx, s.summaryPrompt(area, city, pois))
	if err != nil {
		s.logger.Warn("summary enrichment unavailable", zap.Error(err))
		return "", 0
	}

	raw, ok := utils.ExtractJSONObject(text)
	if !ok {
		s.logger.Warn("summary response contained no JSON")
		return "", 0
	}

	var parsed struct {
		Summary  string  `json:"summary"`
		AIRating float64 `json:"ai_rating"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		s.logger.Warn("summary response malformed", zap.Error(err))
		return "", 0
	}

	rating := parsed.AIRating
	if rating < 0 {
		rating = 0
	}
	if rating > 100 {
		rating = 100
	}
	return parsed.Summary, rating
}

func (s *AnalysisService) summaryPrompt(area, city string, pois *geo_models.CategorizedPois) string {
	poisJSON, err := json.MarshalIndent(pois, "", "  ")
	if err != nil {
		poisJSON = []byte("{}")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Imagine you're a local resident giving a friendly, conversational tour of %s, %s.\n", area, city)
	b.WriteString("Create an engaging summary that covers:\n\n")
	b.WriteString("1. The neighborhood's vibe and lifestyle (based on the POIs)\n")
	b.WriteString("2. What makes this area special for a 15-minute city concept\n")
	b.WriteString("3. What daily life might look like here\n")
	b.WriteString("4. Any unique features or interesting combinations of amenities\n\n")
	b.WriteString("Use a conversational, first-person tone as if you're talking to a friend.\n")
	fmt.Fprintf(&b, "Include specific references to the POIs and their distribution:\n%s\n\n", poisJSON)
	b.WriteString("Keep it concise but engaging, around 3-4 sentences.\n\n")
	b.WriteString("Provide a structured JSON response with the following keys:\n")
	b.WriteString("- \"summary\": (in simple text, NOT in JSON) A concise summary of the living potential of the area, highlighting the strengths and weaknesses in each super-category.\n")
	b.WriteString("- \"ai_rating\": A numerical rating from 0 to 100 representing how well this area functions as a \"15-minute city\" where residents can access most daily needs within a 15-minute walk or bike ride.\n\n")
	b.WriteString("IMPORTANT: Only return the raw JSON, no additional text or explanations. The response must start with '{' and end with '}'.")
	return b.String()
}
