package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"mapmind/internal/models/geo_models"
	"mapmind/pkg/utils"
)

// Boundary polygon style, fixed across both construction paths.
const (
	boundaryFillColor   = "#0070f3"
	boundaryFillOpacity = 0.2
	boundaryStrokeColor = "#0070f3"
	boundaryStrokeWidth = 2
)

type GeometryServiceInterface interface {
	// Synthesize builds the boundary+POIs document, asking the generative
	// service first when enabled and falling back to the deterministic
	// builder on any failure. It never returns an error.
	Synthesize(ctx context.Context, area, city string, pois *geo_models.CategorizedPois, bbox geo_models.BoundingBox) *geo_models.FeatureCollection

	// BuildFallback is the deterministic construction path: boundary polygon
	// plus one point per POI, colored by raw category.
	BuildFallback(area, city string, pois *geo_models.CategorizedPois, bbox geo_models.BoundingBox) *geo_models.FeatureCollection

	// BuildPoiCollection builds the points-only document colored by
	// super-category, as embedded in the analysis response.
	BuildPoiCollection(pois *geo_models.CategorizedPois) *geo_models.FeatureCollection

	// BuildBoundary builds a boundary-only document from the bounding box.
	BuildBoundary(area, city string, bbox geo_models.BoundingBox) *geo_models.FeatureCollection
}

type GeometryService struct {
	ai         utils.TextClientInterface // nil disables the enrichment path
	classifier ClassifierServiceInterface
	timeout    timeoutFunc
	logger     *zap.Logger
}

// timeoutFunc wraps the enrichment context; injected so tests can skip the
// real deadline.
type timeoutFunc func(ctx context.Context) (context.Context, context.CancelFunc)

func NewGeometryService(ai utils.TextClientInterface, classifier ClassifierServiceInterface, timeout timeoutFunc, logger *zap.Logger) GeometryServiceInterface {
	if timeout == nil {
		timeout = func(ctx context.Context) (context.Context, context.CancelFunc) {
			return context.WithCancel(ctx)
		}
	}
	return &GeometryService{ai: ai, classifier: classifier, timeout: timeout, logger: logger}
}

func boundaryFeature(area, city string, bbox geo_models.BoundingBox) geo_models.Feature {
	return geo_models.NewPolygonFeature(bbox.PolygonRing(), map[string]interface{}{
		"type":        "boundary",
		"name":        fmt.Sprintf("%s, %s", area, city),
		"fillColor":   boundaryFillColor,
		"fillOpacity": boundaryFillOpacity,
		"strokeColor": boundaryStrokeColor,
		"strokeWidth": boundaryStrokeWidth,
	})
}

func (s *GeometryService) BuildBoundary(area, city string, bbox geo_models.BoundingBox) *geo_models.FeatureCollection {
	fc := geo_models.NewFeatureCollection()
	fc.AddFeature(boundaryFeature(area, city, bbox))
	return fc
}

func (s *GeometryService) BuildFallback(area, city string, pois *geo_models.CategorizedPois, bbox geo_models.BoundingBox) *geo_models.FeatureCollection {
	fc := s.BuildBoundary(area, city, bbox)

	for i, category := range pois.Categories() {
		color := geo_models.PaletteColor(i)
		for _, poi := range pois.Get(category) {
			fc.AddFeature(geo_models.NewPointFeature(poi.Lon, poi.Lat, map[string]interface{}{
				"type":     "poi",
				"category": category,
				"name":     poi.Name(category),
				"color":    color,
			}))
		}
	}
	return fc
}

func (s *GeometryService) BuildPoiCollection(pois *geo_models.CategorizedPois) *geo_models.FeatureCollection {
	fc := geo_models.NewFeatureCollection()

	for _, category := range pois.Categories() {
		def := s.classifier.Classify(category)
		for _, poi := range pois.Get(category) {
			fc.AddFeature(geo_models.NewPointFeature(poi.Lon, poi.Lat, map[string]interface{}{
				"type":           "poi",
				"super_category": string(def.Key),
				"display_name":   def.DisplayName,
				"category":       category,
				"name":           poi.Name(category),
				"color":          def.Color,
			}))
		}
	}
	return fc
}

func (s *GeometryService) Synthesize(ctx context.Context, area, city string, pois *geo_models.CategorizedPois, bbox geo_models.BoundingBox) *geo_models.FeatureCollection {
	if s.ai == nil {
		return s.BuildFallback(area, city, pois, bbox)
	}

	enrichCtx, cancel := s.timeout(ctx)
	defer cancel()

	text, err := s.ai.GenerateText(enrichCtx, s.geometryPrompt(area, city, pois, bbox))
	if err != nil {
		s.logger.Warn("geometry enrichment unavailable, using fallback", zap.Error(err))
		return s.BuildFallback(area, city, pois, bbox)
	}

	fc, err := s.parseEnrichedDocument(text, pois.Total())
	if err != nil {
		s.logger.Warn("geometry enrichment rejected, using fallback", zap.Error(err))
		return s.BuildFallback(area, city, pois, bbox)
	}
	return fc
}

// parseEnrichedDocument slices and validates a generative response. The
// document must parse, declare the FeatureCollection type, carry a features
// list, and satisfy the round-trip invariant: exactly one boundary feature
// and one point per input POI.
func (s *GeometryService) parseEnrichedDocument(text string, wantPois int) (*geo_models.FeatureCollection, error) {
	raw, ok := utils.ExtractJSONObject(text)
	if !ok {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	var docType string
	if err := json.Unmarshal(probe["type"], &docType); err != nil || docType != geo_models.FeatureCollectionType {
		return nil, fmt.Errorf("declared type is not %s", geo_models.FeatureCollectionType)
	}
	if _, ok := probe["features"]; !ok {
		return nil, fmt.Errorf("missing features key")
	}

	var fc geo_models.FeatureCollection
	if err := json.Unmarshal([]byte(raw), &fc); err != nil {
		return nil, fmt.Errorf("decode features: %w", err)
	}

	boundaries, points := 0, 0
	for _, f := range fc.Features {
		switch f.Geometry.Type {
		case "Polygon":
			boundaries++
		case "Point":
			points++
		}
	}
	if boundaries != 1 || points != wantPois {
		return nil, fmt.Errorf("feature counts off: %d boundaries, %d of %d points", boundaries, points, wantPois)
	}
	return &fc, nil
}

func (s *GeometryService) geometryPrompt(area, city string, pois *geo_models.CategorizedPois, bbox geo_models.BoundingBox) string {
	poisJSON, err := json.MarshalIndent(pois, "", "  ")
	if err != nil {
		poisJSON = []byte("{}")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a complete GeoJSON FeatureCollection for %s, %s that includes:\n\n", area, city)
	fmt.Fprintf(&b, "1. A boundary polygon feature with these properties:\n")
	fmt.Fprintf(&b, "   - type: \"boundary\"\n   - name: \"%s, %s\"\n", area, city)
	fmt.Fprintf(&b, "   - fillColor: %q\n   - fillOpacity: %v\n   - strokeColor: %q\n   - strokeWidth: %d\n\n",
		boundaryFillColor, boundaryFillOpacity, boundaryStrokeColor, boundaryStrokeWidth)
	fmt.Fprintf(&b, "2. Point features for each POI in this data:\n%s\n\n", poisJSON)
	fmt.Fprintf(&b, "The boundary should be a simple polygon that covers the bounding box [west, south, east, north] = %v.\n\n", [4]float64(bbox))
	b.WriteString("Each POI should have these properties:\n")
	b.WriteString("- type: \"poi\"\n- category: (the POI category)\n")
	b.WriteString("- name: (the POI name if available, otherwise use the category)\n")
	b.WriteString("- color: (assign a unique color to each category)\n\n")
	b.WriteString("Return ONLY valid GeoJSON with no additional text or explanations.\n")
	b.WriteString("The response must be a complete, valid GeoJSON FeatureCollection.")
	return b.String()
}
