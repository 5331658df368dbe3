package services

import (
	"context"

	"go.uber.org/zap"

	"mapmind/internal/models/geo_models"
	"mapmind/pkg/overpass"
	"mapmind/pkg/utils"
)

// DefaultRadiusMeters is the search radius for POI extraction (~15 minutes
// on foot).
const DefaultRadiusMeters = 1500

type POIServiceInterface interface {
	Extract(ctx context.Context, center geo_models.Coordinate, radiusMeters int) (*geo_models.CategorizedPois, error)
}

type POIService struct {
	overpass overpass.Client
	logger   *zap.Logger
}

func NewPOIService(client overpass.Client, logger *zap.Logger) POIServiceInterface {
	return &POIService{overpass: client, logger: logger}
}

// tagRule derives a raw category from one tag key. Rules are evaluated in
// order; the first key present on the element wins. literal rules yield the
// key itself rather than the tag value.
type tagRule struct {
	key     string
	prefix  string
	literal bool
}

var categoryRules = []tagRule{
	{key: "amenity"},
	{key: "shop", prefix: "shop_"},
	{key: "leisure", prefix: "leisure_"},
	{key: "healthcare", prefix: "healthcare_"},
	{key: "building", prefix: "building_"},
	{key: "office", prefix: "office_"},
	{key: "public_transport", literal: true},
	{key: "railway", prefix: "railway_"},
}

// deriveCategory returns the raw category for a tag set, or "" when no
// recognized key is present.
func deriveCategory(tags map[string]string) string {
	for _, rule := range categoryRules {
		value, ok := tags[rule.key]
		if !ok {
			continue
		}
		if rule.literal {
			return rule.key
		}
		return rule.prefix + value
	}
	return ""
}

// Extract queries the map-data source for all elements within radiusMeters
// of center and buckets them by raw category. Elements without resolvable
// coordinates or without a recognized tag key are silently dropped; a failed
// query is fatal to the request.
func (s *POIService) Extract(ctx context.Context, center geo_models.Coordinate, radiusMeters int) (*geo_models.CategorizedPois, error) {
	if radiusMeters <= 0 {
		radiusMeters = DefaultRadiusMeters
	}

	query := overpass.AroundQuery(center.Lat, center.Lon, radiusMeters)
	elements, err := s.overpass.Query(ctx, query)
	if err != nil {
		s.logger.Error("overpass query failed",
			zap.Float64("lat", center.Lat),
			zap.Float64("lon", center.Lon),
			zap.Error(err))
		return nil, utils.ErrPoiSourceFailed
	}

	pois := geo_models.NewCategorizedPois()
	for _, element := range elements {
		lat, lon, ok := element.Position()
		if !ok {
			continue
		}
		category := deriveCategory(element.Tags)
		if category == "" {
			continue
		}

		kind := geo_models.KindWayOrRelation
		if element.Type == "node" {
			kind = geo_models.KindNode
		}
		pois.Add(category, geo_models.RawPoi{
			Coordinate: geo_models.Coordinate{Lat: lat, Lon: lon},
			Tags:       element.Tags,
			Kind:       kind,
		})
	}

	s.logger.Info("extracted pois",
		zap.Int("elements", len(elements)),
		zap.Int("retained", pois.Total()),
		zap.Int("categories", len(pois.Categories())))
	return pois, nil
}
