package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"mapmind/internal/models/geo_models"
	"mapmind/pkg/nominatim"
	"mapmind/pkg/utils"
)

// FallbackHalfWidthDeg is the half-width of the synthesized bounding square
// (~1 km) used when the geocoder reports no extent.
const FallbackHalfWidthDeg = 0.009

type AreaServiceInterface interface {
	Resolve(ctx context.Context, area, city string) (*geo_models.ResolvedArea, error)
}

type AreaService struct {
	geocoder nominatim.Client
	logger   *zap.Logger
}

func NewAreaService(geocoder nominatim.Client, logger *zap.Logger) AreaServiceInterface {
	return &AreaService{geocoder: geocoder, logger: logger}
}

// Resolve geocodes "<area>, <city>" to a coordinate and bounding box. When
// the geocoder reports an extent it is used directly; otherwise a fixed
// square around the coordinate is synthesized, so callers always get a
// bounding box.
func (s *AreaService) Resolve(ctx context.Context, area, city string) (*geo_models.ResolvedArea, error) {
	query := fmt.Sprintf("%s, %s", area, city)

	result, err := s.geocoder.Search(ctx, query)
	if err != nil {
		if errors.Is(err, nominatim.ErrNoResult) {
			s.logger.Warn("geocoder returned no match", zap.String("query", query))
			return nil, utils.ErrGeocodeNoMatch
		}
		s.logger.Error("geocoding failed", zap.String("query", query), zap.Error(err))
		return nil, utils.ErrGeocodeFailed
	}

	coord := geo_models.Coordinate{Lat: result.Lat, Lon: result.Lon}

	var bbox geo_models.BoundingBox
	if result.Extent != nil {
		bbox = geo_models.BoundingBox(*result.Extent)
	} else {
		bbox = geo_models.SquareAround(coord, FallbackHalfWidthDeg)
	}

	return &geo_models.ResolvedArea{
		Coordinate:  coord,
		BoundingBox: bbox,
		DisplayName: result.DisplayName,
	}, nil
}
