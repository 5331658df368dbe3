package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mapmind/internal/models/geo_models"
	"mapmind/pkg/utils"
)

type stubAreaService struct {
	resolved *geo_models.ResolvedArea
	err      error
}

func (s *stubAreaService) Resolve(context.Context, string, string) (*geo_models.ResolvedArea, error) {
	return s.resolved, s.err
}

type stubPoiService struct {
	pois   *geo_models.CategorizedPois
	err    error
	radius int
}

func (s *stubPoiService) Extract(_ context.Context, _ geo_models.Coordinate, radiusMeters int) (*geo_models.CategorizedPois, error) {
	s.radius = radiusMeters
	return s.pois, s.err
}

func resolvedTestArea() *geo_models.ResolvedArea {
	return &geo_models.ResolvedArea{
		Coordinate:  geo_models.Coordinate{Lat: 12.97, Lon: 77.59},
		BoundingBox: testBBox(),
		DisplayName: "Indiranagar, Bangalore, India",
	}
}

func newTestAnalysisService(areas AreaServiceInterface, pois POIServiceInterface, ai utils.TextClientInterface) AnalysisServiceInterface {
	classifier := NewClassifierService()
	geometry := NewGeometryService(nil, classifier, noTimeout, zap.NewNop())
	aggregate := NewAggregateService(classifier)
	return NewAnalysisService(areas, pois, geometry, aggregate, ai, noTimeout, 1500, zap.NewNop())
}

func TestAnalyzeAssemblesResponse(t *testing.T) {
	areas := &stubAreaService{resolved: resolvedTestArea()}
	pois := &stubPoiService{pois: twoCategoryPois()}
	ai := &fakeTextClient{response: `{"summary": "A lively area.", "ai_rating": 82}`}
	service := newTestAnalysisService(areas, pois, ai)

	result, err := service.Analyze(context.Background(), "Bangalore", "Indiranagar")

	require.NoError(t, err)
	assert.Equal(t, "A lively area.", result.Summary)
	assert.Equal(t, 82.0, result.AIRating)
	assert.Equal(t, 12.97, result.Geocode.Lat)
	assert.Equal(t, 77.59, result.Geocode.Lon)
	assert.Equal(t, "Indiranagar, Bangalore, India", result.Geocode.DisplayName)
	assert.Equal(t, testBBox(), result.BBox)

	// POI features only; the boundary is served separately.
	require.NotNil(t, result.GeoJSON)
	assert.Len(t, result.GeoJSON.Features, pois.pois.Total())

	// Two non-empty super-categories: shopping and food & drink.
	require.Len(t, result.PieChartData, 2)
	assert.Equal(t, "Shopping", result.PieChartData[0].Label)
	assert.Equal(t, 1, result.PieChartData[0].Count)
	assert.Equal(t, "Food & Drink", result.PieChartData[1].Label)
	assert.Equal(t, 2, result.PieChartData[1].Count)

	assert.Same(t, pois.pois, result.Pois)
	assert.Equal(t, 1500, pois.radius)
}

func TestAnalyzeGeocodeErrorsPropagate(t *testing.T) {
	for _, sentinel := range []error{utils.ErrGeocodeNoMatch, utils.ErrGeocodeFailed} {
		areas := &stubAreaService{err: sentinel}
		service := newTestAnalysisService(areas, &stubPoiService{}, nil)

		result, err := service.Analyze(context.Background(), "Bangalore", "Indiranagar")

		assert.ErrorIs(t, err, sentinel)
		assert.Nil(t, result)
	}
}

func TestAnalyzeExtractionFailureAborts(t *testing.T) {
	areas := &stubAreaService{resolved: resolvedTestArea()}
	pois := &stubPoiService{err: utils.ErrPoiSourceFailed}
	service := newTestAnalysisService(areas, pois, &fakeTextClient{response: "{}"})

	result, err := service.Analyze(context.Background(), "Bangalore", "Indiranagar")

	assert.ErrorIs(t, err, utils.ErrPoiSourceFailed)
	assert.Nil(t, result)
}

func TestAnalyzeSummaryDegradesOnClientError(t *testing.T) {
	areas := &stubAreaService{resolved: resolvedTestArea()}
	pois := &stubPoiService{pois: twoCategoryPois()}
	ai := &fakeTextClient{err: errors.New("quota exhausted")}
	service := newTestAnalysisService(areas, pois, ai)

	result, err := service.Analyze(context.Background(), "Bangalore", "Indiranagar")

	require.NoError(t, err)
	assert.Empty(t, result.Summary)
	assert.Zero(t, result.AIRating)
	// The rest of the document is unaffected.
	assert.Len(t, result.PieChartData, 2)
	assert.NotNil(t, result.GeoJSON)
}

func TestAnalyzeSummaryDegradesOnMalformedResponse(t *testing.T) {
	for name, response := range map[string]string{
		"no json":  "Sorry, I cannot help with that.",
		"bad json": "{summary: unquoted}",
	} {
		areas := &stubAreaService{resolved: resolvedTestArea()}
		pois := &stubPoiService{pois: twoCategoryPois()}
		service := newTestAnalysisService(areas, pois, &fakeTextClient{response: response})

		result, err := service.Analyze(context.Background(), "Bangalore", "Indiranagar")

		require.NoError(t, err, "case %q", name)
		assert.Empty(t, result.Summary, "case %q", name)
		assert.Zero(t, result.AIRating, "case %q", name)
	}
}

func TestAnalyzeWithoutClientSkipsSummary(t *testing.T) {
	areas := &stubAreaService{resolved: resolvedTestArea()}
	pois := &stubPoiService{pois: twoCategoryPois()}
	service := newTestAnalysisService(areas, pois, nil)

	result, err := service.Analyze(context.Background(), "Bangalore", "Indiranagar")

	require.NoError(t, err)
	assert.Empty(t, result.Summary)
	assert.Zero(t, result.AIRating)
}

func TestAnalyzeClampsRating(t *testing.T) {
	cases := map[string]float64{
		`{"summary": "s", "ai_rating": 140}`: 100,
		`{"summary": "s", "ai_rating": -5}`:  0,
		`{"summary": "s", "ai_rating": 55}`:  55,
	}
	for response, want := range cases {
		areas := &stubAreaService{resolved: resolvedTestArea()}
		pois := &stubPoiService{pois: twoCategoryPois()}
		service := newTestAnalysisService(areas, pois, &fakeTextClient{response: response})

		result, err := service.Analyze(context.Background(), "Bangalore", "Indiranagar")

		require.NoError(t, err)
		assert.Equal(t, want, result.AIRating, "response %s", response)
	}
}

func TestAnalyzeSummaryPromptCarriesPoiData(t *testing.T) {
	areas := &stubAreaService{resolved: resolvedTestArea()}
	pois := &stubPoiService{pois: twoCategoryPois()}
	ai := &fakeTextClient{response: `{"summary": "s", "ai_rating": 50}`}
	service := newTestAnalysisService(areas, pois, ai)

	_, err := service.Analyze(context.Background(), "Bangalore", "Indiranagar")

	require.NoError(t, err)
	require.Len(t, ai.prompts, 1)
	assert.Contains(t, ai.prompts[0], "Indiranagar, Bangalore")
	assert.Contains(t, ai.prompts[0], "Corner Cafe")
	assert.Contains(t, ai.prompts[0], "ai_rating")
}

func TestAnalyzeCanceledDuringSummary(t *testing.T) {
	areas := &stubAreaService{resolved: resolvedTestArea()}
	pois := &stubPoiService{pois: twoCategoryPois()}
	ai := &fakeTextClient{response: `{"summary": "s", "ai_rating": 50}`}
	service := newTestAnalysisService(areas, pois, ai)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result, err := service.Analyze(ctx, "Bangalore", "Indiranagar")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}

func TestAreaGeoJSONFullDocument(t *testing.T) {
	areas := &stubAreaService{resolved: resolvedTestArea()}
	pois := &stubPoiService{pois: twoCategoryPois()}
	service := newTestAnalysisService(areas, pois, nil)

	fc, err := service.AreaGeoJSON(context.Background(), "Bangalore", "Indiranagar")

	require.NoError(t, err)
	// Boundary plus one point per POI, unlike the analysis response's
	// points-only document.
	require.Len(t, fc.Features, 1+pois.pois.Total())
	assert.Equal(t, "boundary", fc.Features[0].Properties["type"])
	assert.Equal(t, 1500, pois.radius)
}

func TestAreaGeoJSONErrorsPropagate(t *testing.T) {
	areas := &stubAreaService{err: utils.ErrGeocodeNoMatch}
	service := newTestAnalysisService(areas, &stubPoiService{}, nil)

	fc, err := service.AreaGeoJSON(context.Background(), "Bangalore", "Indiranagar")
	assert.ErrorIs(t, err, utils.ErrGeocodeNoMatch)
	assert.Nil(t, fc)

	areas = &stubAreaService{resolved: resolvedTestArea()}
	service = newTestAnalysisService(areas, &stubPoiService{err: utils.ErrPoiSourceFailed}, nil)

	fc, err = service.AreaGeoJSON(context.Background(), "Bangalore", "Indiranagar")
	assert.ErrorIs(t, err, utils.ErrPoiSourceFailed)
	assert.Nil(t, fc)
}

func TestBoundaryUsesResolvedExtent(t *testing.T) {
	areas := &stubAreaService{resolved: resolvedTestArea()}
	service := newTestAnalysisService(areas, &stubPoiService{}, nil)

	fc, err := service.Boundary(context.Background(), "Bangalore", "Indiranagar")

	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "Polygon", fc.Features[0].Geometry.Type)
	assert.Equal(t, "Indiranagar, Bangalore", fc.Features[0].Properties["name"])
}

func TestBoundaryGeocodeFailure(t *testing.T) {
	areas := &stubAreaService{err: utils.ErrGeocodeNoMatch}
	service := newTestAnalysisService(areas, &stubPoiService{}, nil)

	fc, err := service.Boundary(context.Background(), "Bangalore", "Indiranagar")

	assert.ErrorIs(t, err, utils.ErrGeocodeNoMatch)
	assert.Nil(t, fc)
}
