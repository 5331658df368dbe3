package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mapmind/internal/models/geo_models"
	"mapmind/pkg/nominatim"
	"mapmind/pkg/utils"
)

// fakeGeocoder returns a canned result or error and records queries.
type fakeGeocoder struct {
	result  *nominatim.Result
	err     error
	queries []string
}

func (f *fakeGeocoder) Search(_ context.Context, query string) (*nominatim.Result, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func TestResolveQueryFormat(t *testing.T) {
	geocoder := &fakeGeocoder{result: &nominatim.Result{Lat: 12.97, Lon: 77.59, DisplayName: "Indiranagar, Bangalore, India"}}
	service := NewAreaService(geocoder, zap.NewNop())

	_, err := service.Resolve(context.Background(), "Indiranagar", "Bangalore")

	require.NoError(t, err)
	require.Len(t, geocoder.queries, 1)
	assert.Equal(t, "Indiranagar, Bangalore", geocoder.queries[0])
}

func TestResolveUsesReportedExtent(t *testing.T) {
	extent := [4]float64{77.58, 12.96, 77.60, 12.98}
	geocoder := &fakeGeocoder{result: &nominatim.Result{
		Lat: 12.97, Lon: 77.59,
		DisplayName: "Indiranagar, Bangalore, India",
		Extent:      &extent,
	}}
	service := NewAreaService(geocoder, zap.NewNop())

	resolved, err := service.Resolve(context.Background(), "Indiranagar", "Bangalore")

	require.NoError(t, err)
	assert.Equal(t, geo_models.BoundingBox(extent), resolved.BoundingBox)
	assert.Equal(t, "Indiranagar, Bangalore, India", resolved.DisplayName)
}

func TestResolveSynthesizesFallbackSquare(t *testing.T) {
	geocoder := &fakeGeocoder{result: &nominatim.Result{Lat: 12.97, Lon: 77.59}}
	service := NewAreaService(geocoder, zap.NewNop())

	resolved, err := service.Resolve(context.Background(), "Indiranagar", "Bangalore")

	require.NoError(t, err)
	want := geo_models.BoundingBox{77.59 - 0.009, 12.97 - 0.009, 77.59 + 0.009, 12.97 + 0.009}
	assert.InDelta(t, want.West(), resolved.BoundingBox.West(), 1e-12)
	assert.InDelta(t, want.South(), resolved.BoundingBox.South(), 1e-12)
	assert.InDelta(t, want.East(), resolved.BoundingBox.East(), 1e-12)
	assert.InDelta(t, want.North(), resolved.BoundingBox.North(), 1e-12)
	assert.True(t, resolved.BoundingBox.Valid())
}

func TestResolveNoMatch(t *testing.T) {
	geocoder := &fakeGeocoder{err: nominatim.ErrNoResult}
	service := NewAreaService(geocoder, zap.NewNop())

	_, err := service.Resolve(context.Background(), "Nowhereville", "Atlantis")

	assert.ErrorIs(t, err, utils.ErrGeocodeNoMatch)
}

func TestResolveUpstreamFailure(t *testing.T) {
	geocoder := &fakeGeocoder{err: errors.New("connection refused")}
	service := NewAreaService(geocoder, zap.NewNop())

	_, err := service.Resolve(context.Background(), "Indiranagar", "Bangalore")

	assert.ErrorIs(t, err, utils.ErrGeocodeFailed)
}
