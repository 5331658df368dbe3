package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mapmind/internal/models/geo_models"
)

func poiAt(lat, lon float64) geo_models.RawPoi {
	return geo_models.RawPoi{Coordinate: geo_models.Coordinate{Lat: lat, Lon: lon}}
}

func TestAggregateCountsAndOrder(t *testing.T) {
	service := NewAggregateService(NewClassifierService())

	pois := geo_models.NewCategorizedPois()
	// Insertion order deliberately reversed relative to the chart order.
	pois.Add("cafe", poiAt(1, 1))
	pois.Add("cafe", poiAt(1, 2))
	pois.Add("shop_bakery", poiAt(1, 3))
	pois.Add("hospital", poiAt(1, 4))

	entries := service.Aggregate(pois)

	assert.Len(t, entries, 3)
	// Chart entries follow the super-category declaration order, not the
	// POI insertion order.
	assert.Equal(t, "Healthcare", entries[0].Label)
	assert.Equal(t, 1, entries[0].Count)
	assert.Equal(t, "Shopping", entries[1].Label)
	assert.Equal(t, 1, entries[1].Count)
	assert.Equal(t, "Food & Drink", entries[2].Label)
	assert.Equal(t, 2, entries[2].Count)
}

func TestAggregateOmitsEmptyCategories(t *testing.T) {
	service := NewAggregateService(NewClassifierService())

	pois := geo_models.NewCategorizedPois()
	pois.Add("cafe", poiAt(1, 1))

	entries := service.Aggregate(pois)

	assert.Len(t, entries, 1)
	for _, e := range entries {
		assert.NotEqual(t, "Healthcare", e.Label)
	}
}

func TestAggregateColorsMatchCategoryTable(t *testing.T) {
	service := NewAggregateService(NewClassifierService())

	pois := geo_models.NewCategorizedPois()
	pois.Add("bank", poiAt(1, 1))

	entries := service.Aggregate(pois)

	assert.Len(t, entries, 1)
	assert.Equal(t, "#FF1919", entries[0].Color)
}

func TestAggregateIsIdempotent(t *testing.T) {
	service := NewAggregateService(NewClassifierService())

	pois := geo_models.NewCategorizedPois()
	pois.Add("cafe", poiAt(1, 1))
	pois.Add("school", poiAt(1, 2))
	pois.Add("unknown_thing", poiAt(1, 3))

	first := service.Aggregate(pois)
	second := service.Aggregate(pois)
	assert.Equal(t, first, second)
}

func TestAggregateEmptyInput(t *testing.T) {
	service := NewAggregateService(NewClassifierService())

	entries := service.Aggregate(geo_models.NewCategorizedPois())
	assert.Empty(t, entries)
}
