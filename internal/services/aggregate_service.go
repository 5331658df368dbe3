package services

import (
	"mapmind/internal/models/geo_models"
	"mapmind/internal/models/response_models"
)

type AggregateServiceInterface interface {
	Aggregate(pois *geo_models.CategorizedPois) []response_models.ChartEntry
}

// AggregateService counts POIs per super-category and emits chart entries in
// super-category declaration order, omitting empty categories. Colors come
// from the same table as the POI map features, keeping chart and map in
// agreement.
type AggregateService struct {
	classifier ClassifierServiceInterface
}

func NewAggregateService(classifier ClassifierServiceInterface) AggregateServiceInterface {
	return &AggregateService{classifier: classifier}
}

func (s *AggregateService) Aggregate(pois *geo_models.CategorizedPois) []response_models.ChartEntry {
	counts := make(map[geo_models.SuperCategory]int)
	for _, category := range pois.Categories() {
		def := s.classifier.Classify(category)
		counts[def.Key] += len(pois.Get(category))
	}

	entries := make([]response_models.ChartEntry, 0, len(counts))
	for _, def := range geo_models.SuperCategories {
		if count := counts[def.Key]; count > 0 {
			entries = append(entries, response_models.ChartEntry{
				Label: def.DisplayName,
				Count: count,
				Color: def.Color,
			})
		}
	}
	return entries
}
