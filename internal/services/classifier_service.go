package services

import (
	"strings"

	"mapmind/internal/models/geo_models"
)

type ClassifierServiceInterface interface {
	Classify(rawCategory string) geo_models.SuperCategoryDef
}

// ClassifierService assigns raw categories to super-categories by evaluating
// the rule table top-to-bottom. First matching rule wins, so a raw category
// matching patterns of two super-categories always resolves to the
// earlier-declared one.
type ClassifierService struct{}

func NewClassifierService() ClassifierServiceInterface {
	return &ClassifierService{}
}

func (s *ClassifierService) Classify(rawCategory string) geo_models.SuperCategoryDef {
	lower := strings.ToLower(rawCategory)
	for _, def := range geo_models.SuperCategories {
		for _, pattern := range def.Patterns {
			if strings.Contains(lower, pattern) {
				return def
			}
		}
	}
	// "other" is last and has no patterns.
	return geo_models.SuperCategories[len(geo_models.SuperCategories)-1]
}
