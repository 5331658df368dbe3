package response_models

import (
	"mapmind/internal/models/geo_models"
)

// ChartEntry is one pie-chart slice: a non-empty super-category with its
// POI count and the same color used for that super-category's map features.
type ChartEntry struct {
	Label string `json:"name"`
	Count int    `json:"value"`
	Color string `json:"color"`
}

// GeocodeInfo echoes the resolved location back to the caller.
type GeocodeInfo struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DisplayName string  `json:"display_name"`
}

// AnalysisResponse is the full analysis document for one area. GeoJSON holds
// POI point features only; the boundary is derivable from BBox and served
// separately.
type AnalysisResponse struct {
	Summary      string                        `json:"summary"`
	PieChartData []ChartEntry                  `json:"pie_chart_data"`
	AIRating     float64                       `json:"ai_rating"`
	Geocode      GeocodeInfo                   `json:"geocode"`
	BBox         geo_models.BoundingBox        `json:"bbox"`
	GeoJSON      *geo_models.FeatureCollection `json:"geojson"`
	Pois         *geo_models.CategorizedPois   `json:"pois"`
}
