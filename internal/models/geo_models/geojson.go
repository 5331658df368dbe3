package geo_models

// GeoJSON structures per RFC 7946. Coordinates are [lon, lat].

type Geometry struct {
	Type        string      `json:"type"`
	Coordinates interface{} `json:"coordinates"`
}

type Feature struct {
	Type       string                 `json:"type"`
	Geometry   Geometry               `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

const FeatureCollectionType = "FeatureCollection"

func NewFeatureCollection() *FeatureCollection {
	return &FeatureCollection{
		Type:     FeatureCollectionType,
		Features: []Feature{},
	}
}

func (fc *FeatureCollection) AddFeature(f Feature) {
	fc.Features = append(fc.Features, f)
}

func NewPointFeature(lon, lat float64, props map[string]interface{}) Feature {
	return Feature{
		Type: "Feature",
		Geometry: Geometry{
			Type:        "Point",
			Coordinates: [2]float64{lon, lat},
		},
		Properties: props,
	}
}

func NewPolygonFeature(ring [][2]float64, props map[string]interface{}) Feature {
	return Feature{
		Type: "Feature",
		Geometry: Geometry{
			Type:        "Polygon",
			Coordinates: [][][2]float64{ring},
		},
		Properties: props,
	}
}
